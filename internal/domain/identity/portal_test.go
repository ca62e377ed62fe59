package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
)

func companies(n int) []CompanyRef {
	refs := make([]CompanyRef, 0, n)
	for i := 0; i < n; i++ {
		refs = append(refs, CompanyRef{CompanyID: "c", Role: account.RoleEmployee})
	}
	return refs
}

func TestDecidePortal_Unauthenticated(t *testing.T) {
	assert.Equal(t, PortalLogin, DecidePortal(PortalInput{}))
}

func TestDecidePortal_NoCompanies(t *testing.T) {
	// Superusers with nothing to manage go to onboarding
	assert.Equal(t, PortalOnboarding, DecidePortal(PortalInput{
		Authenticated: true,
		IsSuperuser:   true,
	}))

	// Everyone else with zero companies is locked out
	assert.Equal(t, PortalUnauthorized, DecidePortal(PortalInput{
		Authenticated: true,
	}))
}

func TestDecidePortal_SingleCompanySkipsSelection(t *testing.T) {
	cases := []struct {
		name     string
		isAdmin  bool
		hasEmp   bool
		expected PortalDecision
	}{
		{"admin only", true, false, PortalAdmin},
		{"employee only", false, true, PortalEmployee},
		{"both", true, true, PortalSelection},
		{"neither", false, false, PortalUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			refs := companies(1)
			refs[0].IsAdmin = tc.isAdmin
			got := DecidePortal(PortalInput{
				Authenticated:     true,
				Companies:         refs,
				HasEmployeeAccess: tc.hasEmp,
			})
			assert.Equal(t, tc.expected, got)
			assert.NotEqual(t, PortalCompanySelection, got,
				"single-company sessions never see company selection")
		})
	}
}

func TestDecidePortal_MultipleCompanies(t *testing.T) {
	// No current company picked yet
	assert.Equal(t, PortalCompanySelection, DecidePortal(PortalInput{
		Authenticated: true,
		Companies:     companies(2),
	}))

	current := "company-b"

	// Both access flags force an explicit portal choice
	assert.Equal(t, PortalSelection, DecidePortal(PortalInput{
		Authenticated:     true,
		Companies:         companies(2),
		CurrentCompanyID:  &current,
		IsAdmin:           true,
		HasEmployeeAccess: true,
	}))

	// Single flag routes directly
	assert.Equal(t, PortalAdmin, DecidePortal(PortalInput{
		Authenticated:    true,
		Companies:        companies(2),
		CurrentCompanyID: &current,
		IsAdmin:          true,
	}))
	assert.Equal(t, PortalEmployee, DecidePortal(PortalInput{
		Authenticated:     true,
		Companies:         companies(2),
		CurrentCompanyID:  &current,
		HasEmployeeAccess: true,
	}))
}

// Admin of company A, employee-only of company B: after switching to B the
// session must land on the employee portal, never admin.
func TestDecidePortal_SwitchToEmployeeOnlyCompany(t *testing.T) {
	refs := []CompanyRef{
		{CompanyID: "company-a", Role: account.RoleOwner, IsAdmin: true},
		{CompanyID: "company-b", Role: account.RoleEmployee, IsAdmin: false},
	}
	current := "company-b"

	got := DecidePortal(PortalInput{
		Authenticated:     true,
		Companies:         refs,
		CurrentCompanyID:  &current,
		IsAdmin:           false,
		HasEmployeeAccess: true,
	})
	assert.Equal(t, PortalEmployee, got)
}

func TestDecidePortal_Idempotent(t *testing.T) {
	current := "company-a"
	in := PortalInput{
		Authenticated:     true,
		Companies:         companies(3),
		CurrentCompanyID:  &current,
		IsAdmin:           true,
		HasEmployeeAccess: true,
	}
	first := DecidePortal(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DecidePortal(in))
	}
}
