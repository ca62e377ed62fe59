package identity

import (
	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
)

// UserContext is the merged identity a request operates under: the account,
// its effective role, and the current company if one is selected.
//
// The per-company membership role is canonical; the account-level role is only
// a fallback for accounts with no membership. ResolveUser is the single place
// that applies this rule.
type UserContext struct {
	AccountID   string        `json:"account_id"`
	Email       string        `json:"email"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	Role        account.Role  `json:"role"`
	IsSuperuser bool          `json:"is_superuser"`
	CompanyID   *string       `json:"company_id"`
	IsAdmin     bool          `json:"is_admin"`
	Companies   []CompanyRef  `json:"companies"`
}

// CompanyRef is one company the account belongs to, with its access flags.
type CompanyRef struct {
	CompanyID   string       `json:"company_id"`
	CompanyName string       `json:"company_name"`
	Role        account.Role `json:"role"`
	IsAdmin     bool         `json:"is_admin"`
}

// CurrentCompany is the refreshed context returned after a company switch.
type CurrentCompany struct {
	CompanyID         string       `json:"company_id"`
	CompanyName       string       `json:"company_name"`
	BrandColor        *string      `json:"brand_color"`
	LogoURL           *string      `json:"logo_url"`
	Role              account.Role `json:"role"`
	IsAdmin           bool         `json:"is_admin"`
	HasEmployeeAccess bool         `json:"has_employee_access"`
}
