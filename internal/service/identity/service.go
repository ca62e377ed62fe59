package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/audit"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/company"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/employee"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/identity"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/membership"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/database"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/jwt"
	"github.com/payfitlite/nesthr-backend-go/internal/repository/postgresql"
)

type IdentityServiceImpl struct {
	db          *database.DB
	accounts    account.AccountRepository
	memberships membership.MembershipRepository
	companies   company.CompanyRepository
	employees   employee.EmployeeRepository
	auditLog    audit.AuditRepository
	jwtService  jwt.Service
}

func NewIdentityService(
	db *database.DB,
	accounts account.AccountRepository,
	memberships membership.MembershipRepository,
	companies company.CompanyRepository,
	employees employee.EmployeeRepository,
	auditLog audit.AuditRepository,
	jwtService jwt.Service,
) identity.IdentityService {
	return &IdentityServiceImpl{
		db:          db,
		accounts:    accounts,
		memberships: memberships,
		companies:   companies,
		employees:   employees,
		auditLog:    auditLog,
		jwtService:  jwtService,
	}
}

// ResolveUser implements identity.IdentityService. The membership role for
// the current company wins over the account-level role; the latter only
// stands in when no membership applies.
func (s *IdentityServiceImpl) ResolveUser(ctx context.Context, accountID string) (identity.UserContext, error) {
	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return identity.UserContext{}, err
	}
	if !acc.IsActive {
		return identity.UserContext{}, account.ErrAccountInactive
	}

	members, err := s.memberships.ListByAccount(ctx, accountID)
	if err != nil {
		return identity.UserContext{}, fmt.Errorf("failed to list memberships: %w", err)
	}

	uc := identity.UserContext{
		AccountID:   acc.ID,
		Email:       acc.Email,
		FirstName:   acc.FirstName,
		LastName:    acc.LastName,
		Role:        acc.Role,
		IsSuperuser: acc.IsSuperuser,
		Companies:   make([]identity.CompanyRef, 0, len(members)),
	}

	for _, m := range members {
		ref := identity.CompanyRef{
			CompanyID: m.CompanyID,
			Role:      m.Role,
			IsAdmin:   m.IsAdmin,
		}
		if m.CompanyName != nil {
			ref.CompanyName = *m.CompanyName
		}
		uc.Companies = append(uc.Companies, ref)

		if acc.CurrentCompanyID != nil && m.CompanyID == *acc.CurrentCompanyID {
			uc.CompanyID = acc.CurrentCompanyID
			uc.Role = m.Role
			uc.IsAdmin = m.IsAdmin
		}
	}

	if uc.CompanyID == nil && acc.CurrentCompanyID != nil && acc.IsSuperuser {
		// superusers may sit in companies they hold no membership in
		uc.CompanyID = acc.CurrentCompanyID
		uc.IsAdmin = true
	}

	return uc, nil
}

// SwitchCompany implements identity.IdentityService. A denied switch leaves
// the current-company pointer untouched.
func (s *IdentityServiceImpl) SwitchCompany(ctx context.Context, accountID, companyID string) (identity.SwitchResult, error) {
	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return identity.SwitchResult{}, err
	}
	if !acc.IsActive {
		return identity.SwitchResult{}, account.ErrAccountInactive
	}

	comp, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return identity.SwitchResult{}, err
	}

	role := acc.Role
	isAdmin := false
	m, err := s.memberships.Get(ctx, accountID, companyID)
	switch {
	case err == nil:
		role = m.Role
		isAdmin = m.IsAdmin
	case errors.Is(err, membership.ErrMembershipNotFound):
		if !acc.IsSuperuser {
			return identity.SwitchResult{}, identity.ErrAccessDenied
		}
		isAdmin = true
	default:
		return identity.SwitchResult{}, fmt.Errorf("failed to get membership: %w", err)
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.accounts.SetCurrentCompany(txCtx, accountID, &companyID); err != nil {
			return fmt.Errorf("failed to set current company: %w", err)
		}
		return s.auditLog.Record(txCtx, audit.Entry{
			CompanyID: &companyID,
			AccountID: accountID,
			Action:    "switch",
			Entity:    "company",
			EntityID:  &companyID,
		})
	})
	if err != nil {
		return identity.SwitchResult{}, err
	}

	hasEmployeeAccess, err := s.employees.HasActiveByAccount(ctx, companyID, accountID)
	if err != nil {
		return identity.SwitchResult{}, fmt.Errorf("failed to check employee access: %w", err)
	}

	result := identity.SwitchResult{
		Company: identity.CurrentCompany{
			CompanyID:         comp.ID,
			CompanyName:       comp.Name,
			BrandColor:        comp.BrandColor,
			LogoURL:           comp.LogoURL,
			Role:              role,
			IsAdmin:           isAdmin,
			HasEmployeeAccess: hasEmployeeAccess,
		},
	}

	result.AccessToken, result.AccessTokenExpiresIn, err = s.jwtService.GenerateAccessToken(jwt.AccessClaims{
		AccountID:   acc.ID,
		Email:       acc.Email,
		Role:        role,
		CompanyID:   &companyID,
		IsAdmin:     isAdmin,
		IsSuperuser: acc.IsSuperuser,
	})
	if err != nil {
		return identity.SwitchResult{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return result, nil
}

// CurrentCompany implements identity.IdentityService.
func (s *IdentityServiceImpl) CurrentCompany(ctx context.Context, accountID string) (identity.CurrentCompany, error) {
	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return identity.CurrentCompany{}, err
	}
	if acc.CurrentCompanyID == nil {
		return identity.CurrentCompany{}, company.ErrNoCurrentCompany
	}
	companyID := *acc.CurrentCompanyID

	comp, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return identity.CurrentCompany{}, err
	}

	role := acc.Role
	isAdmin := false
	m, err := s.memberships.Get(ctx, accountID, companyID)
	switch {
	case err == nil:
		role = m.Role
		isAdmin = m.IsAdmin
	case errors.Is(err, membership.ErrMembershipNotFound):
		if !acc.IsSuperuser {
			return identity.CurrentCompany{}, identity.ErrAccessDenied
		}
		isAdmin = true
	default:
		return identity.CurrentCompany{}, fmt.Errorf("failed to get membership: %w", err)
	}

	hasEmployeeAccess, err := s.employees.HasActiveByAccount(ctx, companyID, accountID)
	if err != nil {
		return identity.CurrentCompany{}, fmt.Errorf("failed to check employee access: %w", err)
	}

	return identity.CurrentCompany{
		CompanyID:         comp.ID,
		CompanyName:       comp.Name,
		BrandColor:        comp.BrandColor,
		LogoURL:           comp.LogoURL,
		Role:              role,
		IsAdmin:           isAdmin,
		HasEmployeeAccess: hasEmployeeAccess,
	}, nil
}

// Portal implements identity.IdentityService. Session state is resolved
// fresh on every call; nothing about portal access is cached in the token.
func (s *IdentityServiceImpl) Portal(ctx context.Context, accountID string) (identity.PortalDecision, error) {
	uc, err := s.ResolveUser(ctx, accountID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) || errors.Is(err, account.ErrAccountInactive) {
			return identity.DecidePortal(identity.PortalInput{}), nil
		}
		return "", err
	}

	in := identity.PortalInput{
		Authenticated:    true,
		IsSuperuser:      uc.IsSuperuser,
		Companies:        uc.Companies,
		CurrentCompanyID: uc.CompanyID,
		IsAdmin:          uc.IsAdmin,
	}

	// the employee-access flag matters only once a company is in play
	targetCompany := ""
	switch {
	case len(uc.Companies) == 1:
		targetCompany = uc.Companies[0].CompanyID
	case uc.CompanyID != nil:
		targetCompany = *uc.CompanyID
	}
	if targetCompany != "" {
		hasAccess, err := s.employees.HasActiveByAccount(ctx, targetCompany, accountID)
		if err != nil {
			return "", fmt.Errorf("failed to check employee access: %w", err)
		}
		in.HasEmployeeAccess = hasAccess
	}

	return identity.DecidePortal(in), nil
}
