package company

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/audit"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/company"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/identity"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/membership"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/database"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/storage"
	"github.com/payfitlite/nesthr-backend-go/internal/repository/postgresql"
)

type CompanyServiceImpl struct {
	db          *database.DB
	companies   company.CompanyRepository
	memberships membership.MembershipRepository
	auditLog    audit.AuditRepository
	files       storage.FileStorage
}

func NewCompanyService(
	db *database.DB,
	companies company.CompanyRepository,
	memberships membership.MembershipRepository,
	auditLog audit.AuditRepository,
	files storage.FileStorage,
) company.CompanyService {
	return &CompanyServiceImpl{
		db:          db,
		companies:   companies,
		memberships: memberships,
		auditLog:    auditLog,
		files:       files,
	}
}

func (s *CompanyServiceImpl) record(ctx context.Context, actorID, companyID, action, entity string, entityID string) error {
	return s.auditLog.Record(ctx, audit.Entry{
		CompanyID: &companyID,
		AccountID: actorID,
		Action:    action,
		Entity:    entity,
		EntityID:  &entityID,
	})
}

// authorize checks the actor against the company the route addresses. The
// token role only speaks for the actor's current company, so the membership
// in the target company is what decides. Superusers pass everywhere.
func (s *CompanyServiceImpl) authorize(ctx context.Context, actor identity.Actor, companyID string, action account.Action, entity account.Entity) error {
	if actor.IsSuperuser {
		return nil
	}

	m, err := s.memberships.Get(ctx, actor.AccountID, companyID)
	if err != nil {
		if errors.Is(err, membership.ErrMembershipNotFound) {
			return identity.ErrAccessDenied
		}
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !account.Can(m.Role, action, entity) {
		return account.ErrInsufficientPermissions
	}
	return nil
}

// Create implements company.CompanyService.
func (s *CompanyServiceImpl) Create(ctx context.Context, actor identity.Actor, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if !actor.IsSuperuser {
		return company.CompanyResponse{}, account.ErrSuperuserRequired
	}

	exists, err := s.companies.ExistsByName(ctx, req.Name)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to check company name: %w", err)
	}
	if exists {
		return company.CompanyResponse{}, company.ErrCompanyNameExists
	}

	var created company.Company
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		created, err = s.companies.Create(txCtx, company.Company{
			Name:         req.Name,
			BrandColor:   req.BrandColor,
			BrandIcon:    req.BrandIcon,
			Address:      req.Address,
			City:         req.City,
			PostalCode:   req.PostalCode,
			ContactEmail: req.ContactEmail,
			ContactPhone: req.ContactPhone,
		})
		if err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}

		// the creator owns the new company
		if _, err := s.memberships.Create(txCtx, membership.Membership{
			AccountID: actor.AccountID,
			CompanyID: created.ID,
			Role:      account.RoleOwner,
			IsAdmin:   true,
		}); err != nil {
			return fmt.Errorf("failed to create owner membership: %w", err)
		}

		return s.record(txCtx, actor.AccountID, created.ID, "create", "company", created.ID)
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToResponse(created), nil
}

// Get implements company.CompanyService.
func (s *CompanyServiceImpl) Get(ctx context.Context, actor identity.Actor, id string) (company.CompanyResponse, error) {
	if err := s.authorize(ctx, actor, id, account.ActionRead, account.EntityCompany); err != nil {
		return company.CompanyResponse{}, err
	}

	comp, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToResponse(comp), nil
}

// List implements company.CompanyService.
func (s *CompanyServiceImpl) List(ctx context.Context, limit, offset int) ([]company.CompanyResponse, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	companies, total, err := s.companies.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, comp := range companies {
		responses = append(responses, company.ToResponse(comp))
	}
	return responses, total, nil
}

// Update implements company.CompanyService.
func (s *CompanyServiceImpl) Update(ctx context.Context, actor identity.Actor, id string, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := s.authorize(ctx, actor, id, account.ActionWrite, account.EntityCompany); err != nil {
		return company.CompanyResponse{}, err
	}

	current, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	// resubmitting the current name is a no-op, not a conflict
	if req.Name != nil && *req.Name != current.Name {
		exists, err := s.companies.ExistsByName(ctx, *req.Name)
		if err != nil {
			return company.CompanyResponse{}, fmt.Errorf("failed to check company name: %w", err)
		}
		if exists {
			return company.CompanyResponse{}, company.ErrCompanyNameExists
		}
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.companies.Update(txCtx, id, req); err != nil {
			return err
		}
		return s.record(txCtx, actor.AccountID, id, "update", "company", id)
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	updated, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToResponse(updated), nil
}

// UploadLogo implements company.CompanyService.
func (s *CompanyServiceImpl) UploadLogo(ctx context.Context, actor identity.Actor, id string, file io.Reader, filename, contentType string) (company.CompanyResponse, error) {
	if err := s.authorize(ctx, actor, id, account.ActionWrite, account.EntityCompany); err != nil {
		return company.CompanyResponse{}, err
	}

	if _, err := s.companies.GetByID(ctx, id); err != nil {
		return company.CompanyResponse{}, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	path := fmt.Sprintf("companies/%s/logo-%s%s", id, uuid.New().String(), ext)

	storedPath, err := s.files.Upload(ctx, file, path, contentType)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to store logo: %w", err)
	}
	url, err := s.files.GetURL(ctx, storedPath, 0)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to resolve logo url: %w", err)
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.companies.Update(txCtx, id, company.UpdateCompanyRequest{LogoURL: &url}); err != nil {
			return err
		}
		return s.record(txCtx, actor.AccountID, id, "upload_logo", "company", id)
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	updated, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToResponse(updated), nil
}

// AddMember implements company.CompanyService.
func (s *CompanyServiceImpl) AddMember(ctx context.Context, actor identity.Actor, companyID string, req membership.AddMemberRequest) (membership.MembershipResponse, error) {
	if err := s.authorize(ctx, actor, companyID, account.ActionAdmin, account.EntitySettings); err != nil {
		return membership.MembershipResponse{}, err
	}

	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		return membership.MembershipResponse{}, err
	}

	var created membership.Membership
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		var err error
		created, err = s.memberships.Create(txCtx, membership.Membership{
			AccountID: req.AccountID,
			CompanyID: companyID,
			Role:      req.Role,
			IsAdmin:   req.IsAdmin,
		})
		if err != nil {
			return err
		}
		return s.record(txCtx, actor.AccountID, companyID, "add_member", "membership", created.ID)
	})
	if err != nil {
		return membership.MembershipResponse{}, err
	}
	return membership.ToResponse(created), nil
}

// ListMembers implements company.CompanyService.
func (s *CompanyServiceImpl) ListMembers(ctx context.Context, actor identity.Actor, companyID string) ([]membership.MembershipResponse, error) {
	if err := s.authorize(ctx, actor, companyID, account.ActionAdmin, account.EntitySettings); err != nil {
		return nil, err
	}

	members, err := s.memberships.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]membership.MembershipResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, membership.ToResponse(m))
	}
	return responses, nil
}

// UpdateMemberRole implements company.CompanyService.
func (s *CompanyServiceImpl) UpdateMemberRole(ctx context.Context, actor identity.Actor, companyID, accountID string, req membership.UpdateMemberRoleRequest) error {
	if err := s.authorize(ctx, actor, companyID, account.ActionAdmin, account.EntitySettings); err != nil {
		return err
	}

	if _, err := s.memberships.Get(ctx, accountID, companyID); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.memberships.UpdateRole(txCtx, accountID, companyID, req.Role, req.IsAdmin); err != nil {
			return err
		}
		return s.record(txCtx, actor.AccountID, companyID, "update_member_role", "membership", accountID)
	})
}

// RemoveMember implements company.CompanyService.
func (s *CompanyServiceImpl) RemoveMember(ctx context.Context, actor identity.Actor, companyID, accountID string) error {
	if err := s.authorize(ctx, actor, companyID, account.ActionAdmin, account.EntitySettings); err != nil {
		return err
	}

	if _, err := s.memberships.Get(ctx, accountID, companyID); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.memberships.Delete(txCtx, accountID, companyID); err != nil {
			return err
		}
		return s.record(txCtx, actor.AccountID, companyID, "remove_member", "membership", accountID)
	})
}
