package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/audit"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/database"
	"github.com/payfitlite/nesthr-backend-go/internal/repository/postgresql"
)

type AccountServiceImpl struct {
	db       *database.DB
	accounts account.AccountRepository
	auditLog audit.AuditRepository
}

func NewAccountService(db *database.DB, accounts account.AccountRepository, auditLog audit.AuditRepository) account.AccountService {
	return &AccountServiceImpl{db: db, accounts: accounts, auditLog: auditLog}
}

func (s *AccountServiceImpl) record(ctx context.Context, actorID, action, entityID string) error {
	return s.auditLog.Record(ctx, audit.Entry{
		AccountID: actorID,
		Action:    action,
		Entity:    "account",
		EntityID:  &entityID,
	})
}

// Create implements account.AccountService.
func (s *AccountServiceImpl) Create(ctx context.Context, actorID string, req account.CreateAccountRequest) (account.AccountResponse, error) {
	exists, err := s.accounts.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return account.AccountResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return account.AccountResponse{}, account.ErrAccountEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return account.AccountResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	var created account.Account
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		created, err = s.accounts.Create(txCtx, account.Account{
			Email:        req.Email,
			PasswordHash: &passwordHash,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Role:         req.Role,
			IsActive:     true,
			IsSuperuser:  req.IsSuperuser,
		})
		if err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}
		return s.record(txCtx, actorID, "create", created.ID)
	})
	if err != nil {
		return account.AccountResponse{}, err
	}
	return account.ToResponse(created), nil
}

// Get implements account.AccountService.
func (s *AccountServiceImpl) Get(ctx context.Context, id string) (account.AccountResponse, error) {
	acc, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return account.AccountResponse{}, err
	}
	return account.ToResponse(acc), nil
}

// List implements account.AccountService.
func (s *AccountServiceImpl) List(ctx context.Context, limit, offset int) ([]account.AccountResponse, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	accounts, total, err := s.accounts.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]account.AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		responses = append(responses, account.ToResponse(acc))
	}
	return responses, total, nil
}

// Update implements account.AccountService.
func (s *AccountServiceImpl) Update(ctx context.Context, actorID, id string, req account.UpdateAccountRequest) (account.AccountResponse, error) {
	current, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return account.AccountResponse{}, err
	}

	// resubmitting the current email is a no-op, not a conflict
	if req.Email != nil && *req.Email != current.Email {
		exists, err := s.accounts.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return account.AccountResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return account.AccountResponse{}, account.ErrAccountEmailExists
		}
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.accounts.Update(txCtx, id, req); err != nil {
			return err
		}
		return s.record(txCtx, actorID, "update", id)
	})
	if err != nil {
		return account.AccountResponse{}, err
	}

	updated, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return account.AccountResponse{}, err
	}
	return account.ToResponse(updated), nil
}

// UpdateRole implements account.AccountService.
func (s *AccountServiceImpl) UpdateRole(ctx context.Context, actorID, id string, req account.UpdateAccountRoleRequest) (account.AccountResponse, error) {
	if _, err := s.accounts.GetByID(ctx, id); err != nil {
		return account.AccountResponse{}, err
	}

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.accounts.UpdateRole(txCtx, id, req.Role); err != nil {
			return err
		}
		return s.record(txCtx, actorID, "update_role", id)
	})
	if err != nil {
		return account.AccountResponse{}, err
	}

	updated, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return account.AccountResponse{}, err
	}
	return account.ToResponse(updated), nil
}

// Deactivate implements account.AccountService.
func (s *AccountServiceImpl) Deactivate(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return account.ErrCannotDeactivateSelf
	}
	if _, err := s.accounts.GetByID(ctx, id); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.accounts.SetActive(txCtx, id, false); err != nil {
			return err
		}
		return s.record(txCtx, actorID, "deactivate", id)
	})
}

// Reactivate implements account.AccountService.
func (s *AccountServiceImpl) Reactivate(ctx context.Context, actorID, id string) error {
	if _, err := s.accounts.GetByID(ctx, id); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.accounts.SetActive(txCtx, id, true); err != nil {
			return err
		}
		return s.record(txCtx, actorID, "reactivate", id)
	})
}
