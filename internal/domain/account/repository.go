package account

import (
	"context"
)

type AccountRepository interface {
	GetByID(ctx context.Context, id string) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	List(ctx context.Context, limit, offset int) ([]Account, int64, error)
	Create(ctx context.Context, newAccount Account) (Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, id string, req UpdateAccountRequest) error
	UpdateRole(ctx context.Context, id string, role Role) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetActive(ctx context.Context, id string, active bool) error
	// SetCurrentCompany updates the account's current-company pointer as a
	// single atomic write. A nil companyID clears the pointer.
	SetCurrentCompany(ctx context.Context, id string, companyID *string) error
	LinkGoogleAccount(ctx context.Context, googleID, email string) (Account, error)
}
