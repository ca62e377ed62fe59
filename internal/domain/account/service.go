package account

import (
	"context"
)

// AccountService is the superuser-facing account administration surface.
type AccountService interface {
	Create(ctx context.Context, actorID string, req CreateAccountRequest) (AccountResponse, error)
	Get(ctx context.Context, id string) (AccountResponse, error)
	List(ctx context.Context, limit, offset int) ([]AccountResponse, int64, error)
	Update(ctx context.Context, actorID, id string, req UpdateAccountRequest) (AccountResponse, error)
	UpdateRole(ctx context.Context, actorID, id string, req UpdateAccountRoleRequest) (AccountResponse, error)

	// Deactivate blocks future logins without deleting history. An account
	// can never deactivate itself.
	Deactivate(ctx context.Context, actorID, id string) error
	Reactivate(ctx context.Context, actorID, id string) error
}
