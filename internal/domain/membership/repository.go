package membership

import (
	"context"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
)

type MembershipRepository interface {
	Get(ctx context.Context, accountID, companyID string) (Membership, error)
	ListByAccount(ctx context.Context, accountID string) ([]Membership, error)
	ListByCompany(ctx context.Context, companyID string) ([]Membership, error)
	Create(ctx context.Context, m Membership) (Membership, error)
	UpdateRole(ctx context.Context, accountID, companyID string, role account.Role, isAdmin bool) error
	Delete(ctx context.Context, accountID, companyID string) error
	Exists(ctx context.Context, accountID, companyID string) (bool, error)
}
