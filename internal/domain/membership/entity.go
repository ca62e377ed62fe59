package membership

import (
	"time"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
)

// Membership is the per-tenant role grant linking an account to a company.
// An account may hold zero or more memberships; at most one company is
// "current" at a time, tracked by the pointer on the account row.
type Membership struct {
	ID        string
	AccountID string
	CompanyID string
	Role      account.Role
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for listings
	CompanyName *string
}
