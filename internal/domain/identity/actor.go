package identity

import (
	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
)

// Actor is the caller identity the HTTP layer hands to services, decoded
// from the access token. CompanyID is empty on routes outside a company
// context.
type Actor struct {
	AccountID   string
	Email       string
	Role        account.Role
	CompanyID   string
	IsAdmin     bool
	IsSuperuser bool
}

// CanApprove reports whether the actor's role reviews submissions of the
// given kind.
func (a Actor) CanApprove(entity account.Entity) bool {
	return account.Can(a.Role, account.ActionApprove, entity)
}
