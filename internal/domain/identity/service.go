package identity

import (
	"context"
)

// SwitchResult carries the refreshed company context plus a re-minted access
// token, since company scope is baked into the token claims.
type SwitchResult struct {
	Company              CurrentCompany `json:"company"`
	AccessToken          string         `json:"access_token"`
	AccessTokenExpiresIn int64          `json:"access_token_expires_in"`
}

type IdentityService interface {
	// ResolveUser merges the account with its memberships into the single
	// identity snapshot the rest of the request runs under.
	ResolveUser(ctx context.Context, accountID string) (UserContext, error)

	// SwitchCompany validates membership (superusers bypass), repoints the
	// account's current company, and returns the refreshed context.
	SwitchCompany(ctx context.Context, accountID, companyID string) (SwitchResult, error)

	// CurrentCompany returns the refreshed context of the selected company.
	CurrentCompany(ctx context.Context, accountID string) (CurrentCompany, error)

	// Portal resolves the session state and runs the portal decision.
	Portal(ctx context.Context, accountID string) (PortalDecision, error)
}
