package middleware

import (
	"context"

	"github.com/go-chi/jwtauth/v5"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/auth"
)

// Claims is the decoded access-token payload handlers work with.
type Claims struct {
	AccountID   string
	Email       string
	Role        account.Role
	CompanyID   *string
	IsAdmin     bool
	IsSuperuser bool
}

// ClaimsFromContext decodes the verified token claims placed in the request
// context by jwtauth.Verifier.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, raw, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, auth.ErrInvalidToken
	}

	accountID, ok := raw["account_id"].(string)
	if !ok || accountID == "" {
		return Claims{}, auth.ErrInvalidToken
	}

	claims := Claims{AccountID: accountID}
	if email, ok := raw["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := raw["role"].(string); ok {
		claims.Role = account.Role(role)
	}
	if companyID, ok := raw["company_id"].(string); ok && companyID != "" {
		claims.CompanyID = &companyID
	}
	if isAdmin, ok := raw["is_admin"].(bool); ok {
		claims.IsAdmin = isAdmin
	}
	if isSuperuser, ok := raw["is_superuser"].(bool); ok {
		claims.IsSuperuser = isSuperuser
	}
	return claims, nil
}
