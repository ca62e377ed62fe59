package middleware

import (
	"net/http"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
	"github.com/payfitlite/nesthr-backend-go/internal/handler/http/response"
)

// RequireCompany rejects requests whose token carries no current company.
// Tenant-scoped routes sit behind this so every service call below already
// has a company to scope by.
func RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := ClaimsFromContext(r.Context())
		if err != nil {
			response.HandleError(w, account.ErrCompanyIDRequired)
			return
		}

		if claims.CompanyID == nil || *claims.CompanyID == "" {
			response.HandleError(w, account.ErrCompanyIDRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
