package middleware

import (
	"fmt"
	"net/http"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
	"github.com/payfitlite/nesthr-backend-go/internal/handler/http/response"
)

// RequirePermission gates a route on the role-permission matrix. The role is
// taken from the token; per-record ownership checks stay in the services.
func RequirePermission(action account.Action, entity account.Entity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := ClaimsFromContext(r.Context())
			if err != nil {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s %s'", action, entity))
				return
			}

			if !account.Can(claims.Role, action, entity) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s %s', but role is '%s'", action, entity, claims.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
