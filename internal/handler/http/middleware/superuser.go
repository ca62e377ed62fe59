package middleware

import (
	"net/http"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
	"github.com/payfitlite/nesthr-backend-go/internal/handler/http/response"
)

// SuperuserOnly restricts a route to platform superusers.
func SuperuserOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := ClaimsFromContext(r.Context())
		if err != nil {
			response.HandleError(w, account.ErrSuperuserRequired)
			return
		}

		if !claims.IsSuperuser {
			response.HandleError(w, account.ErrSuperuserRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
