package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/auth"
	"github.com/payfitlite/nesthr-backend-go/internal/handler/http/response"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/jwt"
)

// AuthRequired rejects requests without a valid access token. Refresh tokens
// never pass: the type claim must be "access".
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			raw := jwtauth.TokenFromHeader(r)
			if raw != "" && jwtService.IsTokenRevoked(raw) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
