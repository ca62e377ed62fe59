package http

import (
	"net/http"
	"strconv"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/auth"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/identity"
	"github.com/payfitlite/nesthr-backend-go/internal/handler/http/middleware"
)

// actorFromRequest builds the service-layer actor from the verified token.
// Routes behind RequireCompany are guaranteed a non-empty CompanyID.
func actorFromRequest(r *http.Request) (identity.Actor, error) {
	claims, err := middleware.ClaimsFromContext(r.Context())
	if err != nil {
		return identity.Actor{}, err
	}

	actor := identity.Actor{
		AccountID:   claims.AccountID,
		Email:       claims.Email,
		Role:        claims.Role,
		IsAdmin:     claims.IsAdmin,
		IsSuperuser: claims.IsSuperuser,
	}
	if claims.CompanyID != nil {
		actor.CompanyID = *claims.CompanyID
	}
	return actor, nil
}

func sessionTracking(r *http.Request) auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
}

// parsePagination reads limit/offset query params with sane fallbacks.
func parsePagination(r *http.Request) (limit, offset int) {
	limit = 20
	offset = 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
