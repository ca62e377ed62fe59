package auth

import (
	"context"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest, track SessionTrackingRequest) (TokenPair, error)
	Login(ctx context.Context, req LoginRequest, track SessionTrackingRequest) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string, track SessionTrackingRequest) (TokenPair, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error

	// GoogleRedirectURL starts the OAuth2 flow; LoginWithGoogle finishes it.
	// Google login only signs in accounts that already exist.
	GoogleRedirectURL(userAgent string) (url string, state string, err error)
	LoginWithGoogle(ctx context.Context, code string, track SessionTrackingRequest) (TokenPair, error)
}
