package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrAccountDeactivated  = errors.New("account deactivated")
	ErrOAuthNotConfigured  = errors.New("google oauth is not configured")
	ErrOAuthEmailUnknown   = errors.New("no account registered for this google email")
)
