package auth

import (
	"context"
	"time"
)

type RefreshTokenRepository interface {
	Store(ctx context.Context, token RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (RefreshToken, error)
	Revoke(ctx context.Context, tokenHash string) error
	RevokeAllForAccount(ctx context.Context, accountID string) error
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
