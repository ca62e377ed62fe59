package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/auth"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/membership"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/database"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/jwt"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/oauth"
	"github.com/payfitlite/nesthr-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db            *database.DB
	accounts      account.AccountRepository
	memberships   membership.MembershipRepository
	refreshTokens auth.RefreshTokenRepository
	jwtService    jwt.Service
	google        oauth.GoogleService
}

// NewAuthService wires the auth flows. google may be nil when OAuth is not
// configured; the Google endpoints then answer ErrOAuthNotConfigured.
func NewAuthService(
	db *database.DB,
	accounts account.AccountRepository,
	memberships membership.MembershipRepository,
	refreshTokens auth.RefreshTokenRepository,
	jwtService jwt.Service,
	google oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		db:            db,
		accounts:      accounts,
		memberships:   memberships,
		refreshTokens: refreshTokens,
		jwtService:    jwtService,
		google:        google,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// hashToken is the storage form of a refresh token; the raw token never
// touches the database.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest, track auth.SessionTrackingRequest) (auth.TokenPair, error) {
	exists, err := a.accounts.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return auth.TokenPair{}, account.ErrAccountEmailExists
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var pair auth.TokenPair
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context, _ pgx.Tx) error {
		created, err := a.accounts.Create(txCtx, account.Account{
			Email:        req.Email,
			PasswordHash: &passwordHash,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Role:         account.RoleEmployee,
			IsActive:     true,
		})
		if err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}

		pair, err = a.issueTokens(txCtx, created, track)
		return err
	})
	if err != nil {
		return auth.TokenPair{}, err
	}
	return pair, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, track auth.SessionTrackingRequest) (auth.TokenPair, error) {
	acc, err := a.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return auth.TokenPair{}, auth.ErrInvalidCredentials
		}
		return auth.TokenPair{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	if acc.PasswordHash == nil {
		return auth.TokenPair{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*acc.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenPair{}, auth.ErrInvalidCredentials
	}
	if !acc.IsActive {
		return auth.TokenPair{}, auth.ErrAccountDeactivated
	}

	var pair auth.TokenPair
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context, _ pgx.Tx) error {
		pair, err = a.issueTokens(txCtx, acc, track)
		return err
	})
	if err != nil {
		return auth.TokenPair{}, err
	}
	return pair, nil
}

// Refresh implements auth.AuthService. The stored record is the source of
// truth: expiry and revocation are checked against the database, and the
// token is rotated on every use.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string, track auth.SessionTrackingRequest) (auth.TokenPair, error) {
	record, err := a.refreshTokens.GetByHash(ctx, hashToken(refreshToken))
	if err != nil {
		return auth.TokenPair{}, err
	}

	if record.RevokedAt != nil {
		return auth.TokenPair{}, auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(record.ExpiresAt) {
		return auth.TokenPair{}, auth.ErrTokenExpired
	}

	acc, err := a.accounts.GetByID(ctx, record.AccountID)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if !acc.IsActive {
		return auth.TokenPair{}, auth.ErrAccountDeactivated
	}

	var pair auth.TokenPair
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := a.refreshTokens.Revoke(txCtx, record.TokenHash); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
		pair, err = a.issueTokens(txCtx, acc, track)
		return err
	})
	if err != nil {
		return auth.TokenPair{}, err
	}
	return pair, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if accessToken != "" {
		a.jwtService.RevokeToken(accessToken)
	}
	if refreshToken != "" {
		if err := a.refreshTokens.Revoke(ctx, hashToken(refreshToken)); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
	}
	return nil
}

// GoogleRedirectURL implements auth.AuthService.
func (a *AuthServiceImpl) GoogleRedirectURL(userAgent string) (string, string, error) {
	if a.google == nil {
		return "", "", auth.ErrOAuthNotConfigured
	}
	state := a.google.GenerateState(userAgent)
	return a.google.RedirectURL(state), state, nil
}

// LoginWithGoogle implements auth.AuthService. Google sign-in never creates
// accounts; only already-registered emails get in.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string, track auth.SessionTrackingRequest) (auth.TokenPair, error) {
	if a.google == nil {
		return auth.TokenPair{}, auth.ErrOAuthNotConfigured
	}

	token, err := a.google.Exchange(ctx, code)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	googleUser, err := a.google.FetchUser(ctx, token)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to fetch google user: %w", err)
	}
	if !googleUser.VerifiedEmail {
		return auth.TokenPair{}, auth.ErrOAuthEmailUnknown
	}

	acc, err := a.accounts.GetByEmail(ctx, googleUser.Email)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return auth.TokenPair{}, auth.ErrOAuthEmailUnknown
		}
		return auth.TokenPair{}, err
	}
	if !acc.IsActive {
		return auth.TokenPair{}, auth.ErrAccountDeactivated
	}

	var pair auth.TokenPair
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context, _ pgx.Tx) error {
		if acc.OAuthProviderID == nil {
			acc, err = a.accounts.LinkGoogleAccount(txCtx, googleUser.GoogleID, acc.Email)
			if err != nil {
				return fmt.Errorf("failed to link google account: %w", err)
			}
		}
		pair, err = a.issueTokens(txCtx, acc, track)
		return err
	})
	if err != nil {
		return auth.TokenPair{}, err
	}
	return pair, nil
}

// issueTokens mints an access/refresh pair for the account and persists the
// refresh token hash. Company-scoped claims come from the membership of the
// current company; a stale pointer simply yields a token without company
// context.
func (a *AuthServiceImpl) issueTokens(ctx context.Context, acc account.Account, track auth.SessionTrackingRequest) (auth.TokenPair, error) {
	claims := jwt.AccessClaims{
		AccountID:   acc.ID,
		Email:       acc.Email,
		Role:        acc.Role,
		IsSuperuser: acc.IsSuperuser,
	}
	if acc.CurrentCompanyID != nil {
		m, err := a.memberships.Get(ctx, acc.ID, *acc.CurrentCompanyID)
		switch {
		case err == nil:
			claims.CompanyID = acc.CurrentCompanyID
			claims.Role = m.Role
			claims.IsAdmin = m.IsAdmin
		case errors.Is(err, membership.ErrMembershipNotFound):
			// lost access since last login; issue a company-less token
		default:
			return auth.TokenPair{}, err
		}
	}

	var pair auth.TokenPair
	var err error
	pair.AccessToken, pair.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(claims)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to create access token: %w", err)
	}
	pair.RefreshToken, pair.RefreshTokenExpiresIn, err = a.jwtService.GenerateRefreshToken(acc.ID)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	record := auth.RefreshToken{
		AccountID: acc.ID,
		TokenHash: hashToken(pair.RefreshToken),
		ExpiresAt: time.Unix(pair.RefreshTokenExpiresIn, 0),
	}
	if track.IPAddress != "" {
		record.IPAddress = &track.IPAddress
	}
	if track.UserAgent != "" {
		record.UserAgent = &track.UserAgent
	}
	if err := a.refreshTokens.Store(ctx, record); err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to save refresh token: %w", err)
	}
	return pair, nil
}
