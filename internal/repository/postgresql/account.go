package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/database"
)

const accountColumns = `id, email, password_hash, first_name, last_name, role,
	   is_active, is_superuser, current_company_id, oauth_provider,
	   oauth_provider_id, created_at, updated_at`

type accountRepositoryImpl struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) account.AccountRepository {
	return &accountRepositoryImpl{db: db}
}

func scanAccount(row pgx.Row) (account.Account, error) {
	var a account.Account
	err := row.Scan(
		&a.ID,
		&a.Email,
		&a.PasswordHash,
		&a.FirstName,
		&a.LastName,
		&a.Role,
		&a.IsActive,
		&a.IsSuperuser,
		&a.CurrentCompanyID,
		&a.OAuthProvider,
		&a.OAuthProviderID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, err
	}
	return a, nil
}

// GetByID implements account.AccountRepository.
func (r *accountRepositoryImpl) GetByID(ctx context.Context, id string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(q.QueryRow(ctx, query, id))
}

// GetByEmail implements account.AccountRepository.
func (r *accountRepositoryImpl) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE LOWER(email) = LOWER($1)`
	return scanAccount(q.QueryRow(ctx, query, email))
}

// List implements account.AccountRepository.
func (r *accountRepositoryImpl) List(ctx context.Context, limit, offset int) ([]account.Account, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var accounts []account.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, a)
	}
	return accounts, total, rows.Err()
}

// Create implements account.AccountRepository.
func (r *accountRepositoryImpl) Create(ctx context.Context, newAccount account.Account) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accounts (
			email, password_hash, first_name, last_name, role,
			is_active, is_superuser, oauth_provider, oauth_provider_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + accountColumns + `
	`
	return scanAccount(q.QueryRow(ctx, query,
		newAccount.Email,
		newAccount.PasswordHash,
		newAccount.FirstName,
		newAccount.LastName,
		newAccount.Role,
		newAccount.IsActive,
		newAccount.IsSuperuser,
		newAccount.OAuthProvider,
		newAccount.OAuthProviderID,
	))
}

// ExistsByEmail implements account.AccountRepository.
func (r *accountRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE LOWER(email) = LOWER($1))`, email,
	).Scan(&exists)
	return exists, err
}

// Update implements account.AccountRepository.
func (r *accountRepositoryImpl) Update(ctx context.Context, id string, req account.UpdateAccountRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id}

	appendSet := func(col string, val interface{}) {
		args = append(args, val)
		sets = append(sets, col+" = $"+itoa(len(args)))
	}

	if req.FirstName != nil {
		appendSet("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		appendSet("last_name", *req.LastName)
	}
	if req.Email != nil {
		appendSet("email", *req.Email)
	}

	query := `UPDATE accounts SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

// UpdateRole implements account.AccountRepository.
func (r *accountRepositoryImpl) UpdateRole(ctx context.Context, id string, role account.Role) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE accounts SET role = $1, updated_at = NOW() WHERE id = $2`, role, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

// UpdatePassword implements account.AccountRepository.
func (r *accountRepositoryImpl) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE accounts SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

// SetActive implements account.AccountRepository.
func (r *accountRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE accounts SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

// SetCurrentCompany implements account.AccountRepository.
func (r *accountRepositoryImpl) SetCurrentCompany(ctx context.Context, id string, companyID *string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE accounts SET current_company_id = $1, updated_at = NOW() WHERE id = $2`, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

// LinkGoogleAccount implements account.AccountRepository.
func (r *accountRepositoryImpl) LinkGoogleAccount(ctx context.Context, googleID, email string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET oauth_provider = 'google', oauth_provider_id = $1, updated_at = NOW()
		WHERE LOWER(email) = LOWER($2)
		RETURNING ` + accountColumns + `
	`
	return scanAccount(q.QueryRow(ctx, query, googleID, email))
}
