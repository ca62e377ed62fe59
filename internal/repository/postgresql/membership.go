package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/membership"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/database"
)

type membershipRepositoryImpl struct {
	db *database.DB
}

func NewMembershipRepository(db *database.DB) membership.MembershipRepository {
	return &membershipRepositoryImpl{db: db}
}

// Get implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) Get(ctx context.Context, accountID, companyID string) (membership.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.id, m.account_id, m.company_id, m.role, m.is_admin,
		       m.created_at, m.updated_at, c.name
		FROM memberships m
		JOIN companies c ON c.id = m.company_id
		WHERE m.account_id = $1 AND m.company_id = $2
	`

	var m membership.Membership
	err := q.QueryRow(ctx, query, accountID, companyID).Scan(
		&m.ID,
		&m.AccountID,
		&m.CompanyID,
		&m.Role,
		&m.IsAdmin,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.CompanyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return membership.Membership{}, membership.ErrMembershipNotFound
		}
		return membership.Membership{}, err
	}
	return m, nil
}

// ListByAccount implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) ListByAccount(ctx context.Context, accountID string) ([]membership.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.id, m.account_id, m.company_id, m.role, m.is_admin,
		       m.created_at, m.updated_at, c.name
		FROM memberships m
		JOIN companies c ON c.id = m.company_id
		WHERE m.account_id = $1
		ORDER BY c.name ASC
	`
	rows, err := q.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMemberships(rows)
}

// ListByCompany implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]membership.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.id, m.account_id, m.company_id, m.role, m.is_admin,
		       m.created_at, m.updated_at, c.name
		FROM memberships m
		JOIN companies c ON c.id = m.company_id
		WHERE m.company_id = $1
		ORDER BY m.created_at ASC
	`
	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMemberships(rows)
}

func collectMemberships(rows pgx.Rows) ([]membership.Membership, error) {
	var result []membership.Membership
	for rows.Next() {
		var m membership.Membership
		if err := rows.Scan(
			&m.ID,
			&m.AccountID,
			&m.CompanyID,
			&m.Role,
			&m.IsAdmin,
			&m.CreatedAt,
			&m.UpdatedAt,
			&m.CompanyName,
		); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

// Create implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) Create(ctx context.Context, m membership.Membership) (membership.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO memberships (account_id, company_id, role, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING id, account_id, company_id, role, is_admin, created_at, updated_at
	`

	var created membership.Membership
	err := q.QueryRow(ctx, query, m.AccountID, m.CompanyID, m.Role, m.IsAdmin).Scan(
		&created.ID,
		&created.AccountID,
		&created.CompanyID,
		&created.Role,
		&created.IsAdmin,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return membership.Membership{}, membership.ErrMembershipExists
		}
		return membership.Membership{}, err
	}
	return created, nil
}

// UpdateRole implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) UpdateRole(ctx context.Context, accountID, companyID string, role account.Role, isAdmin bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE memberships
		SET role = $1, is_admin = $2, updated_at = NOW()
		WHERE account_id = $3 AND company_id = $4
	`, role, isAdmin, accountID, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return membership.ErrMembershipNotFound
	}
	return nil
}

// Delete implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) Delete(ctx context.Context, accountID, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM memberships WHERE account_id = $1 AND company_id = $2`, accountID, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return membership.ErrMembershipNotFound
	}
	return nil
}

// Exists implements membership.MembershipRepository.
func (r *membershipRepositoryImpl) Exists(ctx context.Context, accountID, companyID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM memberships WHERE account_id = $1 AND company_id = $2)`,
		accountID, companyID,
	).Scan(&exists)
	return exists, err
}
