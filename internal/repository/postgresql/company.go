package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/company"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/database"
)

const companyColumns = `id, name, brand_color, brand_icon, logo_url, address,
	   city, postal_code, contact_email, contact_phone, created_at, updated_at`

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.BrandColor,
		&c.BrandIcon,
		&c.LogoURL,
		&c.Address,
		&c.City,
		&c.PostalCode,
		&c.ContactEmail,
		&c.ContactPhone,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}

// GetByID implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return scanCompany(q.QueryRow(ctx, query, id))
}

// List implements company.CompanyRepository.
func (r *companyRepositoryImpl) List(ctx context.Context, limit, offset int) ([]company.Company, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + companyColumns + `
		FROM companies
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		companies = append(companies, c)
	}
	return companies, total, rows.Err()
}

// Create implements company.CompanyRepository.
func (r *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (
			name, brand_color, brand_icon, logo_url, address, city,
			postal_code, contact_email, contact_phone
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + companyColumns + `
	`
	return scanCompany(q.QueryRow(ctx, query,
		newCompany.Name,
		newCompany.BrandColor,
		newCompany.BrandIcon,
		newCompany.LogoURL,
		newCompany.Address,
		newCompany.City,
		newCompany.PostalCode,
		newCompany.ContactEmail,
		newCompany.ContactPhone,
	))
}

// Update implements company.CompanyRepository.
func (r *companyRepositoryImpl) Update(ctx context.Context, id string, req company.UpdateCompanyRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id}

	appendSet := func(col string, val interface{}) {
		args = append(args, val)
		sets = append(sets, col+" = $"+itoa(len(args)))
	}

	if req.Name != nil {
		appendSet("name", *req.Name)
	}
	if req.BrandColor != nil {
		appendSet("brand_color", *req.BrandColor)
	}
	if req.BrandIcon != nil {
		appendSet("brand_icon", *req.BrandIcon)
	}
	if req.LogoURL != nil {
		appendSet("logo_url", *req.LogoURL)
	}
	if req.Address != nil {
		appendSet("address", *req.Address)
	}
	if req.City != nil {
		appendSet("city", *req.City)
	}
	if req.PostalCode != nil {
		appendSet("postal_code", *req.PostalCode)
	}
	if req.ContactEmail != nil {
		appendSet("contact_email", *req.ContactEmail)
	}
	if req.ContactPhone != nil {
		appendSet("contact_phone", *req.ContactPhone)
	}

	query := `UPDATE companies SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}

// ExistsByName implements company.CompanyRepository.
func (r *companyRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM companies WHERE LOWER(name) = LOWER($1))`, name,
	).Scan(&exists)
	return exists, err
}
