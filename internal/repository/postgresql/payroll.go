package postgresql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/payroll"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/database"
)

const payrollColumns = `id, company_id, period_year, period_month, total_gross,
	   total_net, employee_count, document_path, status, approved_by,
	   approved_at, archived_at, created_at, updated_at`

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

func scanPayrollCycle(row pgx.Row) (payroll.PayrollCycle, error) {
	var p payroll.PayrollCycle
	err := row.Scan(
		&p.ID,
		&p.CompanyID,
		&p.PeriodYear,
		&p.PeriodMonth,
		&p.TotalGross,
		&p.TotalNet,
		&p.EmployeeCount,
		&p.DocumentPath,
		&p.Status,
		&p.ApprovedBy,
		&p.ApprovedAt,
		&p.ArchivedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollCycle{}, payroll.ErrCycleNotFound
		}
		return payroll.PayrollCycle{}, err
	}
	return p, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, companyID, id string) (payroll.PayrollCycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payroll_cycles WHERE company_id = $1 AND id = $2`
	return scanPayrollCycle(q.QueryRow(ctx, query, companyID, id))
}

// GetByPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByPeriod(ctx context.Context, companyID string, year, month int) (payroll.PayrollCycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_cycles
		WHERE company_id = $1 AND period_year = $2 AND period_month = $3
	`
	return scanPayrollCycle(q.QueryRow(ctx, query, companyID, year, month))
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, companyID string, filter payroll.ListFilter) ([]payroll.PayrollCycle, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"company_id = $1"}
	args := []interface{}{companyID}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, "status = $"+itoa(len(args)))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		where = append(where, "period_year = $"+itoa(len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payroll_cycles WHERE `+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit)
	limitPos := itoa(len(args))
	args = append(args, filter.Offset)
	offsetPos := itoa(len(args))

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_cycles
		WHERE ` + whereClause + `
		ORDER BY period_year DESC, period_month DESC
		LIMIT $` + limitPos + ` OFFSET $` + offsetPos
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var cycles []payroll.PayrollCycle
	for rows.Next() {
		p, err := scanPayrollCycle(rows)
		if err != nil {
			return nil, 0, err
		}
		cycles = append(cycles, p)
	}
	return cycles, total, rows.Err()
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, p payroll.PayrollCycle) (payroll.PayrollCycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_cycles (
			company_id, period_year, period_month, total_gross, total_net,
			employee_count, document_path, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + payrollColumns + `
	`
	created, err := scanPayrollCycle(q.QueryRow(ctx, query,
		p.CompanyID,
		p.PeriodYear,
		p.PeriodMonth,
		p.TotalGross,
		p.TotalNet,
		p.EmployeeCount,
		p.DocumentPath,
		p.Status,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.PayrollCycle{}, payroll.ErrCycleExists
		}
		return payroll.PayrollCycle{}, err
	}
	return created, nil
}

// SetStatus implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) SetStatus(ctx context.Context, companyID, id string, status payroll.Status, actorID *string) error {
	q := GetQuerier(ctx, r.db)

	var tag pgconn.CommandTag
	var err error
	switch status {
	case payroll.StatusApproved:
		tag, err = q.Exec(ctx, `
			UPDATE payroll_cycles
			SET status = $1, approved_by = $2, approved_at = NOW(), updated_at = NOW()
			WHERE company_id = $3 AND id = $4
		`, status, actorID, companyID, id)
	case payroll.StatusArchived:
		tag, err = q.Exec(ctx, `
			UPDATE payroll_cycles
			SET status = $1, archived_at = NOW(), updated_at = NOW()
			WHERE company_id = $2 AND id = $3
		`, status, companyID, id)
	default:
		tag, err = q.Exec(ctx, `
			UPDATE payroll_cycles
			SET status = $1, updated_at = NOW()
			WHERE company_id = $2 AND id = $3
		`, status, companyID, id)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrCycleNotFound
	}
	return nil
}

// ArchiveApprovedBefore implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ArchiveApprovedBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_cycles
		SET status = 'archived', archived_at = NOW(), updated_at = NOW()
		WHERE status = 'approved' AND approved_at < $1
		RETURNING id
	`
	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CountByStatus implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CountByStatus(ctx context.Context, companyID string, status payroll.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM payroll_cycles WHERE company_id = $1 AND status = $2`,
		companyID, status).Scan(&count)
	return count, err
}
