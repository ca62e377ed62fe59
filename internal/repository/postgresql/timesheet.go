package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/timesheet"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/database"
)

const timesheetColumns = `t.id, t.company_id, t.employee_id, t.period_start,
	   t.period_end, t.hours_worked, t.overtime_hours, t.notes, t.status,
	   t.submitted_at, t.reviewed_by, t.reviewed_at, t.rejection_reason,
	   t.created_at, t.updated_at`

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

func scanTimesheet(row pgx.Row, withEmployee bool) (timesheet.Timesheet, error) {
	var t timesheet.Timesheet
	dest := []interface{}{
		&t.ID,
		&t.CompanyID,
		&t.EmployeeID,
		&t.PeriodStart,
		&t.PeriodEnd,
		&t.HoursWorked,
		&t.OvertimeHours,
		&t.Notes,
		&t.Status,
		&t.SubmittedAt,
		&t.ReviewedBy,
		&t.ReviewedAt,
		&t.RejectionReason,
		&t.CreatedAt,
		&t.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &t.EmployeeName)
	}
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, err
	}
	return t, nil
}

// GetByID implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, companyID, id string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `, e.full_name
		FROM timesheets t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.company_id = $1 AND t.id = $2
	`
	return scanTimesheet(q.QueryRow(ctx, query, companyID, id), true)
}

// List implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) List(ctx context.Context, companyID string, filter timesheet.ListFilter) ([]timesheet.Timesheet, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"t.company_id = $1"}
	args := []interface{}{companyID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where = append(where, "t.employee_id = $"+itoa(len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, "t.status = $"+itoa(len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM timesheets t WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit)
	limitPos := itoa(len(args))
	args = append(args, filter.Offset)
	offsetPos := itoa(len(args))

	query := `
		SELECT ` + timesheetColumns + `, e.full_name
		FROM timesheets t
		JOIN employees e ON e.id = t.employee_id
		WHERE ` + whereClause + `
		ORDER BY t.period_start DESC
		LIMIT $` + limitPos + ` OFFSET $` + offsetPos
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var sheets []timesheet.Timesheet
	for rows.Next() {
		t, err := scanTimesheet(rows, true)
		if err != nil {
			return nil, 0, err
		}
		sheets = append(sheets, t)
	}
	return sheets, total, rows.Err()
}

// Create implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Create(ctx context.Context, t timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (
			company_id, employee_id, period_start, period_end,
			hours_worked, overtime_hours, notes, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + strings.ReplaceAll(timesheetColumns, "t.", "") + `
	`
	return scanTimesheet(q.QueryRow(ctx, query,
		t.CompanyID,
		t.EmployeeID,
		t.PeriodStart,
		t.PeriodEnd,
		t.HoursWorked,
		t.OvertimeHours,
		t.Notes,
		t.Status,
	), false)
}

// Update implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Update(ctx context.Context, companyID, id string, req timesheet.UpdateTimesheetRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{companyID, id}

	appendSet := func(col string, val interface{}) {
		args = append(args, val)
		sets = append(sets, col+" = $"+itoa(len(args)))
	}

	if req.ParsedHours != nil {
		appendSet("hours_worked", *req.ParsedHours)
	}
	if req.ParsedOvertime != nil {
		appendSet("overtime_hours", *req.ParsedOvertime)
	}
	if req.Notes != nil {
		appendSet("notes", *req.Notes)
	}

	query := `UPDATE timesheets SET ` + strings.Join(sets, ", ") + ` WHERE company_id = $1 AND id = $2`
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}
	return nil
}

// SetStatus implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) SetStatus(ctx context.Context, companyID, id string, status timesheet.Status, reviewedBy *string, rejectionReason *string) error {
	q := GetQuerier(ctx, r.db)

	var query string
	switch status {
	case timesheet.StatusSubmitted:
		query = `
			UPDATE timesheets
			SET status = $1, submitted_at = NOW(), reviewed_by = NULL,
			    reviewed_at = NULL, rejection_reason = NULL, updated_at = NOW()
			WHERE company_id = $2 AND id = $3
		`
		tag, err := q.Exec(ctx, query, status, companyID, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return timesheet.ErrTimesheetNotFound
		}
		return nil
	default:
		query = `
			UPDATE timesheets
			SET status = $1, reviewed_by = $2, reviewed_at = NOW(),
			    rejection_reason = $3, updated_at = NOW()
			WHERE company_id = $4 AND id = $5
		`
		tag, err := q.Exec(ctx, query, status, reviewedBy, rejectionReason, companyID, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return timesheet.ErrTimesheetNotFound
		}
		return nil
	}
}

// DeleteDraft implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) DeleteDraft(ctx context.Context, companyID, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM timesheets WHERE company_id = $1 AND id = $2 AND status = 'draft'`,
		companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}
	return nil
}

// HasOverlap implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) HasOverlap(ctx context.Context, companyID, employeeID string, periodStart, periodEnd string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM timesheets
			WHERE company_id = $1 AND employee_id = $2
			  AND period_start <= $4::date AND period_end >= $3::date
			  AND ($5::uuid IS NULL OR id <> $5::uuid)
		)
	`
	var exists bool
	err := q.QueryRow(ctx, query, companyID, employeeID, periodStart, periodEnd, excludeID).Scan(&exists)
	return exists, err
}

// CountByStatus implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) CountByStatus(ctx context.Context, companyID string, status timesheet.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM timesheets WHERE company_id = $1 AND status = $2`,
		companyID, status).Scan(&count)
	return count, err
}
