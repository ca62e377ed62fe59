package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/leave"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/database"
)

const leaveColumns = `l.id, l.company_id, l.employee_id, l.leave_type,
	   l.start_date, l.end_date, l.reason, l.status, l.submitted_at,
	   l.reviewed_by, l.reviewed_at, l.rejection_reason, l.created_at,
	   l.updated_at`

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func scanLeave(row pgx.Row, withEmployee bool) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	dest := []interface{}{
		&l.ID,
		&l.CompanyID,
		&l.EmployeeID,
		&l.LeaveType,
		&l.StartDate,
		&l.EndDate,
		&l.Reason,
		&l.Status,
		&l.SubmittedAt,
		&l.ReviewedBy,
		&l.ReviewedAt,
		&l.RejectionReason,
		&l.CreatedAt,
		&l.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &l.EmployeeName)
	}
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return l, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, companyID, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, e.full_name
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.company_id = $1 AND l.id = $2
	`
	return scanLeave(q.QueryRow(ctx, query, companyID, id), true)
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, companyID string, filter leave.ListFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"l.company_id = $1"}
	args := []interface{}{companyID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where = append(where, "l.employee_id = $"+itoa(len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, "l.status = $"+itoa(len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM leave_requests l WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit)
	limitPos := itoa(len(args))
	args = append(args, filter.Offset)
	offsetPos := itoa(len(args))

	query := `
		SELECT ` + leaveColumns + `, e.full_name
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE ` + whereClause + `
		ORDER BY l.start_date DESC
		LIMIT $` + limitPos + ` OFFSET $` + offsetPos
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows, true)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, l)
	}
	return requests, total, rows.Err()
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			company_id, employee_id, leave_type, start_date, end_date,
			reason, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + strings.ReplaceAll(leaveColumns, "l.", "") + `
	`
	return scanLeave(q.QueryRow(ctx, query,
		l.CompanyID,
		l.EmployeeID,
		l.LeaveType,
		l.StartDate,
		l.EndDate,
		l.Reason,
		l.Status,
	), false)
}

// Update implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Update(ctx context.Context, companyID, id string, req leave.UpdateLeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{companyID, id}

	appendSet := func(col string, val interface{}) {
		args = append(args, val)
		sets = append(sets, col+" = $"+itoa(len(args)))
	}

	if req.LeaveType != nil {
		appendSet("leave_type", *req.LeaveType)
	}
	if req.ParsedStartDate != nil {
		appendSet("start_date", *req.ParsedStartDate)
	}
	if req.ParsedEndDate != nil {
		appendSet("end_date", *req.ParsedEndDate)
	}
	if req.Reason != nil {
		appendSet("reason", *req.Reason)
	}

	query := `UPDATE leave_requests SET ` + strings.Join(sets, ", ") + ` WHERE company_id = $1 AND id = $2`
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// SetStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) SetStatus(ctx context.Context, companyID, id string, status leave.Status, reviewedBy *string, rejectionReason *string) error {
	q := GetQuerier(ctx, r.db)

	if status == leave.StatusSubmitted {
		tag, err := q.Exec(ctx, `
			UPDATE leave_requests
			SET status = $1, submitted_at = NOW(), reviewed_by = NULL,
			    reviewed_at = NULL, rejection_reason = NULL, updated_at = NOW()
			WHERE company_id = $2 AND id = $3
		`, status, companyID, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return leave.ErrLeaveRequestNotFound
		}
		return nil
	}

	tag, err := q.Exec(ctx, `
		UPDATE leave_requests
		SET status = $1, reviewed_by = $2, reviewed_at = NOW(),
		    rejection_reason = $3, updated_at = NOW()
		WHERE company_id = $4 AND id = $5
	`, status, reviewedBy, rejectionReason, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// DeleteDraft implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) DeleteDraft(ctx context.Context, companyID, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM leave_requests WHERE company_id = $1 AND id = $2 AND status = 'draft'`,
		companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// CountByStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) CountByStatus(ctx context.Context, companyID string, status leave.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM leave_requests WHERE company_id = $1 AND status = $2`,
		companyID, status).Scan(&count)
	return count, err
}
