package postgresql

import (
	"context"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/dashboard"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// PendingActions implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) PendingActions(ctx context.Context, companyID string) (dashboard.PendingActions, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM timesheets WHERE company_id = $1 AND status = 'submitted'),
			(SELECT COUNT(*) FROM leave_requests WHERE company_id = $1 AND status = 'submitted'),
			(SELECT COUNT(*) FROM payroll_cycles WHERE company_id = $1 AND status = 'uploaded')
	`

	var p dashboard.PendingActions
	if err := q.QueryRow(ctx, query, companyID).Scan(
		&p.SubmittedTimesheets,
		&p.SubmittedLeave,
		&p.UploadedPayroll,
	); err != nil {
		return dashboard.PendingActions{}, err
	}
	p.Total = p.SubmittedTimesheets + p.SubmittedLeave + p.UploadedPayroll
	return p, nil
}

// EmployeePending implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) EmployeePending(ctx context.Context, companyID, employeeID string) (dashboard.EmployeePending, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM timesheets WHERE company_id = $1 AND employee_id = $2 AND status = 'draft'),
			(SELECT COUNT(*) FROM timesheets WHERE company_id = $1 AND employee_id = $2 AND status = 'submitted'),
			(SELECT COUNT(*) FROM leave_requests WHERE company_id = $1 AND employee_id = $2 AND status = 'draft'),
			(SELECT COUNT(*) FROM leave_requests WHERE company_id = $1 AND employee_id = $2 AND status = 'submitted'),
			(SELECT COUNT(*) FROM timesheets WHERE company_id = $1 AND employee_id = $2 AND status = 'rejected')
			+ (SELECT COUNT(*) FROM leave_requests WHERE company_id = $1 AND employee_id = $2 AND status = 'rejected')
	`

	var p dashboard.EmployeePending
	err := q.QueryRow(ctx, query, companyID, employeeID).Scan(
		&p.DraftTimesheets,
		&p.SubmittedTimesheets,
		&p.DraftLeave,
		&p.SubmittedLeave,
		&p.RejectedItems,
	)
	if err != nil {
		return dashboard.EmployeePending{}, err
	}
	return p, nil
}
