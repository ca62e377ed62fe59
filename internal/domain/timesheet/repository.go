package timesheet

import "context"

type TimesheetRepository interface {
	GetByID(ctx context.Context, companyID, id string) (Timesheet, error)
	List(ctx context.Context, companyID string, filter ListFilter) ([]Timesheet, int64, error)
	Create(ctx context.Context, t Timesheet) (Timesheet, error)
	Update(ctx context.Context, companyID, id string, req UpdateTimesheetRequest) error
	SetStatus(ctx context.Context, companyID, id string, status Status, reviewedBy *string, rejectionReason *string) error
	DeleteDraft(ctx context.Context, companyID, id string) error
	HasOverlap(ctx context.Context, companyID, employeeID string, periodStart, periodEnd string, excludeID *string) (bool, error)
	CountByStatus(ctx context.Context, companyID string, status Status) (int64, error)
}
