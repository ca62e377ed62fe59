package leave

import "context"

type LeaveRepository interface {
	GetByID(ctx context.Context, companyID, id string) (LeaveRequest, error)
	List(ctx context.Context, companyID string, filter ListFilter) ([]LeaveRequest, int64, error)
	Create(ctx context.Context, l LeaveRequest) (LeaveRequest, error)
	Update(ctx context.Context, companyID, id string, req UpdateLeaveRequest) error
	SetStatus(ctx context.Context, companyID, id string, status Status, reviewedBy *string, rejectionReason *string) error
	DeleteDraft(ctx context.Context, companyID, id string) error
	CountByStatus(ctx context.Context, companyID string, status Status) (int64, error)
}
