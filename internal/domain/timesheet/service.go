package timesheet

import (
	"context"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/identity"
)

type TimesheetService interface {
	// Create opens a draft for the actor's own employee record.
	Create(ctx context.Context, actor identity.Actor, req CreateTimesheetRequest) (TimesheetResponse, error)
	Get(ctx context.Context, actor identity.Actor, id string) (TimesheetResponse, error)
	List(ctx context.Context, actor identity.Actor, filter ListFilter) ([]TimesheetResponse, int64, error)

	// Update edits a draft or rejected sheet; owners only.
	Update(ctx context.Context, actor identity.Actor, id string, req UpdateTimesheetRequest) (TimesheetResponse, error)
	Submit(ctx context.Context, actor identity.Actor, id string) (TimesheetResponse, error)
	Approve(ctx context.Context, actor identity.Actor, id string) (TimesheetResponse, error)
	Reject(ctx context.Context, actor identity.Actor, id string, req RejectRequest) (TimesheetResponse, error)
	DeleteDraft(ctx context.Context, actor identity.Actor, id string) error
}
