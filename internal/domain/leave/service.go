package leave

import (
	"context"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/identity"
)

type LeaveService interface {
	Create(ctx context.Context, actor identity.Actor, req CreateLeaveRequest) (LeaveResponse, error)
	Get(ctx context.Context, actor identity.Actor, id string) (LeaveResponse, error)
	List(ctx context.Context, actor identity.Actor, filter ListFilter) ([]LeaveResponse, int64, error)
	Update(ctx context.Context, actor identity.Actor, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	Submit(ctx context.Context, actor identity.Actor, id string) (LeaveResponse, error)
	Approve(ctx context.Context, actor identity.Actor, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actor identity.Actor, id string, req RejectRequest) (LeaveResponse, error)
	DeleteDraft(ctx context.Context, actor identity.Actor, id string) error
}
