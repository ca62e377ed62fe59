package dashboard

import (
	"context"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/identity"
)

type DashboardService interface {
	// Pending aggregates company-wide items awaiting review.
	Pending(ctx context.Context, actor identity.Actor) (PendingActions, error)

	// EmployeePending aggregates the actor's own outstanding items.
	EmployeePending(ctx context.Context, actor identity.Actor) (EmployeePending, error)
}
