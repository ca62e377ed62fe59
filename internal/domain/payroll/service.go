package payroll

import (
	"context"
	"time"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/identity"
)

type PayrollService interface {
	CreateCycle(ctx context.Context, actor identity.Actor, req CreateCycleRequest) (CycleResponse, error)
	Get(ctx context.Context, actor identity.Actor, id string) (CycleResponse, error)
	List(ctx context.Context, actor identity.Actor, filter ListFilter) ([]CycleResponse, int64, error)
	Approve(ctx context.Context, actor identity.Actor, id string) (CycleResponse, error)
	Archive(ctx context.Context, actor identity.Actor, id string) (CycleResponse, error)

	// DocumentURL resolves a short-lived URL for the payslip bundle.
	DocumentURL(ctx context.Context, actor identity.Actor, id string) (string, error)

	// ArchiveStaleCycles is the scheduled sweep over all companies.
	ArchiveStaleCycles(ctx context.Context, olderThan time.Duration) (int, error)
}
