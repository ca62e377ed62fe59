package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	GetByID(ctx context.Context, companyID, id string) (PayrollCycle, error)
	GetByPeriod(ctx context.Context, companyID string, year, month int) (PayrollCycle, error)
	List(ctx context.Context, companyID string, filter ListFilter) ([]PayrollCycle, int64, error)
	Create(ctx context.Context, p PayrollCycle) (PayrollCycle, error)
	SetStatus(ctx context.Context, companyID, id string, status Status, actorID *string) error
	// ArchiveApprovedBefore archives every approved cycle across all
	// companies whose approval predates cutoff. Returns archived ids.
	ArchiveApprovedBefore(ctx context.Context, cutoff time.Time) ([]string, error)
	CountByStatus(ctx context.Context, companyID string, status Status) (int64, error)
}
