package cron

import (
	"context"
	"time"

	"github.com/payfitlite/nesthr-backend-go/internal/config"
)

// PayrollArchiver is implemented by the payroll service.
type PayrollArchiver interface {
	ArchiveStaleCycles(ctx context.Context, olderThan time.Duration) (int, error)
}

// PayrollJobs contains payroll-related cron jobs
type PayrollJobs struct {
	archiver PayrollArchiver
	cfg      config.PayrollConfig
}

func NewPayrollJobs(archiver PayrollArchiver, cfg config.PayrollConfig) *PayrollJobs {
	return &PayrollJobs{archiver: archiver, cfg: cfg}
}

// RegisterJobs registers all payroll-related cron jobs
func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(
		"archive_approved_payroll_cycles",
		j.cfg.ArchiveInterval,
		j.ArchiveApprovedCycles,
	)
}

// ArchiveApprovedCycles moves approved cycles past the retention window to
// archived.
func (j *PayrollJobs) ArchiveApprovedCycles(ctx context.Context) error {
	olderThan := time.Duration(j.cfg.ArchiveAfterDays) * 24 * time.Hour
	_, err := j.archiver.ArchiveStaleCycles(ctx, olderThan)
	return err
}
