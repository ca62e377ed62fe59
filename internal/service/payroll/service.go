package payroll

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/audit"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/identity"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/payroll"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/database"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/storage"
	"github.com/payfitlite/nesthr-backend-go/internal/repository/postgresql"
)

// maxDocumentSize caps uploaded payslip bundles at 20 MiB.
const maxDocumentSize = 20 << 20

var allowedDocumentExts = map[string]bool{
	".pdf":  true,
	".zip":  true,
	".csv":  true,
	".xlsx": true,
}

type PayrollServiceImpl struct {
	db       *database.DB
	payrolls payroll.PayrollRepository
	auditLog audit.AuditRepository
	files    storage.FileStorage
}

func NewPayrollService(
	db *database.DB,
	payrolls payroll.PayrollRepository,
	auditLog audit.AuditRepository,
	files storage.FileStorage,
) payroll.PayrollService {
	return &PayrollServiceImpl{db: db, payrolls: payrolls, auditLog: auditLog, files: files}
}

func (s *PayrollServiceImpl) record(ctx context.Context, actor identity.Actor, action, entityID string) error {
	companyID := actor.CompanyID
	return s.auditLog.Record(ctx, audit.Entry{
		CompanyID: &companyID,
		AccountID: actor.AccountID,
		Action:    action,
		Entity:    "payroll_cycle",
		EntityID:  &entityID,
	})
}

// CreateCycle implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateCycle(ctx context.Context, actor identity.Actor, req payroll.CreateCycleRequest) (payroll.CycleResponse, error) {
	// one cycle per company per period
	_, err := s.payrolls.GetByPeriod(ctx, actor.CompanyID, req.PeriodYear, req.PeriodMonth)
	switch {
	case err == nil:
		return payroll.CycleResponse{}, payroll.ErrCycleExists
	case !errors.Is(err, payroll.ErrCycleNotFound):
		return payroll.CycleResponse{}, fmt.Errorf("failed to check payroll period: %w", err)
	}

	var documentPath *string
	if req.FileHeader != nil {
		if req.FileHeader.Size > maxDocumentSize {
			return payroll.CycleResponse{}, payroll.ErrDocumentTooLarge
		}
		ext := strings.ToLower(filepath.Ext(req.FileHeader.Filename))
		if !allowedDocumentExts[ext] {
			return payroll.CycleResponse{}, payroll.ErrUnsupportedFormat
		}

		path := fmt.Sprintf("payroll/%s/%d-%02d-%s%s",
			actor.CompanyID, req.PeriodYear, req.PeriodMonth, uuid.New().String(), ext)
		stored, err := s.files.Upload(ctx, req.File, path, req.FileHeader.Header.Get("Content-Type"))
		if err != nil {
			return payroll.CycleResponse{}, fmt.Errorf("failed to store payroll document: %w", err)
		}
		documentPath = &stored
	}

	var created payroll.PayrollCycle
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		var err error
		created, err = s.payrolls.Create(txCtx, payroll.PayrollCycle{
			CompanyID:     actor.CompanyID,
			PeriodYear:    req.PeriodYear,
			PeriodMonth:   req.PeriodMonth,
			TotalGross:    req.ParsedGross,
			TotalNet:      req.ParsedNet,
			EmployeeCount: req.EmployeeCount,
			DocumentPath:  documentPath,
			Status:        payroll.StatusUploaded,
		})
		if err != nil {
			return err
		}
		return s.record(txCtx, actor, "create", created.ID)
	})
	if err != nil {
		// a stored document for a failed insert is an orphan; best effort cleanup
		if documentPath != nil {
			_ = s.files.Delete(ctx, *documentPath)
		}
		return payroll.CycleResponse{}, err
	}
	return payroll.ToResponse(created), nil
}

// Get implements payroll.PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, actor identity.Actor, id string) (payroll.CycleResponse, error) {
	cycle, err := s.payrolls.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return payroll.CycleResponse{}, err
	}
	return payroll.ToResponse(cycle), nil
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, actor identity.Actor, filter payroll.ListFilter) ([]payroll.CycleResponse, int64, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	cycles, total, err := s.payrolls.List(ctx, actor.CompanyID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]payroll.CycleResponse, 0, len(cycles))
	for _, cycle := range cycles {
		responses = append(responses, payroll.ToResponse(cycle))
	}
	return responses, total, nil
}

// Approve implements payroll.PayrollService.
func (s *PayrollServiceImpl) Approve(ctx context.Context, actor identity.Actor, id string) (payroll.CycleResponse, error) {
	cycle, err := s.payrolls.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return payroll.CycleResponse{}, err
	}
	if !cycle.CanApprove() {
		return payroll.CycleResponse{}, payroll.ErrCycleNotUploaded
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.payrolls.SetStatus(txCtx, actor.CompanyID, id, payroll.StatusApproved, &actor.AccountID); err != nil {
			return err
		}
		return s.record(txCtx, actor, "approve", id)
	})
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	updated, err := s.payrolls.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return payroll.CycleResponse{}, err
	}
	return payroll.ToResponse(updated), nil
}

// Archive implements payroll.PayrollService.
func (s *PayrollServiceImpl) Archive(ctx context.Context, actor identity.Actor, id string) (payroll.CycleResponse, error) {
	cycle, err := s.payrolls.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return payroll.CycleResponse{}, err
	}
	if !cycle.CanArchive() {
		return payroll.CycleResponse{}, payroll.ErrCycleNotApproved
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.payrolls.SetStatus(txCtx, actor.CompanyID, id, payroll.StatusArchived, nil); err != nil {
			return err
		}
		return s.record(txCtx, actor, "archive", id)
	})
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	updated, err := s.payrolls.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return payroll.CycleResponse{}, err
	}
	return payroll.ToResponse(updated), nil
}

// DocumentURL implements payroll.PayrollService.
func (s *PayrollServiceImpl) DocumentURL(ctx context.Context, actor identity.Actor, id string) (string, error) {
	cycle, err := s.payrolls.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return "", err
	}
	if cycle.DocumentPath == nil {
		return "", payroll.ErrCycleNotFound
	}
	return s.files.GetURL(ctx, *cycle.DocumentPath, 15*time.Minute)
}

// ArchiveStaleCycles implements payroll.PayrollService. Runs from the
// scheduler without an actor; the sweep covers every company.
func (s *PayrollServiceImpl) ArchiveStaleCycles(ctx context.Context, olderThan time.Duration) (int, error) {
	ids, err := s.payrolls.ArchiveApprovedBefore(ctx, time.Now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}
