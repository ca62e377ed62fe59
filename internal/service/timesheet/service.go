package timesheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/audit"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/employee"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/identity"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/timesheet"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/database"
	"github.com/payfitlite/nesthr-backend-go/internal/repository/postgresql"
)

type TimesheetServiceImpl struct {
	db         *database.DB
	timesheets timesheet.TimesheetRepository
	employees  employee.EmployeeRepository
	auditLog   audit.AuditRepository
}

func NewTimesheetService(
	db *database.DB,
	timesheets timesheet.TimesheetRepository,
	employees employee.EmployeeRepository,
	auditLog audit.AuditRepository,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{db: db, timesheets: timesheets, employees: employees, auditLog: auditLog}
}

func (s *TimesheetServiceImpl) record(ctx context.Context, actor identity.Actor, action, entityID string) error {
	companyID := actor.CompanyID
	return s.auditLog.Record(ctx, audit.Entry{
		CompanyID: &companyID,
		AccountID: actor.AccountID,
		Action:    action,
		Entity:    "timesheet",
		EntityID:  &entityID,
	})
}

// ownEmployee resolves the actor's employee record in the current company.
func (s *TimesheetServiceImpl) ownEmployee(ctx context.Context, actor identity.Actor) (employee.Employee, error) {
	return s.employees.GetByAccount(ctx, actor.CompanyID, actor.AccountID)
}

// mustOwn loads the timesheet and verifies the actor's employment owns it.
func (s *TimesheetServiceImpl) mustOwn(ctx context.Context, actor identity.Actor, id string) (timesheet.Timesheet, error) {
	t, err := s.timesheets.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return timesheet.Timesheet{}, err
	}
	emp, err := s.ownEmployee(ctx, actor)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return timesheet.Timesheet{}, timesheet.ErrNotTimesheetOwner
		}
		return timesheet.Timesheet{}, err
	}
	if t.EmployeeID != emp.ID {
		return timesheet.Timesheet{}, timesheet.ErrNotTimesheetOwner
	}
	return t, nil
}

// Create implements timesheet.TimesheetService. Sheets are always opened
// against the actor's own employment.
func (s *TimesheetServiceImpl) Create(ctx context.Context, actor identity.Actor, req timesheet.CreateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	emp, err := s.ownEmployee(ctx, actor)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	overlap, err := s.timesheets.HasOverlap(ctx, actor.CompanyID, emp.ID,
		req.PeriodStart, req.PeriodEnd, nil)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to check overlap: %w", err)
	}
	if overlap {
		return timesheet.TimesheetResponse{}, timesheet.ErrPeriodOverlap
	}

	var created timesheet.Timesheet
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		created, err = s.timesheets.Create(txCtx, timesheet.Timesheet{
			CompanyID:     actor.CompanyID,
			EmployeeID:    emp.ID,
			PeriodStart:   req.ParsedPeriodStart,
			PeriodEnd:     req.ParsedPeriodEnd,
			HoursWorked:   req.ParsedHours,
			OvertimeHours: req.ParsedOvertime,
			Notes:         req.Notes,
			Status:        timesheet.StatusDraft,
		})
		if err != nil {
			return fmt.Errorf("failed to create timesheet: %w", err)
		}
		return s.record(txCtx, actor, "create", created.ID)
	})
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return timesheet.ToResponse(created), nil
}

// Get implements timesheet.TimesheetService. Approver roles see any sheet in
// the company; everyone else only their own.
func (s *TimesheetServiceImpl) Get(ctx context.Context, actor identity.Actor, id string) (timesheet.TimesheetResponse, error) {
	if actor.CanApprove(account.EntityTimesheet) {
		t, err := s.timesheets.GetByID(ctx, actor.CompanyID, id)
		if err != nil {
			return timesheet.TimesheetResponse{}, err
		}
		return timesheet.ToResponse(t), nil
	}

	t, err := s.mustOwn(ctx, actor, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return timesheet.ToResponse(t), nil
}

// List implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) List(ctx context.Context, actor identity.Actor, filter timesheet.ListFilter) ([]timesheet.TimesheetResponse, int64, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	if !actor.CanApprove(account.EntityTimesheet) {
		emp, err := s.ownEmployee(ctx, actor)
		if err != nil {
			return nil, 0, err
		}
		filter.EmployeeID = &emp.ID
	}

	timesheets, total, err := s.timesheets.List(ctx, actor.CompanyID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]timesheet.TimesheetResponse, 0, len(timesheets))
	for _, t := range timesheets {
		responses = append(responses, timesheet.ToResponse(t))
	}
	return responses, total, nil
}

// Update implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Update(ctx context.Context, actor identity.Actor, id string, req timesheet.UpdateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	t, err := s.mustOwn(ctx, actor, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if !t.CanSubmit() {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetNotEditable
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.timesheets.Update(txCtx, actor.CompanyID, id, req); err != nil {
			return err
		}
		return s.record(txCtx, actor, "update", id)
	})
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	updated, err := s.timesheets.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return timesheet.ToResponse(updated), nil
}

// Submit implements timesheet.TimesheetService. Rejected sheets resubmit
// through the same path; the previous review trail is cleared.
func (s *TimesheetServiceImpl) Submit(ctx context.Context, actor identity.Actor, id string) (timesheet.TimesheetResponse, error) {
	t, err := s.mustOwn(ctx, actor, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if !t.CanSubmit() {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetAlreadyProcessed
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.timesheets.SetStatus(txCtx, actor.CompanyID, id, timesheet.StatusSubmitted, nil, nil); err != nil {
			return err
		}
		return s.record(txCtx, actor, "submit", id)
	})
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	updated, err := s.timesheets.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return timesheet.ToResponse(updated), nil
}

// Approve implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Approve(ctx context.Context, actor identity.Actor, id string) (timesheet.TimesheetResponse, error) {
	return s.review(ctx, actor, id, timesheet.StatusApproved, nil)
}

// Reject implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Reject(ctx context.Context, actor identity.Actor, id string, req timesheet.RejectRequest) (timesheet.TimesheetResponse, error) {
	return s.review(ctx, actor, id, timesheet.StatusRejected, &req.Reason)
}

func (s *TimesheetServiceImpl) review(ctx context.Context, actor identity.Actor, id string, status timesheet.Status, reason *string) (timesheet.TimesheetResponse, error) {
	if !actor.CanApprove(account.EntityTimesheet) {
		return timesheet.TimesheetResponse{}, account.ErrInsufficientPermissions
	}

	t, err := s.timesheets.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if !t.CanReview() {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetNotSubmitted
	}

	action := "approve"
	if status == timesheet.StatusRejected {
		action = "reject"
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.timesheets.SetStatus(txCtx, actor.CompanyID, id, status, &actor.AccountID, reason); err != nil {
			return err
		}
		return s.record(txCtx, actor, action, id)
	})
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	updated, err := s.timesheets.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return timesheet.ToResponse(updated), nil
}

// DeleteDraft implements timesheet.TimesheetService. Only drafts ever go
// away; anything past submission stays on record.
func (s *TimesheetServiceImpl) DeleteDraft(ctx context.Context, actor identity.Actor, id string) error {
	t, err := s.mustOwn(ctx, actor, id)
	if err != nil {
		return err
	}
	if t.Status != timesheet.StatusDraft {
		return timesheet.ErrTimesheetNotEditable
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.timesheets.DeleteDraft(txCtx, actor.CompanyID, id); err != nil {
			return err
		}
		return s.record(txCtx, actor, "delete_draft", id)
	})
}
