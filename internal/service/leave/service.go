package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/audit"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/employee"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/identity"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/leave"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/database"
	"github.com/payfitlite/nesthr-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db        *database.DB
	leaves    leave.LeaveRepository
	employees employee.EmployeeRepository
	auditLog  audit.AuditRepository
}

func NewLeaveService(
	db *database.DB,
	leaves leave.LeaveRepository,
	employees employee.EmployeeRepository,
	auditLog audit.AuditRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{db: db, leaves: leaves, employees: employees, auditLog: auditLog}
}

func (s *LeaveServiceImpl) record(ctx context.Context, actor identity.Actor, action, entityID string) error {
	companyID := actor.CompanyID
	return s.auditLog.Record(ctx, audit.Entry{
		CompanyID: &companyID,
		AccountID: actor.AccountID,
		Action:    action,
		Entity:    "leave_request",
		EntityID:  &entityID,
	})
}

func (s *LeaveServiceImpl) ownEmployee(ctx context.Context, actor identity.Actor) (employee.Employee, error) {
	return s.employees.GetByAccount(ctx, actor.CompanyID, actor.AccountID)
}

func (s *LeaveServiceImpl) mustOwn(ctx context.Context, actor identity.Actor, id string) (leave.LeaveRequest, error) {
	l, err := s.leaves.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	emp, err := s.ownEmployee(ctx, actor)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.LeaveRequest{}, leave.ErrNotLeaveRequestOwner
		}
		return leave.LeaveRequest{}, err
	}
	if l.EmployeeID != emp.ID {
		return leave.LeaveRequest{}, leave.ErrNotLeaveRequestOwner
	}
	return l, nil
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, actor identity.Actor, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	emp, err := s.ownEmployee(ctx, actor)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	var created leave.LeaveRequest
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		created, err = s.leaves.Create(txCtx, leave.LeaveRequest{
			CompanyID:  actor.CompanyID,
			EmployeeID: emp.ID,
			LeaveType:  req.LeaveType,
			StartDate:  req.ParsedStartDate,
			EndDate:    req.ParsedEndDate,
			Reason:     req.Reason,
			Status:     leave.StatusDraft,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return s.record(txCtx, actor, "create", created.ID)
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToResponse(created), nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, actor identity.Actor, id string) (leave.LeaveResponse, error) {
	if actor.CanApprove(account.EntityLeave) {
		l, err := s.leaves.GetByID(ctx, actor.CompanyID, id)
		if err != nil {
			return leave.LeaveResponse{}, err
		}
		return leave.ToResponse(l), nil
	}

	l, err := s.mustOwn(ctx, actor, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToResponse(l), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, actor identity.Actor, filter leave.ListFilter) ([]leave.LeaveResponse, int64, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	if !actor.CanApprove(account.EntityLeave) {
		emp, err := s.ownEmployee(ctx, actor)
		if err != nil {
			return nil, 0, err
		}
		filter.EmployeeID = &emp.ID
	}

	leaves, total, err := s.leaves.List(ctx, actor.CompanyID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.ToResponse(l))
	}
	return responses, total, nil
}

// Update implements leave.LeaveService.
func (s *LeaveServiceImpl) Update(ctx context.Context, actor identity.Actor, id string, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	l, err := s.mustOwn(ctx, actor, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !l.CanSubmit() {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestNotEditable
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.leaves.Update(txCtx, actor.CompanyID, id, req); err != nil {
			return err
		}
		return s.record(txCtx, actor, "update", id)
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	updated, err := s.leaves.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToResponse(updated), nil
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, actor identity.Actor, id string) (leave.LeaveResponse, error) {
	l, err := s.mustOwn(ctx, actor, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !l.CanSubmit() {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.leaves.SetStatus(txCtx, actor.CompanyID, id, leave.StatusSubmitted, nil, nil); err != nil {
			return err
		}
		return s.record(txCtx, actor, "submit", id)
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	updated, err := s.leaves.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToResponse(updated), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, actor identity.Actor, id string) (leave.LeaveResponse, error) {
	return s.review(ctx, actor, id, leave.StatusApproved, nil)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, actor identity.Actor, id string, req leave.RejectRequest) (leave.LeaveResponse, error) {
	return s.review(ctx, actor, id, leave.StatusRejected, &req.Reason)
}

func (s *LeaveServiceImpl) review(ctx context.Context, actor identity.Actor, id string, status leave.Status, reason *string) (leave.LeaveResponse, error) {
	if !actor.CanApprove(account.EntityLeave) {
		return leave.LeaveResponse{}, account.ErrInsufficientPermissions
	}

	l, err := s.leaves.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !l.CanReview() {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestNotSubmitted
	}

	action := "approve"
	if status == leave.StatusRejected {
		action = "reject"
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.leaves.SetStatus(txCtx, actor.CompanyID, id, status, &actor.AccountID, reason); err != nil {
			return err
		}
		return s.record(txCtx, actor, action, id)
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	updated, err := s.leaves.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToResponse(updated), nil
}

// DeleteDraft implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteDraft(ctx context.Context, actor identity.Actor, id string) error {
	l, err := s.mustOwn(ctx, actor, id)
	if err != nil {
		return err
	}
	if l.Status != leave.StatusDraft {
		return leave.ErrLeaveRequestNotEditable
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.leaves.DeleteDraft(txCtx, actor.CompanyID, id); err != nil {
			return err
		}
		return s.record(txCtx, actor, "delete_draft", id)
	})
}
