package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/audit"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/employee"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/identity"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/database"
	"github.com/payfitlite/nesthr-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db        *database.DB
	employees employee.EmployeeRepository
	accounts  account.AccountRepository
	auditLog  audit.AuditRepository
}

func NewEmployeeService(
	db *database.DB,
	employees employee.EmployeeRepository,
	accounts account.AccountRepository,
	auditLog audit.AuditRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{db: db, employees: employees, accounts: accounts, auditLog: auditLog}
}

func (s *EmployeeServiceImpl) record(ctx context.Context, actor identity.Actor, action, entityID string) error {
	companyID := actor.CompanyID
	return s.auditLog.Record(ctx, audit.Entry{
		CompanyID: &companyID,
		AccountID: actor.AccountID,
		Action:    action,
		Entity:    "employee",
		EntityID:  &entityID,
	})
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, actor identity.Actor, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	exists, err := s.employees.ExistsByEmail(ctx, actor.CompanyID, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeEmailExists
	}

	if req.AccountID != nil {
		if _, err := s.accounts.GetByID(ctx, *req.AccountID); err != nil {
			return employee.EmployeeResponse{}, err
		}
		_, err := s.employees.GetByAccount(ctx, actor.CompanyID, *req.AccountID)
		switch {
		case err == nil:
			return employee.EmployeeResponse{}, employee.ErrAccountAlreadyLinked
		case errors.Is(err, employee.ErrEmployeeNotFound):
		default:
			return employee.EmployeeResponse{}, err
		}
	}

	if req.ManagerID != nil {
		if _, err := s.employees.GetByID(ctx, actor.CompanyID, *req.ManagerID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.EmployeeResponse{}, employee.ErrManagerNotFound
			}
			return employee.EmployeeResponse{}, err
		}
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		created, err = s.employees.Create(txCtx, employee.Employee{
			CompanyID:  actor.CompanyID,
			AccountID:  req.AccountID,
			FullName:   req.FullName,
			Email:      req.Email,
			Position:   req.Position,
			Department: req.Department,
			ManagerID:  req.ManagerID,
			Salary:     req.ParsedSalary,
			HireDate:   req.ParsedHireDate,
			Status:     employee.StatusActive,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return s.record(txCtx, actor, "create", created.ID)
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, actor identity.Actor, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employees.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, actor identity.Actor, filter employee.ListFilter) ([]employee.EmployeeResponse, int64, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	employees, total, err := s.employees.List(ctx, actor.CompanyID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, total, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, actor identity.Actor, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if _, err := s.employees.GetByID(ctx, actor.CompanyID, id); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.ManagerID != nil && *req.ManagerID != "" {
		if *req.ManagerID == id {
			return employee.EmployeeResponse{}, employee.ErrManagerNotFound
		}
		if _, err := s.employees.GetByID(ctx, actor.CompanyID, *req.ManagerID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.EmployeeResponse{}, employee.ErrManagerNotFound
			}
			return employee.EmployeeResponse{}, err
		}
	}

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.employees.Update(txCtx, actor.CompanyID, id, req); err != nil {
			return err
		}
		return s.record(txCtx, actor, "update", id)
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employees.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(updated), nil
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, actor identity.Actor, id string) error {
	if _, err := s.employees.GetByID(ctx, actor.CompanyID, id); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.employees.SetStatus(txCtx, actor.CompanyID, id, employee.StatusInactive); err != nil {
			return err
		}
		return s.record(txCtx, actor, "deactivate", id)
	})
}

// Reactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Reactivate(ctx context.Context, actor identity.Actor, id string) error {
	emp, err := s.employees.GetByID(ctx, actor.CompanyID, id)
	if err != nil {
		return err
	}
	if emp.IsActive() {
		return employee.ErrEmployeeAlreadyActive
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := s.employees.SetStatus(txCtx, actor.CompanyID, id, employee.StatusActive); err != nil {
			return err
		}
		return s.record(txCtx, actor, "reactivate", id)
	})
}
