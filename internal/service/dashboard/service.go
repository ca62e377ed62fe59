package dashboard

import (
	"context"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/dashboard"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/employee"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/identity"
)

type DashboardServiceImpl struct {
	dashboards dashboard.DashboardRepository
	employees  employee.EmployeeRepository
}

func NewDashboardService(dashboards dashboard.DashboardRepository, employees employee.EmployeeRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{dashboards: dashboards, employees: employees}
}

// Pending implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Pending(ctx context.Context, actor identity.Actor) (dashboard.PendingActions, error) {
	return s.dashboards.PendingActions(ctx, actor.CompanyID)
}

// EmployeePending implements dashboard.DashboardService.
func (s *DashboardServiceImpl) EmployeePending(ctx context.Context, actor identity.Actor) (dashboard.EmployeePending, error) {
	emp, err := s.employees.GetByAccount(ctx, actor.CompanyID, actor.AccountID)
	if err != nil {
		return dashboard.EmployeePending{}, err
	}
	return s.dashboards.EmployeePending(ctx, actor.CompanyID, emp.ID)
}
