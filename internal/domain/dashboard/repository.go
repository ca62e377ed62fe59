package dashboard

import "context"

type DashboardRepository interface {
	PendingActions(ctx context.Context, companyID string) (PendingActions, error)
	EmployeePending(ctx context.Context, companyID, employeeID string) (EmployeePending, error)
}
