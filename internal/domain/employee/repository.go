package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, companyID, id string) (Employee, error)
	GetByAccount(ctx context.Context, companyID, accountID string) (Employee, error)
	List(ctx context.Context, companyID string, filter ListFilter) ([]Employee, int64, error)
	Create(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) error
	SetStatus(ctx context.Context, companyID, id string, status EmploymentStatus) error
	// HasActiveByAccount reports whether the account has an active employee
	// record in the company. Used to derive employee-portal access.
	HasActiveByAccount(ctx context.Context, companyID, accountID string) (bool, error)
	ExistsByEmail(ctx context.Context, companyID, email string) (bool, error)
}
