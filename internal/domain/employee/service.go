package employee

import (
	"context"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/identity"
)

type EmployeeService interface {
	Create(ctx context.Context, actor identity.Actor, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, actor identity.Actor, id string) (EmployeeResponse, error)
	List(ctx context.Context, actor identity.Actor, filter ListFilter) ([]EmployeeResponse, int64, error)
	Update(ctx context.Context, actor identity.Actor, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Deactivate ends the employment; the record stays for history.
	Deactivate(ctx context.Context, actor identity.Actor, id string) error
	Reactivate(ctx context.Context, actor identity.Actor, id string) error
}
