package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "active"
	StatusInactive EmploymentStatus = "inactive"
)

// Employee is the operational employment record, distinct from the account
// identity. AccountID is nullable: an employment can exist before the person
// ever logs in. At most one employee per account per company.
type Employee struct {
	ID         string
	CompanyID  string
	AccountID  *string
	FullName   string
	Email      string
	Position   string
	Department *string
	ManagerID  *string
	Salary     decimal.Decimal
	HireDate   time.Time
	Status     EmploymentStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for listings
	ManagerName *string
}

func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}
