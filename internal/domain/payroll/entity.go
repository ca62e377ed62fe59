package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusUploaded Status = "uploaded"
	StatusApproved Status = "approved"
	StatusArchived Status = "archived"
)

// PayrollCycle is one payroll run for a company period. Cycles are uploaded
// by admins, approved, and eventually archived; they are never deleted.
type PayrollCycle struct {
	ID            string
	CompanyID     string
	PeriodYear    int
	PeriodMonth   int
	TotalGross    decimal.Decimal
	TotalNet      decimal.Decimal
	EmployeeCount int
	DocumentPath  *string
	Status        Status
	ApprovedBy    *string
	ApprovedAt    *time.Time
	ArchivedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p *PayrollCycle) CanApprove() bool {
	return p.Status == StatusUploaded
}

func (p *PayrollCycle) CanArchive() bool {
	return p.Status == StatusApproved
}
