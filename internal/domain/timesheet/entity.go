package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

// Timesheet covers one work period for one employee. Once submitted it is
// never hard-deleted; rejected sheets may be corrected and resubmitted.
type Timesheet struct {
	ID              string
	CompanyID       string
	EmployeeID      string
	PeriodStart     time.Time
	PeriodEnd       time.Time
	HoursWorked     decimal.Decimal
	OvertimeHours   decimal.Decimal
	Notes           *string
	Status          Status
	SubmittedAt     *time.Time
	ReviewedBy      *string
	ReviewedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined for listings
	EmployeeName *string
}

// CanSubmit reports whether the sheet may move to submitted.
func (t *Timesheet) CanSubmit() bool {
	return t.Status == StatusDraft || t.Status == StatusRejected
}

// CanReview reports whether the sheet awaits an approve/reject decision.
func (t *Timesheet) CanReview() bool {
	return t.Status == StatusSubmitted
}
