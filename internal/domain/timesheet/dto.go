package timesheet

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/payfitlite/nesthr-backend-go/internal/pkg/validator"
)

type ListFilter struct {
	EmployeeID *string
	Status     *Status
	Limit      int
	Offset     int
}

type CreateTimesheetRequest struct {
	PeriodStart   string  `json:"period_start"`
	PeriodEnd     string  `json:"period_end"`
	HoursWorked   string  `json:"hours_worked"`
	OvertimeHours string  `json:"overtime_hours"`
	Notes         *string `json:"notes"`

	ParsedPeriodStart time.Time       `json:"-"`
	ParsedPeriodEnd   time.Time       `json:"-"`
	ParsedHours       decimal.Decimal `json:"-"`
	ParsedOvertime    decimal.Decimal `json:"-"`
}

func (r *CreateTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.PeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.PeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
	}
	r.ParsedPeriodStart = start
	r.ParsedPeriodEnd = end

	hours, err := decimal.NewFromString(r.HoursWorked)
	if err != nil || hours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "must be a non-negative number"})
	} else {
		r.ParsedHours = hours
	}

	if r.OvertimeHours == "" {
		r.ParsedOvertime = decimal.Zero
	} else {
		overtime, err := decimal.NewFromString(r.OvertimeHours)
		if err != nil || overtime.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be a non-negative number"})
		} else {
			r.ParsedOvertime = overtime
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTimesheetRequest struct {
	HoursWorked   *string `json:"hours_worked"`
	OvertimeHours *string `json:"overtime_hours"`
	Notes         *string `json:"notes"`

	ParsedHours    *decimal.Decimal `json:"-"`
	ParsedOvertime *decimal.Decimal `json:"-"`
}

func (r *UpdateTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.HoursWorked != nil {
		hours, err := decimal.NewFromString(*r.HoursWorked)
		if err != nil || hours.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "must be a non-negative number"})
		} else {
			r.ParsedHours = &hours
		}
	}
	if r.OvertimeHours != nil {
		overtime, err := decimal.NewFromString(*r.OvertimeHours)
		if err != nil || overtime.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be a non-negative number"})
		} else {
			r.ParsedOvertime = &overtime
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectRequest) Validate() error {
	if validator.IsEmpty(r.Reason) {
		return validator.ValidationErrors{{Field: "reason", Message: "is required"}}
	}
	return nil
}

type TimesheetResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	PeriodStart     string  `json:"period_start"`
	PeriodEnd       string  `json:"period_end"`
	HoursWorked     string  `json:"hours_worked"`
	OvertimeHours   string  `json:"overtime_hours"`
	Notes           *string `json:"notes"`
	Status          Status  `json:"status"`
	SubmittedAt     *string `json:"submitted_at"`
	ReviewedBy      *string `json:"reviewed_by"`
	RejectionReason *string `json:"rejection_reason"`
}

func ToResponse(t Timesheet) TimesheetResponse {
	resp := TimesheetResponse{
		ID:              t.ID,
		EmployeeID:      t.EmployeeID,
		EmployeeName:    t.EmployeeName,
		PeriodStart:     t.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       t.PeriodEnd.Format("2006-01-02"),
		HoursWorked:     t.HoursWorked.StringFixed(2),
		OvertimeHours:   t.OvertimeHours.StringFixed(2),
		Notes:           t.Notes,
		Status:          t.Status,
		ReviewedBy:      t.ReviewedBy,
		RejectionReason: t.RejectionReason,
	}
	if t.SubmittedAt != nil {
		s := t.SubmittedAt.Format(time.RFC3339)
		resp.SubmittedAt = &s
	}
	return resp
}
