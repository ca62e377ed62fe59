package leave

import (
	"time"

	"github.com/payfitlite/nesthr-backend-go/internal/pkg/validator"
)

type ListFilter struct {
	EmployeeID *string
	Status     *Status
	Limit      int
	Offset     int
}

type CreateLeaveRequest struct {
	LeaveType Type    `json:"leave_type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Reason    *string `json:"reason"`

	ParsedStartDate time.Time `json:"-"`
	ParsedEndDate   time.Time `json:"-"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.LeaveType.Valid() {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "must be one of vacation, sick, unpaid, parental, other"})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	r.ParsedStartDate = start
	r.ParsedEndDate = end

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveRequest struct {
	LeaveType *Type   `json:"leave_type"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Reason    *string `json:"reason"`

	ParsedStartDate *time.Time `json:"-"`
	ParsedEndDate   *time.Time `json:"-"`
}

func (r *UpdateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LeaveType != nil && !r.LeaveType.Valid() {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "must be one of vacation, sick, unpaid, parental, other"})
	}
	if r.StartDate != nil {
		start, ok := validator.IsValidDate(*r.StartDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
		} else {
			r.ParsedStartDate = &start
		}
	}
	if r.EndDate != nil {
		end, ok := validator.IsValidDate(*r.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		} else {
			r.ParsedEndDate = &end
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	LeaveType       Type    `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Days            int     `json:"days"`
	Reason          *string `json:"reason"`
	Status          Status  `json:"status"`
	ReviewedBy      *string `json:"reviewed_by"`
	RejectionReason *string `json:"rejection_reason"`
}

func ToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:              l.ID,
		EmployeeID:      l.EmployeeID,
		EmployeeName:    l.EmployeeName,
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate.Format("2006-01-02"),
		EndDate:         l.EndDate.Format("2006-01-02"),
		Days:            l.Days(),
		Reason:          l.Reason,
		Status:          l.Status,
		ReviewedBy:      l.ReviewedBy,
		RejectionReason: l.RejectionReason,
	}
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
