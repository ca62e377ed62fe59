package payroll

import (
	"mime/multipart"
	"time"

	"github.com/shopspring/decimal"

	"github.com/payfitlite/nesthr-backend-go/internal/pkg/validator"
)

type ListFilter struct {
	Status *Status
	Year   *int
	Limit  int
	Offset int
}

type CreateCycleRequest struct {
	PeriodYear    int    `json:"period_year"`
	PeriodMonth   int    `json:"period_month"`
	TotalGross    string `json:"total_gross"`
	TotalNet      string `json:"total_net"`
	EmployeeCount int    `json:"employee_count"`

	// Optional payslip bundle, attached from the multipart form
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`

	ParsedGross decimal.Decimal `json:"-"`
	ParsedNet   decimal.Decimal `json:"-"`
}

func (r *CreateCycleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.PeriodYear, r.PeriodMonth) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "period_month must be 1-12 and period_year a valid year"})
	}
	if r.EmployeeCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_count", Message: "must not be negative"})
	}

	gross, err := decimal.NewFromString(r.TotalGross)
	if err != nil || gross.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "total_gross", Message: "must be a non-negative number"})
	} else {
		r.ParsedGross = gross
	}

	net, err := decimal.NewFromString(r.TotalNet)
	if err != nil || net.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "total_net", Message: "must be a non-negative number"})
	} else {
		r.ParsedNet = net
	}
	if err == nil && !r.ParsedGross.IsZero() && r.ParsedNet.GreaterThan(r.ParsedGross) {
		errs = append(errs, validator.ValidationError{Field: "total_net", Message: "must not exceed total_gross"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CycleResponse struct {
	ID            string  `json:"id"`
	CompanyID     string  `json:"company_id"`
	PeriodYear    int     `json:"period_year"`
	PeriodMonth   int     `json:"period_month"`
	TotalGross    string  `json:"total_gross"`
	TotalNet      string  `json:"total_net"`
	EmployeeCount int     `json:"employee_count"`
	DocumentPath  *string `json:"document_path"`
	Status        Status  `json:"status"`
	ApprovedBy    *string `json:"approved_by"`
	ApprovedAt    *string `json:"approved_at"`
	ArchivedAt    *string `json:"archived_at"`
}

func ToResponse(p PayrollCycle) CycleResponse {
	resp := CycleResponse{
		ID:            p.ID,
		CompanyID:     p.CompanyID,
		PeriodYear:    p.PeriodYear,
		PeriodMonth:   p.PeriodMonth,
		TotalGross:    p.TotalGross.StringFixed(2),
		TotalNet:      p.TotalNet.StringFixed(2),
		EmployeeCount: p.EmployeeCount,
		DocumentPath:  p.DocumentPath,
		Status:        p.Status,
		ApprovedBy:    p.ApprovedBy,
	}
	if p.ApprovedAt != nil {
		s := p.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &s
	}
	if p.ArchivedAt != nil {
		s := p.ArchivedAt.Format(time.RFC3339)
		resp.ArchivedAt = &s
	}
	return resp
}
