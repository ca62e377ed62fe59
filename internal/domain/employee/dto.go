package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/payfitlite/nesthr-backend-go/internal/pkg/validator"
)

type ListFilter struct {
	Status *EmploymentStatus
	Search string
	Limit  int
	Offset int
}

type CreateEmployeeRequest struct {
	AccountID  *string `json:"account_id"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Position   string  `json:"position"`
	Department *string `json:"department"`
	ManagerID  *string `json:"manager_id"`
	Salary     string  `json:"salary"`
	HireDate   string  `json:"hire_date"`

	// Parsed during Validate
	ParsedSalary   decimal.Decimal `json:"-"`
	ParsedHireDate time.Time       `json:"-"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "is required"})
	}

	salary, err := decimal.NewFromString(r.Salary)
	if err != nil || salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be a non-negative number"})
	} else {
		r.ParsedSalary = salary
	}

	hireDate, ok := validator.IsValidDate(r.HireDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
	} else {
		r.ParsedHireDate = hireDate
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FullName   *string `json:"full_name"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
	ManagerID  *string `json:"manager_id"`
	Salary     *string `json:"salary"`

	ParsedSalary *decimal.Decimal `json:"-"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.Salary != nil {
		salary, err := decimal.NewFromString(*r.Salary)
		if err != nil || salary.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be a non-negative number"})
		} else {
			r.ParsedSalary = &salary
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	AccountID   *string `json:"account_id"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Position    string  `json:"position"`
	Department  *string `json:"department"`
	ManagerID   *string `json:"manager_id"`
	ManagerName *string `json:"manager_name,omitempty"`
	Salary      string  `json:"salary"`
	HireDate    string  `json:"hire_date"`
	Status      string  `json:"status"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		CompanyID:   e.CompanyID,
		AccountID:   e.AccountID,
		FullName:    e.FullName,
		Email:       e.Email,
		Position:    e.Position,
		Department:  e.Department,
		ManagerID:   e.ManagerID,
		ManagerName: e.ManagerName,
		Salary:      e.Salary.StringFixed(2),
		HireDate:    e.HireDate.Format("2006-01-02"),
		Status:      string(e.Status),
	}
}
