package account

import (
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/validator"
)

type CreateAccountRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Role        Role   `json:"role"`
	IsSuperuser bool   `json:"is_superuser"`
}

func (r *CreateAccountRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of owner, hr, manager, employee"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAccountRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

func (r *UpdateAccountRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAccountRoleRequest struct {
	Role Role `json:"role"`
}

func (r *UpdateAccountRoleRequest) Validate() error {
	if !r.Role.Valid() {
		return validator.ValidationErrors{{Field: "role", Message: "must be one of owner, hr, manager, employee"}}
	}
	return nil
}

// AccountResponse is the wire shape; password hash never leaves the service.
type AccountResponse struct {
	ID               string  `json:"id"`
	Email            string  `json:"email"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Role             Role    `json:"role"`
	IsActive         bool    `json:"is_active"`
	IsSuperuser      bool    `json:"is_superuser"`
	CurrentCompanyID *string `json:"current_company_id"`
}

func ToResponse(a Account) AccountResponse {
	return AccountResponse{
		ID:               a.ID,
		Email:            a.Email,
		FirstName:        a.FirstName,
		LastName:         a.LastName,
		Role:             a.Role,
		IsActive:         a.IsActive,
		IsSuperuser:      a.IsSuperuser,
		CurrentCompanyID: a.CurrentCompanyID,
	}
}
