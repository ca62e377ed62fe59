package membership

import (
	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/validator"
)

type AddMemberRequest struct {
	AccountID string       `json:"account_id"`
	Role      account.Role `json:"role"`
	IsAdmin   bool         `json:"is_admin"`
}

func (r *AddMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.AccountID) {
		errs = append(errs, validator.ValidationError{Field: "account_id", Message: "must be a valid UUID"})
	}
	if !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of owner, hr, manager, employee"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateMemberRoleRequest struct {
	Role    account.Role `json:"role"`
	IsAdmin bool         `json:"is_admin"`
}

func (r *UpdateMemberRoleRequest) Validate() error {
	if !r.Role.Valid() {
		return validator.ValidationErrors{{Field: "role", Message: "must be one of owner, hr, manager, employee"}}
	}
	return nil
}

type MembershipResponse struct {
	ID          string       `json:"id"`
	AccountID   string       `json:"account_id"`
	CompanyID   string       `json:"company_id"`
	CompanyName *string      `json:"company_name,omitempty"`
	Role        account.Role `json:"role"`
	IsAdmin     bool         `json:"is_admin"`
}

func ToResponse(m Membership) MembershipResponse {
	return MembershipResponse{
		ID:          m.ID,
		AccountID:   m.AccountID,
		CompanyID:   m.CompanyID,
		CompanyName: m.CompanyName,
		Role:        m.Role,
		IsAdmin:     m.IsAdmin,
	}
}
