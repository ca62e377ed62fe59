package company

import (
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/validator"
)

type CreateCompanyRequest struct {
	Name         string  `json:"name"`
	BrandColor   *string `json:"brand_color"`
	BrandIcon    *string `json:"brand_icon"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	PostalCode   *string `json:"postal_code"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.BrandColor != nil && !validator.IsValidHexColor(*r.BrandColor) {
		errs = append(errs, validator.ValidationError{Field: "brand_color", Message: "must be a hex color like #1a2b3c"})
	}
	if r.ContactEmail != nil && !validator.IsValidEmail(*r.ContactEmail) {
		errs = append(errs, validator.ValidationError{Field: "contact_email", Message: "invalid email format"})
	}
	if r.ContactPhone != nil && !validator.IsValidPhoneNumber(*r.ContactPhone) {
		errs = append(errs, validator.ValidationError{Field: "contact_phone", Message: "invalid phone number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateCompanyRequest carries partial updates; nil fields are left untouched.
type UpdateCompanyRequest struct {
	Name         *string `json:"name"`
	BrandColor   *string `json:"brand_color"`
	BrandIcon    *string `json:"brand_icon"`
	LogoURL      *string `json:"-"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	PostalCode   *string `json:"postal_code"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.BrandColor != nil && !validator.IsValidHexColor(*r.BrandColor) {
		errs = append(errs, validator.ValidationError{Field: "brand_color", Message: "must be a hex color like #1a2b3c"})
	}
	if r.ContactEmail != nil && !validator.IsValidEmail(*r.ContactEmail) {
		errs = append(errs, validator.ValidationError{Field: "contact_email", Message: "invalid email format"})
	}
	if r.ContactPhone != nil && !validator.IsValidPhoneNumber(*r.ContactPhone) {
		errs = append(errs, validator.ValidationError{Field: "contact_phone", Message: "invalid phone number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CompanyResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	BrandColor   *string `json:"brand_color"`
	BrandIcon    *string `json:"brand_icon"`
	LogoURL      *string `json:"logo_url"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	PostalCode   *string `json:"postal_code"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
}

func ToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		BrandColor:   c.BrandColor,
		BrandIcon:    c.BrandIcon,
		LogoURL:      c.LogoURL,
		Address:      c.Address,
		City:         c.City,
		PostalCode:   c.PostalCode,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
	}
}
