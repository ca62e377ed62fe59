package company

import "time"

// Company is the tenant boundary. Branding and contact fields feed the
// portal chrome; everything else in the system is scoped by company ID.
type Company struct {
	ID           string
	Name         string
	BrandColor   *string
	BrandIcon    *string
	LogoURL      *string
	Address      *string
	City         *string
	PostalCode   *string
	ContactEmail *string
	ContactPhone *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
