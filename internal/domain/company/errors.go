package company

import "errors"

var (
	ErrCompanyNotFound   = errors.New("company not found")
	ErrCompanyNameExists = errors.New("company name already exists")
	ErrNoCurrentCompany  = errors.New("no current company selected")
)
