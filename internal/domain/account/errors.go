package account

import "errors"

var (
	ErrAccountNotFound         = errors.New("account not found")
	ErrAccountEmailExists      = errors.New("email already registered")
	ErrAccountInactive         = errors.New("account is deactivated")
	ErrInvalidEmailFormat      = errors.New("invalid email format")
	ErrInvalidPasswordLength   = errors.New("password must be at least 8 characters")
	ErrInvalidRole             = errors.New("invalid role")
	ErrSuperuserRequired       = errors.New("superuser privilege required")
	ErrAdminPrivilegeRequired  = errors.New("admin privilege required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrCompanyIDRequired       = errors.New("company ID is required")
	ErrCannotDeactivateSelf    = errors.New("cannot deactivate own account")
)
