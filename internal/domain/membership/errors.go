package membership

import "errors"

var (
	ErrMembershipNotFound = errors.New("membership not found")
	ErrMembershipExists   = errors.New("account is already a member of this company")
)
