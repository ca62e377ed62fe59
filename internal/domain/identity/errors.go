package identity

import "errors"

var (
	ErrAccessDenied = errors.New("no access to this company")
)
