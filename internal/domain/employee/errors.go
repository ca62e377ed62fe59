package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeEmailExists   = errors.New("email already registered in this company")
	ErrAccountAlreadyLinked  = errors.New("account already linked to an employee in this company")
	ErrManagerNotFound       = errors.New("manager not found in this company")
	ErrEmployeeAlreadyActive = errors.New("employee is already active")
)
