package payroll

import "errors"

var (
	ErrCycleNotFound     = errors.New("payroll cycle not found")
	ErrCycleExists       = errors.New("payroll cycle already exists for this period")
	ErrCycleNotUploaded  = errors.New("payroll cycle is not awaiting approval")
	ErrCycleNotApproved  = errors.New("only approved payroll cycles can be archived")
	ErrInvalidPeriod     = errors.New("invalid payroll period")
	ErrDocumentTooLarge  = errors.New("payroll document exceeds the size limit")
	ErrUnsupportedFormat = errors.New("unsupported payroll document format")
)
