package timesheet

import "errors"

var (
	ErrTimesheetNotFound         = errors.New("timesheet not found")
	ErrTimesheetAlreadyProcessed = errors.New("timesheet already processed")
	ErrTimesheetNotSubmitted     = errors.New("timesheet is not awaiting review")
	ErrTimesheetNotEditable      = errors.New("only draft or rejected timesheets can be edited")
	ErrPeriodOverlap             = errors.New("timesheet period overlaps an existing one")
	ErrNotTimesheetOwner         = errors.New("timesheet belongs to another employee")
)
