package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrLeaveRequestNotSubmitted     = errors.New("leave request is not awaiting review")
	ErrLeaveRequestNotEditable      = errors.New("only draft or rejected leave requests can be edited")
	ErrNotLeaveRequestOwner         = errors.New("leave request belongs to another employee")
)
