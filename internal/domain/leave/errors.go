package leave

import "errors"

var (
	ErrLeaveNotFound   = errors.New("leave request not found")
	ErrLeaveNotPending = errors.New("leave request is not pending")
	ErrEndBeforeStart  = errors.New("end date must not be before start date")
)
