package overtime

import "errors"

var (
	ErrOvertimeNotFound   = errors.New("overtime request not found")
	ErrOvertimeNotPending = errors.New("overtime request is not pending")
	ErrZeroHours          = errors.New("overtime hours must sum to more than zero")
)
