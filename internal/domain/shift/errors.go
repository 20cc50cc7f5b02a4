package shift

import "errors"

// Shift domain errors
var (
	ErrShiftNotFound    = errors.New("shift does not exist")
	ErrShiftNameExists  = errors.New("a shift with this name already exists")
	ErrShiftNotAssigned = errors.New("no shift assigned to the employee")
	ErrNotShiftOwner    = errors.New("you do not have permission to modify this shift")
)
