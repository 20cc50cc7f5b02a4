package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrNotManagedByYou  = errors.New("employee is managed by another administrator")
	ErrUnknownDocument  = errors.New("unknown document field")
)
