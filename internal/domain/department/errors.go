package department

import "errors"

var (
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDepartmentNameExists = errors.New("department name already exists")
	ErrNotDepartmentOwner   = errors.New("department belongs to another administrator")
	ErrEmployeeNotInCompany = errors.New("employee does not belong to this administrator")
)
