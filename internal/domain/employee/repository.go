package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	Update(ctx context.Context, e Employee) error
	Delete(ctx context.Context, employeeID string) error
	ListByCreatedBy(ctx context.Context, createdBy string, filter ListFilter) ([]Employee, int64, error)

	// ListEmployeeIDsByCreatedBy returns the public IDs of every employee
	// the given administrator manages.
	ListEmployeeIDsByCreatedBy(ctx context.Context, createdBy string) ([]string, error)
}
