package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, d Department) (Department, error)
	GetByCode(ctx context.Context, code string) (*Department, error)
	GetByName(ctx context.Context, createdBy, name string) (*Department, error)
	Update(ctx context.Context, d Department) error
	UpdateEmployees(ctx context.Context, code string, employees []string) error
	Delete(ctx context.Context, code string) error
	ListByCreatedBy(ctx context.Context, createdBy string, page, limit int) ([]Department, int64, error)
}
