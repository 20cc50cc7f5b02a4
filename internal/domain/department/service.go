package department

import "context"

type DepartmentService interface {
	Create(ctx context.Context, hrAdminID string, req *CreateDepartmentRequest) (*DepartmentResponse, error)
	GetByCode(ctx context.Context, hrAdminID, code string) (*DepartmentResponse, error)
	Update(ctx context.Context, hrAdminID, code string, req *UpdateDepartmentRequest) (*DepartmentResponse, error)
	Delete(ctx context.Context, hrAdminID, code string) error

	// AssignEmployees merges the given employees into the department's
	// membership list, clearing them from any other department first.
	AssignEmployees(ctx context.Context, hrAdminID, code string, req *AssignEmployeesRequest) (*DepartmentResponse, error)

	List(ctx context.Context, hrAdminID string, page, limit int) (*ListDepartmentResponse, error)

	// Report aggregates headcount and budget across the admin's departments.
	Report(ctx context.Context, hrAdminID string) (*DepartmentReport, error)
}
