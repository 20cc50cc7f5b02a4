package employee

import (
	"context"
	"io"

	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
)

type EmployeeService interface {
	// Create registers an employee under the calling administrator, assigns
	// a generated public ID, and hashes the password.
	Create(ctx context.Context, hrAdminID string, req *CreateEmployeeRequest) (*EmployeeResponse, error)

	// Get returns the profile. Employees may read their own; admins may
	// read employees they manage.
	Get(ctx context.Context, callerID string, callerRole user.Role, employeeID string) (*EmployeeResponse, error)

	Update(ctx context.Context, callerID string, callerRole user.Role, employeeID string, req *UpdateEmployeeRequest) (*EmployeeResponse, error)

	Delete(ctx context.Context, hrAdminID, employeeID string) error

	List(ctx context.Context, hrAdminID string, filter ListFilter) (*ListEmployeeResponse, error)

	// AssignShift attaches a shift owned by the admin to the employee.
	AssignShift(ctx context.Context, hrAdminID, employeeID string, req *AssignShiftRequest) (*EmployeeResponse, error)

	// UploadDocument stores the file and records its URL under the named
	// document field (contract, id_proof, tax_document, employee_agreement,
	// work_permit).
	UploadDocument(ctx context.Context, hrAdminID, employeeID, field, filename string, file io.Reader) (*EmployeeResponse, error)
}
