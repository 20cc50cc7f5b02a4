package leave

import (
	"context"

	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
)

type LeaveService interface {
	// Submit files a pending leave request on behalf of the caller. The
	// employee named in the request must be the caller unless the caller
	// holds an admin role over that employee.
	Submit(ctx context.Context, callerID string, callerRole user.Role, req *SubmitLeaveRequest) (*LeaveResponse, error)

	// Approve transitions a pending request to approved, deducts the balance
	// bucket for its type, and notifies the employee by email.
	Approve(ctx context.Context, hrAdminID, leaveID string) (*ApproveLeaveResponse, error)

	// Reject transitions a pending request to rejected with a reason and
	// notifies the employee by email.
	Reject(ctx context.Context, hrAdminID, leaveID string, req *RejectLeaveRequest) (*LeaveResponse, error)

	// List returns leaves across the admin's employees, optionally narrowed
	// to one status.
	List(ctx context.Context, hrAdminID, status string, page, limit int) (*ListLeaveResponse, error)

	// ListOwn returns the caller's own leave history.
	ListOwn(ctx context.Context, employeeID string, page, limit int) (*ListLeaveResponse, error)
}
