package overtime

import (
	"context"

	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
)

type OvertimeService interface {
	// Submit files a pending overtime request. The employee named in the
	// request must be the caller unless the caller holds an admin role.
	Submit(ctx context.Context, callerID string, callerRole user.Role, req *SubmitOvertimeRequest) (*OvertimeResponse, error)

	// Approve transitions a pending request to approved and notifies the
	// employee by email.
	Approve(ctx context.Context, hrAdminID, overtimeID string) (*OvertimeResponse, error)

	// Reject transitions a pending request to rejected with a reason and
	// notifies the employee by email.
	Reject(ctx context.Context, hrAdminID, overtimeID string, req *RejectOvertimeRequest) (*OvertimeResponse, error)

	List(ctx context.Context, hrAdminID, status string, page, limit int) (*ListOvertimeResponse, error)

	ListOwn(ctx context.Context, employeeID string, page, limit int) (*ListOvertimeResponse, error)
}
