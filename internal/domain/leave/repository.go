package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByLeaveID(ctx context.Context, leaveID string) (*Leave, error)
	Update(ctx context.Context, l Leave) error

	// ListByStatus lists leaves across the given employees, optionally
	// narrowed to one status (empty status means all), paginated.
	ListByStatus(ctx context.Context, employeeIDs []string, status LeaveStatus, page, limit int) ([]Leave, int64, error)

	ListByEmployee(ctx context.Context, employeeID string, page, limit int) ([]Leave, int64, error)
}
