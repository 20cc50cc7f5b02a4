package overtime

import "context"

type OvertimeRepository interface {
	Create(ctx context.Context, o Overtime) (Overtime, error)
	GetByOvertimeID(ctx context.Context, overtimeID string) (*Overtime, error)
	Update(ctx context.Context, o Overtime) error
	ListByStatus(ctx context.Context, employeeIDs []string, status OvertimeStatus, page, limit int) ([]Overtime, int64, error)
	ListByEmployee(ctx context.Context, employeeID string, page, limit int) ([]Overtime, int64, error)
}
