package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert inserts a record, or replaces the existing record for the same
	// employee and calendar date, and returns the persisted row.
	Upsert(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns nil (no error) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// FindInRange returns every record matching the filter, without
	// pagination, ordered by the filter's sort settings.
	FindInRange(ctx context.Context, filter RangeFilter) ([]Attendance, error)

	// ListByDate returns records for a single calendar date across the given
	// employees, paginated, together with the total matching count.
	ListByDate(ctx context.Context, employeeIDs []string, date time.Time, page, limit int) ([]Attendance, int64, error)
}
