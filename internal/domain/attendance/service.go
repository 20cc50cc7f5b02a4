package attendance

import (
	"context"

	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
)

type AttendanceService interface {
	// MarkAttendance records or re-records a check-in/out pair for the
	// calendar date of the check-in. The caller must be the employee
	// named in the request unless they hold an admin role.
	MarkAttendance(ctx context.Context, callerID string, callerRole user.Role, req *MarkAttendanceRequest) (*AttendanceResponse, error)

	// GenerateReport builds a calendar-aligned report over the employees the
	// admin manages, optionally narrowed to one employee or one department.
	GenerateReport(ctx context.Context, hrAdminID string, query *ReportQuery) (*AttendanceReport, error)

	// GetSummary returns aggregate counters for one employee over a named
	// date range filter ("today", "week", "custom", ...).
	GetSummary(ctx context.Context, hrAdminID, employeeID, filter, from, to string) (*SummaryResponse, error)

	// GetEmployeeDetail returns the day-by-day record set for one employee
	// over the same filter vocabulary as GetSummary.
	GetEmployeeDetail(ctx context.Context, hrAdminID, employeeID, filter, from, to string) (*DetailResponse, error)

	// GetByDate lists raw attendance records for one calendar date across
	// the admin's employees.
	GetByDate(ctx context.Context, hrAdminID, date string, page, limit int) (*ListAttendanceResponse, error)
}
