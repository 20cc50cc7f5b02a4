package attendance

import "errors"

// Attendance domain errors
var (
	ErrCheckOutBeforeCheckIn = errors.New("check-out time must be after check-in time")
	ErrConflictingFilters    = errors.New("employee_id and department filters are mutually exclusive")
	ErrInvalidDateFilter     = errors.New("invalid filter type: use today, yesterday, week, month, year, or custom")
	ErrCustomRangeRequired   = errors.New("custom date range requires both from and to")
	ErrNotRecordOwner        = errors.New("you do not have permission to access this employee's attendance records")
)
