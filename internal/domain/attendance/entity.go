package attendance

import (
	"time"
)

// Attendance is one employee's check-in/out outcome for one calendar day.
// (EmployeeID, Date) is unique; the mark operation upserts on that key.
type Attendance struct {
	ID             string
	EmployeeID     string
	Date           time.Time // day the check-in fell on, truncated
	CheckIn        time.Time
	CheckOut       *time.Time
	ShiftType      string // shift name snapshot, not a reference
	LateArrival    bool
	EarlyDeparture bool
	MissedCheckIn  bool
	MissedCheckOut bool
	WorkHours      int
	OvertimeHours  float64
	UndertimeHours float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
