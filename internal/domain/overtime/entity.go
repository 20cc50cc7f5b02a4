package overtime

import "time"

type OvertimeStatus string

const (
	StatusPending  OvertimeStatus = "pending"
	StatusApproved OvertimeStatus = "approved"
	StatusRejected OvertimeStatus = "rejected"
)

type Overtime struct {
	ID              string
	OvertimeID      string // public identifier, "OT-" prefixed
	EmployeeID      string
	Date            time.Time
	RegularHours    float64
	WeekendHours    float64
	HolidayHours    float64
	Reason          string
	Status          OvertimeStatus
	ApproverID      *string
	ApprovalDate    *time.Time
	RejectionReason *string
	SubmittedAt     time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TotalHours sums the three hour buckets.
func (o *Overtime) TotalHours() float64 {
	return o.RegularHours + o.WeekendHours + o.HolidayHours
}
