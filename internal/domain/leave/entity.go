package leave

import "time"

type LeaveType string

const (
	TypeAnnual    LeaveType = "annual"
	TypeSick      LeaveType = "sick"
	TypeMaternity LeaveType = "maternity"
	TypePaternity LeaveType = "paternity"
	TypeOther     LeaveType = "other"
)

var Types = []LeaveType{TypeAnnual, TypeSick, TypeMaternity, TypePaternity, TypeOther}

func IsValidType(t string) bool {
	for _, lt := range Types {
		if string(lt) == t {
			return true
		}
	}
	return false
}

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "pending"
	StatusApproved LeaveStatus = "approved"
	StatusRejected LeaveStatus = "rejected"
)

type Leave struct {
	ID              string
	LeaveID         string // public identifier, "LV-" prefixed
	EmployeeID      string
	Type            LeaveType
	StartDate       time.Time
	EndDate         time.Time
	Days            int
	Reason          string
	Status          LeaveStatus
	ApproverID      *string
	ApprovalDate    *time.Time
	RejectionReason *string
	SubmittedAt     time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// InclusiveDays counts calendar days between start and end with both
// endpoints included. Partial days round up before the endpoint is added,
// so Oct 1 to Oct 5 yields 5.
func InclusiveDays(start, end time.Time) int {
	diff := end.Sub(start)
	days := int(diff.Hours() / 24)
	if diff > time.Duration(days)*24*time.Hour {
		days++
	}
	return days + 1
}
