package attendance

import (
	"time"

	"github.com/peoplehq/hrm-backend-go/internal/pkg/validator"
)

// MarkAttendanceRequest is the employee-facing check-in/out payload.
// CheckOut is optional; a call without it records an open day.
type MarkAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   *string `json:"check_out,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDateTime(r.CheckIn); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in must be a valid ISO8601 timestamp",
		})
	}

	if r.CheckOut != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be a valid ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Times returns the parsed check-in and optional check-out. Call after Validate.
func (r *MarkAttendanceRequest) Times() (time.Time, *time.Time) {
	checkIn, _ := validator.IsValidDateTime(r.CheckIn)
	if r.CheckOut == nil {
		return checkIn, nil
	}
	checkOut, _ := validator.IsValidDateTime(*r.CheckOut)
	return checkIn, &checkOut
}

// ReportQuery is the report engine input. EmployeeID and Department are
// mutually exclusive. ShowAbsentDays defaults to true when absent from the
// request.
type ReportQuery struct {
	From           string
	To             string
	EmployeeID     string
	Department     string // department code
	ShiftType      *string
	LateArrival    *bool
	EarlyDeparture *bool
	Overtime       *bool
	Page           int
	PageSize       int
	SortBy         string
	SortDirection  string
	ShowAbsentDays bool
}

func (q *ReportQuery) Validate() error {
	if q.EmployeeID != "" && q.Department != "" {
		return ErrConflictingFilters
	}

	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(q.From); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from is required and must be a YYYY-MM-DD date",
		})
	}
	if _, ok := validator.IsValidDate(q.To); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to is required and must be a YYYY-MM-DD date",
		})
	}

	if from, ok := validator.IsValidDate(q.From); ok {
		if to, ok := validator.IsValidDate(q.To); ok && to.Before(from) {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must not be before from",
			})
		}
	}

	if q.SortDirection != "" && q.SortDirection != "asc" && q.SortDirection != "desc" {
		errs = append(errs, validator.ValidationError{
			Field:   "sortDirection",
			Message: "sortDirection must be asc or desc",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RangeFilter is the persistence filter the report engine builds: a date
// range (inclusive, day boundaries) plus the optional field filters.
type RangeFilter struct {
	Start          time.Time
	End            time.Time
	EmployeeIDs    []string // empty means no employee restriction
	ShiftType      *string
	LateArrival    *bool
	EarlyDeparture *bool
	OvertimeOnly   bool
	SortBy         string
	SortDirection  string
}

// AttendanceDay is a single calendar day in a report: either a present day
// with derived fields or a bare absent day.
type AttendanceDay struct {
	Date           string   `json:"date"`
	Status         string   `json:"status"` // "present" or "absent"
	CheckIn        *string  `json:"checkIn,omitempty"`
	CheckOut       *string  `json:"checkOut,omitempty"`
	LateArrival    *bool    `json:"lateArrival,omitempty"`
	EarlyDeparture *bool    `json:"earlyDeparture,omitempty"`
	ShiftType      *string  `json:"shiftType,omitempty"`
	MissedCheckIn  *bool    `json:"missedCheckIn,omitempty"`
	MissedCheckOut *bool    `json:"missedCheckOut,omitempty"`
	WorkHours      *int     `json:"workHours,omitempty"`
	OvertimeHours  *float64 `json:"overtimeHours,omitempty"`
	UndertimeHours *float64 `json:"undertimeHours,omitempty"`
}

type DateRangeCriteria struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type FilterCriteria struct {
	DateRange      DateRangeCriteria `json:"dateRange"`
	EmployeeIDs    []string          `json:"employeeIds"`
	ShiftType      *string           `json:"shiftType"`
	LateArrival    *bool             `json:"lateArrival"`
	EarlyDeparture *bool             `json:"earlyDeparture"`
	Department     *string           `json:"department"`
	ShowAbsentDays bool              `json:"showAbsentDays"`
}

type Pagination struct {
	Page         int   `json:"page"`
	Limit        int   `json:"limit"`
	TotalPages   int   `json:"totalPages"`
	TotalResults int64 `json:"totalResults"`
	HasPrevPage  bool  `json:"hasPrevPage"`
	HasNextPage  bool  `json:"hasNextPage"`
}

type Sorting struct {
	SortBy        string `json:"sortBy"`
	SortDirection string `json:"sortDirection"`
}

type ReportMeta struct {
	ReportType     string         `json:"reportType"`
	GeneratedAt    string         `json:"generatedAt"`
	FilterCriteria FilterCriteria `json:"filterCriteria"`
	Pagination     Pagination     `json:"pagination"`
	Sorting        Sorting        `json:"sorting"`
}

// EmployeeAttendance is the per-employee aggregate block attached to a
// report when a single employee was requested.
type EmployeeAttendance struct {
	EmployeeID        string          `json:"employee_id"`
	FullName          string          `json:"full_name"`
	Email             string          `json:"email"`
	Attendance        []AttendanceDay `json:"attendance"`
	TotalPresentDays  int             `json:"totalPresentDays"`
	TotalAbsentDays   int             `json:"totalAbsentDays"`
	AverageAttendance string          `json:"averageAttendance"` // e.g. "66.67%"
}

type AttendanceReport struct {
	ReportMeta        ReportMeta          `json:"reportMeta"`
	AttendanceSummary []AttendanceDay     `json:"attendanceSummary"`
	Employee          *EmployeeAttendance `json:"employee,omitempty"`
}

// SummaryResponse is the aggregate-counter variant scoped to one employee.
type SummaryResponse struct {
	EmployeeID string          `json:"employee_id"`
	Employee   EmployeeProfile `json:"employee"`
	Summary    SummaryCounters `json:"summary"`
}

type EmployeeProfile struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type SummaryCounters struct {
	PresentDays        int     `json:"present_days"`
	AbsentDays         int     `json:"absent_days"`
	LateArrivals       int     `json:"late_arrivals"`
	EarlyDepartures    int     `json:"early_departures"`
	TotalOvertimeHours float64 `json:"total_overtime_hours"`
}

// DetailResponse is the day-by-day variant scoped to one employee.
type DetailResponse struct {
	EmployeeID        string          `json:"employee_id"`
	Employee          EmployeeProfile `json:"employee"`
	AttendanceDetails []AttendanceDay `json:"attendanceDetails"`
}

// AttendanceResponse mirrors a persisted record in API responses.
type AttendanceResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	Date           string   `json:"attendance_date"`
	CheckIn        string   `json:"check_in"`
	CheckOut       *string  `json:"check_out,omitempty"`
	ShiftType      string   `json:"shift_type"`
	LateArrival    bool     `json:"late_arrival"`
	EarlyDeparture bool     `json:"early_departure"`
	MissedCheckIn  bool     `json:"missed_check_in"`
	MissedCheckOut bool     `json:"missed_check_out"`
	WorkHours      int      `json:"work_hours"`
	OvertimeHours  float64  `json:"overtime_hours"`
	UndertimeHours float64  `json:"undertime_hours"`
}

// ListAttendanceResponse is a paginated listing of raw records.
type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
