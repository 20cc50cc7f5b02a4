package overtime

import (
	"time"

	"github.com/peoplehq/hrm-backend-go/internal/pkg/validator"
)

type SubmitOvertimeRequest struct {
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"overtime_date"`
	RegularHours float64 `json:"regular_hours"`
	WeekendHours float64 `json:"weekend_hours"`
	HolidayHours float64 `json:"holiday_hours"`
	Reason       string  `json:"reason"`
}

func (r *SubmitOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_date",
			Message: "overtime_date is required and must be a YYYY-MM-DD date",
		})
	}

	if r.RegularHours < 0 || r.WeekendHours < 0 || r.HolidayHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "regular_hours",
			Message: "hour values must not be negative",
		})
	}

	if r.RegularHours+r.WeekendHours+r.HolidayHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "regular_hours",
			Message: "at least one hour bucket must be greater than zero",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedDate returns the parsed overtime date. Call after Validate.
func (r *SubmitOvertimeRequest) ParsedDate() time.Time {
	d, _ := validator.IsValidDate(r.Date)
	return d
}

type RejectOvertimeRequest struct {
	RejectionReason string `json:"rejection_reason"`
}

func (r *RejectOvertimeRequest) Validate() error {
	if validator.IsEmpty(r.RejectionReason) {
		return validator.ValidationErrors{{
			Field:   "rejection_reason",
			Message: "rejection_reason is required",
		}}
	}
	return nil
}

type OvertimeResponse struct {
	OvertimeID      string  `json:"overtime_id"`
	EmployeeID      string  `json:"employee_id"`
	Date            string  `json:"overtime_date"`
	RegularHours    float64 `json:"regular_hours"`
	WeekendHours    float64 `json:"weekend_hours"`
	HolidayHours    float64 `json:"holiday_hours"`
	TotalHours      float64 `json:"total_hours"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ApproverID      *string `json:"approver_id,omitempty"`
	ApprovalDate    *string `json:"approval_date,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	SubmittedAt     string  `json:"submitted_at"`
}

type ListOvertimeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Overtimes  []OvertimeResponse `json:"overtimes"`
}

func ToOvertimeResponse(o *Overtime) OvertimeResponse {
	resp := OvertimeResponse{
		OvertimeID:      o.OvertimeID,
		EmployeeID:      o.EmployeeID,
		Date:            o.Date.Format("2006-01-02"),
		RegularHours:    o.RegularHours,
		WeekendHours:    o.WeekendHours,
		HolidayHours:    o.HolidayHours,
		TotalHours:      o.TotalHours(),
		Reason:          o.Reason,
		Status:          string(o.Status),
		ApproverID:      o.ApproverID,
		RejectionReason: o.RejectionReason,
		SubmittedAt:     o.SubmittedAt.Format(time.RFC3339),
	}
	if o.ApprovalDate != nil {
		d := o.ApprovalDate.Format(time.RFC3339)
		resp.ApprovalDate = &d
	}
	return resp
}
