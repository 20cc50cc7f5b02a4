package leave

import (
	"time"

	"github.com/peoplehq/hrm-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !IsValidType(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of annual, sick, maternity, paternity, other",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required and must be a YYYY-MM-DD date",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required and must be a YYYY-MM-DD date",
		})
	}

	if startOK && endOK && end.Before(start) {
		return ErrEndBeforeStart
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

// Dates returns the parsed start and end dates. Call after Validate.
func (r *SubmitLeaveRequest) Dates() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return start, end
}

type RejectLeaveRequest struct {
	RejectionReason string `json:"rejection_reason"`
}

func (r *RejectLeaveRequest) Validate() error {
	if validator.IsEmpty(r.RejectionReason) {
		return validator.ValidationErrors{{
			Field:   "rejection_reason",
			Message: "rejection_reason is required",
		}}
	}
	return nil
}

type LeaveResponse struct {
	LeaveID         string  `json:"leave_id"`
	EmployeeID      string  `json:"employee_id"`
	Type            string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Days            int     `json:"days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ApproverID      *string `json:"approver_id,omitempty"`
	ApprovalDate    *string `json:"approval_date,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	SubmittedAt     string  `json:"submitted_at"`
}

// RemainingBalance is attached to approval responses so callers can see the
// post-deduction quota, including negative values.
type ApproveLeaveResponse struct {
	Leave            LeaveResponse `json:"leave"`
	RemainingBalance int           `json:"remaining_balance"`
}

type ListLeaveResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Leaves     []LeaveResponse `json:"leaves"`
}

func ToLeaveResponse(l *Leave) LeaveResponse {
	resp := LeaveResponse{
		LeaveID:         l.LeaveID,
		EmployeeID:      l.EmployeeID,
		Type:            string(l.Type),
		StartDate:       l.StartDate.Format("2006-01-02"),
		EndDate:         l.EndDate.Format("2006-01-02"),
		Days:            l.Days,
		Reason:          l.Reason,
		Status:          string(l.Status),
		ApproverID:      l.ApproverID,
		RejectionReason: l.RejectionReason,
		SubmittedAt:     l.SubmittedAt.Format(time.RFC3339),
	}
	if l.ApprovalDate != nil {
		d := l.ApprovalDate.Format(time.RFC3339)
		resp.ApprovalDate = &d
	}
	return resp
}
