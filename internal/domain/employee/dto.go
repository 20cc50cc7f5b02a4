package employee

import (
	"time"

	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`

	Personal           Personal           `json:"personal_information"`
	Employment         Employment         `json:"employment_information"`
	Compensation       Compensation       `json:"compensation_and_benefits"`
	AttendanceAndLeave AttendanceAndLeave `json:"attendance_and_leave"`
	EmergencyContact   EmergencyContact   `json:"emergency_contact"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required and must be valid",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.Role != "" && !user.IsValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of rootAdmin, hrAdmin, employee",
		})
	}

	if validator.IsEmpty(r.Personal.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "personal_information.full_name",
			Message: "full_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest carries section replacements; nil sections are left
// untouched.
type UpdateEmployeeRequest struct {
	Personal           *Personal           `json:"personal_information,omitempty"`
	Employment         *Employment         `json:"employment_information,omitempty"`
	Compensation       *Compensation       `json:"compensation_and_benefits,omitempty"`
	AttendanceAndLeave *AttendanceAndLeave `json:"attendance_and_leave,omitempty"`
	Performance        *Performance        `json:"performance_and_evaluations,omitempty"`
	EmergencyContact   *EmergencyContact   `json:"emergency_contact,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Personal != nil && validator.IsEmpty(r.Personal.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "personal_information.full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Personal != nil && r.Personal.ContactInformation.Email != "" &&
		!validator.IsValidEmail(r.Personal.ContactInformation.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "personal_information.contact_information.email",
			Message: "contact email must be valid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignShiftRequest struct {
	ShiftID string `json:"shift_id"`
}

func (r *AssignShiftRequest) Validate() error {
	if validator.IsEmpty(r.ShiftID) {
		return validator.ValidationErrors{{
			Field:   "shift_id",
			Message: "shift_id is required",
		}}
	}
	return nil
}

// ListFilter narrows an employee listing. Name matches the personal
// full name as a substring, Role and Department match exactly.
type ListFilter struct {
	Name       string
	Role       string
	Department string
	Page       int
	Limit      int
}

func (f *ListFilter) Validate() error {
	if f.Role != "" && !user.IsValidRole(f.Role) {
		return validator.ValidationErrors{{
			Field:   "role",
			Message: "role must be one of rootAdmin, hrAdmin, employee",
		}}
	}
	return nil
}

type EmployeeResponse struct {
	EmployeeID string `json:"employee_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	ShiftID    *string `json:"shift_id,omitempty"`

	Personal           Personal           `json:"personal_information"`
	Employment         Employment         `json:"employment_information"`
	Compensation       Compensation       `json:"compensation_and_benefits"`
	AttendanceAndLeave AttendanceAndLeave `json:"attendance_and_leave"`
	Performance        Performance        `json:"performance_and_evaluations"`
	Documents          Documents          `json:"documents_and_compliance"`
	EmergencyContact   EmergencyContact   `json:"emergency_contact"`
	SystemAccess       SystemAccess       `json:"system_and_access_information"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}

func ToEmployeeResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:         e.EmployeeID,
		Email:              e.Email,
		Role:               string(e.Role),
		ShiftID:            e.ShiftID,
		Personal:           e.Personal,
		Employment:         e.Employment,
		Compensation:       e.Compensation,
		AttendanceAndLeave: e.AttendanceAndLeave,
		Performance:        e.Performance,
		Documents:          e.Documents,
		EmergencyContact:   e.EmergencyContact,
		SystemAccess:       e.SystemAccess,
		CreatedAt:          e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          e.UpdatedAt.Format(time.RFC3339),
	}
}
