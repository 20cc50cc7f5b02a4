package response

import (
	"errors"
	"net/http"

	"github.com/peoplehq/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehq/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehq/hrm-backend-go/internal/domain/department"
	"github.com/peoplehq/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehq/hrm-backend-go/internal/domain/leave"
	"github.com/peoplehq/hrm-backend-go/internal/domain/overtime"
	"github.com/peoplehq/hrm-backend-go/internal/domain/shift"
	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Every handler funnels
// its service errors through here so status codes stay consistent.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenNotFound):
		Unauthorized(w, "Token not found or revoked")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")
	case errors.Is(err, auth.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Access control
	case errors.Is(err, user.ErrPermissionDenied):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrNotManagedByYou):
		Forbidden(w, err.Error())
	case errors.Is(err, employee.ErrUnknownDocument):
		BadRequest(w, err.Error(), nil)

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, department.ErrNotDepartmentOwner):
		Forbidden(w, err.Error())
	case errors.Is(err, department.ErrEmployeeNotInCompany):
		Forbidden(w, err.Error())

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "Shift name already exists")
	case errors.Is(err, shift.ErrNotShiftOwner):
		Forbidden(w, err.Error())
	case errors.Is(err, shift.ErrShiftNotAssigned):
		// A missing shift assignment is a data problem with the request's
		// subject, not an authentication failure.
		UnprocessableEntity(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrConflictingFilters):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrInvalidDateFilter):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrCustomRangeRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrNotRecordOwner):
		Forbidden(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveNotPending):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrEndBeforeStart):
		UnprocessableEntity(w, err.Error())

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrOvertimeNotPending):
		Conflict(w, "Overtime request already processed")
	case errors.Is(err, overtime.ErrZeroHours):
		UnprocessableEntity(w, err.Error())

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
