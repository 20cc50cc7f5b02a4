package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/peoplehq/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
	"github.com/peoplehq/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplehq/hrm-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	EmployeeDetail(w http.ResponseWriter, r *http.Request)
	ByDate(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	callerID, role, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.MarkAttendance(r.Context(), callerID, user.Role(role), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded successfully", result)
}

// Report implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	query := reportQueryFrom(r)

	result, err := h.attendanceService.GenerateReport(r.Context(), callerID, query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	employeeID := chi.URLParam(r, "employeeId")
	q := r.URL.Query()

	result, err := h.attendanceService.GetSummary(r.Context(), callerID, employeeID,
		q.Get("filter"), q.Get("from"), q.Get("to"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeDetail implements AttendanceHandler.
func (h *AttendanceHandlerImpl) EmployeeDetail(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	employeeID := chi.URLParam(r, "employeeId")
	q := r.URL.Query()

	result, err := h.attendanceService.GetEmployeeDetail(r.Context(), callerID, employeeID,
		q.Get("filter"), q.Get("from"), q.Get("to"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ByDate implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ByDate(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	date := chi.URLParam(r, "date")
	page, limit := pagination(r)

	result, err := h.attendanceService.GetByDate(r.Context(), callerID, date, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Attendances, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// reportQueryFrom maps the report query string onto the service input.
// showAbsentDays defaults to true and flips off only on an explicit "false".
func reportQueryFrom(r *http.Request) *attendance.ReportQuery {
	q := r.URL.Query()

	query := &attendance.ReportQuery{
		From:           q.Get("from"),
		To:             q.Get("to"),
		EmployeeID:     q.Get("employee_id"),
		Department:     q.Get("department"),
		SortBy:         q.Get("sortBy"),
		SortDirection:  q.Get("sortDirection"),
		ShowAbsentDays: q.Get("showAbsentDays") != "false",
	}

	if v := q.Get("shiftType"); v != "" {
		query.ShiftType = &v
	}
	if v := q.Get("lateArrival"); v != "" {
		b := v == "true"
		query.LateArrival = &b
	}
	if v := q.Get("earlyDeparture"); v != "" {
		b := v == "true"
		query.EarlyDeparture = &b
	}
	if v := q.Get("overtime"); v != "" {
		b := v == "true"
		query.Overtime = &b
	}

	query.Page, _ = strconv.Atoi(q.Get("page"))
	query.PageSize, _ = strconv.Atoi(q.Get("limit"))

	return query
}
