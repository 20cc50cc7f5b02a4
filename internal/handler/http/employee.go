package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/peoplehq/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
	"github.com/peoplehq/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplehq/hrm-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	AssignShift(w http.ResponseWriter, r *http.Request)
	UploadDocument(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), callerID, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	callerID, role, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	employeeID := chi.URLParam(r, "employeeId")

	result, err := h.employeeService.Get(r.Context(), callerID, user.Role(role), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	callerID, role, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	employeeID := chi.URLParam(r, "employeeId")

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Update(r.Context(), callerID, user.Role(role), employeeID, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	employeeID := chi.URLParam(r, "employeeId")

	if err := h.employeeService.Delete(r.Context(), callerID, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	page, limit := pagination(r)
	filter := employee.ListFilter{
		Name:       r.URL.Query().Get("name"),
		Role:       r.URL.Query().Get("role"),
		Department: r.URL.Query().Get("department"),
		Page:       page,
		Limit:      limit,
	}

	result, err := h.employeeService.List(r.Context(), callerID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Employees, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// AssignShift implements EmployeeHandler.
func (h *EmployeeHandlerImpl) AssignShift(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	employeeID := chi.URLParam(r, "employeeId")

	var req employee.AssignShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.AssignShift(r.Context(), callerID, employeeID, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift assigned successfully", result)
}

// UploadDocument implements EmployeeHandler. The document arrives as
// multipart form data under the "file" field, with the slot name in the URL.
func (h *EmployeeHandlerImpl) UploadDocument(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	employeeID := chi.URLParam(r, "employeeId")
	field := chi.URLParam(r, "field")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "File is required", nil)
		return
	}
	defer file.Close()

	result, err := h.employeeService.UploadDocument(r.Context(), callerID, employeeID, field, header.Filename, file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document uploaded successfully", result)
}

// pagination reads page/limit query parameters with the standard defaults.
func pagination(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
