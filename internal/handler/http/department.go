package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peoplehq/hrm-backend-go/internal/domain/department"
	"github.com/peoplehq/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplehq/hrm-backend-go/internal/handler/http/response"
)

type DepartmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	AssignEmployees(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
}

type DepartmentHandlerImpl struct {
	departmentService department.DepartmentService
}

func NewDepartmentHandler(departmentService department.DepartmentService) DepartmentHandler {
	return &DepartmentHandlerImpl{departmentService: departmentService}
}

// Create implements DepartmentHandler.
func (h *DepartmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.departmentService.Create(r.Context(), callerID, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created successfully", result)
}

// Get implements DepartmentHandler.
func (h *DepartmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	code := chi.URLParam(r, "code")

	result, err := h.departmentService.GetByCode(r.Context(), callerID, code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements DepartmentHandler.
func (h *DepartmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	code := chi.URLParam(r, "code")

	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.departmentService.Update(r.Context(), callerID, code, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated successfully", result)
}

// Delete implements DepartmentHandler.
func (h *DepartmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	code := chi.URLParam(r, "code")

	if err := h.departmentService.Delete(r.Context(), callerID, code); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}

// List implements DepartmentHandler.
func (h *DepartmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	page, limit := pagination(r)

	result, err := h.departmentService.List(r.Context(), callerID, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Departments, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// AssignEmployees implements DepartmentHandler.
func (h *DepartmentHandlerImpl) AssignEmployees(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	code := chi.URLParam(r, "code")

	var req department.AssignEmployeesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.departmentService.AssignEmployees(r.Context(), callerID, code, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employees assigned successfully", result)
}

// Report implements DepartmentHandler.
func (h *DepartmentHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	result, err := h.departmentService.Report(r.Context(), callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
