package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peoplehq/hrm-backend-go/internal/domain/leave"
	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
	"github.com/peoplehq/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplehq/hrm-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Submit implements LeaveHandler.
func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	callerID, role, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	var req leave.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Submit(r.Context(), callerID, user.Role(role), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", result)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	leaveID := chi.URLParam(r, "leaveId")

	result, err := h.leaveService.Approve(r.Context(), callerID, leaveID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", result)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	leaveID := chi.URLParam(r, "leaveId")

	var req leave.RejectLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Reject(r.Context(), callerID, leaveID, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", result)
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	page, limit := pagination(r)
	status := r.URL.Query().Get("status")

	result, err := h.leaveService.List(r.Context(), callerID, status, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Leaves, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// ListOwn implements LeaveHandler.
func (h *LeaveHandlerImpl) ListOwn(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	page, limit := pagination(r)

	result, err := h.leaveService.ListOwn(r.Context(), callerID, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Leaves, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}
