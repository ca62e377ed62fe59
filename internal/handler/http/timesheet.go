package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/timesheet"
	"github.com/payfitlite/nesthr-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// Create implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq timesheet.CreateTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.timesheetService.Create(r.Context(), actor, createReq)
	if err != nil {
		slog.Error("Timesheet create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timesheet created", created)
}

// Get implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	t, err := h.timesheetService.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, t)
}

// List implements TimesheetHandler.
func (h *TimesheetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var filter timesheet.ListFilter
	filter.Limit, filter.Offset = parsePagination(r)
	if v := r.URL.Query().Get("status"); v != "" {
		status := timesheet.Status(v)
		filter.Status = &status
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}

	timesheets, total, err := h.timesheetService.List(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, timesheets, response.NewMeta(filter.Limit, filter.Offset, total))
}

// Update implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq timesheet.UpdateTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.timesheetService.Update(r.Context(), actor, chi.URLParam(r, "id"), updateReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet updated", updated)
}

// Submit implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	submitted, err := h.timesheetService.Submit(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet submitted", submitted)
}

// Approve implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	approved, err := h.timesheetService.Approve(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet approved", approved)
}

// Reject implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var rejectReq timesheet.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&rejectReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := rejectReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rejected, err := h.timesheetService.Reject(r.Context(), actor, chi.URLParam(r, "id"), rejectReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet rejected", rejected)
}

// Delete implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.timesheetService.DeleteDraft(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet draft deleted", nil)
}
