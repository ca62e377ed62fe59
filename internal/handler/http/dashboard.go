package http

import (
	"net/http"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/dashboard"
	"github.com/payfitlite/nesthr-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Pending(w http.ResponseWriter, r *http.Request)
	EmployeePending(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Pending implements DashboardHandler.
func (h *DashboardHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	pending, err := h.dashboardService.Pending(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, pending)
}

// EmployeePending implements DashboardHandler.
func (h *DashboardHandlerImpl) EmployeePending(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	pending, err := h.dashboardService.EmployeePending(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, pending)
}
