package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/identity"
	"github.com/payfitlite/nesthr-backend-go/internal/handler/http/response"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/validator"
)

// ContextHandler serves the session-context surface: who am I, which company
// am I in, where should the frontend send me.
type ContextHandler interface {
	GetContext(w http.ResponseWriter, r *http.Request)
	SwitchCompany(w http.ResponseWriter, r *http.Request)
	CurrentCompany(w http.ResponseWriter, r *http.Request)
	Portal(w http.ResponseWriter, r *http.Request)
}

type ContextHandlerImpl struct {
	identityService identity.IdentityService
}

func NewContextHandler(identityService identity.IdentityService) ContextHandler {
	return &ContextHandlerImpl{identityService: identityService}
}

// GetContext implements ContextHandler.
func (h *ContextHandlerImpl) GetContext(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	uc, err := h.identityService.ResolveUser(r.Context(), actor.AccountID)
	if err != nil {
		slog.Error("GetContext service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, uc)
}

// SwitchCompany implements ContextHandler.
func (h *ContextHandlerImpl) SwitchCompany(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var switchReq struct {
		CompanyID string `json:"company_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&switchReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if !validator.IsValidUUID(switchReq.CompanyID) {
		response.ValidationError(w, map[string]string{"company_id": "must be a valid UUID"})
		return
	}

	result, err := h.identityService.SwitchCompany(r.Context(), actor.AccountID, switchReq.CompanyID)
	if err != nil {
		slog.Error("SwitchCompany service error", "error", err, "company_id", switchReq.CompanyID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company switched", result)
}

// CurrentCompany implements ContextHandler.
func (h *ContextHandlerImpl) CurrentCompany(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	current, err := h.identityService.CurrentCompany(r.Context(), actor.AccountID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, current)
}

// Portal implements ContextHandler.
func (h *ContextHandlerImpl) Portal(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		// an unauthenticated session still gets a routing answer
		response.Success(w, map[string]identity.PortalDecision{"portal": identity.DecidePortal(identity.PortalInput{})})
		return
	}

	decision, err := h.identityService.Portal(r.Context(), actor.AccountID)
	if err != nil {
		slog.Error("Portal service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]identity.PortalDecision{"portal": decision})
}
