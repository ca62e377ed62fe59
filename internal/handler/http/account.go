package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
	"github.com/payfitlite/nesthr-backend-go/internal/handler/http/response"
)

// AccountHandler is the superuser administration surface.
type AccountHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateRole(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	Reactivate(w http.ResponseWriter, r *http.Request)
}

type AccountHandlerImpl struct {
	accountService account.AccountService
}

func NewAccountHandler(accountService account.AccountService) AccountHandler {
	return &AccountHandlerImpl{accountService: accountService}
}

// Create implements AccountHandler.
func (h *AccountHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq account.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.accountService.Create(r.Context(), actor.AccountID, createReq)
	if err != nil {
		slog.Error("Account create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Account created", created)
}

// Get implements AccountHandler.
func (h *AccountHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	acc, err := h.accountService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, acc)
}

// List implements AccountHandler.
func (h *AccountHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	accounts, total, err := h.accountService.List(r.Context(), limit, offset)
	if err != nil {
		slog.Error("Account list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, accounts, response.NewMeta(limit, offset, total))
}

// Update implements AccountHandler.
func (h *AccountHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq account.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.accountService.Update(r.Context(), actor.AccountID, chi.URLParam(r, "id"), updateReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account updated", updated)
}

// UpdateRole implements AccountHandler.
func (h *AccountHandlerImpl) UpdateRole(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var roleReq account.UpdateAccountRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&roleReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := roleReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.accountService.UpdateRole(r.Context(), actor.AccountID, chi.URLParam(r, "id"), roleReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account role updated", updated)
}

// Deactivate implements AccountHandler.
func (h *AccountHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.accountService.Deactivate(r.Context(), actor.AccountID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account deactivated", nil)
}

// Reactivate implements AccountHandler.
func (h *AccountHandlerImpl) Reactivate(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.accountService.Reactivate(r.Context(), actor.AccountID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account reactivated", nil)
}
