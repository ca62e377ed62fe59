package http

import (
	"net/http"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/audit"
	"github.com/payfitlite/nesthr-backend-go/internal/handler/http/response"
)

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type AuditHandlerImpl struct {
	auditService audit.AuditService
}

func NewAuditHandler(auditService audit.AuditService) AuditHandler {
	return &AuditHandlerImpl{auditService: auditService}
}

// List implements AuditHandler.
func (h *AuditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var filter audit.ListFilter
	filter.Limit, filter.Offset = parsePagination(r)
	if v := r.URL.Query().Get("account_id"); v != "" {
		filter.AccountID = &v
	}
	if v := r.URL.Query().Get("entity"); v != "" {
		filter.Entity = &v
	}

	entries, total, err := h.auditService.List(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, entries, response.NewMeta(filter.Limit, filter.Offset, total))
}
