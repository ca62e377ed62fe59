package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/company"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/membership"
	"github.com/payfitlite/nesthr-backend-go/internal/handler/http/response"
)

// maxLogoSize caps company logo uploads at 5 MiB.
const maxLogoSize = 5 << 20

type CompanyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UploadLogo(w http.ResponseWriter, r *http.Request)

	AddMember(w http.ResponseWriter, r *http.Request)
	ListMembers(w http.ResponseWriter, r *http.Request)
	UpdateMemberRole(w http.ResponseWriter, r *http.Request)
	RemoveMember(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// companyIDFromRequest resolves the company a route operates on: the path
// param when present, the token's current company otherwise.
func companyIDFromRequest(r *http.Request) string {
	if id := chi.URLParam(r, "id"); id != "" {
		return id
	}
	actor, err := actorFromRequest(r)
	if err != nil {
		return ""
	}
	return actor.CompanyID
}

// Create implements CompanyHandler.
func (h *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq company.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.companyService.Create(r.Context(), actor, createReq)
	if err != nil {
		slog.Error("Company create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Company created", created)
}

// Get implements CompanyHandler.
func (h *CompanyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	comp, err := h.companyService.Get(r.Context(), actor, companyIDFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, comp)
}

// List implements CompanyHandler.
func (h *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	companies, total, err := h.companyService.List(r.Context(), limit, offset)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, companies, response.NewMeta(limit, offset, total))
}

// Update implements CompanyHandler.
func (h *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.companyService.Update(r.Context(), actor, companyIDFromRequest(r), updateReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company updated", updated)
}

// UploadLogo implements CompanyHandler.
func (h *CompanyHandlerImpl) UploadLogo(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxLogoSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}
	file, header, err := r.FormFile("logo")
	if err != nil {
		response.BadRequest(w, "Missing logo file", nil)
		return
	}
	defer file.Close()

	updated, err := h.companyService.UploadLogo(r.Context(), actor, companyIDFromRequest(r),
		file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		slog.Error("UploadLogo service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logo uploaded", updated)
}

// AddMember implements CompanyHandler.
func (h *CompanyHandlerImpl) AddMember(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var memberReq membership.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&memberReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := memberReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.companyService.AddMember(r.Context(), actor, companyIDFromRequest(r), memberReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Member added", created)
}

// ListMembers implements CompanyHandler.
func (h *CompanyHandlerImpl) ListMembers(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	members, err := h.companyService.ListMembers(r.Context(), actor, companyIDFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, members)
}

// UpdateMemberRole implements CompanyHandler.
func (h *CompanyHandlerImpl) UpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var roleReq membership.UpdateMemberRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&roleReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := roleReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	err = h.companyService.UpdateMemberRole(r.Context(), actor, companyIDFromRequest(r),
		chi.URLParam(r, "accountID"), roleReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member role updated", nil)
}

// RemoveMember implements CompanyHandler.
func (h *CompanyHandlerImpl) RemoveMember(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	err = h.companyService.RemoveMember(r.Context(), actor, companyIDFromRequest(r),
		chi.URLParam(r, "accountID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member removed", nil)
}
