package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/payroll"
	"github.com/payfitlite/nesthr-backend-go/internal/handler/http/response"
)

// maxPayrollForm bounds the multipart form held in memory for uploads.
const maxPayrollForm = 32 << 20

type PayrollHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Archive(w http.ResponseWriter, r *http.Request)
	Document(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Create implements PayrollHandler. The cycle arrives as a multipart form so
// the payslip bundle can ride along with the figures.
func (h *PayrollHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxPayrollForm); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	var createReq payroll.CreateCycleRequest
	createReq.PeriodYear, _ = strconv.Atoi(r.FormValue("period_year"))
	createReq.PeriodMonth, _ = strconv.Atoi(r.FormValue("period_month"))
	createReq.EmployeeCount, _ = strconv.Atoi(r.FormValue("employee_count"))
	createReq.TotalGross = r.FormValue("total_gross")
	createReq.TotalNet = r.FormValue("total_net")

	if file, header, err := r.FormFile("document"); err == nil {
		defer file.Close()
		createReq.File = file
		createReq.FileHeader = header
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.payrollService.CreateCycle(r.Context(), actor, createReq)
	if err != nil {
		slog.Error("Payroll create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll cycle created", created)
}

// Get implements PayrollHandler.
func (h *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	cycle, err := h.payrollService.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, cycle)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var filter payroll.ListFilter
	filter.Limit, filter.Offset = parsePagination(r)
	if v := r.URL.Query().Get("status"); v != "" {
		status := payroll.Status(v)
		filter.Status = &status
	}
	if v := r.URL.Query().Get("year"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			filter.Year = &year
		}
	}

	cycles, total, err := h.payrollService.List(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, cycles, response.NewMeta(filter.Limit, filter.Offset, total))
}

// Approve implements PayrollHandler.
func (h *PayrollHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	approved, err := h.payrollService.Approve(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll cycle approved", approved)
}

// Archive implements PayrollHandler.
func (h *PayrollHandlerImpl) Archive(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	archived, err := h.payrollService.Archive(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll cycle archived", archived)
}

// Document implements PayrollHandler.
func (h *PayrollHandlerImpl) Document(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	url, err := h.payrollService.DocumentURL(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"url": url})
}
