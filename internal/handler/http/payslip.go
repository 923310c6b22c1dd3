package http

import (
	"net/http"
	"time"

	"github.com/autopay-hq/autopay-backend-go/internal/domain/payslip"
	"github.com/autopay-hq/autopay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayslipHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payrollService payslip.PayrollService
}

func NewPayslipHandler(payrollService payslip.PayrollService) PayslipHandler {
	return &payslipHandlerImpl{
		payrollService: payrollService,
	}
}

// Generate implements PayslipHandler - computes and stores the payslip for
// the current calendar month, replacing any prior one.
func (h *payslipHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	slip, err := h.payrollService.Generate(r.Context(), id, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslip generated", slip)
}

// ListForEmployee implements PayslipHandler
func (h *payslipHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	payslips, err := h.payrollService.ListForEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslips)
}
