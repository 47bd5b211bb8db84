package http

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/workshophq/workforce-backend-go/internal/domain/payroll"
	"github.com/workshophq/workforce-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	MonthlyReport(w http.ResponseWriter, r *http.Request)
	PeriodReport(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// MonthlyReport implements PayrollHandler.
func (h *payrollHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	req := payroll.MonthlyReportRequest{
		Month: chi.URLParam(r, "month"),
	}

	result, err := h.payrollService.MonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PeriodReport implements PayrollHandler.
func (h *payrollHandlerImpl) PeriodReport(w http.ResponseWriter, r *http.Request) {
	req := payroll.PeriodReportRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	result, err := h.payrollService.PeriodReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Payslip implements PayrollHandler. Streams the generated PDF.
func (h *payrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	req := payroll.PayslipRequest{
		Month:      chi.URLParam(r, "month"),
		EmployeeID: chi.URLParam(r, "empID"),
	}

	path, err := h.payrollService.GeneratePayslipPDF(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		slog.Error("Failed to open generated payslip", "path", path, "error", err)
		response.InternalServerError(w, "Failed to read payslip")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filepath.Base(path))
	http.ServeContent(w, r, filepath.Base(path), fileModTime(f), f)
}

func fileModTime(f *os.File) time.Time {
	if info, err := f.Stat(); err == nil {
		return info.ModTime()
	}
	return time.Time{}
}
