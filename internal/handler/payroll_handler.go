package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/payroll-api/internal/domain"
	"github.com/payroll-api/internal/dto"
	"github.com/payroll-api/internal/service"
)

// IdempotencyKeyHeader позволяет безопасно повторить выплату
const IdempotencyKeyHeader = "Idempotency-Key"

const maxIdempotencyKeyLen = 128

type PayrollHandler struct {
	responder
	payService service.PayrollService
}

func NewPayrollHandler(payService service.PayrollService, logger *slog.Logger) *PayrollHandler {
	return &PayrollHandler{
		responder:  responder{logger: logger},
		payService: payService,
	}
}

func (h *PayrollHandler) Preview(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	preview, err := h.payService.Preview(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.PreviewResponse{
		EmployeeID:  preview.EmployeeID,
		TotalHours:  preview.Period.TotalHours,
		TotalPay:    preview.Period.TotalPay,
		Deductions:  preview.Period.Deductions,
		NetPay:      preview.Period.NetPay,
		LastPayDate: preview.LastPayDate,
		PreviewDate: preview.PreviewDate,
	})
}

func (h *PayrollHandler) Disburse(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	key := strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader))
	if len(key) > maxIdempotencyKeyLen {
		h.handleServiceError(w, domain.NewValidationError(IdempotencyKeyHeader, "must be at most 128 characters"))
		return
	}

	payroll, err := h.payService.Disburse(r.Context(), id, key)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, payroll)
}

func (h *PayrollHandler) History(w http.ResponseWriter, r *http.Request) {
	employeeID, err := h.pathID(r, "employeeId")
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	payrolls, err := h.payService.History(r.Context(), employeeID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, payrolls)
}

// MonthlyReport читает month, year и employeeId из query. Пустые или
// нечисловые month и year означают текущие
func (h *PayrollHandler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := service.ReportQuery{
		Month:      atoiOrZero(q.Get("month")),
		Year:       atoiOrZero(q.Get("year")),
		EmployeeID: queryID(q.Get("employeeId")),
	}

	report, err := h.payService.MonthlyReport(r.Context(), query)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := dto.MonthlyReportResponse{
		Results:      make([]dto.ReportRowResponse, 0, len(report.Results)),
		TotalExpense: report.TotalExpense,
		Skipped:      report.Skipped,
	}
	for _, row := range report.Results {
		resp.Results = append(resp.Results, dto.ReportRowResponse{
			EmployeeID:      row.Employee.ID,
			Name:            row.Employee.Name,
			Role:            row.Employee.Role,
			Month:           row.Month,
			Year:            row.Year,
			TotalHours:      row.Period.TotalHours,
			TotalPay:        row.Period.TotalPay,
			TotalDeductions: row.Period.Deductions,
			NetPay:          row.Period.NetPay,
		})
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// queryID приводит UUID к каноническому виду; остальные значения, включая
// "all", передаются как есть.
func queryID(raw string) string {
	raw = strings.TrimSpace(raw)
	if id, err := uuid.Parse(raw); err == nil {
		return id.String()
	}
	return raw
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
