package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/payroll-api/internal/dto"
	"github.com/payroll-api/internal/service"
)

type WorkLogHandler struct {
	responder
	logService service.WorkLogService
	validator  *validator.Validate
}

func NewWorkLogHandler(logService service.WorkLogService, logger *slog.Logger) *WorkLogHandler {
	return &WorkLogHandler{
		responder:  responder{logger: logger},
		logService: logService,
		validator:  dto.NewValidator(),
	}
}

func (h *WorkLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWorkLogRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.handleServiceError(w, err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.handleServiceError(w, dto.ToValidationError(err))
		return
	}

	log, err := h.logService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, log)
}

func (h *WorkLogHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := h.pathID(r, "employeeId")
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	logs, err := h.logService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, logs)
}
