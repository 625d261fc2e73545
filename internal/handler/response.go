package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/payroll-api/internal/domain"
	"github.com/payroll-api/internal/dto"
)

// responder содержит общие JSON-хелперы хендлеров
type responder struct {
	logger *slog.Logger
}

func (h responder) decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid request body: "+err.Error())
	}
	return nil
}

// pathID читает UUID из параметра пути и возвращает его в каноническом виде
func (h responder) pathID(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", domain.NewValidationError(name, "must be a valid id")
	}
	return id.String(), nil
}

func (h responder) handleServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound):
		h.respondError(w, http.StatusNotFound, "Employee not found", "")
	case errors.As(err, &verr):
		h.respondError(w, http.StatusBadRequest, "Validation error", verr.Error())
	case errors.Is(err, domain.ErrPayrollConflict):
		h.respondError(w, http.StatusConflict, "Payroll is already being disbursed for this employee", "")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "Server error", "")
	}
}

func (h responder) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h responder) respondError(w http.ResponseWriter, status int, msg, details string) {
	h.respondJSON(w, status, dto.MessageResponse{Message: msg, Details: details})
}
