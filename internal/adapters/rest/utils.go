package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"agency-service/internal/contracts"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// WriteJSONError отправляет {"error": message} с заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// RespondWithJSON отправляет payload как JSON
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// statusFor сопоставляет доменные ошибки HTTP-статусам.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrPropertyNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrEmptyAggregationDomain):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeUseCaseError пишет ответ по ошибке use case. Текст внутренних
// ошибок наружу не отдается.
func writeUseCaseError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, status, "Internal server error")
		return
	}
	logger.Warn("Use case rejected the request", port.Fields{"error": err.Error(), "status_code": status})
	WriteJSONError(w, status, err.Error())
}

// parseIDParam читает положительный целый параметр пути
func parseIDParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrInvalidInput, name, raw)
	}
	return id, nil
}

// decodeBody проверяет тело по JSON-схеме и декодирует его в dst
func decodeBody(r *http.Request, schemaKey string, dst interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("%w: failed to read body: %v", domain.ErrInvalidInput, err)
	}
	if len(body) > maxBodyBytes {
		return fmt.Errorf("%w: body is too large", domain.ErrInvalidInput)
	}
	if err := contracts.Validate(schemaKey, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
