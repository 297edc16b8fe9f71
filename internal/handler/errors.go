package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/notedown/notedown/internal/service"
)

// respondServiceError maps service errors to HTTP responses. The service
// layer produces caller-facing messages, so known kinds are passed
// through verbatim; anything else is logged and hidden behind a 500.
func respondServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"message": err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": err.Error()})
	case errors.Is(err, service.ErrInvalidOperation),
		errors.Is(err, service.ErrNoteOperation),
		errors.Is(err, service.ErrCategoryOperation):
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
	default:
		logger.Error("internal_error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "An unexpected error occurred.",
		})
	}
}
