// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/P-Pranath/Unora-app/internal/service"
	"github.com/P-Pranath/Unora-app/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	assessments *service.AssessmentService
	logger      *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(assessments *service.AssessmentService, logger *slog.Logger) *Handler {
	return &Handler{
		assessments: assessments,
		logger:      logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON body into v and runs its Validate
// method. Returns false if an error response was already written.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validatable) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleServiceError maps service and store sentinel errors onto HTTP
// responses. Returns true if an error was handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "profile not found")
	case errors.Is(err, store.ErrConflict):
		respondError(w, http.StatusConflict, "profile already exists")
	case errors.Is(err, service.ErrAlreadyAnswered):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidMode),
		errors.Is(err, service.ErrUnknownQuestion),
		errors.Is(err, service.ErrInvalidOption):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("internal error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
