// internal/api/router.go
package api

import "net/http"

// RegisterRoutes mounts all assessment endpoints on the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Profiles
	mux.HandleFunc("POST /profile/init", h.initProfile)
	mux.HandleFunc("GET /profile/{userID}", h.getProfile)
	mux.HandleFunc("POST /profile/{userID}/reset", h.resetProfile)

	// Questions and answers
	mux.HandleFunc("GET /questions/next", h.nextQuestion)
	mux.HandleFunc("POST /answers", h.submitAnswer)

	// Summaries
	mux.HandleFunc("GET /summary/{userID}", h.getSummary)

	mux.HandleFunc("GET /health", h.health)
}

// health reports service liveness.
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
