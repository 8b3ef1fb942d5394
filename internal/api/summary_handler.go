package api

import (
	"net/http"
	"time"
)

// ── Response types ──────────────────────────────────────────────────────────

type SummaryResponse struct {
	UserID            string                   `json:"user_id"`
	Summary           string                   `json:"summary"`
	OverallConfidence float64                  `json:"overall_confidence"`
	Dimensions        []DimensionStateResponse `json:"dimensions"`
	GeneratedAt       time.Time                `json:"generated_at"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getSummary generates a personality summary for a user.
// @Summary      Get a personality summary
// @Description  Generates a short third-person description from the user's belief state. Falls back to a deterministic template when generation fails, and to a placeholder before any questions are answered.
// @Tags         Summaries
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {object}  SummaryResponse
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /summary/{userID} [get]
func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	view, err := h.assessments.Summary(r.Context(), r.PathValue("userID"))
	if h.handleServiceError(w, err) {
		return
	}

	dims := make([]DimensionStateResponse, 0, len(view.Dimensions))
	for _, s := range view.Dimensions {
		dims = append(dims, DimensionStateResponse{
			Dimension:  string(s.Dimension),
			Score:      s.Score,
			Confidence: s.Confidence,
		})
	}

	respondJSON(w, http.StatusOK, SummaryResponse{
		UserID:            view.UserID,
		Summary:           view.Text,
		OverallConfidence: view.OverallConfidence,
		Dimensions:        dims,
		GeneratedAt:       view.GeneratedAt,
	})
}
