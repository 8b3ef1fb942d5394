package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/P-Pranath/Unora-app/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type InitProfileRequest struct {
	UserID string `json:"user_id" example:"u-4f2c9a"`
}

func (r *InitProfileRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user_id is required")
	}
	return nil
}

type DimensionStateResponse struct {
	Dimension  string  `json:"dimension" example:"emotional_regulation"`
	Score      float64 `json:"score" example:"0.5"`
	Confidence float64 `json:"confidence" example:"0.1"`
}

type ProfileResponse struct {
	UserID             string                   `json:"user_id"`
	QuestionsAnswered  int                      `json:"questions_answered"`
	LastDimensionAsked string                   `json:"last_dimension_asked,omitempty"`
	Dimensions         []DimensionStateResponse `json:"dimensions"`
	OverallConfidence  float64                  `json:"overall_confidence"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
}

func toProfileResponse(view *service.ProfileView) ProfileResponse {
	dims := make([]DimensionStateResponse, 0, len(view.Dimensions))
	for _, s := range view.Dimensions {
		dims = append(dims, DimensionStateResponse{
			Dimension:  string(s.Dimension),
			Score:      s.Score,
			Confidence: s.Confidence,
		})
	}
	return ProfileResponse{
		UserID:             view.UserID,
		QuestionsAnswered:  view.QuestionsAnswered,
		LastDimensionAsked: string(view.LastDimensionAsked),
		Dimensions:         dims,
		OverallConfidence:  view.OverallConfidence,
		CreatedAt:          view.CreatedAt,
		UpdatedAt:          view.UpdatedAt,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// initProfile creates a personality profile with default belief state.
// @Summary      Initialize a profile
// @Description  Create a profile seeded with neutral dimension states.
// @Tags         Profiles
// @Accept       json
// @Produce      json
// @Param        body  body      InitProfileRequest  true  "User to initialize"
// @Success      201   {object}  ProfileResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "profile already exists"
// @Failure      500   {object}  map[string]string
// @Router       /profile/init [post]
func (h *Handler) initProfile(w http.ResponseWriter, r *http.Request) {
	var req InitProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.assessments.InitProfile(r.Context(), req.UserID)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, toProfileResponse(view))
}

// getProfile returns a profile with its current belief state.
// @Summary      Get a profile
// @Tags         Profiles
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {object}  ProfileResponse
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /profile/{userID} [get]
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	view, err := h.assessments.Profile(r.Context(), r.PathValue("userID"))
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, toProfileResponse(view))
}

// resetProfile restores a profile to its just-initialized state.
// @Summary      Reset a profile
// @Description  Restore default dimension states, zero the counters, and clear the answer history.
// @Tags         Profiles
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {object}  ProfileResponse
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /profile/{userID}/reset [post]
func (h *Handler) resetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	if err := h.assessments.Reset(r.Context(), userID); h.handleServiceError(w, err) {
		return
	}

	view, err := h.assessments.Profile(r.Context(), userID)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, toProfileResponse(view))
}
