package api

import (
	"net/http"

	"github.com/P-Pranath/Unora-app/internal/domain/questionbank"
	"github.com/P-Pranath/Unora-app/internal/service"
)

// ── Response types ──────────────────────────────────────────────────────────

type OptionResponse struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

type QuestionResponse struct {
	ID       string           `json:"id" example:"Q_ER_01"`
	Scenario string           `json:"scenario"`
	Options  []OptionResponse `json:"options"`
}

type NextQuestionResponse struct {
	Complete          bool              `json:"complete"`
	Reason            string            `json:"reason,omitempty"`
	Mode              string            `json:"mode"`
	QuestionsAnswered int               `json:"questions_answered"`
	Question          *QuestionResponse `json:"question,omitempty"`
}

func toQuestionResponse(q *questionbank.Question) *QuestionResponse {
	if q == nil {
		return nil
	}
	options := make([]OptionResponse, 0, len(q.Options))
	for i, opt := range q.Options {
		options = append(options, OptionResponse{Index: i, Label: opt.Label})
	}
	return &QuestionResponse{
		ID:       q.ID,
		Scenario: q.Scenario,
		Options:  options,
	}
}

func toNextQuestionResponse(view service.NextQuestionView) NextQuestionResponse {
	return NextQuestionResponse{
		Complete:          view.Complete,
		Reason:            view.Reason,
		Mode:              string(view.Mode),
		QuestionsAnswered: view.QuestionsAnswered,
		Question:          toQuestionResponse(view.Question),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// nextQuestion selects the next question for a user.
// @Summary      Get the next question
// @Description  Runs priority-based selection over the question bank. Returns a terminal result with a reason once the mode's cap is reached or the bank is exhausted.
// @Tags         Questions
// @Produce      json
// @Param        user_id  query     string  true   "User ID"
// @Param        mode     query     string  false  "Assessment mode (ONBOARDING or STREAK_CHECKIN, default ONBOARDING)"
// @Success      200      {object}  NextQuestionResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /questions/next [get]
func (h *Handler) nextQuestion(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	mode := modeFromQuery(r)

	result, err := h.assessments.NextQuestion(r.Context(), userID, mode)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, toNextQuestionResponse(result))
}
