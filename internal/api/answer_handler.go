package api

import (
	"errors"
	"net/http"

	"github.com/P-Pranath/Unora-app/internal/domain/personality"
	"github.com/P-Pranath/Unora-app/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type SubmitAnswerRequest struct {
	UserID      string `json:"user_id"`
	QuestionID  string `json:"question_id" example:"Q_ER_01"`
	Mode        string `json:"mode" example:"ONBOARDING"`
	OptionIndex *int   `json:"option_index"` // omit to skip the question
}

func (r *SubmitAnswerRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user_id is required")
	}
	if r.QuestionID == "" {
		return errors.New("question_id is required")
	}
	return nil
}

type SubmitAnswerResponse struct {
	Skipped           bool                 `json:"skipped"`
	Updated           bool                 `json:"updated"`
	QuestionsAnswered int                  `json:"questions_answered"`
	Next              NextQuestionResponse `json:"next"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// submitAnswer records an answer or a skip and returns the next question.
// @Summary      Submit an answer
// @Description  Apply the chosen option's scoring impacts and select the next question. Omitting option_index records a skip, which consumes a question slot without touching dimension state. Resubmitting a question is rejected.
// @Tags         Answers
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitAnswerRequest  true  "Answer to record"
// @Success      200   {object}  SubmitAnswerResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string  "profile not found"
// @Failure      409   {object}  map[string]string  "question already answered"
// @Failure      500   {object}  map[string]string
// @Router       /answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	mode := personality.Mode(req.Mode)
	if req.Mode == "" {
		mode = personality.ModeOnboarding
	}

	result, err := h.assessments.SubmitAnswer(r.Context(), service.AnswerRequest{
		UserID:      req.UserID,
		QuestionID:  req.QuestionID,
		Mode:        mode,
		OptionIndex: req.OptionIndex,
	})
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, SubmitAnswerResponse{
		Skipped:           result.Skipped,
		Updated:           len(result.Updates) > 0,
		QuestionsAnswered: result.QuestionsAnswered,
		Next:              toNextQuestionResponse(result.Next),
	})
}

// modeFromQuery reads the mode query parameter, defaulting to onboarding.
func modeFromQuery(r *http.Request) personality.Mode {
	if m := r.URL.Query().Get("mode"); m != "" {
		return personality.Mode(m)
	}
	return personality.ModeOnboarding
}
