// Package service orchestrates the assessment flow: profile lifecycle,
// question selection, answer scoring, and summary generation. The HTTP
// layer translates its sentinel errors into status codes.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/P-Pranath/Unora-app/internal/domain/personality"
	"github.com/P-Pranath/Unora-app/internal/domain/questionbank"
	"github.com/P-Pranath/Unora-app/internal/engine"
	"github.com/P-Pranath/Unora-app/internal/scoring"
	"github.com/P-Pranath/Unora-app/internal/store"
	"github.com/P-Pranath/Unora-app/internal/summary"
)

var (
	ErrInvalidMode     = errors.New("invalid assessment mode")
	ErrUnknownQuestion = errors.New("unknown question")
	ErrInvalidOption   = errors.New("option index out of range")
	ErrAlreadyAnswered = errors.New("question already answered")
)

// ProfileView is a profile joined with its belief state.
type ProfileView struct {
	UserID             string
	QuestionsAnswered  int
	LastDimensionAsked personality.Dimension
	Dimensions         []personality.DimensionState
	OverallConfidence  float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AnswerRequest is one submitted (or skipped) answer.
type AnswerRequest struct {
	UserID      string
	QuestionID  string
	Mode        personality.Mode
	OptionIndex *int // nil means the question was skipped
}

// NextQuestionView is the outcome of a selection round as exposed to
// callers: the served question (if any) and the user's progress in the
// requested mode.
type NextQuestionView struct {
	Question          *questionbank.Question
	Complete          bool
	Reason            string
	Mode              personality.Mode
	QuestionsAnswered int
}

// AnswerResult reports what a submission changed and what comes next.
type AnswerResult struct {
	Skipped           bool
	QuestionsAnswered int
	Updates           []scoring.Update
	Next              NextQuestionView
}

// SummaryView is a generated summary with the state it was built from.
type SummaryView struct {
	UserID            string
	Text              string
	OverallConfidence float64
	Dimensions        []personality.DimensionState
	GeneratedAt       time.Time
}

// AssessmentService wires the store, selection engine, and summary
// generator together.
type AssessmentService struct {
	store     store.Store
	selector  *engine.Selector
	summaries *summary.Generator
	logger    *slog.Logger
}

// NewAssessmentService creates an AssessmentService.
func NewAssessmentService(s store.Store, sel *engine.Selector, gen *summary.Generator, logger *slog.Logger) *AssessmentService {
	return &AssessmentService{
		store:     s,
		selector:  sel,
		summaries: gen,
		logger:    logger,
	}
}

// InitProfile creates a profile with default belief state.
// store.ErrConflict if the user already has one.
func (as *AssessmentService) InitProfile(ctx context.Context, userID string) (*ProfileView, error) {
	if err := as.store.CreateProfile(ctx, userID); err != nil {
		return nil, err
	}
	as.logger.Info("profile created", "user_id", userID)
	return as.Profile(ctx, userID)
}

// Profile returns the profile joined with its dimension states.
func (as *AssessmentService) Profile(ctx context.Context, userID string) (*ProfileView, error) {
	profile, err := as.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	states, err := as.store.GetDimensionStates(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ProfileView{
		UserID:             profile.UserID,
		QuestionsAnswered:  profile.QuestionsAnswered,
		LastDimensionAsked: profile.LastDimensionAsked,
		Dimensions:         states,
		OverallConfidence:  personality.OverallConfidence(states),
		CreatedAt:          profile.CreatedAt,
		UpdatedAt:          profile.UpdatedAt,
	}, nil
}

// NextQuestion runs the selection engine for the user in the given mode.
func (as *AssessmentService) NextQuestion(ctx context.Context, userID string, mode personality.Mode) (NextQuestionView, error) {
	if !mode.IsValid() {
		return NextQuestionView{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	return as.selectNext(ctx, userID, mode)
}

// selectNext runs one selection round and, when a question is served,
// records its primary dimension as the most recently asked one so the
// next round steers away from it.
func (as *AssessmentService) selectNext(ctx context.Context, userID string, mode personality.Mode) (NextQuestionView, error) {
	selCtx, err := as.buildSelectionContext(ctx, userID, mode)
	if err != nil {
		return NextQuestionView{}, err
	}
	selected := as.selector.Select(*selCtx)
	if selected.Question != nil {
		if err := as.store.SetLastDimensionAsked(ctx, userID, selected.Question.PrimaryDimension()); err != nil {
			return NextQuestionView{}, err
		}
	}
	return NextQuestionView{
		Question:          selected.Question,
		Complete:          selected.Complete,
		Reason:            selected.Reason,
		Mode:              mode,
		QuestionsAnswered: selCtx.QuestionsAnswered,
	}, nil
}

// SubmitAnswer records an answer or skip, applies its scoring impacts,
// and returns the next selection result.
//
// A skip still consumes a question slot and makes the question
// ineligible for re-selection, but touches no dimension state.
//
// The answer log row is written before any dimension state changes:
// its uniqueness constraint is what keeps a duplicate submission from
// scoring the same question twice.
func (as *AssessmentService) SubmitAnswer(ctx context.Context, req AnswerRequest) (*AnswerResult, error) {
	if !req.Mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, req.Mode)
	}

	profile, err := as.store.GetProfile(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	question, ok := questionbank.ByID(req.QuestionID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuestion, req.QuestionID)
	}

	answered, err := as.store.HasAnswered(ctx, req.UserID, req.QuestionID)
	if err != nil {
		return nil, err
	}
	if answered {
		return nil, fmt.Errorf("%w: %q", ErrAlreadyAnswered, req.QuestionID)
	}

	result := &AnswerResult{Skipped: req.OptionIndex == nil}
	if !result.Skipped {
		if *req.OptionIndex < 0 || *req.OptionIndex >= len(question.Options) {
			return nil, fmt.Errorf("%w: %d", ErrInvalidOption, *req.OptionIndex)
		}
	}

	entry := store.AnswerLogEntry{
		UserID:         req.UserID,
		QuestionID:     req.QuestionID,
		SelectedOption: req.OptionIndex,
		Skipped:        result.Skipped,
	}
	if err := as.store.AppendAnswerLog(ctx, entry); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, fmt.Errorf("%w: %q", ErrAlreadyAnswered, req.QuestionID)
		}
		return nil, err
	}

	if !result.Skipped {
		updates, err := as.applyOption(ctx, req.UserID, question, *req.OptionIndex)
		if err != nil {
			return nil, err
		}
		result.Updates = updates
	}

	if err := as.store.IncrementQuestionsAnswered(ctx, req.UserID); err != nil {
		return nil, err
	}
	result.QuestionsAnswered = profile.QuestionsAnswered + 1

	as.logger.Info("answer recorded",
		"user_id", req.UserID,
		"question_id", req.QuestionID,
		"skipped", result.Skipped,
		"questions_answered", result.QuestionsAnswered,
	)

	next, err := as.selectNext(ctx, req.UserID, req.Mode)
	if err != nil {
		return nil, err
	}
	result.Next = next
	return result, nil
}

// applyOption applies every dimension impact of the chosen option.
func (as *AssessmentService) applyOption(ctx context.Context, userID string, question questionbank.Question, optionIndex int) ([]scoring.Update, error) {
	states, err := as.store.GetDimensionStates(ctx, userID)
	if err != nil {
		return nil, err
	}
	byDimension := make(map[personality.Dimension]personality.DimensionState, len(states))
	for _, s := range states {
		byDimension[s.Dimension] = s
	}

	option := question.Options[optionIndex]
	impacted := make([]personality.Dimension, 0, len(option.Impacts))
	for dim := range option.Impacts {
		impacted = append(impacted, dim)
	}
	sort.Slice(impacted, func(i, j int) bool { return impacted[i] < impacted[j] })

	updates := make([]scoring.Update, 0, len(impacted))
	for _, dim := range impacted {
		delta := option.Impacts[dim]
		current := byDimension[dim]
		next := scoring.ApplyImpact(current, delta)
		if err := as.store.UpdateDimensionState(ctx, userID, next); err != nil {
			return nil, err
		}
		updates = append(updates, scoring.Update{
			Dimension:     dim,
			OldScore:      current.Score,
			NewScore:      next.Score,
			OldConfidence: current.Confidence,
			NewConfidence: next.Confidence,
		})
		as.logger.Debug("dimension updated",
			"user_id", userID,
			"dimension", dim,
			"impact", scoring.DescribeImpact(delta),
			"score", next.Score,
			"confidence", next.Confidence,
		)
	}
	return updates, nil
}

// Summary builds (or falls back to) a personality summary for the user.
func (as *AssessmentService) Summary(ctx context.Context, userID string) (*SummaryView, error) {
	profile, err := as.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	states, err := as.store.GetDimensionStates(ctx, userID)
	if err != nil {
		return nil, err
	}

	var text string
	if profile.QuestionsAnswered == 0 {
		text = summary.LowConfidenceSummary()
	} else {
		text = as.summaries.Generate(ctx, states)
	}

	return &SummaryView{
		UserID:            userID,
		Text:              text,
		OverallConfidence: personality.OverallConfidence(states),
		Dimensions:        states,
		GeneratedAt:       time.Now().UTC(),
	}, nil
}

// Reset restores the user's profile to its just-initialized state.
func (as *AssessmentService) Reset(ctx context.Context, userID string) error {
	if err := as.store.ResetProfile(ctx, userID); err != nil {
		return err
	}
	as.logger.Info("profile reset", "user_id", userID)
	return nil
}

// buildSelectionContext assembles the engine's view of one user from
// the store and the question bank.
func (as *AssessmentService) buildSelectionContext(ctx context.Context, userID string, mode personality.Mode) (*engine.Context, error) {
	profile, err := as.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	states, err := as.store.GetDimensionStates(ctx, userID)
	if err != nil {
		return nil, err
	}
	answeredIDs, err := as.store.AnsweredQuestionIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	answeredSet := make(map[string]bool, len(answeredIDs))
	answeredByDim := make(map[personality.Dimension]int)
	for _, id := range answeredIDs {
		answeredSet[id] = true
		if q, ok := questionbank.ByID(id); ok {
			for _, dim := range q.DimensionTargets {
				answeredByDim[dim]++
			}
		}
	}

	return &engine.Context{
		UserID:              userID,
		Mode:                mode,
		QuestionsAnswered:   profile.QuestionsAnswered,
		AnsweredQuestionIDs: answeredSet,
		States:              states,
		LastDimensionAsked:  profile.LastDimensionAsked,
		AnsweredByDimension: answeredByDim,
	}, nil
}
