package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/P-Pranath/Unora-app/internal/domain/personality"
	"github.com/P-Pranath/Unora-app/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateProfile_SeedsDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateProfile(ctx, "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profile, err := s.GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.QuestionsAnswered != 0 {
		t.Errorf("expected 0 questions answered, got %d", profile.QuestionsAnswered)
	}
	if profile.LastDimensionAsked != "" {
		t.Errorf("expected empty last dimension, got %q", profile.LastDimensionAsked)
	}

	states, err := s.GetDimensionStates(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(states) != len(personality.Dimensions) {
		t.Fatalf("expected %d dimension states, got %d", len(personality.Dimensions), len(states))
	}
	for _, state := range states {
		if state.Score != personality.DefaultScore || state.Confidence != personality.DefaultConfidence {
			t.Errorf("%s: expected default state, got %+v", state.Dimension, state)
		}
	}
}

func TestCreateProfile_Conflict(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateProfile(ctx, "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.CreateProfile(ctx, "u1"); !errors.Is(err, store.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.GetProfile(context.Background(), "nobody"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateDimensionState(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateProfile(ctx, "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := personality.DimensionState{
		Dimension:  personality.DecisionPace,
		Score:      0.72,
		Confidence: 0.34,
	}
	if err := s.UpdateDimensionState(ctx, "u1", updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	states, err := s.GetDimensionStates(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, state := range states {
		if state.Dimension == personality.DecisionPace {
			if state.Score != 0.72 || state.Confidence != 0.34 {
				t.Errorf("expected updated state, got %+v", state)
			}
			return
		}
	}
	t.Fatal("decision_pace state missing")
}

func TestUpdateDimensionState_UnknownUser(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateDimensionState(context.Background(), "nobody", personality.NewDefaultState(personality.DecisionPace))
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAppendAnswerLog_DuplicateRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateProfile(ctx, "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	option := 1
	entry := store.AnswerLogEntry{UserID: "u1", QuestionID: "Q_ER_01", SelectedOption: &option}
	if err := s.AppendAnswerLog(ctx, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.AppendAnswerLog(ctx, entry); !errors.Is(err, store.ErrConflict) {
		t.Errorf("expected ErrConflict for duplicate answer, got %v", err)
	}
}

func TestAnsweredQuestionIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateProfile(ctx, "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	option := 0
	entries := []store.AnswerLogEntry{
		{UserID: "u1", QuestionID: "Q_ER_01", SelectedOption: &option},
		{UserID: "u1", QuestionID: "Q_CS_02", Skipped: true},
	}
	for _, e := range entries {
		if err := s.AppendAnswerLog(ctx, e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	ids, err := s.AnsweredQuestionIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 answered ids, got %d", len(ids))
	}

	answered, err := s.HasAnswered(ctx, "u1", "Q_CS_02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !answered {
		t.Error("expected skipped question to count as answered")
	}

	answered, err = s.HasAnswered(ctx, "u1", "Q_DP_01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answered {
		t.Error("did not expect Q_DP_01 to be answered")
	}
}

func TestIncrementAndLastDimension(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateProfile(ctx, "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.IncrementQuestionsAnswered(ctx, "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetLastDimensionAsked(ctx, "u1", personality.ConflictPosture); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profile, err := s.GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.QuestionsAnswered != 1 {
		t.Errorf("expected 1 question answered, got %d", profile.QuestionsAnswered)
	}
	if profile.LastDimensionAsked != personality.ConflictPosture {
		t.Errorf("expected conflict_posture, got %q", profile.LastDimensionAsked)
	}

	if err := s.IncrementQuestionsAnswered(ctx, "nobody"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResetProfile(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateProfile(ctx, "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	option := 2
	if err := s.AppendAnswerLog(ctx, store.AnswerLogEntry{UserID: "u1", QuestionID: "Q_EO_01", SelectedOption: &option}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.IncrementQuestionsAnswered(ctx, "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetLastDimensionAsked(ctx, "u1", personality.EnergyOrientation); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.UpdateDimensionState(ctx, "u1", personality.DimensionState{
		Dimension: personality.EnergyOrientation, Score: 0.9, Confidence: 0.5,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.ResetProfile(ctx, "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profile, err := s.GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.QuestionsAnswered != 0 || profile.LastDimensionAsked != "" {
		t.Errorf("profile counters not reset: %+v", profile)
	}

	states, _ := s.GetDimensionStates(ctx, "u1")
	for _, state := range states {
		if state.Score != personality.DefaultScore || state.Confidence != personality.DefaultConfidence {
			t.Errorf("%s: state not reset, got %+v", state.Dimension, state)
		}
	}

	ids, _ := s.AnsweredQuestionIDs(ctx, "u1")
	if len(ids) != 0 {
		t.Errorf("expected empty answer log after reset, got %d entries", len(ids))
	}

	if err := s.ResetProfile(ctx, "nobody"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
