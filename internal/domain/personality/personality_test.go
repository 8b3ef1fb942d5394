package personality_test

import (
	"math"
	"testing"

	"github.com/P-Pranath/Unora-app/internal/domain/personality"
)

func TestDimensionIsValid(t *testing.T) {
	for _, d := range personality.Dimensions {
		if !d.IsValid() {
			t.Errorf("expected %q to be valid", d)
		}
	}
	if personality.Dimension("charisma").IsValid() {
		t.Error("expected unknown dimension to be invalid")
	}
}

func TestModeCaps(t *testing.T) {
	if got := personality.ModeOnboarding.MaxQuestions(); got != 8 {
		t.Errorf("expected onboarding cap 8, got %d", got)
	}
	if got := personality.ModeStreakCheckin.MaxQuestions(); got != 1 {
		t.Errorf("expected streak check-in cap 1, got %d", got)
	}
	if got := personality.Mode("WEEKLY").MaxQuestions(); got != 8 {
		t.Errorf("expected unknown mode to fall back to onboarding cap, got %d", got)
	}
	if personality.Mode("WEEKLY").IsValid() {
		t.Error("expected unknown mode to be invalid")
	}
}

func TestNewDefaultState(t *testing.T) {
	state := personality.NewDefaultState(personality.DecisionPace)
	if state.Score != 0.5 || state.Confidence != 0.1 {
		t.Errorf("unexpected default state: %+v", state)
	}
}

func TestOverallConfidence(t *testing.T) {
	states := []personality.DimensionState{
		{Dimension: personality.DecisionPace, Confidence: 0.2},
		{Dimension: personality.ConflictPosture, Confidence: 0.6},
	}
	if got := personality.OverallConfidence(states); math.Abs(got-0.4) > 1e-12 {
		t.Errorf("expected 0.4, got %f", got)
	}
	if got := personality.OverallConfidence(nil); got != 0 {
		t.Errorf("expected 0 for empty states, got %f", got)
	}
}
