package questionbank_test

import (
	"testing"

	"github.com/P-Pranath/Unora-app/internal/domain/personality"
	"github.com/P-Pranath/Unora-app/internal/domain/questionbank"
)

func TestCatalogIntegrity(t *testing.T) {
	seen := make(map[string]bool)
	for _, q := range questionbank.All() {
		if q.ID == "" {
			t.Fatal("question with empty ID")
		}
		if seen[q.ID] {
			t.Errorf("duplicate question ID %q", q.ID)
		}
		seen[q.ID] = true

		if q.Scenario == "" {
			t.Errorf("%s: empty scenario", q.ID)
		}
		if len(q.DimensionTargets) < 1 || len(q.DimensionTargets) > 3 {
			t.Errorf("%s: expected 1-3 dimension targets, got %d", q.ID, len(q.DimensionTargets))
		}
		for _, d := range q.DimensionTargets {
			if !d.IsValid() {
				t.Errorf("%s: unknown dimension %q", q.ID, d)
			}
		}

		if len(q.Options) < 2 {
			t.Errorf("%s: expected at least 2 options, got %d", q.ID, len(q.Options))
		}

		targets := make(map[personality.Dimension]bool)
		for _, d := range q.DimensionTargets {
			targets[d] = true
		}
		for i, opt := range q.Options {
			if opt.Label == "" {
				t.Errorf("%s option %d: empty label", q.ID, i)
			}
			for dim, delta := range opt.Impacts {
				if !targets[dim] {
					t.Errorf("%s option %d: impact on untargeted dimension %q", q.ID, i, dim)
				}
				if delta < -0.3 || delta > 0.3 {
					t.Errorf("%s option %d: delta %f outside [-0.3, 0.3]", q.ID, i, delta)
				}
			}
		}
	}
}

func TestCatalogCoversEveryDimension(t *testing.T) {
	counts := questionbank.CountByDimension()
	for _, d := range personality.Dimensions {
		if counts[d] < 3 {
			t.Errorf("dimension %q has only %d questions, want at least 3", d, counts[d])
		}
	}
}

func TestByID(t *testing.T) {
	q, ok := questionbank.ByID("Q_ER_01")
	if !ok {
		t.Fatal("expected Q_ER_01 to exist")
	}
	if q.PrimaryDimension() != personality.EmotionalRegulation {
		t.Errorf("expected primary dimension emotional_regulation, got %q", q.PrimaryDimension())
	}

	if _, ok := questionbank.ByID("Q_NOPE_99"); ok {
		t.Error("expected unknown ID to report not found")
	}
}

func TestByDimension(t *testing.T) {
	questions := questionbank.ByDimension(personality.DecisionPace)
	if len(questions) == 0 {
		t.Fatal("expected questions targeting decision_pace")
	}
	for _, q := range questions {
		if !q.TargetsAny([]personality.Dimension{personality.DecisionPace}) {
			t.Errorf("%s returned for decision_pace but does not target it", q.ID)
		}
	}
}

func TestTargetsAny(t *testing.T) {
	q, _ := questionbank.ByID("Q_ER_02")

	if !q.TargetsAny([]personality.Dimension{personality.ConflictPosture}) {
		t.Error("expected Q_ER_02 to target conflict_posture")
	}
	if q.TargetsAny([]personality.Dimension{personality.EnergyOrientation}) {
		t.Error("did not expect Q_ER_02 to target energy_orientation")
	}
	if q.TargetsAny(nil) {
		t.Error("TargetsAny(nil) should be false")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	first := questionbank.All()
	first[0].ID = "mutated"

	if questionbank.All()[0].ID == "mutated" {
		t.Error("All() exposes the underlying catalog slice")
	}
}
