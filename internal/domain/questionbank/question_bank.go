package questionbank

import (
	"github.com/P-Pranath/Unora-app/internal/domain/personality"
)

// Option is one answer choice within a question. Selecting it nudges the
// user's belief state by the per-dimension deltas in Impacts.
type Option struct {
	Label   string
	Impacts map[personality.Dimension]float64
}

// Question is one situational scenario from the static catalog.
// DimensionTargets is ordered; DimensionTargets[0] is the primary dimension
// and is the one recorded as "last asked" for anti-repetition.
type Question struct {
	ID               string
	Scenario         string
	DimensionTargets []personality.Dimension
	Options          []Option
}

// PrimaryDimension returns DimensionTargets[0], the dimension used for
// anti-repetition bookkeeping.
func (q Question) PrimaryDimension() personality.Dimension {
	return q.DimensionTargets[0]
}

// TargetsAny reports whether the question targets at least one of the
// given dimensions.
func (q Question) TargetsAny(dims []personality.Dimension) bool {
	for _, target := range q.DimensionTargets {
		for _, d := range dims {
			if target == d {
				return true
			}
		}
	}
	return false
}

// All returns a copy of every question in the catalog. The order is
// stable across calls but carries no meaning.
func All() []Question {
	questions := make([]Question, len(catalog))
	copy(questions, catalog)
	return questions
}

// ByID looks up a question by its ID.
func ByID(id string) (Question, bool) {
	for _, q := range catalog {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// ByDimension returns the questions targeting the given dimension.
func ByDimension(d personality.Dimension) []Question {
	var questions []Question
	for _, q := range catalog {
		for _, target := range q.DimensionTargets {
			if target == d {
				questions = append(questions, q)
				break
			}
		}
	}
	return questions
}

// CountByDimension counts how many catalog questions target each dimension.
func CountByDimension() map[personality.Dimension]int {
	counts := make(map[personality.Dimension]int, len(personality.Dimensions))
	for _, d := range personality.Dimensions {
		counts[d] = 0
	}
	for _, q := range catalog {
		for _, target := range q.DimensionTargets {
			counts[target]++
		}
	}
	return counts
}
