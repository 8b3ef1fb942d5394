// Package scoring updates a dimension's belief state from an answer's
// impact delta.
//
// Score formula: a confidence-weighted blend that pulls the score toward
// (score + delta), with less movement as accumulated confidence grows.
// Confidence climbs by a fixed increment that shrinks once confidence
// passes the high-confidence threshold.
package scoring

import "github.com/P-Pranath/Unora-app/internal/domain/personality"

const (
	// baseWeight is the pull of a new answer at normal confidence.
	baseWeight = 1.0

	// highConfidenceWeight is the reduced pull once confidence is high.
	highConfidenceWeight = 0.5

	// highConfidenceThreshold marks where diminishing returns kick in.
	highConfidenceThreshold = 0.8

	normalConfidenceIncrement = 0.08
	highConfidenceIncrement   = 0.02

	minScore      = 0.0
	maxScore      = 1.0
	maxConfidence = 1.0
)

// Update records how one ApplyImpact call changed a dimension.
type Update struct {
	Dimension     personality.Dimension
	OldScore      float64
	NewScore      float64
	OldConfidence float64
	NewConfidence float64
}

// ApplyImpact returns the belief state after applying a single impact
// delta. The input state is not modified.
func ApplyImpact(current personality.DimensionState, delta float64) personality.DimensionState {
	weight := baseWeight
	if current.Confidence > highConfidenceThreshold {
		weight = highConfidenceWeight
	}

	targetScore := current.Score + delta
	rawScore := (current.Score*current.Confidence + targetScore*weight) / (current.Confidence + weight)

	increment := normalConfidenceIncrement
	if current.Confidence > highConfidenceThreshold {
		increment = highConfidenceIncrement
	}

	return personality.DimensionState{
		Dimension:  current.Dimension,
		Score:      clamp(rawScore, minScore, maxScore),
		Confidence: min(current.Confidence+increment, maxConfidence),
	}
}

// Preview computes the state ApplyImpact would produce, packaged as an
// Update with the before and after values. Useful for debugging endpoints
// and logs; it has no side effects.
func Preview(current personality.DimensionState, delta float64) Update {
	next := ApplyImpact(current, delta)
	return Update{
		Dimension:     current.Dimension,
		OldScore:      current.Score,
		NewScore:      next.Score,
		OldConfidence: current.Confidence,
		NewConfidence: next.Confidence,
	}
}

// DescribeImpact labels a delta's magnitude for logging.
func DescribeImpact(delta float64) string {
	switch {
	case delta >= 0.2:
		return "strong positive"
	case delta >= 0.1:
		return "moderate positive"
	case delta > 0:
		return "slight positive"
	case delta == 0:
		return "neutral"
	case delta > -0.1:
		return "slight negative"
	case delta > -0.2:
		return "moderate negative"
	default:
		return "strong negative"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
