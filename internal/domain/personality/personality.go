package personality

// Dimension is one of the fixed personality dimensions tracked by the
// assessment engine. Each dimension is a spectrum, not a binary label.
type Dimension string

const (
	EmotionalRegulation   Dimension = "emotional_regulation"   // how one manages emotional responses
	CommunicationStyle    Dimension = "communication_style"    // direct vs. indirect communication
	EmotionalAvailability Dimension = "emotional_availability" // openness to emotional connection
	ConsistencyStyle      Dimension = "consistency_style"      // routine vs. spontaneity
	ConflictPosture       Dimension = "conflict_posture"       // approach to disagreements
	EnergyOrientation     Dimension = "energy_orientation"     // social energy preferences
	DecisionPace          Dimension = "decision_pace"          // speed of decision-making
)

// Dimensions lists every tracked dimension in a stable order.
// Profile initialization seeds one DimensionState per entry.
var Dimensions = []Dimension{
	EmotionalRegulation,
	CommunicationStyle,
	EmotionalAvailability,
	ConsistencyStyle,
	ConflictPosture,
	EnergyOrientation,
	DecisionPace,
}

// IsValid reports whether d is one of the known dimensions.
func (d Dimension) IsValid() bool {
	for _, dim := range Dimensions {
		if d == dim {
			return true
		}
	}
	return false
}

// Defaults for a freshly initialized dimension: neutral score, low confidence.
const (
	DefaultScore      = 0.5
	DefaultConfidence = 0.1
)

// DimensionState is the current belief about where a user sits on one
// dimension. Score and Confidence are always within [0, 1].
type DimensionState struct {
	Dimension  Dimension
	Score      float64
	Confidence float64
}

// NewDefaultState returns the seed state for a dimension at profile init.
func NewDefaultState(d Dimension) DimensionState {
	return DimensionState{
		Dimension:  d,
		Score:      DefaultScore,
		Confidence: DefaultConfidence,
	}
}

// OverallConfidence is the mean confidence across all dimension states.
func OverallConfidence(states []DimensionState) float64 {
	if len(states) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range states {
		sum += s.Confidence
	}
	return sum / float64(len(states))
}
