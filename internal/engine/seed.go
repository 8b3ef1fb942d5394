package engine

import (
	"fmt"
	"time"
)

// seededRand is a small linear congruential generator. Given the same
// seed it produces the same sequence, which is what makes selection
// reproducible for one user within one calendar day.
type seededRand struct {
	state uint32
}

func newSeededRand(seed uint32) *seededRand {
	return &seededRand{state: seed}
}

// next advances the generator and returns a value in [0, 1].
// LCG parameters from Numerical Recipes.
func (r *seededRand) next() float64 {
	r.state = r.state*1664525 + 1013904223
	return float64(r.state) / float64(0xFFFFFFFF)
}

// dailySeed hashes userID plus the calendar date (djb2, folded to 32
// bits). The month is zero-based, which is a quirk inherited from the
// first deployment of this seeding scheme; changing it would reshuffle
// everyone's daily question order for no gain.
func dailySeed(userID string, t time.Time) uint32 {
	dateString := fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month())-1, t.Day())
	combined := userID + dateString

	var hash uint32 = 5381
	for i := 0; i < len(combined); i++ {
		hash = hash*33 + uint32(combined[i])
	}
	return hash
}
