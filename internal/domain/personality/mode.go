package personality

// Mode is the selection policy under which questions are served.
type Mode string

const (
	ModeOnboarding    Mode = "ONBOARDING"
	ModeStreakCheckin Mode = "STREAK_CHECKIN"
)

// modeMaxQuestions caps how many questions each mode may serve.
var modeMaxQuestions = map[Mode]int{
	ModeOnboarding:    8,
	ModeStreakCheckin: 1,
}

// MaxQuestions returns the question cap for a mode.
// Unknown modes fall back to the onboarding cap.
func (m Mode) MaxQuestions() int {
	if max, ok := modeMaxQuestions[m]; ok {
		return max
	}
	return modeMaxQuestions[ModeOnboarding]
}

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	_, ok := modeMaxQuestions[m]
	return ok
}
