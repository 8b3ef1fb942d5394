package store

import (
	"context"
	"errors"
	"time"

	"github.com/P-Pranath/Unora-app/internal/domain/personality"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// Profile is a user's assessment bookkeeping row.
type Profile struct {
	UserID             string
	QuestionsAnswered  int
	LastDimensionAsked personality.Dimension // empty when nothing asked yet
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AnswerLogEntry is one append-only record of a served question being
// answered or skipped. Its existence makes the question permanently
// ineligible for re-selection for that user.
type AnswerLogEntry struct {
	UserID         string
	QuestionID     string
	SelectedOption *int // nil when skipped
	Skipped        bool
}

// Store is the persistence boundary for profiles, belief state, and the
// answer log. Implementations must treat single-row writes as atomic;
// CreateProfile and ResetProfile are the only multi-row transactions the
// engine relies on.
type Store interface {
	// CreateProfile inserts the profile and one seeded DimensionState per
	// dimension in a single transaction. ErrConflict if the user exists.
	CreateProfile(ctx context.Context, userID string) error

	GetProfile(ctx context.Context, userID string) (*Profile, error)
	GetDimensionStates(ctx context.Context, userID string) ([]personality.DimensionState, error)
	UpdateDimensionState(ctx context.Context, userID string, state personality.DimensionState) error

	// AppendAnswerLog inserts the log row. ErrConflict if the user already
	// has a row for the question.
	AppendAnswerLog(ctx context.Context, entry AnswerLogEntry) error
	AnsweredQuestionIDs(ctx context.Context, userID string) ([]string, error)
	HasAnswered(ctx context.Context, userID, questionID string) (bool, error)

	IncrementQuestionsAnswered(ctx context.Context, userID string) error
	SetLastDimensionAsked(ctx context.Context, userID string, dimension personality.Dimension) error

	// ResetProfile restores default dimension states, zeroes the counters,
	// and clears the answer log in one transaction.
	ResetProfile(ctx context.Context, userID string) error

	Close() error
}
