// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/P-Pranath/Unora-app/internal/domain/personality"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
    user_id TEXT PRIMARY KEY,
    questions_answered INTEGER NOT NULL DEFAULT 0,
    last_dimension_asked TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS dimension_states (
    user_id TEXT NOT NULL,
    dimension TEXT NOT NULL,
    score REAL NOT NULL,
    confidence REAL NOT NULL,
    PRIMARY KEY (user_id, dimension),
    FOREIGN KEY (user_id) REFERENCES profiles(user_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS answer_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT NOT NULL,
    question_id TEXT NOT NULL,
    selected_option INTEGER,
    skipped INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (user_id, question_id),
    FOREIGN KEY (user_id) REFERENCES profiles(user_id) ON DELETE CASCADE
);
`

// SQLiteStore persists profiles, belief state, and the answer log.
type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check: *SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// SQLite allows one writer at a time; a single pooled connection
	// avoids SQLITE_BUSY and keeps :memory: databases coherent.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Profiles
// ============================================================================

func (s *SQLiteStore) CreateProfile(ctx context.Context, userID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO profiles (user_id, questions_answered, last_dimension_asked) VALUES (?, 0, NULL)",
		userID,
	); err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}

	for _, d := range personality.Dimensions {
		state := personality.NewDefaultState(d)
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO dimension_states (user_id, dimension, score, confidence) VALUES (?, ?, ?, ?)",
			userID, string(state.Dimension), state.Score, state.Confidence,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	var p Profile
	var lastDimension sql.NullString

	err := s.db.QueryRowContext(ctx,
		"SELECT user_id, questions_answered, last_dimension_asked, created_at, updated_at FROM profiles WHERE user_id = ?",
		userID,
	).Scan(&p.UserID, &p.QuestionsAnswered, &lastDimension, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if lastDimension.Valid {
		p.LastDimensionAsked = personality.Dimension(lastDimension.String)
	}
	return &p, nil
}

func (s *SQLiteStore) IncrementQuestionsAnswered(ctx context.Context, userID string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE profiles SET questions_answered = questions_answered + 1, updated_at = CURRENT_TIMESTAMP WHERE user_id = ?",
		userID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (s *SQLiteStore) SetLastDimensionAsked(ctx context.Context, userID string, dimension personality.Dimension) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE profiles SET last_dimension_asked = ?, updated_at = CURRENT_TIMESTAMP WHERE user_id = ?",
		string(dimension), userID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// ============================================================================
// Dimension states
// ============================================================================

func (s *SQLiteStore) GetDimensionStates(ctx context.Context, userID string) ([]personality.DimensionState, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT dimension, score, confidence FROM dimension_states WHERE user_id = ? ORDER BY dimension",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var states []personality.DimensionState
	for rows.Next() {
		var state personality.DimensionState
		var dimension string
		if err := rows.Scan(&dimension, &state.Score, &state.Confidence); err != nil {
			return nil, err
		}
		state.Dimension = personality.Dimension(dimension)
		states = append(states, state)
	}
	return states, rows.Err()
}

func (s *SQLiteStore) UpdateDimensionState(ctx context.Context, userID string, state personality.DimensionState) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE dimension_states SET score = ?, confidence = ? WHERE user_id = ? AND dimension = ?",
		state.Score, state.Confidence, userID, string(state.Dimension),
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// ============================================================================
// Answer log
// ============================================================================

func (s *SQLiteStore) AppendAnswerLog(ctx context.Context, entry AnswerLogEntry) error {
	var selected sql.NullInt64
	if entry.SelectedOption != nil {
		selected = sql.NullInt64{Int64: int64(*entry.SelectedOption), Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO answer_log (user_id, question_id, selected_option, skipped) VALUES (?, ?, ?, ?)",
		entry.UserID, entry.QuestionID, selected, entry.Skipped,
	)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (s *SQLiteStore) AnsweredQuestionIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT question_id FROM answer_log WHERE user_id = ?",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *SQLiteStore) HasAnswered(ctx context.Context, userID, questionID string) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM answer_log WHERE user_id = ? AND question_id = ?)",
		userID, questionID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

// ============================================================================
// Reset
// ============================================================================

func (s *SQLiteStore) ResetProfile(ctx context.Context, userID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE profiles SET questions_answered = 0, last_dimension_asked = NULL, updated_at = CURRENT_TIMESTAMP WHERE user_id = ?",
		userID,
	)
	if err != nil {
		return err
	}
	if err := requireRow(result); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE dimension_states SET score = ?, confidence = ? WHERE user_id = ?",
		personality.DefaultScore, personality.DefaultConfidence, userID,
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM answer_log WHERE user_id = ?",
		userID,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// ============================================================================
// Helpers
// ============================================================================

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// isUniqueViolation detects SQLite unique-constraint failures. The
// modernc driver exposes them only through the error text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
