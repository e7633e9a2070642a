package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/gridcraft/internal/core"
)

// ScoreEntry is one finished round in the score history.
type ScoreEntry struct {
	ID         int64
	RoundID    string
	GameID     string
	Score      int
	Lines      int
	BestCombo  int
	Placements int
	Seconds    float64
	CreatedAt  time.Time
}

const entryColumns = `id, round_id, game_id, score, lines, best_combo, placements, seconds, created_at`

// SaveRound records a finished round and returns its generated round ID.
func (s *Store) SaveRound(gameID string, sum core.RoundSummary) (string, error) {
	roundID := uuid.NewString()

	_, err := s.db.Exec(
		`INSERT INTO rounds (round_id, game_id, score, lines, best_combo, placements, seconds)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		roundID, gameID, sum.Score, sum.Lines, sum.BestCombo, sum.Placements, sum.Seconds,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}

	return roundID, nil
}

// SaveScore records a round for which only the score is known.
func (s *Store) SaveScore(gameID string, score int) (string, error) {
	return s.SaveRound(gameID, core.RoundSummary{Score: score})
}

// TopScores retrieves the top N rounds for the given game.
// Results are ordered by score descending, earlier rounds first on ties.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+entryColumns+`
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// RecentRounds retrieves the most recent rounds for the given game.
func (s *Store) RecentRounds(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+entryColumns+`
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// RoundByID retrieves one round. Returns nil if it does not exist.
func (s *Store) RoundByID(roundID string) (*ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT `+entryColumns+` FROM rounds WHERE round_id = ?`,
		roundID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil || len(entries) == 0 {
		return nil, err
	}
	return &entries[0], nil
}

// HighScore returns the highest recorded round score for the given game.
// Returns 0 if no rounds exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes the round history and the stored high score of the
// given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM rounds WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if err := s.DeleteScalar(highScoreKey(gameID)); err != nil {
		return err
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]ScoreEntry, error) {
	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.RoundID, &e.GameID, &e.Score,
			&e.Lines, &e.BestCombo, &e.Placements, &e.Seconds,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entries, nil
		}
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}
