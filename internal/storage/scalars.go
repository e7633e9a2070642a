package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// LoadScalar reads a named integer. ok is false when the key is unset.
func (s *Store) LoadScalar(key string) (value int, ok bool, err error) {
	err = s.db.QueryRow("SELECT value FROM scalars WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot load %s: %w", key, err)
	}
	return value, true, nil
}

// SaveScalar writes a named integer, replacing any previous value.
func (s *Store) SaveScalar(key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO scalars (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", key, err)
	}
	return nil
}

// DeleteScalar removes a named integer. Missing keys are not an error.
func (s *Store) DeleteScalar(key string) error {
	if _, err := s.db.Exec("DELETE FROM scalars WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %s: %w", key, err)
	}
	return nil
}

func highScoreKey(gameID string) string {
	return "highscore:" + gameID
}

// HighScoreSlot stores one game's high score under a known key.
// It implements core.HighScoreStore.
type HighScoreSlot struct {
	store  *Store
	gameID string
}

// HighScoreSlot returns the high-score slot for a game.
func (s *Store) HighScoreSlot(gameID string) *HighScoreSlot {
	return &HighScoreSlot{store: s, gameID: gameID}
}

// Key returns the scalar key the slot uses.
func (h *HighScoreSlot) Key() string {
	return highScoreKey(h.gameID)
}

// LoadHighScore returns the stored high score. An unset slot falls back to
// the best round in the history, then 0.
func (h *HighScoreSlot) LoadHighScore() (int, error) {
	v, ok, err := h.store.LoadScalar(h.Key())
	if err != nil {
		return 0, err
	}
	if ok {
		return v, nil
	}
	return h.store.HighScore(h.gameID)
}

// SaveHighScore replaces the stored high score.
func (h *HighScoreSlot) SaveHighScore(score int) error {
	return h.store.SaveScalar(h.Key(), score)
}
