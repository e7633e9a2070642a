package engine

// HighScoreStore persists the single durable scalar of the game.
// Implementations may fail; the engine ignores failures and keeps playing.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// MemoryHighScores keeps the high score in process memory.
type MemoryHighScores struct {
	value int
}

// LoadHighScore returns the stored value.
func (m *MemoryHighScores) LoadHighScore() (int, error) {
	return m.value, nil
}

// SaveHighScore replaces the stored value.
func (m *MemoryHighScores) SaveHighScore(score int) error {
	m.value = score
	return nil
}
