package core

// HighScoreStore persists a single high-score scalar for one game.
// Failures are reported but never stop play.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// HighScoreAware is implemented by games that keep a durable high score.
// The platform attaches a store before the first Reset.
type HighScoreAware interface {
	AttachHighScores(store HighScoreStore)
}

// RoundSummary describes a finished round for the score history.
type RoundSummary struct {
	Score      int
	Lines      int
	BestCombo  int
	Placements int
	Seconds    float64 // Round time actually played
}

// RoundReporter is implemented by games that report more than a score
// when a round ends.
type RoundReporter interface {
	RoundSummary() RoundSummary
}

// Resizable is implemented by games that can adapt to a new screen size
// without restarting.
type Resizable interface {
	Resize(width, height int)
}

// DifficultyAware is implemented by games with selectable difficulty
// presets. The name is game-specific; an empty name means the default.
type DifficultyAware interface {
	SetDifficulty(name string) error
}
