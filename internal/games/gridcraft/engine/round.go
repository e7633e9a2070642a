package engine

import "slices"

// Placement describes the outcome of the most recent successful placement.
type Placement struct {
	Block         Block
	X, Y          int
	Lines         Lines
	CellsCleared  int
	Gain          int
	ComboExponent int // Chain length used for the multiplier (before this clear)
	Combo         int // Chain length after this placement
	Phase         int
}

// Stats accumulates per-round counters.
type Stats struct {
	Placements   int
	LinesCleared int
	BestCombo    int
}

// Round is the mutable state of one timed round plus the durable high score.
// It has a single writer; none of its methods block.
type Round struct {
	rules  Rules
	gen    *Generator
	store  HighScoreStore
	phases *PhaseTracker

	grid          *Grid
	score         int
	highScore     int
	combo         int
	timeRemaining float64
	available     []Block
	gameOver      bool
	stats         Stats
	last          Placement
	hasLast       bool

	// OnPersistError, if set, receives high-score store failures.
	// The round continues regardless.
	OnPersistError func(err error)
}

// NewRound validates the rules and starts a fresh round.
// A nil store keeps the high score in memory only.
func NewRound(rules Rules, rng RandomSource, store HighScoreStore) (*Round, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		store = &MemoryHighScores{}
	}

	r := &Round{
		rules:  rules,
		gen:    NewGenerator(rules.Catalog, rules.Colors, rng),
		store:  store,
		phases: NewPhaseTracker(rules.Phases),
		grid:   NewGrid(rules.GridSize),
	}
	r.Reset()
	return r, nil
}

// Reset discards all round state and starts over. Always safe to call.
func (r *Round) Reset() {
	r.grid.Reset()
	r.score = 0
	r.combo = 0
	r.timeRemaining = r.rules.RoundTime
	r.gameOver = false
	r.stats = Stats{}
	r.last = Placement{}
	r.hasLast = false

	r.phases.Reset()
	r.phases.Update(r.timeRemaining)

	r.loadHighScore()
	r.available = r.gen.Batch(r.rules.BatchSize)
}

// Tick advances the round clock by dt seconds and returns true when the
// phase changed on this tick.
func (r *Round) Tick(dt float64) bool {
	if r.gameOver || dt <= 0 {
		return false
	}

	r.timeRemaining -= dt
	if r.timeRemaining < 0 {
		r.timeRemaining = 0
	}

	_, changed := r.phases.Update(r.timeRemaining)
	return changed
}

// CanPlace reports whether the available block at index fits at (x, y).
func (r *Round) CanPlace(index, x, y int) bool {
	if index < 0 || index >= len(r.available) {
		return false
	}
	return r.grid.CanPlace(r.available[index].Shape, x, y)
}

// Place puts the available block at index onto the grid with its top-left
// corner at (x, y). Returns false, with nothing changed, if the round is
// over, the index is unknown or the block does not fit.
func (r *Round) Place(index, x, y int) bool {
	if r.gameOver || r.timeRemaining <= 0 {
		return false
	}
	if index < 0 || index >= len(r.available) {
		return false
	}

	block := r.available[index]
	if !r.grid.Place(block.Shape, x, y, block.Color) {
		return false
	}

	phase := r.phases.Current()
	p := Placement{
		Block: block,
		X:     x,
		Y:     y,
		Phase: phase.Number,
	}

	lines := r.grid.CompletedLines(block.Shape, x, y)
	k := lines.Count()
	if k == 0 {
		r.combo = 0
	} else {
		p.Lines = lines
		p.CellsCleared = r.grid.ClearLines(lines)
		p.ComboExponent = r.combo
		p.Gain = r.rules.Scoring.Gain(k, r.combo, phase.Multiplier)

		r.score = addScore(r.score, p.Gain)
		r.combo++
		r.stats.LinesCleared += k
		r.stats.BestCombo = max(r.stats.BestCombo, r.combo)

		if r.score > r.highScore {
			r.highScore = r.score
			r.saveHighScore()
		}
	}
	p.Combo = r.combo

	r.stats.Placements++
	r.last = p
	r.hasLast = true

	r.available = slices.Delete(r.available, index, index+1)
	if len(r.available) == 0 {
		r.available = r.gen.Batch(r.rules.BatchSize)
	}

	return true
}

// IsRoundOver reports whether the round has ended: the clock ran out or no
// available block fits anywhere. The result latches.
func (r *Round) IsRoundOver() bool {
	if r.gameOver {
		return true
	}
	if r.timeRemaining <= 0 || !HasAnyLegalMove(r.grid, r.available) {
		r.gameOver = true
	}
	return r.gameOver
}

// AvailableBlocks returns a copy of the current batch in selection order.
func (r *Round) AvailableBlocks() []Block {
	return slices.Clone(r.available)
}

// Grid returns a copy of the grid.
func (r *Round) Grid() *Grid {
	return r.grid.Clone()
}

// Cell returns the grid cell at (x, y) without copying the grid.
func (r *Round) Cell(x, y int) int {
	return r.grid.Get(x, y)
}

// Rules returns the rules the round was built with.
func (r *Round) Rules() Rules {
	return r.rules
}

// Score returns the current round score.
func (r *Round) Score() int {
	return r.score
}

// HighScore returns the best score known, across rounds.
func (r *Round) HighScore() int {
	return r.highScore
}

// Combo returns the current consecutive-clear count.
func (r *Round) Combo() int {
	return r.combo
}

// Phase returns the current phase.
func (r *Round) Phase() Phase {
	return r.phases.Current()
}

// TimeRemaining returns the seconds left in the round, never below zero.
func (r *Round) TimeRemaining() float64 {
	return r.timeRemaining
}

// Stats returns the per-round counters.
func (r *Round) Stats() Stats {
	return r.stats
}

// LastPlacement returns the most recent successful placement, if any.
func (r *Round) LastPlacement() (Placement, bool) {
	return r.last, r.hasLast
}

func (r *Round) loadHighScore() {
	v, err := r.store.LoadHighScore()
	if err != nil {
		r.reportPersist(err)
		return
	}
	if v < 0 {
		v = 0
	}
	r.highScore = v
}

func (r *Round) saveHighScore() {
	if err := r.store.SaveHighScore(r.highScore); err != nil {
		r.reportPersist(err)
	}
}

func (r *Round) reportPersist(err error) {
	if r.OnPersistError != nil {
		r.OnPersistError(err)
	}
}
