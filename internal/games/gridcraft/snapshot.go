package gridcraft

import "strconv"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick          uint64
	Score         int
	HighScore     int
	Combo         int
	Phase         int
	TimeRemaining float64
	CursorX       int
	CursorY       int
	Selected      int
	Cells         []int
	Blocks        []string // "name/color" in slot order
	GameOver      bool
	Paused        bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	blocks := g.round.AvailableBlocks()
	names := make([]string, len(blocks))
	for i, b := range blocks {
		names[i] = b.Shape.Name + "/" + strconv.Itoa(b.Color)
	}

	return Snapshot{
		Tick:          g.tick,
		Score:         g.round.Score(),
		HighScore:     g.round.HighScore(),
		Combo:         g.round.Combo(),
		Phase:         g.round.Phase().Number,
		TimeRemaining: g.round.TimeRemaining(),
		CursorX:       g.cursorX,
		CursorY:       g.cursorY,
		Selected:      g.selected,
		Cells:         g.round.Grid().Cells,
		Blocks:        names,
		GameOver:      g.gameOver,
		Paused:        g.paused,
	}
}
