// Package gridcraft implements GridCraft, a timed block-placement puzzle.
// Blocks are placed onto a square grid; full rows and columns clear for
// points while the clock runs down through three scoring phases.
//
// The rules live in the engine subpackage. This package adapts them to the
// platform: cursor input, fixed-rate ticks and terminal rendering.
package gridcraft

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/gridcraft/internal/config"
	"github.com/vovakirdan/gridcraft/internal/core"
	"github.com/vovakirdan/gridcraft/internal/games/gridcraft/engine"
	"github.com/vovakirdan/gridcraft/internal/registry"
)

// Variant IDs.
const (
	IDStandard = "gridcraft"
	IDMini     = "gridcraft_mini"
)

// Flash durations in seconds.
const (
	flashPhase  = 2.0
	flashClear  = 1.2
	flashReject = 0.6
)

// flash is a short HUD message.
type flash struct {
	text  string
	color core.Color
	ticks int
}

// Game adapts an engine round to the platform.
type Game struct {
	id    string
	title string

	cfg    config.GridcraftConfig
	rules  engine.Rules
	round  *engine.Round
	scores core.HighScoreStore

	tick     uint64
	tickRate int
	screenW  int
	screenH  int

	cursorX  int
	cursorY  int
	selected int

	paused    bool
	gameOver  bool
	tooSmall  bool
	flash     flash
	configErr error

	// preset overrides the CLI preset for this instance when presetSet
	preset    config.DifficultyPreset
	presetSet bool
}

// New creates the standard 10×10 game.
func New() *Game {
	return &Game{id: IDStandard, title: "GridCraft"}
}

// NewMini creates the 8×8 variant.
func NewMini() *Game {
	return &Game{id: IDMini, title: "GridCraft Mini"}
}

func init() {
	registry.Register(IDStandard, func() registry.Game {
		return New()
	})
	registry.Register(IDMini, func() registry.Game {
		return NewMini()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// AttachHighScores sets the durable high-score store used from the next Reset.
func (g *Game) AttachHighScores(store core.HighScoreStore) {
	g.scores = store
}

// SetDifficulty selects a preset for this game instance, taking effect on the
// next Reset. An empty name selects the config file as written.
func (g *Game) SetDifficulty(name string) error {
	p, err := config.ParsePreset(name)
	if err != nil {
		return err
	}
	g.preset = p
	g.presetSet = true
	return nil
}

// Reset loads the rules and starts a new round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.paused = false
	g.gameOver = false
	g.flash = flash{}

	preset := difficultyPreset
	if g.presetSet {
		preset = g.preset
	}
	rules, gc, err := loadRules(g.id, preset)
	g.configErr = err
	if err != nil {
		// The CLI validates before starting; fall back for anything else
		gc = config.DefaultFor(g.id)
		rules = RulesFromConfig(gc)
	}
	g.cfg = gc
	g.rules = rules

	if g.scores == nil {
		g.scores = &engine.MemoryHighScores{}
	}

	round, err := engine.NewRound(rules, rand.New(rand.NewSource(cfg.Seed)), g.scores)
	if err != nil {
		// Unreachable with the built-in defaults
		panic(fmt.Sprintf("gridcraft: default rules rejected: %v", err))
	}
	g.round = round

	g.selected = 0
	g.cursorX = (rules.GridSize - 1) / 2
	g.cursorY = (rules.GridSize - 1) / 2
	g.clampCursor()

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts to a new screen size without touching the round.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	minW, minH := minScreenSize(g.rules)
	g.tooSmall = width < minW || height < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)

	if g.round.Tick(1 / float64(g.tickRate)) {
		p := g.round.Phase()
		g.setFlash(fmt.Sprintf("PHASE %d  x%.1f", p.Number, p.Multiplier), g.phaseColor(p), flashPhase)
	}

	if g.round.IsRoundOver() {
		g.gameOver = true
	}

	if g.flash.ticks > 0 {
		g.flash.ticks--
	}

	return core.StepResult{State: g.State()}
}

// handleInput applies selection first, then movement, then placement.
func (g *Game) handleInput(in core.InputFrame) {
	blocks := g.round.AvailableBlocks()

	for _, a := range []core.Action{core.ActionSlot1, core.ActionSlot2, core.ActionSlot3} {
		if idx, _ := a.SlotIndex(); in.Has(a) && idx < len(blocks) {
			g.selected = idx
		}
	}
	if in.Has(core.ActionNext) && len(blocks) > 0 {
		g.selected = core.Wrap(g.selected+1, len(blocks))
	}

	switch {
	case in.Has(core.ActionLeft):
		g.cursorX--
	case in.Has(core.ActionRight):
		g.cursorX++
	}
	switch {
	case in.Has(core.ActionUp):
		g.cursorY--
	case in.Has(core.ActionDown):
		g.cursorY++
	}
	g.clampCursor()

	if in.Has(core.ActionConfirm) {
		g.place()
	}
}

// place drops the selected block at the cursor.
func (g *Game) place() {
	if !g.round.Place(g.selected, g.cursorX, g.cursorY) {
		g.setFlash("Doesn't fit", core.ColorRed, flashReject)
		return
	}

	if p, ok := g.round.LastPlacement(); ok && p.Lines.Count() > 0 {
		text := fmt.Sprintf("+%d", p.Gain)
		if p.Combo > 1 {
			text = fmt.Sprintf("COMBO x%d  +%d", p.Combo, p.Gain)
		}
		g.setFlash(text, core.ColorGold, flashClear)
	}

	g.selected = core.Clamp(g.selected, 0, max(len(g.round.AvailableBlocks())-1, 0))
	g.clampCursor()
}

// clampCursor keeps the selected block fully on the grid.
func (g *Game) clampCursor() {
	n := g.rules.GridSize
	rows, cols := 1, 1
	if b, ok := g.selectedBlock(); ok {
		rows, cols = b.Shape.Rows(), b.Shape.Cols()
	}
	g.cursorX = core.Clamp(g.cursorX, 0, n-cols)
	g.cursorY = core.Clamp(g.cursorY, 0, n-rows)
}

func (g *Game) selectedBlock() (engine.Block, bool) {
	blocks := g.round.AvailableBlocks()
	if g.selected < 0 || g.selected >= len(blocks) {
		return engine.Block{}, false
	}
	return blocks[g.selected], true
}

func (g *Game) setFlash(text string, color core.Color, seconds float64) {
	g.flash = flash{text: text, color: color, ticks: int(seconds * float64(g.tickRate))}
}

// phaseColor maps a phase to its HUD color: white, gold, then red.
func (g *Game) phaseColor(p engine.Phase) core.Color {
	for i, q := range g.rules.Phases {
		if q.Number != p.Number {
			continue
		}
		switch {
		case i == 0:
			return core.ColorWhite
		case i == len(g.rules.Phases)-1:
			return core.ColorRed
		default:
			return core.ColorGold
		}
	}
	return core.ColorWhite
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.round.Score(),
		HighScore: g.round.HighScore(),
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}

// RoundSummary reports the finished (or current) round.
func (g *Game) RoundSummary() core.RoundSummary {
	stats := g.round.Stats()
	return core.RoundSummary{
		Score:      g.round.Score(),
		Lines:      stats.LinesCleared,
		BestCombo:  stats.BestCombo,
		Placements: stats.Placements,
		Seconds:    g.rules.RoundTime - g.round.TimeRemaining(),
	}
}

// ConfigError returns the error that forced a fallback to the default
// rules on the last Reset, if any.
func (g *Game) ConfigError() error {
	return g.configErr
}
