package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridcraft/internal/core"
	"github.com/vovakirdan/gridcraft/internal/games/gridcraft"
	"github.com/vovakirdan/gridcraft/internal/storage"
)

// shortRound is a 4x4 board offering only full-width bars, with a one
// second clock and a single x1 phase.
const shortRound = `
grid_size: 4
round_time: 1
phases:
  - {number: 1, start: 1, end: 0, speed: 1, multiplier: 1.0}
blocks:
  - name: row4
    weight: 1
    pattern: ["####"]
`

func setupGame(t *testing.T) (*storage.Store, GameModel) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "gridcraft.yaml")
	if err := os.WriteFile(path, []byte(shortRound), 0o644); err != nil {
		t.Fatal(err)
	}
	gridcraft.SetConfigPath(path)
	t.Cleanup(func() { gridcraft.SetConfigPath("") })

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1}
	m := NewGameModel(gridcraft.New(), store, cfg, nil)
	m.Init()
	return store, m
}

func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected GameModel", next)
	}
	return gm, cmd
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	m, _ = send(t, m, TickMsg{loop: m.loop})
	return m
}

func TestGameModelRecordsRound(t *testing.T) {
	store, m := setupGame(t)

	m, _ = send(t, m, keyMsg("enter"))
	m = tick(t, m)
	if m.gameState.Score != 100 {
		t.Fatalf("Score = %d after clearing a row, expected 100", m.gameState.Score)
	}

	for range 20 {
		if m.gameState.GameOver {
			break
		}
		m = tick(t, m)
	}
	if !m.gameState.GameOver {
		t.Fatal("round should end when the clock runs out")
	}

	scores, err := store.TopScores("gridcraft", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 recorded round, got %d", len(scores))
	}
	got := scores[0]
	if got.Score != 100 || got.Lines != 1 || got.BestCombo != 1 || got.Placements != 1 {
		t.Errorf("recorded round = %+v", got)
	}
	if got.RoundID != m.LastRoundID() {
		t.Errorf("RoundID = %q, expected %q", got.RoundID, m.LastRoundID())
	}

	high, err := store.HighScoreSlot("gridcraft").LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if high != 100 {
		t.Errorf("stored high score = %d, expected 100", high)
	}

	// Further ticks do not record the round again
	m = tick(t, m)
	m = tick(t, m)
	scores, _ = store.TopScores("gridcraft", 10)
	if len(scores) != 1 {
		t.Errorf("Expected the round to be recorded once, got %d", len(scores))
	}
}

func TestGameModelRestartAndBack(t *testing.T) {
	_, m := setupGame(t)

	// Back is ignored while playing
	m, _ = send(t, m, keyMsg("b"))
	if m.BackToMenu() {
		t.Fatal("back should be ignored during play")
	}

	for range 20 {
		m = tick(t, m)
	}
	if !m.gameState.GameOver {
		t.Fatal("round should be over")
	}

	m, _ = send(t, m, keyMsg("r"))
	m = tick(t, m)
	if m.gameState.GameOver {
		t.Fatal("restart should start a new round")
	}

	for range 20 {
		m = tick(t, m)
	}
	m, cmd := send(t, m, keyMsg("b"))
	if !m.BackToMenu() {
		t.Error("back should leave a finished round")
	}
	if cmd != nil {
		t.Error("back inside a session should not quit the program")
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	_, m := setupGame(t)

	m, cmd := send(t, m, TickMsg{loop: m.loop + 1000})
	if cmd != nil {
		t.Error("a tick from another loop should not schedule a tick")
	}

	m, cmd = send(t, m, TickMsg{loop: m.loop})
	if cmd == nil {
		t.Error("a tick from the model's loop should schedule the next one")
	}
}

func TestGameModelQuit(t *testing.T) {
	_, m := setupGame(t)

	m, cmd := send(t, m, keyMsg("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestGameModelResizeKeepsRound(t *testing.T) {
	_, m := setupGame(t)

	m, _ = send(t, m, keyMsg("enter"))
	m = tick(t, m)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}

	m = tick(t, m)
	if m.gameState.Score != 100 {
		t.Errorf("Score = %d after resize, expected 100", m.gameState.Score)
	}
}

func TestSessionFlow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1}
	var s SessionModel = NewSessionModel(nil, cfg, nil)

	update := func(msg tea.Msg) tea.Cmd {
		t.Helper()
		next, cmd := s.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update() returned %T, expected SessionModel", next)
		}
		s = sm
		return cmd
	}

	update(keyMsg("tab"))
	if s.view != viewScoreboard {
		t.Fatalf("view = %v after tab, expected scoreboard", s.view)
	}
	update(keyMsg("b"))
	if s.view != viewMenu {
		t.Fatalf("view = %v after back, expected menu", s.view)
	}

	update(keyMsg("enter"))
	if s.view != viewDifficulty || s.gameID != "gridcraft" {
		t.Fatalf("view = %v, game = %q, expected difficulty for gridcraft", s.view, s.gameID)
	}
	update(keyMsg("esc"))
	if s.view != viewMenu {
		t.Fatalf("view = %v after esc, expected menu", s.view)
	}

	update(keyMsg("enter"))
	update(keyMsg("down")) // Easy
	if cmd := update(keyMsg("enter")); cmd == nil {
		t.Error("starting a game should schedule the first tick")
	}
	if s.view != viewGame {
		t.Fatalf("view = %v, expected game", s.view)
	}
	if s.View() == "" {
		t.Error("game view should not be empty")
	}

	update(keyMsg("q"))
	if !s.quitting {
		t.Error("q in game should end the session")
	}
}

// scoreOnlyGame ends on its first step with a fixed score and reports no
// round details.
type scoreOnlyGame struct {
	state core.GameState
}

func (g *scoreOnlyGame) ID() string               { return "score_only" }
func (g *scoreOnlyGame) Title() string            { return "Score Only" }
func (g *scoreOnlyGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *scoreOnlyGame) Render(*core.Screen)      {}
func (g *scoreOnlyGame) State() core.GameState    { return g.state }
func (g *scoreOnlyGame) Step(core.InputFrame) core.StepResult {
	g.state = core.GameState{Score: 250, GameOver: true}
	return core.StepResult{State: g.state}
}

func TestGameModelRecordsScoreOnlyRound(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1}
	m := NewGameModel(&scoreOnlyGame{}, store, cfg, nil)
	m.Init()
	m = tick(t, m)

	if m.LastRoundID() == "" {
		t.Fatal("round should be recorded")
	}
	got, err := store.RoundByID(m.LastRoundID())
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if got == nil || got.Score != 250 || got.GameID != "score_only" || got.Lines != 0 {
		t.Errorf("recorded round = %+v", got)
	}
}
