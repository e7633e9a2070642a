package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridcraft/internal/core"
	"github.com/vovakirdan/gridcraft/internal/registry"
	"github.com/vovakirdan/gridcraft/internal/storage"
)

// GameModel is the Bubble Tea model that drives one game: it maps keys to
// actions, runs the tick loop and records finished rounds.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	loop       uint64
	quitOnBack bool // Standalone play exits instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current round has been recorded
	lastRound  string
}

// NewGameModel creates a model for the given game. A nil store plays
// without persistence; a nil logger discards persistence warnings.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if aware, ok := game.(core.HighScoreAware); ok && store != nil {
		aware.AttachHighScores(&loggedHighScores{
			slot:   store.HighScoreSlot(game.ID()),
			logger: logger,
		})
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		loop:       newLoopID(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is set on the first tick (value receiver)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu only from the game-over or pause screens
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(core.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRound()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveRound records the finished round. Failures are logged and play
// continues.
func (m *GameModel) saveRound() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	summary := core.RoundSummary{Score: m.gameState.Score}
	var (
		id  string
		err error
	)
	if r, ok := m.game.(core.RoundReporter); ok {
		summary = r.RoundSummary()
		id, err = m.store.SaveRound(m.game.ID(), summary)
	} else {
		id, err = m.store.SaveScore(m.game.ID(), summary.Score)
	}
	if err != nil {
		m.logger.Warn("could not save round", "game", m.game.ID(), "err", err)
		return
	}
	m.lastRound = id
	m.logger.Info("round saved",
		"game", m.game.ID(),
		"round", id,
		"score", summary.Score,
		"lines", summary.Lines,
		"best_combo", summary.BestCombo,
	)
}

// saveScreenshot writes the current screen as plain text under
// ~/.gridcraft/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".gridcraft", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// LastRoundID returns the ID of the most recently recorded round.
func (m GameModel) LastRoundID() string {
	return m.lastRound
}

// RunResult describes how a game session ended.
type RunResult struct {
	BackToMenu bool   // The user backed out of a finished round
	RoundID    string // Last round recorded in the session, if any
}

// Run plays a single game in the current terminal. It returns when the user
// quits or backs out of a finished round.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (RunResult, error) {
	model := NewGameModel(game, store, cfg, logger)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}
	if gm, ok := final.(GameModel); ok {
		return RunResult{BackToMenu: gm.BackToMenu(), RoundID: gm.LastRoundID()}, nil
	}
	return RunResult{}, nil
}

// loggedHighScores reports high-score store failures before handing them
// back to the game.
type loggedHighScores struct {
	slot   *storage.HighScoreSlot
	logger *log.Logger
}

func (h *loggedHighScores) LoadHighScore() (int, error) {
	v, err := h.slot.LoadHighScore()
	if err != nil {
		h.logger.Warn("could not load high score", "key", h.slot.Key(), "err", err)
	}
	return v, err
}

func (h *loggedHighScores) SaveHighScore(score int) error {
	err := h.slot.SaveHighScore(score)
	if err != nil {
		h.logger.Warn("could not save high score", "key", h.slot.Key(), "score", score, "err", err)
	}
	return err
}
