package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridcraft/internal/core"
	"github.com/vovakirdan/gridcraft/internal/games/gridcraft"
	"github.com/vovakirdan/gridcraft/internal/platform/tui"
	"github.com/vovakirdan/gridcraft/internal/registry"
	"github.com/vovakirdan/gridcraft/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <id>",
	Short: "Play a variant",
	Long: `Start a round of the specified variant.

Controls:
  Arrows/HJKL/WASD - Move the cursor
  1/2/3, Tab       - Pick a block
  Enter/Space      - Place the block
  P                - Pause
  R                - Restart (after the round ends)
  B/Esc            - Leave (after the round ends or while paused)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy   - 120 second rounds
  normal - 90 second rounds
  hard   - 60 second rounds, starts in phase 2
  fixed  - No phases, x1.0 throughout

The configuration is validated before the round starts.

Examples:
  gridcraft play gridcraft
  gridcraft play gridcraft_mini --difficulty easy
  gridcraft play gridcraft --config ./my-grid.yaml`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{tuiAnnotation: "true"},
	RunE:        runPlay,
}

func init() {
	addConfigFlags(playCmd)
}

// addConfigFlags registers --config and --difficulty on cmd.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyConfigFlags hands --config and --difficulty to the game package.
func applyConfigFlags() error {
	if err := validatePreset(flagDifficulty); err != nil {
		return err
	}
	gridcraft.SetConfigPath(flagConfig)
	gridcraft.SetDifficultyPreset(flagDifficulty)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'gridcraft list' to see them)", gameID)
	}
	if err := applyConfigFlags(); err != nil {
		return err
	}
	// Fail before the TUI takes over the terminal
	if err := gridcraft.CheckConfig(gameID); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting round", "game", gameID, "difficulty", flagDifficulty, "seed", flagSeed)
	result, err := tui.Run(game, store, runtimeConfig(), logger)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	printRoundHint(cmd.OutOrStdout(), gameID, result.RoundID)
	return nil
}

// printRoundHint points at the last recorded round once the TUI has exited.
func printRoundHint(w io.Writer, gameID, roundID string) {
	if roundID == "" {
		return
	}
	fmt.Fprintf(w, "Round saved: %s\n", roundID)
	fmt.Fprintf(w, "Details: gridcraft scores %s --round %s\n", gameID, roundID)
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
