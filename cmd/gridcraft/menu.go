package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridcraft/internal/core"
	"github.com/vovakirdan/gridcraft/internal/games/gridcraft"
	"github.com/vovakirdan/gridcraft/internal/platform/tui"
	"github.com/vovakirdan/gridcraft/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and difficulty interactively",
	Long: `Start GridCraft in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select, Tab for the scoreboard.
After a round, press B to return to the menu.

Examples:
  gridcraft menu
  gridcraft menu --fps 60
  gridcraft menu --db ./scores.db`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{tuiAnnotation: "true"},
	RunE:        runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	gridcraft.SetConfigPath(flagConfig)
	for _, id := range registry.IDs() {
		if err := gridcraft.CheckConfig(id); err != nil {
			return err
		}
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "err", err)
			continue
		}

		preset, quit, err := tui.RunDifficultySelector(game.Title(), cfg)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if preset == nil {
			continue
		}

		if d, ok := game.(core.DifficultyAware); ok {
			if err := d.SetDifficulty(string(*preset)); err != nil {
				logger.Warn("ignoring difficulty", "preset", *preset, "err", err)
			}
		}
		// Fresh seed for each round unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("starting round", "game", game.ID(), "difficulty", *preset)
		result, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			return err
		}
		if !result.BackToMenu {
			printRoundHint(cmd.OutOrStdout(), game.ID(), result.RoundID)
			return nil
		}
	}
}
