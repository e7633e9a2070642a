package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridcraft/internal/config"
	"github.com/vovakirdan/gridcraft/internal/games/gridcraft"
	"github.com/vovakirdan/gridcraft/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config [id]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a variant would run with, as YAML.

The output reflects the search order (--config, ~/.gridcraft/configs,
./configs, built-in default) and the selected difficulty preset, and is
validated like 'play' does. Redirect it to a file to start a custom config.

Examples:
  gridcraft config
  gridcraft config gridcraft_mini --difficulty hard
  gridcraft config > ~/.gridcraft/configs/gridcraft.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	addConfigFlags(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := gridcraft.IDStandard
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'gridcraft list' to see them)", gameID)
	}
	if err := applyConfigFlags(); err != nil {
		return err
	}

	_, cfg, err := gridcraft.LoadRules(gameID)
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// validatePreset rejects unknown --difficulty values up front.
func validatePreset(name string) error {
	_, err := config.ParsePreset(name)
	return err
}
