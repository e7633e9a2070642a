// gridcraft is a timed block-placement puzzle for the terminal.
//
// Usage:
//
//	gridcraft list              - List available variants
//	gridcraft play <id>         - Play a variant
//	gridcraft menu              - Pick a variant and difficulty interactively
//	gridcraft serve             - Start SSH server for remote play
//	gridcraft scores <id>       - Show the best rounds of a variant
//	gridcraft config [id]       - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible rounds
//	--db <path>         - Set database path (default: ~/.gridcraft/scores.db)
//	--log-level <level> - debug, info, warn or error
//
// Flags left unset fall back to GRIDCRAFT_DB, GRIDCRAFT_LOG_LEVEL and
// GRIDCRAFT_CONFIG, read from the environment or a .env file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridcraft/internal/core"
	// Import variants to register them
	_ "github.com/vovakirdan/gridcraft/internal/games/gridcraft"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridcraft",
	Short: "GridCraft - fill rows and columns before the clock runs out",
	Long: `GridCraft is a timed block-placement puzzle for the terminal.

Place blocks on the grid; every full row or column clears for points.
Consecutive clears build a combo, and the last thirty seconds score double.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive picker
  serve    - Start SSH server for remote play
  scores   - View the best rounds
  config   - Print the effective configuration

Examples:
  gridcraft play gridcraft
  gridcraft play gridcraft_mini --difficulty hard
  gridcraft menu
  gridcraft serve --ssh :2222
  gridcraft scores gridcraft`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridcraft/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup runs before every command: it applies .env defaults and installs
// the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := loadEnv(cmd); err != nil {
		return err
	}
	return setupLogger(cmd)
}
