package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridcraft/internal/registry"
	"github.com/vovakirdan/gridcraft/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
	flagScoresRound  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores <id>",
	Short: "Show the best rounds of a variant",
	Long: `Display the top rounds for the specified variant, with lines
cleared, best combo and the round ID.

Examples:
  gridcraft scores gridcraft
  gridcraft scores gridcraft_mini --limit 25
  gridcraft scores gridcraft --recent
  gridcraft scores gridcraft --round 3f6c2a1e-...
  gridcraft scores gridcraft --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent rounds instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history and high score of the variant")
	scoresCmd.Flags().StringVar(&flagScoresRound, "round", "", "Show a single round by its ID")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	out := cmd.OutOrStdout()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Fprintf(out, "Cleared scores for %s.\n", game.Title())
		return nil
	}

	if flagScoresRound != "" {
		return showRound(out, store, gameID, flagScoresRound)
	}

	var entries []storage.ScoreEntry
	heading := "Best rounds"
	if flagScoresRecent {
		heading = "Recent rounds"
		entries, err = store.RecentRounds(gameID, flagScoresLimit)
	} else {
		entries, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s - %s\n\n", heading, game.Title())

	if len(entries) == 0 {
		fmt.Fprintln(out, "No rounds recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'gridcraft play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %9s  %5s  %5s  %5s  %-16s  %s\n", "Rank", "Score", "Lines", "Combo", "Time", "When", "Round")
	fmt.Fprintf(out, "  %-4s  %9s  %5s  %5s  %5s  %-16s  %s\n", "----", "-----", "-----", "-----", "----", "----", "-----")
	for i, e := range entries {
		fmt.Fprintf(out, "  %-4d  %9s  %5d  %5s  %4.0fs  %-16s  %s\n",
			i+1,
			humanize.Comma(int64(e.Score)),
			e.Lines,
			fmt.Sprintf("x%d", e.BestCombo),
			e.Seconds,
			humanize.Time(e.CreatedAt),
			e.RoundID,
		)
	}

	high, err := store.HighScoreSlot(gameID).LoadHighScore()
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %s\n", humanize.Comma(int64(high)))
	}
	return nil
}

// showRound prints the details of one recorded round.
func showRound(out io.Writer, store *storage.Store, gameID, roundID string) error {
	e, err := store.RoundByID(roundID)
	if err != nil {
		return err
	}
	if e == nil || e.GameID != gameID {
		return fmt.Errorf("no round %q recorded for %s", roundID, gameID)
	}

	fmt.Fprintf(out, "Round %s\n\n", e.RoundID)
	fmt.Fprintf(out, "  Score       %s\n", humanize.Comma(int64(e.Score)))
	fmt.Fprintf(out, "  Lines       %d\n", e.Lines)
	fmt.Fprintf(out, "  Best combo  x%d\n", e.BestCombo)
	fmt.Fprintf(out, "  Placements  %d\n", e.Placements)
	fmt.Fprintf(out, "  Time        %.0fs\n", e.Seconds)
	fmt.Fprintf(out, "  Played      %s\n", humanize.Time(e.CreatedAt))
	return nil
}
