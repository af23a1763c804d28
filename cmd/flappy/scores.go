package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagTable bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the top 10 recorded runs and the current high score.

Examples:
  flappy scores
  flappy scores --table
  flappy scores --store gdata`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagTable, "table", false, "Browse the history in an interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	exitOnError(scores())
}

func scores() error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagTable {
		w, h := 80, 24
		if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			w, h = tw, th
		}
		return tui.RunScoreboard(store, w, h)
	}

	top, err := store.TopScores(10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Flappy")
	fmt.Println()

	if len(top) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range top {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if best, ok := bestScore(store); ok {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

// bestScore reads the high score from the selected backend. The sqlite
// history store doubles as the default backend.
func bestScore(history *storage.Store) (int, bool) {
	var high storage.HighScores = history
	if flagStore != "" && flagStore != storage.BackendSQLite {
		hs, closer, err := storage.OpenHighScores(flagStore, flagDBPath, appName)
		if err != nil {
			return 0, false
		}
		defer closer.Close()
		high = hs
	}

	best, err := high.HighScore()
	if err != nil {
		return 0, false
	}
	return best, true
}
