package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var flagKeepHistory bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the high score and run history",
	Long: `Reset the high score on the selected backend to 0 and delete
recorded runs.

Examples:
  flappy reset
  flappy reset --keep-history
  flappy reset --store gdata`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagKeepHistory, "keep-history", false, "Only reset the high score")
}

func runReset(_ *cobra.Command, _ []string) {
	exitOnError(reset())
}

func reset() error {
	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	st := openStores(logger)
	defer st.Close()

	if st.high == nil {
		return fmt.Errorf("high score store %q is unavailable", flagStore)
	}
	if err := st.high.ResetHighScore(); err != nil {
		return fmt.Errorf("resetting high score: %w", err)
	}
	fmt.Println("High score reset.")

	if flagKeepHistory || st.history == nil {
		return nil
	}
	if err := st.history.ClearScores(); err != nil {
		return fmt.Errorf("clearing run history: %w", err)
	}
	fmt.Println("Run history cleared.")
	return nil
}
