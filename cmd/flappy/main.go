// flappy is a side-scrolling flappy-bird game for the terminal.
//
// Usage:
//
//	flappy play              - Play in the terminal (or a window with --window)
//	flappy serve             - Start SSH server for remote play
//	flappy scores            - Show recorded runs
//	flappy reset             - Clear the high score and run history
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible obstacles
//	--db <path>        - Set database path (default: ~/.flappy/scores.db)
//	--store <backend>  - High score backend: sqlite, gdata, memory
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// appName names the gdata save directory.
const appName = "tui-flappy"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagStore   string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - tap to fly through the pipes",
	Long: `Flappy is a side-scrolling arcade game for your terminal.

Tap to start, tap to flap, and fly through the gaps between the pipes.
Touching a pipe or the ground ends the run.

Available commands:
  play     - Play in the terminal or a desktop window
  serve    - Start SSH server for remote play
  scores   - View recorded runs
  reset    - Clear the high score and run history

Examples:
  flappy play
  flappy play --window
  flappy serve --ssh :2222
  flappy scores --table`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storage.BackendSQLite, "High score backend: sqlite, gdata, memory")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug events")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
}

// exitOnError reports err and exits. Commands call it only after their own
// deferred cleanup has run.
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger. Without --log-file it writes to
// fallback. The returned closer is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func()) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}

// stores holds the opened persistence backends.
type stores struct {
	high    storage.HighScores // nil when unavailable
	history *storage.Store     // nil when unavailable
	closers []io.Closer
}

// openStores opens the high score backend and the run history. Failures
// are logged and leave the corresponding field nil; the game still runs.
func openStores(logger *log.Logger) *stores {
	s := &stores{}

	if flagStore != storage.BackendMemory {
		history, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open scores database", "err", err)
		} else {
			s.history = history
			s.closers = append(s.closers, history)
		}
	}

	if flagStore == "" || flagStore == storage.BackendSQLite {
		if s.history != nil {
			s.high = s.history
		}
		return s
	}

	high, closer, err := storage.OpenHighScores(flagStore, flagDBPath, appName)
	if err != nil {
		logger.Warn("could not open high score store", "store", flagStore, "err", err)
		return s
	}
	s.high = high
	s.closers = append(s.closers, closer)
	return s
}

func (s *stores) Close() {
	for _, c := range s.closers {
		//nolint:errcheck // Best-effort close on exit
		c.Close()
	}
}
