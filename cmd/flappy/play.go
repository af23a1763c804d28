package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	flagConfig string
	flagWindow bool
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play flappy",
	Long: `Start a game.

Controls:
  Space/Up/Click - Start / flap
  P              - Pause
  Ctrl+S         - Save a screenshot (terminal only)
  ?              - Toggle help
  Q/Esc/Ctrl+C   - Quit

Examples:
  flappy play
  flappy play --window
  flappy play --seed 42 --mute
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound effect volume (0-1)")
}

func runPlay(_ *cobra.Command, _ []string) {
	exitOnError(play())
}

func play() error {
	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	st := openStores(logger)
	defer st.Close()

	sounder, err := audio.Open(flagMute, flagVolume)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
	}
	defer sounder.Close()

	opts := []flappy.Option{
		flappy.WithEffects(audio.NewStageEffects(sounder, logger)),
		flappy.WithLogger(logger),
	}
	if st.high != nil {
		opts = append(opts, flappy.WithHighScores(st.high))
	}
	game := flappy.New(cfg, opts...)

	rc := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	if flagWindow {
		err = playWindow(game, rc, st, logger)
	} else {
		err = playTerminal(game, rc, st, logger)
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
