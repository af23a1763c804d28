package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/desktop"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

func playTerminal(game *flappy.Game, rc core.RuntimeConfig, st *stores, logger *log.Logger) error {
	opts := []tui.ModelOption{tui.WithLogger(logger)}
	if st.history != nil {
		opts = append(opts, tui.WithRecorder(st.history))
	}
	return tui.Run(game, rc, opts...)
}

func playWindow(game *flappy.Game, rc core.RuntimeConfig, st *stores, logger *log.Logger) error {
	opts := []desktop.Option{desktop.WithLogger(logger)}
	if st.history != nil {
		opts = append(opts, desktop.WithRecorder(st.history))
	}
	return desktop.Run(desktop.New(game, rc, opts...))
}
