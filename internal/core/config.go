package core

import "time"

// Runtime defaults applied by Normalize.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 60
)

// RuntimeConfig is what a host tells the game about its surroundings.
type RuntimeConfig struct {
	ScreenW  int   // columns (or logical pixels) available to Render
	ScreenH  int   // rows available to Render
	TickRate int   // Step calls per second
	Seed     int64 // obstacle RNG seed; 0 asks the host for a time-based one
}

// Normalize fills unset or invalid fields with defaults. Seed is left to
// the host.
func (rc RuntimeConfig) Normalize() RuntimeConfig {
	if rc.ScreenW <= 0 {
		rc.ScreenW = DefaultScreenW
	}
	if rc.ScreenH <= 0 {
		rc.ScreenH = DefaultScreenH
	}
	if rc.TickRate <= 0 {
		rc.TickRate = DefaultTickRate
	}
	return rc
}

// TickInterval is the simulated duration of one Step.
func (rc RuntimeConfig) TickInterval() time.Duration {
	rate := rc.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the host-facing summary of a game.
type GameState struct {
	Score     int
	HighScore int
	Phase     string // run phase name: Idle, Running or Ended
	GameOver  bool
	Paused    bool
}

// StepResult is returned by every Step.
type StepResult struct {
	State GameState
	// RunEnded is set on the tick a run ends, so hosts can record it once.
	RunEnded bool
}
