// Package flappy implements a side-scrolling flappy-bird stage.
// The player taps to start a run and to flap; the run ends on any collision
// with the ground or an obstacle, and scoring comes from invisible gap
// sentinels placed in each obstacle corridor.
package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game adapts a Stage to the host tick loop.
type Game struct {
	cfg    config.FlappyConfig
	opts   []Option
	stage  *Stage
	rc     core.RuntimeConfig
	dt     time.Duration
	paused bool
}

// New creates a flappy game. Options are applied to every stage it builds.
func New(cfg config.FlappyConfig, opts ...Option) *Game {
	return &Game{cfg: cfg, opts: opts}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy"
}

// Reset builds a fresh stage for the given runtime.
func (g *Game) Reset(rc core.RuntimeConfig) {
	rc = rc.Normalize()
	g.rc = rc
	g.dt = rc.TickInterval()
	g.paused = false

	opts := append([]Option{WithSeed(rc.Seed)}, g.opts...)
	g.stage = NewStage(g.cfg, opts...)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	ended := g.stage.State().Ended
	if in.Has(core.ActionActivate) {
		g.stage.Activate()
	}
	g.stage.Update(g.dt)

	return core.StepResult{
		State:    g.State(),
		RunEnded: g.stage.State().Ended > ended,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.stage.State()
	return core.GameState{
		Score:     g.stage.Score(),
		HighScore: g.stage.HighScore(),
		Phase:     st.Run.String(),
		GameOver:  st.Run == Ended,
		Paused:    g.paused,
	}
}

// Stage returns the underlying stage.
func (g *Game) Stage() *Stage {
	return g.stage
}

// TickDuration returns the simulated length of one Step.
func (g *Game) TickDuration() time.Duration {
	return g.dt
}
