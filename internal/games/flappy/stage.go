package flappy

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/physics"
	"github.com/vovakirdan/tui-flappy/internal/timeline"
)

// RunState is the lifecycle phase of the stage.
type RunState int

const (
	Idle    RunState = iota // Waiting for the first input, nothing moves
	Running                 // Simulation advancing, scoring active
	Ended                   // Game-over transition playing, input locked
)

// String returns a lowercase name for the state.
func (r RunState) String() string {
	switch r {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("RunState(%d)", int(r))
	}
}

// ErrIllegalTransition is returned for any edge outside idle->running->ended->idle.
var ErrIllegalTransition = errors.New("flappy: illegal run state transition")

var transitions = map[RunState]RunState{
	Idle:    Running,
	Running: Ended,
	Ended:   Idle,
}

func canTransition(from, to RunState) bool {
	next, ok := transitions[from]
	return ok && next == to
}

// StageState is the mutable session state owned by a Stage.
type StageState struct {
	Run            RunState
	ControlEnabled bool
	Runs           int // Runs started
	Ended          int // Runs ended
}

// Observer is notified after every run state change.
type Observer func(from, to RunState)

// Option configures a Stage.
type Option func(*Stage)

// WithEffects routes presentation notifications to e.
func WithEffects(e Effects) Option {
	return func(s *Stage) { s.effects = e }
}

// WithHighScores sets the persistence port for the high score.
func WithHighScores(store HighScoreStore) Option {
	return func(s *Stage) { s.store = store }
}

// WithLogger sets the stage logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Stage) { s.logger = l }
}

// WithSeed seeds obstacle heights.
func WithSeed(seed int64) Option {
	return func(s *Stage) { s.seed = seed }
}

// WithObserver registers a run state observer.
func WithObserver(fn Observer) Option {
	return func(s *Stage) { s.observers = append(s.observers, fn) }
}

// Stage orchestrates a flappy session: it gates input, sequences the
// idle->running->ended->idle lifecycle and coordinates its collaborators.
// All methods must be called from the single tick goroutine.
type Stage struct {
	cfg   config.FlappyConfig
	state StageState

	world    *physics.World
	timeline *timeline.Timeline
	actor    *Actor
	spawner  *Spawner
	ground   *Ground
	resolver *Resolver
	score    *ScoreTracker

	effects   Effects
	store     HighScoreStore
	logger    *log.Logger
	seed      int64
	observers []Observer

	messageAlpha float64
	bannerAlpha  float64
	readoutAlpha float64

	messageFadeOut *timeline.Tween
	stageFadeIn    *timeline.Tween
	gameOver       *timeline.Tween
	pendingReset   *timeline.Future
}

// NewStage builds a stage in the Idle state.
func NewStage(cfg config.FlappyConfig, opts ...Option) *Stage {
	s := &Stage{
		cfg:     cfg,
		effects: NopEffects{},
		logger:  log.New(io.Discard),
		seed:    1,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.world = physics.NewWorld(cfg.Physics.Gravity)
	s.timeline = timeline.New()
	s.ground = newGround(s.world, cfg)
	s.actor = newActor(s.world, cfg, s.effects)
	s.spawner = newSpawner(s.world, s.timeline, cfg, s.seed)
	s.resolver = newResolver(s.world, s.actor, s.ground, s.spawner, s)
	s.score = newScoreTracker(s.store, s.effects, s.logger)

	t := cfg.Transitions
	s.messageFadeOut = s.timeline.AddTween(timeline.TweenSpec{
		Targets:  []*float64{&s.messageAlpha},
		To:       0,
		Duration: t.MessageFadeOut,
		Ease:     timeline.Power1,
	})
	s.stageFadeIn = s.timeline.AddTween(timeline.TweenSpec{
		Targets:  []*float64{&s.actor.Alpha, &s.messageAlpha},
		To:       1,
		Duration: t.StageFadeIn,
		Ease:     timeline.Power1,
	})
	s.gameOver = s.timeline.AddTween(timeline.TweenSpec{
		Targets:  []*float64{&s.bannerAlpha, &s.readoutAlpha},
		To:       1,
		Duration: t.GameOverFade,
		Hold:     t.GameOverHold,
		Yoyo:     true,
		Ease:     timeline.Power1,
	})

	s.state = StageState{Run: Idle}
	s.prepareIdle()
	return s
}

// Activate handles the single edge-triggered input event: it starts a run
// from Idle and flaps while Running. Input while control is locked is dropped.
func (s *Stage) Activate() {
	if !s.state.ControlEnabled {
		s.logger.Debug("input dropped", "state", s.state.Run)
		return
	}
	if s.state.Run != Running {
		s.startRun()
		return
	}
	s.actor.ApplyImpulse()
}

// Update advances the stage by one tick of length dt.
func (s *Stage) Update(dt time.Duration) {
	s.timeline.Advance(dt)
	s.world.Step(dt.Seconds())
	s.ground.wrap()
	s.actor.advance(dt)

	if s.pendingReset != nil && s.pendingReset.Done() {
		s.resetStage()
	}
}

func (s *Stage) startRun() {
	if !canTransition(s.state.Run, Running) {
		s.reject(Running)
		return
	}
	s.score.Reset()
	s.enter(Running)
	s.state.Runs++

	// A late tap can land while the stage is still fading in.
	s.stageFadeIn.Stop()
	s.actor.Alpha = 1
	s.messageFadeOut.Play()

	s.spawner.Resume()
	s.actor.ApplyImpulse()
	s.actor.SetGravityEnabled(true)

	s.logger.Info("run started", "run", s.state.Runs)
}

// EndRun ends the current run. Calls outside Running, including a second
// collision in the same tick, are no-ops. Gravity stays on through Ended so
// the death bounce arcs and falls; prepareIdle turns it off.
func (s *Stage) EndRun() {
	if s.state.Run != Running {
		return
	}
	if err := s.transition(Ended); err != nil {
		return
	}
	s.state.ControlEnabled = false
	s.state.Ended++

	s.effects.PlaySound(SoundHit)
	s.actor.StopAnimation()
	s.actor.ApplyImpulse()
	s.resolver.Deactivate()

	if s.score.CommitIfHighScore() {
		s.logger.Info("new high score", "score", s.score.HighScore())
	}

	t := s.cfg.Transitions
	s.effects.ShowBanner(FadeSpec{In: t.GameOverFade, Hold: t.GameOverHold, Out: t.GameOverFade})
	s.pendingReset = s.gameOver.Play()

	s.spawner.Pause()
	s.ground.Freeze()
	s.spawner.Freeze()

	s.logger.Info("run ended", "score", s.score.Score(), "high", s.score.HighScore())
}

func (s *Stage) resetStage() {
	if err := s.transition(Idle); err != nil {
		return
	}
	s.prepareIdle()
}

func (s *Stage) prepareIdle() {
	s.pendingReset = nil

	s.actor.Alpha = 0
	s.actor.setCenterY(s.cfg.Field.Height / 2)
	s.actor.SetGravityEnabled(false)
	s.actor.ResetVelocity()
	s.actor.PlayFlapAnimation()

	s.messageAlpha = 0
	s.ground.Scroll()
	s.stageFadeIn.Play()

	s.state.ControlEnabled = true
	s.resolver.Activate()
	s.spawner.Clear()
}

func (s *Stage) scoreGap() {
	s.score.Increment()
	s.effects.PlaySound(SoundPoint)
}

func (s *Stage) transition(to RunState) error {
	if !canTransition(s.state.Run, to) {
		return s.reject(to)
	}
	s.enter(to)
	return nil
}

func (s *Stage) reject(to RunState) error {
	err := fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s.state.Run, to)
	s.logger.Error("rejected transition", "err", err)
	return err
}

func (s *Stage) enter(to RunState) {
	from := s.state.Run
	s.state.Run = to
	s.logger.Debug("run state", "from", from, "to", to)
	for _, fn := range s.observers {
		fn(from, to)
	}
}

// State returns a copy of the session state.
func (s *Stage) State() StageState {
	return s.state
}

// Score returns the current score.
func (s *Stage) Score() int {
	return s.score.Score()
}

// HighScore returns the in-memory high score.
func (s *Stage) HighScore() int {
	return s.score.HighScore()
}

// Actor returns the player-controlled actor.
func (s *Stage) Actor() *Actor {
	return s.actor
}

// Spawner returns the obstacle spawner.
func (s *Stage) Spawner() *Spawner {
	return s.spawner
}

// Ground returns the scrolling ground.
func (s *Stage) Ground() *Ground {
	return s.ground
}

// Config returns the stage configuration.
func (s *Stage) Config() config.FlappyConfig {
	return s.cfg
}

// MessageAlpha returns the visibility of the start message.
func (s *Stage) MessageAlpha() float64 {
	return s.messageAlpha
}

// BannerAlpha returns the visibility of the game-over banner.
func (s *Stage) BannerAlpha() float64 {
	return s.bannerAlpha
}

// ReadoutAlpha returns the visibility of the high-score readout.
func (s *Stage) ReadoutAlpha() float64 {
	return s.readoutAlpha
}
