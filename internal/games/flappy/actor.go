package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// flapFrames is the number of frames in the wing animation.
const flapFrames = 3

// Actor is the player-controlled body. Its x never changes; the world
// scrolls around it.
type Actor struct {
	body    *physics.Body
	impulse float64
	effects Effects

	// Alpha is the actor's visibility, driven by the stage fade-in.
	Alpha float64

	animating bool
	animClock time.Duration
	flapFPS   float64
	impulses  int
}

func newActor(world *physics.World, cfg config.FlappyConfig, effects Effects) *Actor {
	box := core.NewBox(
		cfg.Actor.X-cfg.Actor.Width/2,
		cfg.Field.Height/2-cfg.Actor.Height/2,
		cfg.Actor.Width,
		cfg.Actor.Height,
	)
	return &Actor{
		body:    world.AddBody(physics.NewBody(box)),
		impulse: cfg.Physics.Impulse,
		effects: effects,
		flapFPS: cfg.Actor.FlapFPS,
	}
}

// ApplyImpulse sets the vertical velocity to the upward impulse and plays
// the wing sound.
func (a *Actor) ApplyImpulse() {
	a.body.Vel.Y = a.impulse
	a.impulses++
	a.effects.PlaySound(SoundWing)
}

// SetGravityEnabled toggles whether world gravity affects the actor.
func (a *Actor) SetGravityEnabled(enabled bool) {
	a.body.Gravity = enabled
}

// GravityEnabled reports whether gravity affects the actor.
func (a *Actor) GravityEnabled() bool {
	return a.body.Gravity
}

// ResetVelocity holds the actor still.
func (a *Actor) ResetVelocity() {
	a.body.Vel = core.Vec{}
}

// StopAnimation freezes the wing animation.
func (a *Actor) StopAnimation() {
	a.animating = false
	a.effects.StopAnimation()
}

// PlayFlapAnimation loops the wing animation until stopped.
func (a *Actor) PlayFlapAnimation() {
	a.animating = true
	a.animClock = 0
	a.effects.PlayAnimation(AnimFlap, true)
}

// Animating reports whether the wing animation is playing.
func (a *Actor) Animating() bool {
	return a.animating
}

// Frame returns the current wing animation frame.
func (a *Actor) Frame() int {
	if a.flapFPS <= 0 {
		return 0
	}
	return int(a.animClock.Seconds()*a.flapFPS) % flapFrames
}

// Velocity returns the vertical velocity.
func (a *Actor) Velocity() float64 {
	return a.body.Vel.Y
}

// Box returns the actor's hitbox.
func (a *Actor) Box() core.Box {
	return a.body.Box
}

// Impulses returns how many impulses have been applied since creation.
func (a *Actor) Impulses() int {
	return a.impulses
}

func (a *Actor) setCenterY(y float64) {
	a.body.Box.Y = y - a.body.Box.H/2
}

func (a *Actor) advance(dt time.Duration) {
	if a.animating {
		a.animClock += dt
	}
}
