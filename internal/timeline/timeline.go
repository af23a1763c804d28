// Package timeline schedules tick-driven callbacks and property tweens.
// Nothing here reads the wall clock: time only advances through Advance,
// so a host loop (or a test) fully controls when callbacks fire.
package timeline

import "time"

// Timeline owns timers and tweens and advances them together.
type Timeline struct {
	timers []*Timer
	tweens []*Tween
}

// New creates an empty timeline.
func New() *Timeline {
	return &Timeline{}
}

// AddTimer schedules fn to run after delay. A looping timer re-arms itself
// after each firing. A timer created paused accumulates no time until resumed.
func (tl *Timeline) AddTimer(delay time.Duration, loop, paused bool, fn func()) *Timer {
	t := &Timer{delay: delay, loop: loop, paused: paused, fn: fn}
	tl.timers = append(tl.timers, t)
	return t
}

// AddTween registers a tween in the stopped state; call Play to start it.
func (tl *Timeline) AddTween(spec TweenSpec) *Tween {
	if spec.Ease == nil {
		spec.Ease = Linear
	}
	tw := &Tween{spec: spec}
	tl.tweens = append(tl.tweens, tw)
	return tw
}

// Advance moves every unpaused timer and playing tween forward by dt.
// Timers run before tweens; callbacks run synchronously.
func (tl *Timeline) Advance(dt time.Duration) {
	current := tl.timers
	for _, t := range current {
		t.advance(dt)
	}

	// Callbacks may have appended timers; keep those along with the survivors.
	live := make([]*Timer, 0, len(tl.timers))
	for _, t := range tl.timers {
		if !t.done {
			live = append(live, t)
		}
	}
	tl.timers = live

	for _, tw := range tl.tweens {
		if tw.playing {
			tw.advance(dt)
		}
	}
}

// Timers returns the number of timers that have not finished or been cancelled.
func (tl *Timeline) Timers() int {
	return len(tl.timers)
}
