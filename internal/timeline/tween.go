package timeline

import "time"

// Ease maps linear progress in [0, 1] to eased progress.
type Ease func(p float64) float64

// Linear is the identity easing.
func Linear(p float64) float64 {
	return p
}

// Power1 is a quadratic ease-out.
func Power1(p float64) float64 {
	return 1 - (1-p)*(1-p)
}

// TweenSpec describes a tween of one or more float targets toward To.
// With Yoyo set, the tween holds at To for Hold and then returns to the
// values the targets had when Play was called.
type TweenSpec struct {
	Targets  []*float64
	To       float64
	Duration time.Duration
	Hold     time.Duration
	Yoyo     bool
	Ease     Ease
}

// Tween animates its targets while playing.
type Tween struct {
	spec    TweenSpec
	from    []float64
	elapsed time.Duration
	playing bool
	future  *Future
}

// Future is a completion handle for a single Play of a tween.
// It is polled, never called back: the owner decides when to act on it.
type Future struct {
	done      bool
	cancelled bool
}

// Done reports whether the tween ran to completion.
func (f *Future) Done() bool {
	return f.done
}

// Cancelled reports whether the play was superseded or stopped before completion.
func (f *Future) Cancelled() bool {
	return f.cancelled
}

// Play (re)starts the tween from the targets' current values and returns a
// fresh Future. A play already in progress is cancelled.
func (tw *Tween) Play() *Future {
	tw.cancel()

	tw.from = make([]float64, len(tw.spec.Targets))
	for i, target := range tw.spec.Targets {
		tw.from[i] = *target
	}
	tw.elapsed = 0
	tw.playing = true
	tw.future = &Future{}

	if tw.total() <= 0 {
		tw.finish()
	}
	return tw.future
}

// Stop halts the tween where it is and cancels its Future.
func (tw *Tween) Stop() {
	tw.cancel()
	tw.playing = false
}

// Playing reports whether the tween is running.
func (tw *Tween) Playing() bool {
	return tw.playing
}

func (tw *Tween) cancel() {
	if tw.future != nil && !tw.future.done {
		tw.future.cancelled = true
	}
}

func (tw *Tween) total() time.Duration {
	if tw.spec.Yoyo {
		return 2*tw.spec.Duration + tw.spec.Hold
	}
	return tw.spec.Duration
}

func (tw *Tween) advance(dt time.Duration) {
	tw.elapsed += dt
	if tw.elapsed >= tw.total() {
		tw.finish()
		return
	}

	d := tw.spec.Duration
	switch {
	case tw.elapsed < d:
		tw.apply(func(from float64) (float64, float64, float64) {
			return from, tw.spec.To, progress(tw.elapsed, d)
		})
	case tw.elapsed < d+tw.spec.Hold:
		tw.set(func(float64) float64 { return tw.spec.To })
	default:
		back := tw.elapsed - d - tw.spec.Hold
		tw.apply(func(from float64) (float64, float64, float64) {
			return tw.spec.To, from, progress(back, d)
		})
	}
}

func (tw *Tween) finish() {
	if tw.spec.Yoyo {
		tw.set(func(from float64) float64 { return from })
	} else {
		tw.set(func(float64) float64 { return tw.spec.To })
	}
	tw.playing = false
	tw.future.done = true
}

func (tw *Tween) apply(segment func(from float64) (start, end, p float64)) {
	tw.set(func(from float64) float64 {
		start, end, p := segment(from)
		return start + (end-start)*tw.spec.Ease(p)
	})
}

func (tw *Tween) set(value func(from float64) float64) {
	for i, target := range tw.spec.Targets {
		*target = value(tw.from[i])
	}
}

func progress(elapsed, d time.Duration) float64 {
	if d <= 0 {
		return 1
	}
	return float64(elapsed) / float64(d)
}
