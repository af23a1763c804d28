package timeline

import "time"

// Timer is a cancellable scheduled callback.
type Timer struct {
	delay   time.Duration
	loop    bool
	paused  bool
	done    bool
	elapsed time.Duration
	fired   int
	fn      func()
}

// Pause stops the timer from accumulating time. Idempotent.
func (t *Timer) Pause() {
	t.paused = true
}

// Resume lets the timer accumulate time again. Idempotent.
func (t *Timer) Resume() {
	t.paused = false
}

// Paused reports whether the timer is paused.
func (t *Timer) Paused() bool {
	return t.paused
}

// Cancel permanently disarms the timer.
func (t *Timer) Cancel() {
	t.done = true
}

// Done reports whether the timer was cancelled or, for one-shot timers, has fired.
func (t *Timer) Done() bool {
	return t.done
}

// Fired returns how many times the callback has run.
func (t *Timer) Fired() int {
	return t.fired
}

func (t *Timer) advance(dt time.Duration) {
	if t.done || t.paused {
		return
	}
	if t.delay <= 0 {
		t.fire()
		return
	}

	t.elapsed += dt
	for t.elapsed >= t.delay && !t.done && !t.paused {
		t.elapsed -= t.delay
		t.fire()
	}
}

func (t *Timer) fire() {
	t.fired++
	if !t.loop {
		t.done = true
	}
	t.fn()
}
