package timing

import "time"

// Timer tracks the duration between invocations to Start and Stop.
type Timer struct {
	clock   Clock
	start   time.Time
	end     time.Time
	stopped bool
}

func NewTimer(clock Clock) *Timer {
	return &Timer{clock: clock}
}

// Start (re)starts the timer and returns the start reading.
func (t *Timer) Start() time.Time {
	t.start = t.clock.Now()
	t.end = time.Time{}
	t.stopped = false

	return t.start
}

// Stop records the end reading. Only the first call after Start has an effect.
func (t *Timer) Stop() time.Time {
	if !t.stopped {
		t.end = t.clock.Now()
		t.stopped = true
	}

	return t.end
}

// Elapsed returns the time between Start and Stop, or false if the timer hasn't been stopped.
// A clock that went backwards yields zero rather than a negative duration.
func (t *Timer) Elapsed() (time.Duration, bool) {
	if !t.stopped {
		return 0, false
	}

	if elapsed := t.end.Sub(t.start); elapsed > 0 {
		return elapsed, true
	}

	return 0, true
}
