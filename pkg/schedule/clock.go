// Package schedule provides the timing primitives used by the store layer:
// a Clock abstraction over wall time and a single-shot Scheduler with
// cancel-and-reschedule semantics.
//
// Stores never talk to the time package directly. They receive a Clock (or a
// fully built Scheduler) at construction, which keeps frame-debounced
// reconciliation and tooltip timers decoupled from any rendering runtime and
// lets tests drive time deterministically.
package schedule

import "time"

// Clock abstracts wall-clock time and timer creation.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// AfterFunc schedules fn to run after d and returns the timer.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a cancellable pending callback.
type Timer interface {
	// Stop cancels the timer. It reports whether the call stopped the
	// timer before it fired.
	Stop() bool
}

// System returns a Clock backed by the time package.
func System() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return systemTimer{time.AfterFunc(d, fn)}
}

type systemTimer struct {
	t *time.Timer
}

func (t systemTimer) Stop() bool {
	return t.t.Stop()
}
