// Package testing provides test support for the aria store library.
//
// # Controlled Time
//
// FakeClock implements schedule.Clock with manually driven time, making
// frame-debounced reconciliation and tooltip timers deterministic:
//
//	clock := ariatest.NewFakeClock()
//	sched := schedule.NewFrameScheduler(clock, reconcile)
//	sched.Schedule()
//	clock.Advance(schedule.FrameInterval) // fires the pending run
//
// # Notification Recording
//
// Recorder accumulates values delivered to store listeners so tests can
// assert on batch counts and ordering:
//
//	rec := ariatest.NewRecorder[string]()
//	st.Subscribe(func(next, prev store.State) {
//	    rec.Record(store.Get[string](next, "value"))
//	}, "value")
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import ariatest "github.com/go-aria/aria/pkg/testing"
package testing
