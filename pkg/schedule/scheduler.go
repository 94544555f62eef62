package schedule

import (
	"sync"
	"time"

	"github.com/go-aria/aria/pkg/errors"
)

// FrameInterval approximates one frame at 60Hz. It is the default delay for
// schedulers that stand in for an animation-frame callback.
const FrameInterval = 16 * time.Millisecond

// Scheduler runs a task once after a delay.
//
// Schedule while a run is pending cancels the pending run and starts the
// delay over, so at most one run is ever outstanding. This mirrors
// animation-frame scheduling: repeated requests within one frame coalesce
// into a single callback.
//
// The task runs on the timer's goroutine unless a dispatcher is set, in
// which case the task is handed to the dispatcher (for hosts that must
// marshal work onto their UI loop).
type Scheduler struct {
	clock    Clock
	delay    time.Duration
	task     func()
	dispatch func(func())

	mu    sync.Mutex
	timer Timer
}

// NewScheduler creates a scheduler that runs task once per Schedule call
// after the given delay. A nil clock falls back to the system clock.
func NewScheduler(clock Clock, delay time.Duration, task func()) *Scheduler {
	if clock == nil {
		clock = System()
	}
	return &Scheduler{clock: clock, delay: delay, task: task}
}

// NewFrameScheduler creates a scheduler with a one-frame delay.
func NewFrameScheduler(clock Clock, task func()) *Scheduler {
	return NewScheduler(clock, FrameInterval, task)
}

// SetDispatcher routes task execution through fn. Pass nil to run tasks
// directly on the timer's goroutine.
func (s *Scheduler) SetDispatcher(fn func(func())) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatch = fn
}

// Schedule arms the scheduler. A pending run is cancelled and replaced,
// never duplicated.
func (s *Scheduler) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = s.clock.AfterFunc(s.delay, s.fire)
}

// Cancel discards any pending run.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Pending reports whether a run is outstanding.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

func (s *Scheduler) fire() {
	s.mu.Lock()
	s.timer = nil
	task := s.task
	dispatch := s.dispatch
	s.mu.Unlock()

	if task == nil {
		return
	}
	// Tasks run on the timer's goroutine, where an escaping panic would
	// take the process down. Contain and report instead.
	run := func() {
		defer errors.Recover("schedule.run")
		task()
	}
	if dispatch != nil {
		dispatch(run)
		return
	}
	run()
}
