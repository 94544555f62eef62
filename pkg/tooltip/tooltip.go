// Package tooltip implements the tooltip store: a popover with timed
// show/hide transitions and a shared registry enforcing one visible
// timed tooltip at a time.
package tooltip

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-aria/aria/pkg/disclosure"
	"github.com/go-aria/aria/pkg/schedule"
	"github.com/go-aria/aria/pkg/store"
)

// DefaultTimeout is the delay before a tooltip shows when no other
// tooltip is active.
const DefaultTimeout = 500 * time.Millisecond

// Options configures a tooltip store.
type Options struct {
	// Popover configures the underlying popup. Placement defaults to
	// top for tooltips.
	Popover disclosure.PopoverOptions
	// Timeout is the show delay. Zero means DefaultTimeout; a negative
	// value shows immediately.
	Timeout time.Duration
	// HideTimeout is the hide delay. Zero hides immediately.
	HideTimeout time.Duration
	// Clock drives the show/hide timers. Nil uses the system clock.
	Clock schedule.Clock
	// Registry is the shared active-tooltip service. Nil gives the store
	// a private registry, which disables cross-tooltip coordination.
	Registry *Registry
}

// Store is the tooltip store.
type Store struct {
	*disclosure.Popover

	registry *Registry
	token    string

	timeout     time.Duration
	hideTimeout time.Duration
	showSched   *schedule.Scheduler
	hideSched   *schedule.Scheduler
}

// New creates a tooltip store. Each store carries a unique identity token
// for registry ownership.
func New(opts Options) *Store {
	popOpts := opts.Popover
	if popOpts.Placement == "" {
		popOpts.Placement = disclosure.PlacementTop
	}
	pop := disclosure.NewPopover(popOpts)

	registry := opts.Registry
	if registry == nil {
		registry = NewRegistry()
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if timeout < 0 {
		timeout = 0
	}

	s := &Store{
		Popover:     pop,
		registry:    registry,
		token:       uuid.NewString(),
		timeout:     timeout,
		hideTimeout: opts.HideTimeout,
	}
	s.showSched = schedule.NewScheduler(opts.Clock, timeout, pop.Show)
	s.hideSched = schedule.NewScheduler(opts.Clock, opts.HideTimeout, pop.Hide)

	pop.Subscribe(s.syncRegistry, disclosure.KeyOpen)
	pop.OnDispose(func() {
		s.CancelTimers()
		registry.Release(s.token)
	})

	return s
}

// SetDispatcher routes show/hide timer callbacks through fn, letting
// hosts marshal them onto their UI loop.
func (s *Store) SetDispatcher(fn func(func())) {
	s.showSched.SetDispatcher(fn)
	s.hideSched.SetDispatcher(fn)
}

// Token returns the store's registry identity token.
func (s *Store) Token() string {
	return s.token
}

// ScheduleShow shows the tooltip after the configured timeout. While any
// tooltip holds the registry, the delay is skipped so moving between
// triggers in one interaction session feels instant. A pending hide is
// cancelled.
func (s *Store) ScheduleShow() {
	s.hideSched.Cancel()
	if s.Open() {
		return
	}
	if s.registry.Active() != "" || s.timeout == 0 {
		s.Show()
		return
	}
	s.showSched.Schedule()
}

// ScheduleHide hides the tooltip after the hide timeout, immediately when
// the timeout is zero. A pending show is cancelled.
func (s *Store) ScheduleHide() {
	s.showSched.Cancel()
	if !s.Open() {
		return
	}
	if s.hideTimeout == 0 {
		s.Hide()
		return
	}
	s.hideSched.Schedule()
}

// CancelTimers drops any pending show or hide without changing state.
func (s *Store) CancelTimers() {
	s.showSched.Cancel()
	s.hideSched.Cancel()
}

// syncRegistry keeps registry ownership aligned with the open flag:
// opening displaces the previous owner, closing releases only if this
// store still owns the registry.
func (s *Store) syncRegistry(next, prev store.State) {
	if store.Get[bool](next, disclosure.KeyOpen) {
		s.registry.Acquire(s.token, s.Hide)
		return
	}
	s.registry.Release(s.token)
}
