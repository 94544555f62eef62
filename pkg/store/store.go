// Package store implements the reactive state container that every aria
// widget store is built on.
//
// A Store holds a flat mapping from field name to value. Updates replace the
// snapshot wholesale, listeners subscribe to a subset of keys, and same-tick
// updates batch into a single notification pass per listener. Stores compose:
// a store built with Compose exposes the union of its own keys and its
// parent's keys, and forwards shared-key reads and writes to the parent.
//
// Stores are NOT thread-safe. They must only be used from the host's UI
// loop; background work hands results back through a dispatcher (see
// schedule.Scheduler.SetDispatcher).
package store

import (
	"maps"

	"github.com/go-aria/aria/pkg/errors"
)

// Listener receives the new and previous state snapshots after a batch of
// changes touching at least one subscribed key.
type Listener func(next, prev State)

// WriteHook intercepts writes to a single key before they commit. It returns
// the value to commit and whether to commit at all. Derived stores use hooks
// to implement controlled state.
type WriteHook func(next any) (any, bool)

type subscription struct {
	fn   Listener
	keys map[string]struct{} // nil means all keys
}

// Store is an observable state container.
type Store struct {
	state State
	shape map[string]struct{}

	parent *Store

	listeners []*subscription
	hooks     map[string]WriteHook

	prev      State
	changed   map[string]struct{}
	batching  int
	notifying bool

	disposers []func()
	disposed  bool
}

// New creates a store whose state shape is fixed to the keys of initial.
func New(initial State) *Store {
	state := make(State, len(initial))
	shape := make(map[string]struct{}, len(initial))
	for k, v := range initial {
		state[k] = v
		shape[k] = struct{}{}
	}
	return &Store{
		state:   state,
		shape:   shape,
		changed: make(map[string]struct{}),
	}
}

// GetState returns the current state snapshot. For composed stores the
// snapshot merges the parent's state under the shared keys. Callers must
// treat the result as immutable.
func (s *Store) GetState() State {
	if s.parent == nil {
		return s.state
	}
	parentState := s.parent.GetState()
	merged := make(State, len(parentState)+len(s.state))
	maps.Copy(merged, parentState)
	maps.Copy(merged, s.state)
	return merged
}

// Has reports whether key is part of the store's state shape.
func (s *Store) Has(key string) bool {
	if _, ok := s.shape[key]; ok {
		return true
	}
	return s.parent != nil && s.parent.Has(key)
}

// SetState writes value to key. Writing a key outside the initial state
// shape is a programming error: it fails fast in development and is
// dropped in production. Writes that leave the value unchanged (by
// identity or equality) do not notify.
func (s *Store) SetState(key string, value any) {
	if s.disposed {
		return
	}
	if _, ok := s.shape[key]; !ok {
		if s.parent != nil && s.parent.Has(key) {
			s.parent.SetState(key, value)
			return
		}
		errors.Assertf(false, "store.SetState", "unknown state key %q", key)
		return
	}
	if hook, ok := s.hooks[key]; ok {
		next, commit := hook(value)
		if !commit {
			return
		}
		value = next
	}
	if equal(s.state[key], value) {
		return
	}
	if len(s.changed) == 0 {
		s.prev = s.state
	}
	next := maps.Clone(s.state)
	next[key] = value
	s.state = next
	s.changed[key] = struct{}{}
	if s.batching == 0 && !s.notifying {
		s.flush()
	}
}

// Update writes the result of applying fn to the current value of key.
func (s *Store) Update(key string, fn func(prev any) any) {
	s.SetState(key, fn(s.GetState()[key]))
}

// Batch runs fn, grouping all updates it performs into one notification
// pass per listener. Batches nest.
func (s *Store) Batch(fn func()) {
	s.batching++
	fn()
	s.batching--
	if s.batching == 0 && !s.notifying {
		s.flush()
	}
}

// Subscribe registers a listener invoked whenever any of keys changes,
// or on every change when no keys are given. It returns an unsubscribe
// function. Listeners fire in subscription order.
func (s *Store) Subscribe(fn Listener, keys ...string) func() {
	sub := &subscription{fn: fn, keys: s.keySet("store.Subscribe", keys)}
	s.listeners = append(s.listeners, sub)
	return func() {
		for i, candidate := range s.listeners {
			if candidate == sub {
				// Zero out to preserve notification order for the rest.
				s.listeners[i] = nil
				return
			}
		}
	}
}

// Sync is Subscribe plus an immediate call with the current state, for
// effects that must initialize as soon as they attach.
func (s *Store) Sync(fn Listener, keys ...string) func() {
	state := s.GetState()
	fn(state, state)
	return s.Subscribe(fn, keys...)
}

// SetWriteHook installs a write interceptor for key. Passing nil removes
// the hook. Hooks on shared keys are installed on the owning parent.
func (s *Store) SetWriteHook(key string, hook WriteHook) {
	if _, ok := s.shape[key]; !ok {
		if s.parent != nil && s.parent.Has(key) {
			s.parent.SetWriteHook(key, hook)
			return
		}
		errors.Assertf(false, "store.SetWriteHook", "unknown state key %q", key)
		return
	}
	if s.hooks == nil {
		s.hooks = make(map[string]WriteHook)
	}
	if hook == nil {
		delete(s.hooks, key)
		return
	}
	s.hooks[key] = hook
}

// OnDispose registers a cleanup function to run when the store is disposed.
// Returns an unregister function. Cleanups run once, in reverse order.
func (s *Store) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}
	if s.disposed {
		cleanup()
		return func() {}
	}
	index := len(s.disposers)
	s.disposers = append(s.disposers, cleanup)
	return func() {
		if index < len(s.disposers) {
			s.disposers[index] = nil
		}
	}
}

// Dispose tears the store down: pending work registered through OnDispose
// is cancelled (LIFO) and all listeners are released. Subsequent writes
// are no-ops.
func (s *Store) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for i := len(s.disposers) - 1; i >= 0; i-- {
		if s.disposers[i] != nil {
			s.disposers[i]()
		}
	}
	s.disposers = nil
	s.listeners = nil
}

// IsDisposed reports whether Dispose has run.
func (s *Store) IsDisposed() bool {
	return s.disposed
}

// flush notifies listeners of accumulated changes. A listener that writes
// state during notification starts a new, separately ordered pass rather
// than re-entering the current one.
func (s *Store) flush() {
	for len(s.changed) > 0 {
		next := s.state
		prev := s.prev
		if prev == nil {
			prev = next
		}
		changed := s.changed
		s.changed = make(map[string]struct{})
		s.prev = next

		s.notifying = true
		// Snapshot the listener list so subscriptions added during
		// notification only see later passes.
		active := s.listeners
		for _, sub := range active {
			if sub == nil {
				continue
			}
			if sub.keys != nil && !intersects(sub.keys, changed) {
				continue
			}
			notify(sub.fn, next, prev)
		}
		s.notifying = false
	}
}

// notify runs one listener, containing panics so a failing listener can
// neither starve the rest of the pass nor leave the store mid-flush.
func notify(fn Listener, next, prev State) {
	defer errors.Recover("store.notify")
	fn(next, prev)
}

// keySet validates keys against the shape and converts them to a set.
// An empty list subscribes to all keys (nil set).
func (s *Store) keySet(op string, keys []string) map[string]struct{} {
	if len(keys) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		errors.Assertf(s.Has(k), op, "unknown state key %q", k)
		set[k] = struct{}{}
	}
	return set
}

func intersects(a, b map[string]struct{}) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}
	return false
}
