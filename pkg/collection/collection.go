// Package collection implements the item-tracking store underneath every
// composite widget.
//
// A collection tracks two lists: items, the logical list in registration
// order, and renderedItems, the subset currently mounted in the UI.
// renderedItems is periodically reconciled to match true visual order, so
// navigation code can trust it regardless of mount order. Reconciliation is
// asynchronous (debounced to one pending run, like an animation-frame
// callback) and eventually consistent.
package collection

import (
	stderrors "errors"
	"sort"

	"github.com/go-aria/aria/pkg/errors"
	"github.com/go-aria/aria/pkg/schedule"
	"github.com/go-aria/aria/pkg/store"
)

// State keys exposed by collection stores.
const (
	// KeyItems holds the logical item list ([]T, registration order).
	KeyItems = "items"
	// KeyRenderedItems holds the rendered subset ([]T, visual order once
	// reconciliation has run).
	KeyRenderedItems = "renderedItems"
)

// Options configures a collection store.
type Options[T Item] struct {
	// Items is the initial logical item list.
	Items []T
	// Store, when non-nil, becomes the parent of the collection's
	// reactive store (state composition).
	Store *store.Store
	// Clock drives the reconciliation scheduler. Nil uses the system
	// clock.
	Clock schedule.Clock
	// Observer, when non-nil, re-triggers reconciliation on visibility
	// changes of rendered elements.
	Observer Observer
	// Merge controls how a re-registration combines with the existing
	// entry: it receives the previous and the new item and returns the
	// entry to keep. Nil means the new item wins wholesale.
	Merge func(prev, next T) T
}

// Store tracks a logical item list and its rendered, visually ordered
// subset. It embeds the reactive store, so subscription and state access
// follow the store package's contract.
type Store[T Item] struct {
	*store.Store

	merge    func(prev, next T) T
	observer Observer
	sched    *schedule.Scheduler

	// generation increments on every items change; the single-entry
	// lookup cache is valid only within one generation.
	generation uint64
	cacheID    string
	cacheGen   uint64
	cacheItem  T
	cacheOK    bool
}

// New creates a collection store.
func New[T Item](opts Options[T]) *Store[T] {
	items := make([]T, len(opts.Items))
	copy(items, opts.Items)

	st := store.Compose(opts.Store, store.State{
		KeyItems:         items,
		KeyRenderedItems: []T{},
	})

	s := &Store[T]{
		Store:    st,
		merge:    opts.Merge,
		observer: opts.Observer,
	}
	s.sched = schedule.NewFrameScheduler(opts.Clock, s.Reconcile)
	st.OnDispose(s.sched.Cancel)

	st.Subscribe(func(next, prev store.State) {
		s.generation++
	}, KeyItems)
	st.Subscribe(func(next, prev store.State) {
		s.sched.Schedule()
	}, KeyRenderedItems)

	return s
}

// Scheduler returns the reconciliation scheduler, letting hosts attach a
// dispatcher that marshals the reconcile pass onto their UI loop.
func (s *Store[T]) Scheduler() *schedule.Scheduler {
	return s.sched
}

// Items returns the logical item list in registration order.
func (s *Store[T]) Items() []T {
	return store.Get[[]T](s.GetState(), KeyItems)
}

// RenderedItems returns the rendered subset, in visual order once
// reconciliation has caught up.
func (s *Store[T]) RenderedItems() []T {
	return store.Get[[]T](s.GetState(), KeyRenderedItems)
}

// SetItems replaces the logical item list.
func (s *Store[T]) SetItems(items []T) {
	next := make([]T, len(items))
	copy(next, items)
	s.SetState(KeyItems, next)
}

// Item returns the item with the given id. It reports false for an empty
// or unknown id. Lookups are served from a single-entry cache keyed on
// (id, items generation), falling back to a linear scan on miss.
func (s *Store[T]) Item(id string) (T, bool) {
	var zero T
	if id == "" {
		return zero, false
	}
	if s.cacheOK && s.cacheID == id && s.cacheGen == s.generation {
		return s.cacheItem, true
	}
	for _, item := range s.Items() {
		if item.ItemID() == id {
			s.cacheID = id
			s.cacheGen = s.generation
			s.cacheItem = item
			s.cacheOK = true
			return item, true
		}
	}
	return zero, false
}

// RegisterItem inserts the item into the logical list, merging with any
// existing entry of the same id. The returned unregister function restores
// the previous entry if one existed, or removes the item otherwise.
func (s *Store[T]) RegisterItem(item T) func() {
	return s.register(KeyItems, item)
}

// RenderItem registers the item and additionally adds it to the rendered
// list. The returned function undoes both.
func (s *Store[T]) RenderItem(item T) func() {
	var unregister, unrender func()
	s.Batch(func() {
		unregister = s.register(KeyItems, item)
		unrender = s.register(KeyRenderedItems, item)
	})

	var cancelObserve func()
	if s.observer != nil {
		if el := item.ItemElement(); el != nil {
			cancelObserve = s.observer.Observe(el, s.sched.Schedule)
		}
	}

	return func() {
		if cancelObserve != nil {
			cancelObserve()
		}
		s.Batch(func() {
			unrender()
			unregister()
		})
	}
}

// UpdateItem applies a functional update to the item with the given id in
// both lists. It reports whether the item was found in the logical list.
// Partial updates use the typed patch vocabulary (ItemUpdate and friends)
// so "not provided" and "explicitly cleared" stay distinct.
func (s *Store[T]) UpdateItem(id string, fn func(T) T) bool {
	errors.Assertf(fn != nil, "collection.UpdateItem", "nil update function")
	if fn == nil {
		return false
	}
	found := false
	s.Batch(func() {
		found = s.updateIn(KeyItems, id, fn)
		s.updateIn(KeyRenderedItems, id, fn)
	})
	return found
}

// register inserts or merges item into the list under key and returns an
// undo function.
func (s *Store[T]) register(key string, item T) func() {
	id := item.ItemID()
	if id == "" {
		errors.Assertf(false, "collection.RegisterItem", "item registered without id")
		errors.Report(&errors.StoreError{
			Op:   "collection.RegisterItem",
			Kind: errors.KindRegistration,
			Err:  stderrors.New("item registered without id"),
		})
		return func() {}
	}

	list := store.Get[[]T](s.GetState(), key)
	idx := indexOf(list, id)

	var prev T
	had := idx >= 0

	next := make([]T, len(list), len(list)+1)
	copy(next, list)
	if had {
		prev = list[idx]
		merged := item
		if s.merge != nil {
			merged = s.merge(prev, item)
		}
		next[idx] = merged
	} else {
		next = append(next, item)
	}
	s.SetState(key, next)

	return func() {
		list := store.Get[[]T](s.GetState(), key)
		idx := indexOf(list, id)
		if idx < 0 {
			return
		}
		restored := make([]T, 0, len(list))
		restored = append(restored, list[:idx]...)
		if had {
			restored = append(restored, prev)
		}
		restored = append(restored, list[idx+1:]...)
		s.SetState(key, restored)
	}
}

func (s *Store[T]) updateIn(key, id string, fn func(T) T) bool {
	list := store.Get[[]T](s.GetState(), key)
	idx := indexOf(list, id)
	if idx < 0 {
		return false
	}
	next := make([]T, len(list))
	copy(next, list)
	next[idx] = fn(list[idx])
	s.SetState(key, next)
	return true
}

// Reconcile reorders renderedItems to match the true visual order of their
// elements. Items without elements keep their relative position. When no
// pair is out of order, no update is emitted, so downstream subscribers do
// not re-render needlessly. Hosts normally never call this directly; the
// scheduler runs it one frame after a rendered-items change.
func (s *Store[T]) Reconcile() {
	if s.IsDisposed() {
		return
	}
	rendered := s.RenderedItems()
	if len(rendered) < 2 {
		return
	}
	if visuallySorted(rendered) {
		return
	}
	next := make([]T, len(rendered))
	copy(next, rendered)
	sort.SliceStable(next, func(i, j int) bool {
		return elementBefore(next[i].ItemElement(), next[j].ItemElement())
	})
	s.SetState(KeyRenderedItems, next)
}

func visuallySorted[T Item](items []T) bool {
	for i := 1; i < len(items); i++ {
		if elementBefore(items[i].ItemElement(), items[i-1].ItemElement()) {
			return false
		}
	}
	return true
}

// elementBefore orders two handles, treating missing handles as equal so
// the stable sort leaves them in place.
func elementBefore(a, b Element) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Before(b)
}

func indexOf[T Item](list []T, id string) int {
	for i, item := range list {
		if item.ItemID() == id {
			return i
		}
	}
	return -1
}
