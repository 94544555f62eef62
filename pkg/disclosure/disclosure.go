// Package disclosure implements the open/closed state shared by every
// popup widget: popovers, listboxes, comboboxes, and tooltips all build
// on a disclosure store.
package disclosure

import "github.com/go-aria/aria/pkg/store"

// State keys exposed by disclosure stores.
const (
	// KeyOpen holds the open flag (bool).
	KeyOpen = "open"
)

// Options configures a disclosure store.
type Options struct {
	// Store, when non-nil, becomes the parent of the disclosure's
	// reactive store.
	Store *store.Store
	// Open makes the flag controlled. Without a SetOpen callback,
	// internal writes are dropped and the caller owns every transition.
	Open *bool
	// SetOpen observes every committed open change.
	SetOpen func(bool)
	// DefaultOpen is the uncontrolled initial value.
	DefaultOpen bool
}

// Store is an open/closed toggle over the reactive store.
type Store struct {
	*store.Store
}

// New creates a disclosure store.
func New(opts Options) *Store {
	st := store.Compose(opts.Store, store.State{
		KeyOpen: store.DefaultValue(opts.Open, opts.DefaultOpen),
	})
	store.BindControlled(st, KeyOpen, opts.Open != nil, opts.SetOpen)
	return &Store{Store: st}
}

// Open reports whether the disclosure content is shown.
func (s *Store) Open() bool {
	return store.Get[bool](s.GetState(), KeyOpen)
}

// SetOpen sets the open flag.
func (s *Store) SetOpen(open bool) {
	s.SetState(KeyOpen, open)
}

// Show opens the disclosure content.
func (s *Store) Show() {
	s.SetOpen(true)
}

// Hide closes the disclosure content.
func (s *Store) Hide() {
	s.SetOpen(false)
}

// Toggle flips the open flag.
func (s *Store) Toggle() {
	s.SetOpen(!s.Open())
}
