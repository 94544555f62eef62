// Package listbox implements the select/listbox store: a composite with a
// popover and a selected value, single or multiple.
package listbox

import (
	"github.com/go-aria/aria/pkg/composite"
	"github.com/go-aria/aria/pkg/disclosure"
	"github.com/go-aria/aria/pkg/store"
)

// State keys exposed by listbox stores, in addition to the composite and
// popover keys.
const (
	// KeyValue holds the selected values ([]string; at most one entry
	// unless the listbox is multi-select).
	KeyValue = "value"
)

// Options configures a listbox store.
type Options struct {
	// Composite configures the underlying navigation store. Its Store
	// field is overridden: the listbox wires its own state chain.
	Composite composite.Options
	// Popover configures the popup. Its parent store is overridden the
	// same way.
	Popover disclosure.PopoverOptions

	// Value makes the selection controlled. Without a SetValue callback,
	// internal writes are dropped.
	Value *[]string
	// SetValue observes every committed selection change.
	SetValue func([]string)
	// DefaultValue is the uncontrolled initial selection.
	DefaultValue []string
	// Multiple allows more than one selected value.
	Multiple bool
	// SetValueOnMove selects the item focus lands on. Only applies to
	// single-select listboxes; multi-select toggling stays explicit.
	SetValueOnMove bool
}

// Store is the listbox store. Navigation methods come from the embedded
// composite store; selection and popup state layer on top.
type Store struct {
	*composite.Store
	popover  *disclosure.Popover
	multiple bool
}

// New creates a listbox store.
func New(opts Options) *Store {
	popOpts := opts.Popover
	popOpts.Options.Store = opts.Composite.Store
	pop := disclosure.NewPopover(popOpts)

	value := append([]string(nil), store.DefaultValue(opts.Value, opts.DefaultValue)...)
	valueStore := store.Compose(pop.Store.Store, store.State{
		KeyValue: value,
	})
	store.BindControlled(valueStore, KeyValue, opts.Value != nil, opts.SetValue)

	compOpts := opts.Composite
	compOpts.Store = valueStore
	cs := composite.New(compOpts)
	cs.OnDispose(pop.Dispose)

	s := &Store{Store: cs, popover: pop, multiple: opts.Multiple}

	if opts.SetValueOnMove && !opts.Multiple {
		cs.Subscribe(s.selectActive, composite.KeyMoves)
	}
	cs.Subscribe(s.focusSelected, disclosure.KeyOpen)

	return s
}

// Popover returns the popup store.
func (s *Store) Popover() *disclosure.Popover {
	return s.popover
}

// Multiple reports whether more than one value may be selected.
func (s *Store) Multiple() bool {
	return s.multiple
}

// Open reports whether the popup is shown.
func (s *Store) Open() bool {
	return store.Get[bool](s.GetState(), disclosure.KeyOpen)
}

// Show opens the popup.
func (s *Store) Show() {
	s.popover.Show()
}

// Hide closes the popup.
func (s *Store) Hide() {
	s.popover.Hide()
}

// Toggle flips the popup.
func (s *Store) Toggle() {
	s.popover.Toggle()
}

// Value returns the selected values.
func (s *Store) Value() []string {
	return store.Get[[]string](s.GetState(), KeyValue)
}

// SetValue replaces the selection.
func (s *Store) SetValue(values []string) {
	s.SetState(KeyValue, append([]string(nil), values...))
}

// Selected reports whether the value is currently selected.
func (s *Store) Selected(value string) bool {
	for _, v := range s.Value() {
		if v == value {
			return true
		}
	}
	return false
}

// Select adds the value to the selection. Single-select listboxes replace
// the selection instead.
func (s *Store) Select(value string) {
	if !s.multiple {
		s.SetValue([]string{value})
		return
	}
	if s.Selected(value) {
		return
	}
	s.SetValue(append(append([]string(nil), s.Value()...), value))
}

// Deselect removes the value from the selection.
func (s *Store) Deselect(value string) {
	current := s.Value()
	next := make([]string, 0, len(current))
	for _, v := range current {
		if v != value {
			next = append(next, v)
		}
	}
	if len(next) == len(current) {
		return
	}
	s.SetValue(next)
}

// ToggleValue selects the value when absent and deselects it otherwise.
func (s *Store) ToggleValue(value string) {
	if s.Selected(value) {
		s.Deselect(value)
		return
	}
	s.Select(value)
}

// Clear empties the selection.
func (s *Store) Clear() {
	s.SetValue(nil)
}

// selectActive mirrors navigation into the selection when
// SetValueOnMove is enabled.
func (s *Store) selectActive(next, prev store.State) {
	active := store.Get[composite.ActiveID](next, composite.KeyActiveID)
	id, ok := active.Item()
	if !ok {
		return
	}
	s.SetValue([]string{id})
}

// focusSelected moves focus to the first selected item when the popup
// opens, so navigation resumes from the selection.
func (s *Store) focusSelected(next, prev store.State) {
	if !store.Get[bool](next, disclosure.KeyOpen) {
		return
	}
	value := store.Get[[]string](next, KeyValue)
	if len(value) == 0 {
		return
	}
	if _, ok := s.Item(value[0]); !ok {
		return
	}
	s.SetActiveID(composite.ID(value[0]))
}
