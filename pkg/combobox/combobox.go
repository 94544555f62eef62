// Package combobox implements the combobox store: a composite with a
// popover, a text value driving filtering, and a selected value.
//
// Comboboxes always include the base element: conceptual focus starts on
// the input itself, and vertical navigation returns there after the last
// suggestion.
package combobox

import (
	"github.com/go-aria/aria/pkg/composite"
	"github.com/go-aria/aria/pkg/disclosure"
	"github.com/go-aria/aria/pkg/store"
)

// State keys exposed by combobox stores, in addition to the composite and
// popover keys.
const (
	// KeyValue holds the input text (string).
	KeyValue = "value"
	// KeySelectedValue holds the committed selection ([]string).
	KeySelectedValue = "selectedValue"
)

// Options configures a combobox store.
type Options struct {
	// Composite configures the underlying navigation store. Its Store
	// field is overridden and IncludesBaseElement is forced on.
	Composite composite.Options
	// Popover configures the popup; its parent store is overridden.
	Popover disclosure.PopoverOptions

	// Value makes the input text controlled.
	Value *string
	// SetValue observes every committed text change.
	SetValue func(string)
	// DefaultValue is the uncontrolled initial text.
	DefaultValue string

	// SelectedValue makes the selection controlled.
	SelectedValue *[]string
	// SetSelectedValue observes every committed selection change.
	SetSelectedValue func([]string)
	// DefaultSelectedValue is the uncontrolled initial selection.
	DefaultSelectedValue []string
	// Multiple allows more than one selected value.
	Multiple bool

	// ResetValueOnHide clears the input text when the popup closes.
	ResetValueOnHide bool
	// ResetValueOnSelect clears the input text when a value is selected.
	ResetValueOnSelect bool
}

// Store is the combobox store.
type Store struct {
	*composite.Store
	popover  *disclosure.Popover
	multiple bool

	resetOnSelect bool
}

// New creates a combobox store.
func New(opts Options) *Store {
	popOpts := opts.Popover
	popOpts.Options.Store = opts.Composite.Store
	pop := disclosure.NewPopover(popOpts)

	selected := append([]string(nil), store.DefaultValue(opts.SelectedValue, opts.DefaultSelectedValue)...)
	textStore := store.Compose(pop.Store.Store, store.State{
		KeyValue:         store.DefaultValue(opts.Value, opts.DefaultValue),
		KeySelectedValue: selected,
	})
	store.BindControlled(textStore, KeyValue, opts.Value != nil, opts.SetValue)
	store.BindControlled(textStore, KeySelectedValue, opts.SelectedValue != nil, opts.SetSelectedValue)

	compOpts := opts.Composite
	compOpts.Store = textStore
	compOpts.IncludesBaseElement = true
	if compOpts.ActiveID == nil && compOpts.DefaultActiveID == nil {
		base := composite.Base()
		compOpts.DefaultActiveID = &base
	}
	cs := composite.New(compOpts)
	cs.OnDispose(pop.Dispose)

	s := &Store{
		Store:         cs,
		popover:       pop,
		multiple:      opts.Multiple,
		resetOnSelect: opts.ResetValueOnSelect,
	}

	if opts.ResetValueOnHide {
		cs.Subscribe(func(next, prev store.State) {
			if !store.Get[bool](next, disclosure.KeyOpen) {
				s.SetValue("")
			}
		}, disclosure.KeyOpen)
	}

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

// Value returns the input text.
func (s *Store) Value() string {
	return store.Get[string](s.GetState(), KeyValue)
}

// SetValue sets the input text. Typing keeps the active position on the
// base element, so arrow keys always start from the input.
func (s *Store) SetValue(value string) {
	s.Batch(func() {
		s.SetState(KeyValue, value)
		s.SetActiveID(composite.Base())
	})
}

// SelectedValue returns the committed selection.
func (s *Store) SelectedValue() []string {
	return store.Get[[]string](s.GetState(), KeySelectedValue)
}

// SetSelectedValue replaces the selection.
func (s *Store) SetSelectedValue(values []string) {
	s.SetState(KeySelectedValue, append([]string(nil), values...))
}

// Selected reports whether the value is in the selection.
func (s *Store) Selected(value string) bool {
	for _, v := range s.SelectedValue() {
		if v == value {
			return true
		}
	}
	return false
}

// SelectValue commits a value. Single-select comboboxes replace the
// selection, mirror the value into the input text, and close the popup;
// multi-select toggles the value and keeps the popup open.
func (s *Store) SelectValue(value string) {
	if s.multiple {
		s.Batch(func() {
			if s.Selected(value) {
				s.deselect(value)
			} else {
				s.SetSelectedValue(append(append([]string(nil), s.SelectedValue()...), value))
			}
			if s.resetOnSelect {
				s.SetState(KeyValue, "")
			}
		})
		return
	}
	s.Batch(func() {
		s.SetSelectedValue([]string{value})
		if s.resetOnSelect {
			s.SetState(KeyValue, "")
		} else {
			s.SetState(KeyValue, value)
		}
		s.Hide()
	})
}

func (s *Store) deselect(value string) {
	current := s.SelectedValue()
	next := make([]string, 0, len(current))
	for _, v := range current {
		if v != value {
			next = append(next, v)
		}
	}
	s.SetSelectedValue(next)
}
