// Package form implements the form store: a collection of registered
// fields with values, errors, and touched tracking, plus validate and
// submit callback sequencing.
package form

import (
	"fmt"
	"maps"

	"github.com/go-aria/aria/pkg/collection"
	"github.com/go-aria/aria/pkg/errors"
	"github.com/go-aria/aria/pkg/schedule"
	"github.com/go-aria/aria/pkg/store"
)

// State keys exposed by form stores, in addition to the collection keys.
const (
	// KeyValues holds the field values (map[string]any).
	KeyValues = "values"
	// KeyErrors holds the field errors (map[string]string).
	KeyErrors = "errors"
	// KeyTouched holds the touched flags (map[string]bool).
	KeyTouched = "touched"
	// KeySubmitting reports an in-flight submit (bool).
	KeySubmitting = "submitting"
)

// Options configures a form store.
type Options struct {
	// Store, when non-nil, becomes the parent of the form's reactive
	// store.
	Store *store.Store
	// Clock drives the field collection's reconciliation scheduler.
	Clock schedule.Clock
	// DefaultValues seeds the value map.
	DefaultValues map[string]any
}

// Store is the form store. Fields register as collection items keyed by
// field name.
type Store struct {
	*collection.Store[collection.Base]

	validators []*callback
	submitters []*callback
}

type callback struct {
	fn func(s *Store) error
}

// New creates a form store.
func New(opts Options) *Store {
	values := make(map[string]any, len(opts.DefaultValues))
	maps.Copy(values, opts.DefaultValues)

	parent := store.Compose(opts.Store, store.State{
		KeyValues:     values,
		KeyErrors:     map[string]string{},
		KeyTouched:    map[string]bool{},
		KeySubmitting: false,
	})

	col := collection.New(collection.Options[collection.Base]{
		Store: parent,
		Clock: opts.Clock,
	})
	return &Store{Store: col}
}

// RegisterField registers a field by name and returns its unregister
// function. Unregistering keeps the field's last value so remounting a
// field does not lose data.
func (s *Store) RegisterField(name string) func() {
	return s.RegisterItem(collection.Base{ID: name})
}

// Values returns the value map. Callers must treat it as immutable.
func (s *Store) Values() map[string]any {
	return store.Get[map[string]any](s.GetState(), KeyValues)
}

// Value returns the named field's value.
func (s *Store) Value(name string) any {
	return s.Values()[name]
}

// SetValue sets the named field's value.
func (s *Store) SetValue(name string, value any) {
	next := maps.Clone(s.Values())
	next[name] = value
	s.SetState(KeyValues, next)
}

// Errors returns the error map. Callers must treat it as immutable.
func (s *Store) Errors() map[string]string {
	return store.Get[map[string]string](s.GetState(), KeyErrors)
}

// Error returns the named field's error message, empty when valid.
func (s *Store) Error(name string) string {
	return s.Errors()[name]
}

// SetError records an error message for the named field. An empty
// message clears it.
func (s *Store) SetError(name, message string) {
	next := maps.Clone(s.Errors())
	if message == "" {
		delete(next, name)
	} else {
		next[name] = message
	}
	s.SetState(KeyErrors, next)
}

// Touched reports whether the named field has been interacted with.
func (s *Store) Touched(name string) bool {
	return store.Get[map[string]bool](s.GetState(), KeyTouched)[name]
}

// SetTouched marks the named field as interacted with.
func (s *Store) SetTouched(name string) {
	current := store.Get[map[string]bool](s.GetState(), KeyTouched)
	if current[name] {
		return
	}
	next := maps.Clone(current)
	next[name] = true
	s.SetState(KeyTouched, next)
}

// TouchAll marks every registered field as interacted with, the way a
// submit attempt does.
func (s *Store) TouchAll() {
	next := maps.Clone(store.Get[map[string]bool](s.GetState(), KeyTouched))
	for _, field := range s.Items() {
		next[field.ID] = true
	}
	s.SetState(KeyTouched, next)
}

// Submitting reports an in-flight submit.
func (s *Store) Submitting() bool {
	return store.Get[bool](s.GetState(), KeySubmitting)
}

// Valid reports whether the form has no recorded errors.
func (s *Store) Valid() bool {
	return len(s.Errors()) == 0
}

// OnValidate registers a validator. Validators run in registration order
// on every Validate call and record problems through SetError. The
// returned function unregisters.
func (s *Store) OnValidate(fn func(s *Store) error) func() {
	return appendCallback(&s.validators, fn)
}

// OnSubmit registers a submit handler, run in registration order after a
// successful validation. The returned function unregisters.
func (s *Store) OnSubmit(fn func(s *Store) error) func() {
	return appendCallback(&s.submitters, fn)
}

// Validate clears recorded errors and runs every validator. It returns
// the first validator failure, or nil; field-level problems recorded via
// SetError do not make Validate itself fail, they make Valid report
// false.
func (s *Store) Validate() error {
	s.SetState(KeyErrors, map[string]string{})
	for _, cb := range s.validators {
		if cb == nil || cb.fn == nil {
			continue
		}
		if err := cb.fn(s); err != nil {
			return &errors.StoreError{Op: "form.Validate", Kind: errors.KindState, Err: err}
		}
	}
	return nil
}

// Submit touches every field, validates, and runs the submit handlers in
// order. Any recorded field error or handler failure aborts the sequence.
// A panicking handler is recovered and surfaces as an error, leaving the
// submitting flag cleared.
func (s *Store) Submit() (err error) {
	s.TouchAll()
	if err := s.Validate(); err != nil {
		return err
	}
	if !s.Valid() {
		return &errors.StoreError{Op: "form.Submit", Kind: errors.KindState,
			Err: errors.ErrInvalidForm}
	}
	s.SetState(KeySubmitting, true)
	defer s.SetState(KeySubmitting, false)
	defer errors.RecoverWithCallback("form.Submit", func(r any) {
		err = &errors.StoreError{Op: "form.Submit", Kind: errors.KindState,
			Err: fmt.Errorf("submit handler panicked: %v", r)}
	})
	for _, cb := range s.submitters {
		if cb == nil || cb.fn == nil {
			continue
		}
		if err := cb.fn(s); err != nil {
			return &errors.StoreError{Op: "form.Submit", Kind: errors.KindState, Err: err}
		}
	}
	return nil
}

func appendCallback(list *[]*callback, fn func(s *Store) error) func() {
	cb := &callback{fn: fn}
	*list = append(*list, cb)
	return func() {
		for i, candidate := range *list {
			if candidate == cb {
				(*list)[i] = nil
				return
			}
		}
	}
}
