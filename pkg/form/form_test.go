package form

import (
	stderrors "errors"
	"testing"

	"github.com/go-aria/aria/pkg/errors"
	"github.com/go-aria/aria/pkg/store"
	ariatest "github.com/go-aria/aria/pkg/testing"
)

func newForm(t *testing.T, opts Options, fields ...string) *Store {
	t.Helper()
	if opts.Clock == nil {
		opts.Clock = ariatest.NewFakeClock()
	}
	s := New(opts)
	for _, name := range fields {
		s.RegisterField(name)
	}
	return s
}

// TestStore_Values covers value reads and writes.
func TestStore_Values(t *testing.T) {
	s := newForm(t, Options{DefaultValues: map[string]any{"name": "ada"}}, "name", "age")

	if got := s.Value("name"); got != "ada" {
		t.Errorf("value = %v, want ada", got)
	}
	s.SetValue("age", 36)
	if got := s.Value("age"); got != 36 {
		t.Errorf("value = %v, want 36", got)
	}
}

// TestStore_SetValue_NotifiesValueListeners verifies value writes go
// through the reactive store.
func TestStore_SetValue_NotifiesValueListeners(t *testing.T) {
	s := newForm(t, Options{}, "name")
	fired := 0
	s.Subscribe(func(next, prev store.State) { fired++ }, KeyValues)

	s.SetValue("name", "x")

	if fired != 1 {
		t.Errorf("values listener fired %d times, want 1", fired)
	}
}

// TestStore_Errors covers error recording and clearing.
func TestStore_Errors(t *testing.T) {
	s := newForm(t, Options{}, "name")

	s.SetError("name", "required")
	if s.Valid() {
		t.Error("form with errors should not be valid")
	}
	if got := s.Error("name"); got != "required" {
		t.Errorf("error = %q, want required", got)
	}

	s.SetError("name", "")
	if !s.Valid() {
		t.Error("clearing the error should make the form valid")
	}
}

// TestStore_Touched covers interaction tracking.
func TestStore_Touched(t *testing.T) {
	s := newForm(t, Options{}, "a", "b")

	s.SetTouched("a")
	if !s.Touched("a") || s.Touched("b") {
		t.Error("only field a should be touched")
	}

	s.TouchAll()
	if !s.Touched("b") {
		t.Error("TouchAll should touch every registered field")
	}
}

// TestStore_Validate_RunsValidatorsInOrder verifies sequencing and error
// reset.
func TestStore_Validate_RunsValidatorsInOrder(t *testing.T) {
	s := newForm(t, Options{}, "name")
	var order []string
	s.OnValidate(func(s *Store) error {
		order = append(order, "first")
		if s.Value("name") == nil {
			s.SetError("name", "required")
		}
		return nil
	})
	s.OnValidate(func(s *Store) error {
		order = append(order, "second")
		return nil
	})

	if err := s.Validate(); err != nil {
		t.Fatalf("Validate returned %v", err)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("validator order = %v", order)
	}
	if s.Valid() {
		t.Fatal("validator-recorded error should make the form invalid")
	}

	// A later run starts from a clean slate.
	s.SetValue("name", "ada")
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate returned %v", err)
	}
	if !s.Valid() {
		t.Error("errors should reset before validators run")
	}
}

// TestStore_Submit_AbortsOnFieldErrors verifies validation gates submit.
func TestStore_Submit_AbortsOnFieldErrors(t *testing.T) {
	s := newForm(t, Options{}, "name")
	s.OnValidate(func(s *Store) error {
		s.SetError("name", "required")
		return nil
	})
	submitted := false
	s.OnSubmit(func(s *Store) error {
		submitted = true
		return nil
	})

	err := s.Submit()

	if err == nil || !stderrors.Is(err, errors.ErrInvalidForm) {
		t.Errorf("Submit error = %v, want ErrInvalidForm", err)
	}
	if submitted {
		t.Error("submit handlers must not run when validation fails")
	}
	if !s.Touched("name") {
		t.Error("a submit attempt should touch every field")
	}
}

// TestStore_Submit_RunsHandlersInOrder verifies the success path and the
// submitting flag.
func TestStore_Submit_RunsHandlersInOrder(t *testing.T) {
	s := newForm(t, Options{DefaultValues: map[string]any{"name": "ada"}}, "name")
	var order []string
	s.OnSubmit(func(s *Store) error {
		if !s.Submitting() {
			t.Error("Submitting should report true inside handlers")
		}
		order = append(order, "save")
		return nil
	})
	s.OnSubmit(func(s *Store) error {
		order = append(order, "notify")
		return nil
	})

	if err := s.Submit(); err != nil {
		t.Fatalf("Submit returned %v", err)
	}
	if len(order) != 2 || order[0] != "save" || order[1] != "notify" {
		t.Errorf("submit order = %v", order)
	}
	if s.Submitting() {
		t.Error("Submitting should reset after Submit returns")
	}
}

// TestStore_Submit_HandlerFailureAborts verifies a failing handler stops
// the sequence.
func TestStore_Submit_HandlerFailureAborts(t *testing.T) {
	s := newForm(t, Options{}, "name")
	boom := stderrors.New("boom")
	s.OnSubmit(func(s *Store) error { return boom })
	ran := false
	s.OnSubmit(func(s *Store) error {
		ran = true
		return nil
	})

	err := s.Submit()

	if !stderrors.Is(err, boom) {
		t.Errorf("Submit error = %v, want to wrap boom", err)
	}
	if ran {
		t.Error("later submit handlers must not run after a failure")
	}
}

// TestStore_Submit_HandlerPanicBecomesError verifies a panicking submit
// handler surfaces as an error and leaves the submitting flag cleared.
func TestStore_Submit_HandlerPanicBecomesError(t *testing.T) {
	rec := &ariatest.ErrorRecorder{}
	errors.SetHandler(rec)
	defer errors.SetHandler(nil)

	s := newForm(t, Options{}, "name")
	s.OnSubmit(func(s *Store) error { panic("handler boom") })

	err := s.Submit()

	if err == nil {
		t.Fatal("Submit should report the recovered panic as an error")
	}
	var serr *errors.StoreError
	if !stderrors.As(err, &serr) || serr.Op != "form.Submit" {
		t.Errorf("err = %v, want a form.Submit StoreError", err)
	}
	if s.Submitting() {
		t.Error("submitting flag should be cleared after a panic")
	}
	if rec.Panics.Len() != 1 {
		t.Errorf("reported %d panics, want 1", rec.Panics.Len())
	}
}

// TestStore_OnValidate_Unregister verifies callback removal.
func TestStore_OnValidate_Unregister(t *testing.T) {
	s := newForm(t, Options{}, "name")
	calls := 0
	remove := s.OnValidate(func(s *Store) error {
		calls++
		return nil
	})

	remove()
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate returned %v", err)
	}
	if calls != 0 {
		t.Errorf("removed validator ran %d times", calls)
	}
}
