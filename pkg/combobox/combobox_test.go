package combobox

import (
	"testing"

	"github.com/go-aria/aria/pkg/collection"
	"github.com/go-aria/aria/pkg/composite"
	ariatest "github.com/go-aria/aria/pkg/testing"
)

func newCombobox(t *testing.T, opts Options, ids ...string) *Store {
	t.Helper()
	if opts.Composite.Clock == nil {
		opts.Composite.Clock = ariatest.NewFakeClock()
	}
	s := New(opts)
	for _, id := range ids {
		s.RenderItem(composite.Item{Base: collection.Base{ID: id}})
	}
	return s
}

// TestStore_StartsOnBaseElement verifies conceptual focus starts on the
// input.
func TestStore_StartsOnBaseElement(t *testing.T) {
	s := newCombobox(t, Options{}, "a", "b")

	if got := s.Active(); !got.IsBase() {
		t.Errorf("initial active = %v, want <base>", got)
	}
	if got := s.Down(); got != composite.ID("a") {
		t.Errorf("Down() from input = %v, want a", got)
	}
}

// TestStore_Up_ReturnsToInput verifies the base element is a stop above
// the first suggestion.
func TestStore_Up_ReturnsToInput(t *testing.T) {
	s := newCombobox(t, Options{}, "a", "b")
	s.SetActiveID(composite.ID("a"))

	if got := s.Up(); !got.IsBase() {
		t.Errorf("Up() from first suggestion = %v, want <base>", got)
	}
}

// TestStore_SetValue_ResetsActiveToInput verifies typing moves conceptual
// focus back to the input.
func TestStore_SetValue_ResetsActiveToInput(t *testing.T) {
	s := newCombobox(t, Options{}, "a", "b")
	s.SetActiveID(composite.ID("b"))

	s.SetValue("ap")

	if got := s.Value(); got != "ap" {
		t.Errorf("value = %q, want %q", got, "ap")
	}
	if got := s.Active(); !got.IsBase() {
		t.Errorf("active after typing = %v, want <base>", got)
	}
}

// TestStore_SelectValue_SingleCommitsAndCloses verifies the single-select
// commit flow.
func TestStore_SelectValue_SingleCommitsAndCloses(t *testing.T) {
	s := newCombobox(t, Options{}, "apple", "banana")
	s.Show()

	s.SelectValue("apple")

	if got := s.SelectedValue(); len(got) != 1 || got[0] != "apple" {
		t.Errorf("selectedValue = %v, want [apple]", got)
	}
	if got := s.Value(); got != "apple" {
		t.Errorf("value = %q, want the selected value mirrored", got)
	}
	if s.Open() {
		t.Error("single selection should close the popup")
	}
}

// TestStore_SelectValue_MultipleTogglesAndStaysOpen verifies multi-select
// keeps the popup open and toggles values.
func TestStore_SelectValue_MultipleTogglesAndStaysOpen(t *testing.T) {
	s := newCombobox(t, Options{Multiple: true, ResetValueOnSelect: true}, "a", "b")
	s.Show()
	s.SetValue("filter")

	s.SelectValue("a")
	s.SelectValue("b")
	s.SelectValue("a")

	got := s.SelectedValue()
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("selectedValue = %v, want [b]", got)
	}
	if !s.Open() {
		t.Error("multi selection should keep the popup open")
	}
	if s.Value() != "" {
		t.Errorf("value = %q, want reset after select", s.Value())
	}
}

// TestStore_ResetValueOnHide verifies the text clears when the popup
// closes.
func TestStore_ResetValueOnHide(t *testing.T) {
	s := newCombobox(t, Options{ResetValueOnHide: true}, "a")
	s.Show()
	s.SetValue("abc")

	s.Hide()

	if got := s.Value(); got != "" {
		t.Errorf("value after hide = %q, want empty", got)
	}
}

// TestStore_ControlledValue verifies the controlled-state contract for
// the input text.
func TestStore_ControlledValue(t *testing.T) {
	value := "fixed"
	s := newCombobox(t, Options{Value: &value}, "a")

	s.SetValue("typed")

	if got := s.Value(); got != "fixed" {
		t.Errorf("controlled value moved to %q", got)
	}
}

// TestStore_DefaultSelectedValue verifies the uncontrolled initial
// selection.
func TestStore_DefaultSelectedValue(t *testing.T) {
	s := newCombobox(t, Options{DefaultSelectedValue: []string{"b"}}, "a", "b")

	if !s.Selected("b") {
		t.Errorf("selectedValue = %v, want [b]", s.SelectedValue())
	}
}
