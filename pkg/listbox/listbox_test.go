package listbox

import (
	"testing"

	"github.com/go-aria/aria/pkg/collection"
	"github.com/go-aria/aria/pkg/composite"
	ariatest "github.com/go-aria/aria/pkg/testing"
)

func newListbox(t *testing.T, opts Options, ids ...string) *Store {
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

func equalValues(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestStore_SingleSelect_ReplacesValue verifies single-select semantics.
func TestStore_SingleSelect_ReplacesValue(t *testing.T) {
	s := newListbox(t, Options{}, "apple", "banana")

	s.Select("apple")
	if got := s.Value(); !equalValues(got, "apple") {
		t.Fatalf("value = %v, want [apple]", got)
	}
	s.Select("banana")
	if got := s.Value(); !equalValues(got, "banana") {
		t.Errorf("value = %v, want [banana]", got)
	}
}

// TestStore_MultiSelect_TogglesValues verifies multi-select accumulation
// and toggling.
func TestStore_MultiSelect_TogglesValues(t *testing.T) {
	s := newListbox(t, Options{Multiple: true}, "a", "b", "c")

	s.Select("a")
	s.Select("b")
	s.Select("b") // repeat is a no-op
	if got := s.Value(); !equalValues(got, "a", "b") {
		t.Fatalf("value = %v, want [a b]", got)
	}

	s.ToggleValue("a")
	if got := s.Value(); !equalValues(got, "b") {
		t.Errorf("value after toggle = %v, want [b]", got)
	}
	s.ToggleValue("c")
	if got := s.Value(); !equalValues(got, "b", "c") {
		t.Errorf("value after toggle on = %v, want [b c]", got)
	}

	s.Clear()
	if got := s.Value(); len(got) != 0 {
		t.Errorf("value after clear = %v, want empty", got)
	}
}

// TestStore_DefaultValue verifies the uncontrolled initial selection.
func TestStore_DefaultValue(t *testing.T) {
	s := newListbox(t, Options{DefaultValue: []string{"b"}}, "a", "b")

	if !s.Selected("b") || s.Selected("a") {
		t.Errorf("value = %v, want [b]", s.Value())
	}
}

// TestStore_ControlledValue verifies the controlled-state contract for
// the selection.
func TestStore_ControlledValue(t *testing.T) {
	value := []string{"a"}
	s := newListbox(t, Options{Value: &value}, "a", "b")

	s.Select("b")

	if got := s.Value(); !equalValues(got, "a") {
		t.Errorf("controlled value without setter moved to %v", got)
	}
}

// TestStore_SetValueOnMove verifies navigation-driven selection.
func TestStore_SetValueOnMove(t *testing.T) {
	s := newListbox(t, Options{SetValueOnMove: true}, "a", "b")

	s.Move(composite.ID("b"))

	if got := s.Value(); !equalValues(got, "b") {
		t.Errorf("value after move = %v, want [b]", got)
	}
}

// TestStore_SetValueOnMove_MultipleIgnored verifies the policy is
// single-select only.
func TestStore_SetValueOnMove_MultipleIgnored(t *testing.T) {
	s := newListbox(t, Options{SetValueOnMove: true, Multiple: true}, "a", "b")
	s.Select("a")

	s.Move(composite.ID("b"))

	if got := s.Value(); !equalValues(got, "a") {
		t.Errorf("multi-select value changed on move: %v", got)
	}
}

// TestStore_Open_FocusesSelectedItem verifies navigation resumes from the
// selection when the popup opens.
func TestStore_Open_FocusesSelectedItem(t *testing.T) {
	s := newListbox(t, Options{DefaultValue: []string{"b"}}, "a", "b", "c")

	s.Show()

	if got := s.Active(); got != composite.ID("b") {
		t.Errorf("active after open = %v, want b", got)
	}
	if got := s.Next(); got != composite.ID("c") {
		t.Errorf("Next() after open = %v, want c", got)
	}
}

// TestStore_ShowHide_SharesDisclosureState verifies the popup wiring.
func TestStore_ShowHide_SharesDisclosureState(t *testing.T) {
	s := newListbox(t, Options{}, "a")

	if s.Open() {
		t.Fatal("listbox should start closed")
	}
	s.Show()
	if !s.Open() || !s.Popover().Open() {
		t.Error("Show should open both views of the disclosure state")
	}
	s.Hide()
	if s.Open() {
		t.Error("Hide should close")
	}
}

// TestStore_NavigationAndSelectionCompose verifies the full flow: open,
// navigate, select.
func TestStore_NavigationAndSelectionCompose(t *testing.T) {
	s := newListbox(t, Options{}, "a", "b", "c")
	s.Show()

	s.Move(s.First())
	s.Move(s.Next())
	if id, ok := s.Active().Item(); !ok {
		t.Fatal("active should be an item after moves")
	} else {
		s.Select(id)
	}

	if got := s.Value(); !equalValues(got, "b") {
		t.Errorf("value = %v, want [b]", got)
	}
	if got := s.Moves(); got != 2 {
		t.Errorf("moves = %d, want 2", got)
	}
}
