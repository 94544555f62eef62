package tab

import (
	"testing"

	"github.com/go-aria/aria/pkg/collection"
	"github.com/go-aria/aria/pkg/composite"
	ariatest "github.com/go-aria/aria/pkg/testing"
)

func newTabs(t *testing.T, opts Options, ids ...string) *Store {
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

// TestStore_FirstRenderedTabBecomesSelected verifies the default
// selection.
func TestStore_FirstRenderedTabBecomesSelected(t *testing.T) {
	s := newTabs(t, Options{}, "one", "two")

	if got := s.SelectedID(); got != "one" {
		t.Errorf("selectedID = %q, want one", got)
	}
}

// TestStore_DisabledTabNeverAutoSelected verifies the default selection
// skips disabled tabs.
func TestStore_DisabledTabNeverAutoSelected(t *testing.T) {
	s := New(Options{Composite: composite.Options{Clock: ariatest.NewFakeClock()}})
	s.RenderItem(composite.Item{Base: collection.Base{ID: "one", Disabled: true}})
	s.RenderItem(composite.Item{Base: collection.Base{ID: "two"}})

	if got := s.SelectedID(); got != "two" {
		t.Errorf("selectedID = %q, want two", got)
	}
}

// TestStore_SelectOnMove verifies automatic activation: moving focus
// selects.
func TestStore_SelectOnMove(t *testing.T) {
	s := newTabs(t, Options{}, "one", "two", "three")

	s.Move(s.First())
	s.Move(s.Next())

	if got := s.SelectedID(); got != "two" {
		t.Errorf("selectedID after moves = %q, want two", got)
	}
}

// TestStore_ManualActivation verifies SelectOnMove=false: focus moves
// without selecting until Select is called.
func TestStore_ManualActivation(t *testing.T) {
	manual := false
	s := newTabs(t, Options{SelectOnMove: &manual}, "one", "two")

	s.Move(composite.ID("two"))
	if got := s.SelectedID(); got != "one" {
		t.Fatalf("selectedID after move = %q, want still one", got)
	}

	s.Select("two")
	if got := s.SelectedID(); got != "two" {
		t.Errorf("selectedID after Select = %q, want two", got)
	}
	if got := s.Active(); got != composite.ID("two") {
		t.Errorf("active after Select = %v, want two", got)
	}
}

// TestStore_LoopsByDefault verifies the tablist keyboard convention:
// Next past the last tab wraps to the first.
func TestStore_LoopsByDefault(t *testing.T) {
	s := newTabs(t, Options{}, "one", "two")
	s.SetActiveID(composite.ID("two"))

	if got := s.Next(); got != composite.ID("one") {
		t.Errorf("Next() from last tab = %v, want one", got)
	}
}

// TestStore_SelectedTabUnmount_Reselects verifies selection self-healing.
func TestStore_SelectedTabUnmount_Reselects(t *testing.T) {
	s := newTabs(t, Options{}, "one")
	unrender := s.RenderItem(composite.Item{Base: collection.Base{ID: "two"}})
	s.Select("two")

	unrender()

	if got := s.SelectedID(); got != "one" {
		t.Errorf("selectedID after unmount = %q, want one", got)
	}
}

// TestStore_Panels_AssociateWithTabs verifies the panel collection.
func TestStore_Panels_AssociateWithTabs(t *testing.T) {
	s := newTabs(t, Options{}, "one", "two")
	s.RegisterPanel(Panel{Base: collection.Base{ID: "p1"}, TabID: "one"})
	unregister := s.RegisterPanel(Panel{Base: collection.Base{ID: "p2"}, TabID: "two"})

	panel, ok := s.SelectedPanel()
	if !ok || panel.ID != "p1" {
		t.Errorf("SelectedPanel = %v,%v, want p1", panel, ok)
	}

	s.Select("two")
	panel, ok = s.SelectedPanel()
	if !ok || panel.ID != "p2" {
		t.Errorf("SelectedPanel = %v,%v, want p2", panel, ok)
	}

	unregister()
	if _, ok := s.PanelForTab("two"); ok {
		t.Error("unregistered panel should not resolve")
	}
}

// TestStore_ControlledSelectedID verifies the controlled-state contract.
func TestStore_ControlledSelectedID(t *testing.T) {
	selected := "one"
	s := newTabs(t, Options{SelectedID: &selected}, "one", "two")

	s.Select("two")

	if got := s.SelectedID(); got != "one" {
		t.Errorf("controlled selectedID moved to %q", got)
	}
}
