// Package tab implements the tabs store: a horizontal, looping composite
// with a selected tab and an associated collection of panels.
package tab

import (
	"github.com/go-aria/aria/pkg/collection"
	"github.com/go-aria/aria/pkg/composite"
	"github.com/go-aria/aria/pkg/store"
)

// State keys exposed by tab stores, in addition to the composite keys.
const (
	// KeySelectedID holds the selected tab id (string, empty when no tab
	// is selected yet).
	KeySelectedID = "selectedID"
)

// Panel associates panel content with a tab.
type Panel struct {
	collection.Base
	// TabID is the id of the tab controlling this panel.
	TabID string
}

// Options configures a tab store.
type Options struct {
	// Composite configures the underlying navigation store. Its Store
	// field is overridden; orientation defaults to horizontal and
	// focusLoop to both, the conventional tablist behavior.
	Composite composite.Options

	// SelectedID makes the selected tab controlled.
	SelectedID *string
	// SetSelectedID observes every committed selection change.
	SetSelectedID func(string)
	// DefaultSelectedID is the uncontrolled initial selection. Empty
	// selects the first enabled tab once tabs render.
	DefaultSelectedID string

	// SelectOnMove selects tabs as focus moves across them (automatic
	// activation). Nil defaults to true; manual activation passes an
	// explicit false.
	SelectOnMove *bool
}

// Store is the tabs store.
type Store struct {
	*composite.Store
	panels       *collection.Store[Panel]
	selectOnMove bool
}

// New creates a tab store.
func New(opts Options) *Store {
	tabStore := store.Compose(opts.Composite.Store, store.State{
		KeySelectedID: store.DefaultValue(opts.SelectedID, opts.DefaultSelectedID),
	})
	store.BindControlled(tabStore, KeySelectedID, opts.SelectedID != nil, opts.SetSelectedID)

	compOpts := opts.Composite
	compOpts.Store = tabStore
	if compOpts.Orientation == "" {
		compOpts.Orientation = composite.OrientationHorizontal
	}
	if compOpts.FocusLoop == composite.LoopNone {
		compOpts.FocusLoop = composite.LoopBoth
	}
	cs := composite.New(compOpts)

	panels := collection.New(collection.Options[Panel]{Clock: opts.Composite.Clock})
	cs.OnDispose(panels.Dispose)

	selectOnMove := true
	if opts.SelectOnMove != nil {
		selectOnMove = *opts.SelectOnMove
	}

	s := &Store{Store: cs, panels: panels, selectOnMove: selectOnMove}

	if selectOnMove {
		cs.Subscribe(s.selectActive, composite.KeyMoves)
	}
	// No selection yet: the first enabled tab to render becomes selected.
	cs.Subscribe(s.selectFirst, collection.KeyRenderedItems)

	return s
}

// Panels returns the panel collection.
func (s *Store) Panels() *collection.Store[Panel] {
	return s.panels
}

// RegisterPanel adds a panel to the panel collection.
func (s *Store) RegisterPanel(p Panel) func() {
	return s.panels.RegisterItem(p)
}

// PanelForTab returns the panel associated with the tab id.
func (s *Store) PanelForTab(tabID string) (Panel, bool) {
	for _, p := range s.panels.Items() {
		if p.TabID == tabID {
			return p, true
		}
	}
	return Panel{}, false
}

// SelectedID returns the selected tab id, empty when none.
func (s *Store) SelectedID() string {
	return store.Get[string](s.GetState(), KeySelectedID)
}

// SetSelectedID sets the selected tab without moving focus.
func (s *Store) SetSelectedID(id string) {
	s.SetState(KeySelectedID, id)
}

// SelectedPanel returns the panel of the selected tab.
func (s *Store) SelectedPanel() (Panel, bool) {
	id := s.SelectedID()
	if id == "" {
		return Panel{}, false
	}
	return s.PanelForTab(id)
}

// SelectOnMove reports whether moving focus selects tabs.
func (s *Store) SelectOnMove() bool {
	return s.selectOnMove
}

// Select moves focus to the tab and selects it.
func (s *Store) Select(id string) {
	s.Move(composite.ID(id))
	s.SetSelectedID(id)
}

func (s *Store) selectActive(next, prev store.State) {
	active := store.Get[composite.ActiveID](next, composite.KeyActiveID)
	if id, ok := active.Item(); ok {
		s.SetSelectedID(id)
	}
}

// selectFirst keeps the selection valid: no selection picks the first
// enabled rendered tab, and a selection whose tab unmounted is replaced
// the same way.
func (s *Store) selectFirst(next, prev store.State) {
	current := store.Get[string](next, KeySelectedID)
	rendered := store.Get[[]composite.Item](next, collection.KeyRenderedItems)
	if current != "" {
		for _, item := range rendered {
			if item.ID == current {
				return
			}
		}
		if len(rendered) == 0 {
			return
		}
	}
	for _, item := range rendered {
		if !item.Disabled {
			s.SetSelectedID(item.ID)
			return
		}
	}
}
