// Package composite implements the directional-navigation state machine
// shared by every composite widget (select, combobox, toolbar, tabs,
// grids).
//
// A composite store tracks a collection of items, an active position, and
// the configuration that shapes movement: orientation, RTL, looping,
// grid wrapping, focus shifting, and whether the composite's own container
// counts as a stop. The movement primitives (Next, Previous, Up, Down,
// First, Last) are pure: they compute a candidate ActiveID from current
// state and cannot fail — when no valid candidate exists they return
// None, which Move treats as "stay put". Only Move commits a candidate
// and increments the moves counter, letting consumers distinguish focus
// caused by navigation from focus arriving by other means.
package composite

import (
	"github.com/go-aria/aria/pkg/collection"
	"github.com/go-aria/aria/pkg/schedule"
	"github.com/go-aria/aria/pkg/store"
)

// Orientation restricts which axes a composite navigates on. The UI layer
// gates key handling by orientation; the store itself stays permissive.
type Orientation string

const (
	// OrientationBoth permits both axes. This is the default.
	OrientationBoth Orientation = "both"
	// OrientationHorizontal navigates with Next/Previous only.
	OrientationHorizontal Orientation = "horizontal"
	// OrientationVertical navigates with Up/Down only.
	OrientationVertical Orientation = "vertical"
)

// Loop configures wrap-around at the ends of the item sequence.
type Loop string

const (
	// LoopNone stops at the ends.
	LoopNone Loop = ""
	// LoopHorizontal loops on the horizontal axis only.
	LoopHorizontal Loop = "horizontal"
	// LoopVertical loops on the vertical axis only.
	LoopVertical Loop = "vertical"
	// LoopBoth loops on both axes.
	LoopBoth Loop = "both"
)

// Wrap configures grid navigation continuing into the adjacent row or
// column instead of stopping at a row/column end. Wrapping is independent
// of looping and only applies to grids.
type Wrap string

const (
	// WrapNone stops at row/column ends.
	WrapNone Wrap = ""
	// WrapHorizontal continues into the next row on horizontal moves.
	WrapHorizontal Wrap = "horizontal"
	// WrapVertical continues into the next column on vertical moves.
	WrapVertical Wrap = "vertical"
	// WrapBoth continues on both axes.
	WrapBoth Wrap = "both"
)

// State keys exposed by composite stores, in addition to the collection
// keys.
const (
	KeyActiveID            = "activeID"
	KeyMoves               = "moves"
	KeyOrientation         = "orientation"
	KeyRTL                 = "rtl"
	KeyVirtualFocus        = "virtualFocus"
	KeyFocusLoop           = "focusLoop"
	KeyFocusWrap           = "focusWrap"
	KeyFocusShift          = "focusShift"
	KeyIncludesBaseElement = "includesBaseElement"
)

// Options configures a composite store.
type Options struct {
	// Items is the initial logical item list.
	Items []Item
	// Store, when non-nil, becomes the parent of the composite's
	// reactive store.
	Store *store.Store
	// Clock drives the collection's reconciliation scheduler.
	Clock schedule.Clock
	// Observer re-triggers reconciliation on visibility changes.
	Observer collection.Observer

	// ActiveID makes the active id controlled: the store starts at this
	// value and internal writes go through SetActiveID. Without a
	// SetActiveID callback, internal writes are dropped and the caller
	// owns every transition.
	ActiveID *ActiveID
	// SetActiveID observes every committed active id change.
	SetActiveID func(ActiveID)
	// DefaultActiveID is the uncontrolled initial active id. Nil means
	// none: navigation starts from the first enabled item. An explicit
	// Base() starts with the container active.
	DefaultActiveID *ActiveID

	// Orientation defaults to OrientationBoth.
	Orientation Orientation
	// RTL flips horizontal order. Vertical traversal is never affected.
	RTL bool
	// VirtualFocus keeps real focus on the composite container while the
	// active item is only marked active (aria-activedescendant style).
	VirtualFocus bool
	// FocusLoop enables wrap-around at the ends.
	FocusLoop Loop
	// FocusWrap lets grid navigation continue into the next row/column.
	FocusWrap Wrap
	// FocusShift shifts to the nearest enabled cell when moving into a
	// row whose cell at the target column is disabled or missing.
	FocusShift bool
	// IncludesBaseElement makes the composite container itself a valid
	// stop before/after the item sequence.
	IncludesBaseElement bool
	// Moves is the initial value of the moves counter.
	Moves int
}

// Store is the composite navigation store. It embeds the reactive store
// for state access and subscriptions and owns a collection store for item
// registration.
type Store struct {
	*store.Store
	collection *collection.Store[Item]
	pushActive func(ActiveID)
}

// New creates a composite store.
func New(opts Options) *Store {
	orientation := opts.Orientation
	if orientation == "" {
		orientation = OrientationBoth
	}

	col := collection.New(collection.Options[Item]{
		Items:    opts.Items,
		Store:    opts.Store,
		Clock:    opts.Clock,
		Observer: opts.Observer,
		Merge:    mergeItems,
	})

	var active ActiveID
	switch {
	case opts.ActiveID != nil:
		active = *opts.ActiveID
	case opts.DefaultActiveID != nil:
		active = *opts.DefaultActiveID
	default:
		active = None()
	}

	st := store.Compose(col.Store, store.State{
		KeyActiveID:            active,
		KeyMoves:               opts.Moves,
		KeyOrientation:         orientation,
		KeyRTL:                 opts.RTL,
		KeyVirtualFocus:        opts.VirtualFocus,
		KeyFocusLoop:           opts.FocusLoop,
		KeyFocusWrap:           opts.FocusWrap,
		KeyFocusShift:          opts.FocusShift,
		KeyIncludesBaseElement: opts.IncludesBaseElement,
	})
	st.OnDispose(col.Dispose)

	s := &Store{Store: st, collection: col}
	s.pushActive, _ = store.BindControlled(st, KeyActiveID, opts.ActiveID != nil, opts.SetActiveID)

	// Self-heal: when the active item unmounts, recompute the active id.
	st.Subscribe(s.heal, collection.KeyRenderedItems)

	return s
}

// Collection returns the underlying collection store.
func (s *Store) Collection() *collection.Store[Item] {
	return s.collection
}

// Items returns the logical item list.
func (s *Store) Items() []Item {
	return s.collection.Items()
}

// RenderedItems returns the rendered, visually ordered item list.
func (s *Store) RenderedItems() []Item {
	return s.collection.RenderedItems()
}

// Item looks up an item by id.
func (s *Store) Item(id string) (Item, bool) {
	return s.collection.Item(id)
}

// RegisterItem adds the item to the logical list. See collection.Store.
func (s *Store) RegisterItem(item Item) func() {
	return s.collection.RegisterItem(item)
}

// RenderItem adds the item to both lists. See collection.Store.
func (s *Store) RenderItem(item Item) func() {
	return s.collection.RenderItem(item)
}

// Active returns the current active position.
func (s *Store) Active() ActiveID {
	return store.Get[ActiveID](s.GetState(), KeyActiveID)
}

// Moves returns the number of committed moves.
func (s *Store) Moves() int {
	return store.Get[int](s.GetState(), KeyMoves)
}

// SetActiveID sets the active position without counting it as a move
// (focus arriving by hover, click, or external sync).
func (s *Store) SetActiveID(id ActiveID) {
	s.SetState(KeyActiveID, id)
}

// Move commits a candidate as the new active position and increments the
// moves counter. Moving to None is a no-op: nothing changes, including
// the counter. Moving to Base clears the active item and returns focus to
// the composite container.
func (s *Store) Move(id ActiveID) {
	if id.IsNone() {
		return
	}
	s.Batch(func() {
		s.SetState(KeyActiveID, id)
		s.Update(KeyMoves, func(prev any) any {
			return prev.(int) + 1
		})
	})
}

// heal recomputes the active id when the active item unmounts. Only
// removal from renderedItems invalidates the id: one that simply has not
// rendered yet survives. The replacement is the first enabled rendered
// item; when none exists the value is left alone.
func (s *Store) heal(next, prev store.State) {
	active := store.Get[ActiveID](next, KeyActiveID)
	id, ok := active.Item()
	if !ok {
		return
	}
	rendered := store.Get[[]Item](next, collection.KeyRenderedItems)
	if indexByID(rendered, id) >= 0 {
		return
	}
	if indexByID(store.Get[[]Item](prev, collection.KeyRenderedItems), id) < 0 {
		return
	}
	first, found := findFirstEnabled(rendered, "")
	if !found {
		return
	}
	s.SetState(KeyActiveID, ID(first.ID))
}
