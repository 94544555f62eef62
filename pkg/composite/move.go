package composite

import "github.com/go-aria/aria/pkg/store"

// First returns the first enabled item in render order. RTL reverses the
// search for horizontal composites only.
func (s *Store) First() ActiveID {
	items := s.RenderedItems()
	if s.rtlHorizontal() {
		items = reversed(items)
	}
	return resultOf(findFirstEnabled(items, ""))
}

// Last returns the last enabled item in render order. RTL reverses the
// search for horizontal composites only.
func (s *Store) Last() ActiveID {
	items := reversed(s.RenderedItems())
	if s.rtlHorizontal() {
		items = reversed(items)
	}
	return resultOf(findFirstEnabled(items, ""))
}

// Next returns the candidate after the active position on the primary
// (row) axis.
func (s *Store) Next() ActiveID {
	return s.next(nil)
}

// NextBy jumps to the skip-th next enabled item within the current row,
// clamping to the last one when out of range. This backs End-key
// semantics: NextBy with a large skip lands on the row's last enabled
// item.
func (s *Store) NextBy(skip int) ActiveID {
	return s.next(&skip)
}

// Previous returns the candidate before the active position on the
// primary (row) axis.
func (s *Store) Previous() ActiveID {
	return s.previous(nil)
}

// PreviousBy jumps to the skip-th previous enabled item within the
// current row, clamping to the first one when out of range. This backs
// Home-key semantics.
func (s *Store) PreviousBy(skip int) ActiveID {
	return s.previous(&skip)
}

// Down returns the candidate below the active position on the secondary
// (column) axis.
func (s *Store) Down() ActiveID {
	return s.down(nil)
}

// DownBy jumps to the skip-th enabled item below within the current
// column, clamping like NextBy. A skip of zero still applies focus
// shifting; larger skips disable it.
func (s *Store) DownBy(skip int) ActiveID {
	return s.down(&skip)
}

// Up returns the candidate above the active position on the secondary
// (column) axis.
func (s *Store) Up() ActiveID {
	return s.up(nil)
}

// UpBy jumps to the skip-th enabled item above within the current
// column, clamping like PreviousBy.
func (s *Store) UpBy(skip int) ActiveID {
	return s.up(&skip)
}

func (s *Store) next(skip *int) ActiveID {
	return s.nextID(s.RenderedItems(), s.orientation(), false, skip)
}

func (s *Store) previous(skip *int) ActiveID {
	items := s.RenderedItems()
	// On grids, moving backwards on the row axis never stops on the
	// base element; only vertical traversal does.
	isGrid := false
	if first, ok := findFirstEnabled(items, ""); ok {
		isGrid = first.RowID != ""
	}
	hasNullItem := !isGrid && s.includesBaseElement()
	return s.nextID(reversed(items), s.orientation(), hasNullItem, skip)
}

func (s *Store) down(skip *int) ActiveID {
	state := s.GetState()
	active := store.Get[ActiveID](state, KeyActiveID)
	shift := store.Get[bool](state, KeyFocusShift) && (skip == nil || *skip == 0)
	items := verticalize(flatten(normalizeRows(groupByRows(s.RenderedItems()), active, shift)))
	loop := store.Get[Loop](state, KeyFocusLoop)
	canLoop := loop != LoopNone && loop != LoopHorizontal
	// Moving down only stops on the base element when vertical looping
	// can bring focus back around.
	hasNullItem := canLoop && s.includesBaseElement()
	return s.nextID(items, OrientationVertical, hasNullItem, skip)
}

func (s *Store) up(skip *int) ActiveID {
	state := s.GetState()
	active := store.Get[ActiveID](state, KeyActiveID)
	shift := store.Get[bool](state, KeyFocusShift) && (skip == nil || *skip == 0)
	items := verticalize(reversed(flatten(normalizeRows(groupByRows(s.RenderedItems()), active, shift))))
	hasNullItem := s.includesBaseElement()
	return s.nextID(items, OrientationVertical, hasNullItem, skip)
}

// nextID is the single traversal routine behind every directional move.
// It walks items (already laid out in traversal order by the caller:
// forward, reversed, or verticalized) starting from the active position
// and picks the next enabled stop, honoring looping, grid wrapping, and
// the base-element stop.
func (s *Store) nextID(items []Item, orientation Orientation, hasNullItem bool, skip *int) ActiveID {
	state := s.GetState()
	active := store.Get[ActiveID](state, KeyActiveID)
	rtl := store.Get[bool](state, KeyRTL)
	loop := store.Get[Loop](state, KeyFocusLoop)
	wrap := store.Get[Wrap](state, KeyFocusWrap)
	includesBase := store.Get[bool](state, KeyIncludesBaseElement)

	// RTL never affects vertical traversal.
	if rtl && orientation != OrientationVertical {
		items = reversed(items)
	}

	// Nothing active, or the base element is active: the first enabled
	// item is next.
	activeID, isItem := active.Item()
	if !isItem {
		return resultOf(findFirstEnabled(items, ""))
	}
	activeIndex := indexByID(items, activeID)
	if activeIndex < 0 {
		return resultOf(findFirstEnabled(items, ""))
	}
	activeItem := items[activeIndex]
	isGrid := activeItem.RowID != ""
	nextItems := items[activeIndex+1:]
	nextItemsInRow := itemsInRow(nextItems, activeItem.RowID)

	// Home/End path: jump within the current row, clamping to its end.
	if skip != nil {
		enabled := enabledItems(nextItemsInRow, activeID)
		if len(enabled) == 0 {
			return None()
		}
		idx := *skip
		if idx < 0 {
			idx = 0
		}
		if idx >= len(enabled) {
			idx = len(enabled) - 1
		}
		return ID(enabled[idx].ID)
	}

	// On a grid, an unset orientation means this is a horizontal move.
	effective := orientation
	if isGrid && effective == OrientationBoth {
		effective = OrientationHorizontal
	}
	opposite := oppositeOrientation(effective)
	canLoop := loop != LoopNone && string(loop) != string(opposite)
	canWrap := isGrid && wrap != WrapNone && string(wrap) != string(opposite)

	// Forward moves only stop on the base element when looping can carry
	// focus past the end; backward and vertical callers decide upfront.
	hasNullItem = hasNullItem || (!isGrid && canLoop && includesBase)

	if canLoop {
		loopItems := itemsInRow(items, activeItem.RowID)
		if canWrap && !hasNullItem {
			loopItems = items
		}
		rotated := flip(loopItems, activeID, hasNullItem)
		return resultOf(findFirstEnabled(rotated, activeID))
	}

	if canWrap {
		// Wrapping continues into the following rows. With a base-element
		// stop pending, stay within the row so the container gets focus
		// before any wrap.
		pool := nextItems
		if hasNullItem {
			pool = nextItemsInRow
		}
		item, ok := findFirstEnabled(pool, activeID)
		if !ok && hasNullItem {
			return Base()
		}
		return resultOf(item, ok)
	}

	item, ok := findFirstEnabled(nextItemsInRow, activeID)
	if !ok && hasNullItem {
		return Base()
	}
	return resultOf(item, ok)
}

func (s *Store) orientation() Orientation {
	return store.Get[Orientation](s.GetState(), KeyOrientation)
}

func (s *Store) includesBaseElement() bool {
	return store.Get[bool](s.GetState(), KeyIncludesBaseElement)
}

func (s *Store) rtlHorizontal() bool {
	state := s.GetState()
	return store.Get[bool](state, KeyRTL) &&
		store.Get[Orientation](state, KeyOrientation) != OrientationVertical
}

// resultOf converts a lookup result to an ActiveID: missing means None,
// the empty-id null item means the base element.
func resultOf(item Item, ok bool) ActiveID {
	if !ok {
		return None()
	}
	return ID(item.ID)
}

// findFirstEnabled returns the first non-disabled item, skipping the item
// with the exclude id when exclude is non-empty.
func findFirstEnabled(items []Item, exclude string) (Item, bool) {
	for _, item := range items {
		if item.Disabled {
			continue
		}
		if exclude != "" && item.ID == exclude {
			continue
		}
		return item, true
	}
	return Item{}, false
}

func enabledItems(items []Item, exclude string) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Disabled {
			continue
		}
		if exclude != "" && item.ID == exclude {
			continue
		}
		out = append(out, item)
	}
	return out
}

func itemsInRow(items []Item, rowID string) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.RowID == rowID {
			out = append(out, item)
		}
	}
	return out
}

func indexByID(items []Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func reversed(items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}

// flip rotates items so traversal starts right after the active item and
// ends right before it, optionally inserting the base-element stop at the
// seam.
func flip(items []Item, activeID string, insertNull bool) []Item {
	idx := indexByID(items, activeID)
	out := make([]Item, 0, len(items)+1)
	out = append(out, items[idx+1:]...)
	if insertNull {
		out = append(out, nullItem)
	}
	out = append(out, items[:idx]...)
	return out
}

func oppositeOrientation(o Orientation) Orientation {
	switch o {
	case OrientationHorizontal:
		return OrientationVertical
	case OrientationVertical:
		return OrientationHorizontal
	default:
		return ""
	}
}
