package composite

// ActiveID identifies the active position of a composite widget. It is a
// three-valued type: a specific item, the composite's own base element, or
// none. The zero value is None.
//
// Base and None are distinct on purpose: Base means focus conceptually
// rests on the composite container itself (a real stop in the traversal
// when IncludesBaseElement is set), while None means nothing is active,
// as before the first render. Navigation functions return None when no
// valid candidate exists, which Move treats as "stay put".
type ActiveID struct {
	id   string
	kind activeKind
}

type activeKind uint8

const (
	activeNone activeKind = iota
	activeBase
	activeItem
)

// None returns the "nothing active" value.
func None() ActiveID {
	return ActiveID{}
}

// Base returns the value representing the composite container itself.
func Base() ActiveID {
	return ActiveID{kind: activeBase}
}

// ID returns the value for a specific item. An empty id maps to Base,
// matching the convention that the base stop carries no item id.
func ID(id string) ActiveID {
	if id == "" {
		return Base()
	}
	return ActiveID{id: id, kind: activeItem}
}

// IsNone reports whether nothing is active.
func (a ActiveID) IsNone() bool {
	return a.kind == activeNone
}

// IsBase reports whether the composite container itself is active.
func (a ActiveID) IsBase() bool {
	return a.kind == activeBase
}

// Item returns the item id. It reports false for None and Base.
func (a ActiveID) Item() (string, bool) {
	return a.id, a.kind == activeItem
}

func (a ActiveID) String() string {
	switch a.kind {
	case activeBase:
		return "<base>"
	case activeItem:
		return a.id
	default:
		return "<none>"
	}
}
