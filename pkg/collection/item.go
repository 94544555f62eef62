package collection

// Item is the constraint for collection entries. T is the concrete item
// type itself, so stores can hand items back without boxing.
type Item interface {
	// ItemID returns the stable unique id. Id equality determines item
	// identity; ids are never reused concurrently.
	ItemID() string
	// ItemElement returns the rendered UI handle, or nil before mount.
	ItemElement() Element
	// ItemDisabled reports whether the item is disabled.
	ItemDisabled() bool
}

// Base is the canonical collection item.
type Base struct {
	// ID is the stable unique id.
	ID string
	// Element is the rendered UI handle, nil before mount.
	Element Element
	// Disabled marks the item non-interactive.
	Disabled bool
}

func (b Base) ItemID() string       { return b.ID }
func (b Base) ItemElement() Element { return b.Element }
func (b Base) ItemDisabled() bool   { return b.Disabled }

// ItemUpdate is a partial update to a Base. Nil pointer fields mean
// "unchanged"; explicit clear flags distinguish "not provided" from
// "explicitly cleared".
type ItemUpdate struct {
	// Element replaces the UI handle when non-nil.
	Element Element
	// ClearElement removes the UI handle. Takes precedence over Element.
	ClearElement bool
	// Disabled replaces the disabled flag when non-nil.
	Disabled *bool
}

// Apply returns a copy of b with the update applied.
func (b Base) Apply(u ItemUpdate) Base {
	if u.ClearElement {
		b.Element = nil
	} else if u.Element != nil {
		b.Element = u.Element
	}
	if u.Disabled != nil {
		b.Disabled = *u.Disabled
	}
	return b
}
