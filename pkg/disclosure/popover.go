package disclosure

import (
	"github.com/go-aria/aria/pkg/collection"
	"github.com/go-aria/aria/pkg/store"
)

// Placement positions popover content relative to its anchor.
type Placement string

const (
	PlacementTop         Placement = "top"
	PlacementTopStart    Placement = "top-start"
	PlacementTopEnd      Placement = "top-end"
	PlacementBottom      Placement = "bottom"
	PlacementBottomStart Placement = "bottom-start"
	PlacementBottomEnd   Placement = "bottom-end"
	PlacementLeft        Placement = "left"
	PlacementRight       Placement = "right"
)

// State keys exposed by popover stores, in addition to the disclosure
// keys.
const (
	// KeyPlacement holds the requested Placement.
	KeyPlacement = "placement"
	// KeyAnchor holds the anchor element handle (collection.Element),
	// nil when the popover is not anchored.
	KeyAnchor = "anchor"
	// KeyGutter holds the spacing between anchor and content (int).
	KeyGutter = "gutter"
)

// PopoverOptions configures a popover store.
type PopoverOptions struct {
	// Options configures the underlying disclosure.
	Options
	// Placement defaults to PlacementBottom.
	Placement Placement
	// Anchor is the initial anchor element.
	Anchor collection.Element
	// Gutter is the spacing between anchor and content.
	Gutter int
}

// Popover is a disclosure whose content is positioned relative to an
// anchor.
type Popover struct {
	*Store
}

// NewPopover creates a popover store.
func NewPopover(opts PopoverOptions) *Popover {
	placement := opts.Placement
	if placement == "" {
		placement = PlacementBottom
	}
	base := New(Options{
		Store: store.Compose(opts.Options.Store, store.State{
			KeyPlacement: placement,
			KeyAnchor:    opts.Anchor,
			KeyGutter:    opts.Gutter,
		}),
		Open:        opts.Open,
		SetOpen:     opts.SetOpen,
		DefaultOpen: opts.DefaultOpen,
	})
	return &Popover{Store: base}
}

// Placement returns the requested placement.
func (p *Popover) Placement() Placement {
	return store.Get[Placement](p.GetState(), KeyPlacement)
}

// SetPlacement sets the requested placement.
func (p *Popover) SetPlacement(placement Placement) {
	p.SetState(KeyPlacement, placement)
}

// Anchor returns the anchor element, nil when unanchored.
func (p *Popover) Anchor() collection.Element {
	return store.Get[collection.Element](p.GetState(), KeyAnchor)
}

// SetAnchor sets the anchor element.
func (p *Popover) SetAnchor(el collection.Element) {
	p.SetState(KeyAnchor, el)
}

// Gutter returns the anchor-to-content spacing.
func (p *Popover) Gutter() int {
	return store.Get[int](p.GetState(), KeyGutter)
}
