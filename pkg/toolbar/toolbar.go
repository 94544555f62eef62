// Package toolbar implements the toolbar store: a composite configured
// for the toolbar keyboard convention (horizontal, looping).
package toolbar

import "github.com/go-aria/aria/pkg/composite"

// Options configures a toolbar store.
type Options struct {
	// Composite configures the underlying navigation store. Orientation
	// defaults to horizontal and focusLoop to both.
	Composite composite.Options
}

// Store is the toolbar store.
type Store struct {
	*composite.Store
}

// New creates a toolbar store.
func New(opts Options) *Store {
	compOpts := opts.Composite
	if compOpts.Orientation == "" {
		compOpts.Orientation = composite.OrientationHorizontal
	}
	if compOpts.FocusLoop == composite.LoopNone {
		compOpts.FocusLoop = composite.LoopBoth
	}
	return &Store{Store: composite.New(compOpts)}
}
