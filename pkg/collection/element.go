package collection

// Element is a handle to a rendered UI node. The collection never inspects
// geometry itself; it only needs the relative order of two handles to keep
// renderedItems in visual order.
type Element interface {
	// Before reports whether the element precedes other in visual order:
	// top-to-bottom, then left-to-right for LTR layouts. Directionality
	// concerns are handled above this layer.
	Before(other Element) bool
}

// Observer passively watches a rendered element and invokes changed when
// its visibility within the common ancestor changes (show/hide, scroll in
// or out of view). The collection uses it to re-trigger reconciliation
// without explicit reorder calls.
type Observer interface {
	Observe(el Element, changed func()) (cancel func())
}
