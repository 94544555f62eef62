// Package tui adapts the aria stores to terminal user interfaces built
// with bubbletea: cell-geometry elements for visual ordering, a key map
// routing key messages to composite navigation, lipgloss view helpers,
// and a dispatcher bridging scheduler callbacks into a program's update
// loop.
package tui

import "github.com/go-aria/aria/pkg/collection"

// CellElement locates an item in the terminal grid. It implements
// collection.Element, so collections reconcile rendered order by row
// then column.
type CellElement struct {
	Row int
	Col int
}

// Before orders cells top-to-bottom, then left-to-right.
func (c CellElement) Before(other collection.Element) bool {
	o, ok := other.(CellElement)
	if !ok {
		return false
	}
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}
