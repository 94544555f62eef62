package composite

import "github.com/go-aria/aria/pkg/collection"

// Item is a collection item that can additionally belong to a row. Rows
// are not separate entities; they are derived on demand from RowID
// equality, in registration order.
type Item struct {
	collection.Base
	// RowID groups the item into a row for two-dimensional navigation.
	// Empty means the composite is (locally) one-dimensional.
	RowID string
}

// ItemUpdate is a partial update to an Item. The embedded collection
// patch covers element and disabled state; RowID follows the same
// convention: nil means unchanged, a pointer to the empty string clears
// the row assignment.
type ItemUpdate struct {
	collection.ItemUpdate
	RowID *string
}

// Apply returns a copy of the item with the update applied.
func (i Item) Apply(u ItemUpdate) Item {
	i.Base = i.Base.Apply(u.ItemUpdate)
	if u.RowID != nil {
		i.RowID = *u.RowID
	}
	return i
}

// mergeItems combines a re-registration with the existing entry: fields
// the new partial item omits keep their prior values.
func mergeItems(prev, next Item) Item {
	if next.Element == nil {
		next.Element = prev.Element
	}
	if next.RowID == "" {
		next.RowID = prev.RowID
	}
	return next
}

// placeholderID marks the disabled filler cells used to pad shorter rows
// so column indexes stay stable across rows of different lengths.
const placeholderID = "__placeholder__"

func placeholderItem(rowID string) Item {
	return Item{
		Base:  collection.Base{ID: placeholderID, Disabled: true},
		RowID: rowID,
	}
}

// nullItem is the in-list representation of the base-element stop. It is
// the only item with an empty id, and it is enabled so traversal can land
// on it.
var nullItem = Item{}
