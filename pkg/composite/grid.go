package composite

import "strconv"

// groupByRows splits items into rows by RowID. A row is the run of items
// sharing a RowID, in registration order; items with an empty RowID form
// a single implicit row.
func groupByRows(items []Item) [][]Item {
	var rows [][]Item
	for _, item := range items {
		placed := false
		for i, row := range rows {
			if row[0].RowID == item.RowID {
				rows[i] = append(rows[i], item)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, []Item{item})
		}
	}
	return rows
}

// normalizeRows pads every row to the length of the longest one so column
// indexes line up across rows. Missing cells become disabled placeholders.
// With shift enabled, a missing or disabled cell is instead backfilled
// with the nearest enabled item to its left (or the row's first enabled
// item for the leading cell), unless that item is already active.
func normalizeRows(rows [][]Item, active ActiveID, shift bool) [][]Item {
	maxLen := maxRowLength(rows)
	activeID, _ := active.Item()

	out := make([][]Item, len(rows))
	for r, row := range rows {
		next := make([]Item, maxLen)
		for i := 0; i < maxLen; i++ {
			var cur Item
			has := i < len(row)
			if has {
				cur = row[i]
			}
			if has && !(shift && cur.Disabled) {
				next[i] = cur
				continue
			}

			var prev Item
			prevOK := false
			if i == 0 {
				if shift {
					prev, prevOK = findFirstEnabled(row, "")
				}
			} else {
				prev, prevOK = next[i-1], true
			}

			if prevOK && shift && !prev.Disabled && prev.ID != placeholderID && prev.ID != activeID {
				next[i] = prev
				continue
			}
			rowID := ""
			if prevOK {
				rowID = prev.RowID
			} else if len(row) > 0 {
				rowID = row[0].RowID
			}
			next[i] = placeholderItem(rowID)
		}
		out[r] = next
	}
	return out
}

// verticalize transposes a grid into column-major order so the linear
// next/previous walk moves down a column. RowID is rewritten to the
// column index, making each column a "row" for the traversal; items with
// no RowID keep none, so a plain vertical list degrades to the linear
// walk.
func verticalize(items []Item) []Item {
	rows := groupByRows(items)
	maxLen := maxRowLength(rows)
	out := make([]Item, 0, len(items))
	for i := 0; i < maxLen; i++ {
		for _, row := range rows {
			if i >= len(row) {
				continue
			}
			item := row[i]
			if item.RowID != "" {
				item.RowID = strconv.Itoa(i)
			}
			out = append(out, item)
		}
	}
	return out
}

func flatten(rows [][]Item) []Item {
	n := 0
	for _, row := range rows {
		n += len(row)
	}
	out := make([]Item, 0, n)
	for _, row := range rows {
		out = append(out, row...)
	}
	return out
}

func maxRowLength(rows [][]Item) int {
	max := 0
	for _, row := range rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}
