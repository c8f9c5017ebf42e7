package grid

// Row is one visual row: the contiguous item indices [Start, End).
// An open row always holds exactly one item and spans the full width.
type Row struct {
	Start int
	End   int
	Open  bool
}

// Len returns the number of items in the row.
func (r Row) Len() int {
	return r.End - r.Start
}

// Indices returns the item indices in the row, in order.
func (r Row) Indices() []int {
	out := make([]int, 0, r.Len())
	for i := r.Start; i < r.End; i++ {
		out = append(out, i)
	}
	return out
}

// PartitionRows groups items into dense rows of at most columns items.
// Any item whose id satisfies isOpen gets a singleton open row of its own; a
// partially filled row pending before it is flushed first.
// Ids in the open set that are not in items are never consulted.
func PartitionRows(items []Item, isOpen func(id string) bool, columns int) []Row {
	if columns < 1 {
		columns = 1
	}
	if len(items) == 0 {
		return nil
	}

	rows := make([]Row, 0, len(items)/columns+1)
	pending := 0 // start of the pending dense row
	for i, item := range items {
		if isOpen != nil && isOpen(item.ItemID()) {
			if pending < i {
				rows = append(rows, Row{Start: pending, End: i})
			}
			rows = append(rows, Row{Start: i, End: i + 1, Open: true})
			pending = i + 1
			continue
		}
		if i+1-pending == columns {
			rows = append(rows, Row{Start: pending, End: i + 1})
			pending = i + 1
		}
	}
	if pending < len(items) {
		rows = append(rows, Row{Start: pending, End: len(items)})
	}
	return rows
}
