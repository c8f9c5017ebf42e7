package grid

// Direction is a keyboard or gamepad navigation direction.
type Direction int

// Navigation directions
const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Neighbor returns the item reached from item i by moving one step in dir,
// or -1 at an edge. Rows are walked through the layout rather than by
// i±columns arithmetic, so open singleton rows and short rows are handled.
// Moving up or down keeps the column where the target row is wide enough
// and falls back to the row's last item otherwise.
func Neighbor(l *RowLayout, i int, dir Direction) int {
	r := l.RowOf(i)
	if r < 0 {
		return -1
	}
	row := l.Rows[r]
	col := l.ItemCol[i]

	switch dir {
	case DirLeft:
		if i > row.Start {
			return i - 1
		}
	case DirRight:
		if i+1 < row.End {
			return i + 1
		}
	case DirUp:
		if r > 0 {
			return columnIn(l.Rows[r-1], col)
		}
	case DirDown:
		if r+1 < l.RowCount() {
			return columnIn(l.Rows[r+1], col)
		}
	}
	return -1
}

func columnIn(row Row, col int) int {
	if row.Start+col < row.End {
		return row.Start + col
	}
	return row.End - 1
}
