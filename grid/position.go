package grid

import "image"

// Position is the top-left pixel offset of an item inside the scroll content.
type Position struct {
	Left int
	Top  int
}

// ProjectPositions converts each item's row and column into pixel offsets.
// Items in open rows, and every item in list mode, span the full width and
// sit at Left 0.
func ProjectPositions(l *RowLayout, p LayoutParams) []Position {
	n := l.ItemCount()
	out := make([]Position, n)
	stride := nonNeg(p.CardWidth) + nonNeg(p.Gap)
	padding := nonNeg(p.Padding)
	for i := 0; i < n; i++ {
		r := l.ItemRow[i]
		if r >= len(l.Rows) {
			continue
		}
		left := padding + l.ItemCol[i]*stride
		if p.Mode == ModeList || l.Rows[r].Open {
			left = 0
		}
		out[i] = Position{Left: left, Top: l.RowTop[r]}
	}
	return out
}

// ItemBounds returns the content-space rectangle of item i. width is the
// content width used for full-width rows. Returns an empty rectangle when i
// is out of range.
func ItemBounds(l *RowLayout, positions []Position, p LayoutParams, width, i int) image.Rectangle {
	if i < 0 || i >= len(positions) || i >= l.ItemCount() {
		return image.Rectangle{}
	}
	r := l.ItemRow[i]
	pos := positions[i]
	w := nonNeg(p.CardWidth)
	if p.Mode == ModeList || l.Rows[r].Open {
		w = nonNeg(width)
	}
	return image.Rect(pos.Left, pos.Top, pos.Left+w, pos.Top+l.RowHeight[r])
}

// ItemAt returns the item whose bounds contain the content-space point
// (x, y), or -1 if the point falls in padding or a gap. Only the row under y
// is inspected.
func ItemAt(l *RowLayout, positions []Position, p LayoutParams, width, x, y int) int {
	r := rowAtOffset(l, y)
	if r < 0 || y < l.RowTop[r] {
		return -1
	}
	row := l.Rows[r]
	for i := row.Start; i < row.End; i++ {
		if (image.Point{X: x, Y: y}).In(ItemBounds(l, positions, p, width, i)) {
			return i
		}
	}
	return -1
}
