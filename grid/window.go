package grid

import "sort"

// VisibleRange is the half-open slice [Start, End) of the item sequence that
// must be mounted.
type VisibleRange struct {
	Start int
	End   int
}

// Len returns the number of items in the range.
func (v VisibleRange) Len() int {
	return v.End - v.Start
}

// Contains reports whether item i is inside the range.
func (v VisibleRange) Contains(i int) bool {
	return i >= v.Start && i < v.End
}

// Viewport describes the visible window onto the scroll content.
type Viewport struct {
	Offset         int // scroll offset of the window's top edge
	Height         int
	OverscanTop    int
	OverscanBottom int
}

// ComputeVisibleRange returns the items whose rows intersect the viewport
// widened by its overscan margins. The result may include extra items but
// never misses a row that overlaps the half-open band [viewTop, viewBottom).
// Rows are half-open too, so a row whose top equals viewBottom, or whose
// bottom equals viewTop, only touches the band and is left out.
//
// columns is only used for the dense shortcut, taken when the layout has no
// open row and every row but the last is full.
func ComputeVisibleRange(l *RowLayout, vp Viewport, columns int) VisibleRange {
	n := l.ItemCount()
	if n == 0 || l.RowCount() == 0 {
		return VisibleRange{}
	}

	viewTop := max(0, vp.Offset-nonNeg(vp.OverscanTop))
	viewBottom := min(l.ContainerHeight, vp.Offset+nonNeg(vp.Height)+nonNeg(vp.OverscanBottom))

	rows := l.RowCount()
	startRow := sort.Search(rows, func(r int) bool {
		return l.RowBottom(r) > viewTop
	})
	endRow := startRow + sort.Search(rows-startRow, func(k int) bool {
		return l.RowTop[startRow+k] >= viewBottom
	})

	var start, end int
	switch {
	case startRow >= rows:
		start, end = n, n
	case endRow <= startRow:
		start = l.Rows[startRow].Start
		end = start
	case !l.HasOpen && columns > 0 && l.isDense(columns):
		start = startRow * columns
		end = endRow * columns
	default:
		start = l.Rows[startRow].Start
		end = l.Rows[endRow-1].End
	}

	return VisibleRange{Start: clamp(start, 0, n), End: clamp(end, 0, n)}
}

// isDense reports whether every row but the last holds exactly columns items,
// so row*columns arithmetic maps rows to item indices.
func (l *RowLayout) isDense(columns int) bool {
	for r := 0; r < len(l.Rows)-1; r++ {
		if l.Rows[r].Open || l.Rows[r].Len() != columns {
			return false
		}
	}
	return true
}

// rowAtOffset returns the first row whose bottom edge is below y, or -1.
func rowAtOffset(l *RowLayout, y int) int {
	rows := l.RowCount()
	r := sort.Search(rows, func(r int) bool {
		return l.RowBottom(r) > y
	})
	if r >= rows {
		return -1
	}
	return r
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
