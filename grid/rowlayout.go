package grid

// Mode selects between the card grid and the one-item-per-row list.
type Mode int

const (
	// ModeGrid lays cards out in columns with a gap between rows.
	ModeGrid Mode = iota
	// ModeList puts one item per full-width row with no gap between rows.
	ModeList
)

// String returns the config name of the mode.
func (m Mode) String() string {
	if m == ModeList {
		return "list"
	}
	return "icon"
}

// ParseMode maps a config view mode to a Mode. Anything other than "list"
// is the grid.
func ParseMode(s string) Mode {
	if s == "list" {
		return ModeList
	}
	return ModeGrid
}

// LayoutParams are the pixel metrics a layout is built from.
type LayoutParams struct {
	Mode         Mode
	CardWidth    int
	Gap          int // horizontal gap between cards, and between rows in grid mode
	Padding      int // space before the first row, after the last, and left of the first card
	ClosedHeight int
	OpenHeight   int // height of an open row; raised to ClosedHeight if smaller
}

// RowGap returns the vertical gap between rows for the mode.
func (p LayoutParams) RowGap() int {
	if p.Mode == ModeList {
		return 0
	}
	return nonNeg(p.Gap)
}

func (p LayoutParams) closedHeight() int {
	return nonNeg(p.ClosedHeight)
}

func (p LayoutParams) openHeight() int {
	return max(p.closedHeight(), p.OpenHeight)
}

// RowLayout is the vertical geometry of a partitioned item sequence.
type RowLayout struct {
	Rows      []Row
	RowTop    []int
	RowHeight []int
	ItemRow   []int // row index of each item
	ItemCol   []int // position of each item within its row

	ContainerHeight int
	HasOpen         bool // at least one open row exists

	Gap          int // vertical gap between rows
	ClosedHeight int
	OpenHeight   int
}

// BuildLayout assigns each row a top offset and height in a single forward
// pass. n is the number of items the rows partition.
func BuildLayout(rows []Row, n int, p LayoutParams) *RowLayout {
	gap := p.RowGap()
	padding := nonNeg(p.Padding)
	l := &RowLayout{
		Rows:         rows,
		RowTop:       make([]int, len(rows)),
		RowHeight:    make([]int, len(rows)),
		ItemRow:      make([]int, n),
		ItemCol:      make([]int, n),
		Gap:          gap,
		ClosedHeight: p.closedHeight(),
		OpenHeight:   p.openHeight(),
	}

	if len(rows) == 0 {
		// Keep one closed row of height so the container never collapses.
		l.ContainerHeight = padding*2 + l.ClosedHeight
		return l
	}

	y := padding
	for r, row := range rows {
		h := l.ClosedHeight
		if row.Open {
			h = l.OpenHeight
			l.HasOpen = true
		}
		l.RowTop[r] = y
		l.RowHeight[r] = h
		y += h + gap

		for i := row.Start; i < row.End && i < n; i++ {
			l.ItemRow[i] = r
			l.ItemCol[i] = i - row.Start
		}
	}
	// Drop the trailing gap, close with padding.
	l.ContainerHeight = y - gap + padding
	return l
}

// RowCount returns the number of rows.
func (l *RowLayout) RowCount() int {
	return len(l.Rows)
}

// ItemCount returns the number of items laid out.
func (l *RowLayout) ItemCount() int {
	return len(l.ItemRow)
}

// RowBottom returns the offset just past the bottom edge of row r.
func (l *RowLayout) RowBottom(r int) int {
	return l.RowTop[r] + l.RowHeight[r]
}

// RowOf returns the row holding item i, or -1 if i is out of range.
func (l *RowLayout) RowOf(i int) int {
	if i < 0 || i >= len(l.ItemRow) {
		return -1
	}
	return l.ItemRow[i]
}

func nonNeg(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
