package grid

// ColumnsForWidth returns how many cards of at least minCard pixels fit in
// available pixels when separated by gap.
// Formula: columns = floor((available + gap) / (minCard + gap)), never below minCols.
func ColumnsForWidth(available, minCard, gap, minCols int) int {
	if minCols < 1 {
		minCols = 1
	}
	if minCard+gap <= 0 || available <= 0 {
		return minCols
	}
	columns := (available + gap) / (minCard + gap)
	if columns < minCols {
		columns = minCols
	}
	return columns
}

// CardWidthFor returns the card width that fills available exactly with the
// given column count.
// Formula: cardWidth = (available - (columns - 1) * gap) / columns
func CardWidthFor(available, columns, gap int) int {
	if columns < 1 {
		columns = 1
	}
	w := (available - (columns-1)*gap) / columns
	if w < 1 {
		w = 1
	}
	return w
}
