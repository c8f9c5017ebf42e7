package screens

import "github.com/user-none/libview/standalone/style"

// listColumns holds the pixel widths of the list view columns.
type listColumns struct {
	Favorite   int
	Title      int
	Genre      int
	Region     int
	PlayTime   int
	LastPlayed int
}

// listColumnCount is the number of list view columns; padding is one
// SmallSpacing between columns plus one on each side.
const listColumnCount = 6

// computeListColumns fits the list view columns into availableWidth. The
// fixed columns keep their preferred widths when there is room, shrink
// toward their header widths when there is not, and the title takes the rest
// (never less than ListMinTitleWidth).
func computeListColumns(availableWidth int) listColumns {
	overhead := (listColumnCount-1)*style.SmallSpacing + 2*style.SmallSpacing

	pref := listColumns{
		Favorite:   style.ListColFavorite,
		Genre:      style.ListColGenre,
		Region:     style.ListColRegion,
		PlayTime:   style.ListColPlayTime,
		LastPlayed: style.ListColLastPlayed,
	}
	// The favorite column has no header text, so it never shrinks.
	minimum := listColumns{
		Favorite:   pref.Favorite,
		Genre:      headerWidth("Genre"),
		Region:     headerWidth("Region"),
		PlayTime:   headerWidth("Play Time"),
		LastPlayed: headerWidth("Last Played"),
	}

	cols := pref
	maxFixed := availableWidth - overhead - style.ListMinTitleWidth
	totalPref := pref.fixed()
	if totalPref > maxFixed && maxFixed > 0 {
		totalMin := minimum.fixed()
		cols = minimum
		if totalMin < maxFixed && totalPref > totalMin {
			// Hand out the space above the minimums in proportion to the
			// preferred extra of each column.
			extra := maxFixed - totalMin
			span := totalPref - totalMin
			cols.Genre += (pref.Genre - minimum.Genre) * extra / span
			cols.Region += (pref.Region - minimum.Region) * extra / span
			cols.PlayTime += (pref.PlayTime - minimum.PlayTime) * extra / span
			cols.LastPlayed += (pref.LastPlayed - minimum.LastPlayed) * extra / span
		}
	}

	cols.Title = max(style.ListMinTitleWidth, availableWidth-overhead-cols.fixed())
	return cols
}

// fixed returns the total width of every column except the title.
func (c listColumns) fixed() int {
	return c.Favorite + c.Genre + c.Region + c.PlayTime + c.LastPlayed
}

// xOffsets returns the left edge of each column, in display order, relative
// to the row's left edge.
func (c listColumns) xOffsets() [listColumnCount]int {
	widths := [listColumnCount]int{c.Favorite, c.Title, c.Genre, c.Region, c.PlayTime, c.LastPlayed}
	var out [listColumnCount]int
	x := style.SmallSpacing
	for i, w := range widths {
		out[i] = x
		x += w + style.SmallSpacing
	}
	return out
}

// headerWidth is the narrowest a column can get: its header text plus a
// small gap.
func headerWidth(header string) int {
	return textWidth(header, *style.FontFace()) + style.SmallSpacing
}
