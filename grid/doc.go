// Package grid is the windowed layout engine behind the library view.
//
// It partitions an already sorted and filtered item sequence into rows,
// projects those rows into pixel coordinates, works out which items must be
// mounted for the current scroll offset, and keeps the user's place when an
// item is expanded into a full-viewport row or collapsed again.
//
// Everything runs on the caller's goroutine. The host UI layer feeds inputs
// (items, container size, scroll samples, toggle requests) into an Engine and
// calls Tick once per display refresh; the Engine recomputes only what the
// changed inputs invalidate.
package grid

// Item is the part of a library entry the layout cares about.
type Item interface {
	// ItemID returns a stable, unique key for the item.
	ItemID() string
	// LetterBucket returns the single glyph the item is grouped under on the
	// alphabet rail, derived by the caller from the item's sort key.
	LetterBucket() string
}
