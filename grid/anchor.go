package grid

// AnchorState is the phase of an open/close transition.
type AnchorState int

const (
	// AnchorClosed means nothing is open.
	AnchorClosed AnchorState = iota
	// AnchorOpening means an open was requested and the layout has not committed yet.
	AnchorOpening
	// AnchorOpen means at least one item is open and no transition is pending.
	AnchorOpen
	// AnchorSwitching means the open item is being replaced by another.
	AnchorSwitching
	// AnchorClosing means a close was requested and the layout has not committed yet.
	AnchorClosing
)

func (s AnchorState) String() string {
	switch s {
	case AnchorOpening:
		return "opening"
	case AnchorOpen:
		return "open"
	case AnchorSwitching:
		return "switching"
	case AnchorClosing:
		return "closing"
	default:
		return "closed"
	}
}

// ScrollAnchor is the scroll offset to return to when the open item closes.
type ScrollAnchor struct {
	Offset int
	// After is set when the offset was captured after the layout change
	// (a switch), so it is in open-row coordinates and needs compensating.
	After bool
	// Delta is openHeight - closedHeight, the space reclaimed by a collapse.
	Delta int
	Valid bool
}

// closeSnapshot is the geometry read just before a close mutates the open set.
type closeSnapshot struct {
	rowTop     int
	rowBottom  int
	viewTop    int
	viewBottom int
	mode       Mode
}

// AnchorController keeps the user's place across open, switch and close.
// Each transition has a Begin step, run before the open set changes, and a
// Finish step, run after the resulting layout has committed.
type AnchorController struct {
	state  AnchorState
	anchor ScrollAnchor
	snap   closeSnapshot
}

// State returns the current transition state.
func (c *AnchorController) State() AnchorState {
	return c.state
}

// Anchor returns the remembered anchor.
func (c *AnchorController) Anchor() ScrollAnchor {
	return c.anchor
}

// Reset drops any anchor and returns to AnchorClosed.
func (c *AnchorController) Reset() {
	c.state = AnchorClosed
	c.anchor = ScrollAnchor{}
}

// BeginOpen captures the pre-open scroll offset as the anchor.
func (c *AnchorController) BeginOpen(s *Scroll) {
	c.state = AnchorOpening
	c.anchor = ScrollAnchor{Offset: s.Offset(), Valid: true}
}

// BeginSwitch starts replacing the open item. The anchor is captured only
// once the jump to the new item has landed.
func (c *AnchorController) BeginSwitch() {
	c.state = AnchorSwitching
}

// FinishOpen brings the opened item at index item into view. For a switch it
// then captures the post-jump offset as the new anchor. item is -1 when the
// item vanished before the layout committed.
func (c *AnchorController) FinishOpen(l *RowLayout, positions []Position, s *Scroll, item int, anyOpen bool) {
	s.Clamp(l.ContainerHeight)
	if item >= 0 {
		s.JumpToIndex(positions, l.ContainerHeight, item)
	}

	delta := l.OpenHeight - l.ClosedHeight
	switch c.state {
	case AnchorSwitching:
		c.anchor = ScrollAnchor{Offset: s.Offset(), After: true, Delta: delta, Valid: true}
	case AnchorOpening:
		c.anchor.Delta = delta
	}

	if anyOpen {
		c.state = AnchorOpen
	} else {
		c.Reset()
	}
}

// BeginClose records where the open row of item sits relative to the view,
// in the coordinates of the layout about to be replaced.
func (c *AnchorController) BeginClose(l *RowLayout, s *Scroll, item int, mode Mode) {
	c.state = AnchorClosing
	c.snap = closeSnapshot{
		viewTop:    s.Offset(),
		viewBottom: s.Offset() + s.ViewportHeight(),
		mode:       mode,
	}
	if r := l.RowOf(item); r >= 0 {
		c.snap.rowTop = l.RowTop[r]
		c.snap.rowBottom = l.RowBottom(r)
	}
}

// FinishClose repositions the view after the collapsed layout committed.
//
// If the open row started above the view, the view snaps to the collapsed
// row (list) or to the row before it less one gap (grid). If the collapsed
// row now reaches past the bottom of the old view, the old view top is kept.
// Otherwise the anchor is restored; without one the offset is only clamped.
func (c *AnchorController) FinishClose(l *RowLayout, s *Scroll, item int, anyOpen bool) {
	target := s.Offset()
	r := l.RowOf(item)

	switch {
	case r < 0 || !s.Attached():
	case c.snap.rowTop < c.snap.viewTop:
		target = l.RowTop[r]
		if c.snap.mode == ModeGrid {
			target = 0
			if r > 0 {
				target = l.RowTop[r-1] - l.Gap
			}
		}
	case l.RowBottom(r) > c.snap.viewBottom:
		target = c.snap.viewTop
	case c.anchor.Valid:
		target = c.restoreTarget(l.RowTop[r])
	}
	s.ScrollTo(target, l.ContainerHeight)

	// The anchor is spent; a later close without a new open skips restoring.
	c.anchor = ScrollAnchor{}
	if anyOpen {
		c.state = AnchorOpen
	} else {
		c.state = AnchorClosed
	}
}

// restoreTarget maps the anchor into the collapsed layout. Anchors taken
// before the open are already in collapsed coordinates. Anchors taken after
// a switch are shifted: unchanged above the row, moved to the row's new top
// inside it, and pulled up by Delta below it.
func (c *AnchorController) restoreTarget(newRowTop int) int {
	a := c.anchor
	if !a.After {
		return a.Offset
	}
	switch {
	case a.Offset < c.snap.rowTop:
		return a.Offset
	case a.Offset < c.snap.rowBottom:
		return newRowTop
	default:
		return a.Offset - a.Delta
	}
}
