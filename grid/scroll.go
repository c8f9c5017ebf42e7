package grid

// Scroll owns the scroll offset of the one scroll container the engine
// drives. Only the engine's command operations write it.
type Scroll struct {
	offset   int
	viewport int
	attached bool
}

// Offset returns the current scroll offset.
func (s *Scroll) Offset() int {
	return s.offset
}

// ViewportHeight returns the height of the attached container's view.
func (s *Scroll) ViewportHeight() int {
	return s.viewport
}

// Attached reports whether a container with a measured size is attached.
func (s *Scroll) Attached() bool {
	return s.attached
}

// Attach records the container's view height. A non-positive height
// detaches.
func (s *Scroll) Attach(viewportHeight int) {
	if viewportHeight <= 0 {
		s.Detach()
		return
	}
	s.viewport = viewportHeight
	s.attached = true
}

// Detach forgets the container. The offset is kept so a re-attached
// container resumes where it was.
func (s *Scroll) Detach() {
	s.viewport = 0
	s.attached = false
}

// MaxOffset returns the largest valid offset for content of the given height.
func (s *Scroll) MaxOffset(contentHeight int) int {
	return max(0, contentHeight-s.viewport)
}

// ScrollTo sets the offset, clamped to [0, MaxOffset(contentHeight)].
func (s *Scroll) ScrollTo(offset, contentHeight int) {
	s.offset = clamp(offset, 0, s.MaxOffset(contentHeight))
}

// Clamp pulls the offset back into range after the content height changed.
func (s *Scroll) Clamp(contentHeight int) {
	s.ScrollTo(s.offset, contentHeight)
}

// JumpToIndex positions the view so item i's row starts at the top, clamped
// to the valid scroll range. The jump is immediate; there is no animation.
// Returns false without moving when no container is attached or i is out of
// range.
func (s *Scroll) JumpToIndex(positions []Position, contentHeight, i int) bool {
	if !s.attached || i < 0 || i >= len(positions) {
		return false
	}
	s.ScrollTo(positions[i].Top, contentHeight)
	return true
}
