package grid

import "testing"

func TestScrollClamp(t *testing.T) {
	var s Scroll
	s.Attach(400)

	tests := []struct {
		name   string
		offset int
		want   int
	}{
		{"negative", -50, 0},
		{"inside", 300, 300},
		{"past end", 5000, 600},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.ScrollTo(tc.offset, 1000)
			if s.Offset() != tc.want {
				t.Errorf("Offset = %d, want %d", s.Offset(), tc.want)
			}
		})
	}

	s.ScrollTo(600, 1000)
	s.Clamp(700)
	if s.Offset() != 300 {
		t.Errorf("after shrinking content Offset = %d, want 300", s.Offset())
	}
}

func TestScrollShortContent(t *testing.T) {
	var s Scroll
	s.Attach(400)
	s.ScrollTo(100, 200)
	if s.Offset() != 0 || s.MaxOffset(200) != 0 {
		t.Errorf("Offset = %d MaxOffset = %d, want 0 0", s.Offset(), s.MaxOffset(200))
	}
}

func TestJumpToIndex(t *testing.T) {
	positions := []Position{{0, 16}, {0, 176}, {0, 900}}

	var detached Scroll
	if detached.JumpToIndex(positions, 1000, 1) {
		t.Error("JumpToIndex succeeded without a container")
	}

	var s Scroll
	s.Attach(400)
	tests := []struct {
		name string
		i    int
		ok   bool
		want int
	}{
		{"row top", 1, true, 176},
		{"clamped to max", 2, true, 600},
		{"negative index", -1, false, 600},
		{"past end", 3, false, 600},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if ok := s.JumpToIndex(positions, 1000, tc.i); ok != tc.ok {
				t.Errorf("JumpToIndex(%d) = %v, want %v", tc.i, ok, tc.ok)
			}
			if s.Offset() != tc.want {
				t.Errorf("Offset = %d, want %d", s.Offset(), tc.want)
			}
		})
	}
}

func TestAttachDetach(t *testing.T) {
	var s Scroll
	s.Attach(0)
	if s.Attached() {
		t.Error("zero height attached")
	}
	s.Attach(300)
	s.ScrollTo(120, 1000)
	s.Detach()
	if s.Attached() || s.ViewportHeight() != 0 {
		t.Error("Detach left the container attached")
	}
	if s.Offset() != 120 {
		t.Errorf("Detach changed Offset to %d", s.Offset())
	}
}
