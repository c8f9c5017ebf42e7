package standalone

import "testing"

func TestNewSearchOverlay(t *testing.T) {
	s := NewSearchOverlay(nil)

	if s.IsVisible() {
		t.Error("should not be visible initially")
	}
	if s.IsActive() {
		t.Error("should not be active initially")
	}
}

func TestSearchOverlayActivate(t *testing.T) {
	s := NewSearchOverlay(nil)

	s.Activate()
	if !s.IsActive() {
		t.Error("should be active after Activate()")
	}
}

func TestSearchOverlayIsVisibleEmptyText(t *testing.T) {
	s := NewSearchOverlay(nil)
	s.text = ""

	if s.IsVisible() {
		t.Error("should not be visible with empty text")
	}
}

func TestSearchOverlayIsVisibleWithText(t *testing.T) {
	s := NewSearchOverlay(nil)
	s.text = "sonic"

	if !s.IsVisible() {
		t.Error("should be visible with non-empty text")
	}
}

func TestSearchOverlayClearResetsState(t *testing.T) {
	s := NewSearchOverlay(nil)
	s.text = "sonic"
	s.active = true

	s.Clear()

	if s.text != "" {
		t.Errorf("text should be empty after Clear, got %q", s.text)
	}
	if s.active {
		t.Error("should not be active after Clear")
	}
	if s.IsVisible() {
		t.Error("should not be visible after Clear")
	}
}

func TestSearchOverlayClearTriggersCallback(t *testing.T) {
	called := false
	var receivedText string
	s := NewSearchOverlay(func(text string) {
		called = true
		receivedText = text
	})
	s.text = "sonic"

	s.Clear()

	if !called {
		t.Error("onChanged callback should have been called")
	}
	if receivedText != "" {
		t.Errorf("callback should receive empty string, got %q", receivedText)
	}
}

func TestSearchOverlayClearNilCallback(t *testing.T) {
	s := NewSearchOverlay(nil)
	s.text = "test"

	// Should not panic
	s.Clear()
}

func TestSearchOverlayHandleInputWhenInactive(t *testing.T) {
	s := NewSearchOverlay(nil)
	s.active = false

	handled := s.HandleInput()
	if handled {
		t.Error("should return false when not active")
	}
}

func TestSearchOverlayEdit(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		typed     string
		backspace bool
		want      string
		changed   bool
	}{
		{"activation slash dropped", "", "/", false, "", false},
		{"slash kept mid-text", "a", "/b", false, "a/b", true},
		{"typing appends", "son", "ic", false, "sonic", true},
		{"backspace removes one rune", "café", "", true, "caf", true},
		{"backspace on empty", "", "", true, "", false},
		{"backspace then type", "sonix", "c", true, "sonic", true},
		{"nothing typed", "zelda", "", false, "zelda", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			s := NewSearchOverlay(func(string) { calls++ })
			s.text = tc.start
			s.edit(tc.typed, tc.backspace)
			if s.Text() != tc.want {
				t.Errorf("text = %q, want %q", s.Text(), tc.want)
			}
			if changed := calls > 0; changed != tc.changed {
				t.Errorf("onChanged called = %v, want %v", changed, tc.changed)
			}
			if calls > 1 {
				t.Errorf("onChanged called %d times, want at most 1", calls)
			}
		})
	}
}

func TestSanitizePaste(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Sonic", "Sonic"},
		{"Sonic\nthe Hedgehog", "Sonic"},
		{"Street\tFighter", "StreetFighter"},
		{"line\r\n", "line"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := sanitizePaste(tc.in); got != tc.want {
			t.Errorf("sanitizePaste(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
