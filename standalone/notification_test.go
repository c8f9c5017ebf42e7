package standalone

import (
	"testing"
	"time"
)

func TestNotificationVisibility(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		duration time.Duration
		want     bool
	}{
		{"visible", "Added to favorites", time.Hour, true},
		{"expired", "Added to favorites", 0, false},
		{"empty message", "", time.Hour, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := NewNotification()
			n.Show(tc.message, tc.duration)
			if got := n.IsVisible(); got != tc.want {
				t.Errorf("IsVisible() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNotificationReplaceAndClear(t *testing.T) {
	n := NewNotification()
	n.ShowDefault("first")
	n.ShowDefault("second")
	if got := n.Message(); got != "second" {
		t.Errorf("Message() = %q, want second", got)
	}

	n.Clear()
	if n.IsVisible() {
		t.Error("should not be visible after Clear")
	}
}
