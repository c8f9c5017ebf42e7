package grid

import (
	"reflect"
	"testing"
)

func letterItems(letters ...string) []Item {
	items := make([]Item, len(letters))
	for i, l := range letters {
		items[i] = testItem{id: l + string(rune('0'+i%10)), letter: l}
	}
	return items
}

func TestBuildRail(t *testing.T) {
	items := letterItems("#", "A", "A", "C", "C", "C", "Z")
	r := BuildRail(items, DefaultAlphabet)

	tests := []struct {
		letter string
		count  int
		first  int
	}{
		{"#", 1, 0},
		{"A", 2, 1},
		{"B", 0, -1},
		{"C", 3, 3},
		{"Z", 1, 6},
	}
	for _, tc := range tests {
		t.Run(tc.letter, func(t *testing.T) {
			if got := r.Count(tc.letter); got != tc.count {
				t.Errorf("Count = %d, want %d", got, tc.count)
			}
			if got := r.FirstIndex(tc.letter); got != tc.first {
				t.Errorf("FirstIndex = %d, want %d", got, tc.first)
			}
		})
	}

	counts := r.Counts()
	if len(counts) != len(DefaultAlphabet) {
		t.Errorf("Counts has %d letters, want %d", len(counts), len(DefaultAlphabet))
	}
	if c, ok := counts["B"]; !ok || c != 0 {
		t.Errorf("Counts[B] = %d, %v; want 0, true", c, ok)
	}

	if got, want := r.Populated(), []string{"#", "A", "C", "Z"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Populated = %v, want %v", got, want)
	}
	if r.Meaningful() {
		t.Error("rail with 4 letters reported meaningful")
	}
}

func TestRailMeaningful(t *testing.T) {
	items := letterItems(DefaultAlphabet[:MinRailLetters]...)
	if !BuildRail(items, DefaultAlphabet).Meaningful() {
		t.Errorf("rail with %d letters not meaningful", MinRailLetters)
	}
	if BuildRail(items[:MinRailLetters-1], DefaultAlphabet).Meaningful() {
		t.Errorf("rail with %d letters meaningful", MinRailLetters-1)
	}
}

func TestBuildRailEmpty(t *testing.T) {
	r := BuildRail(nil, DefaultAlphabet)
	for _, letter := range DefaultAlphabet {
		if r.Count(letter) != 0 {
			t.Errorf("Count(%q) = %d, want 0", letter, r.Count(letter))
		}
	}
	if len(r.Populated()) != 0 {
		t.Errorf("Populated = %v, want none", r.Populated())
	}
}

func TestActiveLetter(t *testing.T) {
	items := letterItems("A", "A", "B", "C", "D")
	tests := []struct {
		name string
		vr   VisibleRange
		want string
	}{
		{"middle", VisibleRange{0, 5}, "B"},
		{"tail", VisibleRange{3, 5}, "D"},
		{"single", VisibleRange{1, 2}, "A"},
		{"empty", VisibleRange{2, 2}, ""},
		{"out of range", VisibleRange{3, 9}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ActiveLetter(items, tc.vr); got != tc.want {
				t.Errorf("ActiveLetter = %q, want %q", got, tc.want)
			}
		})
	}
}
