package grid

import "testing"

func TestColumnsForWidth(t *testing.T) {
	tests := []struct {
		name      string
		available int
		minCard   int
		gap       int
		minCols   int
		want      int
	}{
		{"exact", 430, 100, 10, 1, 4},
		{"one short", 429, 100, 10, 1, 3},
		{"floor at minimum", 150, 100, 10, 2, 2},
		{"zero width", 0, 100, 10, 2, 2},
		{"zero card", 500, 0, 0, 1, 1},
		{"minimum below one", 50, 100, 10, 0, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ColumnsForWidth(tc.available, tc.minCard, tc.gap, tc.minCols)
			if got != tc.want {
				t.Errorf("ColumnsForWidth = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCardWidthFor(t *testing.T) {
	tests := []struct {
		available, columns, gap int
		want                    int
	}{
		{430, 4, 10, 100},
		{500, 4, 10, 117},
		{10, 4, 10, 1},
		{300, 0, 10, 300},
	}
	for _, tc := range tests {
		if got := CardWidthFor(tc.available, tc.columns, tc.gap); got != tc.want {
			t.Errorf("CardWidthFor(%d, %d, %d) = %d, want %d", tc.available, tc.columns, tc.gap, got, tc.want)
		}
	}
}
