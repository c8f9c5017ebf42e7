package grid

import "testing"

func TestNeighbor(t *testing.T) {
	// Rows: [0 1 2 3] [4] [5 open] [6 7 8]
	l := BuildLayout(PartitionRows(makeItems(9), openIDs("5"), 4), 9, gridParams)

	tests := []struct {
		name string
		i    int
		dir  Direction
		want int
	}{
		{"right in row", 0, DirRight, 1},
		{"right at row end", 3, DirRight, -1},
		{"left at row start", 4, DirLeft, -1},
		{"left in row", 7, DirLeft, 6},
		{"down into short row", 2, DirDown, 4},
		{"down into open row", 4, DirDown, 5},
		{"down from open row", 5, DirDown, 6},
		{"up keeps column", 8, DirUp, 5},
		{"up from first row", 1, DirUp, -1},
		{"down from last row", 7, DirDown, -1},
		{"none", 3, DirNone, -1},
		{"out of range", 42, DirRight, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Neighbor(l, tc.i, tc.dir); got != tc.want {
				t.Errorf("Neighbor(%d, %v) = %d, want %d", tc.i, tc.dir, got, tc.want)
			}
		})
	}
}
