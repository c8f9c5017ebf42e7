package grid

import "testing"

// bruteRange lists the items whose rows intersect [top, bottom).
func bruteRange(l *RowLayout, top, bottom int) map[int]bool {
	out := make(map[int]bool)
	for r, row := range l.Rows {
		if l.RowBottom(r) > top && l.RowTop[r] < bottom {
			for _, i := range row.Indices() {
				out[i] = true
			}
		}
	}
	return out
}

func TestComputeVisibleRangeTop(t *testing.T) {
	l := BuildLayout(PartitionRows(makeItems(37), nil, 4), 37, gridParams)

	vr := ComputeVisibleRange(l, Viewport{Offset: 0, Height: 400}, 4)
	// Rows at 16, 176, 336 intersect [0, 400); the row at 496 does not.
	if vr != (VisibleRange{0, 12}) {
		t.Errorf("got %+v, want {0 12}", vr)
	}

	vr = ComputeVisibleRange(l, Viewport{Offset: 0, Height: 400, OverscanBottom: 100}, 4)
	if vr != (VisibleRange{0, 16}) {
		t.Errorf("with overscan got %+v, want {0 16}", vr)
	}
}

func TestComputeVisibleRangeEdges(t *testing.T) {
	l := BuildLayout(PartitionRows(makeItems(37), nil, 4), 37, gridParams)

	// Row r spans [16+160r, 166+160r).
	tests := []struct {
		name string
		vp   Viewport
		want VisibleRange
	}{
		{"row top at viewBottom excluded", Viewport{Offset: 0, Height: 496}, VisibleRange{0, 12}},
		{"row top one pixel above viewBottom", Viewport{Offset: 0, Height: 497}, VisibleRange{0, 16}},
		{"row bottom at viewTop excluded", Viewport{Offset: 166, Height: 100}, VisibleRange{4, 8}},
		{"row bottom one pixel below viewTop", Viewport{Offset: 165, Height: 100}, VisibleRange{0, 8}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if vr := ComputeVisibleRange(l, tc.vp, 4); vr != tc.want {
				t.Errorf("got %+v, want %+v", vr, tc.want)
			}
		})
	}
}

func TestComputeVisibleRangeEmpty(t *testing.T) {
	l := BuildLayout(nil, 0, gridParams)
	if vr := ComputeVisibleRange(l, Viewport{Height: 400}, 4); vr != (VisibleRange{}) {
		t.Errorf("got %+v, want {0 0}", vr)
	}
}

func TestComputeVisibleRangeCoversIntersectingRows(t *testing.T) {
	layouts := map[string]*RowLayout{
		"dense":    BuildLayout(PartitionRows(makeItems(37), nil, 4), 37, gridParams),
		"open":     BuildLayout(PartitionRows(makeItems(37), openIDs("10", "21"), 4), 37, gridParams),
		"list":     BuildLayout(PartitionRows(makeItems(30), openIDs("7"), 1), 30, LayoutParams{Mode: ModeList, Padding: 8, ClosedHeight: 40, OpenHeight: 300}),
		"overscan": BuildLayout(PartitionRows(makeItems(50), nil, 3), 50, gridParams),
	}

	for name, l := range layouts {
		t.Run(name, func(t *testing.T) {
			for offset := 0; offset <= l.ContainerHeight; offset += 7 {
				vp := Viewport{Offset: offset, Height: 250}
				if name == "overscan" {
					vp.OverscanTop, vp.OverscanBottom = 120, 200
				}
				vr := ComputeVisibleRange(l, vp, 4)
				top := max(0, offset-vp.OverscanTop)
				bottom := min(l.ContainerHeight, offset+vp.Height+vp.OverscanBottom)
				for i := range bruteRange(l, top, bottom) {
					if !vr.Contains(i) {
						t.Fatalf("offset %d: item %d intersects the view but range is %+v", offset, i, vr)
					}
				}
				if vr.Start < 0 || vr.End > l.ItemCount() || vr.Start > vr.End {
					t.Fatalf("offset %d: invalid range %+v", offset, vr)
				}
			}
		})
	}
}

func TestComputeVisibleRangeMonotonic(t *testing.T) {
	l := BuildLayout(PartitionRows(makeItems(60), openIDs("13", "14", "40"), 4), 60, gridParams)

	prev := VisibleRange{}
	for offset := 0; offset <= l.ContainerHeight; offset += 3 {
		vr := ComputeVisibleRange(l, Viewport{Offset: offset, Height: 333}, 4)
		if vr.Start < prev.Start || vr.End < prev.End {
			t.Fatalf("offset %d: range %+v moved backwards from %+v", offset, vr, prev)
		}
		prev = vr
	}
}

func TestComputeVisibleRangeDenseMatchesRows(t *testing.T) {
	l := BuildLayout(PartitionRows(makeItems(37), nil, 4), 37, gridParams)
	for offset := 0; offset < l.ContainerHeight; offset += 11 {
		vp := Viewport{Offset: offset, Height: 300}
		dense := ComputeVisibleRange(l, vp, 4)
		generic := ComputeVisibleRange(l, vp, 0)
		if dense != generic {
			t.Fatalf("offset %d: dense %+v, generic %+v", offset, dense, generic)
		}
	}
}
