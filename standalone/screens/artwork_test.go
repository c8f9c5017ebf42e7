package screens

import "testing"

func TestFitSize(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   int
		maxW, maxH   int
		wantW, wantH int
	}{
		{"same aspect", 200, 100, 100, 50, 100, 50},
		{"wide source", 400, 100, 100, 100, 100, 25},
		{"tall source", 100, 400, 100, 100, 25, 100},
		{"upscale", 10, 20, 100, 100, 50, 100},
		{"sliver keeps one pixel", 1000, 1, 100, 100, 100, 1},
		{"empty source fills cell", 0, 0, 30, 40, 30, 40},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := fitSize(tc.srcW, tc.srcH, tc.maxW, tc.maxH)
			if w != tc.wantW || h != tc.wantH {
				t.Errorf("fitSize(%d, %d, %d, %d) = %dx%d, want %dx%d",
					tc.srcW, tc.srcH, tc.maxW, tc.maxH, w, h, tc.wantW, tc.wantH)
			}
		})
	}
}
