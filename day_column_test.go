package main

import "testing"

func TestColumnAtOffset(t *testing.T) {
	const gap = float32(4)
	span := columnWidth + gap

	cases := []struct {
		name   string
		origin int
		x      float32
		want   int
	}{
		{"inside origin", 0, columnWidth / 2, 0},
		{"right edge of origin", 0, columnWidth - 1, 0},
		{"first pixel of next column", 0, span, 1},
		{"one column over", 1, span + columnWidth/2, 2},
		{"right edge three columns over", 2, 3*span + columnWidth - 1, 5},
		{"left of origin", 3, -10, 2},
		{"far left of origin", 3, -2*span - 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := columnAtOffset(tc.origin, tc.x, gap); got != tc.want {
				t.Errorf("columnAtOffset(%d, %v, %v) = %d, want %d", tc.origin, tc.x, gap, got, tc.want)
			}
		})
	}
}
