package grid

import "testing"

func TestOffsetMinutesRoundTrip(t *testing.T) {
	cfg := DefaultConfig()

	cases := []int{480, 600, 725, 1200, 1439, 1500, 1680}
	for _, minutes := range cases {
		offset := cfg.OffsetForMinutes(minutes)
		if got := cfg.MinutesForOffset(offset); got != minutes {
			t.Errorf("round trip of %d minutes = %d", minutes, got)
		}
	}
}

func TestOffsetForMinutesScale(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.OffsetForMinutes(8 * 60); got != 0 {
		t.Errorf("offset of the start hour = %v, want 0", got)
	}
	if got := cfg.OffsetForMinutes(9 * 60); got != cfg.PixelsPerHour {
		t.Errorf("offset one hour in = %v, want %v", got, cfg.PixelsPerHour)
	}
	// 25:00, the post-midnight region of the column.
	if got := cfg.OffsetForMinutes(25 * 60); got != 17*cfg.PixelsPerHour {
		t.Errorf("offset at hour 25 = %v, want %v", got, 17*cfg.PixelsPerHour)
	}
}

func TestSnapRoundsToNearestStep(t *testing.T) {
	cfg := DefaultConfig()
	step := float32(cfg.SnapMinutes) / 60 * cfg.PixelsPerHour

	cases := []struct {
		in   float32
		want float32
	}{
		{0, 0},
		{step, step},
		{step * 0.4, 0},
		{step * 0.6, step},
		{step * 3.5, step * 4},
	}
	for _, tc := range cases {
		if got := cfg.Snap(tc.in); !near(got, tc.want) {
			t.Errorf("Snap(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSnapIsIdempotent(t *testing.T) {
	cfg := DefaultConfig()

	for _, offset := range []float32{0, 13.7, 250, 999.9, cfg.TotalHeight()} {
		once := cfg.Snap(offset)
		if twice := cfg.Snap(once); !near(once, twice) {
			t.Errorf("Snap(Snap(%v)) = %v, want %v", offset, twice, once)
		}
	}
}

func TestSnapMinutesValue(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct{ in, want int }{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 5},
		{7, 5},
		{13, 15},
		{-7, -5},
		{-13, -15},
	}
	for _, tc := range cases {
		if got := cfg.SnapMinutesValue(tc.in); got != tc.want {
			t.Errorf("SnapMinutesValue(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestClampOffset(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.ClampOffset(-10); got != 0 {
		t.Errorf("ClampOffset(-10) = %v, want 0", got)
	}
	if got := cfg.ClampOffset(cfg.TotalHeight() + 50); got != cfg.TotalHeight() {
		t.Errorf("clamp past the bottom = %v, want %v", got, cfg.TotalHeight())
	}
	if got := cfg.ClampOffset(123); got != 123 {
		t.Errorf("in-range offset changed: %v", got)
	}
}

func TestMinEventPixels(t *testing.T) {
	cfg := DefaultConfig()
	want := float32(cfg.MinEventMinutes) / 60 * cfg.PixelsPerHour
	if got := cfg.MinEventPixels(); !near(got, want) {
		t.Errorf("MinEventPixels() = %v, want %v", got, want)
	}
}

func near(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 0.01
}
