// Package grid holds the pure geometry of the scheduling surface: the
// mapping between wall-clock time and pixel offsets, late-night visual
// day attribution, and per-day overlap packing. Nothing here touches the
// document or the UI.
package grid

import "math"

// Policy constants below are defaults, not invariants: every value is
// carried in Config so the host can adjust them from settings.
const (
	// DefaultPixelsPerHour is the vertical scale of the grid.
	DefaultPixelsPerHour = 100

	// DefaultStartHour is the first visible hour of a day column.
	DefaultStartHour = 8

	// DefaultVisibleHours is the visible span. 20 hours from 08:00 runs
	// the column to 28:00, i.e. 04:00 of the next calendar day.
	DefaultVisibleHours = 20

	// DefaultSnapMinutes is the drag snapping granularity.
	DefaultSnapMinutes = 5

	// DefaultMinEventMinutes is the minimum event duration. Creates and
	// resizes clamp to it; shorter create-drags cancel.
	DefaultMinEventMinutes = 15

	// DefaultDayBoundaryHour is the hour before which an event is drawn
	// under the previous day's column (post-midnight programming belongs
	// to the preceding evening).
	DefaultDayBoundaryHour = 4
)

// Config carries the grid's geometry and interaction policy values.
type Config struct {
	PixelsPerHour   float32
	StartHour       int
	VisibleHours    int
	SnapMinutes     int
	MinEventMinutes int
	DayBoundaryHour int
}

// DefaultConfig returns the default grid policy.
func DefaultConfig() Config {
	return Config{
		PixelsPerHour:   DefaultPixelsPerHour,
		StartHour:       DefaultStartHour,
		VisibleHours:    DefaultVisibleHours,
		SnapMinutes:     DefaultSnapMinutes,
		MinEventMinutes: DefaultMinEventMinutes,
		DayBoundaryHour: DefaultDayBoundaryHour,
	}
}

// TotalHeight returns the pixel height of one day column.
func (c Config) TotalHeight() float32 {
	return float32(c.VisibleHours) * c.PixelsPerHour
}

// OffsetForMinutes converts minutes-since-midnight (effective minutes:
// values past 1440 address the small hours drawn under this column) to a
// pixel offset from the top of the column.
func (c Config) OffsetForMinutes(minutes int) float32 {
	return float32(minutes-c.StartHour*60) / 60 * c.PixelsPerHour
}

// MinutesForOffset is the inverse of OffsetForMinutes, rounded to the
// nearest whole minute.
func (c Config) MinutesForOffset(offset float32) int {
	return c.StartHour*60 + int(math.Round(float64(offset)/float64(c.PixelsPerHour)*60))
}

// Snap rounds a pixel offset to the nearest multiple of the snap
// granularity. Offsets already aligned are returned unchanged.
func (c Config) Snap(offset float32) float32 {
	step := float64(c.SnapMinutes) / 60 * float64(c.PixelsPerHour)
	return float32(math.Round(float64(offset)/step) * step)
}

// SnapMinutesValue rounds a minute count to the nearest multiple of the
// snap granularity.
func (c Config) SnapMinutesValue(minutes int) int {
	step := float64(c.SnapMinutes)
	return int(math.Round(float64(minutes)/step) * step)
}

// MinEventPixels is the pixel height of a minimum-duration event.
func (c Config) MinEventPixels() float32 {
	return float32(c.MinEventMinutes) / 60 * c.PixelsPerHour
}

// ClampOffset limits an offset to the visible column.
func (c Config) ClampOffset(offset float32) float32 {
	if offset < 0 {
		return 0
	}
	if h := c.TotalHeight(); offset > h {
		return h
	}
	return offset
}
