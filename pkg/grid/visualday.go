package grid

import (
	"math"
	"time"

	"github.com/venuedeck/venuedeck/pkg/models"
)

// VisualDate returns the calendar day a timestamp is drawn under. Times
// before the day-boundary hour belong to the previous day's column, so a
// 01:00 Wednesday start is attributed to Tuesday.
func (c Config) VisualDate(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if t.Hour() < c.DayBoundaryHour {
		day = day.AddDate(0, 0, -1)
	}
	return day
}

// EffectiveMinutes returns minutes since the attributed day's midnight.
// Post-midnight times gain a full day, so 01:00 reads as minute 1500
// (hour 25) under the previous column.
func (c Config) EffectiveMinutes(t time.Time) int {
	minutes := t.Hour()*60 + t.Minute()
	if t.Hour() < c.DayBoundaryHour {
		minutes += 24 * 60
	}
	return minutes
}

// EffectiveHour is EffectiveMinutes expressed in hours.
func (c Config) EffectiveHour(t time.Time) float64 {
	return float64(c.EffectiveMinutes(t)) / 60
}

// DayIndex returns the itinerary index of the column a timestamp draws
// under, or -1 when the visual date is not part of the itinerary (e.g.
// an event imported outside the voyage window). Callers clamp; the grid
// never invents columns.
func (c Config) DayIndex(t time.Time, itinerary []models.ItineraryDay) int {
	visual := c.VisualDate(t)
	for i, day := range itinerary {
		if day.Date.IsZero() {
			continue
		}
		if sameDate(day.Date, visual) {
			return i
		}
	}
	return -1
}

// DayIndexClamped is DayIndex with out-of-range visual dates clamped
// to the nearest itinerary day. Events outside the voyage window (an
// import before sailing, or 01:00 on the first itinerary date, whose
// visual day precedes day one) stay on a reachable column instead of
// vanishing. Undated draft itineraries resolve to the first day.
func (c Config) DayIndexClamped(t time.Time, itinerary []models.ItineraryDay) int {
	if idx := c.DayIndex(t, itinerary); idx >= 0 {
		return idx
	}

	visual := c.VisualDate(t)
	best := 0
	bestDiff := math.MaxFloat64
	for i, day := range itinerary {
		if day.Date.IsZero() {
			continue
		}
		diff := math.Abs(day.Date.Sub(visual).Hours())
		if diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
