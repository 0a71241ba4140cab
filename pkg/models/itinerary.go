package models

import (
	"fmt"
	"strings"
	"time"
)

// ItineraryDay describes one calendar day of the voyage. The ordered
// sequence of days defines the grid's day columns.
type ItineraryDay struct {
	DayNumber int       `json:"day_number"` // 1-based; always index+1 within the itinerary
	Date      time.Time `json:"date"`       // calendar date; zero for a fresh draft
	Location  string    `json:"location"`   // port name or an at-sea marker

	Arrival   string `json:"arrival,omitempty"`   // "15:04" time of day, empty = none
	Departure string `json:"departure,omitempty"` // "15:04" time of day, empty = none
}

// atSeaMarkers are location values that suppress port-time editing.
var atSeaMarkers = []string{"at sea", "sea day", "cruising"}

// AtSea reports whether the day's location is an at-sea class value.
func (d ItineraryDay) AtSea() bool {
	loc := strings.ToLower(strings.TrimSpace(d.Location))
	for _, m := range atSeaMarkers {
		if loc == m || strings.HasPrefix(loc, m+" ") {
			return true
		}
	}
	return false
}

// DisplayTime formats the arrival/departure pair for the header row.
// At-sea days and days with no port times show nothing.
func (d ItineraryDay) DisplayTime() string {
	if d.AtSea() {
		return ""
	}
	switch {
	case d.Arrival != "" && d.Departure != "":
		return fmt.Sprintf("%s - %s", d.Arrival, d.Departure)
	case d.Arrival != "":
		return fmt.Sprintf("Arrive %s", d.Arrival)
	case d.Departure != "":
		return fmt.Sprintf("Depart %s", d.Departure)
	default:
		return ""
	}
}

// Equal reports structural equality.
func (d ItineraryDay) Equal(o ItineraryDay) bool {
	return d.DayNumber == o.DayNumber &&
		d.Date.Equal(o.Date) &&
		d.Location == o.Location &&
		d.Arrival == o.Arrival &&
		d.Departure == o.Departure
}

// OtherVenueShow is one entry of a secondary venue's sparse listing.
// A venue carries at most one entry per date.
type OtherVenueShow struct {
	Venue string    `json:"venue"`
	Date  time.Time `json:"date"`
	Title string    `json:"title"`
	Time  string    `json:"time"` // free-text, e.g. "7:30 & 9:30"
}

// Equal reports structural equality.
func (s OtherVenueShow) Equal(o OtherVenueShow) bool {
	return s.Venue == o.Venue &&
		s.Date.Equal(o.Date) &&
		s.Title == o.Title &&
		s.Time == o.Time
}
