package models

import "time"

// Category classifies an event for color assignment and filtering.
type Category string

const (
	CategoryUnset       Category = ""
	CategoryShow        Category = "show"
	CategoryRehearsal   Category = "rehearsal"
	CategoryMaintenance Category = "maintenance"
	CategoryMovie       Category = "movie"
	CategoryGame        Category = "game"
	CategoryActivity    Category = "activity"
	CategoryMusic       Category = "music"
	CategoryParty       Category = "party"
	CategoryComedy      Category = "comedy"
	CategoryHeadliner   Category = "headliner"
	CategoryOther       Category = "other"
)

// Categories lists every assignable category, in menu order.
var Categories = []Category{
	CategoryShow,
	CategoryRehearsal,
	CategoryMaintenance,
	CategoryMovie,
	CategoryGame,
	CategoryActivity,
	CategoryMusic,
	CategoryParty,
	CategoryComedy,
	CategoryHeadliner,
	CategoryOther,
}

// Event represents one schedulable block on the grid.
type Event struct {
	ID       string    `json:"id"`       // opaque unique token
	Title    string    `json:"title"`    // display text, user-editable
	Start    time.Time `json:"start"`    // absolute start; always before End
	End      time.Time `json:"end"`      // absolute end; at least the minimum duration after Start
	Category Category  `json:"category"` // closed enumeration, may be unset
	Color    string    `json:"color"`    // resolved display color (hex), user-overridable
	Notes    string    `json:"notes"`    // free-text notes

	// TimeDisplayOverride, when set, replaces the computed "start-end"
	// label (used for imported rows that carry a formatted range).
	TimeDisplayOverride string `json:"time_display_override,omitempty"`
}

// Duration returns the event length.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Equal reports content equality. Two events with the same id but
// different fields are not equal.
func (e Event) Equal(o Event) bool {
	return e.ID == o.ID &&
		e.Title == o.Title &&
		e.Start.Equal(o.Start) &&
		e.End.Equal(o.End) &&
		e.Category == o.Category &&
		e.Color == o.Color &&
		e.Notes == o.Notes &&
		e.TimeDisplayOverride == o.TimeDisplayOverride
}
