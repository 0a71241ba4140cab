// Package ingest defines the document-ingestion contract the app
// consumes, plus a concrete ICS importer. Heavier pipelines (the AI
// upload path) implement Ingestor externally and can take tens of
// seconds; the app only ever consumes the final structured result.
package ingest

import "time"

// RawEvent is one imported schedule row before it becomes a document
// event (no id, no color yet).
type RawEvent struct {
	Title     string
	Start     time.Time
	End       time.Time
	TimeLabel string // preformatted time range from the source, if any
	Type      string // source's category hint, matched against the enum
	Notes     string
}

// RawDay is one imported itinerary row.
type RawDay struct {
	DayNumber int
	Date      time.Time
	Location  string
	Arrival   string
	Departure string
}

// RawShow is one imported side-venue listing row.
type RawShow struct {
	Venue string
	Date  time.Time
	Title string
	Time  string
}

// Result is the structured output of an ingestion run.
type Result struct {
	Events          []RawEvent
	Itinerary       []RawDay
	OtherVenueShows []RawShow
}

// Ingestor turns an uploaded file into a structured schedule.
type Ingestor interface {
	Ingest(path string) (*Result, error)
}
