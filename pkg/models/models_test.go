package models

import (
	"testing"
	"time"
)

func twoEventDoc() Document {
	start := time.Date(2026, time.March, 2, 20, 0, 0, 0, time.UTC)
	return Document{
		Events: []Event{
			{ID: "a", Title: "First Seating Show", Start: start, End: start.Add(time.Hour)},
			{ID: "b", Title: "Second Seating Show", Start: start.Add(2 * time.Hour), End: start.Add(3 * time.Hour)},
		},
		Itinerary: []ItineraryDay{
			{DayNumber: 1, Date: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), Location: "Miami", Departure: "17:00"},
		},
		OtherVenueShows: []OtherVenueShow{
			{Venue: "Aft Lounge", Date: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), Title: "Piano Duo", Time: "9:00"},
		},
	}
}

func TestDocumentEqualIgnoresEventOrder(t *testing.T) {
	a := twoEventDoc()
	b := twoEventDoc()
	b.Events[0], b.Events[1] = b.Events[1], b.Events[0]

	if !a.Equal(b) {
		t.Error("event slice order must not affect equality")
	}
}

func TestDocumentEqualSeesFieldChanges(t *testing.T) {
	base := twoEventDoc()

	changed := twoEventDoc()
	changed.Events[1].Notes = "hold the aisle seats"
	if base.Equal(changed) {
		t.Error("event field change should break equality")
	}

	changed = twoEventDoc()
	changed.Itinerary[0].Location = "Nassau"
	if base.Equal(changed) {
		t.Error("itinerary change should break equality")
	}

	changed = twoEventDoc()
	changed.OtherVenueShows[0].Time = "10:30"
	if base.Equal(changed) {
		t.Error("side-venue change should break equality")
	}

	changed = twoEventDoc()
	changed.Events = changed.Events[:1]
	if base.Equal(changed) {
		t.Error("event count change should break equality")
	}
}

func TestCloneIsDeep(t *testing.T) {
	doc := twoEventDoc()
	clone := doc.Clone()

	clone.Events[0].Title = "mutated"
	clone.Itinerary[0].Location = "mutated"
	clone.OtherVenueShows[0].Venue = "mutated"

	if doc.Events[0].Title != "First Seating Show" {
		t.Error("clone shares event memory")
	}
	if doc.Itinerary[0].Location != "Miami" {
		t.Error("clone shares itinerary memory")
	}
	if doc.OtherVenueShows[0].Venue != "Aft Lounge" {
		t.Error("clone shares side-venue memory")
	}
}

func TestEventByIDAndRemove(t *testing.T) {
	doc := twoEventDoc()

	if ev := doc.EventByID("b"); ev == nil || ev.Title != "Second Seating Show" {
		t.Error("EventByID(b) should find the event")
	}
	if doc.EventByID("zzz") != nil {
		t.Error("unknown id should return nil")
	}

	if !doc.RemoveEvent("a") {
		t.Error("removing a present event should report true")
	}
	if doc.RemoveEvent("a") {
		t.Error("removing an absent event should report false")
	}
	if len(doc.Events) != 1 || doc.Events[0].ID != "b" {
		t.Errorf("events after remove: %+v", doc.Events)
	}
}

func TestRenumberItinerary(t *testing.T) {
	doc := Document{Itinerary: []ItineraryDay{
		{DayNumber: 7}, {DayNumber: 7}, {DayNumber: 1},
	}}
	doc.RenumberItinerary()
	for i, day := range doc.Itinerary {
		if day.DayNumber != i+1 {
			t.Errorf("day %d numbered %d", i, day.DayNumber)
		}
	}
}

func TestAtSea(t *testing.T) {
	cases := []struct {
		location string
		want     bool
	}{
		{"At Sea", true},
		{"at sea", true},
		{"Sea Day", true},
		{"Cruising", true},
		{"cruising the fjords", true},
		{"Miami", false},
		{"Seattle", false},
		{"", false},
	}
	for _, tc := range cases {
		day := ItineraryDay{Location: tc.location}
		if got := day.AtSea(); got != tc.want {
			t.Errorf("AtSea(%q) = %v, want %v", tc.location, got, tc.want)
		}
	}
}

func TestDisplayTime(t *testing.T) {
	cases := []struct {
		day  ItineraryDay
		want string
	}{
		{ItineraryDay{Location: "Nassau", Arrival: "08:00", Departure: "17:00"}, "08:00 - 17:00"},
		{ItineraryDay{Location: "Nassau", Arrival: "08:00"}, "Arrive 08:00"},
		{ItineraryDay{Location: "Nassau", Departure: "17:00"}, "Depart 17:00"},
		{ItineraryDay{Location: "Nassau"}, ""},
		{ItineraryDay{Location: "At Sea", Arrival: "08:00", Departure: "17:00"}, ""},
	}
	for _, tc := range cases {
		if got := tc.day.DisplayTime(); got != tc.want {
			t.Errorf("DisplayTime(%+v) = %q, want %q", tc.day, got, tc.want)
		}
	}
}

func TestEventDuration(t *testing.T) {
	start := time.Date(2026, time.March, 2, 22, 0, 0, 0, time.UTC)
	ev := Event{Start: start, End: start.Add(95 * time.Minute)}
	if ev.Duration() != 95*time.Minute {
		t.Errorf("Duration() = %v", ev.Duration())
	}
}
