package models

import "sort"

// Document is the atomic editable aggregate: events, itinerary days and
// side-venue show listings. Every mutation, history snapshot and dirty
// comparison operates on the whole aggregate, never a single field.
type Document struct {
	Events          []Event          `json:"events"`
	Itinerary       []ItineraryDay   `json:"itinerary"`
	OtherVenueShows []OtherVenueShow `json:"other_venue_shows"`
}

// Clone returns a deep copy. Snapshots handed to the history store must
// not alias the live document's slices.
func (d Document) Clone() Document {
	out := Document{}
	if d.Events != nil {
		out.Events = make([]Event, len(d.Events))
		copy(out.Events, d.Events)
	}
	if d.Itinerary != nil {
		out.Itinerary = make([]ItineraryDay, len(d.Itinerary))
		copy(out.Itinerary, d.Itinerary)
	}
	if d.OtherVenueShows != nil {
		out.OtherVenueShows = make([]OtherVenueShow, len(d.OtherVenueShows))
		copy(out.OtherVenueShows, d.OtherVenueShows)
	}
	return out
}

// Equal reports semantic equality: events compared by id-sorted content,
// itinerary and side-venue shows by structural equality in order.
// Object identity and slice ordering of events are irrelevant.
func (d Document) Equal(o Document) bool {
	if len(d.Events) != len(o.Events) ||
		len(d.Itinerary) != len(o.Itinerary) ||
		len(d.OtherVenueShows) != len(o.OtherVenueShows) {
		return false
	}

	a := sortedByID(d.Events)
	b := sortedByID(o.Events)
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	for i := range d.Itinerary {
		if !d.Itinerary[i].Equal(o.Itinerary[i]) {
			return false
		}
	}
	for i := range d.OtherVenueShows {
		if !d.OtherVenueShows[i].Equal(o.OtherVenueShows[i]) {
			return false
		}
	}
	return true
}

// EventByID returns a pointer into Events, or nil.
func (d *Document) EventByID(id string) *Event {
	for i := range d.Events {
		if d.Events[i].ID == id {
			return &d.Events[i]
		}
	}
	return nil
}

// RemoveEvent deletes the event with the given id, reporting whether it
// was present.
func (d *Document) RemoveEvent(id string) bool {
	for i := range d.Events {
		if d.Events[i].ID == id {
			d.Events = append(d.Events[:i], d.Events[i+1:]...)
			return true
		}
	}
	return false
}

// RenumberItinerary restores the DayNumber == index+1 invariant after
// days are inserted or removed.
func (d *Document) RenumberItinerary() {
	for i := range d.Itinerary {
		d.Itinerary[i].DayNumber = i + 1
	}
}

func sortedByID(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
