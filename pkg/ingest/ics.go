package ingest

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"
)

// maxOccurrencesPerEvent caps RRULE expansion so a malformed rule cannot
// flood the draft.
const maxOccurrencesPerEvent = 500

// expansionWindowDays bounds how far past the first event recurring
// instances are generated; longer than any sailing.
const expansionWindowDays = 60

// ICSImporter ingests an exported .ics file: venue calendars are a
// common interchange format for shoreside programs. Itinerary days are
// derived from the covered date span; side-venue listings are not part
// of the format.
type ICSImporter struct{}

// Ingest implements Ingestor for a local .ics file.
func (imp *ICSImporter) Ingest(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ics file: %w", err)
	}
	defer f.Close()
	return imp.ImportICS(f)
}

// ImportICS parses and expands an iCalendar stream.
func (imp *ICSImporter) ImportICS(r io.Reader) (*Result, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read ics data: %w", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(body)), "BEGIN:VCALENDAR") {
		return nil, fmt.Errorf("invalid iCalendar data - expected BEGIN:VCALENDAR")
	}

	decoder := ical.NewDecoder(strings.NewReader(string(body)))

	var events []RawEvent
	seenKeys := make(map[string]bool) // title + start

	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}

			base, ok := parseComponent(comp)
			if !ok {
				continue
			}

			instances := []RawEvent{base}
			if rruleProp := comp.Props.Get(ical.PropRecurrenceRule); rruleProp != nil {
				instances = expandRecurring(base, rruleProp.Value)
			}

			for _, ev := range instances {
				key := ev.Title + "|" + ev.Start.Format(time.RFC3339)
				if seenKeys[key] {
					continue
				}
				seenKeys[key] = true
				events = append(events, ev)
			}
		}
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Start.Before(events[j].Start) })

	result := &Result{
		Events:    events,
		Itinerary: deriveItinerary(events),
	}
	log.Printf("[ingest] ics import: %d events over %d days", len(result.Events), len(result.Itinerary))
	return result, nil
}

func parseComponent(comp *ical.Component) (RawEvent, bool) {
	ev := RawEvent{}

	if p := comp.Props.Get(ical.PropSummary); p != nil {
		ev.Title = p.Value
	}
	if p := comp.Props.Get(ical.PropDescription); p != nil {
		ev.Notes = p.Value
	}
	if p := comp.Props.Get(ical.PropCategories); p != nil {
		ev.Type = strings.ToLower(strings.SplitN(p.Value, ",", 2)[0])
	}
	if p := comp.Props.Get(ical.PropDateTimeStart); p != nil {
		if t, err := parseDateTimeProp(p); err == nil {
			ev.Start = t
		}
	}
	if p := comp.Props.Get(ical.PropDateTimeEnd); p != nil {
		if t, err := parseDateTimeProp(p); err == nil {
			ev.End = t
		}
	}

	if ev.Start.IsZero() || ev.End.IsZero() || !ev.End.After(ev.Start) {
		log.Printf("[ingest] skipping event with unusable times: %q", ev.Title)
		return RawEvent{}, false
	}
	if p := comp.Props.Get(ical.PropStatus); p != nil && p.Value == "CANCELLED" {
		return RawEvent{}, false
	}
	return ev, true
}

// parseDateTimeProp tries the library's own parsing first, then a set
// of raw-value formats seen in exports from various planning tools.
func parseDateTimeProp(prop *ical.Prop) (time.Time, error) {
	if t, err := prop.DateTime(time.Local); err == nil {
		return t.In(time.Local), nil
	}

	formats := []string{
		"20060102T150405",
		"20060102T150405Z",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, prop.Value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse datetime value: %s", prop.Value)
}

// expandRecurring generates concrete instances of a recurring event
// within the expansion window, capped per event.
func expandRecurring(base RawEvent, rawRule string) []RawEvent {
	opts, err := rrule.StrToROption(rawRule)
	if err != nil {
		log.Printf("[ingest] unsupported RRULE %q on %q: %v", rawRule, base.Title, err)
		return []RawEvent{base}
	}
	opts.Dtstart = base.Start

	rule, err := rrule.NewRRule(*opts)
	if err != nil {
		log.Printf("[ingest] invalid RRULE %q on %q: %v", rawRule, base.Title, err)
		return []RawEvent{base}
	}

	windowEnd := base.Start.AddDate(0, 0, expansionWindowDays)
	starts := rule.Between(base.Start, windowEnd, true)
	if len(starts) > maxOccurrencesPerEvent {
		log.Printf("[ingest] truncating %q to %d occurrences", base.Title, maxOccurrencesPerEvent)
		starts = starts[:maxOccurrencesPerEvent]
	}

	duration := base.End.Sub(base.Start)
	instances := make([]RawEvent, 0, len(starts))
	for _, start := range starts {
		inst := base
		inst.Start = start
		inst.End = start.Add(duration)
		instances = append(instances, inst)
	}
	if len(instances) == 0 {
		return []RawEvent{base}
	}
	return instances
}

// deriveItinerary builds day rows covering the imported events' date
// span. Locations and port times are not present in an ICS export and
// stay blank for the user to fill in.
func deriveItinerary(events []RawEvent) []RawDay {
	if len(events) == 0 {
		return nil
	}

	first := events[0].Start
	last := events[0].Start
	for _, ev := range events {
		if ev.Start.Before(first) {
			first = ev.Start
		}
		if ev.Start.After(last) {
			last = ev.Start
		}
	}

	firstDay := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, first.Location())
	lastDay := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, last.Location())

	var days []RawDay
	for d := firstDay; !d.After(lastDay); d = d.AddDate(0, 0, 1) {
		days = append(days, RawDay{
			DayNumber: len(days) + 1,
			Date:      d,
		})
	}
	return days
}
