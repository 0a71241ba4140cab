package grid

import (
	"testing"
	"time"

	"github.com/venuedeck/venuedeck/pkg/models"
)

func eventAt(id string, day, hour, minute, durMinutes int) models.Event {
	start := time.Date(2026, time.March, day, hour, minute, 0, 0, time.UTC)
	return models.Event{
		ID:    id,
		Title: id,
		Start: start,
		End:   start.Add(time.Duration(durMinutes) * time.Minute),
	}
}

func TestLayoutNonOverlappingFullWidth(t *testing.T) {
	cfg := DefaultConfig()
	events := []models.Event{
		eventAt("a", 2, 10, 0, 60),
		eventAt("b", 2, 12, 0, 60),
	}

	placements := cfg.Layout(events)
	for _, id := range []string{"a", "b"} {
		p := placements[id]
		if p.ColumnCount != 1 || p.Column != 0 {
			t.Errorf("%s: column %d/%d, want 0/1", id, p.Column, p.ColumnCount)
		}
		if p.WidthFraction() != 1 {
			t.Errorf("%s: width fraction %v, want 1", id, p.WidthFraction())
		}
	}
}

func TestLayoutOverlappingPack(t *testing.T) {
	cfg := DefaultConfig()
	events := []models.Event{
		eventAt("b", 2, 10, 30, 60),
		eventAt("a", 2, 10, 0, 60),
	}

	placements := cfg.Layout(events)
	a, b := placements["a"], placements["b"]

	if a.Column != 0 || a.ColumnCount != 2 {
		t.Errorf("a: column %d/%d, want 0/2", a.Column, a.ColumnCount)
	}
	if b.Column != 1 || b.ColumnCount != 2 {
		t.Errorf("b: column %d/%d, want 1/2", b.Column, b.ColumnCount)
	}
}

func TestLayoutTiedStartsOrderByID(t *testing.T) {
	cfg := DefaultConfig()
	events := []models.Event{
		eventAt("z", 2, 10, 0, 60),
		eventAt("a", 2, 10, 0, 60),
	}

	placements := cfg.Layout(events)
	if placements["a"].Column != 0 {
		t.Errorf("a at tied start should take column 0, got %d", placements["a"].Column)
	}
	if placements["z"].Column != 1 {
		t.Errorf("z at tied start should take column 1, got %d", placements["z"].Column)
	}
}

func TestLayoutDeterministicAcrossInputOrder(t *testing.T) {
	cfg := DefaultConfig()
	events := []models.Event{
		eventAt("a", 2, 10, 0, 90),
		eventAt("b", 2, 10, 30, 90),
		eventAt("c", 2, 11, 0, 90),
		eventAt("d", 2, 14, 0, 60),
	}
	reversed := []models.Event{events[3], events[2], events[1], events[0]}

	first := cfg.Layout(events)
	second := cfg.Layout(reversed)
	for id, p := range first {
		if second[id] != p {
			t.Errorf("%s: placement differs across input order: %+v vs %+v", id, p, second[id])
		}
	}
}

func TestLayoutAbuttingEventsDoNotOverlap(t *testing.T) {
	cfg := DefaultConfig()
	events := []models.Event{
		eventAt("a", 2, 10, 0, 60),
		eventAt("b", 2, 11, 0, 60), // starts exactly where a ends
	}

	placements := cfg.Layout(events)
	if placements["a"].ColumnCount != 1 || placements["b"].ColumnCount != 1 {
		t.Error("events sharing only a boundary instant must not split the column")
	}
}

func TestLayoutBucketsByVisualDay(t *testing.T) {
	cfg := DefaultConfig()
	events := []models.Event{
		eventAt("evening", 2, 23, 0, 120), // Mar 2, 23:00 - 01:00
		eventAt("late", 3, 0, 30, 60),     // Mar 3 00:30, visually Mar 2
		eventAt("nextday", 3, 10, 0, 60),  // Mar 3 proper
	}

	placements := cfg.Layout(events)

	// evening (23:00-01:00) and late (24:30-25:30 effective) overlap in
	// the Mar 2 bucket.
	if placements["evening"].ColumnCount != 2 {
		t.Errorf("evening column count = %d, want 2", placements["evening"].ColumnCount)
	}
	if placements["late"].ColumnCount != 2 {
		t.Errorf("late column count = %d, want 2", placements["late"].ColumnCount)
	}
	if placements["nextday"].ColumnCount != 1 {
		t.Errorf("next-day event must not pack against the previous visual day")
	}

	wantTop := cfg.OffsetForMinutes(24*60 + 30)
	if got := placements["late"].Top; got != wantTop {
		t.Errorf("late top = %v, want %v", got, wantTop)
	}
}

func TestLayoutClipsLateEvents(t *testing.T) {
	cfg := DefaultConfig()

	// 02:00 - 05:00 runs past the 28:00 bottom of the grid.
	events := []models.Event{eventAt("late", 3, 2, 0, 180)}

	placements := cfg.Layout(events)
	p := placements["late"]
	if !p.Late {
		t.Fatal("event running past the grid bottom should be marked late")
	}
	if p.Top+p.Height > cfg.TotalHeight() {
		t.Errorf("clipped block extends past the grid: top %v height %v", p.Top, p.Height)
	}

	inRange := cfg.Layout([]models.Event{eventAt("ok", 2, 20, 0, 60)})
	if inRange["ok"].Late {
		t.Error("in-range event must not be marked late")
	}
}
