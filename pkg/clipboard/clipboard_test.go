package clipboard

import (
	"testing"
	"time"

	"github.com/venuedeck/venuedeck/pkg/models"
)

func sampleEvent() models.Event {
	start := time.Date(2026, time.March, 2, 20, 0, 0, 0, time.UTC)
	return models.Event{
		ID:       "orig",
		Title:    "Juggling Act",
		Start:    start,
		End:      start.Add(45 * time.Minute),
		Category: models.CategoryShow,
		Color:    "#d62839",
		Notes:    "needs rigging check",
	}
}

func TestPasteEmptySlot(t *testing.T) {
	s := NewSlot()

	if s.HasContent() {
		t.Error("fresh slot should be empty")
	}
	if _, ok := s.Paste(time.Now(), 10*time.Hour); ok {
		t.Error("paste from an empty slot should report ok=false")
	}
}

func TestPasteRebasesAndRenames(t *testing.T) {
	s := NewSlot()
	s.Copy(sampleEvent())

	day := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	ev, ok := s.Paste(day, 21*time.Hour+30*time.Minute)
	if !ok {
		t.Fatal("paste should succeed")
	}

	if ev.ID == "orig" || ev.ID == "" {
		t.Error("pasted event needs a fresh id")
	}
	want := time.Date(2026, time.March, 5, 21, 30, 0, 0, time.UTC)
	if !ev.Start.Equal(want) {
		t.Errorf("start = %v, want %v", ev.Start, want)
	}
	if ev.Duration() != 45*time.Minute {
		t.Errorf("duration = %v, want 45m", ev.Duration())
	}
	if ev.Title != "Juggling Act" || ev.Category != models.CategoryShow || ev.Notes != "needs rigging check" {
		t.Error("pasted event should carry the copied fields")
	}
}

func TestPasteRepeatsAndCopyReplaces(t *testing.T) {
	s := NewSlot()
	s.Copy(sampleEvent())

	day := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	first, _ := s.Paste(day, 10*time.Hour)
	second, _ := s.Paste(day, 12*time.Hour)
	if first.ID == second.ID {
		t.Error("repeated pastes must mint distinct ids")
	}
	if !s.HasContent() {
		t.Error("paste must not consume the slot")
	}

	replacement := sampleEvent()
	replacement.Title = "Late Comedy"
	s.Copy(replacement)
	third, _ := s.Paste(day, 14*time.Hour)
	if third.Title != "Late Comedy" {
		t.Error("copy should replace the held event")
	}
}

func TestClear(t *testing.T) {
	s := NewSlot()
	s.Copy(sampleEvent())
	s.Clear()
	if s.HasContent() {
		t.Error("clear should empty the slot")
	}
}
