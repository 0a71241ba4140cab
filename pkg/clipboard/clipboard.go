// Package clipboard is the single-slot copy/paste buffer used by the
// context-menu path. Distinct from modifier-key copy-drag, which never
// touches the clipboard.
package clipboard

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/venuedeck/venuedeck/pkg/models"
)

// Slot holds at most one copied event.
type Slot struct {
	mu    sync.Mutex
	event *models.Event
}

// NewSlot returns an empty clipboard.
func NewSlot() *Slot {
	return &Slot{}
}

// Copy replaces the slot's content.
func (s *Slot) Copy(ev models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	held := ev
	s.event = &held
}

// HasContent reports whether a paste would produce an event.
func (s *Slot) HasContent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.event != nil
}

// Paste produces a new event with a fresh id, the held event's fields
// and duration, and timestamps rebased to the given day date and time
// of day. Returns ok=false when the slot is empty.
func (s *Slot) Paste(dayDate time.Time, at time.Duration) (models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return models.Event{}, false
	}

	ev := *s.event
	ev.ID = uuid.NewString()
	ev.Start = time.Date(dayDate.Year(), dayDate.Month(), dayDate.Day(), 0, 0, 0, 0, dayDate.Location()).Add(at)
	ev.End = ev.Start.Add(s.event.Duration())
	return ev, true
}

// Clear empties the slot.
func (s *Slot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.event = nil
}
