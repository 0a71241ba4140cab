// Package engine implements the pointer-gesture state machine that turns
// raw pointer input into document mutations: hover preview, drag-create,
// move, independent top/bottom resize, cross-day re-parenting and
// modifier-key duplication. The engine never mutates the document during
// a gesture; it maintains a transient ghost for the render layer and
// commits once, on release.
package engine

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/venuedeck/venuedeck/pkg/grid"
	"github.com/venuedeck/venuedeck/pkg/models"
	"github.com/venuedeck/venuedeck/pkg/palette"
	"github.com/venuedeck/venuedeck/pkg/store"
)

// State identifies the engine's current interaction state.
type State int

const (
	StateIdle State = iota
	StateHovering
	StateCreating
	StateDragging
)

// Mode distinguishes the drag gestures on an existing event.
type Mode int

const (
	ModeMove Mode = iota
	ModeResizeTop
	ModeResizeBottom
)

// TargetKind says what sits under the pointer at press time. The widget
// performs the hit test (it owns the rendered layout); the engine only
// interprets the result.
type TargetKind int

const (
	TargetCell TargetKind = iota
	TargetBody
	TargetTopHandle
	TargetBottomHandle
)

// Target is the hit-test result for a pointer press.
type Target struct {
	Kind    TargetKind
	EventID string
}

// Ghost is the transient, non-committed preview of the gesture outcome.
// It lives outside the document so pointer-move frames never touch
// committed state or the history.
type Ghost struct {
	Day     int // itinerary index of the column the ghost draws in
	Top     float32
	Height  float32
	Start   time.Time
	End     time.Time
	EventID string // dragged event id; empty during creation
	Copy    bool   // duplicate preview (move with the copy modifier held)
}

// DefaultTitle is the title given to drag-created events.
const DefaultTitle = "New Event"

// Engine is the interaction state machine. All methods must be called
// from the UI thread; exactly one gesture session may be active at a
// time and the engine refuses to start a second.
type Engine struct {
	cfg   grid.Config
	docs  *store.DocumentStore
	newID func() string

	state    State
	hoverDay int
	blocked  bool

	// Session fields, valid while state is Creating or Dragging.
	itinerary    []models.ItineraryDay
	anchorDay    int
	anchorOffset float32
	mode         Mode
	origin       models.Event
	originDay    int
	proposed     models.Event
	rawExtent    float32 // unsnapped create-drag distance in pixels
	copyActive   bool
	ghost        *Ghost
}

// New creates an engine over the given grid policy and document store.
func New(cfg grid.Config, docs *store.DocumentStore) *Engine {
	return &Engine{
		cfg:      cfg,
		docs:     docs,
		newID:    uuid.NewString,
		hoverDay: -1,
	}
}

// State returns the current interaction state.
func (e *Engine) State() State { return e.state }

// Ghost returns a copy of the current preview, or nil outside a gesture.
func (e *Engine) Ghost() *Ghost {
	if e.ghost == nil {
		return nil
	}
	g := *e.ghost
	return &g
}

// SetBlocked marks interactions as blocked (an open inline editor, menu
// or color picker). While blocked, pointer presses are not captured so
// the blocking UI can dismiss itself first.
func (e *Engine) SetBlocked(blocked bool) { e.blocked = blocked }

// Blocked reports the blocked flag.
func (e *Engine) Blocked() bool { return e.blocked }

// Hover records the day column under the pointer while no gesture is
// active, for the render layer's hover highlight.
func (e *Engine) Hover(day int) {
	if e.state == StateIdle || e.state == StateHovering {
		e.state = StateHovering
		e.hoverDay = day
	}
}

// Unhover leaves the hovering state.
func (e *Engine) Unhover() {
	if e.state == StateHovering {
		e.state = StateIdle
		e.hoverDay = -1
	}
}

// HoverDay returns the hovered column index, or -1.
func (e *Engine) HoverDay() int { return e.hoverDay }

// PointerDown starts a gesture session. Returns false when the press is
// not captured: blocked interactions, secondary button (reserved for the
// context menu), an already-active session, or a press on an event id
// the document no longer contains.
func (e *Engine) PointerDown(day int, offset float32, target Target, secondary bool) bool {
	if e.blocked || secondary {
		return false
	}
	if e.state == StateCreating || e.state == StateDragging {
		// Re-entrancy guard; pointer capture should make this
		// unreachable but the machine defends regardless.
		return false
	}

	doc := e.docs.Current()
	e.itinerary = doc.Itinerary
	e.copyActive = false

	switch target.Kind {
	case TargetCell:
		e.state = StateCreating
		e.anchorDay = day
		e.anchorOffset = e.cfg.Snap(e.cfg.ClampOffset(offset))
		e.rawExtent = 0
		e.ghost = nil
		return true

	case TargetBody, TargetTopHandle, TargetBottomHandle:
		ev := doc.EventByID(target.EventID)
		if ev == nil {
			return false
		}
		e.state = StateDragging
		e.anchorDay = day
		e.anchorOffset = offset
		e.origin = *ev
		e.proposed = *ev
		e.originDay = e.cfg.DayIndex(ev.Start, e.itinerary)
		switch target.Kind {
		case TargetTopHandle:
			e.mode = ModeResizeTop
		case TargetBottomHandle:
			e.mode = ModeResizeBottom
		default:
			e.mode = ModeMove
		}
		e.ghost = nil
		return true
	}
	return false
}

// PointerMove advances the active gesture. Outside a session it only
// refreshes the hover day. The copy modifier is passed in on every frame
// rather than read from ambient state.
func (e *Engine) PointerMove(day int, offset float32, copyModifier bool) {
	switch e.state {
	case StateCreating:
		e.moveCreating(offset)
	case StateDragging:
		e.copyActive = copyModifier
		e.moveDragging(day, offset)
	default:
		e.Hover(day)
	}
}

// SetCopyModifier updates the copy flag mid-gesture from the keyboard
// listeners. Only move sessions care; toggling is legal at any point and
// only the value at release decides the commit.
func (e *Engine) SetCopyModifier(active bool) {
	if e.state != StateDragging {
		return
	}
	e.copyActive = active
	if e.ghost != nil && e.mode == ModeMove {
		e.ghost.Copy = active
	}
}

// PointerUp ends the active gesture and commits its outcome, if any.
// Reports whether the document changed.
func (e *Engine) PointerUp(day int, offset float32, copyModifier bool) bool {
	switch e.state {
	case StateCreating:
		e.moveCreating(offset)
		committed := e.commitCreate()
		e.reset()
		return committed
	case StateDragging:
		e.copyActive = copyModifier
		e.moveDragging(day, offset)
		committed := e.commitDrag()
		e.reset()
		return committed
	default:
		return false
	}
}

// Cancel aborts the active gesture without committing (Escape).
func (e *Engine) Cancel() {
	if e.state == StateCreating || e.state == StateDragging {
		e.reset()
	}
}

func (e *Engine) reset() {
	e.state = StateIdle
	e.hoverDay = -1
	e.ghost = nil
	e.itinerary = nil
	e.copyActive = false
	e.rawExtent = 0
}

// moveCreating recomputes the provisional creation rectangle: top at the
// lesser of anchor and pointer, extended away from the anchor to the
// minimum duration when the drag is shorter.
func (e *Engine) moveCreating(offset float32) {
	current := e.cfg.Snap(e.cfg.ClampOffset(offset))
	raw := current - e.anchorOffset
	if raw < 0 {
		raw = -raw
	}
	e.rawExtent = raw

	top := e.anchorOffset
	bottom := current
	if bottom < top {
		top, bottom = bottom, top
	}
	if min := e.cfg.MinEventPixels(); bottom-top < min {
		if current >= e.anchorOffset {
			bottom = top + min
		} else {
			top = bottom - min
		}
	}

	start := e.timeAt(e.anchorDay, top)
	end := e.timeAt(e.anchorDay, bottom)
	e.ghost = &Ghost{
		Day:    e.anchorDay,
		Top:    top,
		Height: bottom - top,
		Start:  start,
		End:    end,
	}
}

// moveDragging recomputes the proposed event for the active drag.
func (e *Engine) moveDragging(day int, offset float32) {
	deltaMinutes := e.cfg.SnapMinutesValue(e.pixelsToMinutes(offset - e.anchorOffset))

	next := e.origin
	switch e.mode {
	case ModeMove:
		shift := time.Duration(deltaMinutes) * time.Minute
		next.Start = e.origin.Start.Add(shift)
		next.End = e.origin.End.Add(shift)
		if dayDelta := e.dayDelta(day); dayDelta != 0 {
			next.Start = next.Start.AddDate(0, 0, dayDelta)
			next.End = next.End.AddDate(0, 0, dayDelta)
		}

	case ModeResizeTop:
		minDur := time.Duration(e.cfg.MinEventMinutes) * time.Minute
		start := e.origin.Start.Add(time.Duration(deltaMinutes) * time.Minute)
		if e.origin.End.Sub(start) < minDur {
			start = e.origin.End.Add(-minDur)
		}
		next.Start = start

	case ModeResizeBottom:
		minDur := time.Duration(e.cfg.MinEventMinutes) * time.Minute
		end := e.origin.End.Add(time.Duration(deltaMinutes) * time.Minute)
		if end.Sub(e.origin.Start) < minDur {
			end = e.origin.Start.Add(minDur)
		}
		next.End = end
	}

	e.proposed = next

	top := e.cfg.OffsetForMinutes(e.cfg.EffectiveMinutes(next.Start))
	height := float32(next.Duration().Minutes()) / 60 * e.cfg.PixelsPerHour
	if total := e.cfg.TotalHeight(); top+height > total {
		height = total - top
		if height < 0 {
			height = 0
		}
	}

	ghostDay := e.cfg.DayIndex(next.Start, e.itinerary)
	if ghostDay < 0 {
		ghostDay = e.originDay
	}
	e.ghost = &Ghost{
		Day:     ghostDay,
		Top:     top,
		Height:  height,
		Start:   next.Start,
		End:     next.End,
		EventID: e.origin.ID,
		Copy:    e.copyActive && e.mode == ModeMove,
	}
}

// dayDelta converts the pointer's column into a whole-day shift, using
// visual days on both sides so late-night events keep their attribution
// across a move. Out-of-range targets resolve to no shift.
func (e *Engine) dayDelta(pointerDay int) int {
	if e.originDay < 0 {
		return 0
	}
	if pointerDay < 0 || pointerDay >= len(e.itinerary) {
		return 0
	}
	return pointerDay - e.originDay
}

// commitCreate appends the new event, unless the raw drag was shorter
// than the minimum duration, which cancels the gesture (a click must not
// produce an event).
func (e *Engine) commitCreate() bool {
	if e.ghost == nil {
		return false
	}
	if e.rawExtent < e.cfg.MinEventPixels() {
		return false
	}

	ev := models.Event{
		ID:    e.newID(),
		Title: DefaultTitle,
		Start: e.ghost.Start,
		End:   e.ghost.End,
		Color: palette.Neutral,
	}
	return e.docs.Apply(func(doc *models.Document) {
		doc.Events = append(doc.Events, ev)
	})
}

// commitDrag overwrites the dragged event in place, or appends a
// duplicate when the copy modifier is held at release. True no-ops are
// discarded silently.
func (e *Engine) commitDrag() bool {
	if e.proposed.Start.Equal(e.origin.Start) && e.proposed.End.Equal(e.origin.End) {
		return false
	}

	if e.copyActive && e.mode == ModeMove {
		dup := e.proposed
		dup.ID = e.newID()
		return e.docs.Apply(func(doc *models.Document) {
			doc.Events = append(doc.Events, dup)
		})
	}

	proposed := e.proposed
	return e.docs.Apply(func(doc *models.Document) {
		if ev := doc.EventByID(proposed.ID); ev != nil {
			ev.Start = proposed.Start
			ev.End = proposed.End
		}
	})
}

// timeAt converts a column offset into an absolute timestamp on the
// given itinerary day. Offsets past midnight roll into the next calendar
// date, which is what keeps a 25:00 block on the right clock time.
func (e *Engine) timeAt(day int, offset float32) time.Time {
	minutes := e.cfg.MinutesForOffset(offset)
	return dayDate(e.itinerary, day).Add(time.Duration(minutes) * time.Minute)
}

func (e *Engine) pixelsToMinutes(px float32) int {
	return int(math.Round(float64(px) / float64(e.cfg.PixelsPerHour) * 60))
}

// dayDate returns the calendar date of an itinerary column. Draft days
// without dates fall back to a fixed base so timestamps stay coherent
// relative to one another.
func dayDate(itinerary []models.ItineraryDay, day int) time.Time {
	if day < 0 {
		day = 0
	}
	if day < len(itinerary) && !itinerary[day].Date.IsZero() {
		d := itinerary[day].Date
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	}
	base := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.Local)
	return base.AddDate(0, 0, day)
}
