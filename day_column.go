package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/venuedeck/venuedeck/pkg/engine"
	"github.com/venuedeck/venuedeck/pkg/grid"
	"github.com/venuedeck/venuedeck/pkg/models"
	"github.com/venuedeck/venuedeck/pkg/palette"
)

const (
	columnWidth      = float32(180)
	resizeBandPixels = float32(6)
	blockInset       = float32(2)
)

// DayColumn renders one itinerary day of the schedule grid and feeds
// its pointer input to the interaction engine. The window pushes fresh
// event data into every column after each document change; during a
// gesture only the engine's ghost moves.
type DayColumn struct {
	widget.BaseWidget

	vd  *VenueDeck
	day int

	events     []models.Event
	placements map[string]grid.Placement

	lastDrag    fyne.Position
	hoverTarget engine.TargetKind
}

var _ desktop.Mouseable = (*DayColumn)(nil)
var _ desktop.Hoverable = (*DayColumn)(nil)
var _ desktop.Cursorable = (*DayColumn)(nil)
var _ fyne.Draggable = (*DayColumn)(nil)
var _ fyne.SecondaryTappable = (*DayColumn)(nil)
var _ fyne.DoubleTappable = (*DayColumn)(nil)

func NewDayColumn(vd *VenueDeck, day int) *DayColumn {
	c := &DayColumn{
		vd:          vd,
		day:         day,
		hoverTarget: engine.TargetCell,
	}
	c.ExtendBaseWidget(c)
	return c
}

// SetData replaces the column's slice of the document. Only events
// whose visual day matches this column are passed in.
func (c *DayColumn) SetData(events []models.Event, placements map[string]grid.Placement) {
	c.events = events
	c.placements = placements
	c.Refresh()
}

// hitTest resolves what sits under a position: an event body, one of
// its resize bands, or the empty cell. Overlapping blocks resolve to
// the one drawn last.
func (c *DayColumn) hitTest(pos fyne.Position) engine.Target {
	target := engine.Target{Kind: engine.TargetCell}
	for _, ev := range c.events {
		p, ok := c.placements[ev.ID]
		if !ok {
			continue
		}
		left := p.LeftFraction() * columnWidth
		width := p.WidthFraction() * columnWidth
		if pos.X < left || pos.X > left+width {
			continue
		}
		if pos.Y < p.Top || pos.Y > p.Top+p.Height {
			continue
		}

		kind := engine.TargetBody
		if pos.Y <= p.Top+resizeBandPixels {
			kind = engine.TargetTopHandle
		} else if pos.Y >= p.Top+p.Height-resizeBandPixels {
			kind = engine.TargetBottomHandle
		}
		target = engine.Target{Kind: kind, EventID: ev.ID}
	}
	return target
}

// pointerDay converts a drag position, which fyne keeps relative to
// the column the gesture started in, into the itinerary index under
// the pointer.
func (c *DayColumn) pointerDay(x float32) int {
	return columnAtOffset(c.day, x, theme.Padding())
}

// columnAtOffset maps an X offset relative to the origin column onto
// the column under it. The window lays columns out every
// columnWidth+gap pixels; ignoring the gap skews the mapping by a few
// pixels per column crossed.
func columnAtOffset(origin int, x, gap float32) int {
	return origin + int(math.Floor(float64(x)/float64(columnWidth+gap)))
}

func (c *DayColumn) MouseDown(me *desktop.MouseEvent) {
	secondary := me.Button == desktop.MouseButtonSecondary
	target := c.hitTest(me.Position)
	if c.vd.engine.PointerDown(c.day, me.Position.Y, target, secondary) {
		c.lastDrag = me.Position
	}
}

func (c *DayColumn) MouseUp(me *desktop.MouseEvent) {
	state := c.vd.engine.State()
	if state != engine.StateCreating && state != engine.StateDragging {
		return
	}
	c.vd.engine.PointerUp(c.day, me.Position.Y, c.vd.window.CopyModifierHeld())
	c.vd.window.RefreshGrid()
}

func (c *DayColumn) Dragged(e *fyne.DragEvent) {
	c.lastDrag = e.Position
	c.vd.engine.PointerMove(c.pointerDay(e.Position.X), e.Position.Y, c.vd.window.CopyModifierHeld())
	c.vd.window.RefreshGhost()
}

// DragEnd covers releases that land outside every column; releases
// over a column commit through that column's MouseUp first, leaving
// the engine idle and this call a no-op.
func (c *DayColumn) DragEnd() {
	state := c.vd.engine.State()
	if state != engine.StateCreating && state != engine.StateDragging {
		return
	}
	c.vd.engine.PointerUp(c.pointerDay(c.lastDrag.X), c.lastDrag.Y, c.vd.window.CopyModifierHeld())
	c.vd.window.RefreshGrid()
}

func (c *DayColumn) MouseIn(me *desktop.MouseEvent) {
	c.vd.engine.Hover(c.day)
	c.hoverTarget = c.hitTest(me.Position).Kind
	c.Refresh()
}

func (c *DayColumn) MouseMoved(me *desktop.MouseEvent) {
	c.hoverTarget = c.hitTest(me.Position).Kind
}

func (c *DayColumn) MouseOut() {
	c.vd.engine.Unhover()
	c.hoverTarget = engine.TargetCell
	c.Refresh()
}

func (c *DayColumn) Cursor() desktop.Cursor {
	switch c.hoverTarget {
	case engine.TargetTopHandle, engine.TargetBottomHandle:
		return desktop.VResizeCursor
	case engine.TargetBody:
		return desktop.PointerCursor
	default:
		return desktop.DefaultCursor
	}
}

func (c *DayColumn) DoubleTapped(e *fyne.PointEvent) {
	target := c.hitTest(e.Position)
	if target.EventID == "" {
		return
	}
	c.vd.window.ShowEventEditor(target.EventID)
}

func (c *DayColumn) TappedSecondary(e *fyne.PointEvent) {
	if c.vd.engine.Blocked() {
		return
	}
	target := c.hitTest(e.Position)

	var items []*fyne.MenuItem
	if target.EventID != "" {
		id := target.EventID
		items = append(items,
			fyne.NewMenuItem("Edit...", func() { c.vd.window.ShowEventEditor(id) }),
			fyne.NewMenuItem("Copy", func() { c.copyEvent(id) }),
			fyne.NewMenuItem("Delete", func() { c.deleteEvent(id) }),
		)
	} else {
		paste := fyne.NewMenuItem("Paste", func() { c.pasteAt(e.Position.Y) })
		paste.Disabled = !c.vd.clip.HasContent()
		items = append(items, paste)
	}

	menu := fyne.NewMenu("", items...)
	widget.ShowPopUpMenuAtPosition(menu, fyne.CurrentApp().Driver().CanvasForObject(c), e.AbsolutePosition)
}

func (c *DayColumn) copyEvent(id string) {
	doc := c.vd.docs.Current()
	if ev := doc.EventByID(id); ev != nil {
		c.vd.clip.Copy(*ev)
	}
}

func (c *DayColumn) deleteEvent(id string) {
	c.vd.docs.Apply(func(doc *models.Document) {
		doc.RemoveEvent(id)
	})
	c.vd.window.RefreshGrid()
}

// pasteAt inserts the clipboard event at the snapped offset under the
// context-menu position, on this column's date.
func (c *DayColumn) pasteAt(y float32) {
	cfg := c.vd.gridCfg
	minutes := cfg.MinutesForOffset(cfg.Snap(cfg.ClampOffset(y)))

	doc := c.vd.docs.Current()
	if c.day >= len(doc.Itinerary) {
		return
	}
	date := doc.Itinerary[c.day].Date
	if date.IsZero() {
		return
	}

	ev, ok := c.vd.clip.Paste(date, time.Duration(minutes)*time.Minute)
	if !ok {
		return
	}
	c.vd.docs.Apply(func(doc *models.Document) {
		doc.Events = append(doc.Events, ev)
	})
	c.vd.window.RefreshGrid()
}

func (c *DayColumn) CreateRenderer() fyne.WidgetRenderer {
	r := &dayColumnRenderer{column: c}
	r.rebuild()
	return r
}

type dayColumnRenderer struct {
	column  *DayColumn
	objects []fyne.CanvasObject
}

func (r *dayColumnRenderer) rebuild() {
	c := r.column
	cfg := c.vd.gridCfg
	height := cfg.TotalHeight()

	bg := canvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	if c.vd.engine.HoverDay() == c.day {
		bg.FillColor = theme.Color(theme.ColorNameHover)
	}
	bg.Resize(fyne.NewSize(columnWidth, height))
	objects := []fyne.CanvasObject{bg}

	for h := 0; h <= cfg.VisibleHours; h++ {
		y := float32(h) * cfg.PixelsPerHour
		line := canvas.NewLine(theme.Color(theme.ColorNameSeparator))
		line.Position1 = fyne.NewPos(0, y)
		line.Position2 = fyne.NewPos(columnWidth, y)
		objects = append(objects, line)
	}

	for _, ev := range c.events {
		p, ok := c.placements[ev.ID]
		if !ok {
			continue
		}
		objects = append(objects, r.blockObjects(ev, p)...)
	}

	if ghost := c.vd.engine.Ghost(); ghost != nil && ghost.Day == c.day {
		objects = append(objects, r.ghostObjects(ghost)...)
	}

	r.objects = objects
}

// blockObjects draws one event as an outlined block with a lighter
// fill, the title, and the time range.
func (r *dayColumnRenderer) blockObjects(ev models.Event, p grid.Placement) []fyne.CanvasObject {
	left := p.LeftFraction()*columnWidth + blockInset
	width := p.WidthFraction()*columnWidth - 2*blockInset

	rect := canvas.NewRectangle(hexColor(palette.Lighten(ev.Color, 0.65)))
	rect.StrokeColor = hexColor(ev.Color)
	rect.StrokeWidth = 1.5
	rect.CornerRadius = 3
	rect.Move(fyne.NewPos(left, p.Top))
	rect.Resize(fyne.NewSize(width, p.Height))

	title := canvas.NewText(ev.Title, theme.Color(theme.ColorNameForeground))
	title.TextSize = 12
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Move(fyne.NewPos(left+4, p.Top+2))

	label := canvas.NewText(timeLabel(ev, p.Late), theme.Color(theme.ColorNameForeground))
	label.TextSize = 10
	label.Move(fyne.NewPos(left+4, p.Top+17))

	if p.Height < 30 {
		return []fyne.CanvasObject{rect, title}
	}
	return []fyne.CanvasObject{rect, title, label}
}

func (r *dayColumnRenderer) ghostObjects(g *engine.Ghost) []fyne.CanvasObject {
	rect := canvas.NewRectangle(color.NRGBA{R: 80, G: 130, B: 200, A: 70})
	rect.StrokeColor = color.NRGBA{R: 80, G: 130, B: 200, A: 200}
	rect.StrokeWidth = 1.5
	rect.Move(fyne.NewPos(blockInset, g.Top))
	rect.Resize(fyne.NewSize(columnWidth-2*blockInset, g.Height))

	text := fmt.Sprintf("%s - %s", g.Start.Format("15:04"), g.End.Format("15:04"))
	if g.Copy {
		text = "Copy: " + text
	}
	label := canvas.NewText(text, theme.Color(theme.ColorNameForeground))
	label.TextSize = 10
	label.Move(fyne.NewPos(blockInset+4, g.Top+2))

	return []fyne.CanvasObject{rect, label}
}

func (r *dayColumnRenderer) Layout(fyne.Size) {}

func (r *dayColumnRenderer) MinSize() fyne.Size {
	return fyne.NewSize(columnWidth, r.column.vd.gridCfg.TotalHeight())
}

func (r *dayColumnRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.column)
}

func (r *dayColumnRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *dayColumnRenderer) Destroy() {}

// timeLabel formats the block's time range. Imported rows may carry a
// preformatted label; clipped events end in "Late".
func timeLabel(ev models.Event, late bool) string {
	if ev.TimeDisplayOverride != "" {
		return ev.TimeDisplayOverride
	}
	if late {
		return fmt.Sprintf("%s - Late", ev.Start.Format("15:04"))
	}
	return fmt.Sprintf("%s - %s", ev.Start.Format("15:04"), ev.End.Format("15:04"))
}

func hexColor(hex string) color.Color {
	var r, g, b int
	if len(hex) != 7 || hex[0] != '#' {
		return color.NRGBA{R: 141, G: 153, B: 174, A: 255}
	}
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{R: 141, G: 153, B: 174, A: 255}
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

// TimeRuler is the fixed hour gutter drawn to the left of the day
// columns.
type TimeRuler struct {
	widget.BaseWidget
	cfg grid.Config
}

func NewTimeRuler(cfg grid.Config) *TimeRuler {
	t := &TimeRuler{cfg: cfg}
	t.ExtendBaseWidget(t)
	return t
}

func (t *TimeRuler) CreateRenderer() fyne.WidgetRenderer {
	objects := []fyne.CanvasObject{}
	for h := 0; h <= t.cfg.VisibleHours; h++ {
		hour := (t.cfg.StartHour + h) % 24
		label := canvas.NewText(fmt.Sprintf("%02d:00", hour), theme.Color(theme.ColorNameForeground))
		label.TextSize = 10
		label.Alignment = fyne.TextAlignTrailing
		label.Move(fyne.NewPos(0, float32(h)*t.cfg.PixelsPerHour-6))
		label.Resize(fyne.NewSize(44, 12))
		objects = append(objects, label)
	}
	return &timeRulerRenderer{ruler: t, objects: objects}
}

type timeRulerRenderer struct {
	ruler   *TimeRuler
	objects []fyne.CanvasObject
}

func (r *timeRulerRenderer) Layout(fyne.Size) {}

func (r *timeRulerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(50, r.ruler.cfg.TotalHeight())
}

func (r *timeRulerRenderer) Refresh()                     {}
func (r *timeRulerRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *timeRulerRenderer) Destroy()                     {}
