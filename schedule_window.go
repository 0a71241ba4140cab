package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/venuedeck/venuedeck/pkg/models"
)

const headerHeight = float32(64)

// ScheduleWindow is the main grid window: itinerary headers across the
// top, one interactive column per day, the hour ruler on the left and
// the side-venue listings along the bottom.
type ScheduleWindow struct {
	vd  *VenueDeck
	win fyne.Window

	columns []*DayColumn
	headers []*widget.Label
	footers []*widget.Label
	gridRow *fyne.Container
	headRow *fyne.Container
	footRow *fyne.Container
	status  *widget.Label

	altHeld bool
}

func NewScheduleWindow(vd *VenueDeck) *ScheduleWindow {
	w := &ScheduleWindow{
		vd:     vd,
		win:    vd.app.NewWindow("VenueDeck"),
		status: widget.NewLabel(""),
	}

	w.win.Resize(fyne.NewSize(1100, 720))
	w.win.SetMaster()

	w.buildContent()
	w.installShortcuts()
	w.RefreshGrid()
	return w
}

func (w *ScheduleWindow) Show() {
	w.win.Show()
}

// CopyModifierHeld reports whether the duplication modifier is down.
// Tracked via raw key events because drag frames carry no modifier
// state.
func (w *ScheduleWindow) CopyModifierHeld() bool {
	return w.altHeld
}

func (w *ScheduleWindow) buildContent() {
	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), w.vd.showOpenVoyage),
		widget.NewToolbarAction(theme.DocumentCreateIcon(), w.vd.showNewDraft),
		widget.NewToolbarAction(theme.UploadIcon(), w.vd.publish),
		widget.NewToolbarAction(theme.DownloadIcon(), w.vd.showImport),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), w.undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), w.redo),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ListIcon(), w.showItineraryEditor),
		widget.NewToolbarAction(theme.MediaMusicIcon(), w.showOtherVenuesEditor),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.SettingsIcon(), w.showSettings),
	)

	w.headRow = container.NewHBox()
	w.gridRow = container.NewHBox()
	w.footRow = container.NewHBox()

	body := container.NewScroll(container.NewVBox(w.headRow, w.gridRow, w.footRow))
	w.win.SetContent(container.NewBorder(toolbar, w.status, nil, nil, body))
}

// rebuildColumns recreates the per-day widgets. Called whenever the
// day count changes; cheap refreshes go through RefreshGrid.
func (w *ScheduleWindow) rebuildColumns(days int) {
	w.columns = w.columns[:0]
	w.headers = w.headers[:0]
	w.footers = w.footers[:0]
	w.headRow.Objects = nil
	w.gridRow.Objects = nil
	w.footRow.Objects = nil

	rulerPad := container.NewGridWrap(fyne.NewSize(50, headerHeight))
	w.headRow.Add(rulerPad)
	w.gridRow.Add(NewTimeRuler(w.vd.gridCfg))
	w.footRow.Add(container.NewGridWrap(fyne.NewSize(50, 1)))

	for i := 0; i < days; i++ {
		header := widget.NewLabel("")
		header.Wrapping = fyne.TextWrapWord
		header.Alignment = fyne.TextAlignCenter
		w.headers = append(w.headers, header)
		w.headRow.Add(container.NewGridWrap(fyne.NewSize(columnWidth, headerHeight), header))

		col := NewDayColumn(w.vd, i)
		w.columns = append(w.columns, col)
		w.gridRow.Add(col)

		footer := widget.NewLabel("")
		footer.Wrapping = fyne.TextWrapWord
		footer.TextStyle = fyne.TextStyle{Italic: true}
		w.footers = append(w.footers, footer)
		w.footRow.Add(container.NewGridWrap(fyne.NewSize(columnWidth, 70), footer))
	}
}

// RefreshGrid recomputes the layout from the live document and pushes
// it into every column.
func (w *ScheduleWindow) RefreshGrid() {
	doc := w.vd.docs.Current()
	if len(w.columns) != len(doc.Itinerary) {
		w.rebuildColumns(len(doc.Itinerary))
	}

	placements := w.vd.gridCfg.Layout(doc.Events)

	perDay := make([][]models.Event, len(doc.Itinerary))
	if len(perDay) > 0 {
		for _, ev := range doc.Events {
			day := w.vd.gridCfg.DayIndexClamped(ev.Start, doc.Itinerary)
			perDay[day] = append(perDay[day], ev)
		}
	}

	for i, col := range w.columns {
		w.headers[i].SetText(headerText(doc.Itinerary[i]))
		w.footers[i].SetText(footerText(doc, doc.Itinerary[i]))
		col.SetData(perDay[i], placements)
	}
	w.headRow.Refresh()
	w.footRow.Refresh()
	w.updateStatus()
}

// RefreshGhost repaints the columns without recomputing event data,
// the per-frame path while a gesture is active.
func (w *ScheduleWindow) RefreshGhost() {
	for _, col := range w.columns {
		col.Refresh()
	}
}

func (w *ScheduleWindow) updateStatus() {
	name := "unsaved draft"
	if w.vd.voyageID != "" {
		name = w.vd.voyageID
	}
	dirty := ""
	if w.vd.docs.Dirty() {
		dirty = " *"
	}
	w.status.SetText(fmt.Sprintf("%s%s", name, dirty))
	w.win.SetTitle(fmt.Sprintf("VenueDeck - %s%s", name, dirty))
}

func (w *ScheduleWindow) undo() {
	if w.vd.docs.Undo() {
		w.RefreshGrid()
	}
}

func (w *ScheduleWindow) redo() {
	if w.vd.docs.Redo() {
		w.RefreshGrid()
	}
}

// installShortcuts wires undo/redo chords, Escape cancellation and the
// copy-modifier key tracking.
func (w *ScheduleWindow) installShortcuts() {
	cv := w.win.Canvas()

	cv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		w.undo()
	})
	cv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		w.redo()
	})
	cv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}, func(fyne.Shortcut) {
		w.redo()
	})

	cv.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			w.vd.engine.Cancel()
			w.RefreshGhost()
		}
	})

	if dc, ok := cv.(desktop.Canvas); ok {
		dc.SetOnKeyDown(func(ev *fyne.KeyEvent) {
			if ev.Name == desktop.KeyAltLeft || ev.Name == desktop.KeyAltRight {
				w.altHeld = true
				w.vd.engine.SetCopyModifier(true)
				w.RefreshGhost()
			}
		})
		dc.SetOnKeyUp(func(ev *fyne.KeyEvent) {
			if ev.Name == desktop.KeyAltLeft || ev.Name == desktop.KeyAltRight {
				w.altHeld = false
				w.vd.engine.SetCopyModifier(false)
				w.RefreshGhost()
			}
		})
	}
}

func headerText(day models.ItineraryDay) string {
	date := ""
	if !day.Date.IsZero() {
		date = day.Date.Format("Mon Jan 2")
	}
	text := fmt.Sprintf("Day %d\n%s\n%s", day.DayNumber, date, day.Location)
	if times := day.DisplayTime(); times != "" {
		text += "\n" + times
	}
	return text
}

// footerText lists the other venues' shows for the day's date.
func footerText(doc models.Document, day models.ItineraryDay) string {
	if day.Date.IsZero() {
		return ""
	}
	text := ""
	for _, show := range doc.OtherVenueShows {
		if show.Date.Year() != day.Date.Year() || show.Date.YearDay() != day.Date.YearDay() {
			continue
		}
		if text != "" {
			text += "\n"
		}
		text += fmt.Sprintf("%s: %s %s", show.Venue, show.Title, show.Time)
	}
	return text
}
