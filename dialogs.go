package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/venuedeck/venuedeck/pkg/models"
)

// submitOnEnter confirms the form when Enter is pressed in any of the
// single-line entries.
func submitOnEnter(d *dialog.FormDialog, entries ...*widget.Entry) {
	for _, entry := range entries {
		entry.OnSubmitted = func(string) { d.Submit() }
	}
}

// ShowEventEditor opens the inline editor for an event. The engine is
// blocked while any editor is open so pointer presses dismiss the
// editor instead of starting a gesture.
func (w *ScheduleWindow) ShowEventEditor(id string) {
	doc := w.vd.docs.Current()
	ev := doc.EventByID(id)
	if ev == nil {
		return
	}

	titleEntry := widget.NewEntry()
	titleEntry.SetText(ev.Title)

	startEntry := widget.NewEntry()
	startEntry.SetText(ev.Start.Format("15:04"))
	endEntry := widget.NewEntry()
	endEntry.SetText(ev.End.Format("15:04"))

	categoryNames := make([]string, 0, len(models.Categories)+1)
	categoryNames = append(categoryNames, "(none)")
	for _, cat := range models.Categories {
		categoryNames = append(categoryNames, string(cat))
	}
	categorySelect := widget.NewSelect(categoryNames, nil)
	if ev.Category == models.CategoryUnset {
		categorySelect.SetSelected("(none)")
	} else {
		categorySelect.SetSelected(string(ev.Category))
	}

	colorEntry := widget.NewEntry()
	colorEntry.SetText(ev.Color)
	colorEntry.SetPlaceHolder("#rrggbb, empty = category color")

	overrideEntry := widget.NewEntry()
	overrideEntry.SetText(ev.TimeDisplayOverride)
	overrideEntry.SetPlaceHolder("e.g. 7:30 & 9:30")

	notesEntry := widget.NewMultiLineEntry()
	notesEntry.SetText(ev.Notes)

	items := []*widget.FormItem{
		widget.NewFormItem("Title", titleEntry),
		widget.NewFormItem("Start", startEntry),
		widget.NewFormItem("End", endEntry),
		widget.NewFormItem("Category", categorySelect),
		widget.NewFormItem("Color", colorEntry),
		widget.NewFormItem("Time label", overrideEntry),
		widget.NewFormItem("Notes", notesEntry),
	}

	w.vd.engine.SetBlocked(true)
	d := dialog.NewForm("Edit Event", "Save", "Cancel", items, func(confirmed bool) {
		w.vd.engine.SetBlocked(false)
		if !confirmed {
			return
		}

		start, err := mergeClockTime(ev.Start, startEntry.Text)
		if err != nil {
			dialog.ShowError(fmt.Errorf("invalid start time: %v", err), w.win)
			return
		}
		end, err := mergeClockTime(ev.Start, endEntry.Text)
		if err != nil {
			dialog.ShowError(fmt.Errorf("invalid end time: %v", err), w.win)
			return
		}
		// A clock-time end at or before the start means the event runs
		// past midnight.
		if !end.After(start) {
			end = end.AddDate(0, 0, 1)
		}
		if end.Sub(start) < time.Duration(w.vd.gridCfg.MinEventMinutes)*time.Minute {
			dialog.ShowError(fmt.Errorf("events must be at least %d minutes long", w.vd.gridCfg.MinEventMinutes), w.win)
			return
		}

		category := models.CategoryUnset
		if categorySelect.Selected != "(none)" {
			category = models.Category(categorySelect.Selected)
		}
		color := colorEntry.Text
		if color == "" || (category != ev.Category && color == ev.Color) {
			color = w.vd.palette.CategoryColor(category, titleEntry.Text)
		}

		w.vd.docs.Apply(func(doc *models.Document) {
			if target := doc.EventByID(id); target != nil {
				target.Title = titleEntry.Text
				target.Start = start
				target.End = end
				target.Category = category
				target.Color = color
				target.Notes = notesEntry.Text
				target.TimeDisplayOverride = overrideEntry.Text
			}
		})
		w.RefreshGrid()
	}, w.win)
	submitOnEnter(d, titleEntry, startEntry, endEntry, colorEntry, overrideEntry)
	d.Show()
}

// mergeClockTime keeps the date of base and replaces its time of day.
func mergeClockTime(base time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(base.Year(), base.Month(), base.Day(), t.Hour(), t.Minute(), 0, 0, base.Location()), nil
}

// showItineraryEditor lists the voyage days with per-day editing and
// day add/remove at the tail.
func (w *ScheduleWindow) showItineraryEditor() {
	doc := w.vd.docs.Current()

	rows := container.NewVBox()
	for i := range doc.Itinerary {
		day := doc.Itinerary[i]
		label := fmt.Sprintf("Day %d  %s  %s", day.DayNumber, day.Date.Format("Jan 2"), day.Location)
		idx := i
		rows.Add(container.NewBorder(nil, nil, nil,
			widget.NewButton("Edit", func() { w.showItineraryDayEditor(idx) }),
			widget.NewLabel(label),
		))
	}

	var d dialog.Dialog
	buttons := container.NewHBox(
		widget.NewButton("Add Day", func() {
			w.vd.docs.Apply(func(doc *models.Document) {
				last := doc.Itinerary[len(doc.Itinerary)-1]
				doc.Itinerary = append(doc.Itinerary, models.ItineraryDay{
					Date:     last.Date.AddDate(0, 0, 1),
					Location: "At Sea",
				})
				doc.RenumberItinerary()
			})
			d.Hide()
			w.RefreshGrid()
			w.showItineraryEditor()
		}),
		widget.NewButton("Remove Last Day", func() {
			w.vd.docs.Apply(func(doc *models.Document) {
				if len(doc.Itinerary) > 1 {
					doc.Itinerary = doc.Itinerary[:len(doc.Itinerary)-1]
					doc.RenumberItinerary()
				}
			})
			d.Hide()
			w.RefreshGrid()
			w.showItineraryEditor()
		}),
	)

	w.vd.engine.SetBlocked(true)
	d = dialog.NewCustom("Itinerary", "Close", container.NewVBox(rows, buttons), w.win)
	d.SetOnClosed(func() { w.vd.engine.SetBlocked(false) })
	d.Show()
}

// showItineraryDayEditor edits one day. Port times are suppressed for
// at-sea days; an at-sea location wipes any stale times on save.
func (w *ScheduleWindow) showItineraryDayEditor(idx int) {
	doc := w.vd.docs.Current()
	if idx >= len(doc.Itinerary) {
		return
	}
	day := doc.Itinerary[idx]

	dateEntry := widget.NewEntry()
	if !day.Date.IsZero() {
		dateEntry.SetText(day.Date.Format("2006-01-02"))
	}
	dateEntry.SetPlaceHolder("2006-01-02")

	locationEntry := widget.NewEntry()
	locationEntry.SetText(day.Location)

	arrivalEntry := widget.NewEntry()
	arrivalEntry.SetText(day.Arrival)
	arrivalEntry.SetPlaceHolder("15:04")
	departureEntry := widget.NewEntry()
	departureEntry.SetText(day.Departure)
	departureEntry.SetPlaceHolder("15:04")
	if day.AtSea() {
		arrivalEntry.Disable()
		departureEntry.Disable()
	}
	locationEntry.OnChanged = func(text string) {
		probe := models.ItineraryDay{Location: text}
		if probe.AtSea() {
			arrivalEntry.Disable()
			departureEntry.Disable()
		} else {
			arrivalEntry.Enable()
			departureEntry.Enable()
		}
	}

	items := []*widget.FormItem{
		widget.NewFormItem("Date", dateEntry),
		widget.NewFormItem("Location", locationEntry),
		widget.NewFormItem("Arrival", arrivalEntry),
		widget.NewFormItem("Departure", departureEntry),
	}

	w.vd.engine.SetBlocked(true)
	d := dialog.NewForm(fmt.Sprintf("Day %d", day.DayNumber), "Save", "Cancel", items, func(confirmed bool) {
		w.vd.engine.SetBlocked(false)
		if !confirmed {
			return
		}

		date, err := time.ParseInLocation("2006-01-02", dateEntry.Text, time.Local)
		if err != nil {
			dialog.ShowError(fmt.Errorf("invalid date: %v", err), w.win)
			return
		}
		for _, clock := range []string{arrivalEntry.Text, departureEntry.Text} {
			if clock == "" {
				continue
			}
			if _, err := time.Parse("15:04", clock); err != nil {
				dialog.ShowError(fmt.Errorf("invalid port time %q", clock), w.win)
				return
			}
		}

		w.vd.docs.Apply(func(doc *models.Document) {
			if idx >= len(doc.Itinerary) {
				return
			}
			target := &doc.Itinerary[idx]
			target.Date = date
			target.Location = locationEntry.Text
			target.Arrival = arrivalEntry.Text
			target.Departure = departureEntry.Text
			if target.AtSea() {
				target.Arrival = ""
				target.Departure = ""
			}
		})
		w.RefreshGrid()
	}, w.win)
	submitOnEnter(d, dateEntry, locationEntry, arrivalEntry, departureEntry)
	d.Show()
}

// showOtherVenuesEditor manages the side-venue listings shown under
// the grid.
func (w *ScheduleWindow) showOtherVenuesEditor() {
	doc := w.vd.docs.Current()

	rows := container.NewVBox()
	for i, show := range doc.OtherVenueShows {
		label := fmt.Sprintf("%s  %s  %s %s", show.Date.Format("Jan 2"), show.Venue, show.Title, show.Time)
		idx := i
		rows.Add(container.NewBorder(nil, nil, nil,
			widget.NewButton("Delete", func() {
				w.vd.docs.Apply(func(doc *models.Document) {
					if idx < len(doc.OtherVenueShows) {
						doc.OtherVenueShows = append(doc.OtherVenueShows[:idx], doc.OtherVenueShows[idx+1:]...)
					}
				})
				w.RefreshGrid()
			}),
			widget.NewLabel(label),
		))
	}
	if len(doc.OtherVenueShows) == 0 {
		rows.Add(widget.NewLabel("No side-venue shows yet."))
	}

	var d dialog.Dialog
	addButton := widget.NewButton("Add Show", func() {
		d.Hide()
		w.showAddOtherVenueShow()
	})

	w.vd.engine.SetBlocked(true)
	d = dialog.NewCustom("Other Venues", "Close", container.NewVBox(rows, addButton), w.win)
	d.SetOnClosed(func() { w.vd.engine.SetBlocked(false) })
	d.Show()
}

func (w *ScheduleWindow) showAddOtherVenueShow() {
	venueEntry := widget.NewEntry()
	dateEntry := widget.NewEntry()
	dateEntry.SetPlaceHolder("2006-01-02")
	titleEntry := widget.NewEntry()
	timeEntry := widget.NewEntry()
	timeEntry.SetPlaceHolder("7:30 & 9:30")

	items := []*widget.FormItem{
		widget.NewFormItem("Venue", venueEntry),
		widget.NewFormItem("Date", dateEntry),
		widget.NewFormItem("Title", titleEntry),
		widget.NewFormItem("Times", timeEntry),
	}

	w.vd.engine.SetBlocked(true)
	d := dialog.NewForm("Add Show", "Add", "Cancel", items, func(confirmed bool) {
		w.vd.engine.SetBlocked(false)
		if !confirmed {
			return
		}
		date, err := time.ParseInLocation("2006-01-02", dateEntry.Text, time.Local)
		if err != nil {
			dialog.ShowError(fmt.Errorf("invalid date: %v", err), w.win)
			return
		}

		show := models.OtherVenueShow{
			Venue: venueEntry.Text,
			Date:  date,
			Title: titleEntry.Text,
			Time:  timeEntry.Text,
		}
		w.vd.docs.Apply(func(doc *models.Document) {
			// One listing per venue per date; a second add replaces it.
			for i, existing := range doc.OtherVenueShows {
				if existing.Venue == show.Venue && existing.Date.Equal(show.Date) {
					doc.OtherVenueShows[i] = show
					return
				}
			}
			doc.OtherVenueShows = append(doc.OtherVenueShows, show)
		})
		w.RefreshGrid()
	}, w.win)
	submitOnEnter(d, venueEntry, dateEntry, titleEntry, timeEntry)
	d.Show()
}

func (w *ScheduleWindow) showSettings() {
	cfg := w.vd.config

	autoStartCheck := widget.NewCheck("Launch at login", nil)
	autoStartCheck.SetChecked(cfg.AutoStart)

	apiEntry := widget.NewEntry()
	apiEntry.SetText(cfg.APIBaseURL)
	tokenEntry := widget.NewPasswordEntry()
	tokenEntry.SetText(cfg.APIToken)
	paletteEntry := widget.NewEntry()
	paletteEntry.SetText(cfg.PaletteFile)

	snapEntry := widget.NewEntry()
	snapEntry.SetText(fmt.Sprintf("%d", cfg.SnapMinutes))
	minEntry := widget.NewEntry()
	minEntry.SetText(fmt.Sprintf("%d", cfg.MinEventMinutes))
	boundaryEntry := widget.NewEntry()
	boundaryEntry.SetText(fmt.Sprintf("%d", cfg.DayBoundaryHour))

	items := []*widget.FormItem{
		widget.NewFormItem("", autoStartCheck),
		widget.NewFormItem("API base URL", apiEntry),
		widget.NewFormItem("API token", tokenEntry),
		widget.NewFormItem("Palette file", paletteEntry),
		widget.NewFormItem("Snap minutes", snapEntry),
		widget.NewFormItem("Min event minutes", minEntry),
		widget.NewFormItem("Late-night boundary hour", boundaryEntry),
	}

	w.vd.engine.SetBlocked(true)
	d := dialog.NewForm("Settings", "Save", "Cancel", items, func(confirmed bool) {
		w.vd.engine.SetBlocked(false)
		if !confirmed {
			return
		}

		snap, minMinutes, boundary := cfg.SnapMinutes, cfg.MinEventMinutes, cfg.DayBoundaryHour
		fmt.Sscanf(snapEntry.Text, "%d", &snap)
		fmt.Sscanf(minEntry.Text, "%d", &minMinutes)
		fmt.Sscanf(boundaryEntry.Text, "%d", &boundary)
		if snap < 1 || minMinutes < 1 || boundary < 0 || boundary > 12 {
			dialog.ShowError(fmt.Errorf("grid values out of range"), w.win)
			return
		}

		cfg.AutoStart = autoStartCheck.Checked
		cfg.APIBaseURL = apiEntry.Text
		cfg.APIToken = tokenEntry.Text
		cfg.PaletteFile = paletteEntry.Text
		cfg.SnapMinutes = snap
		cfg.MinEventMinutes = minMinutes
		cfg.DayBoundaryHour = boundary
		saveConfig(w.vd.app, cfg)

		w.vd.applyConfig()
	}, w.win)
	submitOnEnter(d, apiEntry, tokenEntry, paletteEntry, snapEntry, minEntry, boundaryEntry)
	d.Show()
}

// applyConfig rebuilds the pieces that capture grid policy.
func (vd *VenueDeck) applyConfig() {
	if err := setupAutostart(vd.config.AutoStart); err != nil {
		dialog.ShowError(fmt.Errorf("autostart: %v", err), vd.window.win)
	}

	vd.gridCfg = vd.config.GridConfig()
	vd.engine.Cancel()
	vd.engine = newEngineFor(vd)
	vd.client = newClientFor(vd)

	vd.window.columns = nil
	vd.window.RefreshGrid()
}
