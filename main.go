package main

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/google/uuid"

	"github.com/venuedeck/venuedeck/pkg/clipboard"
	"github.com/venuedeck/venuedeck/pkg/engine"
	"github.com/venuedeck/venuedeck/pkg/grid"
	"github.com/venuedeck/venuedeck/pkg/ingest"
	"github.com/venuedeck/venuedeck/pkg/models"
	"github.com/venuedeck/venuedeck/pkg/palette"
	"github.com/venuedeck/venuedeck/pkg/schedule"
	"github.com/venuedeck/venuedeck/pkg/store"
)

type VenueDeck struct {
	app     fyne.App
	config  *Config
	gridCfg grid.Config

	docs     *store.DocumentStore
	engine   *engine.Engine
	clip     *clipboard.Slot
	palette  *palette.Palette
	client   *schedule.Client
	ingestor ingest.Ingestor

	voyageID string // empty for an unpublished draft
	window   *ScheduleWindow
}

func main() {
	vd := &VenueDeck{
		app:  app.New(),
		clip: clipboard.NewSlot(),
	}

	if err := vd.initialize(); err != nil {
		log.Fatal(err)
	}

	vd.run()
}

func (vd *VenueDeck) initialize() error {
	vd.config = loadConfig(vd.app)
	vd.gridCfg = vd.config.GridConfig()

	if err := setupAutostart(vd.config.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}
	saveConfig(vd.app, vd.config)

	pal, err := palette.Load(vd.config.PaletteFile)
	if err != nil {
		log.Printf("Warning: palette overrides not loaded: %v", err)
		pal = palette.New()
	}
	vd.palette = pal

	vd.client = newClientFor(vd)
	vd.ingestor = &ingest.ICSImporter{}

	vd.docs = store.NewDocumentStore(newDraftDocument(vd.config.DefaultDays))
	vd.engine = newEngineFor(vd)

	vd.window = NewScheduleWindow(vd)
	return nil
}

func (vd *VenueDeck) run() {
	vd.window.Show()
	vd.app.Run()
}

func newEngineFor(vd *VenueDeck) *engine.Engine {
	return engine.New(vd.gridCfg, vd.docs)
}

func newClientFor(vd *VenueDeck) *schedule.Client {
	return schedule.NewClient(vd.config.APIBaseURL, vd.config.APIToken)
}

// newDraftDocument builds an empty schedule with provisional dates
// starting today; the itinerary editor replaces them once the sailing
// is known.
func newDraftDocument(days int) models.Document {
	if days < 1 {
		days = 1
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	itinerary := make([]models.ItineraryDay, days)
	for i := range itinerary {
		itinerary[i] = models.ItineraryDay{
			DayNumber: i + 1,
			Date:      today.AddDate(0, 0, i),
			Location:  "At Sea",
		}
	}
	return models.Document{Itinerary: itinerary}
}

// adoptIngestResult converts a raw ingestion result into a fresh draft
// document, assigning ids and category colors.
func (vd *VenueDeck) adoptIngestResult(res *ingest.Result) models.Document {
	doc := models.Document{}

	for _, raw := range res.Itinerary {
		doc.Itinerary = append(doc.Itinerary, models.ItineraryDay{
			DayNumber: raw.DayNumber,
			Date:      raw.Date,
			Location:  raw.Location,
			Arrival:   raw.Arrival,
			Departure: raw.Departure,
		})
	}
	doc.RenumberItinerary()

	for _, raw := range res.Events {
		cat := matchCategory(raw.Type)
		doc.Events = append(doc.Events, models.Event{
			ID:                  uuid.NewString(),
			Title:               raw.Title,
			Start:               raw.Start,
			End:                 raw.End,
			Category:            cat,
			Color:               vd.palette.CategoryColor(cat, raw.Title),
			Notes:               raw.Notes,
			TimeDisplayOverride: raw.TimeLabel,
		})
	}

	for _, raw := range res.OtherVenueShows {
		doc.OtherVenueShows = append(doc.OtherVenueShows, models.OtherVenueShow{
			Venue: raw.Venue,
			Date:  raw.Date,
			Title: raw.Title,
			Time:  raw.Time,
		})
	}
	return doc
}

// matchCategory maps a source's free-text type hint onto the closed
// enumeration; anything unknown stays unset.
func matchCategory(hint string) models.Category {
	for _, cat := range models.Categories {
		if string(cat) == hint {
			return cat
		}
	}
	return models.CategoryUnset
}
