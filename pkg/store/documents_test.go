package store

import (
	"testing"
	"time"

	"github.com/venuedeck/venuedeck/pkg/models"
)

func seedDoc() models.Document {
	start := time.Date(2026, time.March, 2, 20, 0, 0, 0, time.UTC)
	return models.Document{
		Events: []models.Event{
			{ID: "ev1", Title: "Welcome Show", Start: start, End: start.Add(time.Hour)},
		},
		Itinerary: []models.ItineraryDay{
			{DayNumber: 1, Date: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), Location: "Miami"},
		},
	}
}

func TestApplyCommitsAndUndoes(t *testing.T) {
	ds := NewDocumentStore(seedDoc())

	changed := ds.Apply(func(doc *models.Document) {
		doc.Events[0].Title = "Farewell Show"
	})
	if !changed {
		t.Fatal("mutation should commit")
	}
	if got := ds.Current().Events[0].Title; got != "Farewell Show" {
		t.Errorf("title = %q after apply", got)
	}

	if !ds.Undo() {
		t.Fatal("undo should succeed")
	}
	if got := ds.Current().Events[0].Title; got != "Welcome Show" {
		t.Errorf("title = %q after undo", got)
	}

	if !ds.Redo() {
		t.Fatal("redo should succeed")
	}
	if got := ds.Current().Events[0].Title; got != "Farewell Show" {
		t.Errorf("title = %q after redo", got)
	}
}

func TestApplyNoopRecordsNothing(t *testing.T) {
	ds := NewDocumentStore(seedDoc())

	if ds.Apply(func(doc *models.Document) {}) {
		t.Error("empty mutation should commit nothing")
	}
	if ds.CanUndo() {
		t.Error("no-op apply must not create an undo step")
	}
}

func TestCurrentReturnsIsolatedCopy(t *testing.T) {
	ds := NewDocumentStore(seedDoc())

	doc := ds.Current()
	doc.Events[0].Title = "mutated"
	if ds.Current().Events[0].Title != "Welcome Show" {
		t.Error("Current() must not expose the live document's memory")
	}
}

func TestDirtyTracking(t *testing.T) {
	ds := NewDocumentStore(seedDoc())

	if ds.Dirty() {
		t.Error("fresh store should be clean")
	}

	ds.Apply(func(doc *models.Document) { doc.Events[0].Notes = "two encores" })
	if !ds.Dirty() {
		t.Error("edit should mark the store dirty")
	}

	ds.MarkPersisted()
	if ds.Dirty() {
		t.Error("persisting should clear the dirty flag")
	}

	// Undoing back past the persisted version is dirty again.
	ds.Undo()
	if !ds.Dirty() {
		t.Error("undo past the persisted version should be dirty")
	}
}

func TestReplaceResetsHistory(t *testing.T) {
	ds := NewDocumentStore(seedDoc())
	ds.Apply(func(doc *models.Document) { doc.Events[0].Title = "Changed" })

	next := seedDoc()
	next.Events[0].ID = "ev2"
	ds.Replace(next)

	if ds.CanUndo() {
		t.Error("replace must reset the undo history")
	}
	if ds.Dirty() {
		t.Error("replaced document starts clean")
	}
	if ds.Current().Events[0].ID != "ev2" {
		t.Error("replace should adopt the new document")
	}
}
