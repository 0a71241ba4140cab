// Package store owns the live schedule document and its edit history.
package store

import (
	"sync"

	"github.com/venuedeck/venuedeck/pkg/history"
	"github.com/venuedeck/venuedeck/pkg/models"
)

// DocumentStore holds the authoritative Document plus its history store
// behind one mutex. The UI thread performs all edits, but hydration and
// file ingestion finish on background goroutines, so access is guarded
// the same way the rest of the app guards its stores.
type DocumentStore struct {
	mu        sync.RWMutex
	doc       models.Document
	history   *history.Store
	persisted models.Document // last version sent to or received from the API
}

// NewDocumentStore creates a store around a hydrated (or empty-draft)
// document; that version becomes history snapshot zero.
func NewDocumentStore(doc models.Document) *DocumentStore {
	return &DocumentStore{
		doc:       doc.Clone(),
		history:   history.NewStore(doc),
		persisted: doc.Clone(),
	}
}

// Current returns a deep copy of the live document.
func (ds *DocumentStore) Current() models.Document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.doc.Clone()
}

// Apply runs a mutation against a copy of the live document and commits
// the result. Mutations that leave the document semantically unchanged
// record nothing. Reports whether a new version was committed.
func (ds *DocumentStore) Apply(mutate func(*models.Document)) bool {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	next := ds.doc.Clone()
	mutate(&next)

	if !ds.history.Commit(next) {
		return false
	}
	ds.doc = next
	return true
}

// Undo adopts the previous snapshot as the live document. No-op at the
// history floor.
func (ds *DocumentStore) Undo() bool {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	doc, ok := ds.history.Undo()
	if !ok {
		return false
	}
	ds.doc = doc
	return true
}

// Redo adopts the next snapshot as the live document. No-op at the tip.
func (ds *DocumentStore) Redo() bool {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	doc, ok := ds.history.Redo()
	if !ok {
		return false
	}
	ds.doc = doc
	return true
}

// CanUndo reports whether an undo step exists.
func (ds *DocumentStore) CanUndo() bool {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.history.CanUndo()
}

// CanRedo reports whether a redo step exists.
func (ds *DocumentStore) CanRedo() bool {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.history.CanRedo()
}

// Replace swaps in a wholly new document (voyage switch, new draft,
// fresh hydration) and resets history with it as snapshot zero. There is
// no partial teardown.
func (ds *DocumentStore) Replace(doc models.Document) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	ds.doc = doc.Clone()
	ds.history = history.NewStore(doc)
	ds.persisted = doc.Clone()
}

// MarkPersisted records the live document as the last version known to
// the schedule API.
func (ds *DocumentStore) MarkPersisted() {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.persisted = ds.doc.Clone()
}

// Dirty reports whether the live document differs from the last
// persisted version.
func (ds *DocumentStore) Dirty() bool {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return !ds.doc.Equal(ds.persisted)
}
