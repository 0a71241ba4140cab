// Package history implements the bounded, branch-truncating undo/redo
// stack of document snapshots.
package history

import "github.com/venuedeck/venuedeck/pkg/models"

// DefaultCap bounds the number of retained snapshots.
const DefaultCap = 30

// Store holds an ordered sequence of document snapshots plus a cursor.
// The cursor always points at the snapshot matching the live document.
// Not safe for concurrent use; the document store serializes access.
type Store struct {
	snapshots []models.Document
	cursor    int
	cap       int
}

// NewStore creates a store seeded with the hydration-point snapshot,
// which becomes snapshot zero and the undo floor.
func NewStore(initial models.Document) *Store {
	return NewStoreWithCap(initial, DefaultCap)
}

// NewStoreWithCap is NewStore with an explicit snapshot cap.
func NewStoreWithCap(initial models.Document, cap int) *Store {
	if cap < 1 {
		cap = 1
	}
	return &Store{
		snapshots: []models.Document{initial.Clone()},
		cursor:    0,
		cap:       cap,
	}
}

// Commit records a new version. A document semantically equal to the
// snapshot at the cursor is skipped silently, so gestures that end where
// they started never pollute the history. Committing truncates any redo
// branch and evicts the oldest snapshot once the cap is exceeded.
// Reports whether a snapshot was recorded.
func (s *Store) Commit(doc models.Document) bool {
	if doc.Equal(s.snapshots[s.cursor]) {
		return false
	}

	s.snapshots = append(s.snapshots[:s.cursor+1], doc.Clone())
	s.cursor++

	if len(s.snapshots) > s.cap {
		s.snapshots = s.snapshots[1:]
		s.cursor--
	}
	return true
}

// Undo moves the cursor back one snapshot and returns it for the caller
// to adopt as the live document. At the floor it returns ok=false.
func (s *Store) Undo() (models.Document, bool) {
	if s.cursor == 0 {
		return models.Document{}, false
	}
	s.cursor--
	return s.snapshots[s.cursor].Clone(), true
}

// Redo moves the cursor forward one snapshot. At the tip it returns
// ok=false.
func (s *Store) Redo() (models.Document, bool) {
	if s.cursor >= len(s.snapshots)-1 {
		return models.Document{}, false
	}
	s.cursor++
	return s.snapshots[s.cursor].Clone(), true
}

// CanUndo reports whether Undo would move the cursor.
func (s *Store) CanUndo() bool { return s.cursor > 0 }

// CanRedo reports whether Redo would move the cursor.
func (s *Store) CanRedo() bool { return s.cursor < len(s.snapshots)-1 }

// Len returns the number of retained snapshots.
func (s *Store) Len() int { return len(s.snapshots) }

// Current returns a copy of the snapshot at the cursor.
func (s *Store) Current() models.Document {
	return s.snapshots[s.cursor].Clone()
}
