// Package store persists audit sessions and their archived snapshots.
package store

import (
	"fmt"

	"github.com/taxpilot-dev/taxpilot/internal/model"
)

// Store keeps completed audit sessions and freezes them into archives.
// A failed Save never invalidates the computed session the caller
// holds; persistence errors are reported and the caller moves on.
type Store interface {
	// Save inserts or replaces a session.
	Save(session *model.Session) error
	// Get returns a session by ID.
	Get(id string) (*model.Session, error)
	// ListCompleted returns completed sessions most-recent-first. A
	// non-positive limit returns them all.
	ListCompleted(limit int) ([]*model.Session, error)
	// Archive freezes a completed session together with the balance
	// snapshot it audited. Archiving a missing or non-completed
	// session fails; a session with remaining blocking anomalies
	// requires force.
	Archive(sessionID string, snapshot model.Snapshot, force bool) (*model.Archive, error)
	// ListArchives returns all archives, oldest fiscal year first.
	ListArchives() ([]model.Archive, error)
	// Close releases the underlying resources.
	Close() error
}

// InvalidStateError rejects an operation on a session whose lifecycle
// state does not allow it.
type InvalidStateError struct {
	ID     string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("session %s: %s", e.ID, e.Reason)
}

// PersistenceError wraps a storage failure. The audit result the caller
// computed stays valid.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
