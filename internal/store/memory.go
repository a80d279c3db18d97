package store

import (
	"sort"
	"sync"
	"time"

	"github.com/taxpilot-dev/taxpilot/internal/id"
	"github.com/taxpilot-dev/taxpilot/internal/model"
)

// Memory is an in-process Store for tests and one-shot CLI runs that do
// not need a database file.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
	archives []model.Archive
	now      func() time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		sessions: make(map[string]*model.Session),
		now:      time.Now,
	}
}

func (m *Memory) Save(session *model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *session
	m.sessions[session.ID] = &copied
	return nil
}

func (m *Memory) Get(sessionID string) (*model.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, &InvalidStateError{ID: sessionID, Reason: "unknown session"}
	}
	copied := *s
	return &copied, nil
}

func (m *Memory) ListCompleted(limit int) ([]*model.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*model.Session
	for _, s := range m.sessions {
		if s.Status == model.SessionCompleted {
			copied := *s
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FinishedAt.After(out[j].FinishedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) Archive(sessionID string, snapshot model.Snapshot, force bool) (*model.Archive, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if err := gateArchive(sessionID, s, ok, force); err != nil {
		return nil, err
	}
	archive := model.Archive{
		ID:         id.NewArchiveID(s.FiscalYear),
		SessionID:  s.ID,
		FiscalYear: s.FiscalYear,
		ArchivedAt: m.now(),
		Forced:     force,
		Snapshot:   snapshot,
		Hash:       snapshot.Hash,
	}
	m.archives = append(m.archives, archive)
	return &archive, nil
}

func (m *Memory) ListArchives() ([]model.Archive, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Archive, len(m.archives))
	copy(out, m.archives)
	sort.Slice(out, func(i, j int) bool { return out[i].FiscalYear < out[j].FiscalYear })
	return out, nil
}

func (m *Memory) Close() error { return nil }

// gateArchive applies the archive preconditions shared by every Store.
func gateArchive(sessionID string, s *model.Session, ok, force bool) error {
	if !ok {
		return &InvalidStateError{ID: sessionID, Reason: "unknown session"}
	}
	if s.Status != model.SessionCompleted {
		return &InvalidStateError{ID: sessionID, Reason: "only completed sessions can be archived"}
	}
	if s.Summary.RemainingBlocking > 0 && !force {
		return &InvalidStateError{
			ID:     sessionID,
			Reason: "blocking anomalies remain; archiving requires force",
		}
	}
	return nil
}
