package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxpilot-dev/taxpilot/internal/balance"
	"github.com/taxpilot-dev/taxpilot/internal/model"
)

func completedSession(sessionID, fiscalYear string, blocking int, finished time.Time) *model.Session {
	return &model.Session{
		ID:         sessionID,
		FiscalYear: fiscalYear,
		Sector:     "SMT",
		Status:     model.SessionCompleted,
		StartedAt:  finished.Add(-time.Minute),
		FinishedAt: finished,
		Results: []model.ControlResult{
			{Ref: "F-001", Name: "Equilibre global debit/credit", Level: 2, Status: model.StatusOK},
		},
		Summary: model.Summary{
			TotalControls:     1,
			GlobalScore:       100,
			RemainingBlocking: blocking,
		},
	}
}

func testSnapshot() model.Snapshot {
	entries := []model.BalanceEntry{
		{Account: "101000", Label: "Capital", CreditClosing: decimal.NewFromInt(100)},
		{Account: "571000", Label: "Caisse", DebitClosing: decimal.NewFromInt(100)},
	}
	return balance.TakeSnapshot("SNAP-1", entries, time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC))
}

// Both implementations must satisfy the same contract.
func stores(t *testing.T) map[string]Store {
	t.Helper()
	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })
	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": sqlite,
	}
}

func TestSaveAndGet(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			session := completedSession("AUDIT-2025-11111111", "2025", 0, time.Now().UTC().Truncate(time.Second))
			require.NoError(t, s.Save(session))

			got, err := s.Get(session.ID)
			require.NoError(t, err)
			assert.Equal(t, session.ID, got.ID)
			assert.Equal(t, model.SessionCompleted, got.Status)
			assert.Equal(t, 100, got.Summary.GlobalScore)
			require.Len(t, got.Results, 1)
			assert.Equal(t, "F-001", got.Results[0].Ref)
		})
	}
}

func TestGetUnknownSession(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get("AUDIT-2025-ffffffff")
			var invalid *InvalidStateError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestListCompletedMostRecentFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Save(completedSession("AUDIT-2023-aaaaaaaa", "2023", 0, base.Add(-48*time.Hour))))
			require.NoError(t, s.Save(completedSession("AUDIT-2025-cccccccc", "2025", 0, base)))
			require.NoError(t, s.Save(completedSession("AUDIT-2024-bbbbbbbb", "2024", 0, base.Add(-24*time.Hour))))

			running := completedSession("AUDIT-2025-dddddddd", "2025", 0, base.Add(time.Hour))
			running.Status = model.SessionRunning
			require.NoError(t, s.Save(running))

			all, err := s.ListCompleted(0)
			require.NoError(t, err)
			require.Len(t, all, 3)
			assert.Equal(t, "AUDIT-2025-cccccccc", all[0].ID)
			assert.Equal(t, "AUDIT-2024-bbbbbbbb", all[1].ID)
			assert.Equal(t, "AUDIT-2023-aaaaaaaa", all[2].ID)

			two, err := s.ListCompleted(2)
			require.NoError(t, err)
			require.Len(t, two, 2)
			assert.Equal(t, "AUDIT-2025-cccccccc", two[0].ID)
		})
	}
}

func TestArchiveCompletedSession(t *testing.T) {
	// Scenario E, happy path: completed, no blocking anomalies.
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			session := completedSession("AUDIT-2025-11111111", "2025", 0, time.Now().UTC())
			require.NoError(t, s.Save(session))

			snapshot := testSnapshot()
			archive, err := s.Archive(session.ID, snapshot, false)
			require.NoError(t, err)
			assert.Equal(t, session.ID, archive.SessionID)
			assert.Equal(t, "2025", archive.FiscalYear)
			assert.False(t, archive.Forced)
			assert.Equal(t, snapshot.Hash, archive.Hash)

			archives, err := s.ListArchives()
			require.NoError(t, err)
			require.Len(t, archives, 1)
			assert.Equal(t, archive.ID, archives[0].ID)
			assert.Equal(t, snapshot.Hash, archives[0].Snapshot.Hash)
			require.Len(t, archives[0].Snapshot.Lines, 2)
		})
	}
}

func TestArchiveBlockingRequiresForce(t *testing.T) {
	// Scenario E, gate: remaining blocking anomalies need force.
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			session := completedSession("AUDIT-2025-22222222", "2025", 1, time.Now().UTC())
			require.NoError(t, s.Save(session))

			_, err := s.Archive(session.ID, testSnapshot(), false)
			var invalid *InvalidStateError
			require.ErrorAs(t, err, &invalid)

			archive, err := s.Archive(session.ID, testSnapshot(), true)
			require.NoError(t, err)
			assert.True(t, archive.Forced)
		})
	}
}

func TestArchiveRejectsMissingOrRunning(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			var invalid *InvalidStateError
			_, err := s.Archive("AUDIT-2025-ffffffff", testSnapshot(), false)
			require.ErrorAs(t, err, &invalid)

			running := completedSession("AUDIT-2025-33333333", "2025", 0, time.Now().UTC())
			running.Status = model.SessionRunning
			require.NoError(t, s.Save(running))
			_, err = s.Archive(running.ID, testSnapshot(), false)
			require.ErrorAs(t, err, &invalid)
		})
	}
}
