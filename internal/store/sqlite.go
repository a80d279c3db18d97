package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/taxpilot-dev/taxpilot/internal/id"
	"github.com/taxpilot-dev/taxpilot/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id                 TEXT PRIMARY KEY,
	fiscal_year        TEXT NOT NULL,
	sector             TEXT NOT NULL,
	status             TEXT NOT NULL,
	started_at         TIMESTAMP NOT NULL,
	finished_at        TIMESTAMP,
	score              INTEGER NOT NULL,
	remaining_blocking INTEGER NOT NULL,
	results            TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS archives (
	id          TEXT PRIMARY KEY,
	session_id  TEXT NOT NULL REFERENCES sessions(id),
	fiscal_year TEXT NOT NULL,
	archived_at TIMESTAMP NOT NULL,
	hash        TEXT NOT NULL,
	forced      INTEGER NOT NULL,
	snapshot    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_finished ON sessions(status, finished_at);
CREATE INDEX IF NOT EXISTS idx_archives_year ON archives(fiscal_year);
`

// SQLite persists sessions in a single database file under the
// workspace.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (and if needed creates) the store at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &PersistenceError{Op: "open", Err: err}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &PersistenceError{Op: "migrate", Err: err}
	}
	return &SQLite{db: db, now: time.Now}, nil
}

func (s *SQLite) Save(session *model.Session) error {
	results, err := json.Marshal(struct {
		Results []model.ControlResult `json:"results"`
		Summary model.Summary         `json:"summary"`
	}{session.Results, session.Summary})
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO sessions
		(id, fiscal_year, sector, status, started_at, finished_at, score, remaining_blocking, results)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID, session.FiscalYear, session.Sector, string(session.Status),
		session.StartedAt, session.FinishedAt,
		session.Summary.GlobalScore, session.Summary.RemainingBlocking, string(results),
	)
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

func (s *SQLite) Get(sessionID string) (*model.Session, error) {
	row := s.db.QueryRow(`
		SELECT id, fiscal_year, sector, status, started_at, finished_at, results
		FROM sessions WHERE id = ?`, sessionID)
	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &InvalidStateError{ID: sessionID, Reason: "unknown session"}
	}
	if err != nil {
		return nil, &PersistenceError{Op: "get", Err: err}
	}
	return session, nil
}

func (s *SQLite) ListCompleted(limit int) ([]*model.Session, error) {
	query := `
		SELECT id, fiscal_year, sector, status, started_at, finished_at, results
		FROM sessions WHERE status = ? ORDER BY finished_at DESC`
	args := []any{string(model.SessionCompleted)}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	defer rows.Close()

	var out []*model.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, &PersistenceError{Op: "list", Err: err}
		}
		out = append(out, session)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	return out, nil
}

func (s *SQLite) Archive(sessionID string, snapshot model.Snapshot, force bool) (*model.Archive, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if gateErr := gateArchive(sessionID, session, true, force); gateErr != nil {
		return nil, gateErr
	}

	archive := model.Archive{
		ID:         id.NewArchiveID(session.FiscalYear),
		SessionID:  session.ID,
		FiscalYear: session.FiscalYear,
		ArchivedAt: s.now(),
		Forced:     force,
		Snapshot:   snapshot,
		Hash:       snapshot.Hash,
	}
	blob, err := json.Marshal(archive.Snapshot)
	if err != nil {
		return nil, &PersistenceError{Op: "archive", Err: err}
	}
	_, err = s.db.Exec(`
		INSERT INTO archives (id, session_id, fiscal_year, archived_at, hash, forced, snapshot)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		archive.ID, archive.SessionID, archive.FiscalYear, archive.ArchivedAt,
		archive.Hash, archive.Forced, string(blob),
	)
	if err != nil {
		return nil, &PersistenceError{Op: "archive", Err: err}
	}
	return &archive, nil
}

func (s *SQLite) ListArchives() ([]model.Archive, error) {
	rows, err := s.db.Query(`
		SELECT id, session_id, fiscal_year, archived_at, hash, forced, snapshot
		FROM archives ORDER BY fiscal_year ASC, archived_at ASC`)
	if err != nil {
		return nil, &PersistenceError{Op: "list archives", Err: err}
	}
	defer rows.Close()

	var out []model.Archive
	for rows.Next() {
		var a model.Archive
		var blob string
		if err := rows.Scan(&a.ID, &a.SessionID, &a.FiscalYear, &a.ArchivedAt, &a.Hash, &a.Forced, &blob); err != nil {
			return nil, &PersistenceError{Op: "list archives", Err: err}
		}
		if err := json.Unmarshal([]byte(blob), &a.Snapshot); err != nil {
			return nil, &PersistenceError{Op: "list archives", Err: err}
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "list archives", Err: err}
	}
	return out, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*model.Session, error) {
	var session model.Session
	var status, blob string
	var finished sql.NullTime
	if err := row.Scan(&session.ID, &session.FiscalYear, &session.Sector,
		&status, &session.StartedAt, &finished, &blob); err != nil {
		return nil, err
	}
	session.Status = model.SessionStatus(status)
	if finished.Valid {
		session.FinishedAt = finished.Time
	}
	var payload struct {
		Results []model.ControlResult `json:"results"`
		Summary model.Summary         `json:"summary"`
	}
	if err := json.Unmarshal([]byte(blob), &payload); err != nil {
		return nil, err
	}
	session.Results = payload.Results
	session.Summary = payload.Summary
	return &session, nil
}
