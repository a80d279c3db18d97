package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionStatus is the lifecycle state of an audit session.
type SessionStatus string

const (
	SessionRunning   SessionStatus = "running"
	SessionCompleted SessionStatus = "completed"
	SessionFailed    SessionStatus = "failed"
)

// LevelStats counts the outcomes of one control level.
type LevelStats struct {
	Total         int `json:"total"`
	OK            int `json:"ok"`
	Anomalies     int `json:"anomalies"`
	NotApplicable int `json:"not_applicable"`
}

// Summary aggregates a session's results into the figures downstream
// gating reads: the global score and the remaining blocking anomalies.
type Summary struct {
	TotalControls     int                  `json:"total_controls"`
	BySeverity        map[Severity]int     `json:"by_severity"`
	ByLevel           map[Level]LevelStats `json:"by_level"`
	GlobalScore       int                  `json:"global_score"`
	RemainingBlocking int                  `json:"remaining_blocking"`
}

// Session is one audit run. It is mutated only by the orchestrator while
// running and frozen once its status is SessionCompleted.
type Session struct {
	ID         string          `json:"id"`
	FiscalYear string          `json:"fiscal_year"`
	Sector     string          `json:"sector"`
	Status     SessionStatus   `json:"status"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at,omitempty"`
	Results    []ControlResult `json:"results"`
	Summary    Summary         `json:"summary"`
}

// Snapshot freezes the balance a session audited, with grand totals and
// a content hash for later comparison against re-imports.
type Snapshot struct {
	ID          string          `json:"id"`
	TakenAt     time.Time       `json:"taken_at"`
	Lines       []BalanceEntry  `json:"lines"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Hash        string          `json:"hash"`
}

// Archive is a completed session frozen as the authoritative basis for
// downstream statement generation.
type Archive struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	FiscalYear string    `json:"fiscal_year"`
	ArchivedAt time.Time `json:"archived_at"`
	Forced     bool      `json:"forced"`
	Snapshot   Snapshot  `json:"snapshot"`
	Hash       string    `json:"hash"`
}
