// Package auditlog keeps an append-only trail of audit events in
// logs/audit-log.csv under the workspace. Every session run, archive
// and export leaves a row so the history of a fiscal year can be
// reconstructed without opening the session store.
package auditlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Event is one row in the audit log.
type Event struct {
	Timestamp  time.Time
	Action     string
	SessionID  string
	FiscalYear string
	Details    string
}

// Actions recorded in the log.
const (
	ActionAudit   = "audit"
	ActionArchive = "archive"
	ActionExport  = "export"
	ActionImport  = "import"
)

// Header is the CSV header for audit-log.csv.
const Header = "timestamp,action,session_id,fiscal_year,details"

const (
	numFields     = 5
	logDir        = "logs"
	logFile       = "logs/audit-log.csv"
	colTimestamp  = 0
	colAction     = 1
	colSessionID  = 2
	colFiscalYear = 3
	colDetails    = 4
)

// MarshalEvent converts an Event to a CSV row.
func MarshalEvent(e Event) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colAction] = e.Action
	row[colSessionID] = e.SessionID
	row[colFiscalYear] = e.FiscalYear
	row[colDetails] = e.Details
	return row
}

// UnmarshalEvent converts a CSV row to an Event.
func UnmarshalEvent(record []string) (Event, error) {
	if len(record) != numFields {
		return Event{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Event{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Event{
		Timestamp:  ts,
		Action:     record[colAction],
		SessionID:  record[colSessionID],
		FiscalYear: record[colFiscalYear],
		Details:    record[colDetails],
	}, nil
}

// Append writes events to <workspace>/logs/audit-log.csv, creating the
// file and header if needed.
func Append(workspace string, events []Event) error {
	dir := filepath.Join(workspace, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(workspace, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range events {
		if err := cw.Write(MarshalEvent(e)); err != nil {
			return fmt.Errorf("writing event %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all events from <workspace>/logs/audit-log.csv.
// Returns nil if the file does not exist.
func Read(workspace string) ([]Event, error) {
	path := filepath.Join(workspace, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	return readEvents(f)
}

func readEvents(r io.Reader) ([]Event, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading audit log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var events []Event
	for i, rec := range records[1:] {
		e, err := UnmarshalEvent(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		events = append(events, e)
	}
	return events, nil
}
