package auditlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

func testEvent() Event {
	return Event{
		Timestamp:  testTime,
		Action:     ActionAudit,
		SessionID:  "AUDIT-2025-deadbeef",
		FiscalYear: "2025",
		Details:    "score 87, 1 anomalie bloquante",
	}
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	err := Append(dir, []Event{testEvent()})
	require.NoError(t, err)

	events, err := Read(dir)
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, ActionAudit, events[0].Action)
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Event{testEvent()}))

	e2 := testEvent()
	e2.Action = ActionArchive
	e2.Details = "archive ARCH-2025 forcee=false"
	require.NoError(t, Append(dir, []Event{e2}))

	events, err := Read(dir)
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, ActionAudit, events[0].Action)
	assert.Equal(t, ActionArchive, events[1].Action)
}

func TestRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := testEvent()
	require.NoError(t, Append(dir, []Event{original}))

	events, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, events, 1)

	got := events[0]
	assert.True(t, original.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, original.Action, got.Action)
	assert.Equal(t, original.SessionID, got.SessionID)
	assert.Equal(t, original.FiscalYear, got.FiscalYear)
	assert.Equal(t, original.Details, got.Details)
}

func TestRead_NotFound(t *testing.T) {
	dir := t.TempDir()
	events, err := Read(dir)
	require.NoError(t, err)
	assert.Nil(t, events)
}

func TestRead_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "logs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logs", "audit-log.csv"), []byte(Header+"\n"), 0o644))

	events, err := Read(dir)
	require.NoError(t, err)
	assert.Nil(t, events)
}

func TestUnmarshalEvent_BadFieldCount(t *testing.T) {
	_, err := UnmarshalEvent([]string{"one", "two"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected 5 fields")
}

func TestAppend_CreatesDir(t *testing.T) {
	dir := t.TempDir()
	err := Append(dir, []Event{testEvent()})
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
