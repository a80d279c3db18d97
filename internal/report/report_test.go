package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxpilot-dev/taxpilot/internal/model"
)

func reportSession() *model.Session {
	return &model.Session{
		ID:         "AUDIT-2025-deadbeef",
		FiscalYear: "2025",
		Sector:     "SMT",
		Status:     model.SessionCompleted,
		StartedAt:  time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2026, 1, 15, 9, 0, 3, 0, time.UTC),
		Results: []model.ControlResult{
			{
				Ref: "S-001", Name: "Balance non vide", Level: 1,
				Status: model.StatusOK, Severity: model.SeverityOK,
				Message: "la balance contient 42 lignes",
			},
			{
				Ref: "F-001", Name: "Equilibre global debit/credit", Level: 2,
				Status: model.StatusAnomaly, Severity: model.SeverityBlocking,
				Message:       "ecart de 1.00 entre debits et credits",
				Suggestion:    "passer l'ecart en compte d'attente 471000",
				RegulatoryRef: "AUDCIF art. 17",
				Details:       &model.Details{Accounts: []string{"471000"}},
			},
			{
				Ref: "AR-001", Name: "Continuite avec l'archive N-1", Level: 9,
				Status: model.StatusNotApplicable, Severity: model.SeverityOK,
				Message: "aucune archive anterieure",
			},
		},
		Summary: model.Summary{
			TotalControls:     3,
			GlobalScore:       50,
			RemainingBlocking: 1,
			ByLevel: map[model.Level]model.LevelStats{
				1: {Total: 1, OK: 1},
				2: {Total: 1, Anomalies: 1},
				9: {Total: 1, NotApplicable: 1},
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, reportSession()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, CSVHeader, lines[0])
	assert.Equal(t, "S-001;Balance non vide;1;OK;;la balance contient 42 lignes;;;", lines[1])
	assert.Equal(t, "F-001;Equilibre global debit/credit;2;ANOMALIE;BLOQUANT;"+
		"ecart de 1.00 entre debits et credits;"+
		"passer l'ecart en compte d'attente 471000;471000;AUDCIF art. 17", lines[2])
	assert.Equal(t, "AR-001;Continuite avec l'archive N-1;9;NON_APPLICABLE;;aucune archive anterieure;;;", lines[3])
}

func TestWriteCSVDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	session := reportSession()
	require.NoError(t, WriteCSV(&a, session))
	require.NoError(t, WriteCSV(&b, session))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, reportSession()))
	out := buf.String()

	assert.Contains(t, out, "AUDIT-2025-deadbeef")
	assert.Contains(t, out, "Score global : 50/100")
	assert.Contains(t, out, "Controles structurels")
	assert.Contains(t, out, "Controles fondamentaux")
	assert.Contains(t, out, "Archives multi-exercices")
	assert.NotContains(t, out, "Conformite OHADA") // no level-3 results

	// Anomalies are flagged, severity shown only on anomalies.
	assert.Contains(t, out, `class="anomalie"`)
	assert.Contains(t, out, "BLOQUANT")
	assert.Equal(t, 1, strings.Count(out, "BLOQUANT"))

	// Levels appear in execution order.
	assert.Less(t, strings.Index(out, "Controles structurels"), strings.Index(out, "Controles fondamentaux"))
	assert.Less(t, strings.Index(out, "Controles fondamentaux"), strings.Index(out, "Archives multi-exercices"))
}

func TestWriteHTMLDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	session := reportSession()
	require.NoError(t, WriteHTML(&a, session))
	require.NoError(t, WriteHTML(&b, session))
	assert.Equal(t, a.Bytes(), b.Bytes())
}
