package audit

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxpilot-dev/taxpilot/internal/aggregate"
	"github.com/taxpilot-dev/taxpilot/internal/mapping"
	"github.com/taxpilot-dev/taxpilot/internal/model"
	"github.com/taxpilot-dev/taxpilot/internal/plan"
	"github.com/taxpilot-dev/taxpilot/internal/rules"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func entry(account, label, debit, credit string) model.BalanceEntry {
	return model.BalanceEntry{
		Account:       account,
		Label:         label,
		DebitClosing:  dec(debit),
		CreditClosing: dec(credit),
	}
}

func newOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	reg, err := mapping.BuiltinRegistry()
	require.NoError(t, err)
	return New(reg, plan.NewService(plan.DefaultPlan()), rules.DefaultThresholds())
}

func TestRunCompletesBalancedAudit(t *testing.T) {
	o := newOrchestrator(t)
	session, err := o.Run(Request{
		FiscalYear: "2025",
		Sector:     mapping.SectorSmallEntity,
		Entries: []model.BalanceEntry{
			entry("101000", "Capital social", "0", "1000000"),
			entry("571000", "Caisse", "1000000", "0"),
		},
	}, Callbacks{})
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Equal(t, StateCompleted, o.State())
	assert.Equal(t, model.SessionCompleted, session.Status)
	assert.Equal(t, "2025", session.FiscalYear)
	assert.Equal(t, "SMT", session.Sector)
	assert.NotEmpty(t, session.ID)
	assert.False(t, session.FinishedAt.Before(session.StartedAt))
	assert.Len(t, session.Results, len(rules.Catalogue()))

	eq := findResult(t, session, "F-001")
	assert.Equal(t, model.StatusOK, eq.Status)
	assert.Equal(t, 0, session.Summary.RemainingBlocking)
}

func TestRunFlagsBlockingGap(t *testing.T) {
	o := newOrchestrator(t)
	session, err := o.Run(Request{
		FiscalYear: "2025",
		Sector:     mapping.SectorSmallEntity,
		Entries: []model.BalanceEntry{
			entry("101000", "Capital social", "0", "1000000"),
			entry("571000", "Caisse", "999999", "0"),
		},
	}, Callbacks{})
	require.NoError(t, err)

	eq := findResult(t, session, "F-001")
	assert.Equal(t, model.StatusAnomaly, eq.Status)
	assert.Equal(t, model.SeverityBlocking, eq.Severity)
	assert.Equal(t, 1, session.Summary.RemainingBlocking)
	assert.Less(t, session.Summary.GlobalScore, 100)

	// Refinement attached the suspense-account suggestion.
	require.NotEmpty(t, eq.CorrectiveEntries)
	assert.Equal(t, "471000", eq.CorrectiveEntries[0].Lines[0].Account)
}

func TestRunEmptyBalanceFails(t *testing.T) {
	o := newOrchestrator(t)
	session, err := o.Run(Request{
		FiscalYear: "2025",
		Sector:     mapping.SectorSmallEntity,
	}, Callbacks{})

	require.Error(t, err)
	assert.Nil(t, session)
	assert.Equal(t, StateFailed, o.State())
	var verr *aggregate.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestRunUnknownSectorFails(t *testing.T) {
	o := newOrchestrator(t)
	_, err := o.Run(Request{
		FiscalYear: "2025",
		Sector:     mapping.Sector("HOLDING"),
		Entries:    []model.BalanceEntry{entry("571000", "Caisse", "1", "0")},
	}, Callbacks{})

	require.Error(t, err)
	var cfg *mapping.ConfigurationError
	assert.ErrorAs(t, err, &cfg)
	assert.Equal(t, StateFailed, o.State())
}

func TestRunCallbackOrdering(t *testing.T) {
	o := newOrchestrator(t)

	var events []string
	current := model.Level(0)
	progressSeen := 0
	_, err := o.Run(Request{
		FiscalYear: "2025",
		Sector:     mapping.SectorSmallEntity,
		Entries: []model.BalanceEntry{
			entry("101000", "Capital", "0", "100"),
			entry("571000", "Caisse", "100", "0"),
		},
	}, Callbacks{
		OnLevelStart: func(level model.Level, name string) {
			assert.Greater(t, level, current, "levels must ascend")
			current = level
			progressSeen = 0
			events = append(events, "start")
			assert.NotEmpty(t, name)
		},
		OnProgress: func(level model.Level, done, total int) {
			assert.Equal(t, current, level)
			assert.Equal(t, progressSeen+1, done)
			progressSeen = done
			assert.LessOrEqual(t, done, total)
		},
		OnLevelEnd: func(level model.Level, stats model.LevelStats) {
			assert.Equal(t, current, level)
			assert.Equal(t, progressSeen, stats.Total)
			events = append(events, "end")
		},
		OnComplete: func(session *model.Session) {
			events = append(events, "complete")
			assert.Equal(t, model.SessionCompleted, session.Status)
		},
	})
	require.NoError(t, err)

	require.Len(t, events, 9*2+1)
	assert.Equal(t, "complete", events[len(events)-1])
	for i := 0; i < 18; i += 2 {
		assert.Equal(t, "start", events[i])
		assert.Equal(t, "end", events[i+1])
	}
}

func TestRunResultsStableLevelThenRef(t *testing.T) {
	o := newOrchestrator(t)
	session, err := o.Run(Request{
		FiscalYear: "2025",
		Sector:     mapping.SectorGeneral,
		Entries: []model.BalanceEntry{
			entry("101000", "Capital", "0", "500"),
			entry("411000", "Clients", "200", "0"),
			entry("571000", "Caisse", "300", "0"),
		},
	}, Callbacks{})
	require.NoError(t, err)

	for i := 1; i < len(session.Results); i++ {
		prev, cur := session.Results[i-1], session.Results[i]
		ok := prev.Level < cur.Level || (prev.Level == cur.Level && prev.Ref < cur.Ref)
		assert.True(t, ok, "order broken between %s and %s", prev.Ref, cur.Ref)
	}
}

func TestCompareVerdicts(t *testing.T) {
	before := &model.Session{
		ID: "AUDIT-2025-aaaaaaaa",
		Summary: model.Summary{GlobalScore: 80},
		Results: []model.ControlResult{
			{Ref: "F-001", Level: 2, Status: model.StatusAnomaly, Severity: model.SeverityBlocking},
			{Ref: "SS-004", Level: 4, Status: model.StatusAnomaly, Severity: model.SeverityMajor},
			{Ref: "C-001", Level: 3, Status: model.StatusOK},
			{Ref: "MA-004", Level: 4, Status: model.StatusOK},
		},
	}
	after := &model.Session{
		ID: "AUDIT-2025-bbbbbbbb",
		Summary: model.Summary{GlobalScore: 90},
		Results: []model.ControlResult{
			{Ref: "F-001", Level: 2, Status: model.StatusOK},
			{Ref: "SS-004", Level: 4, Status: model.StatusAnomaly, Severity: model.SeverityMinor},
			{Ref: "C-001", Level: 3, Status: model.StatusAnomaly, Severity: model.SeverityMajor},
			{Ref: "MA-004", Level: 4, Status: model.StatusOK},
		},
	}

	cmp := Compare(before, after)
	assert.Equal(t, 10, cmp.ScoreDelta)
	assert.Equal(t, 1, cmp.Fixed)
	assert.Equal(t, 1, cmp.Improved)
	assert.Equal(t, 1, cmp.Degraded)
	assert.Equal(t, 1, cmp.Unchanged)

	verdicts := make(map[string]Verdict)
	for _, d := range cmp.Deltas {
		verdicts[d.Ref] = d.Verdict
	}
	assert.Equal(t, VerdictFixed, verdicts["F-001"])
	assert.Equal(t, VerdictImproved, verdicts["SS-004"])
	assert.Equal(t, VerdictDegraded, verdicts["C-001"])
	assert.Equal(t, VerdictUnchanged, verdicts["MA-004"])

	// Deltas ordered level then ref.
	assert.Equal(t, "F-001", cmp.Deltas[0].Ref)
	assert.Equal(t, "C-001", cmp.Deltas[1].Ref)
}

func findResult(t *testing.T, session *model.Session, ref string) model.ControlResult {
	t.Helper()
	for _, r := range session.Results {
		if r.Ref == ref {
			return r
		}
	}
	t.Fatalf("result %s not found", ref)
	return model.ControlResult{}
}
