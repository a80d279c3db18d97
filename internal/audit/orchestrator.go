// Package audit drives a full audit run: validation, the nine control
// levels in two passes, then session assembly and scoring.
package audit

import (
	"time"

	"github.com/taxpilot-dev/taxpilot/internal/aggregate"
	"github.com/taxpilot-dev/taxpilot/internal/id"
	"github.com/taxpilot-dev/taxpilot/internal/mapping"
	"github.com/taxpilot-dev/taxpilot/internal/model"
	"github.com/taxpilot-dev/taxpilot/internal/plan"
	"github.com/taxpilot-dev/taxpilot/internal/rules"
)

// State is the orchestrator's lifecycle position. A run, once started,
// goes to completion or failure; there is no cancellation.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// Callbacks observe a run. All callbacks are invoked synchronously from
// the run, in order: OnLevelStart, then OnProgress after each rule,
// then OnLevelEnd, and OnComplete once the session is assembled. Nil
// callbacks are skipped.
type Callbacks struct {
	OnLevelStart func(level model.Level, name string)
	OnProgress   func(level model.Level, done, total int)
	OnLevelEnd   func(level model.Level, stats model.LevelStats)
	OnComplete   func(session *model.Session)
}

// Request is one audit's input.
type Request struct {
	FiscalYear string
	Sector     mapping.Sector
	Entries    []model.BalanceEntry
	Prior      []model.BalanceEntry
	Archives   []model.Archive
}

// Orchestrator runs audits. It is stateful for observation only: State
// reflects the most recent run.
type Orchestrator struct {
	registry   *mapping.Registry
	chart      *plan.Service
	thresholds rules.Thresholds
	catalogue  []rules.Rule
	state      State
	now        func() time.Time
}

// New returns an orchestrator over the given mapping registry and chart
// of accounts.
func New(registry *mapping.Registry, chart *plan.Service, thresholds rules.Thresholds) *Orchestrator {
	return &Orchestrator{
		registry:   registry,
		chart:      chart,
		thresholds: thresholds,
		catalogue:  rules.Catalogue(),
		state:      StateIdle,
		now:        time.Now,
	}
}

// State returns the lifecycle position of the most recent run.
func (o *Orchestrator) State() State { return o.state }

// Run executes a full audit. A validation or configuration failure
// moves the orchestrator to StateFailed and returns the error with no
// session. A completed run always returns a usable session, whatever
// its anomalies.
func (o *Orchestrator) Run(req Request, cb Callbacks) (*model.Session, error) {
	o.state = StateRunning

	table, err := o.registry.Resolve(req.Sector)
	if err != nil {
		o.state = StateFailed
		return nil, err
	}

	lines, err := aggregate.New(table, o.thresholds.EquilibriumTolerance).Run(req.Entries, req.Prior)
	if err != nil {
		o.state = StateFailed
		return nil, err
	}

	ctx := &rules.Context{
		FiscalYear: req.FiscalYear,
		Sector:     table.Sector,
		Entries:    req.Entries,
		Prior:      req.Prior,
		Lines:      lines,
		Plan:       o.chart,
		Table:      table,
		Thresholds: o.thresholds,
		Archives:   req.Archives,
	}

	session := &model.Session{
		ID:         id.NewSessionID(req.FiscalYear),
		FiscalYear: req.FiscalYear,
		Sector:     string(table.Sector),
		Status:     model.SessionRunning,
		StartedAt:  o.now(),
	}

	initial := o.initialPass(ctx, cb)
	session.Results = o.refinementPass(ctx, initial)
	session.Summary = rules.Summarize(session.Results)
	session.Status = model.SessionCompleted
	session.FinishedAt = o.now()

	o.state = StateCompleted
	if cb.OnComplete != nil {
		cb.OnComplete(session)
	}
	return session, nil
}

// initialPass evaluates every rule level by level, firing the progress
// callbacks.
func (o *Orchestrator) initialPass(ctx *rules.Context, cb Callbacks) []model.ControlResult {
	grouped := rules.ByLevel(o.catalogue)
	var results []model.ControlResult
	for level := model.LevelMin; level <= model.LevelMax; level++ {
		levelRules := grouped[level]
		if cb.OnLevelStart != nil {
			cb.OnLevelStart(level, model.LevelNames[level])
		}
		stats := model.LevelStats{Total: len(levelRules)}
		for i, r := range levelRules {
			res := rules.Evaluate(r, ctx)
			results = append(results, res)
			switch res.Status {
			case model.StatusOK:
				stats.OK++
			case model.StatusAnomaly:
				stats.Anomalies++
			case model.StatusNotApplicable:
				stats.NotApplicable++
			}
			if cb.OnProgress != nil {
				cb.OnProgress(level, i+1, len(levelRules))
			}
		}
		if cb.OnLevelEnd != nil {
			cb.OnLevelEnd(level, stats)
		}
	}
	return results
}

// refinementPass reruns the rules that declare a refinement step over a
// frozen copy of the initial results. Rules without one keep their
// initial result; refs never duplicate.
func (o *Orchestrator) refinementPass(ctx *rules.Context, initial []model.ControlResult) []model.ControlResult {
	frozen := make([]model.ControlResult, len(initial))
	copy(frozen, initial)

	refined := *ctx
	refined.Initial = frozen

	byRef := make(map[string]rules.Rule, len(o.catalogue))
	for _, r := range o.catalogue {
		byRef[r.Ref] = r
	}

	out := make([]model.ControlResult, len(initial))
	for i, res := range initial {
		out[i] = rules.Refine(byRef[res.Ref], &refined, res)
	}
	return out
}
