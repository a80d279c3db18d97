package audit

import (
	"sort"

	"github.com/taxpilot-dev/taxpilot/internal/model"
)

// Verdict qualifies how one control moved between two sessions.
type Verdict string

const (
	VerdictFixed     Verdict = "CORRIGE"
	VerdictImproved  Verdict = "AMELIORE"
	VerdictDegraded  Verdict = "DEGRADE"
	VerdictUnchanged Verdict = "INCHANGE"
)

// RuleDelta is one control's movement between the reference session and
// the new one.
type RuleDelta struct {
	Ref     string
	Name    string
	Level   model.Level
	Before  model.ControlStatus
	After   model.ControlStatus
	Verdict Verdict
}

// Comparison summarizes a re-audit against an earlier session, usually
// after corrective entries were posted.
type Comparison struct {
	BeforeID   string
	AfterID    string
	Deltas     []RuleDelta
	Fixed      int
	Improved   int
	Degraded   int
	Unchanged  int
	ScoreDelta int
}

// Compare diffs two sessions control by control. Controls present in
// only one session are ignored: the catalogue is expected stable
// between two runs of the same engine.
func Compare(before, after *model.Session) Comparison {
	cmp := Comparison{
		BeforeID:   before.ID,
		AfterID:    after.ID,
		ScoreDelta: after.Summary.GlobalScore - before.Summary.GlobalScore,
	}

	old := make(map[string]model.ControlResult, len(before.Results))
	for _, r := range before.Results {
		old[r.Ref] = r
	}

	for _, now := range after.Results {
		prev, ok := old[now.Ref]
		if !ok {
			continue
		}
		d := RuleDelta{
			Ref:    now.Ref,
			Name:   now.Name,
			Level:  now.Level,
			Before: prev.Status,
			After:  now.Status,
		}
		switch {
		case prev.Status == model.StatusAnomaly && now.Status == model.StatusOK:
			d.Verdict = VerdictFixed
			cmp.Fixed++
		case prev.Status == model.StatusAnomaly && now.Status == model.StatusAnomaly &&
			now.Severity.Rank() > prev.Severity.Rank():
			d.Verdict = VerdictImproved
			cmp.Improved++
		case prev.Status != model.StatusAnomaly && now.Status == model.StatusAnomaly,
			prev.Status == model.StatusAnomaly && now.Status == model.StatusAnomaly &&
				now.Severity.Rank() < prev.Severity.Rank():
			d.Verdict = VerdictDegraded
			cmp.Degraded++
		default:
			d.Verdict = VerdictUnchanged
			cmp.Unchanged++
		}
		cmp.Deltas = append(cmp.Deltas, d)
	}

	sort.SliceStable(cmp.Deltas, func(i, j int) bool {
		if cmp.Deltas[i].Level != cmp.Deltas[j].Level {
			return cmp.Deltas[i].Level < cmp.Deltas[j].Level
		}
		return cmp.Deltas[i].Ref < cmp.Deltas[j].Ref
	})
	return cmp
}
