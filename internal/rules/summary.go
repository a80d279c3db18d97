package rules

import (
	"sort"

	"github.com/taxpilot-dev/taxpilot/internal/model"
)

// Summarize folds a result list into the figures downstream gating
// reads. Not-applicable outcomes are listed but never scored; an empty
// denominator is vacuously conformant.
func Summarize(results []model.ControlResult) model.Summary {
	s := model.Summary{
		TotalControls: len(results),
		BySeverity:    make(map[model.Severity]int),
		ByLevel:       make(map[model.Level]model.LevelStats),
	}

	passed, anomalies := 0, 0
	for _, r := range results {
		stats := s.ByLevel[r.Level]
		stats.Total++
		switch r.Status {
		case model.StatusOK:
			passed++
			stats.OK++
		case model.StatusAnomaly:
			anomalies++
			stats.Anomalies++
			s.BySeverity[r.Severity]++
			if r.IsBlocking() {
				s.RemainingBlocking++
			}
		case model.StatusNotApplicable:
			stats.NotApplicable++
		}
		s.ByLevel[r.Level] = stats
	}

	if passed+anomalies == 0 {
		s.GlobalScore = 100
	} else {
		s.GlobalScore = int(float64(passed)/float64(passed+anomalies)*100 + 0.5)
	}
	return s
}

// ActionPlan returns the anomalies only, most severe first, ties broken
// by ascending level then ref.
func ActionPlan(results []model.ControlResult) []model.ControlResult {
	var plan []model.ControlResult
	for _, r := range results {
		if r.Status == model.StatusAnomaly {
			plan = append(plan, r)
		}
	}
	sort.SliceStable(plan, func(i, j int) bool {
		if plan[i].Severity.Rank() != plan[j].Severity.Rank() {
			return plan[i].Severity.Rank() < plan[j].Severity.Rank()
		}
		if plan[i].Level != plan[j].Level {
			return plan[i].Level < plan[j].Level
		}
		return plan[i].Ref < plan[j].Ref
	})
	return plan
}
