package rules

import (
	"fmt"
	"sort"

	"github.com/taxpilot-dev/taxpilot/internal/model"
)

// Catalogue returns every built-in rule, ordered level then ref. The
// slice is rebuilt on each call; callers may reorder or filter freely.
func Catalogue() []Rule {
	var all []Rule
	all = append(all, structuralRules()...)
	all = append(all, fundamentalRules()...)
	all = append(all, conformityRules()...)
	all = append(all, senseRules()...)
	all = append(all, interAccountRules()...)
	all = append(all, yearOverYearRules()...)
	all = append(all, statementRules()...)
	all = append(all, fiscalRules()...)
	all = append(all, archiveRules()...)
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Level != all[j].Level {
			return all[i].Level < all[j].Level
		}
		return all[i].Ref < all[j].Ref
	})
	return all
}

// ByLevel groups rules by level, preserving ref order within each.
func ByLevel(all []Rule) map[model.Level][]Rule {
	grouped := make(map[model.Level][]Rule)
	for _, r := range all {
		grouped[r.Level] = append(grouped[r.Level], r)
	}
	return grouped
}

// Evaluate runs one rule. A panic inside the rule is recovered and
// converted into an anomaly naming the rule, so a single broken control
// never aborts the run.
func Evaluate(r Rule, ctx *Context) (res model.ControlResult) {
	defer func() {
		if p := recover(); p != nil {
			res = model.ControlResult{
				Ref:      r.Ref,
				Name:     r.Name,
				Level:    r.Level,
				Status:   model.StatusAnomaly,
				Severity: r.Severity,
				Message:  fmt.Sprintf("le controle %s a echoue en cours d'evaluation: %v", r.Ref, p),
			}
		}
	}()

	out := r.Eval(ctx)
	res = model.ControlResult{
		Ref:               r.Ref,
		Name:              r.Name,
		Level:             r.Level,
		Status:            out.Status,
		Severity:          model.SeverityOK,
		Message:           out.Message,
		Details:           out.Details,
		Suggestion:        out.Suggestion,
		RegulatoryRef:     r.RegulatoryRef,
		CorrectiveEntries: out.Corrective,
	}
	if out.Status == model.StatusAnomaly {
		res.Severity = r.Severity
	}
	return res
}

// Refine runs one rule's refinement step over its initial result. A
// panic leaves the initial result untouched.
func Refine(r Rule, ctx *Context, initial model.ControlResult) (res model.ControlResult) {
	res = initial
	if r.Refine == nil {
		return res
	}
	defer func() {
		if recover() != nil {
			res = initial
		}
	}()
	return r.Refine(ctx, initial)
}
