// Package rules holds the static catalogue of balance controls: nine
// levels evaluated in ascending order, each rule a pure function of the
// audit context.
package rules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxpilot-dev/taxpilot/internal/aggregate"
	"github.com/taxpilot-dev/taxpilot/internal/mapping"
	"github.com/taxpilot-dev/taxpilot/internal/model"
	"github.com/taxpilot-dev/taxpilot/internal/plan"
)

// Thresholds are the configurable limits the controls evaluate against.
type Thresholds struct {
	EquilibriumTolerance decimal.Decimal
	MinBalanceLines      int
	AccountFormatRatio   decimal.Decimal
}

// DefaultThresholds returns the standard limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		EquilibriumTolerance: decimal.RequireFromString("0.01"),
		MinBalanceLines:      10,
		AccountFormatRatio:   decimal.RequireFromString("0.80"),
	}
}

// Context is everything a rule may read. It is immutable during a run;
// Initial is populated only for the refinement pass and holds the
// initial pass's results.
type Context struct {
	FiscalYear string
	Sector     mapping.Sector
	Entries    []model.BalanceEntry
	Prior      []model.BalanceEntry
	Lines      *aggregate.Result
	Plan       *plan.Service
	Table      *mapping.Table
	Thresholds Thresholds
	Archives   []model.Archive
	Initial    []model.ControlResult
}

// HasPrior reports whether a prior-period balance was supplied.
func (c *Context) HasPrior() bool { return len(c.Prior) > 0 }

// Tolerance returns the equilibrium tolerance, defaulting to 0.01.
func (c *Context) Tolerance() decimal.Decimal {
	if c.Thresholds.EquilibriumTolerance.IsZero() {
		return decimal.RequireFromString("0.01")
	}
	return c.Thresholds.EquilibriumTolerance
}

// Sum returns the signed closing total (debit-positive) of the current
// entries under any of the prefixes.
func (c *Context) Sum(prefixes ...string) decimal.Decimal {
	return sumSigned(c.Entries, prefixes...)
}

// PriorSum is Sum over the prior-period entries.
func (c *Context) PriorSum(prefixes ...string) decimal.Decimal {
	return sumSigned(c.Prior, prefixes...)
}

// Credit returns the credit-positive closing total of the current
// entries under any of the prefixes.
func (c *Context) Credit(prefixes ...string) decimal.Decimal {
	return sumSigned(c.Entries, prefixes...).Neg()
}

// PriorCredit is Credit over the prior-period entries.
func (c *Context) PriorCredit(prefixes ...string) decimal.Decimal {
	return sumSigned(c.Prior, prefixes...).Neg()
}

func sumSigned(entries []model.BalanceEntry, prefixes ...string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		for _, p := range prefixes {
			if e.HasPrefix(p) {
				total = total.Add(e.SignedClosing())
				break
			}
		}
	}
	return total
}

// Result computes the period result from the raw accounts: revenues
// (classes 7 and 8 credit) minus expenses (classes 6 and 8 debit),
// excluding corporate tax 89.
func (c *Context) Result() decimal.Decimal {
	revenues := c.Credit("70", "71", "72", "73", "74", "75", "76", "77", "78", "79", "82", "84", "86", "87", "88")
	expenses := c.Sum("60", "61", "62", "63", "64", "65", "66", "67", "68", "69", "81", "83", "85")
	return revenues.Sub(expenses)
}

// Outcome is what a rule evaluation yields before the engine stamps the
// rule's identity onto it.
type Outcome struct {
	Status     model.ControlStatus
	Message    string
	Details    *model.Details
	Suggestion string
	Corrective []model.CorrectiveEntry
}

// Pass builds an OK outcome.
func Pass(format string, args ...any) Outcome {
	return Outcome{Status: model.StatusOK, Message: fmt.Sprintf(format, args...)}
}

// Fail builds an anomaly outcome.
func Fail(format string, args ...any) Outcome {
	return Outcome{Status: model.StatusAnomaly, Message: fmt.Sprintf(format, args...)}
}

// Skip builds a not-applicable outcome. Skipped rules stay listed but do
// not count toward the score.
func Skip(format string, args ...any) Outcome {
	return Outcome{Status: model.StatusNotApplicable, Message: fmt.Sprintf(format, args...)}
}

// With attaches supporting details.
func (o Outcome) With(d *model.Details) Outcome {
	o.Details = d
	return o
}

// Suggest attaches a remediation hint.
func (o Outcome) Suggest(format string, args ...any) Outcome {
	o.Suggestion = fmt.Sprintf(format, args...)
	return o
}

// Rule is one control. Eval runs in the initial pass; Refine, when set,
// runs in the refinement pass against the rule's own initial result and
// may enrich it (typically with corrective entries).
type Rule struct {
	Ref           string
	Name          string
	Level         model.Level
	Severity      model.Severity
	RegulatoryRef string
	Eval          func(*Context) Outcome
	Refine        func(*Context, model.ControlResult) model.ControlResult
}
