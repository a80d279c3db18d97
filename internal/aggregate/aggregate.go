package aggregate

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/taxpilot-dev/taxpilot/internal/mapping"
	"github.com/taxpilot-dev/taxpilot/internal/model"
)

// ValidationError rejects a trial balance before any control runs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("balance %s: %s", e.Field, e.Reason)
}

// LineValue is the aggregated value of one statement line. Value is net
// of contra accounts and oriented per section: debit-positive for
// assets and expenses, credit-positive for liabilities and revenues.
type LineValue struct {
	Code       string
	Label      string
	Section    mapping.Section
	Value      decimal.Decimal
	Gross      decimal.Decimal
	Contra     decimal.Decimal
	PriorValue decimal.Decimal
	Accounts   []string
}

// Result is one aggregation run over a trial balance.
type Result struct {
	Sector       mapping.Sector
	Lines        map[string]*LineValue
	Order        []string
	Unclassified []string
	TotalDebit   decimal.Decimal
	TotalCredit  decimal.Decimal
	Gap          decimal.Decimal
	Balanced     bool
}

// Line returns the aggregated line for a code, or nil.
func (r *Result) Line(code string) *LineValue {
	return r.Lines[code]
}

// SectionTotal sums line values over a section. Unclassified amounts are
// excluded.
func (r *Result) SectionTotal(s mapping.Section) decimal.Decimal {
	total := decimal.Zero
	for _, code := range r.Order {
		lv := r.Lines[code]
		if lv.Code != mapping.LineUnclassified && lv.Section == s {
			total = total.Add(lv.Value)
		}
	}
	return total
}

// Aggregator rolls trial balance entries up into statement lines for
// one sector table.
type Aggregator struct {
	table     *mapping.Table
	tolerance decimal.Decimal
}

// New returns an aggregator over a validated table. tolerance bounds the
// acceptable absolute gap between total debits and credits.
func New(table *mapping.Table, tolerance decimal.Decimal) *Aggregator {
	return &Aggregator{table: table, tolerance: tolerance}
}

// Run aggregates the current entries, and the prior-period entries when
// given, into one result. An empty current balance is rejected.
func (a *Aggregator) Run(entries, prior []model.BalanceEntry) (*Result, error) {
	if len(entries) == 0 {
		return nil, &ValidationError{Field: "entries", Reason: "empty trial balance"}
	}

	r := &Result{
		Sector: a.table.Sector,
		Lines:  make(map[string]*LineValue),
	}
	for _, block := range a.table.Sections {
		for _, line := range block.Lines {
			r.Lines[line.Code] = &LineValue{
				Code:    line.Code,
				Label:   line.Label,
				Section: block.Section,
			}
			r.Order = append(r.Order, line.Code)
		}
	}

	for _, e := range entries {
		r.TotalDebit = r.TotalDebit.Add(e.DebitClosing)
		r.TotalCredit = r.TotalCredit.Add(e.CreditClosing)
		a.apply(r, e, false)
	}
	for _, e := range prior {
		a.apply(r, e, true)
	}

	for _, lv := range r.Lines {
		sort.Strings(lv.Accounts)
	}
	if lv, ok := r.Lines[mapping.LineUnclassified]; ok {
		r.Unclassified = lv.Accounts
		r.Order = append(r.Order, mapping.LineUnclassified)
	}

	r.Gap = r.TotalDebit.Sub(r.TotalCredit)
	r.Balanced = r.Gap.Abs().LessThanOrEqual(a.tolerance)
	return r, nil
}

func (a *Aggregator) apply(r *Result, e model.BalanceEntry, priorPeriod bool) {
	m, ok := a.table.Classify(e.Account)
	if !ok {
		lv := r.Lines[mapping.LineUnclassified]
		if lv == nil {
			lv = &LineValue{Code: mapping.LineUnclassified, Label: "Comptes non affectes"}
			r.Lines[mapping.LineUnclassified] = lv
		}
		if !priorPeriod {
			lv.Value = lv.Value.Add(e.SignedClosing())
			lv.Gross = lv.Value
			lv.Accounts = append(lv.Accounts, e.Account)
		} else {
			lv.PriorValue = lv.PriorValue.Add(e.SignedClosing())
		}
		return
	}

	lv := r.Lines[m.LineCode]
	// Contra accounts carry the opposite balance side of their line, so
	// their oriented amount is negative and nets off the gross total.
	amount := e.SignedClosing()
	if m.Section.CreditPositive() {
		amount = e.CreditBalance()
	}

	if priorPeriod {
		lv.PriorValue = lv.PriorValue.Add(amount)
		return
	}
	if m.Contra {
		lv.Contra = lv.Contra.Add(amount.Neg())
	} else {
		lv.Gross = lv.Gross.Add(amount)
	}
	lv.Value = lv.Value.Add(amount)
	lv.Accounts = append(lv.Accounts, e.Account)
}
