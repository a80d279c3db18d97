package rules

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/taxpilot-dev/taxpilot/internal/model"
)

// yearOverYearRules compares the current balance against the prior
// period. Every rule here is not applicable without a prior balance.
func yearOverYearRules() []Rule {
	return []Rule{
		{
			Ref: "NN-001", Name: "Report a nouveau plafonne par N-1", Level: model.LevelYearOverYear, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				if !ctx.HasPrior() {
					return Skip("pas de balance N-1")
				}
				expected := ctx.PriorCredit("12").Add(ctx.PriorCredit("13"))
				current := ctx.Credit("12")
				// Distributions may reduce the carried amount; nothing
				// can increase it.
				if current.GreaterThan(expected.Add(ctx.Tolerance())) {
					return Fail("report a nouveau (%s) superieur au report et resultat N-1 cumules (%s)",
						fmtAmount(current), fmtAmount(expected)).
						With(&model.Details{Expected: fmtAmount(expected), Observed: fmtAmount(current)}).
						Suggest("verifier l'ecriture d'affectation du resultat")
				}
				return Pass("report a nouveau coherent avec N-1")
			},
		},
		{
			Ref: "NN-002", Name: "A-nouveaux conformes a la cloture N-1", Level: model.LevelYearOverYear, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				if !ctx.HasPrior() {
					return Skip("pas de balance N-1")
				}
				hasTurnover := false
				for _, e := range ctx.Entries {
					if !e.DebitTurnover.IsZero() || !e.CreditTurnover.IsZero() {
						hasTurnover = true
						break
					}
				}
				if !hasTurnover {
					return Skip("pas de colonnes de mouvements pour reconstituer les a-nouveaux")
				}
				prior := make(map[string]decimal.Decimal, len(ctx.Prior))
				for _, e := range ctx.Prior {
					prior[e.Account] = e.SignedClosing()
				}
				var wrong []string
				for _, e := range ctx.Entries {
					c := e.Class()
					if c < 1 || c > 5 || e.HasPrefix("12") || e.HasPrefix("13") {
						continue
					}
					opening := e.SignedClosing().Sub(e.DebitTurnover.Sub(e.CreditTurnover))
					if opening.Sub(prior[e.Account]).Abs().GreaterThan(ctx.Tolerance()) {
						wrong = append(wrong, e.Account)
					}
				}
				if len(wrong) > 0 {
					sort.Strings(wrong)
					return Fail("%d comptes de bilan dont l'a-nouveau differe de la cloture N-1", len(wrong)).
						With(&model.Details{Accounts: wrong}).
						Suggest("controler la reprise des a-nouveaux")
				}
				return Pass("a-nouveaux conformes a la cloture N-1")
			},
		},
		{
			Ref: "NN-003", Name: "Permanence de la structure des comptes", Level: model.LevelYearOverYear, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				if !ctx.HasPrior() {
					return Skip("pas de balance N-1")
				}
				cur := pnlPrefixes(ctx.Entries)
				prev := pnlPrefixes(ctx.Prior)
				if len(prev) == 0 {
					return Skip("pas de comptes de gestion en N-1")
				}
				common := 0
				for p := range prev {
					if cur[p] {
						common++
					}
				}
				if common*2 < len(prev) {
					return Fail("la structure des comptes de gestion a fortement change (%d/%d racines N-1 conservees)",
						common, len(prev)).
						Suggest("un changement de plan interne doit etre mentionne dans l'annexe")
				}
				return Pass("structure des comptes de gestion stable")
			},
		},
		{
			Ref: "NN-004", Name: "Stabilite du capital", Level: model.LevelYearOverYear, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				if !ctx.HasPrior() {
					return Skip("pas de balance N-1")
				}
				cur := ctx.Credit("101", "102", "103", "104")
				prev := ctx.PriorCredit("101", "102", "103", "104")
				if !cur.Sub(prev).Abs().GreaterThan(ctx.Tolerance()) {
					return Pass("capital inchange")
				}
				return Fail("capital passe de %s a %s", fmtAmount(prev), fmtAmount(cur)).
					Suggest("joindre les actes de l'operation sur le capital")
			},
		},
		{
			Ref: "NN-005", Name: "Variations significatives par ligne", Level: model.LevelYearOverYear, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				if !ctx.HasPrior() {
					return Skip("pas de balance N-1")
				}
				if ctx.Lines == nil {
					return Skip("agregation indisponible")
				}
				threshold := decimal.NewFromInt(2)
				floor := decimal.NewFromInt(1_000_000)
				var moved []string
				amounts := make(map[string]decimal.Decimal)
				for _, code := range ctx.Lines.Order {
					lv := ctx.Lines.Line(code)
					if lv.PriorValue.IsZero() {
						continue
					}
					delta := lv.Value.Sub(lv.PriorValue)
					if delta.Abs().GreaterThan(lv.PriorValue.Abs().Mul(threshold)) && delta.Abs().GreaterThan(floor) {
						moved = append(moved, code)
						amounts[code] = delta
					}
				}
				if len(moved) > 0 {
					return Fail("%d lignes d'etat varient de plus de 200%% et 1 MFCFA", len(moved)).
						With(&model.Details{Accounts: moved, Amounts: amounts}).
						Suggest("preparer une explication de ces variations pour l'annexe")
				}
				return Pass("variations par ligne dans les ordres de grandeur attendus")
			},
		},
		{
			Ref: "NN-006", Name: "Variation du total de bilan", Level: model.LevelYearOverYear, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				if !ctx.HasPrior() {
					return Skip("pas de balance N-1")
				}
				cur := sumAbsClasses(ctx.Entries)
				prev := sumAbsClasses(ctx.Prior)
				if prev.IsZero() {
					return Skip("total de bilan N-1 nul")
				}
				delta := cur.Sub(prev)
				if delta.Abs().Mul(decimal.NewFromInt(2)).GreaterThan(prev) {
					return Fail("total de bilan en variation de plus de 50%% (%s vers %s)",
						fmtAmount(prev), fmtAmount(cur))
				}
				return Pass("total de bilan stable")
			},
		},
		{
			Ref: "NN-007", Name: "Comptes de gestion disparus", Level: model.LevelYearOverYear, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				if !ctx.HasPrior() {
					return Skip("pas de balance N-1")
				}
				current := make(map[string]bool, len(ctx.Entries))
				for _, e := range ctx.Entries {
					current[e.Account] = true
				}
				var gone []string
				for _, e := range ctx.Prior {
					c := e.Class()
					if (c == 6 || c == 7) && !e.SignedClosing().IsZero() && !current[e.Account] {
						gone = append(gone, e.Account)
					}
				}
				if len(gone) > 0 {
					sort.Strings(gone)
					return Fail("%d comptes de gestion actifs en N-1 absents en N", len(gone)).
						With(&model.Details{Accounts: gone})
				}
				return Pass("continuite des comptes de gestion")
			},
		},
		{
			Ref: "NN-008", Name: "Retournement du resultat", Level: model.LevelYearOverYear, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				if !ctx.HasPrior() {
					return Skip("pas de balance N-1")
				}
				cur := ctx.Result()
				prev := priorResult(ctx)
				if cur.Abs().LessThanOrEqual(ctx.Tolerance()) || prev.Abs().LessThanOrEqual(ctx.Tolerance()) {
					return Skip("resultat N ou N-1 non significatif")
				}
				if cur.Sign() != prev.Sign() {
					return Fail("le resultat passe de %s a %s", fmtAmount(prev), fmtAmount(cur)).
						Suggest("documenter le retournement dans le rapport de gestion")
				}
				return Pass("resultat de meme signe qu'en N-1")
			},
		},
	}
}

func pnlPrefixes(entries []model.BalanceEntry) map[string]bool {
	out := make(map[string]bool)
	for _, e := range entries {
		if c := e.Class(); (c == 6 || c == 7) && len(e.Account) >= 2 {
			out[e.Account[:2]] = true
		}
	}
	return out
}

// sumAbsClasses totals the absolute balance-sheet balances, classes 1-5.
func sumAbsClasses(entries []model.BalanceEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if c := e.Class(); c >= 1 && c <= 5 {
			total = total.Add(e.SignedClosing().Abs())
		}
	}
	return total
}

// priorResult computes the N-1 result from the prior entries, preferring
// the booked 13x balance when the prior P&L was already closed.
func priorResult(ctx *Context) decimal.Decimal {
	booked := ctx.PriorCredit("13")
	if !booked.IsZero() {
		return booked
	}
	revenues := ctx.PriorCredit("70", "71", "72", "73", "74", "75", "76", "77", "78", "79", "82", "84", "86", "88")
	expenses := ctx.PriorSum("60", "61", "62", "63", "64", "65", "66", "67", "68", "69", "81", "83", "85")
	return revenues.Sub(expenses)
}
