package rules

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/taxpilot-dev/taxpilot/internal/model"
)

// fundamentalRules checks the accounting identities every trial balance
// must satisfy before finer controls make sense.
func fundamentalRules() []Rule {
	return []Rule{
		{
			Ref: "F-001", Name: "Equilibre global debit/credit", Level: model.LevelFundamental, Severity: model.SeverityBlocking,
			RegulatoryRef: "AUDCIF art. 17",
			Eval: func(ctx *Context) Outcome {
				debit, credit := model.Totals(ctx.Entries)
				gap := debit.Sub(credit)
				if gap.Abs().GreaterThan(ctx.Tolerance()) {
					return Fail("balance desequilibree: total debit %s, total credit %s, ecart %s",
						fmtAmount(debit), fmtAmount(credit), fmtAmount(gap)).
						With(&model.Details{Gap: gap, Amounts: map[string]decimal.Decimal{
							"total_debit": debit, "total_credit": credit,
						}}).
						Suggest("identifier l'ecriture desequilibree ou solder l'ecart via un compte d'attente 471")
				}
				return Pass("balance equilibree a %s pres", fmtAmount(gap.Abs()))
			},
			Refine: func(ctx *Context, res model.ControlResult) model.ControlResult {
				if res.Status != model.StatusAnomaly || res.Details == nil {
					return res
				}
				gap := res.Details.Gap
				line := model.CorrectiveLine{Account: "471000", Label: "Compte d'attente", Amount: gap.Abs()}
				if gap.IsPositive() {
					line.Side = model.SideCredit
				} else {
					line.Side = model.SideDebit
				}
				res.CorrectiveEntries = append(res.CorrectiveEntries, model.CorrectiveEntry{
					Journal: "OD",
					Lines:   []model.CorrectiveLine{line},
					Comment: fmt.Sprintf("neutralisation provisoire de l'ecart de balance %s", fmtAmount(gap)),
				})
				return res
			},
		},
		{
			Ref: "F-002", Name: "Equilibre des mouvements", Level: model.LevelFundamental, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				debit, credit := decimal.Zero, decimal.Zero
				for _, e := range ctx.Entries {
					debit = debit.Add(e.DebitTurnover)
					credit = credit.Add(e.CreditTurnover)
				}
				if debit.IsZero() && credit.IsZero() {
					return Skip("pas de colonnes de mouvements dans la balance")
				}
				gap := debit.Sub(credit)
				if gap.Abs().GreaterThan(ctx.Tolerance()) {
					return Fail("mouvements desequilibres: debit %s, credit %s", fmtAmount(debit), fmtAmount(credit)).
						With(&model.Details{Gap: gap})
				}
				return Pass("mouvements equilibres")
			},
		},
		{
			Ref: "F-003", Name: "Resultat classes 6/7 vs compte 13", Level: model.LevelFundamental, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				result := ctx.Result().Sub(ctx.Sum("89"))
				booked := ctx.Credit("13")
				if result.IsZero() && booked.IsZero() {
					return Skip("ni resultat en classes 6/7 ni compte 13 mouvemente")
				}
				if booked.IsZero() {
					return Pass("resultat de %s encore en classes 6/7, compte 13 non mouvemente", fmtAmount(result))
				}
				gap := booked.Sub(result)
				if gap.Abs().GreaterThan(ctx.Tolerance()) && !result.IsZero() {
					return Fail("compte 13 (%s) different du resultat des classes 6/7 (%s)",
						fmtAmount(booked), fmtAmount(result)).
						With(&model.Details{Gap: gap, Expected: fmtAmount(result), Observed: fmtAmount(booked)}).
						Suggest("verifier la cloture des classes 6 et 7 vers le compte 13")
				}
				return Pass("resultat coherent entre classes 6/7 et compte 13")
			},
		},
		{
			Ref: "F-004", Name: "Equation de bilan", Level: model.LevelFundamental, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				debit, credit := model.Totals(ctx.Entries)
				if debit.Sub(credit).Abs().GreaterThan(ctx.Tolerance()) {
					return Skip("balance desequilibree, voir F-001")
				}
				sheet := ctx.Sum("1", "2", "3", "4", "5")
				result := ctx.Result().Sub(ctx.Sum("89"))
				gap := sheet.Add(result)
				if gap.Abs().GreaterThan(ctx.Tolerance()) {
					return Fail("classes 1 a 5 et resultat ne se compensent pas (ecart %s)", fmtAmount(gap)).
						With(&model.Details{Gap: gap}).
						Suggest("rechercher des comptes hors classes 1-8 ou un resultat partiellement solde")
				}
				return Pass("equation de bilan verifiee")
			},
		},
		{
			Ref: "F-005", Name: "Classes essentielles presentes", Level: model.LevelFundamental, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				present := make(map[int]bool)
				for _, e := range ctx.Entries {
					present[e.Class()] = true
				}
				var missing []string
				for _, class := range []int{1, 4, 5} {
					if !present[class] {
						missing = append(missing, fmt.Sprintf("classe %d", class))
					}
				}
				if len(missing) > 0 {
					return Fail("classes attendues absentes: %v", missing).
						Suggest("une balance de cloture comporte au minimum capitaux, tiers et tresorerie")
				}
				return Pass("classes 1, 4 et 5 presentes")
			},
		},
		{
			Ref: "F-006", Name: "Compte de capital present", Level: model.LevelFundamental, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				capital := ctx.Credit("101", "102", "103", "104", "105")
				if capital.IsZero() {
					return Fail("aucun compte de capital 101-105 mouvemente").
						Suggest("verifier la reprise des a-nouveaux de capitaux propres")
				}
				return Pass("capital de %s", fmtAmount(capital))
			},
		},
		{
			Ref: "F-007", Name: "Report a nouveau vs resultat N-1", Level: model.LevelFundamental, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				if !ctx.HasPrior() {
					return Skip("pas de balance N-1")
				}
				priorResult := ctx.PriorCredit("13")
				if priorResult.IsZero() {
					return Skip("pas de resultat N-1 a affecter")
				}
				current := ctx.Credit("12")
				if current.IsZero() && ctx.Credit("11").Equal(ctx.PriorCredit("11")) {
					return Fail("resultat N-1 de %s sans trace d'affectation en report ou reserves", fmtAmount(priorResult)).
						Suggest("comptabiliser l'affectation du resultat decidee par l'assemblee")
				}
				return Pass("affectation du resultat N-1 retracee")
			},
		},
		{
			Ref: "F-008", Name: "Comptes d'attente soldes", Level: model.LevelFundamental, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				var open []string
				amounts := make(map[string]decimal.Decimal)
				for _, e := range ctx.Entries {
					if e.HasPrefix("471") || e.HasPrefix("472") || e.HasPrefix("473") || e.HasPrefix("474") || e.HasPrefix("475") {
						if !e.SignedClosing().IsZero() {
							open = append(open, e.Account)
							amounts[e.Account] = e.SignedClosing()
						}
					}
				}
				if len(open) > 0 {
					return Fail("%d comptes d'attente non soldes a la cloture", len(open)).
						With(&model.Details{Accounts: open, Amounts: amounts}).
						Suggest("justifier et reclasser chaque compte d'attente avant l'arrete")
				}
				return Pass("comptes d'attente soldes")
			},
		},
		{
			Ref: "F-009", Name: "Exercice fiscal coherent", Level: model.LevelFundamental, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				var year int
				if _, err := fmt.Sscanf(ctx.FiscalYear, "%d", &year); err != nil || year < 1990 || year > 2100 {
					return Fail("exercice %q non interpretable comme une annee", ctx.FiscalYear)
				}
				return Pass("exercice %d", year)
			},
		},
		{
			Ref: "F-010", Name: "Presence de tresorerie", Level: model.LevelFundamental, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				for _, e := range ctx.Entries {
					if e.Class() == 5 {
						return Pass("comptes de tresorerie presents")
					}
				}
				return Fail("aucun compte de classe 5: entite sans banque ni caisse?")
			},
		},
		{
			Ref: "F-011", Name: "Ecart residuel localise", Level: model.LevelFundamental, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				debit, credit := model.Totals(ctx.Entries)
				gap := debit.Sub(credit)
				if gap.Abs().LessThanOrEqual(ctx.Tolerance()) {
					return Pass("pas d'ecart a localiser")
				}
				// Point the bookkeeper at the single account matching the
				// gap, when there is one.
				var candidates []string
				for _, e := range ctx.Entries {
					if e.SignedClosing().Abs().Equal(gap.Abs()) {
						candidates = append(candidates, e.Account)
					}
				}
				sort.Strings(candidates)
				if len(candidates) > 0 {
					return Fail("ecart de %s egal au solde de: %v", fmtAmount(gap), candidates).
						With(&model.Details{Accounts: candidates, Gap: gap}).
						Suggest("verifier en priorite ces comptes")
				}
				return Fail("ecart de %s sans compte correspondant evident", fmtAmount(gap)).
					With(&model.Details{Gap: gap})
			},
		},
	}
}
