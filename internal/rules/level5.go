package rules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxpilot-dev/taxpilot/internal/model"
)

// interAccountRules crosses related accounts: gross values against
// their depreciation, stock variations against the matching expense.
func interAccountRules() []Rule {
	return []Rule{
		{
			Ref: "IC-001", Name: "Amortissements plafonnes au brut", Level: model.LevelInterAccount, Severity: model.SeverityBlocking,
			Eval: func(ctx *Context) Outcome {
				var over []string
				amounts := make(map[string]decimal.Decimal)
				for d := '1'; d <= '7'; d++ {
					gross := ctx.Sum("2" + string(d))
					dep := ctx.Credit("28" + string(d))
					if dep.IsZero() {
						continue
					}
					if dep.GreaterThan(gross.Add(ctx.Tolerance())) {
						sub := "2" + string(d)
						over = append(over, sub)
						amounts["brut_"+sub] = gross
						amounts["amortissements_28"+string(d)] = dep
					}
				}
				if len(over) > 0 {
					return Fail("amortissements superieurs au brut pour: %v", over).
						With(&model.Details{Accounts: over, Amounts: amounts}).
						Suggest("un bien sorti de l'actif doit emporter ses amortissements")
				}
				if ctx.Credit("28").IsZero() {
					return Skip("pas d'amortissements en balance")
				}
				return Pass("amortissements contenus dans les valeurs brutes")
			},
		},
		{
			Ref: "IC-002", Name: "Amortissements orphelins", Level: model.LevelInterAccount, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				return orphanContra(ctx, "28", "2", "amortissements")
			},
		},
		{
			Ref: "IC-003", Name: "Depreciations d'immobilisations orphelines", Level: model.LevelInterAccount, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				return orphanContra(ctx, "29", "2", "depreciations")
			},
		},
		{
			Ref: "IC-004", Name: "Depreciations clients vs encours", Level: model.LevelInterAccount, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				allowance := ctx.Credit("491")
				if allowance.IsZero() {
					return Skip("pas de depreciation clients")
				}
				gross := ctx.Sum("411", "412", "413", "414", "415", "416", "418")
				if allowance.GreaterThan(gross.Add(ctx.Tolerance())) {
					return Fail("depreciation clients (%s) superieure a l'encours brut (%s)",
						fmtAmount(allowance), fmtAmount(gross)).
						With(amountDetails(map[string]decimal.Decimal{
							"encours_clients": gross, "depreciation_491": allowance,
						}))
				}
				return Pass("depreciation clients de %s sur un encours de %s", fmtAmount(allowance), fmtAmount(gross))
			},
		},
		{
			Ref: "IC-005", Name: "Depreciations de stocks vs stocks", Level: model.LevelInterAccount, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				allowance := ctx.Credit("39")
				if allowance.IsZero() {
					return Skip("pas de depreciation de stocks")
				}
				gross := ctx.Sum("31", "32", "33", "34", "35", "36", "37", "38")
				if allowance.GreaterThan(gross.Add(ctx.Tolerance())) {
					return Fail("depreciation des stocks (%s) superieure aux stocks bruts (%s)",
						fmtAmount(allowance), fmtAmount(gross))
				}
				return Pass("depreciations de stocks coherentes")
			},
		},
		{
			Ref: "IC-006", Name: "Variation de stocks achetes vs 603", Level: model.LevelInterAccount, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				if !ctx.HasPrior() {
					return Skip("pas de balance N-1")
				}
				variation := ctx.Sum("603")
				if variation.IsZero() {
					return Skip("compte 603 non mouvemente")
				}
				expected := ctx.PriorSum("31", "32", "33", "38").Sub(ctx.Sum("31", "32", "33", "38"))
				gap := variation.Sub(expected)
				if gap.Abs().GreaterThan(ctx.Tolerance()) {
					return Fail("603 (%s) ne correspond pas a la variation des stocks achetes (%s)",
						fmtAmount(variation), fmtAmount(expected)).
						With(&model.Details{Gap: gap, Expected: fmtAmount(expected), Observed: fmtAmount(variation)})
				}
				return Pass("variation de stocks achetes coherente")
			},
		},
		{
			Ref: "IC-007", Name: "Production stockee vs stocks produits", Level: model.LevelInterAccount, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				if !ctx.HasPrior() {
					return Skip("pas de balance N-1")
				}
				production := ctx.Credit("73")
				if production.IsZero() {
					return Skip("compte 73 non mouvemente")
				}
				expected := ctx.Sum("34", "35", "36", "37").Sub(ctx.PriorSum("34", "35", "36", "37"))
				gap := production.Sub(expected)
				if gap.Abs().GreaterThan(ctx.Tolerance()) {
					return Fail("73 (%s) ne correspond pas a la variation des stocks produits (%s)",
						fmtAmount(production), fmtAmount(expected)).
						With(&model.Details{Gap: gap})
				}
				return Pass("production stockee coherente")
			},
		},
		{
			Ref: "IC-008", Name: "Dotations vs variation des amortissements", Level: model.LevelInterAccount, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				if !ctx.HasPrior() {
					return Skip("pas de balance N-1")
				}
				endowment := ctx.Sum("681")
				if endowment.IsZero() {
					return Skip("pas de dotations 681")
				}
				delta := ctx.Credit("28").Sub(ctx.PriorCredit("28"))
				// Disposals reduce accumulated depreciation, so the
				// variation may legitimately fall short, never exceed.
				if delta.GreaterThan(endowment.Add(ctx.Tolerance())) {
					return Fail("les amortissements progressent de %s pour %s de dotations",
						fmtAmount(delta), fmtAmount(endowment)).
						With(amountDetails(map[string]decimal.Decimal{
							"dotations_681": endowment, "variation_28": delta,
						}))
				}
				return Pass("dotations et variation des amortissements coherentes")
			},
		},
		{
			Ref: "IC-009", Name: "Engagements hors bilan equilibres", Level: model.LevelInterAccount, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				found := false
				for _, e := range ctx.Entries {
					if e.Class() == 9 {
						found = true
						break
					}
				}
				if !found {
					return Skip("pas de comptes de classe 9")
				}
				net := ctx.Sum("9")
				if net.Abs().GreaterThan(ctx.Tolerance()) {
					return Fail("la classe 9 ne s'equilibre pas (ecart %s)", fmtAmount(net)).
						Suggest("chaque engagement doit avoir sa contrepartie en classe 9")
				}
				return Pass("classe 9 equilibree")
			},
		},
		{
			Ref: "IC-010", Name: "Comptes de liaison soldes", Level: model.LevelInterAccount, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				found := false
				for _, e := range ctx.Entries {
					if e.HasPrefix("18") {
						found = true
						break
					}
				}
				if !found {
					return Skip("pas de comptes de liaison 18")
				}
				net := ctx.Sum("18")
				if net.Abs().GreaterThan(ctx.Tolerance()) {
					return Fail("comptes de liaison 18 non soldes entre etablissements (ecart %s)", fmtAmount(net)).
						Suggest("rapprocher les comptes de liaison avant combinaison")
				}
				return Pass("comptes de liaison soldes")
			},
		},
	}
}

// orphanContra flags contra subaccounts whose gross counterpart is
// absent, e.g. 281x without any 21x.
func orphanContra(ctx *Context, contraPrefix, grossClass, label string) Outcome {
	var orphans []string
	for d := '1'; d <= '7'; d++ {
		contra := ctx.Credit(contraPrefix + string(d))
		if contra.IsZero() {
			continue
		}
		if ctx.Sum(grossClass + string(d)).IsZero() {
			orphans = append(orphans, contraPrefix+string(d))
		}
	}
	if len(orphans) > 0 {
		return Fail("%s sans valeur brute correspondante: %v", label, orphans).
			With(&model.Details{Accounts: orphans}).
			Suggest(fmt.Sprintf("solder les %s des biens sortis de l'actif", label))
	}
	if ctx.Credit(contraPrefix).IsZero() {
		return Skip(fmt.Sprintf("pas de %s en balance", label))
	}
	return Pass(fmt.Sprintf("chaque compte de %s a sa contrepartie brute", label))
}
