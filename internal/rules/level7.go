package rules

import (
	"github.com/shopspring/decimal"

	"github.com/taxpilot-dev/taxpilot/internal/mapping"
	"github.com/taxpilot-dev/taxpilot/internal/model"
)

// capitalLines names the capital line of each sector's table.
var capitalLines = map[mapping.Sector]string{
	mapping.SectorGeneral:      "CA",
	mapping.SectorSmallEntity:  "CP_1",
	mapping.SectorBank:         "BP_8",
	mapping.SectorInsurance:    "AP_1",
	mapping.SectorMicrofinance: "MP_6",
	mapping.SectorNonProfit:    "EP_1",
}

// statementRules validates the mapped financial statements built from
// the aggregation result.
func statementRules() []Rule {
	return []Rule{
		{
			Ref: "EF-001", Name: "Equilibre du bilan mappe", Level: model.LevelStatements, Severity: model.SeverityBlocking,
			Eval: func(ctx *Context) Outcome {
				r := ctx.Lines
				if r == nil {
					return Skip("agregation indisponible")
				}
				if !r.Balanced {
					return Skip("balance brute desequilibree, voir F-001")
				}
				assets := r.SectionTotal(mapping.SectionAssets)
				liabilities := r.SectionTotal(mapping.SectionLiabilities)
				result := r.SectionTotal(mapping.SectionRevenues).Sub(r.SectionTotal(mapping.SectionExpenses))
				gap := assets.Sub(liabilities).Sub(result)
				if gap.Abs().GreaterThan(ctx.Tolerance()) {
					return Fail("le bilan mappe ne s'equilibre pas: actif %s, passif et resultat %s",
						fmtAmount(assets), fmtAmount(liabilities.Add(result))).
						With(&model.Details{Gap: gap, Amounts: map[string]decimal.Decimal{
							"actif": assets, "passif": liabilities, "resultat": result,
						}}).
						Suggest("des comptes non affectes ou hors bilan absorbent l'ecart")
				}
				return Pass("bilan mappe equilibre")
			},
		},
		{
			Ref: "EF-002", Name: "Lignes d'actif non negatives", Level: model.LevelStatements, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				r := ctx.Lines
				if r == nil {
					return Skip("agregation indisponible")
				}
				var negative []string
				amounts := make(map[string]decimal.Decimal)
				for _, code := range r.Order {
					lv := r.Line(code)
					if lv.Code == mapping.LineUnclassified || lv.Section != mapping.SectionAssets {
						continue
					}
					if lv.Value.IsNegative() {
						negative = append(negative, code)
						amounts[code] = lv.Value
					}
				}
				if len(negative) > 0 {
					return Fail("%d lignes d'actif a valeur nette negative", len(negative)).
						With(&model.Details{Accounts: negative, Amounts: amounts}).
						Suggest("une valeur nette negative signale un correcteur excedentaire ou un mauvais mapping")
				}
				return Pass("valeurs nettes d'actif positives")
			},
		},
		{
			Ref: "EF-003", Name: "Resultat mappe vs resultat par classes", Level: model.LevelStatements, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				r := ctx.Lines
				if r == nil {
					return Skip("agregation indisponible")
				}
				mapped := r.SectionTotal(mapping.SectionRevenues).Sub(r.SectionTotal(mapping.SectionExpenses))
				raw := ctx.Result().Sub(ctx.Sum("89"))
				gap := mapped.Sub(raw)
				if mapped.IsZero() && raw.IsZero() {
					return Skip("pas de comptes de gestion")
				}
				if gap.Abs().GreaterThan(ctx.Tolerance()) {
					return Fail("resultat des lignes mappees (%s) different du resultat par classes (%s)",
						fmtAmount(mapped), fmtAmount(raw)).
						With(&model.Details{Gap: gap, Expected: fmtAmount(raw), Observed: fmtAmount(mapped)}).
						Suggest("un compte de gestion est probablement mappe du mauvais cote")
				}
				return Pass("resultat identique entre mapping et classes")
			},
		},
		{
			Ref: "EF-004", Name: "Resultat du compte de resultat vs 13", Level: model.LevelStatements, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				r := ctx.Lines
				if r == nil {
					return Skip("agregation indisponible")
				}
				mapped := r.SectionTotal(mapping.SectionRevenues).Sub(r.SectionTotal(mapping.SectionExpenses))
				booked := ctx.Credit("13")
				if booked.IsZero() {
					return Skip("compte 13 non mouvemente")
				}
				if mapped.IsZero() {
					return Pass("classes de gestion soldees, resultat porte par le compte 13")
				}
				gap := booked.Sub(mapped)
				if gap.Abs().GreaterThan(ctx.Tolerance()) {
					return Fail("compte 13 (%s) different du resultat du compte de resultat (%s)",
						fmtAmount(booked), fmtAmount(mapped)).
						With(&model.Details{Gap: gap, Expected: fmtAmount(mapped), Observed: fmtAmount(booked)}).
						Suggest("solder les classes 6 et 7 vers le compte 13 avant edition des etats")
				}
				return Pass("resultat coherent entre compte de resultat et bilan")
			},
			Refine: func(ctx *Context, res model.ControlResult) model.ControlResult {
				if res.Status != model.StatusAnomaly || res.Details == nil {
					return res
				}
				gap := res.Details.Gap
				lines := []model.CorrectiveLine{
					{Side: model.SideDebit, Account: "130000", Label: "Resultat net de l'exercice", Amount: gap.Abs()},
					{Side: model.SideCredit, Account: "471000", Label: "Compte d'attente", Amount: gap.Abs()},
				}
				if gap.IsNegative() {
					lines[0].Side = model.SideCredit
					lines[1].Side = model.SideDebit
				}
				res.CorrectiveEntries = append(res.CorrectiveEntries, model.CorrectiveEntry{
					Journal: "OD",
					Lines:   lines,
					Comment: "ajustement a documenter entre resultat et compte 13",
				})
				return res
			},
		},
		{
			Ref: "EF-005", Name: "Fonds de roulement", Level: model.LevelStatements, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				durable := ctx.Credit("1")
				fixed := ctx.Sum("2")
				if durable.IsZero() && fixed.IsZero() {
					return Skip("pas de ressources durables ni d'actif immobilise")
				}
				fr := durable.Sub(fixed)
				if fr.IsNegative() {
					return Fail("fonds de roulement negatif: %s", fmtAmount(fr)).
						With(amountDetails(map[string]decimal.Decimal{
							"ressources_durables": durable, "actif_immobilise": fixed,
						})).
						Suggest("l'actif immobilise est finance par des ressources courtes")
				}
				return Pass("fonds de roulement de %s", fmtAmount(fr))
			},
		},
		{
			Ref: "EF-006", Name: "Endettement rapporte aux capitaux propres", Level: model.LevelStatements, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				equity := ctx.Credit("10", "11", "12", "13", "14", "15")
				debt := ctx.Credit("16", "17", "18")
				if debt.IsZero() {
					return Skip("pas de dettes financieres")
				}
				if equity.IsNegative() || equity.IsZero() {
					return Skip("capitaux propres non positifs, voir SS-010")
				}
				if debt.GreaterThan(equity.Mul(decimal.NewFromInt(3))) {
					return Fail("dettes financieres (%s) superieures a trois fois les capitaux propres (%s)",
						fmtAmount(debt), fmtAmount(equity))
				}
				return Pass("endettement contenu")
			},
		},
		{
			Ref: "EF-007", Name: "Ligne de capital servie", Level: model.LevelStatements, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				r := ctx.Lines
				if r == nil {
					return Skip("agregation indisponible")
				}
				code, ok := capitalLines[ctx.Sector]
				if !ok {
					return Skip("pas de ligne de capital definie pour ce secteur")
				}
				lv := r.Line(code)
				if lv == nil || lv.Value.IsZero() {
					return Fail("la ligne de capital %s est vide", code).
						Suggest("verifier le mapping des comptes 10x")
				}
				return Pass("ligne de capital servie (%s)", fmtAmount(lv.Value))
			},
		},
		{
			Ref: "EF-008", Name: "Poids des comptes non affectes", Level: model.LevelStatements, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				r := ctx.Lines
				if r == nil {
					return Skip("agregation indisponible")
				}
				if len(r.Unclassified) == 0 {
					return Pass("tous les comptes sont affectes a une ligne")
				}
				unmapped := decimal.Zero
				total := decimal.Zero
				for _, e := range ctx.Entries {
					total = total.Add(e.SignedClosing().Abs())
				}
				for _, account := range r.Unclassified {
					for _, e := range ctx.Entries {
						if e.Account == account {
							unmapped = unmapped.Add(e.SignedClosing().Abs())
						}
					}
				}
				if total.IsZero() {
					return Skip("balance sans soldes")
				}
				if unmapped.Mul(decimal.NewFromInt(100)).GreaterThan(total) {
					return Fail("les comptes non affectes pesent plus de 1%% des soldes (%s)", fmtAmount(unmapped)).
						With(&model.Details{Accounts: r.Unclassified})
				}
				return Fail("%d comptes non affectes, poids marginal", len(r.Unclassified)).
					With(&model.Details{Accounts: r.Unclassified})
			},
		},
	}
}
