package rules

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/taxpilot-dev/taxpilot/internal/model"
)

// senseRules checks that balances sit on their expected side and that
// the amounts themselves look plausible.
func senseRules() []Rule {
	rules := []Rule{
		{
			Ref: "SS-001", Name: "Capitaux et dettes financieres crediteurs", Level: model.LevelSense, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				return expectCredit(ctx, []string{"10", "11", "14", "15", "16", "17", "18", "19"},
					[]string{"109", "12", "13"}, "classe 1")
			},
		},
		{
			Ref: "SS-002", Name: "Immobilisations debitrices", Level: model.LevelSense, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				return expectDebit(ctx, []string{"20", "21", "22", "23", "24", "25", "26", "27"}, nil, "classe 2")
			},
		},
		{
			Ref: "SS-003", Name: "Stocks debiteurs", Level: model.LevelSense, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				return expectDebit(ctx, []string{"31", "32", "33", "34", "35", "36", "37", "38"}, nil, "classe 3")
			},
		},
		{
			Ref: "SS-004", Name: "Clients crediteurs a reclasser", Level: model.LevelSense, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				wrong, amounts := wrongSide(ctx, []string{"411", "412", "413", "414", "415", "416", "418"}, nil, true)
				if len(wrong) > 0 {
					return Fail("%d comptes clients a solde crediteur", len(wrong)).
						With(&model.Details{Accounts: wrong, Amounts: amounts}).
						Suggest("reclasser les avances recues en 419 Clients crediteurs")
				}
				return Pass("comptes clients debiteurs")
			},
			Refine: reclassify("419000", "Clients crediteurs, avances recues", true),
		},
		{
			Ref: "SS-005", Name: "Fournisseurs debiteurs a reclasser", Level: model.LevelSense, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				wrong, amounts := wrongSide(ctx, []string{"401", "402", "403", "404", "405", "408"}, nil, false)
				if len(wrong) > 0 {
					return Fail("%d comptes fournisseurs a solde debiteur", len(wrong)).
						With(&model.Details{Accounts: wrong, Amounts: amounts}).
						Suggest("reclasser les avances versees en 409 Fournisseurs debiteurs")
				}
				return Pass("comptes fournisseurs crediteurs")
			},
			Refine: reclassify("409000", "Fournisseurs debiteurs, avances versees", false),
		},
		{
			Ref: "SS-006", Name: "Banques debitrices ou decouvert en 56", Level: model.LevelSense, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				wrong, amounts := wrongSide(ctx, []string{"52", "53", "57"}, nil, true)
				if len(wrong) > 0 {
					return Fail("%d comptes de tresorerie actif a solde crediteur", len(wrong)).
						With(&model.Details{Accounts: wrong, Amounts: amounts}).
						Suggest("presenter les decouverts en 56 Banques, credits de tresorerie")
				}
				return Pass("tresorerie actif debitrice")
			},
		},
		{
			Ref: "SS-007", Name: "Charges debitrices", Level: model.LevelSense, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				return expectDebit(ctx, []string{"60", "61", "62", "63", "64", "65", "66", "67", "68", "69"},
					[]string{"603", "609", "619", "629", "639", "649", "659", "669", "679", "689", "699"}, "classe 6")
			},
		},
		{
			Ref: "SS-008", Name: "Produits crediteurs", Level: model.LevelSense, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				return expectCredit(ctx, []string{"70", "71", "72", "74", "75", "76", "77", "78", "79"},
					[]string{"709", "719", "729", "739", "73"}, "classe 7")
			},
		},
		{
			Ref: "SS-009", Name: "Amortissements et depreciations crediteurs", Level: model.LevelSense, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				return expectCredit(ctx, []string{"28", "29", "39", "49", "59"}, []string{"499"}, "comptes correcteurs")
			},
		},
		{
			Ref: "SS-010", Name: "Capitaux propres positifs", Level: model.LevelSense, Severity: model.SeverityMajor,
			RegulatoryRef: "AUSCGIE art. 664",
			Eval: func(ctx *Context) Outcome {
				equity := ctx.Credit("10", "11", "12", "13", "14", "15")
				if equity.IsZero() {
					return Skip("pas de capitaux propres mouvementes")
				}
				if equity.IsNegative() {
					return Fail("capitaux propres negatifs: %s", fmtAmount(equity)).
						With(amountDetails(map[string]decimal.Decimal{"capitaux_propres": equity})).
						Suggest("situation de l'art. 664 AUSCGIE: reconstitution des capitaux propres a engager")
				}
				return Pass("capitaux propres de %s", fmtAmount(equity))
			},
		},
		{
			Ref: "MA-001", Name: "Precision des montants", Level: model.LevelSense, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				var bad []string
				for _, e := range ctx.Entries {
					if e.DebitClosing.Exponent() < -2 || e.CreditClosing.Exponent() < -2 {
						bad = append(bad, e.Account)
					}
				}
				if len(bad) > 0 {
					return Fail("%d comptes avec plus de deux decimales", len(bad)).
						With(&model.Details{Accounts: bad})
				}
				return Pass("montants a deux decimales au plus")
			},
		},
		{
			Ref: "MA-002", Name: "Centimes residuels", Level: model.LevelSense, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				if len(ctx.Entries) == 0 {
					return Skip("balance vide")
				}
				var cents []string
				for _, e := range ctx.Entries {
					if !e.SignedClosing().Equal(e.SignedClosing().Truncate(0)) {
						cents = append(cents, e.Account)
					}
				}
				// In FCFA everything is whole; a handful of fractional
				// balances usually betrays a conversion artefact.
				if len(cents) > 0 && len(cents)*20 <= len(ctx.Entries) {
					return Fail("%d comptes avec des centimes dans une balance par ailleurs entiere", len(cents)).
						With(&model.Details{Accounts: cents})
				}
				return Pass("pas de centimes residuels suspects")
			},
		},
		{
			Ref: "MA-003", Name: "Concentration des soldes", Level: model.LevelSense, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				total := decimal.Zero
				largest := decimal.Zero
				var largestAccount string
				for _, e := range ctx.Entries {
					abs := e.SignedClosing().Abs()
					total = total.Add(abs)
					if abs.GreaterThan(largest) {
						largest = abs
						largestAccount = e.Account
					}
				}
				if total.IsZero() {
					return Skip("balance sans soldes")
				}
				if largest.Mul(decimal.NewFromInt(2)).GreaterThan(total) && len(ctx.Entries) > 2 {
					return Fail("le compte %s concentre plus de la moitie des soldes", largestAccount).
						With(amountDetails(map[string]decimal.Decimal{largestAccount: largest}))
				}
				return Pass("pas de concentration anormale")
			},
		},
		{
			Ref: "MA-004", Name: "Comptes a solde et mouvements nuls", Level: model.LevelSense, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				var empty []string
				for _, e := range ctx.Entries {
					if e.DebitClosing.IsZero() && e.CreditClosing.IsZero() &&
						e.DebitTurnover.IsZero() && e.CreditTurnover.IsZero() {
						empty = append(empty, e.Account)
					}
				}
				if len(empty) > 0 {
					return Fail("%d lignes entierement nulles polluent la balance", len(empty)).
						With(&model.Details{Accounts: empty}).
						Suggest("purger les comptes sans mouvement de l'edition")
				}
				return Pass("pas de lignes nulles")
			},
		},
		{
			Ref: "MA-005", Name: "Tresorerie nette", Level: model.LevelSense, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				cash := ctx.Sum("50", "51", "52", "53", "54", "55", "57", "58")
				overdraft := ctx.Credit("56")
				net := cash.Sub(overdraft)
				if cash.IsZero() && overdraft.IsZero() {
					return Skip("pas de comptes de tresorerie")
				}
				if net.IsNegative() {
					return Fail("tresorerie nette negative: %s", fmtAmount(net)).
						With(amountDetails(map[string]decimal.Decimal{
							"tresorerie_actif": cash, "credits_tresorerie": overdraft,
						})).
						Suggest("documenter le financement du decouvert dans l'annexe")
				}
				return Pass("tresorerie nette de %s", fmtAmount(net))
			},
		},
		{
			Ref: "MA-006", Name: "Charges rondes significatives", Level: model.LevelSense, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				million := decimal.NewFromInt(1_000_000)
				step := decimal.NewFromInt(100_000)
				var round []string
				for _, e := range ctx.Entries {
					if e.Class() != 6 {
						continue
					}
					v := e.SignedClosing()
					if v.GreaterThanOrEqual(million) && v.Mod(step).IsZero() {
						round = append(round, e.Account)
					}
				}
				if len(round) >= 3 {
					return Fail("%d charges importantes a montant rond: estimations?", len(round)).
						With(&model.Details{Accounts: round}).
						Suggest("s'assurer que ces charges reposent sur des pieces justificatives")
				}
				return Pass("pas d'accumulation de montants ronds en charges")
			},
		},
	}
	return rules
}

// wrongSide lists accounts under the prefixes whose balance sits on the
// unexpected side. debitExpected selects the expected side; excluded
// prefixes are skipped.
func wrongSide(ctx *Context, prefixes, excluded []string, debitExpected bool) ([]string, map[string]decimal.Decimal) {
	var wrong []string
	amounts := make(map[string]decimal.Decimal)
	for _, e := range ctx.Entries {
		if !hasAnyPrefix(e.Account, prefixes) || hasAnyPrefix(e.Account, excluded) {
			continue
		}
		signed := e.SignedClosing()
		if signed.Abs().LessThanOrEqual(ctx.Tolerance()) {
			continue
		}
		if debitExpected && signed.IsNegative() || !debitExpected && signed.IsPositive() {
			wrong = append(wrong, e.Account)
			amounts[e.Account] = signed
		}
	}
	sort.Strings(wrong)
	if len(amounts) == 0 {
		amounts = nil
	}
	return wrong, amounts
}

func expectDebit(ctx *Context, prefixes, excluded []string, scope string) Outcome {
	wrong, amounts := wrongSide(ctx, prefixes, excluded, true)
	if len(wrong) > 0 {
		return Fail("%d comptes %s a solde crediteur inattendu", len(wrong), scope).
			With(&model.Details{Accounts: wrong, Amounts: amounts})
	}
	return Pass("sens des soldes conforme (%s)", scope)
}

func expectCredit(ctx *Context, prefixes, excluded []string, scope string) Outcome {
	wrong, amounts := wrongSide(ctx, prefixes, excluded, false)
	if len(wrong) > 0 {
		return Fail("%d comptes %s a solde debiteur inattendu", len(wrong), scope).
			With(&model.Details{Accounts: wrong, Amounts: amounts})
	}
	return Pass("sens des soldes conforme (%s)", scope)
}

// reclassify builds a refinement step moving each wrong-side balance to
// target. creditBalances selects which side is being cleared.
func reclassify(target, label string, creditBalances bool) func(*Context, model.ControlResult) model.ControlResult {
	return func(ctx *Context, res model.ControlResult) model.ControlResult {
		if res.Status != model.StatusAnomaly || res.Details == nil {
			return res
		}
		for _, account := range res.Details.Accounts {
			amount, ok := res.Details.Amounts[account]
			if !ok {
				continue
			}
			abs := amount.Abs()
			lines := []model.CorrectiveLine{
				{Side: model.SideDebit, Account: account, Label: "Extourne du solde a contre-sens", Amount: abs},
				{Side: model.SideCredit, Account: target, Label: label, Amount: abs},
			}
			if !creditBalances {
				lines = []model.CorrectiveLine{
					{Side: model.SideDebit, Account: target, Label: label, Amount: abs},
					{Side: model.SideCredit, Account: account, Label: "Extourne du solde a contre-sens", Amount: abs},
				}
			}
			res.CorrectiveEntries = append(res.CorrectiveEntries, model.CorrectiveEntry{
				Journal: "OD",
				Lines:   lines,
				Comment: "reclassement propose: " + account + " vers " + target,
			})
		}
		return res
	}
}

func hasAnyPrefix(account string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(account, p) {
			return true
		}
	}
	return false
}
