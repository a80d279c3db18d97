package rules

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/taxpilot-dev/taxpilot/internal/model"
)

var accountFormat = regexp.MustCompile(`^\d{2,12}$`)

// structuralRules checks that the balance file is usable at all before
// any accounting logic runs.
func structuralRules() []Rule {
	return []Rule{
		{
			Ref: "S-001", Name: "Balance non vide", Level: model.LevelStructural, Severity: model.SeverityBlocking,
			Eval: func(ctx *Context) Outcome {
				if len(ctx.Entries) == 0 {
					return Fail("aucune ligne de balance fournie")
				}
				return Pass("%d lignes de balance", len(ctx.Entries))
			},
		},
		{
			Ref: "S-002", Name: "Numeros de compte renseignes", Level: model.LevelStructural, Severity: model.SeverityBlocking,
			Eval: func(ctx *Context) Outcome {
				var missing int
				for _, e := range ctx.Entries {
					if e.Account == "" {
						missing++
					}
				}
				if missing > 0 {
					return Fail("%d lignes sans numero de compte", missing).
						Suggest("corriger le fichier source avant import")
				}
				return Pass("tous les numeros de compte sont renseignes")
			},
		},
		{
			Ref: "S-003", Name: "Format des numeros de compte", Level: model.LevelStructural, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				if len(ctx.Entries) == 0 {
					return Skip("balance vide")
				}
				var bad []string
				for _, e := range ctx.Entries {
					if !accountFormat.MatchString(e.Account) {
						bad = append(bad, e.Account)
					}
				}
				valid := len(ctx.Entries) - len(bad)
				ratio := decimal.NewFromInt(int64(valid)).Div(decimal.NewFromInt(int64(len(ctx.Entries))))
				if ratio.LessThan(ctx.Thresholds.AccountFormatRatio) {
					return Fail("seulement %d/%d comptes au format numerique attendu", valid, len(ctx.Entries)).
						With(&model.Details{Accounts: bad, Expected: "^\\d{2,12}$"})
				}
				if len(bad) > 0 {
					return Pass("%d comptes hors format, sous le seuil de rejet", len(bad))
				}
				return Pass("format des comptes conforme")
			},
		},
		{
			Ref: "S-004", Name: "Montants positifs", Level: model.LevelStructural, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				var bad []string
				for _, e := range ctx.Entries {
					if e.DebitClosing.IsNegative() || e.CreditClosing.IsNegative() ||
						e.DebitTurnover.IsNegative() || e.CreditTurnover.IsNegative() {
						bad = append(bad, e.Account)
					}
				}
				if len(bad) > 0 {
					return Fail("%d comptes avec des montants negatifs apres normalisation", len(bad)).
						With(&model.Details{Accounts: bad}).
						Suggest("reporter les montants negatifs dans la colonne opposee")
				}
				return Pass("aucun montant negatif")
			},
		},
		{
			Ref: "S-005", Name: "Nombre minimal de lignes", Level: model.LevelStructural, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				min := ctx.Thresholds.MinBalanceLines
				if min <= 0 {
					min = 10
				}
				if len(ctx.Entries) < min {
					return Fail("%d lignes, minimum attendu %d pour une balance complete", len(ctx.Entries), min)
				}
				return Pass("%d lignes", len(ctx.Entries))
			},
		},
		{
			Ref: "S-006", Name: "Comptes en double", Level: model.LevelStructural, Severity: model.SeverityBlocking,
			Eval: func(ctx *Context) Outcome {
				seen := make(map[string]int)
				for _, e := range ctx.Entries {
					seen[e.Account]++
				}
				var dups []string
				for _, e := range ctx.Entries {
					if seen[e.Account] > 1 {
						dups = append(dups, e.Account)
						seen[e.Account] = 0
					}
				}
				if len(dups) > 0 {
					return Fail("%d comptes apparaissent plusieurs fois", len(dups)).
						With(&model.Details{Accounts: dups}).
						Suggest("fusionner les lignes en double dans le fichier source")
				}
				return Pass("aucun compte en double")
			},
		},
		{
			Ref: "S-007", Name: "Presence de la balance N-1", Level: model.LevelStructural, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				if !ctx.HasPrior() {
					return Fail("aucune balance N-1: les controles comparatifs seront ignores").
						Suggest("importer la balance de l'exercice precedent")
				}
				return Pass("balance N-1 presente (%d lignes)", len(ctx.Prior))
			},
		},
		{
			Ref: "S-008", Name: "Couverture des comptes N/N-1", Level: model.LevelStructural, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				if !ctx.HasPrior() {
					return Skip("pas de balance N-1")
				}
				current := make(map[string]bool, len(ctx.Entries))
				for _, e := range ctx.Entries {
					current[e.Account] = true
				}
				common := 0
				for _, e := range ctx.Prior {
					if current[e.Account] {
						common++
					}
				}
				half := (len(ctx.Prior) + 1) / 2
				if common < half {
					return Fail("seulement %d/%d comptes N-1 retrouves en N", common, len(ctx.Prior)).
						Suggest("verifier que les deux balances proviennent du meme dossier")
				}
				return Pass("%d/%d comptes communs avec N-1", common, len(ctx.Prior))
			},
		},
		{
			Ref: "S-009", Name: "Intitules renseignes", Level: model.LevelStructural, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				var missing []string
				for _, e := range ctx.Entries {
					if e.Label == "" {
						missing = append(missing, e.Account)
					}
				}
				if len(missing) > 0 {
					return Fail("%d comptes sans intitule", len(missing)).
						With(&model.Details{Accounts: missing})
				}
				return Pass("tous les intitules sont renseignes")
			},
		},
		{
			Ref: "S-010", Name: "Solde unique par compte", Level: model.LevelStructural, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				var both []string
				for _, e := range ctx.Entries {
					if !e.DebitClosing.IsZero() && !e.CreditClosing.IsZero() {
						both = append(both, e.Account)
					}
				}
				if len(both) > 0 {
					return Fail("%d comptes avec un solde debiteur et crediteur simultanes", len(both)).
						With(&model.Details{Accounts: both}).
						Suggest("ne reporter que le solde net de cloture par compte")
				}
				return Pass("un seul sens de solde par compte")
			},
		},
	}
}

func amountDetails(pairs map[string]decimal.Decimal) *model.Details {
	return &model.Details{Amounts: pairs}
}

func fmtAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
