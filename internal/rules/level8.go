package rules

import (
	"github.com/shopspring/decimal"

	"github.com/taxpilot-dev/taxpilot/internal/mapping"
	"github.com/taxpilot-dev/taxpilot/internal/model"
)

// fiscalRules flags positions the tax return will have to reprocess.
// These controls never block: they feed the liasse fiscale worksheet.
func fiscalRules() []Rule {
	return []Rule{
		{
			Ref: "FI-001", Name: "Deficit reporte et impot simultanes", Level: model.LevelFiscal, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				deficit := ctx.Sum("129")
				tax := ctx.Sum("89")
				if deficit.IsZero() || tax.IsZero() {
					return Skip("pas de deficit reporte et d'impot simultanes")
				}
				return Fail("impot de %s malgre un deficit reporte de %s", fmtAmount(tax), fmtAmount(deficit)).
					Suggest("verifier l'imputation des deficits anterieurs sur la base imposable")
			},
		},
		{
			Ref: "FI-002", Name: "Base d'amortissement des vehicules de tourisme", Level: model.LevelFiscal, Severity: model.SeverityInfo,
			RegulatoryRef: "CGI, plafond vehicules de tourisme",
			Eval: func(ctx *Context) Outcome {
				ceiling := decimal.NewFromInt(25_000_000)
				var over []string
				amounts := make(map[string]decimal.Decimal)
				for _, e := range ctx.Entries {
					if !e.HasPrefix("245") {
						continue
					}
					if v := e.SignedClosing(); v.GreaterThan(ceiling) {
						over = append(over, e.Account)
						amounts[e.Account] = v.Sub(ceiling)
					}
				}
				if len(over) > 0 {
					out := Fail("%d vehicules au-dela du plafond de base amortissable", len(over)).
						With(&model.Details{Accounts: over, Amounts: amounts})
					out.Details.FiscalImpact = "reintegration de l'amortissement excedentaire"
					return out
				}
				if ctx.Sum("245").IsZero() {
					return Skip("pas de materiel de transport en 245")
				}
				return Pass("bases d'amortissement des vehicules sous le plafond")
			},
		},
		{
			Ref: "FI-003", Name: "Charges somptuaires rapportees au chiffre d'affaires", Level: model.LevelFiscal, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				revenue := ctx.Credit("70")
				if revenue.IsZero() {
					return Skip("pas de chiffre d'affaires")
				}
				charges := ctx.Sum("627")
				if charges.Mul(decimal.NewFromInt(100)).GreaterThan(revenue) {
					out := Fail("publicite et receptions (%s) au-dela de 1%% du chiffre d'affaires", fmtAmount(charges)).
						With(amountDetails(map[string]decimal.Decimal{
							"charges_627": charges, "chiffre_affaires": revenue,
						}))
					out.Details.FiscalImpact = "part somptuaire a reintegrer le cas echeant"
					return out
				}
				return Pass("charges 627 dans les usages")
			},
		},
		{
			Ref: "FI-004", Name: "Amendes et penalites non deductibles", Level: model.LevelFiscal, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				fines := ctx.Sum("647")
				if fines.IsZero() {
					return Pass("pas d'amendes ni de penalites en charges")
				}
				out := Fail("amendes et penalites de %s a reintegrer", fmtAmount(fines)).
					With(amountDetails(map[string]decimal.Decimal{"penalites_647": fines})).
					Suggest("reintegration extra-comptable obligatoire sur la liasse")
				out.Details.FiscalImpact = fmtAmount(fines)
				return out
			},
		},
		{
			Ref: "FI-005", Name: "Dons et liberalites plafonnes", Level: model.LevelFiscal, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				donations := ctx.Sum("658")
				if donations.IsZero() {
					return Skip("pas de dons ni liberalites")
				}
				revenue := ctx.Credit("70")
				if revenue.IsZero() {
					return Skip("pas de chiffre d'affaires pour asseoir le plafond")
				}
				// Common OHADA-state ceiling: 5 pour mille du CA.
				ceiling := revenue.Mul(decimal.RequireFromString("0.005"))
				if donations.GreaterThan(ceiling) {
					out := Fail("dons de %s au-dela du plafond deductible de %s", fmtAmount(donations), fmtAmount(ceiling)).
						With(amountDetails(map[string]decimal.Decimal{
							"dons_658": donations, "plafond": ceiling,
						}))
					out.Details.FiscalImpact = fmtAmount(donations.Sub(ceiling))
					return out
				}
				return Pass("dons sous le plafond deductible")
			},
		},
		{
			Ref: "FI-006", Name: "Coherence de l'impot sur le resultat", Level: model.LevelFiscal, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				result := ctx.Result().Sub(ctx.Sum("89"))
				tax := ctx.Sum("89")
				if result.LessThanOrEqual(decimal.Zero) {
					return Skip("resultat nul ou deficitaire")
				}
				if tax.IsZero() {
					return Fail("resultat beneficiaire de %s sans charge d'impot", fmtAmount(result)).
						Suggest("comptabiliser l'impot sur le resultat ou l'IMF en compte 89")
				}
				rate := tax.Div(result)
				if rate.LessThan(decimal.RequireFromString("0.05")) || rate.GreaterThan(decimal.RequireFromString("0.50")) {
					return Fail("taux d'impot apparent atypique: %s%%", rate.Mul(decimal.NewFromInt(100)).StringFixed(1)).
						With(amountDetails(map[string]decimal.Decimal{"impot_89": tax, "resultat": result}))
				}
				return Pass("charge d'impot coherente avec le resultat")
			},
		},
		{
			Ref: "FI-007", Name: "Situation TVA retracee", Level: model.LevelFiscal, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				if ctx.Sector == mapping.SectorNonProfit {
					return Skip("entite non lucrative")
				}
				revenue := ctx.Credit("70")
				if revenue.IsZero() {
					return Skip("pas de chiffre d'affaires")
				}
				vat := false
				for _, e := range ctx.Entries {
					if e.HasPrefix("443") || e.HasPrefix("444") || e.HasPrefix("445") {
						vat = true
						break
					}
				}
				if !vat {
					return Fail("chiffre d'affaires sans aucun compte de TVA").
						Suggest("confirmer le regime: franchise, exoneration ou omission")
				}
				return Pass("comptes de TVA presents")
			},
		},
		{
			Ref: "FI-008", Name: "Charges sociales adossees aux salaires", Level: model.LevelFiscal, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				payroll := ctx.Sum("66")
				if payroll.IsZero() {
					return Skip("pas de charges de personnel")
				}
				social := false
				for _, e := range ctx.Entries {
					if e.HasPrefix("42") || e.HasPrefix("43") {
						social = true
						break
					}
				}
				if !social {
					return Fail("charges de personnel de %s sans comptes de personnel ni d'organismes sociaux", fmtAmount(payroll)).
						Suggest("verifier la comptabilisation des retenues et cotisations")
				}
				return Pass("cotisations sociales retracees")
			},
		},
	}
}
