package rules

import (
	"github.com/taxpilot-dev/taxpilot/internal/mapping"
	"github.com/taxpilot-dev/taxpilot/internal/model"
	"github.com/taxpilot-dev/taxpilot/internal/plan"
)

// conformityRules checks the balance against the SYSCOHADA chart of
// accounts and the sector mapping table.
func conformityRules() []Rule {
	return []Rule{
		{
			Ref: "C-001", Name: "Comptes connus du plan", Level: model.LevelConformity, Severity: model.SeverityMajor,
			RegulatoryRef: "SYSCOHADA Revise, plan de comptes",
			Eval: func(ctx *Context) Outcome {
				if ctx.Plan == nil {
					return Skip("plan de comptes non charge")
				}
				var unknown []string
				for _, e := range ctx.Entries {
					if _, ok := ctx.Plan.Resolve(e.Account); !ok {
						unknown = append(unknown, e.Account)
					}
				}
				if len(unknown) > 0 {
					out := Fail("%d comptes sans racine dans le plan", len(unknown)).
						With(&model.Details{Accounts: unknown})
					if closest, ok := ctx.Plan.Closest(unknown[0]); ok {
						out = out.Suggest("rapprocher par exemple %s de %s (%s)", unknown[0], closest.Number, closest.Label)
					}
					return out
				}
				return Pass("tous les comptes se rattachent au plan")
			},
		},
		{
			Ref: "C-002", Name: "Classe de compte valide", Level: model.LevelConformity, Severity: model.SeverityBlocking,
			Eval: func(ctx *Context) Outcome {
				var bad []string
				for _, e := range ctx.Entries {
					if e.Class() == 0 {
						bad = append(bad, e.Account)
					}
				}
				if len(bad) > 0 {
					return Fail("%d comptes hors classes 1 a 9", len(bad)).
						With(&model.Details{Accounts: bad}).
						Suggest("les comptes SYSCOHADA commencent par un chiffre de 1 a 9")
				}
				return Pass("classes de comptes valides")
			},
		},
		{
			Ref: "C-003", Name: "Longueur des numeros de compte", Level: model.LevelConformity, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				var odd []string
				for _, e := range ctx.Entries {
					if n := len(e.Account); n < 4 || n > 8 {
						odd = append(odd, e.Account)
					}
				}
				if len(odd) > 0 {
					return Fail("%d comptes hors de la longueur usuelle 4-8 chiffres", len(odd)).
						With(&model.Details{Accounts: odd})
				}
				return Pass("longueurs de comptes usuelles")
			},
		},
		{
			Ref: "C-004", Name: "Comptes interdits pour le secteur", Level: model.LevelConformity, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				if ctx.Plan == nil {
					return Skip("plan de comptes non charge")
				}
				var used []string
				for _, e := range ctx.Entries {
					if acc, ok := ctx.Plan.Resolve(e.Account); ok && acc.Usage == plan.UsageForbidden {
						used = append(used, e.Account)
					}
				}
				if len(used) > 0 {
					return Fail("%d comptes interdits mouvementes", len(used)).
						With(&model.Details{Accounts: used})
				}
				return Pass("aucun compte interdit mouvemente")
			},
		},
		{
			Ref: "C-005", Name: "Couverture du mapping, classes 1 a 5", Level: model.LevelConformity, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				if ctx.Table == nil {
					return Skip("table de mapping non resolue")
				}
				var uncovered []string
				for _, e := range ctx.Entries {
					if c := e.Class(); c >= 1 && c <= 5 {
						if _, ok := ctx.Table.Classify(e.Account); !ok {
							uncovered = append(uncovered, e.Account)
						}
					}
				}
				if len(uncovered) > 0 {
					return Fail("%d comptes de bilan non affectes a une ligne d'etat", len(uncovered)).
						With(&model.Details{Accounts: uncovered}).
						Suggest("completer la table de mapping du secteur %s", ctx.Sector)
				}
				return Pass("comptes de bilan entierement mappes")
			},
		},
		{
			Ref: "C-006", Name: "Sens du solde conforme au plan", Level: model.LevelConformity, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				if ctx.Plan == nil {
					return Skip("plan de comptes non charge")
				}
				var wrong []string
				for _, e := range ctx.Entries {
					acc, ok := ctx.Plan.Resolve(e.Account)
					if !ok || acc.Nature == plan.NatureSpecial {
						continue
					}
					// 12 and 13 legitimately swing both ways.
					if e.HasPrefix("12") || e.HasPrefix("13") || e.HasPrefix("129") || e.HasPrefix("139") {
						continue
					}
					signed := e.SignedClosing()
					if signed.Abs().LessThanOrEqual(ctx.Tolerance()) {
						continue
					}
					if acc.Side == plan.SideDebit && signed.IsNegative() ||
						acc.Side == plan.SideCredit && signed.IsPositive() {
						wrong = append(wrong, e.Account)
					}
				}
				if len(wrong) > 0 {
					return Fail("%d comptes avec un solde a contre-sens du plan", len(wrong)).
						With(&model.Details{Accounts: wrong}).
						Suggest("verifier les saisies inversees ou reclasser (voir controles de niveau 4)")
				}
				return Pass("sens des soldes conforme au plan")
			},
		},
		{
			Ref: "C-007", Name: "Comptes obligatoires presents", Level: model.LevelConformity, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				if ctx.Plan == nil {
					return Skip("plan de comptes non charge")
				}
				var missing []string
				for _, acc := range ctx.Plan.All() {
					if acc.Usage != plan.UsageMandatory {
						continue
					}
					found := false
					for _, e := range ctx.Entries {
						if e.HasPrefix(acc.Number) {
							found = true
							break
						}
					}
					if !found {
						missing = append(missing, acc.Number)
					}
				}
				if len(missing) > 0 {
					return Fail("comptes obligatoires absents de la balance: %v", missing).
						With(&model.Details{Accounts: missing})
				}
				return Pass("comptes obligatoires presents")
			},
		},
		{
			Ref: "C-008", Name: "Couverture du mapping, classes 6 a 8", Level: model.LevelConformity, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				if ctx.Table == nil {
					return Skip("table de mapping non resolue")
				}
				var uncovered []string
				for _, e := range ctx.Entries {
					if c := e.Class(); c >= 6 && c <= 8 {
						if _, ok := ctx.Table.Classify(e.Account); !ok {
							uncovered = append(uncovered, e.Account)
						}
					}
				}
				if len(uncovered) > 0 {
					return Fail("%d comptes de gestion non affectes a une ligne d'etat", len(uncovered)).
						With(&model.Details{Accounts: uncovered})
				}
				return Pass("comptes de gestion entierement mappes")
			},
		},
		{
			Ref: "C-009", Name: "Granularite adaptee au regime", Level: model.LevelConformity, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				if ctx.Sector != mapping.SectorSmallEntity {
					return Skip("controle propre au systeme minimal de tresorerie")
				}
				long := 0
				for _, e := range ctx.Entries {
					if len(e.Account) > 6 {
						long++
					}
				}
				if long > len(ctx.Entries)/2 {
					return Fail("%d comptes tres detailles pour un dossier SMT", long).
						Suggest("le regime SMT autorise un plan abrege")
				}
				return Pass("granularite du plan adaptee au SMT")
			},
		},
		{
			Ref: "C-010", Name: "Engagements hors bilan du secteur", Level: model.LevelConformity, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				if ctx.Sector != mapping.SectorBank && ctx.Sector != mapping.SectorMicrofinance {
					return Skip("suivi hors bilan impose aux seuls etablissements financiers")
				}
				for _, e := range ctx.Entries {
					if e.Class() == 9 {
						return Pass("engagements hors bilan suivis en classe 9")
					}
				}
				return Fail("aucun compte de classe 9: engagements hors bilan non suivis").
					Suggest("recenser les engagements donnes et recus")
			},
		},
	}
}
