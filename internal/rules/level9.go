package rules

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/taxpilot-dev/taxpilot/internal/balance"
	"github.com/taxpilot-dev/taxpilot/internal/model"
)

// archiveRules crosses the current file against the archived snapshots
// of earlier audited exercises. Without archives every rule here is not
// applicable.
func archiveRules() []Rule {
	return []Rule{
		{
			Ref: "AR-001", Name: "Balance N-1 conforme au snapshot archive", Level: model.LevelArchives, Severity: model.SeverityBlocking,
			Eval: func(ctx *Context) Outcome {
				archived, ok := archiveForYear(ctx, previousYear(ctx.FiscalYear))
				if !ok {
					return Skip("pas d'archive pour l'exercice precedent")
				}
				if !ctx.HasPrior() {
					return Skip("pas de balance N-1 a confronter a l'archive")
				}
				if balance.Hash(ctx.Prior) != archived.Snapshot.Hash {
					return Fail("la balance N-1 fournie differe du snapshot archive lors de l'audit %s", archived.SessionID).
						With(&model.Details{
							Expected: archived.Snapshot.Hash,
							Observed: balance.Hash(ctx.Prior),
						}).
						Suggest("repartir du snapshot archive ou documenter la correction retrospective")
				}
				return Pass("balance N-1 identique au snapshot archive")
			},
		},
		{
			Ref: "AR-002", Name: "Continuite du capital sur les archives", Level: model.LevelArchives, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				archived, ok := archiveForYear(ctx, previousYear(ctx.FiscalYear))
				if !ok {
					return Skip("pas d'archive pour l'exercice precedent")
				}
				past := creditOf(archived.Snapshot.Lines, "101", "102", "103", "104")
				cur := ctx.Credit("101", "102", "103", "104")
				if past.IsZero() {
					return Skip("pas de capital dans le snapshot archive")
				}
				if cur.Sub(past).Abs().GreaterThan(ctx.Tolerance()) {
					return Fail("capital passe de %s (archive) a %s sans operation tracee", fmtAmount(past), fmtAmount(cur)).
						With(&model.Details{Expected: fmtAmount(past), Observed: fmtAmount(cur)})
				}
				return Pass("capital stable depuis l'archive")
			},
		},
		{
			Ref: "AR-003", Name: "Tendance du resultat sur les archives", Level: model.LevelArchives, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				history := sortedArchives(ctx)
				if len(history) < 2 {
					return Skip("moins de deux exercices archives")
				}
				losses := 0
				for _, a := range history {
					if resultOf(a.Snapshot.Lines).IsNegative() {
						losses++
					} else {
						losses = 0
					}
				}
				if ctx.Result().IsNegative() {
					losses++
				}
				if losses >= 3 {
					return Fail("%d exercices deficitaires consecutifs", losses).
						Suggest("evaluer la continuite d'exploitation")
				}
				return Pass("pas de serie deficitaire sur les archives")
			},
		},
		{
			Ref: "AR-004", Name: "Serie d'exercices archives continue", Level: model.LevelArchives, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				history := sortedArchives(ctx)
				if len(history) == 0 {
					return Skip("aucune archive")
				}
				var missing []string
				for i := 1; i < len(history); i++ {
					prev, err1 := strconv.Atoi(history[i-1].FiscalYear)
					cur, err2 := strconv.Atoi(history[i].FiscalYear)
					if err1 != nil || err2 != nil {
						continue
					}
					for y := prev + 1; y < cur; y++ {
						missing = append(missing, strconv.Itoa(y))
					}
				}
				if len(missing) > 0 {
					return Fail("exercices manquants dans la serie d'archives: %v", missing).
						Suggest("archiver chaque exercice audite pour garder la chaine complete")
				}
				return Pass("serie d'archives continue (%d exercices)", len(history))
			},
		},
		{
			Ref: "AR-005", Name: "Chaine des reports a nouveau", Level: model.LevelArchives, Severity: model.SeverityMinor,
			Eval: func(ctx *Context) Outcome {
				history := sortedArchives(ctx)
				if len(history) < 2 {
					return Skip("moins de deux exercices archives")
				}
				var broken []string
				for i := 1; i < len(history); i++ {
					prev := history[i-1].Snapshot.Lines
					cur := history[i].Snapshot.Lines
					expected := creditOf(prev, "12").Add(creditOf(prev, "13"))
					observed := creditOf(cur, "12")
					if observed.GreaterThan(expected.Add(ctx.Tolerance())) {
						broken = append(broken, history[i].FiscalYear)
					}
				}
				if len(broken) > 0 {
					return Fail("reports a nouveau incoherents pour les exercices %v", broken)
				}
				return Pass("chaine des reports a nouveau coherente")
			},
		},
		{
			Ref: "AR-006", Name: "Stabilite des methodes sur les archives", Level: model.LevelArchives, Severity: model.SeverityInfo,
			Eval: func(ctx *Context) Outcome {
				history := sortedArchives(ctx)
				if len(history) == 0 {
					return Skip("aucune archive")
				}
				last := history[len(history)-1]
				prev := pnlPrefixes(last.Snapshot.Lines)
				if len(prev) == 0 {
					return Skip("pas de comptes de gestion dans la derniere archive")
				}
				cur := pnlPrefixes(ctx.Entries)
				common := 0
				for p := range prev {
					if cur[p] {
						common++
					}
				}
				if common*2 < len(prev) {
					return Fail("structure des comptes de gestion tres differente de l'exercice archive %s", last.FiscalYear)
				}
				return Pass("methodes stables par rapport aux archives")
			},
		},
		{
			Ref: "AR-007", Name: "Ajustements retrospectifs detailles", Level: model.LevelArchives, Severity: model.SeverityMajor,
			Eval: func(ctx *Context) Outcome {
				archived, ok := archiveForYear(ctx, previousYear(ctx.FiscalYear))
				if !ok {
					return Skip("pas d'archive pour l'exercice precedent")
				}
				if !ctx.HasPrior() {
					return Skip("pas de balance N-1")
				}
				frozen := make(map[string]decimal.Decimal, len(archived.Snapshot.Lines))
				for _, e := range archived.Snapshot.Lines {
					frozen[e.Account] = e.SignedClosing()
				}
				var changed []string
				amounts := make(map[string]decimal.Decimal)
				for _, e := range ctx.Prior {
					if diff := e.SignedClosing().Sub(frozen[e.Account]); diff.Abs().GreaterThan(ctx.Tolerance()) {
						changed = append(changed, e.Account)
						amounts[e.Account] = diff
					}
				}
				if len(changed) > 0 {
					sort.Strings(changed)
					return Fail("%d comptes N-1 modifies apres archivage", len(changed)).
						With(&model.Details{Accounts: changed, Amounts: amounts}).
						Suggest("les corrections d'exercices anterieurs passent par les capitaux propres et l'annexe")
				}
				return Pass("aucun ajustement retrospectif sur N-1")
			},
		},
	}
}

func previousYear(fiscalYear string) string {
	y, err := strconv.Atoi(fiscalYear)
	if err != nil {
		return ""
	}
	return strconv.Itoa(y - 1)
}

func archiveForYear(ctx *Context, year string) (model.Archive, bool) {
	if year == "" {
		return model.Archive{}, false
	}
	for i := len(ctx.Archives) - 1; i >= 0; i-- {
		if ctx.Archives[i].FiscalYear == year {
			return ctx.Archives[i], true
		}
	}
	return model.Archive{}, false
}

func sortedArchives(ctx *Context) []model.Archive {
	out := make([]model.Archive, len(ctx.Archives))
	copy(out, ctx.Archives)
	sort.Slice(out, func(i, j int) bool { return out[i].FiscalYear < out[j].FiscalYear })
	return out
}

func creditOf(entries []model.BalanceEntry, prefixes ...string) decimal.Decimal {
	return sumSigned(entries, prefixes...).Neg()
}

// resultOf reads an archived exercise's result, preferring the booked
// 13x balance over the open P&L classes.
func resultOf(entries []model.BalanceEntry) decimal.Decimal {
	if booked := sumSigned(entries, "13").Neg(); !booked.IsZero() {
		return booked
	}
	revenues := sumSigned(entries, "70", "71", "72", "73", "74", "75", "76", "77", "78", "79", "82", "84", "86", "88").Neg()
	expenses := sumSigned(entries, "60", "61", "62", "63", "64", "65", "66", "67", "68", "69", "81", "83", "85")
	return revenues.Sub(expenses)
}
