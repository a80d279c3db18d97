package balance

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/taxpilot-dev/taxpilot/internal/model"
)

// Normalize coerces raw balance rows into canonical form:
//   - account and label whitespace trimmed,
//   - rows with neither account nor amounts dropped,
//   - negative amounts folded onto the opposite column so every numeric
//     field is non-negative,
//   - closing balances derived from turnover when both closing columns
//     are zero but turnover is not.
func Normalize(entries []model.BalanceEntry) []model.BalanceEntry {
	out := make([]model.BalanceEntry, 0, len(entries))
	for _, e := range entries {
		e.Account = strings.TrimSpace(e.Account)
		e.Label = strings.TrimSpace(e.Label)
		if e.Account == "" && allZero(e) {
			continue
		}

		e.DebitTurnover, e.CreditTurnover = foldNegative(e.DebitTurnover, e.CreditTurnover)
		e.DebitClosing, e.CreditClosing = foldNegative(e.DebitClosing, e.CreditClosing)

		if e.DebitClosing.IsZero() && e.CreditClosing.IsZero() &&
			!(e.DebitTurnover.IsZero() && e.CreditTurnover.IsZero()) {
			net := e.DebitTurnover.Sub(e.CreditTurnover)
			if net.IsNegative() {
				e.CreditClosing = net.Neg()
			} else {
				e.DebitClosing = net
			}
		}

		out = append(out, e)
	}
	return out
}

func allZero(e model.BalanceEntry) bool {
	return e.DebitTurnover.IsZero() && e.CreditTurnover.IsZero() &&
		e.DebitClosing.IsZero() && e.CreditClosing.IsZero()
}

// foldNegative moves a negative amount onto the opposite column.
// A debit of -100 is a credit of 100.
func foldNegative(debit, credit decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if debit.IsNegative() {
		credit = credit.Add(debit.Neg())
		debit = decimal.Zero
	}
	if credit.IsNegative() {
		debit = debit.Add(credit.Neg())
		credit = decimal.Zero
	}
	return debit, credit
}
