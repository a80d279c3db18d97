package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BalanceEntry is a single row in a trial balance: the turnover and
// closing amounts of one account for the period.
type BalanceEntry struct {
	Account        string
	Label          string
	DebitTurnover  decimal.Decimal
	CreditTurnover decimal.Decimal
	DebitClosing   decimal.Decimal
	CreditClosing  decimal.Decimal
}

// SignedClosing returns the closing balance as a single signed amount,
// debit-positive.
func (e BalanceEntry) SignedClosing() decimal.Decimal {
	return e.DebitClosing.Sub(e.CreditClosing)
}

// CreditBalance returns the closing balance credit-positive.
func (e BalanceEntry) CreditBalance() decimal.Decimal {
	return e.CreditClosing.Sub(e.DebitClosing)
}

// Class returns the account class digit (1..9), or 0 when the account
// does not start with a digit.
func (e BalanceEntry) Class() int {
	if len(e.Account) == 0 {
		return 0
	}
	c := e.Account[0]
	if c < '1' || c > '9' {
		return 0
	}
	return int(c - '0')
}

// HasPrefix reports whether the account number starts with prefix.
func (e BalanceEntry) HasPrefix(prefix string) bool {
	return strings.HasPrefix(e.Account, prefix)
}

// FilterPrefix returns the entries whose account starts with prefix.
func FilterPrefix(entries []BalanceEntry, prefix string) []BalanceEntry {
	var out []BalanceEntry
	for _, e := range entries {
		if e.HasPrefix(prefix) {
			out = append(out, e)
		}
	}
	return out
}

// SumSigned returns the sum of signed closing balances (debit-positive)
// over the entries whose account starts with prefix.
func SumSigned(entries []BalanceEntry, prefix string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.HasPrefix(prefix) {
			total = total.Add(e.SignedClosing())
		}
	}
	return total
}

// SumCredit returns the sum of credit-positive closing balances over the
// entries whose account starts with prefix.
func SumCredit(entries []BalanceEntry, prefix string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.HasPrefix(prefix) {
			total = total.Add(e.CreditBalance())
		}
	}
	return total
}

// SumAbs returns the sum of absolute closing balances over the entries
// whose account starts with any of the prefixes. Each entry counts once
// even when several prefixes match it.
func SumAbs(entries []BalanceEntry, prefixes ...string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		for _, p := range prefixes {
			if e.HasPrefix(p) {
				total = total.Add(e.SignedClosing().Abs())
				break
			}
		}
	}
	return total
}

// Totals returns the grand totals of closing debits and credits.
func Totals(entries []BalanceEntry) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, e := range entries {
		debit = debit.Add(e.DebitClosing)
		credit = credit.Add(e.CreditClosing)
	}
	return debit, credit
}
