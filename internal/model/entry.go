package model

import "github.com/shopspring/decimal"

// EntrySide marks a corrective line as debit or credit.
type EntrySide string

const (
	SideDebit  EntrySide = "D"
	SideCredit EntrySide = "C"
)

// CorrectiveLine is one side of a suggested adjustment entry.
type CorrectiveLine struct {
	Side    EntrySide       `json:"side"`
	Account string          `json:"account"`
	Label   string          `json:"label"`
	Amount  decimal.Decimal `json:"amount"`
}

// CorrectiveEntry is a journal entry suggested by a control to resolve
// the anomaly it reported. Suggestions are advisory; nothing posts them.
type CorrectiveEntry struct {
	Journal string           `json:"journal"`
	Date    string           `json:"date"` // "2006-01-02"
	Lines   []CorrectiveLine `json:"lines"`
	Comment string           `json:"comment,omitempty"`
}

// Balanced reports whether the entry's debits equal its credits.
func (e CorrectiveEntry) Balanced() bool {
	debit, credit := decimal.Zero, decimal.Zero
	for _, l := range e.Lines {
		switch l.Side {
		case SideDebit:
			debit = debit.Add(l.Amount)
		case SideCredit:
			credit = credit.Add(l.Amount)
		}
	}
	return debit.Equal(credit)
}
