package balance

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/taxpilot-dev/taxpilot/internal/model"
)

// StandardParser reads the six-column export most accounting packages
// produce: compte;intitule;debit;credit;solde_debit;solde_credit.
type StandardParser struct{}

// Format returns the parser's registry key.
func (p *StandardParser) Format() string { return "standard" }

// Parse reads and normalizes a six-column balance file.
func (p *StandardParser) Parse(r io.Reader) ([]model.BalanceEntry, error) {
	entries, err := ReadEntries(r)
	if err != nil {
		return nil, err
	}
	return Normalize(entries), nil
}

// CompactParser reads the four-column variant carrying closing balances
// only: compte;intitule;debit;credit. Turnover columns stay zero.
type CompactParser struct{}

// Format returns the parser's registry key.
func (p *CompactParser) Format() string { return "compact" }

// Parse reads and normalizes a four-column balance file.
func (p *CompactParser) Parse(r io.Reader) ([]model.BalanceEntry, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = 4

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading compact balance CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []model.BalanceEntry
	for _, rec := range records[1:] {
		entries = append(entries, model.BalanceEntry{
			Account:       rec[0],
			Label:         rec[1],
			DebitClosing:  coerceAmount(rec[2]),
			CreditClosing: coerceAmount(rec[3]),
		})
	}
	return Normalize(entries), nil
}
