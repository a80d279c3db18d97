package balance

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/taxpilot-dev/taxpilot/internal/model"
)

// Header is the CSV header for a trial balance file.
const Header = "compte;intitule;debit;credit;solde_debit;solde_credit"

const (
	numFields      = 6
	colAccount     = 0
	colLabel       = 1
	colDebit       = 2
	colCredit      = 3
	colDebitClose  = 4
	colCreditClose = 5
)

// ReadEntries reads all balance rows from a CSV reader.
// Amount fields that are empty or non-numeric are coerced to zero.
func ReadEntries(r io.Reader) ([]model.BalanceEntry, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading balance CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var entries []model.BalanceEntry
	for _, rec := range records[1:] {
		entries = append(entries, UnmarshalEntry(rec))
	}
	return entries, nil
}

// WriteEntries writes balance rows to a CSV writer (including header).
func WriteEntries(w io.Writer, entries []model.BalanceEntry) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ";")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalEntry converts a BalanceEntry to a CSV row.
func MarshalEntry(e model.BalanceEntry) []string {
	row := make([]string, numFields)
	row[colAccount] = e.Account
	row[colLabel] = e.Label
	row[colDebit] = e.DebitTurnover.StringFixed(2)
	row[colCredit] = e.CreditTurnover.StringFixed(2)
	row[colDebitClose] = e.DebitClosing.StringFixed(2)
	row[colCreditClose] = e.CreditClosing.StringFixed(2)
	return row
}

// UnmarshalEntry converts a CSV row to a BalanceEntry. Unparseable
// amounts become zero rather than errors; balance files in the wild are
// ragged and the structural controls report on quality afterward.
func UnmarshalEntry(record []string) model.BalanceEntry {
	return model.BalanceEntry{
		Account:        strings.TrimSpace(field(record, colAccount)),
		Label:          strings.TrimSpace(field(record, colLabel)),
		DebitTurnover:  coerceAmount(field(record, colDebit)),
		CreditTurnover: coerceAmount(field(record, colCredit)),
		DebitClosing:   coerceAmount(field(record, colDebitClose)),
		CreditClosing:  coerceAmount(field(record, colCreditClose)),
	}
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return record[i]
}

func coerceAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	// Tolerate French-style separators: "1 234 567,89".
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
