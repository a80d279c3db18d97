package plan

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

const (
	numFields = 6
	colNumber = 0
	colLabel  = 1
	colClass  = 2
	colNature = 3
	colSide   = 4
	colUsage  = 5
)

// ReadAccounts reads a chart-of-accounts CSV.
func ReadAccounts(r io.Reader) ([]Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chart CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes a chart-of-accounts CSV.
func WriteAccounts(w io.Writer, accounts []Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"numero", "intitule", "classe", "nature", "sens", "utilisation"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(a Account) []string {
	row := make([]string, numFields)
	row[colNumber] = a.Number
	row[colLabel] = a.Label
	row[colClass] = strconv.Itoa(a.Class)
	row[colNature] = string(a.Nature)
	row[colSide] = string(a.Side)
	row[colUsage] = string(a.Usage)
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (Account, error) {
	if len(record) != numFields {
		return Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	class, err := strconv.Atoi(record[colClass])
	if err != nil {
		return Account{}, fmt.Errorf("parsing classe %q: %w", record[colClass], err)
	}

	return Account{
		Number: record[colNumber],
		Label:  record[colLabel],
		Class:  class,
		Nature: Nature(record[colNature]),
		Side:   Side(record[colSide]),
		Usage:  Usage(record[colUsage]),
	}, nil
}
