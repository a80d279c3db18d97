package balance

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxpilot-dev/taxpilot/internal/model"
)

const sampleCSV = `compte;intitule;debit;credit;solde_debit;solde_credit
101000;Capital social;0.00;1000000.00;0.00;1000000.00
571000;Caisse;1000000.00;0.00;1000000.00;0.00
`

func TestReadEntries(t *testing.T) {
	entries, err := ReadEntries(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "101000", entries[0].Account)
	assert.Equal(t, "Capital social", entries[0].Label)
	assert.Equal(t, "1000000", entries[0].CreditClosing.String())
	assert.True(t, entries[0].DebitClosing.IsZero())

	assert.Equal(t, "571000", entries[1].Account)
	assert.Equal(t, "1000000", entries[1].DebitClosing.String())
}

func TestReadEntries_Empty(t *testing.T) {
	entries, err := ReadEntries(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRoundTrip(t *testing.T) {
	entries, err := ReadEntries(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = WriteEntries(&buf, entries)
	require.NoError(t, err)

	again, err := ReadEntries(&buf)
	require.NoError(t, err)
	assert.Equal(t, entries, again)
}

func TestUnmarshalEntry_CoercesBadAmounts(t *testing.T) {
	e := UnmarshalEntry([]string{"411000", "Clients", "abc", "", "n/a", "500.00"})
	assert.Equal(t, "411000", e.Account)
	assert.True(t, e.DebitTurnover.IsZero())
	assert.True(t, e.CreditTurnover.IsZero())
	assert.True(t, e.DebitClosing.IsZero())
	assert.Equal(t, "500", e.CreditClosing.String())
}

func TestUnmarshalEntry_FrenchAmounts(t *testing.T) {
	e := UnmarshalEntry([]string{"601000", "Achats", "0", "0", "1 234 567,89", "0"})
	assert.Equal(t, "1234567.89", e.DebitClosing.String())
}

func TestMarshalEntry_FixedColumns(t *testing.T) {
	row := MarshalEntry(model.BalanceEntry{Account: "521000", Label: "Banque"})
	require.Len(t, row, 6)
	assert.Equal(t, "521000", row[0])
	assert.Equal(t, "Banque", row[1])
	assert.Equal(t, "0.00", row[4])
}
