package balance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxpilot-dev/taxpilot/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNormalize_TrimsAndDropsEmpty(t *testing.T) {
	entries := Normalize([]model.BalanceEntry{
		{Account: " 411000 ", Label: " Clients ", DebitClosing: dec("100")},
		{Account: "", Label: ""},
	})
	require.Len(t, entries, 1)
	assert.Equal(t, "411000", entries[0].Account)
	assert.Equal(t, "Clients", entries[0].Label)
}

func TestNormalize_FoldsNegativeAmounts(t *testing.T) {
	entries := Normalize([]model.BalanceEntry{
		{Account: "411000", DebitClosing: dec("-250")},
	})
	require.Len(t, entries, 1)
	assert.True(t, entries[0].DebitClosing.IsZero())
	assert.Equal(t, "250", entries[0].CreditClosing.String())
}

func TestNormalize_DerivesClosingFromTurnover(t *testing.T) {
	entries := Normalize([]model.BalanceEntry{
		{Account: "601000", DebitTurnover: dec("900"), CreditTurnover: dec("100")},
		{Account: "701000", DebitTurnover: dec("50"), CreditTurnover: dec("750")},
	})
	require.Len(t, entries, 2)
	assert.Equal(t, "800", entries[0].DebitClosing.String())
	assert.True(t, entries[0].CreditClosing.IsZero())
	assert.Equal(t, "700", entries[1].CreditClosing.String())
	assert.True(t, entries[1].DebitClosing.IsZero())
}

func TestNormalize_KeepsExplicitClosing(t *testing.T) {
	entries := Normalize([]model.BalanceEntry{
		{Account: "521000", DebitTurnover: dec("5000"), CreditTurnover: dec("4000"), DebitClosing: dec("1000")},
	})
	require.Len(t, entries, 1)
	assert.Equal(t, "1000", entries[0].DebitClosing.String())
}
