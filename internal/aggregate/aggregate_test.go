package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxpilot-dev/taxpilot/internal/mapping"
	"github.com/taxpilot-dev/taxpilot/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func entry(account, label, debit, credit string) model.BalanceEntry {
	return model.BalanceEntry{
		Account:       account,
		Label:         label,
		DebitClosing:  dec(debit),
		CreditClosing: dec(credit),
	}
}

func smtAggregator(t *testing.T) *Aggregator {
	t.Helper()
	table, err := mapping.SmallEntityTable()
	require.NoError(t, err)
	return New(table, dec("0.01"))
}

func TestRunRejectsEmptyBalance(t *testing.T) {
	a := smtAggregator(t)
	_, err := a.Run(nil, nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "entries", verr.Field)
}

func TestRunMergesDuplicateAccounts(t *testing.T) {
	// Duplicate rows are a control-level anomaly, not an aggregation
	// failure: both rows still contribute to their line.
	a := smtAggregator(t)
	r, err := a.Run([]model.BalanceEntry{
		entry("571000", "Caisse", "100", "0"),
		entry("571000", "Caisse", "50", "0"),
		entry("101000", "Capital", "0", "150"),
	}, nil)
	require.NoError(t, err)
	assert.True(t, r.Line("TA_2").Value.Equal(dec("150")))
}

func TestRunClassifiesAndOrients(t *testing.T) {
	a := smtAggregator(t)
	r, err := a.Run([]model.BalanceEntry{
		entry("101000", "Capital social", "0", "1000000"),
		entry("571000", "Caisse", "1000000", "0"),
	}, nil)
	require.NoError(t, err)

	capital := r.Line("CP_1")
	require.NotNil(t, capital)
	assert.Equal(t, mapping.SectionLiabilities, capital.Section)
	assert.True(t, capital.Value.Equal(dec("1000000")), "got %s", capital.Value)

	cash := r.Line("TA_2")
	require.NotNil(t, cash)
	assert.Equal(t, mapping.SectionAssets, cash.Section)
	assert.True(t, cash.Value.Equal(dec("1000000")), "got %s", cash.Value)
	assert.Equal(t, []string{"571000"}, cash.Accounts)

	assert.True(t, r.Balanced)
	assert.True(t, r.Gap.IsZero())
	assert.Empty(t, r.Unclassified)
}

func TestRunNetsContraAccounts(t *testing.T) {
	a := smtAggregator(t)
	r, err := a.Run([]model.BalanceEntry{
		entry("411000", "Clients", "500000", "0"),
		entry("491000", "Depreciations clients", "0", "80000"),
		entry("101000", "Capital", "0", "420000"),
	}, nil)
	require.NoError(t, err)

	clients := r.Line("AC_2")
	require.NotNil(t, clients)
	assert.True(t, clients.Gross.Equal(dec("500000")), "gross %s", clients.Gross)
	assert.True(t, clients.Contra.Equal(dec("80000")), "contra %s", clients.Contra)
	assert.True(t, clients.Value.Equal(dec("420000")), "net %s", clients.Value)
	assert.True(t, r.Balanced)
}

func TestRunBucketsUnclassifiedAccounts(t *testing.T) {
	table, err := mapping.NewTable(mapping.SectorGeneral, []mapping.SectionBlock{
		{Section: mapping.SectionAssets, Lines: []mapping.Line{
			{Code: "X_1", Label: "Caisse", Accounts: []string{"57"}},
		}},
	})
	require.NoError(t, err)
	a := New(table, dec("0.01"))

	r, err := a.Run([]model.BalanceEntry{
		entry("571000", "Caisse", "100", "0"),
		entry("999000", "Inconnu", "0", "100"),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"999000"}, r.Unclassified)
	require.Contains(t, r.Lines, mapping.LineUnclassified)
	assert.True(t, r.Lines[mapping.LineUnclassified].Value.Equal(dec("-100")))
	assert.Equal(t, mapping.LineUnclassified, r.Order[len(r.Order)-1])
}

func TestRunDetectsUnbalancedTotals(t *testing.T) {
	a := smtAggregator(t)
	r, err := a.Run([]model.BalanceEntry{
		entry("571000", "Caisse", "100.00", "0"),
		entry("101000", "Capital", "0", "99.50"),
	}, nil)
	require.NoError(t, err)
	assert.False(t, r.Balanced)
	assert.True(t, r.Gap.Equal(dec("0.50")), "gap %s", r.Gap)
}

func TestRunWithinTolerance(t *testing.T) {
	a := smtAggregator(t)
	r, err := a.Run([]model.BalanceEntry{
		entry("571000", "Caisse", "100.00", "0"),
		entry("101000", "Capital", "0", "99.99"),
	}, nil)
	require.NoError(t, err)
	assert.True(t, r.Balanced)
}

func TestRunPopulatesPriorValues(t *testing.T) {
	a := smtAggregator(t)
	r, err := a.Run(
		[]model.BalanceEntry{
			entry("571000", "Caisse", "150", "0"),
			entry("101000", "Capital", "0", "150"),
		},
		[]model.BalanceEntry{
			entry("571000", "Caisse", "100", "0"),
			entry("101000", "Capital", "0", "100"),
		},
	)
	require.NoError(t, err)

	cash := r.Line("TA_2")
	assert.True(t, cash.Value.Equal(dec("150")))
	assert.True(t, cash.PriorValue.Equal(dec("100")))

	capital := r.Line("CP_1")
	assert.True(t, capital.PriorValue.Equal(dec("100")))
}

func TestSectionTotalExcludesUnclassified(t *testing.T) {
	table, err := mapping.NewTable(mapping.SectorGeneral, []mapping.SectionBlock{
		{Section: mapping.SectionAssets, Lines: []mapping.Line{
			{Code: "X_1", Label: "Caisse", Accounts: []string{"57"}},
			{Code: "X_2", Label: "Banques", Accounts: []string{"52"}},
		}},
	})
	require.NoError(t, err)
	a := New(table, dec("0.01"))

	r, err := a.Run([]model.BalanceEntry{
		entry("571000", "Caisse", "100", "0"),
		entry("521000", "Banque", "40", "0"),
		entry("999000", "Inconnu", "60", "0"),
	}, nil)
	require.NoError(t, err)
	assert.True(t, r.SectionTotal(mapping.SectionAssets).Equal(dec("140")))
}
