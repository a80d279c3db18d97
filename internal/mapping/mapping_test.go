package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableRejectsDuplicatePrefix(t *testing.T) {
	_, err := NewTable(SectorGeneral, []SectionBlock{
		{Section: SectionAssets, Lines: []Line{
			{Code: "X_1", Label: "Une", Accounts: []string{"41"}},
		}},
		{Section: SectionLiabilities, Lines: []Line{
			{Code: "Y_1", Label: "Deux", Accounts: []string{"41"}},
		}},
	})
	require.Error(t, err)
	var cfg *ConfigurationError
	require.ErrorAs(t, err, &cfg)
	assert.Contains(t, cfg.Reason, `"41"`)
	assert.Contains(t, cfg.Reason, "X_1")
	assert.Contains(t, cfg.Reason, "Y_1")
}

func TestNewTableRejectsContraCollision(t *testing.T) {
	_, err := NewTable(SectorGeneral, []SectionBlock{
		{Section: SectionAssets, Lines: []Line{
			{Code: "X_1", Label: "Une", Accounts: []string{"41"}, Contra: []string{"491"}},
			{Code: "X_2", Label: "Deux", Accounts: []string{"491"}},
		}},
	})
	var cfg *ConfigurationError
	require.ErrorAs(t, err, &cfg)
}

func TestNewTableRejectsEmpty(t *testing.T) {
	_, err := NewTable(SectorGeneral, nil)
	var cfg *ConfigurationError
	require.ErrorAs(t, err, &cfg)
	assert.Equal(t, "empty table", cfg.Reason)
}

func TestNewTableRejectsEmptyPrefix(t *testing.T) {
	_, err := NewTable(SectorGeneral, []SectionBlock{
		{Section: SectionAssets, Lines: []Line{
			{Code: "X_1", Label: "Une", Accounts: []string{""}},
		}},
	})
	var cfg *ConfigurationError
	require.ErrorAs(t, err, &cfg)
}

func TestClassifyLongestPrefixWins(t *testing.T) {
	table, err := NewTable(SectorGeneral, []SectionBlock{
		{Section: SectionAssets, Lines: []Line{
			{Code: "SHORT", Label: "Autres tiers", Accounts: []string{"44"}},
			{Code: "LONG", Label: "Etat, TVA", Accounts: []string{"445"}},
		}},
	})
	require.NoError(t, err)

	m, ok := table.Classify("445660")
	require.True(t, ok)
	assert.Equal(t, "LONG", m.LineCode)
	assert.Equal(t, "445", m.Prefix)

	m, ok = table.Classify("441000")
	require.True(t, ok)
	assert.Equal(t, "SHORT", m.LineCode)

	_, ok = table.Classify("512000")
	assert.False(t, ok)
}

func TestClassifyContraFlag(t *testing.T) {
	table, err := NewTable(SectorGeneral, []SectionBlock{
		{Section: SectionAssets, Lines: []Line{
			{Code: "AC_2", Label: "Clients", Accounts: []string{"41"}, Contra: []string{"491"}},
		}},
	})
	require.NoError(t, err)

	m, ok := table.Classify("491100")
	require.True(t, ok)
	assert.True(t, m.Contra)
	assert.Equal(t, "AC_2", m.LineCode)

	m, ok = table.Classify("411000")
	require.True(t, ok)
	assert.False(t, m.Contra)
}

func TestBuiltinRegistryAllSectorsValid(t *testing.T) {
	reg, err := BuiltinRegistry()
	require.NoError(t, err)
	for _, s := range Sectors {
		table, err := reg.Resolve(s)
		require.NoError(t, err, "sector %s", s)
		assert.Equal(t, s, table.Sector)
		assert.NotEmpty(t, table.CoveredPrefixes())
	}
}

func TestResolveNormalizesAndRejectsUnknown(t *testing.T) {
	reg, err := BuiltinRegistry()
	require.NoError(t, err)

	table, err := reg.Resolve(Sector(" smt "))
	require.NoError(t, err)
	assert.Equal(t, SectorSmallEntity, table.Sector)

	_, err = reg.Resolve(Sector("HOLDING"))
	var cfg *ConfigurationError
	require.ErrorAs(t, err, &cfg)
}

func TestSmallEntityClassification(t *testing.T) {
	table, err := SmallEntityTable()
	require.NoError(t, err)

	m, ok := table.Classify("101000")
	require.True(t, ok)
	assert.Equal(t, "CP_1", m.LineCode)
	assert.Equal(t, SectionLiabilities, m.Section)

	m, ok = table.Classify("571000")
	require.True(t, ok)
	assert.Equal(t, "TA_2", m.LineCode)
	assert.Equal(t, SectionAssets, m.Section)
}

func TestGeneralClassification(t *testing.T) {
	table, err := GeneralTable()
	require.NoError(t, err)

	cases := []struct {
		account string
		line    string
		section Section
	}{
		{"411000", "BJ", SectionAssets},
		{"601000", "RA", SectionExpenses},
		{"701000", "TA", SectionRevenues},
	}
	for _, tc := range cases {
		m, ok := table.Classify(tc.account)
		require.True(t, ok, "account %s", tc.account)
		assert.Equal(t, tc.line, m.LineCode, "account %s", tc.account)
		assert.Equal(t, tc.section, m.Section, "account %s", tc.account)
	}
}

func TestSectionCreditPositive(t *testing.T) {
	assert.False(t, SectionAssets.CreditPositive())
	assert.True(t, SectionLiabilities.CreditPositive())
	assert.False(t, SectionExpenses.CreditPositive())
	assert.True(t, SectionRevenues.CreditPositive())
	assert.False(t, SectionOffBalance.CreditPositive())
}

func TestLineLabel(t *testing.T) {
	table, err := SmallEntityTable()
	require.NoError(t, err)
	assert.Equal(t, "Caisse", table.LineLabel("TA_2"))
	assert.Equal(t, "ZZ_9", table.LineLabel("ZZ_9"))
}
