package mapping

import (
	"fmt"
	"strings"
)

// Sector selects which mapping table and rule subset apply.
type Sector string

const (
	SectorGeneral      Sector = "SN"
	SectorSmallEntity  Sector = "SMT"
	SectorBank         Sector = "BANQUE"
	SectorInsurance    Sector = "ASSURANCE"
	SectorMicrofinance Sector = "MICROFINANCE"
	SectorNonProfit    Sector = "EBNL"
)

// Sectors lists all supported sectors in a stable order.
var Sectors = []Sector{
	SectorGeneral,
	SectorSmallEntity,
	SectorBank,
	SectorInsurance,
	SectorMicrofinance,
	SectorNonProfit,
}

// Section partitions a table into statement sides.
type Section string

const (
	SectionAssets      Section = "actif"
	SectionLiabilities Section = "passif"
	SectionExpenses    Section = "charges"
	SectionRevenues    Section = "produits"
	SectionOffBalance  Section = "hors_bilan"
)

// CreditPositive reports whether the section's lines read credit
// balances as positive amounts.
func (s Section) CreditPositive() bool {
	return s == SectionLiabilities || s == SectionRevenues
}

// LineUnclassified is the reserved bucket for accounts no line claims.
const LineUnclassified = "NON_AFFECTE"

// Line maps one statement line to its account prefixes. Contra prefixes
// net against the line's gross value (accumulated depreciation against
// gross fixed assets, allowances against receivables).
type Line struct {
	Code     string
	Label    string
	Accounts []string
	Contra   []string
}

// SectionBlock is one section of a table, in statement order.
type SectionBlock struct {
	Section Section
	Lines   []Line
}

// ConfigurationError reports an unusable mapping table. It is fatal:
// no audit can run against a table that fails validation.
type ConfigurationError struct {
	Sector Sector
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("mapping %s: %s", e.Sector, e.Reason)
}

// Match is the outcome of classifying one account against a table.
type Match struct {
	LineCode string
	Section  Section
	Prefix   string
	Contra   bool
}

// Table is one sector's mapping, immutable after NewTable.
type Table struct {
	Sector   Sector
	Sections []SectionBlock

	index     map[string]Match
	maxPrefix int
}

// NewTable builds and validates a table. A prefix claimed by two
// distinct lines (or by a line's account set and another's contra set)
// would make longest-prefix classification ambiguous, so it is rejected
// here rather than masked at runtime.
func NewTable(sector Sector, sections []SectionBlock) (*Table, error) {
	t := &Table{
		Sector:   sector,
		Sections: sections,
		index:    make(map[string]Match),
	}

	empty := true
	for _, block := range sections {
		for _, line := range block.Lines {
			empty = false
			for _, p := range line.Accounts {
				if err := t.addPrefix(p, Match{LineCode: line.Code, Section: block.Section, Prefix: p}); err != nil {
					return nil, err
				}
			}
			for _, p := range line.Contra {
				if err := t.addPrefix(p, Match{LineCode: line.Code, Section: block.Section, Prefix: p, Contra: true}); err != nil {
					return nil, err
				}
			}
		}
	}
	if empty {
		return nil, &ConfigurationError{Sector: sector, Reason: "empty table"}
	}
	return t, nil
}

func (t *Table) addPrefix(prefix string, m Match) error {
	if prefix == "" {
		return &ConfigurationError{Sector: t.Sector, Reason: fmt.Sprintf("line %s: empty prefix", m.LineCode)}
	}
	if prev, ok := t.index[prefix]; ok {
		return &ConfigurationError{
			Sector: t.Sector,
			Reason: fmt.Sprintf("prefix %q claimed by both %s and %s", prefix, prev.LineCode, m.LineCode),
		}
	}
	t.index[prefix] = m
	if len(prefix) > t.maxPrefix {
		t.maxPrefix = len(prefix)
	}
	return nil
}

// Classify returns the match for the longest prefix of account claimed
// by any line. The second return is false when no line claims it.
func (t *Table) Classify(account string) (Match, bool) {
	n := len(account)
	if n > t.maxPrefix {
		n = t.maxPrefix
	}
	for l := n; l > 0; l-- {
		if m, ok := t.index[account[:l]]; ok {
			return m, true
		}
	}
	return Match{}, false
}

// Section returns the block for a section, or nil.
func (t *Table) Section(s Section) *SectionBlock {
	for i := range t.Sections {
		if t.Sections[i].Section == s {
			return &t.Sections[i]
		}
	}
	return nil
}

// LineLabel returns the display label of a line code, or the code
// itself when unknown.
func (t *Table) LineLabel(code string) string {
	for _, block := range t.Sections {
		for _, line := range block.Lines {
			if line.Code == code {
				return line.Label
			}
		}
	}
	return code
}

// CoveredPrefixes returns every prefix the table claims, for coverage
// controls.
func (t *Table) CoveredPrefixes() []string {
	out := make([]string, 0, len(t.index))
	for p := range t.index {
		out = append(out, p)
	}
	return out
}

// Registry resolves sectors to validated tables. Read-only after
// construction; safe to share across concurrent audit runs.
type Registry struct {
	tables map[Sector]*Table
}

// NewRegistry validates the given tables into a registry.
func NewRegistry(tables ...*Table) *Registry {
	r := &Registry{tables: make(map[Sector]*Table, len(tables))}
	for _, t := range tables {
		r.tables[t.Sector] = t
	}
	return r
}

// BuiltinRegistry returns a registry holding the six built-in sector
// tables.
func BuiltinRegistry() (*Registry, error) {
	var tables []*Table
	for _, build := range []func() (*Table, error){
		GeneralTable,
		SmallEntityTable,
		BankTable,
		InsuranceTable,
		MicrofinanceTable,
		NonProfitTable,
	} {
		t, err := build()
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return NewRegistry(tables...), nil
}

// Resolve returns the table for a sector.
func (r *Registry) Resolve(sector Sector) (*Table, error) {
	key := Sector(strings.ToUpper(strings.TrimSpace(string(sector))))
	t, ok := r.tables[key]
	if !ok {
		return nil, &ConfigurationError{Sector: sector, Reason: "unknown sector"}
	}
	return t, nil
}
