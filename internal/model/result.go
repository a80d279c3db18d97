package model

import "github.com/shopspring/decimal"

// Severity grades how serious an anomaly is. The order matters: a
// blocking anomaly gates downstream statement generation.
type Severity string

const (
	SeverityBlocking Severity = "BLOQUANT"
	SeverityMajor    Severity = "MAJEUR"
	SeverityMinor    Severity = "MINEUR"
	SeverityInfo     Severity = "INFO"
	SeverityOK       Severity = "OK"
)

// Rank returns the sort rank of a severity, most severe first (0).
func (s Severity) Rank() int {
	switch s {
	case SeverityBlocking:
		return 0
	case SeverityMajor:
		return 1
	case SeverityMinor:
		return 2
	case SeverityInfo:
		return 3
	default:
		return 4
	}
}

// ControlStatus is the outcome of one control evaluation.
type ControlStatus string

const (
	StatusOK            ControlStatus = "OK"
	StatusAnomaly       ControlStatus = "ANOMALIE"
	StatusNotApplicable ControlStatus = "NON_APPLICABLE"
)

// Level groups controls by concern, executed in ascending order.
type Level int

// The nine control levels.
const (
	LevelStructural     Level = 1
	LevelFundamental    Level = 2
	LevelConformity     Level = 3
	LevelSense          Level = 4
	LevelInterAccount   Level = 5
	LevelYearOverYear   Level = 6
	LevelStatements     Level = 7
	LevelFiscal         Level = 8
	LevelArchives       Level = 9
	LevelMin                  = LevelStructural
	LevelMax                  = LevelArchives
)

// LevelNames maps each level to its display name.
var LevelNames = map[Level]string{
	LevelStructural:   "Controles structurels",
	LevelFundamental:  "Controles fondamentaux",
	LevelConformity:   "Conformite OHADA",
	LevelSense:        "Sens et montants",
	LevelInterAccount: "Inter-comptes",
	LevelYearOverYear: "Comparaison N/N-1",
	LevelStatements:   "Etats financiers",
	LevelFiscal:       "Controles fiscaux",
	LevelArchives:     "Archives multi-exercices",
}

// Details carries the supporting facts behind a control outcome.
type Details struct {
	Accounts     []string                   `json:"accounts,omitempty"`
	Amounts      map[string]decimal.Decimal `json:"amounts,omitempty"`
	Gap          decimal.Decimal            `json:"gap,omitempty"`
	Expected     string                     `json:"expected,omitempty"`
	Observed     string                     `json:"observed,omitempty"`
	Description  string                     `json:"description,omitempty"`
	FiscalImpact string                     `json:"fiscal_impact,omitempty"`
}

// ControlResult is the persisted outcome of one control.
type ControlResult struct {
	Ref               string            `json:"ref"`
	Name              string            `json:"name"`
	Level             Level             `json:"level"`
	Status            ControlStatus     `json:"status"`
	Severity          Severity          `json:"severity"`
	Message           string            `json:"message"`
	Details           *Details          `json:"details,omitempty"`
	Suggestion        string            `json:"suggestion,omitempty"`
	RegulatoryRef     string            `json:"regulatory_ref,omitempty"`
	CorrectiveEntries []CorrectiveEntry `json:"corrective_entries,omitempty"`
}

// IsBlocking reports whether the result is a blocking anomaly.
func (r ControlResult) IsBlocking() bool {
	return r.Status == StatusAnomaly && r.Severity == SeverityBlocking
}
