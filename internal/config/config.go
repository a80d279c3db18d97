package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level taxpilot.yaml configuration.
type Config struct {
	Entity     EntityConfig     `yaml:"entity"`
	Fiscal     FiscalConfig     `yaml:"fiscal"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Store      StoreConfig      `yaml:"store"`
	Git        GitConfig        `yaml:"git"`
}

// EntityConfig identifies the audited entity and selects the sector
// mapping table and rule subset.
type EntityConfig struct {
	Name   string `yaml:"name"`
	Sector string `yaml:"sector"` // SN, SMT, BANQUE, ASSURANCE, MICROFINANCE, EBNL
}

// FiscalConfig defines the audited fiscal year.
type FiscalConfig struct {
	Year string `yaml:"year"`
}

// ThresholdsConfig carries the numeric thresholds the controls read.
// Legal-rule thresholds are configuration, not engine behavior.
type ThresholdsConfig struct {
	EquilibriumTolerance string `yaml:"equilibrium_tolerance"` // decimal string, e.g. "0.01"
	MinBalanceLines      int    `yaml:"min_balance_lines"`
	AccountFormatRatio   string `yaml:"account_format_ratio"` // share of well-formed accounts, e.g. "0.80"
}

// StoreConfig locates the session database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// GitConfig controls git integration for archived exports.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a taxpilot.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(entityName, sector, fiscalYear string) *Config {
	return &Config{
		Entity: EntityConfig{
			Name:   entityName,
			Sector: sector,
		},
		Fiscal: FiscalConfig{
			Year: fiscalYear,
		},
		Thresholds: ThresholdsConfig{
			EquilibriumTolerance: "0.01",
			MinBalanceLines:      10,
			AccountFormatRatio:   "0.80",
		},
		Store: StoreConfig{
			Path: "sessions.db",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "TaxPilot",
			AuthorEmail: "audit@taxpilot.dev",
		},
	}
}
