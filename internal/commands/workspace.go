package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/taxpilot-dev/taxpilot/internal/balance"
	"github.com/taxpilot-dev/taxpilot/internal/config"
	"github.com/taxpilot-dev/taxpilot/internal/model"
	"github.com/taxpilot-dev/taxpilot/internal/plan"
	"github.com/taxpilot-dev/taxpilot/internal/rules"
	"github.com/taxpilot-dev/taxpilot/internal/store"
)

const (
	configFile = "taxpilot.yaml"
	planFile   = "plan/plan-comptable.csv"
	exportsDir = "exports"
)

// loadConfig reads taxpilot.yaml from the workspace.
func loadConfig(workspace string) (*config.Config, error) {
	cfg, err := config.Load(filepath.Join(workspace, configFile))
	if err != nil {
		return nil, fmt.Errorf("no workspace at %s (run taxpilot init first): %w", workspace, err)
	}
	return cfg, nil
}

// loadChart returns the workspace chart of accounts, falling back to the
// built-in SYSCOHADA plan when the workspace has no plan file.
func loadChart(workspace string) (*plan.Service, error) {
	path := filepath.Join(workspace, planFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return plan.NewService(plan.DefaultPlan()), nil
	}
	return plan.Load(path)
}

// openStore opens the session database configured for the workspace.
func openStore(workspace string, cfg *config.Config) (store.Store, error) {
	path := cfg.Store.Path
	if path == "" {
		path = "sessions.db"
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(workspace, path)
	}
	return store.OpenSQLite(path)
}

// thresholdsFrom parses the configured control thresholds, keeping the
// defaults for any field left empty.
func thresholdsFrom(cfg *config.Config) (rules.Thresholds, error) {
	t := rules.DefaultThresholds()
	if s := cfg.Thresholds.EquilibriumTolerance; s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return t, fmt.Errorf("invalid equilibrium_tolerance %q: %w", s, err)
		}
		t.EquilibriumTolerance = d
	}
	if n := cfg.Thresholds.MinBalanceLines; n > 0 {
		t.MinBalanceLines = n
	}
	if s := cfg.Thresholds.AccountFormatRatio; s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return t, fmt.Errorf("invalid account_format_ratio %q: %w", s, err)
		}
		t.AccountFormatRatio = d
	}
	return t, nil
}

// readBalanceFile parses and normalizes a trial balance file through
// the named parser (see balance.DefaultRegistry).
func readBalanceFile(path, format string) ([]model.BalanceEntry, error) {
	parser := balance.DefaultRegistry().Get(format)
	if parser == nil {
		return nil, fmt.Errorf("format de balance inconnu %q", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening balance %s: %w", path, err)
	}
	defer f.Close()

	entries, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading balance %s: %w", path, err)
	}
	return entries, nil
}
