package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("SARL Exemple", "SMT", "2025")
	cfg.Store.Path = "custom/sessions.db"

	path := filepath.Join(t.TempDir(), "taxpilot.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Entity.Name, got.Entity.Name)
	assert.Equal(t, cfg.Entity.Sector, got.Entity.Sector)
	assert.Equal(t, cfg.Fiscal.Year, got.Fiscal.Year)
	assert.Equal(t, cfg.Thresholds.EquilibriumTolerance, got.Thresholds.EquilibriumTolerance)
	assert.Equal(t, cfg.Thresholds.MinBalanceLines, got.Thresholds.MinBalanceLines)
	assert.Equal(t, "custom/sessions.db", got.Store.Path)
	assert.Equal(t, cfg.Git.AutoCommit, got.Git.AutoCommit)
	assert.Equal(t, cfg.Git.AuthorName, got.Git.AuthorName)
	assert.Equal(t, cfg.Git.AuthorEmail, got.Git.AuthorEmail)
}

func TestDefaults(t *testing.T) {
	cfg := Default("Ma Societe", "SN", "2025")

	assert.Equal(t, "Ma Societe", cfg.Entity.Name)
	assert.Equal(t, "SN", cfg.Entity.Sector)
	assert.Equal(t, "2025", cfg.Fiscal.Year)
	assert.Equal(t, "0.01", cfg.Thresholds.EquilibriumTolerance)
	assert.Equal(t, 10, cfg.Thresholds.MinBalanceLines)
	assert.Equal(t, "0.80", cfg.Thresholds.AccountFormatRatio)
	assert.Equal(t, "sessions.db", cfg.Store.Path)
	assert.True(t, cfg.Git.AutoCommit)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("SARL Exemple", "SMT", "2025")
	path := filepath.Join(t.TempDir(), "taxpilot.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: SARL Exemple")
	assert.Contains(t, contents, "sector: SMT")
	assert.Contains(t, contents, "year: \"2025\"")
	assert.Contains(t, contents, "equilibrium_tolerance: \"0.01\"")
	assert.Contains(t, contents, "auto_commit: true")
}
