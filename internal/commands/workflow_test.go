package commands_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const balancedCSV = `compte;intitule;debit;credit;solde_debit;solde_credit
101000;Capital social;0;1000000;0;1000000
211000;Terrains;400000;0;400000;0
411000;Clients;250000;0;250000;0
401000;Fournisseurs;0;150000;0;150000
521000;Banque;300000;0;300000;0
571000;Caisse;200000;0;200000;0
601000;Achats de marchandises;500000;0;500000;0
661000;Remunerations;300000;0;300000;0
701000;Ventes de marchandises;0;800000;0;800000
131000;Resultat net;0;0;0;0
`

var sessionIDPattern = regexp.MustCompile(`AUDIT-\d{4}-[0-9a-f]{8}`)

func initWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	out, err := runTaxpilot(t, dir, "init", dir, "--name", "SARL Exemple", "--sector", "SN", "--year", "2025")
	require.NoError(t, err, out)
	return dir
}

func TestAudit_FromImportDir(t *testing.T) {
	dir := initWorkspace(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "balance-2025.csv"), []byte(balancedCSV), 0o644))

	out, err := runTaxpilot(t, dir, "audit")
	require.NoError(t, err, out)

	assert.Contains(t, out, "Niveau 1")
	assert.Contains(t, out, "Niveau 9")
	assert.Contains(t, out, "Score global:")
	assert.Contains(t, out, "Anomalies bloquantes restantes: 0")

	// Balance moved to processed.
	_, err = os.Stat(filepath.Join(dir, "import", "processed", "balance-2025.csv"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "import", "balance-2025.csv"))
	assert.True(t, os.IsNotExist(err))

	// Audit log recorded the run.
	data, err := os.ReadFile(filepath.Join(dir, "logs", "audit-log.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "audit")
}

func TestAudit_EmptyImportDir(t *testing.T) {
	dir := initWorkspace(t)
	out, err := runTaxpilot(t, dir, "audit")
	require.Error(t, err)
	assert.Contains(t, out, "aucune balance")
}

func TestSessions_ListsCompletedRuns(t *testing.T) {
	dir := initWorkspace(t)
	balancePath := filepath.Join(dir, "balance.csv")
	require.NoError(t, os.WriteFile(balancePath, []byte(balancedCSV), 0o644))

	out, err := runTaxpilot(t, dir, "audit", balancePath)
	require.NoError(t, err, out)

	list, err := runTaxpilot(t, dir, "sessions")
	require.NoError(t, err, list)
	assert.Regexp(t, sessionIDPattern, list)
	assert.Contains(t, list, "exercice 2025")
}

func TestExportAndArchive(t *testing.T) {
	dir := initWorkspace(t)
	balancePath := filepath.Join(dir, "balance.csv")
	require.NoError(t, os.WriteFile(balancePath, []byte(balancedCSV), 0o644))

	out, err := runTaxpilot(t, dir, "audit", balancePath)
	require.NoError(t, err, out)
	sessionID := sessionIDPattern.FindString(out)
	require.NotEmpty(t, sessionID)

	out, err = runTaxpilot(t, dir, "export", sessionID)
	require.NoError(t, err, out)
	_, err = os.Stat(filepath.Join(dir, "exports", sessionID+".csv"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "exports", sessionID+".html"))
	require.NoError(t, err)

	out, err = runTaxpilot(t, dir, "archive", sessionID, "--balance", balancePath)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Archive ARCH-2025-")
}

func TestArchive_UnknownSession(t *testing.T) {
	dir := initWorkspace(t)
	balancePath := filepath.Join(dir, "balance.csv")
	require.NoError(t, os.WriteFile(balancePath, []byte(balancedCSV), 0o644))

	out, err := runTaxpilot(t, dir, "archive", "AUDIT-2025-ffffffff", "--balance", balancePath)
	require.Error(t, err)
	assert.Contains(t, out, "AUDIT-2025-ffffffff")
}
