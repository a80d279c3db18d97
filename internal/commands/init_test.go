package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxpilot-dev/taxpilot/internal/plan"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "taxpilot-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "taxpilot")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/taxpilot")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runTaxpilot(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	_, err := runTaxpilot(t, dir, "init", dir, "--name", "Cabinet Test")
	require.NoError(t, err)

	expectedDirs := []string{
		"plan",
		"import",
		filepath.Join("import", "processed"),
		"logs",
		"exports",
	}
	for _, d := range expectedDirs {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runTaxpilot(t, dir, "init", dir, "--name", "SARL Exemple", "--sector", "SMT", "--year", "2025")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "taxpilot.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: SARL Exemple")
	assert.Contains(t, contents, "sector: SMT")
	assert.Contains(t, contents, `year: "2025"`)
}

func TestInit_ChartOfAccounts(t *testing.T) {
	dir := t.TempDir()
	_, err := runTaxpilot(t, dir, "init", dir, "--name", "Cabinet Test")
	require.NoError(t, err)

	svc, err := plan.Load(filepath.Join(dir, "plan", "plan-comptable.csv"))
	require.NoError(t, err)
	assert.Equal(t, len(plan.DefaultPlan()), len(svc.All()))
}

func TestInit_GitRepo(t *testing.T) {
	dir := t.TempDir()
	_, err := runTaxpilot(t, dir, "init", dir, "--name", "Cabinet Test")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git should exist")

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "init: Cabinet Test")
}

func TestInit_Gitignore(t *testing.T) {
	dir := t.TempDir()
	_, err := runTaxpilot(t, dir, "init", dir, "--name", "Cabinet Test")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	contents := string(data)

	for _, pattern := range []string{"sessions.db", "import/processed/", ".env"} {
		assert.Contains(t, contents, pattern, ".gitignore should contain %s", pattern)
	}
}

func TestInit_RequiresName(t *testing.T) {
	dir := t.TempDir()
	_, err := runTaxpilot(t, dir, "init", dir)
	require.Error(t, err, "init without --name should fail")
}

func TestInit_RejectsUnknownSector(t *testing.T) {
	dir := t.TempDir()
	out, err := runTaxpilot(t, dir, "init", dir, "--name", "Cabinet Test", "--sector", "HOLDING")
	require.Error(t, err)
	assert.Contains(t, out, "HOLDING")
}
