package balance

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("standard"))
	assert.NotNil(t, r.Get("COMPACT"))
	assert.Nil(t, r.Get("unknown"))
}

func TestRegister_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&StandardParser{})
	assert.Panics(t, func() { r.Register(&StandardParser{}) })
}

func TestStandardParser(t *testing.T) {
	p := &StandardParser{}
	entries, err := p.Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "101000", entries[0].Account)
}

func TestCompactParser(t *testing.T) {
	in := "compte;intitule;debit;credit\n411000;Clients;1500,50;0\n401000;Fournisseurs;0;2300\n"
	p := &CompactParser{}
	entries, err := p.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "1500.5", entries[0].DebitClosing.String())
	assert.Equal(t, "2300", entries[1].CreditClosing.String())
	assert.True(t, entries[0].DebitTurnover.IsZero())
}

func TestScanAndMarkProcessed(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(ws, "import"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(ws, "import", "balance-2025.csv"), []byte(sampleCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(ws, "import", "notes.txt"), []byte("x"), 0o644))

	files, err := Scan(ws)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "balance-2025.csv", files[0].Name)

	require.NoError(t, MarkProcessed(ws, "balance-2025.csv"))

	files, err = Scan(ws)
	require.NoError(t, err)
	assert.Empty(t, files)

	_, err = os.Stat(filepath.Join(ws, "import", "processed", "balance-2025.csv"))
	assert.NoError(t, err)
}

func TestScan_NoImportDir(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, files)
}
