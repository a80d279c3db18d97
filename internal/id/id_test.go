package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionID_Format(t *testing.T) {
	sid := NewSessionID("2025")
	assert.Regexp(t, `^AUDIT-2025-[0-9a-f]{8}$`, sid)
	assert.True(t, IsSessionID(sid))
}

func TestNewSessionID_Unique(t *testing.T) {
	a := NewSessionID("2025")
	b := NewSessionID("2025")
	assert.NotEqual(t, a, b)
}

func TestNewArchiveID_Format(t *testing.T) {
	aid := NewArchiveID("2024")
	assert.Regexp(t, `^ARCH-2024-[0-9a-f]{8}$`, aid)
	assert.False(t, IsSessionID(aid))
}

func TestFiscalYear(t *testing.T) {
	year, err := FiscalYear("AUDIT-2025-deadbeef")
	require.NoError(t, err)
	assert.Equal(t, "2025", year)

	year, err = FiscalYear("ARCH-2023-cafebabe")
	require.NoError(t, err)
	assert.Equal(t, "2023", year)
}

func TestFiscalYear_Invalid(t *testing.T) {
	_, err := FiscalYear("2025-001")
	assert.Error(t, err)

	_, err = FiscalYear("ENTRY-2025-0001")
	assert.Error(t, err)
}
