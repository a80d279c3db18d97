package plan

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_LongestPrefixWins(t *testing.T) {
	svc := NewService(DefaultPlan())

	a, ok := svc.Resolve("411000")
	require.True(t, ok)
	assert.Equal(t, "411", a.Number)

	a, ok = svc.Resolve("419500")
	require.True(t, ok)
	assert.Equal(t, "419", a.Number)
	assert.Equal(t, SideCredit, a.Side)

	a, ok = svc.Resolve("421000")
	require.True(t, ok)
	assert.Equal(t, "42", a.Number)
}

func TestResolve_Unknown(t *testing.T) {
	svc := NewService(DefaultPlan())
	_, ok := svc.Resolve("999999")
	assert.False(t, ok)
	assert.False(t, svc.Known("999999"))
	assert.True(t, svc.Known("571000"))
}

func TestByClass(t *testing.T) {
	svc := NewService(DefaultPlan())
	class5 := svc.ByClass(5)
	require.NotEmpty(t, class5)
	for _, a := range class5 {
		assert.Equal(t, 5, a.Class)
	}
}

func TestClosest(t *testing.T) {
	svc := NewService(DefaultPlan())
	a, ok := svc.Closest("412500")
	require.True(t, ok)
	assert.Equal(t, "41", a.Number)

	a, ok = svc.Closest("445900")
	require.True(t, ok)
	assert.Equal(t, "445", a.Number)
}

func TestCSVRoundTrip(t *testing.T) {
	accounts := DefaultPlan()

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, accounts))

	again, err := ReadAccounts(&buf)
	require.NoError(t, err)
	assert.Equal(t, accounts, again)
}

func TestGet(t *testing.T) {
	svc := NewService(DefaultPlan())
	a, ok := svc.Get("101")
	require.True(t, ok)
	assert.Equal(t, "Capital social", a.Label)
	assert.Equal(t, UsageMandatory, a.Usage)

	_, ok = svc.Get("9999")
	assert.False(t, ok)
}
