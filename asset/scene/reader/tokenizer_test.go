package reader

import (
	"testing"

	"github.com/achilleasa/prism/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	specs := []struct {
		line string
		exp  []string
	}{
		{"", nil},
		{"v 1 2 3", []string{"v", "1", "2", "3"}},
		{"v\t1  2", []string{"v", "1", "", "2"}},
		{"  v 1", []string{"", "", "v", "1"}},
		{"v 1\r", []string{"v", "1", ""}},
		{"\t\v\f", []string{"", "", "", ""}},
	}

	for _, spec := range specs {
		assert.Equal(t, spec.exp, tokenize(spec.line), "line %q", spec.line)
	}
}

func TestNextField(t *testing.T) {
	fields := []string{"", "", "v", "", "1"}

	index, ok := nextField(fields, -1)
	require.True(t, ok)
	assert.Equal(t, 2, index)

	index, ok = nextField(fields, 2)
	require.True(t, ok)
	assert.Equal(t, 4, index)

	_, ok = nextField(fields, 4)
	assert.False(t, ok)

	// Index 0 is a valid result and must not be confused with "not found".
	index, ok = keyword([]string{"f", "1"})
	require.True(t, ok)
	assert.Equal(t, 0, index)

	_, ok = keyword(tokenize("   "))
	assert.False(t, ok)
	_, ok = keyword(nil)
	assert.False(t, ok)
}

func TestParseFloats(t *testing.T) {
	v, pos, err := parseVec3(tokenize("v  1.5\t-2 3e2"), 0)
	require.NoError(t, err)
	assert.Equal(t, types.XYZ(1.5, -2, 300), v)
	assert.Equal(t, 4, pos)

	v, _, err = parseVec3(tokenize("v 1 abc 3"), 0)
	assert.Error(t, err)
	assert.Equal(t, types.XYZ(1, 0, 3), v)

	v, _, err = parseVec3(tokenize("v 1"), 0)
	assert.EqualError(t, err, "expected 3 numeric arguments; got 1")
	assert.Equal(t, types.XYZ(1, 0, 0), v)

	// Reads can be chained on the same line.
	fields := tokenize("P 1 2 3 4 5 6")
	pos1, pos, err := parseVec3(fields, 0)
	require.NoError(t, err)
	pos2, _, err := parseVec3(fields, pos)
	require.NoError(t, err)
	assert.Equal(t, types.XYZ(1, 2, 3), pos1)
	assert.Equal(t, types.XYZ(4, 5, 6), pos2)

	s, _, err := parseFloat32(tokenize("Ns 3.14"), 0)
	require.NoError(t, err)
	assert.Equal(t, float32(3.14), s)
}
