package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirective_Basic(t *testing.T) {
	d, ok, err := ParseDirective("//structarray:generate layout=sequential")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "sequential", d.Layout)
	assert.Empty(t, d.Caps)
}

func TestParseDirective_Caps(t *testing.T) {
	d, ok, err := ParseDirective("//structarray:generate layout=sequential caps=deref")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "sequential", d.Layout)
	assert.Equal(t, "deref", d.Caps)
}

func TestParseDirective_NotADirective(t *testing.T) {
	for _, line := range []string{
		"// just a comment",
		"// structarray:generate layout=sequential", // space disqualifies a directive
		"//structarray:generated layout=sequential", // different word
		"//go:generate stringer",
	} {
		d, ok, err := ParseDirective(line)
		assert.NoError(t, err, line)
		assert.False(t, ok, line)
		assert.Nil(t, d, line)
	}
}

func TestParseDirective_BareDirective(t *testing.T) {
	d, ok, err := ParseDirective("//structarray:generate")
	require.NoError(t, err)
	require.True(t, ok)

	// No layout param; the validator rejects this later.
	assert.Empty(t, d.Layout)
}

func TestParseDirective_Malformed(t *testing.T) {
	_, ok, err := ParseDirective("//structarray:generate layout")
	assert.True(t, ok)
	assert.Error(t, err)

	_, ok, err = ParseDirective("//structarray:generate caps=everything")
	assert.True(t, ok)
	assert.Error(t, err)

	_, ok, err = ParseDirective("//structarray:generate color=red")
	assert.True(t, ok)
	assert.Error(t, err)
}

func TestFindDirective(t *testing.T) {
	d, ok, err := FindDirective([]string{
		"// Point is a 2D point.",
		"//",
		"//structarray:generate layout=sequential",
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "sequential", d.Layout)

	_, ok, err = FindDirective([]string{"// nothing here"})
	require.NoError(t, err)
	assert.False(t, ok)
}
