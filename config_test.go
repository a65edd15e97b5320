package isoline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptionsYAMLFillsDefaultsForEmptyDocument(t *testing.T) {
	t.Parallel()

	o, err := LoadOptionsYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), o)
}

func TestLoadOptionsYAMLOverridesGivenKeys(t *testing.T) {
	t.Parallel()

	doc := `
epsilon: 0.001
tile_size: 128
strip_width: 3
force_polygon_closure: true
`
	o, err := LoadOptionsYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 0.001, o.Epsilon)
	assert.Equal(t, 128, o.TileSize)
	assert.Equal(t, 3, o.StripWidth)
	assert.True(t, o.ForcePolygonClosure)
	// overlap_tolerance was not set in the document, so it inherits the
	// default (1e-4) and then normalize() raises it to match the
	// overridden, larger epsilon (§6 overlap_tolerance >= epsilon).
	assert.Equal(t, 0.001, o.OverlapTolerance)
}

func TestLoadOptionsYAMLRejectsOverlapBelowEpsilon(t *testing.T) {
	t.Parallel()

	doc := `
epsilon: 0.01
overlap_tolerance: 0.001
`
	_, err := LoadOptionsYAML(strings.NewReader(doc))
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestLoadOptionsYAMLRejectsMalformedDocument(t *testing.T) {
	t.Parallel()

	_, err := LoadOptionsYAML(strings.NewReader("epsilon: [not, a, float]"))
	require.Error(t, err)
}
