package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocessPoleNormalization(t *testing.T) {
	t.Parallel()

	g, err := New([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)

	out := Preprocess(g)
	assert.Equal(t, []float64{2, 2, 2}, out.Row(0))
	assert.Equal(t, []float64{8, 8, 8}, out.Row(2))
	// original untouched
	assert.Equal(t, []float64{1, 2, 3}, g.Row(0))
}

func TestPreprocessAllNonFiniteRowLeftUnchangedByPoleStep(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	g, err := New([][]float64{
		{nan, nan, nan},
		{4, 5, 6},
	})
	require.NoError(t, err)

	out := Preprocess(g)
	// pole step leaves the row unchanged (still all-NaN); cleanup then
	// replaces each NaN with 0.
	assert.Equal(t, []float64{0, 0, 0}, out.Row(0))
}

func TestPreprocessAntimeridianWrap(t *testing.T) {
	t.Parallel()

	g, err := New([][]float64{
		{1, 2, 1},
		{2, 9, 4},
		{1, 2, 1},
	})
	require.NoError(t, err)

	out := Preprocess(g)
	// middle row: left=2, right=4 -> both become 3
	assert.Equal(t, 3.0, out.At(1, 0))
	assert.Equal(t, 3.0, out.At(1, 2))
}

func TestPreprocessAntimeridianSingleFiniteEnd(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	g, err := New([][]float64{
		{1, 2, 1},
		{5, 9, nan},
		{1, 2, 1},
	})
	require.NoError(t, err)

	out := Preprocess(g)
	assert.Equal(t, 5.0, out.At(1, 0))
	assert.Equal(t, 5.0, out.At(1, 2))
}

func TestPreprocessInvalidValueCleanup(t *testing.T) {
	t.Parallel()

	inf := math.Inf(1)
	g, err := New([][]float64{
		{1, 2, 1},
		{2, inf, 2},
		{1, 2, 1},
	})
	require.NoError(t, err)

	out := Preprocess(g)
	assert.Equal(t, 0.0, out.At(1, 1))
}

func TestNewRejectsInvalidShapes(t *testing.T) {
	t.Parallel()

	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = New([][]float64{{1, 2}, {1}})
	assert.ErrorIs(t, err, ErrNonRectangular)

	_, err = New([][]float64{{1}})
	assert.ErrorIs(t, err, ErrTooSmall)
}
