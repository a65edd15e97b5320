package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointEqualAndKey(t *testing.T) {
	t.Parallel()

	a := Point{X: 1.00000, Y: 2.00000}
	b := Point{X: 1.00004, Y: 2.00004}

	assert.True(t, a.Equal(b, 1e-3))
	assert.False(t, a.Equal(b, 1e-6))
	assert.Equal(t, a.Key(), a.Key())
}

func TestSegmentValidate(t *testing.T) {
	t.Parallel()

	ok := Segment{P1: Point{0, 0}, P2: Point{1, 0}, Level: 1}
	require.NoError(t, ok.Validate(DefaultEpsilon))

	degenerate := Segment{P1: Point{0, 0}, P2: Point{1e-9, 0}, Level: 1}
	assert.ErrorIs(t, degenerate.Validate(DefaultEpsilon), ErrDegenerateSegment)
}

func TestChainIsClosed(t *testing.T) {
	t.Parallel()

	open := Chain{Points: []Point{{0, 0}, {1, 0}}, Level: 0}
	assert.False(t, open.IsClosed(DefaultEpsilon))

	ring := Chain{Points: []Point{{0, 0}, {1, 0}, {1, 1}, {0, 0}}, Level: 0}
	assert.True(t, ring.IsClosed(DefaultEpsilon))

	tooShort := Chain{Points: []Point{{0, 0}, {0, 0}}, Level: 0}
	assert.False(t, tooShort.IsClosed(DefaultEpsilon))
}

func TestChainReversedPreservesLevel(t *testing.T) {
	t.Parallel()

	c := Chain{Points: []Point{{0, 0}, {1, 1}, {2, 2}}, Level: 5, ClosureOrigin: ClosureMerged}
	r := c.Reversed()

	require.Len(t, r.Points, 3)
	assert.Equal(t, Point{2, 2}, r.Points[0])
	assert.Equal(t, Point{0, 0}, r.Points[2])
	assert.Equal(t, c.Level, r.Level)
	assert.Equal(t, c.ClosureOrigin, r.ClosureOrigin)
}

func TestFeatureFromChain(t *testing.T) {
	t.Parallel()

	open := Chain{Points: []Point{{0, 0}, {1, 0}}, Level: 3}
	f := FromChain(open, DefaultEpsilon)
	assert.Equal(t, FeatureLineString, f.Type)
	assert.Equal(t, ClosureOpen, f.ClosureOrigin)

	ring := Chain{Points: []Point{{0, 0}, {1, 0}, {1, 1}, {0, 0}}, Level: 3}
	pf := FromChain(ring, DefaultEpsilon)
	assert.Equal(t, FeaturePolygon, pf.Type)
	assert.Equal(t, pf.Coordinates[0], pf.Coordinates[len(pf.Coordinates)-1])
}
