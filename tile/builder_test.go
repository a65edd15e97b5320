package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseOptions() Options {
	o := DefaultOptions()
	o.TileSize = 2
	o.StripWidth = 2
	o.Levels = []float64{5}
	return o
}

func TestAddTileRejectsJaggedData(t *testing.T) {
	t.Parallel()

	b := New(baseOptions())
	_, err := b.AddTile(0, 0, [][]float64{{1, 2}, {1}})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestAddTileRejectsEmptyData(t *testing.T) {
	t.Parallel()

	b := New(baseOptions())
	_, err := b.AddTile(0, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestAddTileReplacesInvalidSamples(t *testing.T) {
	t.Parallel()

	b := New(baseOptions())
	nan := 0.0
	nan /= nan // NaN without importing math in the test

	res, err := b.AddTile(0, 0, [][]float64{{0, 0}, {0, nan}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Diagnostics.ReplacedInvalidSamples)
}

func TestAddTileClipsChainsToOwnBox(t *testing.T) {
	t.Parallel()

	b := New(baseOptions())
	res, err := b.AddTile(0, 0, [][]float64{
		{0, 10},
		{10, 0},
	})
	require.NoError(t, err)

	for _, c := range res.Chains {
		for _, p := range c.Points {
			assert.GreaterOrEqual(t, p.X, -1e-6)
			assert.LessOrEqual(t, p.X, 2+1e-6)
			assert.GreaterOrEqual(t, p.Y, -1e-6)
			assert.LessOrEqual(t, p.Y, 2+1e-6)
		}
	}
}

func TestPublishStripsSharedBetweenNeighbors(t *testing.T) {
	t.Parallel()

	b := New(baseOptions())
	_, err := b.AddTile(0, 0, [][]float64{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)

	// tile (0,0)'s bottom row should now be published as the "top"
	// strip for tile (1,0).
	e := b.halo.edgesFor(Coord{1, 0})
	require.NotNil(t, e.top)
	assert.Equal(t, [][]float64{{3, 4}}[0], e.top[len(e.top)-1])
}

func TestLiangBarskyClipsFullyInsideSegment(t *testing.T) {
	t.Parallel()

	b := box{minX: 0, maxX: 10, minY: 0, maxY: 10}
	t0, t1, ok := liangBarsky(1, 1, 5, 5, b)
	require.True(t, ok)
	assert.InDelta(t, 0, t0, 1e-9)
	assert.InDelta(t, 1, t1, 1e-9)
}

func TestLiangBarskyClipsSegmentExitingBox(t *testing.T) {
	t.Parallel()

	b := box{minX: 0, maxX: 10, minY: 0, maxY: 10}
	_, t1, ok := liangBarsky(5, 5, 15, 5, b)
	require.True(t, ok)
	assert.InDelta(t, 0.5, t1, 1e-9)
}

func TestLiangBarskyRejectsSegmentOutsideBox(t *testing.T) {
	t.Parallel()

	b := box{minX: 0, maxX: 10, minY: 0, maxY: 10}
	_, _, ok := liangBarsky(20, 20, 30, 30, b)
	assert.False(t, ok)
}
