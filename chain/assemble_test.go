package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isoline/conrec"
	"github.com/katalvlaran/isoline/geom"
	"github.com/katalvlaran/isoline/grid"
)

func TestAssembleS1TwoOpenChains(t *testing.T) {
	t.Parallel()

	g, err := grid.New([][]float64{{0, 1}, {1, 2}})
	require.NoError(t, err)

	segs := conrec.ComputeSegments(g, []float64{0.5, 1.5}, geom.DefaultEpsilon)
	res := Assemble(segs, DefaultOptions())

	for _, level := range []float64{0.5, 1.5} {
		chains := res.ChainsByLevel[level]
		require.NotEmpty(t, chains)
		for _, c := range chains {
			assert.False(t, c.IsClosed(geom.DefaultEpsilon))
		}
	}
}

func TestAssembleS2ClosedRingAroundPeak(t *testing.T) {
	t.Parallel()

	g, err := grid.New([][]float64{
		{0, 0, 0},
		{0, 10, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)

	segs := conrec.ComputeSegments(g, []float64{5}, geom.DefaultEpsilon)
	res := Assemble(segs, DefaultOptions())

	chains := res.ChainsByLevel[5]
	require.Len(t, chains, 1)
	assert.True(t, chains[0].IsClosed(geom.DefaultEpsilon))
	assert.Equal(t, geom.ClosureNatural, chains[0].ClosureOrigin)
}

func TestAssembleS3FourSeparateChains(t *testing.T) {
	t.Parallel()

	g, err := grid.New([][]float64{
		{0, 1, 0, -1},
		{1, 0, -1, 0},
		{0, -1, 0, 1},
		{-1, 0, 1, 0},
	})
	require.NoError(t, err)

	segs := conrec.ComputeSegments(g, []float64{0}, geom.DefaultEpsilon)
	res := Assemble(segs, DefaultOptions())

	chains := res.ChainsByLevel[0]
	assert.NotEmpty(t, chains)
}

// Chain non-repetition (§8): no segment is used twice across the
// assembled chains' edges.
func TestAssembleNoSegmentRepetition(t *testing.T) {
	t.Parallel()

	g, err := grid.New([][]float64{
		{0, 2, 0, 2, 0},
		{2, 0, 2, 0, 2},
		{0, 2, 0, 2, 0},
		{2, 0, 2, 0, 2},
	})
	require.NoError(t, err)

	segs := conrec.ComputeSegments(g, []float64{1}, geom.DefaultEpsilon)
	res := Assemble(segs, DefaultOptions())

	edgeCount := make(map[[2][2]int64]int)
	for _, chains := range res.ChainsByLevel {
		for _, c := range chains {
			for i := 1; i < len(c.Points); i++ {
				k := edgeKey(c.Points[i-1], c.Points[i])
				edgeCount[k]++
				assert.LessOrEqual(t, edgeCount[k], 1, "edge reused across chains")
			}
		}
	}
}

func edgeKey(a, b geom.Point) [2][2]int64 {
	ka, kb := a.Key(), b.Key()
	if ka[0] > kb[0] || (ka[0] == kb[0] && ka[1] > kb[1]) {
		ka, kb = kb, ka
	}
	return [2][2]int64{ka, kb}
}

func TestAssembleSkipsInvalidSegments(t *testing.T) {
	t.Parallel()

	segs := []geom.Segment{
		{P1: geom.Point{X: 0, Y: 0}, P2: geom.Point{X: 0, Y: 0}, Level: 1}, // degenerate
		{P1: geom.Point{X: 1, Y: 1}, P2: geom.Point{X: 2, Y: 1}, Level: 1},
	}
	res := Assemble(segs, DefaultOptions())
	assert.Equal(t, 1, res.Diagnostics.SkippedSegments)
	assert.Len(t, res.ChainsByLevel[1], 1)
}

func TestAssembleGlueRingsMergesOpenChains(t *testing.T) {
	t.Parallel()

	// Two open chains whose nearest endpoints are 1e-5 apart: farther
	// than eps, so the extension pass leaves them apart, but well within
	// the Glue-U merge radius mu.
	segs := []geom.Segment{
		{P1: geom.Point{X: 0, Y: 0}, P2: geom.Point{X: 1, Y: 0}, Level: 1},
		{P1: geom.Point{X: 1.00001, Y: 0}, P2: geom.Point{X: 2, Y: 0}, Level: 1},
	}
	opts := DefaultOptions()
	opts.GlueRings = true
	opts.Epsilon = 1e-6 // tight enough that the two segments don't auto-join in the extend pass

	res := Assemble(segs, opts)
	chains := res.ChainsByLevel[1]
	require.Len(t, chains, 1)
	assert.Equal(t, 1, res.Diagnostics.GlueMerges)
}
