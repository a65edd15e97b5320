package stitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isoline/geom"
	"github.com/katalvlaran/isoline/tile"
)

func TestAddTileChainsMergesOverlappingNeighbor(t *testing.T) {
	t.Parallel()

	s := New(DefaultOptions())

	left := tile.Coord{TI: 0, TJ: 0}
	right := tile.Coord{TI: 0, TJ: 1}

	s.AddTileChains(left, []geom.Chain{
		{Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, Level: 1},
	})

	got := s.AddTileChains(right, []geom.Chain{
		{Points: []geom.Point{{X: 1, Y: 0}, {X: 2, Y: 0}}, Level: 1},
	})

	require.Len(t, got, 1)
	assert.Len(t, got[0].Points, 3)
	assert.Equal(t, geom.ClosureMerged, got[0].ClosureOrigin)
	assert.Equal(t, 1, s.Diagnostics().Merges)
}

func TestAddTileChainsIgnoresDifferentLevels(t *testing.T) {
	t.Parallel()

	s := New(DefaultOptions())

	left := tile.Coord{TI: 0, TJ: 0}
	right := tile.Coord{TI: 0, TJ: 1}

	s.AddTileChains(left, []geom.Chain{
		{Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, Level: 1},
	})
	got := s.AddTileChains(right, []geom.Chain{
		{Points: []geom.Point{{X: 1, Y: 0}, {X: 2, Y: 0}}, Level: 2},
	})

	require.Len(t, got, 1)
	assert.Len(t, got[0].Points, 2)
}

// TestOverlappingChainsAtHalfTolerance exercises two open chains from
// adjacent tiles whose nearest endpoints differ by
// half the overlap tolerance should merge into a single chain whose
// point count is the sum of inputs minus the one duplicated join vertex.
func TestOverlappingChainsAtHalfTolerance(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	half := opts.OverlapTolerance / 2

	s := New(opts)
	a := tile.Coord{TI: 0, TJ: 0}
	b := tile.Coord{TI: 0, TJ: 1}

	chainA := []geom.Chain{
		{Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, Level: 3},
	}
	chainB := []geom.Chain{
		{Points: []geom.Point{{X: 2 + half, Y: 0}, {X: 3, Y: 0}}, Level: 3},
	}

	s.AddTileChains(a, chainA)
	got := s.AddTileChains(b, chainB)

	require.Len(t, got, 1)
	assert.Len(t, got[0].Points, len(chainA[0].Points)+len(chainB[0].Points)-1)
}

func TestMergeChainsOrientsOnClosestEndpointPair(t *testing.T) {
	t.Parallel()

	a := geom.Chain{Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, Level: 1}
	b := geom.Chain{Points: []geom.Point{{X: 5, Y: 5}, {X: 1, Y: 0}}, Level: 1}

	merged := mergeChains(a, b)
	require.Len(t, merged.Points, 3)
	assert.Equal(t, geom.Point{X: 0, Y: 0}, merged.Points[0])
	assert.Equal(t, geom.Point{X: 5, Y: 5}, merged.Points[2])
}

func TestFinalizeSnapsNearCoincidentEndpoints(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	s := New(opts)
	quarter := opts.OverlapTolerance / 4

	coord := tile.Coord{TI: 0, TJ: 0}
	s.AddTileChains(coord, []geom.Chain{
		{Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: quarter, Y: 0}}, Level: 1},
	})

	byLevel, diag := s.Finalize()
	require.Contains(t, byLevel, 1.0)
	require.Len(t, byLevel[1.0], 1)
	assert.Equal(t, geom.ClosurePostMergeSnap, byLevel[1.0][0].ClosureOrigin)
	assert.GreaterOrEqual(t, diag.SnappedEndpoints, 2)
}

func TestFinalizeDropsTinyOpenFragments(t *testing.T) {
	t.Parallel()

	s := New(DefaultOptions())
	coord := tile.Coord{TI: 0, TJ: 0}
	s.AddTileChains(coord, []geom.Chain{
		{Points: []geom.Point{{X: 0, Y: 0}, {X: 0.01, Y: 0}}, Level: 1},
	})

	byLevel, diag := s.Finalize()
	assert.Empty(t, byLevel[1.0])
	assert.Equal(t, 1, diag.DroppedFragments)
}

func TestFinalizeForcesClosureWithinMaxDistance(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.ForcePolygonClosure = true
	s := New(opts)

	gap := opts.MaxForceCloseDistance / 2
	coord := tile.Coord{TI: 0, TJ: 0}
	s.AddTileChains(coord, []geom.Chain{
		{Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: gap, Y: 0}}, Level: 1},
	})

	byLevel, diag := s.Finalize()
	require.Len(t, byLevel[1.0], 1)
	assert.Equal(t, geom.ClosureForced, byLevel[1.0][0].ClosureOrigin)
	assert.Equal(t, 1, diag.ForcedClosures)
}
