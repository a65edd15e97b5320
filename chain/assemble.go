package chain

import (
	"math"

	"github.com/samber/lo"

	"github.com/katalvlaran/isoline/geom"
	"github.com/katalvlaran/isoline/spatialindex"
)

// Result is the outcome of Assemble: the maximal chains produced, per
// level, plus diagnostics on recovered conditions (§7).
type Result struct {
	ChainsByLevel map[float64][]geom.Chain
	Diagnostics   Diagnostics
}

// maxIterationsFactor is the §4.4 MAX_ITERATIONS guard multiplier:
// MAX_ITERATIONS = maxIterationsFactor * len(segments in the level bucket).
const maxIterationsFactor = 2

// Assemble joins segments into maximal chains per level (§4.4), using a
// spatialindex.Index built per level bucket and the "pursue the
// straightest continuation" heuristic for ambiguous (saddle) forks.
//
// InvalidSegment conditions (non-finite coordinates, near-zero length)
// are skipped and counted in Diagnostics rather than aborting the pass,
// per §7.
//
// Complexity: O(n) spatial-index lookups amortized per segment across
// all levels, where n = len(segments); O(1) additional indexing memory
// per segment.
func Assemble(segments []geom.Segment, opts Options) Result {
	opts = opts.normalize()

	var diag Diagnostics
	var valid []geom.Segment
	var levelOrder []float64
	seenLevel := make(map[float64]bool)

	for _, s := range segments {
		if !finiteSegment(s) || s.Validate(opts.Epsilon) != nil {
			diag.SkippedSegments++
			continue
		}
		if !seenLevel[s.Level] {
			seenLevel[s.Level] = true
			levelOrder = append(levelOrder, s.Level)
		}
		valid = append(valid, s)
	}

	// lo.GroupBy returns a plain map, so levelOrder above still carries
	// the first-seen ordering needed for deterministic iteration below.
	byLevel := lo.GroupBy(valid, func(s geom.Segment) float64 { return s.Level })

	chainsByLevel := make(map[float64][]geom.Chain, len(levelOrder))
	for _, level := range levelOrder {
		levelSegs := byLevel[level]
		chains := assembleLevel(levelSegs, opts)
		if opts.GlueRings {
			var merges int
			chains, merges = glueRings(chains, opts)
			diag.GlueMerges += merges
		}
		chainsByLevel[level] = chains
	}

	return Result{ChainsByLevel: chainsByLevel, Diagnostics: diag}
}

func finiteSegment(s geom.Segment) bool {
	return isFiniteXY(s.P1) && isFiniteXY(s.P2)
}

func isFiniteXY(p geom.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// assembleLevel runs steps 2-5 of §4.4 over a single level's segments.
func assembleLevel(segs []geom.Segment, opts Options) []geom.Chain {
	if len(segs) == 0 {
		return nil
	}

	idx := spatialindex.Build(segs, opts.BucketSize)
	consumed := make([]bool, len(segs))

	var chains []geom.Chain
	for i := range segs {
		if consumed[i] {
			continue
		}
		consumed[i] = true
		points := []geom.Point{segs[i].P1, segs[i].P2}

		maxIter := maxIterationsFactor * len(segs)
		closed := extend(&points, idx, consumed, opts.Epsilon, false, maxIter)
		if !closed {
			extend(&points, idx, consumed, opts.Epsilon, true, maxIter)
		}

		if len(points) < 2 {
			continue // discarded per §4.4
		}
		c := geom.Chain{Points: points, Level: segs[i].Level}
		if c.IsClosed(opts.Epsilon) {
			c.ClosureOrigin = geom.ClosureNatural
		}
		chains = append(chains, c)
	}

	return chains
}

// extend grows the chain at its tip (prepend=false) or head (prepend=true)
// per §4.4 steps 4a/4b, stopping when no neighbor exists, the chain
// closes, or the MAX_ITERATIONS guard is hit. It returns true if the
// chain closed during this call.
func extend(points *[]geom.Point, idx *spatialindex.Index, consumed []bool, eps float64, prepend bool, maxIter int) bool {
	segs := idx.Segments()

	for iter := 0; iter < maxIter; iter++ {
		pts := *points
		var tip, prev geom.Point
		if prepend {
			tip, prev = pts[0], pts[1]
		} else {
			tip, prev = pts[len(pts)-1], pts[len(pts)-2]
		}

		candidates := idx.FindNeighbors(tip, eps)
		bestIdx := -1
		bestDist := -1.0
		var bestOther geom.Point
		for _, ci := range candidates {
			if consumed[ci] {
				continue
			}
			s := segs[ci]
			var other geom.Point
			switch {
			case s.P1.Equal(tip, eps):
				other = s.P2
			case s.P2.Equal(tip, eps):
				other = s.P1
			default:
				continue
			}
			d := geom.Distance(prev, other)
			if d > bestDist {
				bestDist = d
				bestIdx = ci
				bestOther = other
			}
		}

		if bestIdx == -1 {
			return false // no neighbor: stop, per §4.4 step 5.
		}
		consumed[bestIdx] = true

		if prepend {
			*points = append([]geom.Point{bestOther}, *points...)
		} else {
			*points = append(*points, bestOther)
		}

		newPts := *points
		if geom.Distance(newPts[0], newPts[len(newPts)-1]) < eps && len(newPts) >= 3 {
			return true // chain closed, per §4.4 step 5.
		}
	}

	return false
}
