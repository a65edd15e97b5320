package stitch

import (
	"sort"

	"github.com/samber/lo"

	"github.com/katalvlaran/isoline/geom"
	"github.com/katalvlaran/isoline/tile"
)

// minFragmentLength is the §4.6 tiny-fragment removal threshold:
// max(0.5, 0.25*epsilon). For any plausible epsilon (<= 1, per §6
// guidance) the 0.5 floor dominates; the formula is kept exactly as
// specified so a caller-configured large epsilon still takes effect.
func minFragmentLength(eps float64) float64 {
	if v := 0.25 * eps; v > 0.5 {
		return v
	}
	return 0.5
}

// snapBucketKey buckets a point at resolution tau for the endpoint
// snapping pass, matching the quantization idea used by geom.Point.Key
// but parameterized on the caller's tolerance rather than a fixed
// precision.
func snapBucketKey(p geom.Point, tau float64) [2]int64 {
	if tau <= 0 {
		tau = geom.DefaultEpsilon
	}
	return [2]int64{
		int64(p.X / tau),
		int64(p.Y / tau),
	}
}

// Finalize runs the §4.6 global post-pass over every chain stored across
// all tiles added so far: endpoint snapping, closed-ring reclassification,
// and tiny-fragment removal. It returns the final chain set keyed by
// level (a map, so no level order is carried), and the accumulated
// Diagnostics.
func (s *Stitcher) Finalize() (map[float64][]geom.Chain, Diagnostics) {
	all, order := s.flatten()

	s.snapEndpoints(all)
	s.reclassifyClosed(all)
	kept := s.dropTinyFragments(all)

	if s.opts.ForcePolygonClosure {
		kept = s.forceClosures(kept)
	}

	grouped := lo.GroupBy(kept, func(c geom.Chain) float64 { return c.Level })
	out := make(map[float64][]geom.Chain, len(order))
	for _, lvl := range order {
		out[lvl] = grouped[lvl]
	}
	return out, s.diag
}

// flatten collects every stored chain, in deterministic tile-coordinate
// order, and returns the level-encounter order alongside it.
func (s *Stitcher) flatten() ([]geom.Chain, []float64) {
	coords := make([]tile.Coord, 0, len(s.storedChains))
	for c := range s.storedChains {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].TI != coords[j].TI {
			return coords[i].TI < coords[j].TI
		}
		return coords[i].TJ < coords[j].TJ
	})

	var all []geom.Chain
	seenLevel := make(map[float64]bool)
	var order []float64
	for _, c := range coords {
		for _, ch := range s.storedChains[c] {
			all = append(all, ch)
			if !seenLevel[ch.Level] {
				seenLevel[ch.Level] = true
				order = append(order, ch.Level)
			}
		}
	}
	return all, order
}

// snapEndpoints buckets both endpoints of every stored chain, open or
// closed and of any level, at OverlapTolerance resolution and replaces
// any endpoint sharing a bucket with >= 1 other endpoint by the centroid
// of that bucket (§4.6 endpoint snapping).
func (s *Stitcher) snapEndpoints(all []geom.Chain) {
	type ref struct {
		chainIdx int
		isHead   bool
	}
	buckets := make(map[[2]int64][]ref)
	for i, c := range all {
		if len(c.Points) == 0 {
			continue
		}
		buckets[snapBucketKey(c.Tail(), s.opts.OverlapTolerance)] = append(
			buckets[snapBucketKey(c.Tail(), s.opts.OverlapTolerance)], ref{i, false})
		buckets[snapBucketKey(c.Head(), s.opts.OverlapTolerance)] = append(
			buckets[snapBucketKey(c.Head(), s.opts.OverlapTolerance)], ref{i, true})
	}

	for _, refs := range buckets {
		if len(refs) < 2 {
			continue
		}
		var sx, sy float64
		for _, r := range refs {
			p := all[r.chainIdx].Points[0]
			if r.isHead {
				p = all[r.chainIdx].Points[len(all[r.chainIdx].Points)-1]
			}
			sx += p.X
			sy += p.Y
		}
		centroid := geom.Point{X: sx / float64(len(refs)), Y: sy / float64(len(refs))}
		for _, r := range refs {
			pts := all[r.chainIdx].Points
			if r.isHead {
				pts[len(pts)-1] = centroid
			} else {
				pts[0] = centroid
			}
			s.diag.SnappedEndpoints++
		}
	}
}

// reclassifyClosed marks any chain not already labelled natural, forced
// or merged whose endpoints now coincide within OverlapTolerance as
// closed via ClosurePostMergeSnap.
func (s *Stitcher) reclassifyClosed(all []geom.Chain) {
	for i := range all {
		c := &all[i]
		if c.ClosureOrigin == geom.ClosureNatural || c.ClosureOrigin == geom.ClosureForced || c.ClosureOrigin == geom.ClosureMerged {
			continue
		}
		if len(c.Points) >= 3 && geom.Distance(c.Tail(), c.Head()) < s.opts.OverlapTolerance {
			c.ClosureOrigin = geom.ClosurePostMergeSnap
		}
	}
}

// dropTinyFragments removes chains with no ClosureOrigin label whose
// total length is below minFragmentLength(epsilon), per §4.6; chains
// labelled ClosureMerged are kept even when open.
func (s *Stitcher) dropTinyFragments(all []geom.Chain) []geom.Chain {
	threshold := minFragmentLength(s.opts.Epsilon)
	kept := make([]geom.Chain, 0, len(all))
	for _, c := range all {
		closed := c.ClosureOrigin == geom.ClosureNatural || c.ClosureOrigin == geom.ClosureForced ||
			c.ClosureOrigin == geom.ClosureMerged || c.ClosureOrigin == geom.ClosurePostMergeSnap
		if !closed && c.Length() < threshold {
			s.diag.DroppedFragments++
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// forceClosures implements the force_polygon_closure option (§6): any
// remaining chain with no ClosureOrigin label whose endpoint gap is
// within MaxForceCloseDistance
// is closed by appending its first point, with ClosureOrigin set to
// ClosureForced.
func (s *Stitcher) forceClosures(chains []geom.Chain) []geom.Chain {
	for i := range chains {
		c := &chains[i]
		if c.ClosureOrigin != "" {
			continue
		}
		gap := geom.Distance(c.Tail(), c.Head())
		if gap > 0 && gap <= s.opts.MaxForceCloseDistance {
			c.Points = append(c.Points, c.Tail())
			c.ClosureOrigin = geom.ClosureForced
			s.diag.ForcedClosures++
		}
	}
	return chains
}
