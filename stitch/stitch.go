package stitch

import (
	"github.com/katalvlaran/isoline/geom"
	"github.com/katalvlaran/isoline/tile"
)

// Diagnostics accumulates the recoverable-condition counts of §7 that
// are specific to stitching: merges across tiles, forced closures,
// endpoints snapped, and fragments dropped by the global post-pass.
type Diagnostics struct {
	Merges           int
	ForcedClosures   int
	SnappedEndpoints int
	DroppedFragments int
}

func (d *Diagnostics) add(o Diagnostics) {
	d.Merges += o.Merges
	d.ForcedClosures += o.ForcedClosures
	d.SnappedEndpoints += o.SnappedEndpoints
	d.DroppedFragments += o.DroppedFragments
}

// Stitcher holds the stored_chains state of §4.6 and the configuration
// governing overlap detection and closure policy.
//
// Stitcher is not safe for concurrent AddTileChains calls; callers
// serialize them (the root package's TileBuilder calls it from AddTile,
// which is itself single-threaded), per the §5 shared-resource policy.
type Stitcher struct {
	opts         Options
	storedChains map[tile.Coord][]geom.Chain
	diag         Diagnostics
}

// New constructs a Stitcher with the given Options, normalized per §6.
func New(opts Options) *Stitcher {
	return &Stitcher{
		opts:         opts.normalize(),
		storedChains: make(map[tile.Coord][]geom.Chain),
	}
}

// Diagnostics returns the accumulated diagnostic counters so far.
func (s *Stitcher) Diagnostics() Diagnostics { return s.diag }

// neighborsOf returns the four axis-aligned neighbor coordinates of c in
// the fixed (top, bottom, left, right) order required for deterministic
// candidate ordering (§4.6 Determinism).
func neighborsOf(c tile.Coord) [4]tile.Coord {
	return [4]tile.Coord{
		{TI: c.TI - 1, TJ: c.TJ}, // top
		{TI: c.TI + 1, TJ: c.TJ}, // bottom
		{TI: c.TI, TJ: c.TJ - 1}, // left
		{TI: c.TI, TJ: c.TJ + 1}, // right
	}
}

// AddTileChains processes the chains newly produced for tile coord
// (already clipped and lifted to global coordinates by package tile),
// merging each against same-level candidates from the four axis-aligned
// neighbors per §4.6, and stores the resulting chain set under coord's
// slot. It returns the (possibly merged) chains now stored for coord.
func (s *Stitcher) AddTileChains(coord tile.Coord, arriving []geom.Chain) []geom.Chain {
	neighbors := neighborsOf(coord)

	// consumedAt[neighborIdx] tracks which of that neighbor's stored
	// chains have already been folded into a merge this call, so the
	// same neighbor chain cannot be consumed twice.
	consumedAt := make([]map[int]bool, len(neighbors))
	for i := range consumedAt {
		consumedAt[i] = make(map[int]bool)
	}

	result := make([]geom.Chain, 0, len(arriving))
	for _, c := range arriving {
		merged := c
		for ni, nCoord := range neighbors {
			candidates, ok := s.storedChains[nCoord]
			if !ok {
				continue
			}
			bestIdx, bestDist := -1, s.opts.OverlapTolerance
			for ci, cand := range candidates {
				if consumedAt[ni][ci] || cand.Level != merged.Level {
					continue
				}
				d := endpointDistance(merged, cand)
				if d <= bestDist {
					bestDist = d
					bestIdx = ci
				}
			}
			if bestIdx == -1 {
				continue
			}
			consumedAt[ni][bestIdx] = true
			merged = mergeChains(merged, candidates[bestIdx])
			merged.ClosureOrigin = geom.ClosureMerged
			s.diag.Merges++
		}
		result = append(result, merged)
	}

	// Remove consumed chains from each neighbor's stored slot.
	for ni, nCoord := range neighbors {
		if len(consumedAt[ni]) == 0 {
			continue
		}
		remaining := s.storedChains[nCoord][:0]
		for ci, cand := range s.storedChains[nCoord] {
			if !consumedAt[ni][ci] {
				remaining = append(remaining, cand)
			}
		}
		s.storedChains[nCoord] = remaining
	}

	s.storedChains[coord] = result
	return result
}

// endpointDistance returns the minimum Euclidean distance between any
// endpoint of a and any endpoint of b, the §4.6 OVERLAPS measure.
func endpointDistance(a, b geom.Chain) float64 {
	d := geom.Distance(a.Head(), b.Head())
	if v := geom.Distance(a.Head(), b.Tail()); v < d {
		d = v
	}
	if v := geom.Distance(a.Tail(), b.Head()); v < d {
		d = v
	}
	if v := geom.Distance(a.Tail(), b.Tail()); v < d {
		d = v
	}
	return d
}

// mergeChains implements §4.6 MERGE: orient a and b so their closest
// endpoint pair becomes the join point, concatenate, and drop the
// duplicated join vertex.
func mergeChains(a, b geom.Chain) geom.Chain {
	dHH := geom.Distance(a.Head(), b.Head())
	dHT := geom.Distance(a.Head(), b.Tail())
	dTH := geom.Distance(a.Tail(), b.Head())
	dTT := geom.Distance(a.Tail(), b.Tail())

	best, choice := dHH, 0
	if dHT < best {
		best, choice = dHT, 1
	}
	if dTH < best {
		best, choice = dTH, 2
	}
	if dTT < best {
		best, choice = dTT, 3
	}
	_ = best

	var points []geom.Point
	switch choice {
	case 0: // a.head ~ b.head: a + reverse(b)[1:]
		points = joinDroppingVertex(a.Points, b.Reversed().Points)
	case 1: // a.head ~ b.tail: a + b[1:]
		points = joinDroppingVertex(a.Points, b.Points)
	case 2: // a.tail ~ b.head: b + a[1:]
		points = joinDroppingVertex(b.Points, a.Points)
	default: // a.tail ~ b.tail: reverse(a) + b[1:]
		points = joinDroppingVertex(a.Reversed().Points, b.Points)
	}

	return geom.Chain{Points: points, Level: a.Level}
}

func joinDroppingVertex(a, b []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(a)+len(b)-1)
	out = append(out, a...)
	out = append(out, b[1:]...)
	return out
}
