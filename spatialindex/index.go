package spatialindex

import (
	"math"

	"github.com/samber/lo"

	"github.com/katalvlaran/isoline/geom"
)

// bucketKey identifies a cell in the uniform grid hash: (floor(x/G), floor(y/G)).
type bucketKey struct {
	bx, by int64
}

func keyFor(x, y, bucketSize float64) bucketKey {
	return bucketKey{
		bx: int64(math.Floor(x / bucketSize)),
		by: int64(math.Floor(y / bucketSize)),
	}
}

// Index is a uniform grid-hash spatial index over a fixed slice of
// Segments (§4.3). It stores segment indices, not copies, so callers can
// track per-index consumption (see DESIGN NOTES §9: "a parallel boolean
// array indexed by segment position").
type Index struct {
	bucketSize float64
	segments   []geom.Segment
	buckets    map[bucketKey][]int
}

// Build populates an Index over segments using bucketSize as the uniform
// grid-hash cell size G (default 1 grid cell, per §4.3). Both endpoints'
// bucket keys are populated, plus every bucket key overlapping the
// segment's axis-aligned bounding box, so FindNeighbors can locate a
// segment from any point along its span that shares a bucket with it.
//
// Complexity: O(n * cellsPerSegment) time and memory, where
// cellsPerSegment is bounded by the segment's bbox in units of bucketSize
// (O(1) for segments no longer than a few grid cells, the expected case).
func Build(segments []geom.Segment, bucketSize float64) *Index {
	if bucketSize <= 0 {
		bucketSize = 1
	}
	idx := &Index{
		bucketSize: bucketSize,
		segments:   segments,
		buckets:    make(map[bucketKey][]int, len(segments)),
	}

	for i, s := range segments {
		minX, maxX := math.Min(s.P1.X, s.P2.X), math.Max(s.P1.X, s.P2.X)
		minY, maxY := math.Min(s.P1.Y, s.P2.Y), math.Max(s.P1.Y, s.P2.Y)

		kMinX := int64(math.Floor(minX / bucketSize))
		kMaxX := int64(math.Floor(maxX / bucketSize))
		kMinY := int64(math.Floor(minY / bucketSize))
		kMaxY := int64(math.Floor(maxY / bucketSize))

		for bx := kMinX; bx <= kMaxX; bx++ {
			for by := kMinY; by <= kMaxY; by++ {
				k := bucketKey{bx, by}
				idx.buckets[k] = append(idx.buckets[k], i)
			}
		}
	}

	return idx
}

// Segments returns the backing segment slice, in the same order and
// indices used by FindNeighbors.
func (idx *Index) Segments() []geom.Segment { return idx.segments }

// FindNeighbors returns the indices of every segment in the 3x3 block of
// buckets around point whose either endpoint lies within eps of point,
// per §4.3. Duplicate indices (a segment spanning multiple buckets in the
// block) are suppressed.
//
// Complexity: O(k) where k is the number of segment-references across
// the 9 buckets inspected; independent of total segment count for a
// roughly uniform segment distribution.
func (idx *Index) FindNeighbors(point geom.Point, eps float64) []int {
	center := keyFor(point.X, point.Y, idx.bucketSize)

	var candidates []int
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			k := bucketKey{center.bx + dx, center.by + dy}
			candidates = append(candidates, idx.buckets[k]...)
		}
	}

	unique := lo.Uniq(candidates)
	return lo.Filter(unique, func(segIdx int, _ int) bool {
		s := idx.segments[segIdx]
		return s.P1.Equal(point, eps) || s.P2.Equal(point, eps)
	})
}
