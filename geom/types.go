package geom

import "math"

// DefaultEpsilon is the default equality/interpolation tolerance (§6 epsilon).
const DefaultEpsilon = 1e-4

// HashPrecision is the number of decimal places Key quantizes to, so that
// points considered Equal under a typical Epsilon hash to the same bucket.
const HashPrecision = 6

// Point is a pair (X, Y) of real numbers in grid coordinates (column, row).
//
// Point is a value object: two Points compare by value, and Equal treats
// coordinates within a caller-supplied epsilon as the same point.
type Point struct {
	X, Y float64
}

// Equal reports whether p and q coincide within eps (Euclidean distance).
// Complexity: O(1).
func (p Point) Equal(q Point, eps float64) bool {
	return Distance(p, q) < eps
}

// Key quantizes p to HashPrecision decimal places, producing a value
// suitable for use as a map key when indexing points that should collide
// at typical epsilon tolerances (§3: "Hashing for indexing quantizes to
// six decimal places").
// Complexity: O(1).
func (p Point) Key() [2]int64 {
	const scale = 1e6 // 10^HashPrecision
	return [2]int64{
		int64(math.Round(p.X * scale)),
		int64(math.Round(p.Y * scale)),
	}
}

// Distance returns the plain Euclidean distance between a and b in grid
// coordinates. Per §9 (Open Question), no longitude wrap is
// applied anywhere in this module; wrapping is an external projection
// concern.
// Complexity: O(1).
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Hypot(dx, dy)
}

// CaseProvenance records the diagnostic-only origin of a Segment: the
// originating cell coordinates, the triangle index (0..3) within the
// cell, and the classical 4-bit marching-squares case index (retained
// as metadata only — the triangle decomposition, not this index, governs
// which segment is emitted; see GLOSSARY "Case index").
type CaseProvenance struct {
	Row, Col  int
	Triangle  int
	CaseIndex int
}

// Segment is an unordered pair of Points annotated with the contour
// Level it belongs to, plus diagnostic-only provenance (§3).
//
// Invariant: |P1 - P2| > 0.1*epsilon; both endpoints lie on the boundary
// of the originating grid cell. Validate enforces the distance half of
// this invariant; cell-boundary membership is guaranteed by construction
// in package conrec and is not re-checked here.
type Segment struct {
	P1, P2     Point
	Level      float64
	Provenance CaseProvenance
}

// Validate reports ErrDegenerateSegment if the endpoints are closer than
// 0.1*eps, per the §3 Segment invariant.
// Complexity: O(1).
func (s Segment) Validate(eps float64) error {
	if Distance(s.P1, s.P2) <= 0.1*eps {
		return ErrDegenerateSegment
	}
	return nil
}

// ClosureOrigin records how a Chain came to be a closed ring, for
// downstream diagnostics and the §6 output schema.
type ClosureOrigin string

const (
	// ClosureNatural: head equals tail at output time, no forced edge.
	ClosureNatural ClosureOrigin = "natural"
	// ClosureForced: a connecting edge was added because the caller
	// requested polygonization and the endpoint gap was within
	// max_force_close_distance.
	ClosureForced ClosureOrigin = "forced"
	// ClosureMerged: closed as a side effect of cross-tile merging.
	ClosureMerged ClosureOrigin = "merged"
	// ClosurePostMergeSnap: closed by the endpoint-snapping post-pass.
	ClosurePostMergeSnap ClosureOrigin = "post_merge_snap"
	// ClosureOpen marks a chain that is not (and will not be treated as)
	// closed; used only in the §6 Feature.ClosureOrigin enum for
	// LineString features.
	ClosureOpen ClosureOrigin = "open"
)

// Chain is an ordered sequence of Points of length >= 2 carrying a single
// contour Level (§3).
type Chain struct {
	Points []Point
	Level  float64

	// ClosureOrigin is set by chain.Assemble for natural closures
	// detected during assembly, and by package stitch: ClosureMerged on
	// every chain produced by a cross-tile merge (whether or not the
	// result is closed), ClosureForced and ClosurePostMergeSnap by the
	// post-pass. Chains handed from package tile to the stitcher carry
	// no ClosureOrigin. It is the zero value ("") otherwise.
	ClosureOrigin ClosureOrigin
}

// IsClosed reports whether c is closed per §3: length >= 3 and the
// distance between the first and last point is below eps.
// Complexity: O(1).
func (c Chain) IsClosed(eps float64) bool {
	if len(c.Points) < 3 {
		return false
	}
	return Distance(c.Points[0], c.Points[len(c.Points)-1]) < eps
}

// Head returns the last point of the chain. The chain's orientation
// (which end is "head") is arbitrary per §4.4 and must not be relied
// upon by consumers for anything but extension bookkeeping.
// Complexity: O(1).
func (c Chain) Head() Point { return c.Points[len(c.Points)-1] }

// Tail returns the first point of the chain.
// Complexity: O(1).
func (c Chain) Tail() Point { return c.Points[0] }

// Reversed returns a new Chain with points in reverse order, level and
// closure metadata preserved. Used by the stitcher to orient chains so
// their join points line up (§4.6 MERGE).
// Complexity: O(n).
func (c Chain) Reversed() Chain {
	out := make([]Point, len(c.Points))
	for i, p := range c.Points {
		out[len(out)-1-i] = p
	}
	return Chain{Points: out, Level: c.Level, ClosureOrigin: c.ClosureOrigin}
}

// Length returns the total Euclidean length of the polyline.
// Complexity: O(n).
func (c Chain) Length() float64 {
	var total float64
	for i := 1; i < len(c.Points); i++ {
		total += Distance(c.Points[i-1], c.Points[i])
	}
	return total
}

// FeatureType discriminates the tagged union of §6 Output feature schema.
type FeatureType string

const (
	// FeaturePolygon is a closed ring.
	FeaturePolygon FeatureType = "Polygon"
	// FeatureLineString is an open polyline.
	FeatureLineString FeatureType = "LineString"
)

// Feature is the tagged-union output of the pipeline (§3, §6): either a
// Polygon (closed ring) or a LineString (open chain). Struct tags mirror
// the §6 output schema field names so an external GeoJSON encoder
// (explicitly out of scope per §1) can consume Feature directly.
type Feature struct {
	Type          FeatureType   `json:"type"`
	Level         float64       `json:"level"`
	Coordinates   []Point       `json:"coordinates"`
	ClosureOrigin ClosureOrigin `json:"closure_origin"`
}

// FromChain converts a Chain into a Feature. If the chain IsClosed within
// eps, the ring is closed explicitly (first coordinate repeated as the
// last, per the §6 schema note "first and last coordinate are equal")
// and Type is FeaturePolygon; otherwise Type is FeatureLineString and
// ClosureOrigin is forced to ClosureOpen regardless of c.ClosureOrigin.
// Complexity: O(n).
func FromChain(c Chain, eps float64) Feature {
	if c.IsClosed(eps) {
		ring := make([]Point, len(c.Points), len(c.Points)+1)
		copy(ring, c.Points)
		if ring[0] != ring[len(ring)-1] {
			ring = append(ring, ring[0])
		}
		origin := c.ClosureOrigin
		if origin == "" {
			origin = ClosureNatural
		}
		return Feature{Type: FeaturePolygon, Level: c.Level, Coordinates: ring, ClosureOrigin: origin}
	}
	return Feature{Type: FeatureLineString, Level: c.Level, Coordinates: c.Points, ClosureOrigin: ClosureOpen}
}
