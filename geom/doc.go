// Package geom defines the value types shared by every stage of the
// contouring pipeline: Point, Segment, Chain, and the output Feature.
//
// All types are immutable value objects once constructed; only the
// chain and stitch packages mutate Chain point slices in place, during
// assembly and the stitching post-pass.
//
// Equality and hashing are epsilon-aware: two points within a configured
// Epsilon are considered coincident by Equal, and Key quantizes to six
// decimal places so map-based indexing agrees with Equal at typical
// tolerances.
package geom

import "errors"

// Sentinel errors for geom validation. Only InvalidShape-class errors in
// other packages wrap these; geom itself never logs or panics.
var (
	// ErrDegenerateSegment indicates a segment whose endpoints coincide
	// within 0.1*epsilon, violating the §3 Segment invariant.
	ErrDegenerateSegment = errors.New("geom: segment endpoints coincide")

	// ErrShortChain indicates a chain with fewer than two points.
	ErrShortChain = errors.New("geom: chain must have at least two points")
)
