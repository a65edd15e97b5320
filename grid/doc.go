// Package grid defines the rectangular sample Grid (§3) and the §4.1
// Grid Preprocessor: pole normalization, antimeridian wrap, and
// invalid-value cleanup applied, in order, before contour extraction.
//
// Grid is immutable after construction; Preprocess returns a new Grid of
// identical shape rather than mutating its input. PreprocessEdges is the
// same pipeline parameterized by EdgeFlags, for callers holding a
// sub-grid of a larger domain (package tile) that must not treat a
// tile-local boundary as a pole or antimeridian seam.
package grid
