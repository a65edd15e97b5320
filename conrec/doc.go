// Package conrec implements the CONREC per-cell contour-extraction
// algorithm (§4.2): it converts a preprocessed grid of samples into a set
// of short line segments at a prescribed set of levels, resolving
// saddle-point ambiguity by splitting each cell into four triangles that
// share the cell-center value.
//
// The classical 16-case marching-squares table is deliberately not used;
// the center-split resolves the saddle ambiguity deterministically
// without a tie-breaking heuristic (§4.2 "Why triangles...").
package conrec
