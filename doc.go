// Package isoline computes isolines (contour lines) from a 2-D scalar
// grid, either in one pass over the whole grid or incrementally, tile
// by tile, with automatic stitching across tile boundaries.
//
// What is isoline?
//
//	A small, dependency-light pipeline that brings together:
//
//	  • CONREC-style per-cell triangle decomposition (package conrec)
//	  • Tolerance-aware chain assembly into polylines/rings (package chain)
//	  • A tiled incremental builder with boundary-strip sharing and
//	    cross-tile stitching for grids too large to hold at once
//	    (packages tile and stitch)
//
// Two entry points cover the two delivery modes:
//
//	ComputeWhole(grid, levels, opts)  — single grid, single pass
//	NewTileBuilder(levels, opts)      — AddTile/Finalize, incremental
//
// Under the hood, everything is organized under focused subpackages:
//
//	geom/        — Point, Segment, Chain, Feature value types
//	grid/        — Grid type + pole/antimeridian/invalid-value preprocessing
//	conrec/      — per-cell contour extraction
//	spatialindex/— uniform grid-hash bucket index for tolerance matching
//	chain/       — chain assembly + Glue-U ring closure
//	tile/        — per-tile extraction, boundary strips, expanded-grid clip
//	stitch/      — cross-tile overlap/merge + global post-pass
//
// Quick ASCII example, a single closed ring around one grid peak:
//
//	  . . . .
//	  . +-+ .
//	  . | | .
//	  . +-+ .
//	  . . . .
//
// See the module root documentation for the full external interface and
// option reference.
package isoline
