// Package tile implements the §4.5 Tile Builder: it extracts contours
// from one tile at a time, maintaining boundary overlap data (Boundary
// Strips, §3) shared with neighbors so that geometry produced near a
// shared edge coincides bit-for-bit with what a whole-grid pass would
// produce, per the §4.5 Required invariant.
//
// Per §9, this package implements the "clip-after-overlap" variant:
// assemble a (T+2W)-sized neighborhood (edges and corner blocks) around
// the tile's own data, run the grid.PreprocessEdges -> conrec.ComputeSegments
// -> chain.Assemble pipeline once over that expanded neighborhood, then
// clip the resulting chains to the tile's own bounding box with
// Liang-Barsky. grid.PreprocessEdges is told which sides of the expanded
// neighborhood are the tile-grid's true outer edge (Options.TotalTileRows/
// TotalTileCols), so a tile-local boundary produced only by a neighbor
// that hasn't published yet is never mistaken for a pole or antimeridian
// seam. This is the variant that makes the §8 "tile
// equivalence" property hold; the "store strips only, stitch per edge"
// variant is redundant with it and is not implemented.
package tile
