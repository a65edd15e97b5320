// Package stitch implements the §4.6 Cross-Tile Stitcher: given chains
// produced by one tile (package tile) and the previously stored chains
// of its four axis-aligned neighbors, it produces merged chains and
// stores the updated chain set for that tile. A separate global
// post-pass (Finalize) runs endpoint snapping, closed-ring
// reclassification, and tiny-fragment removal over the union of all
// stored chains.
package stitch
