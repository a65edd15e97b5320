package tile

import "github.com/katalvlaran/isoline/grid"

// publishStrips copies the boundary bands of g (the tile just added at
// coord) into the haloStore slots of its four edge neighbors and four
// diagonal neighbors, per §4.5 step 3 and the corner-block extension
// this package needs for the "clip-after-overlap" variant (doc.go).
//
// Strips are copied by value (§3 "Strips are by value, not by
// reference"), so later mutation of g cannot perturb a neighbor's
// already-published view.
func publishStrips(halo *haloStore, coord Coord, g *grid.Grid, w int) {
	rows, cols := g.Rows, g.Cols
	topW := min(w, rows)
	leftW := min(w, cols)

	topRows := block(g, 0, topW, 0, cols)
	bottomRows := block(g, rows-topW, rows, 0, cols)
	leftCols := block(g, 0, rows, 0, leftW)
	rightCols := block(g, 0, rows, cols-leftW, cols)

	// Edge neighbors: this tile's top band becomes the "bottom" strip
	// expected by the tile above, and so on.
	halo.edgesFor(Coord{coord.TI - 1, coord.TJ}).bottom = topRows
	halo.edgesFor(Coord{coord.TI + 1, coord.TJ}).top = bottomRows
	halo.edgesFor(Coord{coord.TI, coord.TJ - 1}).right = leftCols
	halo.edgesFor(Coord{coord.TI, coord.TJ + 1}).left = rightCols

	// Diagonal neighbors: this tile's own corner WxW block becomes the
	// opposite corner of the diagonal neighbor's halo.
	topLeftBlock := block(g, 0, topW, 0, leftW)
	topRightBlock := block(g, 0, topW, cols-leftW, cols)
	bottomLeftBlock := block(g, rows-topW, rows, 0, leftW)
	bottomRightBlock := block(g, rows-topW, rows, cols-leftW, cols)

	halo.cornersFor(Coord{coord.TI - 1, coord.TJ - 1}).bottomRight = topLeftBlock
	halo.cornersFor(Coord{coord.TI - 1, coord.TJ + 1}).bottomLeft = topRightBlock
	halo.cornersFor(Coord{coord.TI + 1, coord.TJ - 1}).topRight = bottomLeftBlock
	halo.cornersFor(Coord{coord.TI + 1, coord.TJ + 1}).topLeft = bottomRightBlock
}

// block extracts the sub-matrix g[r0:r1][c0:c1] as a fresh, independent
// copy.
func block(g *grid.Grid, r0, r1, c0, c1 int) [][]float64 {
	if r0 >= r1 || c0 >= c1 {
		return nil
	}
	out := make([][]float64, r1-r0)
	for r := r0; r < r1; r++ {
		row := make([]float64, c1-c0)
		for c := c0; c < c1; c++ {
			row[c-c0] = g.At(r, c)
		}
		out[r-r0] = row
	}
	return out
}
