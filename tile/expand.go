package tile

import "github.com/katalvlaran/isoline/grid"

// expanded holds the neighborhood grid assembled for one tile, plus the
// offsets needed to translate its local coordinates back to the tile's
// own local frame (§4.5 step 4).
type expanded struct {
	g          *grid.Grid
	topOffset  int
	leftOffset int
}

// assembleExpanded concatenates any strips and corner blocks already
// published by neighbors around own (the tile's raw data), per §4.5
// step 4. When a strip is absent — the tile sits at the edge of the
// domain, or the neighbor has not arrived yet — no padding is added on
// that side, so the expanded grid can be smaller than T+2W.
func assembleExpanded(own *grid.Grid, e *edges, c *corners) expanded {
	rows, cols := own.Rows, own.Cols

	topW := len(e.top)
	bottomW := len(e.bottom)
	var leftW, rightW int
	if len(e.left) > 0 {
		leftW = len(e.left[0])
	}
	if len(e.right) > 0 {
		rightW = len(e.right[0])
	}

	totalRows := topW + rows + bottomW
	totalCols := leftW + cols + rightW

	out := make([][]float64, totalRows)
	for r := range out {
		out[r] = make([]float64, totalCols)
	}

	// center: own data.
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			out[topW+r][leftW+col] = own.At(r, col)
		}
	}

	// top / bottom edges (full own-width bands).
	copyBlock(out, e.top, topW, leftW)
	copyBlock(out, e.bottom, topW+rows, leftW)

	// left / right edges (full own-height bands).
	copyBlock(out, e.left, topW, 0)
	copyBlock(out, e.right, topW, leftW+cols)

	// corner blocks, with a clamp fallback when a diagonal neighbor has
	// not published but an adjacent edge has (approximate: the
	// bit-for-bit Required invariant of §4.5 is scoped to overlapping
	// edge bands, not corners without their own diagonal neighbor).
	placeCorner(out, c.topLeft, e.top, e.left, 0, 0, topW, leftW, true, true)
	placeCorner(out, c.topRight, e.top, e.right, 0, leftW+cols, topW, rightW, true, false)
	placeCorner(out, c.bottomLeft, e.bottom, e.left, topW+rows, 0, bottomW, leftW, false, true)
	placeCorner(out, c.bottomRight, e.bottom, e.right, topW+rows, leftW+cols, bottomW, rightW, false, false)

	g, err := grid.New(out)
	if err != nil {
		// own is at least 2x2 (grid.New in AddTile), so totalRows and
		// totalCols are too and this branch is defensive only: fall back
		// to the unexpanded tile data (offsets stay 0) rather than
		// propagate a shape error from an internal bookkeeping helper.
		return expanded{g: own, topOffset: 0, leftOffset: 0}
	}

	return expanded{g: g, topOffset: topW, leftOffset: leftW}
}

func copyBlock(dst [][]float64, src [][]float64, rowOff, colOff int) {
	for r, row := range src {
		for c, v := range row {
			dst[rowOff+r][colOff+c] = v
		}
	}
}

// placeCorner fills the rect dst[rowOff:rowOff+h][colOff:colOff+w] from
// block if present; otherwise it clamps from whichever adjacent edge is
// available, preferring the horizontal edge (top/bottom) replicated
// across columns, falling back to the vertical edge (left/right)
// replicated across rows, or leaving zeros if neither is available.
func placeCorner(dst [][]float64, block [][]float64, hEdge, vEdge [][]float64, rowOff, colOff, h, w int, topSide, leftSide bool) {
	if h <= 0 || w <= 0 {
		return
	}
	if len(block) > 0 {
		copyBlock(dst, block, rowOff, colOff)
		return
	}
	if len(hEdge) > 0 {
		// Replicate the nearest column of the horizontal edge strip.
		col := 0
		if !leftSide {
			col = len(hEdge[0]) - 1
		}
		for r := 0; r < h && r < len(hEdge); r++ {
			for cIdx := 0; cIdx < w; cIdx++ {
				dst[rowOff+r][colOff+cIdx] = hEdge[r][col]
			}
		}
		return
	}
	if len(vEdge) > 0 {
		row := 0
		if !topSide {
			row = len(vEdge) - 1
		}
		for r := 0; r < h; r++ {
			for cIdx := 0; cIdx < w && cIdx < len(vEdge[row]); cIdx++ {
				dst[rowOff+r][colOff+cIdx] = vEdge[row][cIdx]
			}
		}
	}
}
