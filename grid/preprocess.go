package grid

import "math"

// EdgeFlags marks which sides of a grid passed to PreprocessEdges
// actually coincide with the domain's true outer boundary. A side left
// false is presumed to be an internal cut — a sub-grid extracted out of
// a larger domain (e.g. a tile's locally expanded neighborhood) — and is
// passed through untouched by pole normalization and antimeridian wrap;
// only invalid-value cleanup still applies to it.
type EdgeFlags struct {
	Top, Bottom, Left, Right bool
}

// AllEdges reports EdgeFlags for a grid that is itself the whole domain.
func AllEdges() EdgeFlags {
	return EdgeFlags{Top: true, Bottom: true, Left: true, Right: true}
}

// Preprocess normalizes g as the entire domain, per §4.1: every side is
// treated as a true edge. Callers that hold only a sub-grid of a larger
// domain (package tile's expanded neighborhoods) must use PreprocessEdges
// instead, with EdgeFlags computed from their position in the domain.
func Preprocess(g *Grid) *Grid {
	return PreprocessEdges(g, AllEdges())
}

// PreprocessEdges normalizes g per §4.1, in order, and returns a new Grid
// of identical shape; g itself is never mutated.
//
//  1. Pole normalization: the first row is replaced by the arithmetic
//     mean of its finite values if edges.Top, and likewise the last row
//     if edges.Bottom. A row with no finite value is left unchanged. A
//     side with its flag false is left untouched by this step.
//  2. Antimeridian wrap: for each row, the first column is folded
//     against the last (averaging finite ends, or copying across a sole
//     finite one), only when edges.Left and edges.Right are both true;
//     with either flag false the step leaves every column unchanged.
//  3. Invalid-value cleanup: any non-finite sample that survives steps 1
//     and 2 is replaced by 0, regardless of edges.
//
// Complexity: O(Rows*Cols) time, O(Rows*Cols) memory for the result.
func PreprocessEdges(g *Grid, edges EdgeFlags) *Grid {
	out := g.Clone()
	values := out.mutableValues()

	normalizePoles(values, edges.Top, edges.Bottom)
	wrapAntimeridian(values, edges.Left, edges.Right)
	cleanupInvalid(values)

	return out
}

// normalizePoles replaces the first row with the mean of its finite
// values if top, and the last row if bottom, leaving all-non-finite rows
// and non-designated sides untouched. A single-row grid that is marked
// as both its own top and bottom is normalized once.
func normalizePoles(values [][]float64, top, bottom bool) {
	last := len(values) - 1
	if top {
		normalizeRow(values[0])
	}
	if bottom && last != 0 {
		normalizeRow(values[last])
	} else if bottom && !top {
		normalizeRow(values[0])
	}
}

func normalizeRow(row []float64) {
	var sum float64
	var count int
	for _, v := range row {
		if isFinite(v) {
			sum += v
			count++
		}
	}
	if count == 0 {
		return // no finite value; row left unchanged per §4.1 step 1.
	}
	mean := sum / float64(count)
	for i := range row {
		row[i] = mean
	}
}

// wrapAntimeridian sets the first and last column of each row per §4.1
// step 2, only when both left and right mark true domain edges (the
// grid's own first and last columns are then the seam pair): both ends
// average together when both are finite; a non-finite end copies from
// the finite one instead. If either side is an internal cut, no column
// is changed.
func wrapAntimeridian(values [][]float64, left, right bool) {
	if !left || !right {
		return
	}
	lastCol := len(values[0]) - 1
	for _, row := range values {
		l, r := row[0], row[lastCol]
		lOK, rOK := isFinite(l), isFinite(r)
		switch {
		case lOK && rOK:
			avg := (l + r) / 2
			if left {
				row[0] = avg
			}
			if right {
				row[lastCol] = avg
			}
		case lOK && right:
			row[lastCol] = l
		case rOK && left:
			row[0] = r
		}
	}
}

// cleanupInvalid replaces any remaining non-finite sample with 0, per
// §4.1 step 3.
func cleanupInvalid(values [][]float64) {
	for _, row := range values {
		for c, v := range row {
			if !isFinite(v) {
				row[c] = 0
			}
		}
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
