package grid

// Grid is a rectangular 2-D array of real numbers, Rows x Cols,
// Rows >= 2 and Cols >= 2 (§3). It is immutable after construction.
type Grid struct {
	Rows, Cols int
	values     [][]float64
}

// New constructs a Grid from a non-empty, rectangular 2-D slice. It
// deep-copies the input so later external mutation of values cannot
// affect the Grid, mirroring gridgraph.NewGridGraph's discipline.
//
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrTooSmall if either
// dimension is below 2.
// Complexity: O(Rows*Cols) time and memory.
func New(values [][]float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	if rows < 2 || cols < 2 {
		return nil, ErrTooSmall
	}

	cp := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		cp[r] = make([]float64, cols)
		copy(cp[r], values[r])
	}

	return &Grid{Rows: rows, Cols: cols, values: cp}, nil
}

// At returns the sample value at (row, col). Callers must ensure bounds;
// At does not validate, matching the hot-path discipline of
// gridgraph.GridGraph.InBounds being a caller-side check.
// Complexity: O(1).
func (g *Grid) At(row, col int) float64 {
	return g.values[row][col]
}

// Row returns a copy of the given row. Complexity: O(Cols).
func (g *Grid) Row(row int) []float64 {
	out := make([]float64, g.Cols)
	copy(out, g.values[row])
	return out
}

// Col returns a copy of the given column. Complexity: O(Rows).
func (g *Grid) Col(col int) []float64 {
	out := make([]float64, g.Rows)
	for r := 0; r < g.Rows; r++ {
		out[r] = g.values[r][col]
	}
	return out
}

// Clone returns a deep copy of g.
// Complexity: O(Rows*Cols).
func (g *Grid) Clone() *Grid {
	cp := make([][]float64, g.Rows)
	for r := range cp {
		cp[r] = make([]float64, g.Cols)
		copy(cp[r], g.values[r])
	}
	return &Grid{Rows: g.Rows, Cols: g.Cols, values: cp}
}

// mutableValues exposes the backing array for in-package mutation during
// Preprocess, which builds its result via Clone then edits in place
// before returning; it is never exposed outside the package.
func (g *Grid) mutableValues() [][]float64 { return g.values }
