package tile

import (
	"fmt"
	"math"

	"github.com/katalvlaran/isoline/chain"
	"github.com/katalvlaran/isoline/conrec"
	"github.com/katalvlaran/isoline/geom"
	"github.com/katalvlaran/isoline/grid"
)

// Diagnostics accumulates per-tile recoverable-condition counts, per §7.
type Diagnostics struct {
	// ReplacedInvalidSamples counts NaN/Inf samples replaced by 0 at
	// tile ingest (§4.5 step 1).
	ReplacedInvalidSamples int
	// SkippedSegments counts invalid segments dropped during this
	// tile's chain assembly pass.
	SkippedSegments int
}

// AddResult is the outcome of Builder.AddTile: the clipped, globally-
// lifted chains produced for this tile, ready to be handed to the
// cross-tile stitcher (§4.5 step 8), plus diagnostics.
type AddResult struct {
	Chains      []geom.Chain
	Diagnostics Diagnostics
}

// Builder implements the §4.5 Tile Builder. It is not safe for
// concurrent AddTile calls on the same Builder from multiple goroutines
// without external synchronization (§5 shared-resource policy); no
// package in this module runs tiles in parallel.
type Builder struct {
	opts  Options
	tiles map[Coord]*tileRecord
	halo  *haloStore
}

// New constructs a Builder with the given Options, normalized per §6
// defaults.
func New(opts Options) *Builder {
	return &Builder{
		opts:  opts.normalize(),
		tiles: make(map[Coord]*tileRecord),
		halo:  newHaloStore(),
	}
}

// AddTile ingests one tile's raw sample data at tile coordinates
// (ti, tj), runs §4.1 -> §4.2 -> §4.4 over its expanded neighborhood
// with closure forcing off, lifts the result to global coordinates, and
// clips it to the tile's own bounding box (§4.5 steps 1-7). Pole
// normalization and antimeridian wrap (§4.1) are applied only to the
// sides of the expanded neighborhood that coincide with the tile-grid's
// true outer edge, per Options.TotalTileRows/TotalTileCols, never to a
// tile-local boundary produced by a neighbor that hasn't arrived yet.
//
// Returns ErrInvalidShape if data is empty, jagged, or has fewer than 2
// rows or columns; the Builder's state is left unmutated in that case.
func (b *Builder) AddTile(ti, tj int, data [][]float64) (AddResult, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return AddResult{}, fmt.Errorf("AddTile(%d,%d): %w", ti, tj, ErrInvalidShape)
	}
	cols := len(data[0])
	for _, row := range data {
		if len(row) != cols {
			return AddResult{}, fmt.Errorf("AddTile(%d,%d): %w", ti, tj, ErrInvalidShape)
		}
	}

	var diag Diagnostics
	cleaned, replaced := replaceInvalid(data)
	diag.ReplacedInvalidSamples = replaced

	own, err := grid.New(cleaned)
	if err != nil {
		return AddResult{}, fmt.Errorf("AddTile(%d,%d): %w", ti, tj, ErrInvalidShape)
	}

	coord := Coord{TI: ti, TJ: tj}
	b.tiles[coord] = &tileRecord{data: own}

	publishStrips(b.halo, coord, own, b.opts.StripWidth)

	exp := assembleExpanded(own, b.halo.edgesFor(coord), b.halo.cornersFor(coord))

	edgeFlags := grid.EdgeFlags{
		Top:    ti == 0,
		Bottom: ti == b.opts.TotalTileRows-1,
		Left:   tj == 0,
		Right:  tj == b.opts.TotalTileCols-1,
	}
	preprocessed := grid.PreprocessEdges(exp.g, edgeFlags)
	segs := conrec.ComputeSegments(preprocessed, b.opts.Levels, b.opts.Epsilon)

	assembleOpts := chain.DefaultOptions()
	assembleOpts.Epsilon = b.opts.Epsilon
	assembleOpts.BucketSize = b.opts.BucketSize
	assembleOpts.GlueRings = false // closure forcing off, per §4.5 step 5

	res := chain.Assemble(segs, assembleOpts)
	diag.SkippedSegments = res.Diagnostics.SkippedSegments

	T := float64(b.opts.TileSize)
	tileBox := box{
		minX: float64(tj) * T,
		maxX: float64(tj+1) * T,
		minY: float64(ti) * T,
		maxY: float64(ti+1) * T,
	}

	var out []geom.Chain
	for _, chains := range res.ChainsByLevel {
		for _, c := range chains {
			global := liftChain(c.Points, exp.topOffset, exp.leftOffset, ti, tj, b.opts.TileSize)
			for _, sub := range clipChainToBox(global, tileBox) {
				out = append(out, geom.Chain{Points: sub, Level: c.Level})
			}
		}
	}

	return AddResult{Chains: out, Diagnostics: diag}, nil
}

// liftChain translates expanded-local points to global coordinates, per
// §4.5 step 6: x_global = x_local - leftOffset + tj*T,
// y_global = y_local - topOffset + ti*T.
func liftChain(points []geom.Point, topOffset, leftOffset, ti, tj, tileSize int) []geom.Point {
	out := make([]geom.Point, len(points))
	for i, p := range points {
		out[i] = geom.Point{
			X: p.X - float64(leftOffset) + float64(tj*tileSize),
			Y: p.Y - float64(topOffset) + float64(ti*tileSize),
		}
	}
	return out
}

// replaceInvalid returns a copy of data with every NaN/Inf sample
// replaced by 0, per §4.5 step 1, plus the count replaced.
func replaceInvalid(data [][]float64) ([][]float64, int) {
	out := make([][]float64, len(data))
	count := 0
	for r, row := range data {
		newRow := make([]float64, len(row))
		for c, v := range row {
			if isFinite(v) {
				newRow[c] = v
			} else {
				newRow[c] = 0
				count++
			}
		}
		out[r] = newRow
	}
	return out, count
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
