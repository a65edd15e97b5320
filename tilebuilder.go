package isoline

import (
	"github.com/katalvlaran/isoline/geom"
	"github.com/katalvlaran/isoline/stitch"
	"github.com/katalvlaran/isoline/tile"
)

// TileBuilder implements the §6 incremental delivery mode: entry points
// 2-4 (`TileBuilder::new`, `add_tile`, `finalize`). It composes a
// tile.Builder (per-tile extraction, boundary strips, clip) with a
// stitch.Stitcher (cross-tile merge, global post-pass), mirroring
// builder.BuildGraph's single-orchestrator-over-sub-packages shape.
type TileBuilder struct {
	tiles   *tile.Builder
	stitch  *stitch.Stitcher
	opts    Options
	diag    Diagnostics
}

// NewTileBuilder constructs a TileBuilder for the given contour levels,
// with Options resolved from DefaultOptions plus any overrides (§6 entry
// point 2).
func NewTileBuilder(levels []float64, opts ...Option) (*TileBuilder, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	o := resolve(opts...)

	tileOpts := tile.DefaultOptions()
	tileOpts.Levels = levels
	tileOpts.TileSize = o.TileSize
	tileOpts.StripWidth = o.StripWidth
	tileOpts.Epsilon = o.Epsilon
	tileOpts.BucketSize = o.BucketSize
	tileOpts.TotalTileRows = o.TotalTileRows
	tileOpts.TotalTileCols = o.TotalTileCols

	stitchOpts := stitch.DefaultOptions()
	stitchOpts.Epsilon = o.Epsilon
	stitchOpts.OverlapTolerance = o.OverlapTolerance
	stitchOpts.ForcePolygonClosure = o.ForcePolygonClosure
	stitchOpts.MaxForceCloseDistance = o.MaxForceCloseDistance

	return &TileBuilder{
		tiles:  tile.New(tileOpts),
		stitch: stitch.New(stitchOpts),
		opts:   o,
	}, nil
}

// AddTile ingests one tile's raw sample data at tile coordinates
// (ti, tj): extracts and clips its contours (package tile), then merges
// them against already-arrived neighbors (package stitch), per §6 entry
// point 3. It returns the Features produced so far for this tile.
func (tb *TileBuilder) AddTile(ti, tj int, data [][]float64) ([]geom.Feature, error) {
	res, err := tb.tiles.AddTile(ti, tj, data)
	if err != nil {
		return nil, err
	}
	tb.diag.ReplacedInvalidSamples += res.Diagnostics.ReplacedInvalidSamples
	tb.diag.SkippedSegments += res.Diagnostics.SkippedSegments

	merged := tb.stitch.AddTileChains(tile.Coord{TI: ti, TJ: tj}, res.Chains)

	feats := make([]geom.Feature, len(merged))
	for i, c := range merged {
		feats[i] = geom.FromChain(c, tb.opts.Epsilon)
	}
	return feats, nil
}

// Finalize runs the global post-pass (§4.6: endpoint snapping, closed-
// ring reclassification, tiny-fragment removal, optional forced
// closure) over every chain stored across all AddTile calls so far, and
// returns the final Feature set plus aggregated Diagnostics (§6 entry
// point 4).
func (tb *TileBuilder) Finalize() ([]geom.Feature, Diagnostics, error) {
	byLevel, sdiag := tb.stitch.Finalize()
	tb.diag.Merges += sdiag.Merges
	tb.diag.ForcedClosures += sdiag.ForcedClosures
	tb.diag.SnappedEndpoints += sdiag.SnappedEndpoints
	tb.diag.DroppedFragments += sdiag.DroppedFragments

	var out []geom.Feature
	for _, chains := range byLevel {
		for _, c := range chains {
			out = append(out, geom.FromChain(c, tb.opts.Epsilon))
		}
	}
	return out, tb.diag, nil
}
