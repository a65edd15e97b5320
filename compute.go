package isoline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/isoline/chain"
	"github.com/katalvlaran/isoline/conrec"
	"github.com/katalvlaran/isoline/geom"
	gridpkg "github.com/katalvlaran/isoline/grid"
)

// Diagnostics aggregates the recoverable-condition counters of §7 across
// a single ComputeWhole call or a TileBuilder's lifetime.
type Diagnostics struct {
	// SkippedSegments counts segments chain.Assemble skipped as invalid
	// (chain.Diagnostics.SkippedSegments); degenerate segments that
	// CONREC itself drops are not counted.
	SkippedSegments int
	// GlueMerges counts open chains joined by the Glue-U pass.
	GlueMerges int
	// ReplacedInvalidSamples counts NaN/Inf grid samples replaced with 0
	// before extraction (tile.Diagnostics.ReplacedInvalidSamples).
	ReplacedInvalidSamples int
	// Merges counts cross-tile chain merges performed by the stitcher.
	Merges int
	// ForcedClosures counts chains closed by the force_polygon_closure
	// policy.
	ForcedClosures int
	// SnappedEndpoints counts endpoints adjusted by the global
	// endpoint-snapping post-pass.
	SnappedEndpoints int
	// DroppedFragments counts tiny open chains removed by the global
	// post-pass.
	DroppedFragments int
}

// ComputeWhole runs §4.1 -> §4.2 -> §4.4 -> optional Glue-U over the
// whole grid in one pass (§6 entry point 1). Levels are extracted
// concurrently via errgroup, one goroutine per level, since CONREC and
// chain assembly are independent per level (§5); the per-level results
// are combined in the caller-supplied level order for determinism.
func ComputeWhole(ctx context.Context, values [][]float64, levels []float64, opts ...Option) ([]geom.Feature, Diagnostics, error) {
	if len(levels) == 0 {
		return nil, Diagnostics{}, ErrNoLevels
	}
	o := resolve(opts...)

	g, err := gridpkg.New(values)
	if err != nil {
		return nil, Diagnostics{}, err
	}
	prepped := gridpkg.Preprocess(g)

	results := make([][]geom.Feature, len(levels))
	diags := make([]chain.Diagnostics, len(levels))

	grp, grpCtx := errgroup.WithContext(ctx)
	for i, lvl := range levels {
		i, lvl := i, lvl
		grp.Go(func() error {
			if err := grpCtx.Err(); err != nil {
				return err
			}
			segs := conrec.ComputeSegments(prepped, []float64{lvl}, o.Epsilon)

			chainOpts := chain.DefaultOptions()
			chainOpts.Epsilon = o.Epsilon
			chainOpts.BucketSize = o.BucketSize
			chainOpts.GlueRings = o.GlueRings
			chainOpts.GlueMuFactor = o.GlueMuFactor

			res := chain.Assemble(segs, chainOpts)
			diags[i] = res.Diagnostics

			chains := res.ChainsByLevel[lvl]
			feats := make([]geom.Feature, len(chains))
			for j, c := range chains {
				feats[j] = geom.FromChain(c, o.Epsilon)
			}
			results[i] = feats
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, Diagnostics{}, err
	}

	var out []geom.Feature
	var agg Diagnostics
	for i := range levels {
		out = append(out, results[i]...)
		agg.SkippedSegments += diags[i].SkippedSegments
		agg.GlueMerges += diags[i].GlueMerges
	}
	return out, agg, nil
}
