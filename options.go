package isoline

// Options configures both ComputeWhole and TileBuilder, per §6. It
// gathers the sub-package Options (conrec/chain epsilon, tile strip
// geometry, stitch tolerances) into one value so callers tune a single
// struct instead of wiring four.
//
// Fields:
//
//	Epsilon               - equality/interpolation tolerance (§6 epsilon).
//	OverlapTolerance      - stitching/snap tolerance tau; must be >=
//	                        Epsilon (§6 overlap_tolerance, default 1e-4).
//	TileSize              - T, the nominal tile side (§6 tile_size).
//	StripWidth            - W, the boundary-strip width (§6 strip_width).
//	ForcePolygonClosure   - enables forced closure (§6 force_polygon_closure).
//	MaxForceCloseDistance - cap for forced-closure edges (§6
//	                        max_force_close_distance, default 10*Epsilon).
//	BucketSize            - spatial-index bucket size (§6 bucket_size).
//	GlueRings             - enables the Glue-U open-chain merge pass (§4.4).
//	GlueMuFactor          - scales the Glue-U merge radius (§6 glue_mu_factor).
//	TotalTileRows         - TileBuilder's total tile-grid extent, rows
//	                        (default 1; set for any domain split into
//	                        more than one tile row, so AddTile can tell
//	                        the domain's true bottom edge from a tile
//	                        whose neighbor simply hasn't arrived yet).
//	TotalTileCols         - same, for columns.
type Options struct {
	Epsilon               float64
	OverlapTolerance      float64
	TileSize              int
	StripWidth            int
	ForcePolygonClosure   bool
	MaxForceCloseDistance float64
	BucketSize            float64
	GlueRings             bool
	GlueMuFactor          float64
	TotalTileRows         int
	TotalTileCols         int
}

// DefaultOptions returns the §6 defaults shared by ComputeWhole and
// TileBuilder: Epsilon=1e-4, OverlapTolerance=1e-4, TileSize=64,
// StripWidth=2, ForcePolygonClosure=false, MaxForceCloseDistance=1e-3,
// BucketSize=1, GlueRings=false, GlueMuFactor=1.5, TotalTileRows=1,
// TotalTileCols=1.
func DefaultOptions() Options {
	eps := 1e-4
	return Options{
		Epsilon:               eps,
		OverlapTolerance:      eps,
		TileSize:              64,
		StripWidth:            2,
		ForcePolygonClosure:   false,
		MaxForceCloseDistance: 10 * eps,
		BucketSize:            1,
		GlueRings:             false,
		GlueMuFactor:          1.5,
		TotalTileRows:         1,
		TotalTileCols:         1,
	}
}

// Option customizes an Options value, in the functional-options idiom.
type Option func(*Options)

// WithEpsilon overrides the equality/interpolation tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithOverlapTolerance overrides the stitching/snap tolerance tau.
func WithOverlapTolerance(tau float64) Option {
	return func(o *Options) { o.OverlapTolerance = tau }
}

// WithTileGeometry overrides the tile size and boundary-strip width.
func WithTileGeometry(tileSize, stripWidth int) Option {
	return func(o *Options) {
		o.TileSize = tileSize
		o.StripWidth = stripWidth
	}
}

// WithForcedClosure enables forced polygon closure within maxDist.
func WithForcedClosure(maxDist float64) Option {
	return func(o *Options) {
		o.ForcePolygonClosure = true
		o.MaxForceCloseDistance = maxDist
	}
}

// WithBucketSize overrides the spatial-index bucket size.
func WithBucketSize(size float64) Option {
	return func(o *Options) { o.BucketSize = size }
}

// WithGlueRings enables the Glue-U open-chain merge pass, scaled by
// muFactor (§6 glue_mu_factor).
func WithGlueRings(muFactor float64) Option {
	return func(o *Options) {
		o.GlueRings = true
		o.GlueMuFactor = muFactor
	}
}

// WithTotalTileGrid tells TileBuilder the full tile-grid extent (rows,
// cols), so AddTile can recognize a tile's genuine domain-boundary edges
// instead of treating a merely tile-local one as a pole or antimeridian
// seam. Required for correct §4.1 behavior whenever a domain is split
// into more than one tile row or column.
func WithTotalTileGrid(rows, cols int) Option {
	return func(o *Options) {
		o.TotalTileRows = rows
		o.TotalTileCols = cols
	}
}

// resolve applies opts over DefaultOptions and normalizes the result,
// mirroring the builderConfig resolution pattern: functional options
// mutate a working copy, then defaults fill in anything left at its
// zero value.
func resolve(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o.normalize()
}

func (o Options) normalize() Options {
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultOptions().Epsilon
	}
	if o.OverlapTolerance < o.Epsilon {
		o.OverlapTolerance = o.Epsilon
	}
	if o.TileSize < 2 {
		o.TileSize = 64
	}
	if o.StripWidth < 1 {
		o.StripWidth = 2
	}
	if o.MaxForceCloseDistance <= 0 {
		o.MaxForceCloseDistance = 10 * o.Epsilon
	}
	if o.BucketSize <= 0 {
		o.BucketSize = 1
	}
	if o.GlueMuFactor <= 0 {
		o.GlueMuFactor = 1.5
	}
	if o.TotalTileRows < 1 {
		o.TotalTileRows = 1
	}
	if o.TotalTileCols < 1 {
		o.TotalTileCols = 1
	}
	return o
}
