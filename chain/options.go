package chain

// Options configures Assemble (§4.4).
//
// Fields:
//
//	Epsilon      - equality / endpoint-matching tolerance (§6 epsilon).
//	BucketSize   - spatial-index bucket size (§6 bucket_size).
//	GlueRings    - if true, runs the Glue-U post-pass (§4.4) after the
//	               main extension pass, merging open chains into longer
//	               chains or closed rings.
//	Resolution   - the grid's cell size, used to scale the Glue-U merge
//	               radius mu = sqrt(2) * Resolution * GlueMuFactor.
//	GlueMuFactor - scales the Glue-U merge radius (§6 glue_mu_factor).
type Options struct {
	Epsilon      float64
	BucketSize   float64
	GlueRings    bool
	Resolution   float64
	GlueMuFactor float64
}

// DefaultOptions returns Options pre-populated with the §6 defaults:
// Epsilon=1e-4, BucketSize=1, GlueRings=false, Resolution=1,
// GlueMuFactor=1.5.
func DefaultOptions() Options {
	return Options{
		Epsilon:      1e-4,
		BucketSize:   1,
		GlueRings:    false,
		Resolution:   1,
		GlueMuFactor: 1.5,
	}
}

// normalize fills in zero-valued fields with their defaults, mirroring
// flow.FlowOptions.normalize()'s "fill defaults before use" discipline.
func (o Options) normalize() Options {
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultOptions().Epsilon
	}
	if o.BucketSize <= 0 {
		o.BucketSize = DefaultOptions().BucketSize
	}
	if o.Resolution <= 0 {
		o.Resolution = DefaultOptions().Resolution
	}
	if o.GlueMuFactor <= 0 {
		o.GlueMuFactor = DefaultOptions().GlueMuFactor
	}
	return o
}

// glueMu returns the Glue-U merge radius for these (normalized) options.
func (o Options) glueMu() float64 {
	const sqrt2 = 1.4142135623730951
	return sqrt2 * o.Resolution * o.GlueMuFactor
}
