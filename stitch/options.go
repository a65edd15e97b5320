package stitch

// Options configures a Stitcher, per §6.
//
// Fields:
//
//	Epsilon               - equality tolerance (§6 epsilon).
//	OverlapTolerance      - stitching/snap tolerance tau; must be >=
//	                        Epsilon (§6 overlap_tolerance, default 1e-4).
//	ForcePolygonClosure   - enables forced closure (§6 force_polygon_closure).
//	MaxForceCloseDistance - cap for forced-closure edges (§6
//	                        max_force_close_distance, default 10*Epsilon).
type Options struct {
	Epsilon               float64
	OverlapTolerance      float64
	ForcePolygonClosure   bool
	MaxForceCloseDistance float64
}

// DefaultOptions returns the §6 defaults: Epsilon=1e-4,
// OverlapTolerance=1e-4, ForcePolygonClosure=false,
// MaxForceCloseDistance=10*Epsilon.
func DefaultOptions() Options {
	eps := 1e-4
	return Options{
		Epsilon:               eps,
		OverlapTolerance:      eps,
		ForcePolygonClosure:   false,
		MaxForceCloseDistance: 10 * eps,
	}
}

func (o Options) normalize() Options {
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultOptions().Epsilon
	}
	if o.OverlapTolerance < o.Epsilon {
		o.OverlapTolerance = o.Epsilon
	}
	if o.MaxForceCloseDistance <= 0 {
		o.MaxForceCloseDistance = 10 * o.Epsilon
	}
	return o
}
