package isoline

import "errors"

// Sentinel errors for the root isoline package. Callers branch on them
// with errors.Is (ErrNoLevels is returned as is; LoadOptionsYAML wraps
// ErrInvalidOptions with %w); the Diagnostics counters capture the
// recoverable conditions that do not warrant an error return.
var (
	// ErrInvalidOptions indicates a nonsensical Options combination: it
	// is returned by LoadOptionsYAML when a document sets both epsilon
	// and overlap_tolerance with OverlapTolerance < Epsilon. Other
	// out-of-range values are replaced by normalize, not rejected.
	ErrInvalidOptions = errors.New("isoline: invalid options")

	// ErrNoLevels indicates ComputeWhole or NewTileBuilder was called
	// with an empty levels slice; there is nothing to contour.
	ErrNoLevels = errors.New("isoline: no levels configured")
)
