package chain

// Diagnostics accumulates the recoverable-condition counters required by
// §7: numbers of skipped segments and, after an optional Glue-U pass,
// merges performed. The core never logs; these counts are the only
// record of recovered conditions, mirroring flow.Dinic's count-based
// (not log-based) reporting.
type Diagnostics struct {
	// SkippedSegments counts InvalidSegment conditions: non-finite
	// coordinates or zero/near-zero length, per §7.
	SkippedSegments int

	// GlueMerges counts chains joined by the Glue-U post-pass.
	GlueMerges int
}

func (d *Diagnostics) add(other Diagnostics) {
	d.SkippedSegments += other.SkippedSegments
	d.GlueMerges += other.GlueMerges
}
