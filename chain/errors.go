package chain

import "errors"

// Sentinel errors for chain assembly. Per §7, InvalidSegment conditions
// are recovered locally (the segment is skipped and counted in
// Diagnostics); they are never returned as errors. The sentinels below
// are reserved for construction-time misuse of Options.
var (
	// ErrInvalidOptions indicates a nonsensical Options combination
	// (e.g. a non-positive Resolution) supplied to Assemble.
	ErrInvalidOptions = errors.New("chain: invalid options")
)
