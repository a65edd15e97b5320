package tile

import "errors"

// Sentinel errors for the tile builder. Per §7, InvalidShape is fatal to
// the call and mutates no state; everything else is recovered locally.
var (
	// ErrInvalidShape indicates a jagged tile (non-rectangular rows) or
	// a tile with fewer than 2 rows or columns.
	ErrInvalidShape = errors.New("tile: invalid or non-rectangular tile data")

	// ErrInvalidOptions indicates a nonsensical Options combination
	// (tile_size < 2, strip_width < 1). It is not returned by this
	// package: normalize replaces such values with their defaults.
	ErrInvalidOptions = errors.New("tile: invalid options")
)
