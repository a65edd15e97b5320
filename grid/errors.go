package grid

import "errors"

// Sentinel errors for grid construction and validation.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrTooSmall indicates dimensions below the §3 minimum of 2x2.
	ErrTooSmall = errors.New("grid: rows and cols must each be >= 2")
)
