package stitch

import "errors"

// ErrInvalidOptions indicates a nonsensical Options combination, e.g.
// OverlapTolerance < Epsilon (§6: overlap_tolerance >= epsilon).
var ErrInvalidOptions = errors.New("stitch: invalid options")
