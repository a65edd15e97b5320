// Package spatialindex implements the uniform grid-hash bucket index of
// §4.3: a point-to-nearby-segments lookup used by the chain assembler to
// find candidate continuations for a chain tip without an O(n^2) scan.
package spatialindex
