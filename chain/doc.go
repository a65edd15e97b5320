// Package chain implements the §4.4 Chain Assembler: it joins the
// unordered short segments produced by package conrec, per level, into
// maximal polylines — open chains and closed rings — using a
// spatialindex.Index and tolerance-based endpoint matching.
//
// It also implements the optional Glue-U post-pass, which merges open
// chains whose endpoints are within a (looser) merge radius into longer
// chains or closed rings, for callers that request closed-ring output.
package chain
