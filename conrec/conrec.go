package conrec

import (
	"github.com/katalvlaran/isoline/geom"
	"github.com/katalvlaran/isoline/grid"
)

// class is the below/on/above classification of a triangle vertex
// relative to a contour level, within a given epsilon.
type class int

const (
	classBelow class = iota
	classOn
	classAbove
)

func classify(z, level, eps float64) class {
	switch {
	case z < level-eps:
		return classBelow
	case z > level+eps:
		return classAbove
	default:
		return classOn
	}
}

// vertex pairs a triangle corner's position with its sample value.
type vertex struct {
	p geom.Point
	z float64
}

// triangleVertices returns the four triangles of a cell decomposed
// around its center, in the fixed order (c0,c1,cc), (c1,c2,cc),
// (c2,c3,cc), (c3,c0,cc), matching §4.2 step 2.
func triangleVertices(c0, c1, c2, c3, cc vertex) [4][3]vertex {
	return [4][3]vertex{
		{c0, c1, cc},
		{c1, c2, cc},
		{c2, c3, cc},
		{c3, c0, cc},
	}
}

// interpolate returns the point on the edge a-b where the field equals
// level, per §4.2 edge interpolation: linear unless the endpoints are
// within eps of each other, in which case vertex a is returned
// unchanged.
func interpolate(a, b vertex, level, eps float64) geom.Point {
	if absf(a.z-b.z) < eps {
		return a.p
	}
	t := (level - a.z) / (b.z - a.z)
	return geom.Point{
		X: a.p.X + t*(b.p.X-a.p.X),
		Y: a.p.Y + t*(b.p.Y-a.p.Y),
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// triangleCase classifies a single triangle against level and emits at
// most one segment, per the ten-case table of §4.2.
func triangleCase(tri [3]vertex, level, eps float64) (geom.Point, geom.Point, bool) {
	var below, on, above []int
	cls := [3]class{}
	for i, v := range tri {
		cls[i] = classify(v.z, level, eps)
		switch cls[i] {
		case classBelow:
			below = append(below, i)
		case classOn:
			on = append(on, i)
		case classAbove:
			above = append(above, i)
		}
	}

	switch {
	case len(on) == 3:
		// all three on: ambiguous, ignored per §4.2.
		return geom.Point{}, geom.Point{}, false

	case len(on) == 2:
		// 2 on + 1 below/above: segment along the on-edge.
		return tri[on[0]].p, tri[on[1]].p, true

	case len(on) == 1:
		if len(below) == 1 && len(above) == 1 {
			// 1 below + 1 on + 1 above: on-vertex to interpolated
			// point on the below->above edge.
			onP := tri[on[0]].p
			cross := interpolate(tri[below[0]], tri[above[0]], level, eps)
			return onP, cross, true
		}
		// 2 below + 1 on (no above), or 2 above + 1 on (no below):
		// no crossing, no segment.
		return geom.Point{}, geom.Point{}, false

	default: // len(on) == 0
		switch {
		case len(below) == 2 && len(above) == 1:
			p1 := interpolate(tri[below[0]], tri[above[0]], level, eps)
			p2 := interpolate(tri[below[1]], tri[above[0]], level, eps)
			return p1, p2, true
		case len(below) == 1 && len(above) == 2:
			p1 := interpolate(tri[below[0]], tri[above[0]], level, eps)
			p2 := interpolate(tri[below[0]], tri[above[1]], level, eps)
			return p1, p2, true
		default:
			// 0 or 3 below (all same side): no segment.
			return geom.Point{}, geom.Point{}, false
		}
	}
}

// caseIndex computes the diagnostic-only classical 4-bit marching-squares
// case for a cell's four corners (bit set when corner >= level), per the
// GLOSSARY "Case index" entry. It does not influence which segments are
// emitted; the triangle decomposition above is authoritative.
func caseIndex(z0, z1, z2, z3, level float64) int {
	idx := 0
	if z0 >= level {
		idx |= 1
	}
	if z1 >= level {
		idx |= 2
	}
	if z2 >= level {
		idx |= 4
	}
	if z3 >= level {
		idx |= 8
	}
	return idx
}

// ComputeSegments converts g into a set of Segments at each of levels,
// per §4.2. A nil grid or empty levels yield an empty (nil) result, with
// no error; a grid built by grid.New is always at least 2x2, so these
// are the only degenerate inputs.
//
// Iteration order is deterministic: levels outer (in the order given),
// then cells in row-major order, then the four triangles in the fixed
// order of §4.2 step 2 — matching the ordering guarantee of spec §5.
//
// Complexity: O((Rows-1)*(Cols-1)*len(levels)) time, O(segments) memory.
func ComputeSegments(g *grid.Grid, levels []float64, eps float64) []geom.Segment {
	var out []geom.Segment
	if g == nil || len(levels) == 0 {
		return out
	}

	for _, level := range levels {
		for r := 0; r < g.Rows-1; r++ {
			for c := 0; c < g.Cols-1; c++ {
				z0 := g.At(r, c)
				z1 := g.At(r, c+1)
				z2 := g.At(r+1, c+1)
				z3 := g.At(r+1, c)
				zc := (z0 + z1 + z2 + z3) / 4

				v0 := vertex{p: geom.Point{X: float64(c), Y: float64(r)}, z: z0}
				v1 := vertex{p: geom.Point{X: float64(c + 1), Y: float64(r)}, z: z1}
				v2 := vertex{p: geom.Point{X: float64(c + 1), Y: float64(r + 1)}, z: z2}
				v3 := vertex{p: geom.Point{X: float64(c), Y: float64(r + 1)}, z: z3}
				vc := vertex{p: geom.Point{X: float64(c) + 0.5, Y: float64(r) + 0.5}, z: zc}

				tris := triangleVertices(v0, v1, v2, v3, vc)
				ci := caseIndex(z0, z1, z2, z3, level)

				for t, tri := range tris {
					p1, p2, ok := triangleCase(tri, level, eps)
					if !ok {
						continue
					}
					seg := geom.Segment{
						P1:    p1,
						P2:    p2,
						Level: level,
						Provenance: geom.CaseProvenance{
							Row: r, Col: c, Triangle: t, CaseIndex: ci,
						},
					}
					if seg.Validate(eps) == nil {
						out = append(out, seg)
					}
				}
			}
		}
	}

	return out
}
