package tile

import "github.com/katalvlaran/isoline/geom"

// box is an axis-aligned rectangle in global coordinates: the tile's
// own bounding box per §4.5 step 7.
type box struct {
	minX, maxX, minY, maxY float64
}

// liangBarsky clips the segment (x0,y0)-(x1,y1) to b, returning the
// entry/exit parameters t0 <= t1 in [0,1] along the segment, or
// ok=false if the segment does not intersect b at all.
func liangBarsky(x0, y0, x1, y1 float64, b box) (t0, t1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - b.minX, b.maxX - x0, y0 - b.minY, b.maxY - y0}

	t0, t1 = 0, 1
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, false // parallel to this edge and outside
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	return t0, t1, t0 <= t1
}

func lerp(a, b geom.Point, t float64) geom.Point {
	return geom.Point{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
	}
}

// clipChainToBox clips a polyline to b per §4.5 step 7, splitting into
// sub-chains at clip discontinuities (runs of the original polyline that
// leave and re-enter the box produce separate sub-chains).
//
// Complexity: O(len(points)).
func clipChainToBox(points []geom.Point, b box) [][]geom.Point {
	var result [][]geom.Point
	var current []geom.Point

	flush := func() {
		if len(current) >= 2 {
			result = append(result, current)
		}
		current = nil
	}

	for i := 1; i < len(points); i++ {
		p0, p1 := points[i-1], points[i]
		t0, t1, ok := liangBarsky(p0.X, p0.Y, p1.X, p1.Y, b)
		if !ok {
			flush()
			continue
		}

		cs := lerp(p0, p1, t0)
		ce := lerp(p0, p1, t1)

		if len(current) == 0 {
			current = append(current, cs)
		} else if geom.Distance(current[len(current)-1], cs) > 1e-9 {
			// Discontinuity: the clip re-entered away from where the
			// previous run left off.
			flush()
			current = append(current, cs)
		}
		if geom.Distance(cs, ce) > 1e-12 {
			current = append(current, ce)
		}
	}
	flush()

	return result
}
