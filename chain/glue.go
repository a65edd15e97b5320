package chain

import "github.com/katalvlaran/isoline/geom"

// glueSafetyFactor bounds the Glue-U post-pass iteration count as a
// multiple of the squared number of open chains, per §4.4's "safety
// bound" requirement.
const glueSafetyFactor = 4

// glueRings implements the §4.4 Glue-U post-pass: it repeatedly takes
// the first open chain and merges it with the remaining open chain whose
// endpoint distance to it is smallest (and <= mu), reclassifying into
// closed or open as the result dictates. It returns the final chain set and the number of
// merges performed.
func glueRings(chains []geom.Chain, opts Options) ([]geom.Chain, int) {
	mu := opts.glueMu()

	var closed, open []geom.Chain
	for _, c := range chains {
		if c.IsClosed(opts.Epsilon) {
			closed = append(closed, c)
		} else {
			open = append(open, c)
		}
	}

	merges := 0
	maxIter := glueSafetyFactor * (len(open) + 1) * (len(open) + 1)

	var done []geom.Chain // chains confirmed to have no further merge candidate
	for iter := 0; len(open) > 0 && iter < maxIter; iter++ {
		c := open[0]
		open = open[1:]

		bestIdx, bestDist := -1, mu
		for i, other := range open {
			d := endpointDistance(c, other)
			if d <= bestDist {
				bestDist = d
				bestIdx = i
			}
		}

		if bestIdx == -1 {
			// No remaining candidate within mu: terminally open.
			done = append(done, c)
			continue
		}

		other := open[bestIdx]
		open = append(open[:bestIdx], open[bestIdx+1:]...)

		merged := mergeChains(c, other)
		merges++

		if merged.IsClosed(opts.Epsilon) {
			merged.ClosureOrigin = geom.ClosureNatural
			closed = append(closed, merged)
		} else {
			open = append([]geom.Chain{merged}, open...)
		}
	}

	// Chains still in `open` when the safety bound is hit are emitted
	// as-is, same as chains explicitly found to have no candidate.
	result := make([]geom.Chain, 0, len(closed)+len(done)+len(open))
	result = append(result, closed...)
	result = append(result, done...)
	result = append(result, open...)

	return result, merges
}

// endpointDistance returns the minimum Euclidean distance between any
// endpoint of a and any endpoint of b.
func endpointDistance(a, b geom.Chain) float64 {
	d1 := geom.Distance(a.Head(), b.Head())
	d2 := geom.Distance(a.Head(), b.Tail())
	d3 := geom.Distance(a.Tail(), b.Head())
	d4 := geom.Distance(a.Tail(), b.Tail())

	min := d1
	if d2 < min {
		min = d2
	}
	if d3 < min {
		min = d3
	}
	if d4 < min {
		min = d4
	}
	return min
}

// mergeChains concatenates a and b, orienting both so their closest
// endpoint pair becomes the shared join point, per §4.4. The join
// vertex from b is dropped in favor of a's (they are within mu, not
// necessarily exact, so this also snaps the tiny gap).
func mergeChains(a, b geom.Chain) geom.Chain {
	// geom.Chain.Head is the last point and Tail the first; below, "tip"
	// is a chain's last point and "head" its first.
	d1 := geom.Distance(a.Head(), b.Tail()) // a.tip - b.head
	d2 := geom.Distance(a.Head(), b.Head()) // a.tip - b.tail
	d3 := geom.Distance(a.Tail(), b.Tail()) // a.head - b.head
	d4 := geom.Distance(a.Tail(), b.Head()) // a.head - b.tail

	min := d1
	choice := 1
	for i, d := range []float64{d2, d3, d4} {
		if d < min {
			min = d
			choice = i + 2
		}
	}

	switch choice {
	case 1: // a.tip ~ b.head: a + b[1:]
		return concat(a, b)
	case 2: // a.tip ~ b.tail: a + reverse(b)[1:]
		return concat(a, b.Reversed())
	case 3: // a.head ~ b.head: reverse(a) + b[1:]
		return concat(a.Reversed(), b)
	default: // a.head ~ b.tail: b + a[1:]
		return concat(b, a)
	}
}

func concat(a, b geom.Chain) geom.Chain {
	points := make([]geom.Point, 0, len(a.Points)+len(b.Points)-1)
	points = append(points, a.Points...)
	points = append(points, b.Points[1:]...)
	return geom.Chain{Points: points, Level: a.Level}
}
