package geom

import "sort"

// angularPoint is a point augmented with its polar coordinates relative to
// the sweep pivot. Built transiently for one sweep and discarded after the
// sort.
type angularPoint struct {
	Point
	distance float64
	angle    float64
}

// byAngle returns every point other than the pivot, ordered by ascending
// polar angle around the pivot. Angle ties are ordered by ascending distance
// and then collapsed down to the farthest point of the run: points collinear
// with the pivot behind another point can never be hull vertices, and
// collapsing them up front means the sweep loop never sees a triple that is
// collinear through the pivot. Exact duplicates collapse the same way.
//
// A useful consequence: a fully collinear input collapses to a single entry
// (the far extreme), and an all-identical input collapses to none, so the
// degenerate cases fall out of the collapse rather than needing their own
// geometry.
func byAngle(points []Point, pivot Point) []angularPoint {
	keys := make([]angularPoint, 0, len(points))
	for _, p := range points {
		if p == pivot {
			continue
		}
		keys = append(keys, angularPoint{
			Point:    p,
			distance: p.DistanceTo(pivot),
			angle:    p.PolarAngleFrom(pivot),
		})
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].angle == keys[j].angle {
			return keys[i].distance < keys[j].distance
		}
		return keys[i].angle < keys[j].angle
	})

	// Collapse equal-angle runs, keeping the last (farthest) entry of each.
	collapsed := keys[:0]
	for _, k := range keys {
		if len(collapsed) > 0 && collapsed[len(collapsed)-1].angle == k.angle {
			collapsed[len(collapsed)-1] = k
			continue
		}
		collapsed = append(collapsed, k)
	}
	return collapsed
}
