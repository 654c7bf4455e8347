package geom

// WrapHull computes the convex hull by gift wrapping (Jarvis march): starting
// at the pivot, repeatedly take the point that keeps every other point on or
// to the left of the directed edge towards it, until the walk arrives back at
// the pivot. O(n·h) for h hull vertices — beats the sweep when the hull is
// small relative to the input, loses when most points are extreme.
//
// The input is never reordered. Output matches SweepHull exactly:
// counterclockwise, pivot first.
func WrapHull(points []Point) Hull {
	pivot := SelectPivot(points)
	hull := Hull{pivot}
	current := pivot
	for {
		candidate, ok := nextVertex(points, current)
		if !ok || candidate == pivot {
			return hull
		}
		hull = append(hull, candidate)
		current = candidate

		// The walk visits each extreme point once; a hull longer than the
		// input means the candidate scan stopped making progress.
		if len(hull) > len(points) {
			fatalf("gift wrap failed to close the hull after %d vertices", len(hull))
		}
	}
}

// nextVertex scans for the point from current such that no other point lies
// strictly to the right of current→candidate. Collinear ties go to the
// farther point, so interior points of a collinear run are skipped in one
// step. Points equal to current are ignored; ok is false when no candidate
// exists, i.e. every point of the set coincides with current.
func nextVertex(points []Point, current Point) (candidate Point, ok bool) {
	for _, q := range points {
		if q == current {
			continue
		}
		if !ok {
			candidate, ok = q, true
			continue
		}
		switch current.Orientation(candidate, q) {
		case Clockwise:
			candidate = q
		case Collinear:
			if current.DistanceTo(q) > current.DistanceTo(candidate) {
				candidate = q
			}
		}
	}
	return candidate, ok
}
