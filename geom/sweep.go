package geom

// SweepHull computes the convex hull by angular sweep (Graham scan): sort the
// points by polar angle around the pivot, then sweep a stack, popping
// vertices that fail to make a counterclockwise turn. O(n log n), dominated
// by the sort, independent of the hull size.
//
// The input is read but never reordered; the sort happens on a derived key
// slice, so the same slice can be handed to WrapHull afterwards.
func SweepHull(points []Point) Hull {
	pivot := SelectPivot(points)
	sorted := byAngle(points, pivot)

	// Fewer than two distinct directions from the pivot means there is no
	// polygon to sweep: the set was all one point, or all on one line. The
	// collapse in byAngle already reduced a collinear set to its far extreme.
	if len(sorted) < 2 {
		hull := Hull{pivot}
		for _, k := range sorted {
			hull = append(hull, k.Point)
		}
		return hull
	}

	var stack PointStack
	stack.Push(pivot)
	stack.Push(sorted[0].Point)
	for _, k := range sorted[1:] {
		for stack.Len() >= 2 {
			a, b := stack.PeekPair()
			if a.CCW(b, k.Point) {
				break
			}
			stack.Pop()
		}
		stack.Push(k.Point)
	}
	return Hull(stack)
}
