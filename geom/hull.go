package geom

// Checks over a computed hull. These exist for validation and testing; they
// assume the Hull invariants (counterclockwise winding, no repeated
// consecutive vertices) rather than re-deriving them.

// Contains reports whether p lies inside or on the boundary of the hull
// polygon. For a proper polygon this is an edge-sign walk: a point of a
// convex CCW polygon is inside iff no edge has it strictly to the right.
// Degenerate hulls get the matching degenerate test.
func (h Hull) Contains(p Point) bool {
	switch len(h) {
	case 0:
		return false
	case 1:
		return p == h[0]
	case 2:
		// On the segment: collinear with it and within its bounding box.
		if h[0].Orientation(h[1], p) != Collinear {
			return false
		}
		return between(h[0].X, p.X, h[1].X) && between(h[0].Y, p.Y, h[1].Y)
	}
	for i, a := range h {
		b := h[CircularIndex(i+1, len(h))]
		if a.Orientation(b, p) == Clockwise {
			return false
		}
	}
	return true
}

// IsConvex reports whether no cyclic triple of hull vertices turns clockwise.
// Hulls shorter than three vertices are trivially convex.
func (h Hull) IsConvex() bool {
	if len(h) < 3 {
		return true
	}
	for i, a := range h {
		b := h[CircularIndex(i+1, len(h))]
		c := h[CircularIndex(i+2, len(h))]
		if a.Orientation(b, c) == Clockwise {
			return false
		}
	}
	return true
}

func between(lo, v, hi float64) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo <= v && v <= hi
}
