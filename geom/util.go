package geom

import "math"

const Tolerance = 1e-6

// EqualWithin compares two coordinates under a fixed tolerance. The hull
// algorithms use exact comparison throughout (see Point); this is offered for
// callers whose inputs went through enough arithmetic that exact equality is
// meaningless. Any use of it changes which points count as distinct, so it is
// deliberately not baked into the predicates below.
func EqualWithin(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Turn is the result of the orientation predicate.
type Turn int

const (
	Clockwise Turn = iota - 1
	Collinear
	CounterClockwise
)

// PickLeft returns whichever of p and other is lower, preferring the smaller
// Y coordinate and breaking ties by smaller X. When the points are equal it
// returns other. Folding PickLeft over a point set yields the pivot, which is
// always a hull vertex.
func (p Point) PickLeft(other Point) Point {
	if p == other {
		return other
	}
	if p.Y != other.Y {
		if p.Y < other.Y {
			return p
		}
		return other
	}
	if p.X < other.X {
		return p
	}
	return other
}

// Orientation reports the turn direction at the corner p→b→c, from the sign
// of the cross product (b-p)×(c-p). This is the one correctness-critical
// primitive: both hull algorithms reduce membership tests to it. The sign is
// taken from the raw float64 product with no tolerance, so nearly collinear
// triples are fragile in the usual floating-point ways.
func (p Point) Orientation(b, c Point) Turn {
	cross := (b.X-p.X)*(c.Y-p.Y) - (b.Y-p.Y)*(c.X-p.X)
	switch {
	case cross > 0:
		return CounterClockwise
	case cross < 0:
		return Clockwise
	default:
		return Collinear
	}
}

// CCW reports whether p→b→c is a strict counterclockwise turn. Collinear and
// clockwise triples both report false.
func (p Point) CCW(b, c Point) bool {
	return p.Orientation(b, c) == CounterClockwise
}

// DistanceTo returns the euclidean distance between two points.
func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// PolarAngleFrom returns the angle of the ray pivot→p, in (-π, π].
func (p Point) PolarAngleFrom(pivot Point) float64 {
	return math.Atan2(p.Y-pivot.Y, p.X-pivot.X)
}

// Often we want to treat an array as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
