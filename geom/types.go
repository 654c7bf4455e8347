package geom

// A point in the 2D euclidean plane.
//
// Points are plain values and compare with ==. Equality is exact on both
// coordinates; there is no tolerance. Callers working with numerically noisy
// data can compare individual coordinates with EqualWithin instead, but the
// hull algorithms themselves use the exact policy, so two points that differ
// in the last ulp are two distinct points. NaN or infinite coordinates are
// not supported and produce unspecified results.
type Point struct {
	X float64
	Y float64
}

// A convex hull: the vertices of the smallest convex polygon containing the
// input set, starting at the pivot (bottom-most, then left-most point) and
// winding counterclockwise. Every vertex is one of the input points.
// Degenerate inputs produce degenerate hulls: a single point when all input
// points coincide, two points when they are all collinear.
type Hull []Point

// Stack of points for the angular sweep.
type PointStack []Point

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

func (s *PointStack) Peek() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	return (*s)[len(*s)-1], true
}

// PeekPair returns the two topmost points, second-from-top first. The caller
// must ensure Len() >= 2.
func (s *PointStack) PeekPair() (Point, Point) {
	return (*s)[len(*s)-2], (*s)[len(*s)-1]
}

func (s *PointStack) Len() int {
	return len(*s)
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}
