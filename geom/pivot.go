package geom

// SelectPivot returns the canonical starting vertex of the hull: the point
// with the smallest Y coordinate, ties broken by smallest X. That point is an
// extreme point of the set and therefore always a hull vertex, which is what
// lets both algorithms anchor their walk on it. Panics with ErrEmptyInput
// when the set is empty.
func SelectPivot(points []Point) Point {
	if len(points) == 0 {
		throwEmptyInput()
	}
	pivot := points[0]
	for _, p := range points[1:] {
		pivot = p.PickLeft(pivot)
	}
	return pivot
}
