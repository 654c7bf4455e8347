// A small 2D convex hull package for Go.
//
// This package computes the smallest convex polygon enclosing a finite set of
// points in the plane. Two independent algorithms are provided so they can be
// benchmarked against each other: an angular sweep (Graham scan, O(n log n))
// and a gift wrap (Jarvis march, O(n·h)). Both return the same hull: vertices
// in counterclockwise order, starting from the bottom-most (then left-most)
// point of the input.
package hull

import "github.com/sweephull/hull/geom"

type Point = geom.Point
type Hull = geom.Hull

// ErrEmptyInput is returned when an empty point set is given.
var ErrEmptyInput = geom.ErrEmptyInput

// Sweep computes the convex hull of the given points by angular sweep. The
// input is read but never reordered, so the same slice can be passed to both
// algorithms.
func Sweep(points []Point) (result Hull, err error) {
	defer func() {
		recoveredErr := geom.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return geom.SweepHull(points), nil
}

// GiftWrap computes the convex hull of the given points by gift wrapping.
func GiftWrap(points []Point) (result Hull, err error) {
	defer func() {
		recoveredErr := geom.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return geom.WrapHull(points), nil
}

// SelectPivot returns the bottom-most, then left-most point of the set: the
// canonical hull vertex both algorithms start from.
func SelectPivot(points []Point) (pivot Point, err error) {
	defer func() {
		recoveredErr := geom.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			pivot = Point{}
			err = recoveredErr
		}
	}()
	return geom.SelectPivot(points), nil
}
