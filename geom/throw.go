package geom

import "github.com/pkg/errors"

// The algorithms are small, but threading errors through the recursive-ish
// sweep and march internals would still double the plumbing for a single
// failure mode. Instead we panic internally, and the public API in the root
// package recovers to convert to an error.

// ErrEmptyInput is reported when a hull or pivot is requested for a point set
// with no elements.
var ErrEmptyInput = errors.New("empty point set")

type HullError error

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func throwEmptyInput() {
	panic(errors.WithStack(ErrEmptyInput))
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
