// Package sample generates input sets for benchmarking the hull algorithms.
//
// Generated sets have a known hull: the corners of a regular polygon, plus
// scatter that is guaranteed to land strictly inside it. That makes the hull
// size an input parameter, which matters for comparing the two algorithms —
// gift wrapping is output-sensitive, so its behavior depends on how many of
// the points are extreme.
package sample

import (
	"math"
	"math/rand"

	"github.com/sweephull/hull/geom"
)

// Regular returns the corners of a regular polygon with the given number of
// vertices, centered on the origin with the given circumradius. The first
// corner sits at the bottom of the polygon so the pivot is deterministic.
func Regular(vertices int, radius float64) []geom.Point {
	points := make([]geom.Point, vertices)
	for i := range points {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(vertices)
		points[i] = geom.Point{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		}
	}
	return points
}

// Scatter returns n points whose convex hull has exactly `vertices` vertices:
// the corners of a regular polygon followed by n-vertices random points
// strictly inside it. Scattered points are kept within the polygon's
// inradius, so they can never displace a corner from the hull. Panics if n is
// smaller than vertices or vertices is smaller than 3.
func Scatter(rng *rand.Rand, n, vertices int) []geom.Point {
	if vertices < 3 {
		panic("sample: a polygon needs at least 3 vertices")
	}
	if n < vertices {
		panic("sample: need at least as many points as hull vertices")
	}

	const radius = 100.0
	points := Regular(vertices, radius)

	// Uniform scatter over the inscribed disc, shrunk slightly so boundary
	// draws stay strictly interior.
	inradius := radius * math.Cos(math.Pi/float64(vertices)) * 0.999
	for i := vertices; i < n; i++ {
		r := inradius * math.Sqrt(rng.Float64())
		theta := 2 * math.Pi * rng.Float64()
		points = append(points, geom.Point{
			X: r * math.Cos(theta),
			Y: r * math.Sin(theta),
		})
	}
	return points
}
