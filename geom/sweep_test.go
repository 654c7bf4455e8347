package geom

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSweepHullDiamond(t *testing.T) {
	// A diamond with one interior point. The interior point must be excluded.
	points := []Point{{0, 0}, {1, 1}, {2, 0}, {1, -1}, {1, 0}}
	h := SweepHull(points)
	assert.Equal(t, Hull{{1, -1}, {2, 0}, {1, 1}, {0, 0}}, h)
}

func TestSweepHullSquareWithInterior(t *testing.T) {
	points := []Point{
		{0, 0}, {4, 0}, {4, 4}, {0, 4},
		{1, 1}, {2, 3}, {3, 2}, {2, 2},
	}
	h := SweepHull(points)
	assert.Equal(t, Hull{{0, 0}, {4, 0}, {4, 4}, {0, 4}}, h)
}

func TestSweepHullDegenerate(t *testing.T) {
	t.Run("single point", func(t *testing.T) {
		h := SweepHull([]Point{{7, 7}})
		assert.Equal(t, Hull{{7, 7}}, h)
	})

	t.Run("all points identical", func(t *testing.T) {
		h := SweepHull([]Point{{7, 7}, {7, 7}, {7, 7}})
		assert.Equal(t, Hull{{7, 7}}, h)
	})

	t.Run("two distinct points", func(t *testing.T) {
		h := SweepHull([]Point{{3, 4}, {1, 2}})
		assert.Equal(t, Hull{{1, 2}, {3, 4}}, h)
	})

	t.Run("horizontal collinear run keeps only the extremes", func(t *testing.T) {
		h := SweepHull([]Point{{0, 0}, {1, 0}, {2, 0}})
		assert.Equal(t, Hull{{0, 0}, {2, 0}}, h)
	})

	t.Run("vertical collinear run keeps only the extremes", func(t *testing.T) {
		h := SweepHull([]Point{{1, 4}, {1, 2}, {1, 3}})
		assert.Equal(t, Hull{{1, 2}, {1, 4}}, h)
	})

	t.Run("empty input panics", func(t *testing.T) {
		assert.Panics(t, func() {
			SweepHull(nil)
		})
	})
}

func TestSweepHullCollinearEdgePoints(t *testing.T) {
	// Midpoints of hull edges are collinear with their edge and must not
	// survive as vertices.
	points := []Point{
		{0, 0}, {2, 0}, {2, 2}, {0, 2},
		{1, 0}, {2, 1}, {1, 2}, {0, 1},
	}
	h := SweepHull(points)
	assert.Equal(t, Hull{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, h)
}

func TestSweepHullShuffleInvariant(t *testing.T) {
	points := []Point{
		{0, 0}, {5, 1}, {6, 4}, {3, 6}, {-1, 3},
		{2, 2}, {3, 3}, {1, 1}, {4, 4}, {2, 4},
	}
	want := SweepHull(points)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]Point(nil), points...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		assert.Equal(t, want, SweepHull(shuffled))
	}
}

func TestSweepHullLeavesInputAlone(t *testing.T) {
	points := []Point{{3, 3}, {0, 0}, {1, 5}, {2, 1}}
	original := append([]Point(nil), points...)
	SweepHull(points)
	assert.Equal(t, original, points)
}

func TestSweepHullProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 10; trial++ {
		points := randomPoints(rng, 100)
		h := SweepHull(points)

		assert.True(t, h.IsConvex())
		for _, p := range points {
			assert.True(t, h.Contains(p), "point %v outside hull %v", p, h)
		}
		for _, v := range h {
			assert.Contains(t, points, v)
		}
	}
}

// Helpers

func randomPoints(rng *rand.Rand, n int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: rng.Float64()*200 - 100,
			Y: rng.Float64()*200 - 100,
		}
	}
	return points
}
