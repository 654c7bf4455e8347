package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/sweephull/hull"
	"github.com/sweephull/hull/geom"
	"github.com/sweephull/hull/sample"
)

// Benchmark harness pitting the two hull algorithms against each other on the
// same generated input. The sweep is O(n log n) regardless of the hull; the
// gift wrap is O(n·h), so growing --vertices while holding --count fixed
// shows the crossover.

var (
	count    = kingpin.Flag("count", "Total number of points in the input set.").Default("1000").Int()
	vertices = kingpin.Flag("vertices", "Number of hull vertices in the input set.").Default("3").Int()
	seed     = kingpin.Flag("seed", "Seed for the scatter; 0 seeds from the clock.").Default("0").Int64()
	draw     = kingpin.Flag("draw", "Render the result to the terminal (iTerm2).").Bool()
	scale    = kingpin.Flag("scale", "Pixels per unit when drawing.").Default("2").Float64()
)

func main() {
	kingpin.Parse()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))
	points := sample.Scatter(rng, *count, *vertices)
	fmt.Printf("%d points, %d on the hull, seed %d\n", *count, *vertices, s)

	sweepHull := run("sweep", hull.Sweep, points)
	wrapHull := run("gift wrap", hull.GiftWrap, points)

	if !sameVertices(sweepHull, wrapHull) {
		fmt.Println(aurora.Red("algorithms disagree on the hull"))
		os.Exit(1)
	}

	if *draw {
		geom.Draw(points, sweepHull, *scale)
	}
}

func run(name string, algorithm func([]hull.Point) (hull.Hull, error), points []hull.Point) hull.Hull {
	start := time.Now()
	h, err := algorithm(points)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Printf("%s: %v\n", name, aurora.Red(err))
		os.Exit(1)
	}
	fmt.Printf("%-10s %s s  (%d vertices)\n",
		name+":", aurora.Green(fmt.Sprintf("%.6f", elapsed.Seconds())), len(h))
	return h
}

// sameVertices compares two hulls as vertex sets, ignoring order.
func sameVertices(a, b hull.Hull) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[hull.Point]struct{}, len(a))
	for _, p := range a {
		set[p] = struct{}{}
	}
	for _, p := range b {
		if _, ok := set[p]; !ok {
			return false
		}
	}
	return true
}
