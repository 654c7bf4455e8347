package geom

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/sweephull/hull/dbg"
)

// This is for debugging purposes only

const drawPadding = 20

// Draw renders the input set and its hull to /tmp/hull.png and cats the image
// to stdout for terminals that support it (iTerm2). Input points are drawn as
// dots, the hull as a stroked polygon with labeled vertices.
func Draw(points []Point, h Hull, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Map a point to image coordinates, flipping Y so the origin is at the
	// bottom left. The transform is applied by hand rather than pushed onto
	// the context so that labels come out unmirrored.
	toImage := func(p Point) (float64, float64) {
		x := scale*(p.X-minX) + drawPadding
		y := float64(height) - (scale*(p.Y-minY) + drawPadding)
		return x, y
	}

	c.SetRGB(0.5, 0.5, 0.5)
	for _, p := range points {
		x, y := toImage(p)
		c.DrawCircle(x, y, 2)
		c.Fill()
	}

	if len(h) > 0 {
		c.MoveTo(toImage(h[0]))
		for _, p := range h[1:] {
			c.LineTo(toImage(p))
		}
		c.ClosePath()
		c.SetLineWidth(2)
		c.SetRGB(0, 1, 1)
		c.Stroke()

		c.SetRGB(0, 1, 0)
		for i, p := range h {
			x, y := toImage(p)
			c.DrawCircle(x, y, 3)
			c.Fill()
			c.DrawString(dbg.NameFor(i), x+5, y-5)
		}
	}

	c.SavePNG("/tmp/hull.png")
	imgcat.CatFile("/tmp/hull.png", os.Stdout)
}
