package dbg

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
)

// Padding around the mesh, in pixels
const drawPadding = 20

// Render the triangles of the results (one per polygon) as a PNG at path.
// Scale is pixels per unit. Y points up in the picture.
func Draw(results []*advanced.Result, scale float64, path string) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, result := range results {
		for _, tri := range result.Triangles {
			for _, p := range tri.Points() {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}
	if math.IsInf(minX, 1) {
		return errors.New("nothing to draw")
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	for _, result := range results {
		for _, tri := range result.Triangles {
			c.MoveTo(tri.P0.X, tri.P0.Y)
			c.LineTo(tri.P1.X, tri.P1.Y)
			c.LineTo(tri.P2.X, tri.P2.Y)
			c.ClosePath()
			c.SetRGB(0, 0.5, 0)
			c.FillPreserve()
			c.SetRGB(0, 1, 1)
			c.SetLineWidth(1)
			c.Stroke()
		}
	}

	return errors.Wrap(c.SavePNG(path), "saving png")
}

// Print an image file inline in the terminal (iTerm only).
func Cat(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
