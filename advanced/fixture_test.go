package advanced

import (
	"embed"
	"log"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
)

// This file parses the svg fixtures and outputs point sets. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, and returns its vertices in document order. If anything
// goes wrong, it bails out.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		// Number the points through their height so they stay distinguishable
		points = append(points, Point{X: x, Y: y, Z: float64(len(points))})
	}
	return points
}

func TestFixtures(t *testing.T) {
	for _, tc := range []struct {
		name      string
		triangles int
	}{
		{"navpoly", 4},  // 6 points, all on the hull
		{"scatter", 17}, // 12 points, 5 on the hull
		{"octagon", 16}, // 13 points, 8 on the hull
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			points := LoadFixture(tc.name)
			for _, triangulator := range []*Triangulator{
				DefaultTriangulator,
				{HashEdges: true},
				{RejectDegenerate: true},
			} {
				result := triangulator.Triangulate(points)
				AssertValidTriangulation(t, points, result)
				assert.Len(t, result.Triangles, tc.triangles)
			}
		})
	}
}

func TestFixtures_Polygon(t *testing.T) {
	navpoly := Polygon{Points: LoadFixture("navpoly")}
	assert.True(t, navpoly.IsCCW())
	assert.False(t, navpoly.Reverse().IsCCW())
	assert.ElementsMatch(t, navpoly.Points, ConvexHull(navpoly.Points).Points)

	// The fan triangulation of a convex polygon and the Delaunay one cover the
	// same area.
	var area float64
	for _, tri := range Triangulate(navpoly.Points).Triangles {
		area += tri.Area()
	}
	assert.InDelta(t, navpoly.SignedArea(), area, testDelta)
}
