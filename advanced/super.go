package advanced

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// How far the super-triangle reaches past the bounding box, in multiples of
// the box's larger side.
const superTriangleReach = 20

// Axis aligned bounding box of the points' planar coordinates. The box is
// empty (Min > Max) when there are no points.
func Bounds(points []Point) r2.Box {
	box := r2.Box{
		Min: r2.Vec{X: math.Inf(1), Y: math.Inf(1)},
		Max: r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, p := range points {
		box.Min.X = math.Min(box.Min.X, p.X)
		box.Min.Y = math.Min(box.Min.Y, p.Y)
		box.Max.X = math.Max(box.Max.X, p.X)
		box.Max.Y = math.Max(box.Max.Y, p.Y)
	}
	return box
}

// The three synthetic vertices that seed the triangulation of points. They
// form a triangle far outside the bounding box:
/*
	         1
	        / \
	       /   \
	      / box \
	     0-------2
*/
// All three take the height of the first point, which is irrelevant to the
// geometry. Points must not be empty.
func SuperTriangleVertices(points []Point) [3]Point {
	box := Bounds(points)
	size := box.Size()
	mid := box.Center()
	dmax := math.Max(size.X, size.Y)
	z := points[0].Z

	return [3]Point{
		{X: mid.X - superTriangleReach*dmax, Y: mid.Y - dmax, Z: z},
		{X: mid.X, Y: mid.Y + superTriangleReach*dmax, Z: z},
		{X: mid.X + superTriangleReach*dmax, Y: mid.Y - dmax, Z: z},
	}
}

// Whether the triangle uses any of the given super-triangle vertices.
func touchesSuperTriangle(t Triangle, super [3]Point) bool {
	for _, s := range super {
		if t.HasVertex(s) {
			return true
		}
	}
	return false
}
