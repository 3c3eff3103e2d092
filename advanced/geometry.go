package advanced

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Points are equal when their planar coordinates match exactly. Height is
// ignored.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// The planar part of the point as a vector.
func (p Point) XY() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

func NewEdge(p0, p1 Point) Edge {
	return Edge{P0: p0, P1: p1}
}

// Edge equality ignores direction.
func (e Edge) Equal(other Edge) bool {
	return (e.P0.Equal(other.P0) && e.P1.Equal(other.P1)) ||
		(e.P0.Equal(other.P1) && e.P1.Equal(other.P0))
}

// Returns the edge with its endpoints in lexicographic (X, then Y) order. Two
// edges are Equal exactly when their normalized forms have the same planar
// coordinates, which makes this usable as the basis of a hash key.
func (e Edge) Normalized() Edge {
	if e.P1.X < e.P0.X || (e.P1.X == e.P0.X && e.P1.Y < e.P0.Y) {
		return Edge{P0: e.P1, P1: e.P0}
	}
	return e
}

func (e Edge) String() string {
	return fmt.Sprintf("%v-%v", e.P0, e.P1)
}

// Build a triangle, computing its circumcircle. Collinear vertices are
// accepted; the resulting circle has an infinite or NaN center and radius.
func NewTriangle(p0, p1, p2 Point) Triangle {
	return Triangle{
		P0:     p0,
		P1:     p1,
		P2:     p2,
		E0:     Edge{p0, p1},
		E1:     Edge{p1, p2},
		E2:     Edge{p0, p2},
		Circle: NewCircumcircle(p0, p1, p2),
	}
}

// Circumcircle of three points, using the planar coordinates only.
func NewCircumcircle(p0, p1, p2 Point) Circumcircle {
	ax := p1.X - p0.X
	ay := p1.Y - p0.Y
	bx := p2.X - p0.X
	by := p2.Y - p0.Y

	m := p1.X*p1.X - p0.X*p0.X + p1.Y*p1.Y - p0.Y*p0.Y
	u := p2.X*p2.X - p0.X*p0.X + p2.Y*p2.Y - p0.Y*p0.Y
	s := 1 / (2 * (ax*by - ay*bx))

	center := r2.Vec{
		X: ((p2.Y-p0.Y)*m + (p0.Y-p1.Y)*u) * s,
		Y: ((p0.X-p2.X)*m + (p1.X-p0.X)*u) * s,
	}
	return Circumcircle{
		Center:        center,
		RadiusSquared: r2.Norm2(r2.Sub(p0.XY(), center)),
	}
}

// Reports whether p is inside the circle, or within eps of its boundary. The
// comparison is on squared quantities: dist² - r² <= eps. A degenerate circle
// never contains anything, since every comparison against NaN is false.
func (c Circumcircle) Contains(p Point, eps float64) bool {
	return c.Power(p) <= eps
}

// The power of p with respect to the circle: dist² - r². Negative inside,
// positive outside.
func (c Circumcircle) Power(p Point) float64 {
	return r2.Norm2(r2.Sub(c.Center, p.XY())) - c.RadiusSquared
}

// A circle is degenerate when it came from collinear (or coincident) points.
func (c Circumcircle) IsDegenerate() bool {
	return math.IsNaN(c.Center.X) || math.IsNaN(c.Center.Y) || math.IsNaN(c.RadiusSquared) ||
		math.IsInf(c.Center.X, 0) || math.IsInf(c.Center.Y, 0) || math.IsInf(c.RadiusSquared, 0)
}

func (t Triangle) Points() [3]Point {
	return [3]Point{t.P0, t.P1, t.P2}
}

func (t Triangle) Edges() [3]Edge {
	return [3]Edge{t.E0, t.E1, t.E2}
}

// Whether p (by planar equality) is one of the triangle's vertices.
func (t Triangle) HasVertex(p Point) bool {
	return t.P0.Equal(p) || t.P1.Equal(p) || t.P2.Equal(p)
}

// Signed area, positive for counterclockwise triangles.
func (t Triangle) SignedArea() float64 {
	return ((t.P1.X-t.P0.X)*(t.P2.Y-t.P0.Y) - (t.P2.X-t.P0.X)*(t.P1.Y-t.P0.Y)) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle{%v, %v, %v}", t.P0, t.P1, t.P2)
}
