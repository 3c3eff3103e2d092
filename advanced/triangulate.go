package advanced

import "math"

// Tolerance for the circumcircle test, applied to dist² - r². It absorbs
// floating point error for nearly cocircular points. It is absolute, so it is
// loose for very large coordinates and tight for very small ones.
const DefaultEpsilon = 1e-4

// Incremental (Bowyer-Watson) Delaunay triangulation. The zero value is ready
// to use and behaves exactly like DefaultTriangulator. A Triangulator holds no
// state between calls, so one value may be shared by concurrent callers.
type Triangulator struct {
	// Tolerance for the circumcircle test. Zero means DefaultEpsilon.
	Epsilon float64

	// Abort with ErrDegenerate as soon as a triangle with collinear or
	// coincident vertices is built. When false, such triangles get a NaN or
	// infinite circumcircle, are never invalidated by later points, and are
	// kept as they are.
	RejectDegenerate bool

	// Find cavity boundaries by counting edges in a map instead of comparing
	// every pair. The output is identical; this only pays off when many
	// triangles are invalidated per insertion.
	HashEdges bool
}

var DefaultTriangulator = &Triangulator{}

// The tolerance actually in use.
func (t *Triangulator) Tolerance() float64 {
	if t.Epsilon == 0 {
		return DefaultEpsilon
	}
	return t.Epsilon
}

// Triangulate the points. Fewer than three points give an empty result.
//
// The points are inserted in the given order. Every surviving triangle has an
// empty circumcircle with respect to all the points (up to the tolerance), but
// when points are cocircular the order decides which of the equally valid
// triangles is produced.
//
// Panics with a TriangulateError if RejectDegenerate is set and degenerate
// geometry is found. Use the top level package for an error return instead.
func (t *Triangulator) Triangulate(points []Point) *Result {
	result := &Result{}
	if len(points) < 3 {
		return result
	}

	eps := t.Tolerance()
	if math.IsNaN(eps) {
		fatalf("epsilon must be a number")
	}

	super := SuperTriangleVertices(points)
	triangles := TriangleList{t.newTriangle(super[0], super[1], super[2])}

	for _, p := range points {
		triangles = t.insert(triangles, p, eps)
	}

	for _, tri := range triangles {
		if touchesSuperTriangle(tri, super) {
			continue
		}
		result.Triangles = append(result.Triangles, tri)
	}

	result.Edges = result.Triangles.Edges()
	return result
}

// Insert one point, returning the new triangle set. Triangles whose circle
// contains p form the cavity; they are replaced by a fan from p to the
// cavity's boundary.
/*
	 before        after
	+-----+       +-----+
	|\    |       |\   /|
	| \   |       | \ / |
	|  \ p|  -->  |  p  |
	|   \ |       | / \ |
	+-----+       +-----+
*/
func (t *Triangulator) insert(triangles TriangleList, p Point, eps float64) TriangleList {
	var cavityEdges EdgeList
	kept := make(TriangleList, 0, len(triangles)+2)
	for _, tri := range triangles {
		if tri.Circle.Contains(p, eps) {
			cavityEdges = append(cavityEdges, tri.E0, tri.E1, tri.E2)
		} else {
			kept = append(kept, tri)
		}
	}

	var boundary EdgeList
	if t.HashEdges {
		boundary = cancelSharedEdgesByCount(cavityEdges)
	} else {
		boundary = cancelSharedEdgesByScan(cavityEdges)
	}

	for _, edge := range boundary {
		kept = append(kept, t.newTriangle(edge.P0, edge.P1, p))
	}
	return kept
}

func (t *Triangulator) newTriangle(p0, p1, p2 Point) Triangle {
	tri := NewTriangle(p0, p1, p2)
	if t.RejectDegenerate && tri.Circle.IsDegenerate() {
		fatalWrapf(ErrDegenerate, "vertices %v, %v, %v are collinear or coincident", p0, p1, p2)
	}
	return tri
}

// All edges of all triangles, three per triangle, in order.
func (list TriangleList) Edges() EdgeList {
	if len(list) == 0 {
		return nil
	}
	edges := make(EdgeList, 0, 3*len(list))
	for _, tri := range list {
		edges = append(edges, tri.E0, tri.E1, tri.E2)
	}
	return edges
}

// Convenience for DefaultTriangulator.Triangulate.
func Triangulate(points []Point) *Result {
	return DefaultTriangulator.Triangulate(points)
}
