package advanced

import "gonum.org/v1/gonum/spatial/r2"

// A planar point carrying a height. Only X and Y take part in any geometric
// decision; Z rides along untouched so callers can recover the original
// vertex.
type Point struct {
	X float64
	Y float64
	Z float64
}

// An undirected segment. Two edges are the same edge if they join the same
// endpoints in either order, so edges must be compared with Equal rather than
// ==.
type Edge struct {
	P0, P1 Point
}

// The circle through a triangle's three vertices. The radius is kept squared,
// since every consumer compares it against squared distances.
type Circumcircle struct {
	Center        r2.Vec
	RadiusSquared float64
}

// Triangles are values. They are built by NewTriangle, which derives the edges
// and circumcircle once; nothing in this package modifies a triangle after
// that, so a copy is always consistent with its own circle.
type Triangle struct {
	P0, P1, P2 Point
	E0, E1, E2 Edge
	Circle     Circumcircle
}

type TriangleList []Triangle

type EdgeList []Edge

// The output of a triangulation. Edges holds the three edges of each triangle
// in triangle order. It is not deduplicated: an edge shared by two triangles
// appears once for each of them.
type Result struct {
	Triangles TriangleList
	Edges     EdgeList
}
