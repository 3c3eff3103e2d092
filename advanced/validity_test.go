package advanced

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation of points is valid. On top of Validate
// (edge list, super-triangle leakage, empty circumcircles, hull coverage):
// 1. Every triangle vertex is one of the input points, with its height.
// 2. The triangle count matches the Euler relation 2n - h - 2, where n counts
//    distinct points and h counts hull vertices.
//
// Only use this for input without duplicate or collinear hull points.
func AssertValidTriangulation(t *testing.T, points []Point, result *Result) {
	t.Helper()
	require.NoError(t, Validate(points, result, DefaultEpsilon, true))

	inputSet := make(map[Point]struct{}, len(points))
	for _, p := range points {
		inputSet[p] = struct{}{}
	}
	for _, tri := range result.Triangles {
		for _, p := range tri.Points() {
			_, ok := inputSet[p]
			require.True(t, ok, "%v of %v is not an input point", p, tri)
		}
	}

	n := len(ConvexHull(points).Points)
	h := n
	distinct := make(map[[2]float64]struct{})
	for _, p := range points {
		distinct[[2]float64{p.X, p.Y}] = struct{}{}
	}
	n = len(distinct)
	require.Len(t, result.Triangles, 2*n-h-2, "triangle count for %d points with %d on the hull", n, h)
}

// Count occurrences of each undirected edge
func edgeCounts(edges EdgeList) map[edgeKey]int {
	counts := make(map[edgeKey]int)
	for _, e := range edges {
		counts[keyForEdge(e)]++
	}
	return counts
}

// Deterministic scattered points in [0, scale)². Heights are distinct so tests
// can tell vertices apart by Z.
func randomPoints(seed int64, n int, scale float64) []Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: r.Float64() * scale, Y: r.Float64() * scale, Z: float64(i)}
	}
	return points
}

func unitSquare() []Point {
	return []Point{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 0},
	}
}
