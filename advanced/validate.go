package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// Sanity checks for a triangulation of points, returning the first problem
// found. The rules are:
// 1. There are exactly three edges per triangle, matching the triangles in order.
// 2. No triangle uses a super-triangle vertex.
// 3. No point lies inside any triangle's circumcircle by more than eps.
// 4. The triangles cover the convex hull of the points: the sum of their
//    areas equals the hull's area (relative tolerance).
//
// Rule 4 only holds when the super-triangle is far enough away that no hull
// edge is lost, which is the usual case but not guaranteed for hulls with
// nearly straight angles; pass checkCoverage=false to skip it.
//
// Rule 3 is quadratic, so this is meant for tests and debugging.
func Validate(points []Point, result *Result, eps float64, checkCoverage bool) error {
	if len(result.Edges) != 3*len(result.Triangles) {
		return errors.Errorf("expected %d edges for %d triangles, got %d", 3*len(result.Triangles), len(result.Triangles), len(result.Edges))
	}
	for i, tri := range result.Triangles {
		for j, edge := range tri.Edges() {
			if result.Edges[3*i+j] != edge {
				return errors.Errorf("edge %d does not match edge %d of %v", 3*i+j, j, tri)
			}
		}
	}

	if len(points) < 3 {
		if len(result.Triangles) != 0 {
			return errors.Errorf("expected no triangles for %d points", len(points))
		}
		return nil
	}

	super := SuperTriangleVertices(points)
	for _, tri := range result.Triangles {
		if touchesSuperTriangle(tri, super) {
			return errors.Errorf("%v uses a super-triangle vertex", tri)
		}
	}

	for _, tri := range result.Triangles {
		for _, p := range points {
			if tri.HasVertex(p) {
				continue
			}
			if power := tri.Circle.Power(p); power <= -eps {
				return errors.Errorf("%v is inside the circumcircle of %v (power %g)", p, tri, power)
			}
		}
	}

	if checkCoverage {
		hullArea := math.Abs(ConvexHull(points).SignedArea())
		var area float64
		for _, tri := range result.Triangles {
			area += tri.Area()
		}
		if math.Abs(area-hullArea) > 1e-9*math.Max(1, hullArea) {
			return errors.Errorf("triangles cover area %g, convex hull has area %g", area, hullArea)
		}
	}
	return nil
}
