// Incremental Delaunay triangulation of planar point sets.
//
// Points carry a height (Z) that takes no part in the geometry but is kept on
// every output vertex. The result is a list of triangles plus a flat list of
// their edges, three per triangle.
//
// The engine lives in the advanced package, which also exposes tuning options
// and validation helpers.
package delaunay

import "github.com/osuushi/delaunay/advanced"

type Point = advanced.Point
type Edge = advanced.Edge
type Circumcircle = advanced.Circumcircle
type Triangle = advanced.Triangle
type Result = advanced.Result

// Returned (wrapped) by TriangulateWith when degenerate geometry is rejected.
var ErrDegenerate = advanced.ErrDegenerate

// Triangulate points with the default settings.
//
// Fewer than three points give an empty result rather than an error. With the
// default settings no error is ever returned; degenerate input silently
// produces fewer (or no) triangles.
func Triangulate(points []Point) (*Result, error) {
	return TriangulateWith(advanced.DefaultTriangulator, points)
}

// Triangulate points with a configured triangulator, converting its failures
// into errors.
func TriangulateWith(triangulator *advanced.Triangulator, points []Point) (result *Result, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return triangulator.Triangulate(points), nil
}
