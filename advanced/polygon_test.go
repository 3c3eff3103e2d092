package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestPolygonSignedArea(t *testing.T) {
	square := Polygon{Points: unitSquare()}
	assert.InDelta(t, 1, square.SignedArea(), testDelta)
	assert.InDelta(t, -1, square.Reverse().SignedArea(), testDelta)
	assert.True(t, square.IsCCW())
}

func TestConvexHull(t *testing.T) {
	t.Run("square with interior and edge points", func(t *testing.T) {
		points := append(unitSquare(),
			Point{0.5, 0.5, 0}, // interior
			Point{0.5, 0, 0},   // on an edge
			Point{1, 1, 0},     // duplicate corner
		)
		hull := ConvexHull(points)
		assert.Equal(t, []Point{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}, hull.Points)
		assert.True(t, hull.IsCCW())
	})

	t.Run("collinear", func(t *testing.T) {
		hull := ConvexHull([]Point{{2, 2, 0}, {0, 0, 0}, {1, 1, 0}, {3, 3, 0}})
		assert.Equal(t, []Point{{0, 0, 0}, {3, 3, 0}}, hull.Points)
	})

	t.Run("does not reorder input", func(t *testing.T) {
		points := []Point{{3, 0, 0}, {0, 0, 0}, {0, 3, 0}}
		ConvexHull(points)
		assert.Equal(t, []Point{{3, 0, 0}, {0, 0, 0}, {0, 3, 0}}, points)
	})

	t.Run("too few points", func(t *testing.T) {
		assert.Empty(t, ConvexHull(nil).Points)
		assert.Len(t, ConvexHull([]Point{{1, 1, 0}, {1, 1, 5}}).Points, 1)
	})
}

func TestValidate(t *testing.T) {
	square := unitSquare()
	result := Triangulate(square)
	assert.NoError(t, Validate(square, result, DefaultEpsilon, true))

	t.Run("edge count", func(t *testing.T) {
		broken := &Result{Triangles: result.Triangles, Edges: result.Edges[:5]}
		assert.Error(t, Validate(square, broken, DefaultEpsilon, true))
	})

	t.Run("circumcircle", func(t *testing.T) {
		// A flat triangle under the square, whose circle swallows the rest of it
		tri := NewTriangle(square[0], square[1], Point{0.5, -0.01, 0})
		points := append(unitSquare(), Point{0.5, -0.01, 0})
		broken := &Result{Triangles: TriangleList{tri}, Edges: TriangleList{tri}.Edges()}
		assert.Error(t, Validate(points, broken, DefaultEpsilon, false))
	})

	t.Run("coverage", func(t *testing.T) {
		partial := &Result{Triangles: result.Triangles[:1], Edges: result.Edges[:3]}
		assert.Error(t, Validate(square, partial, DefaultEpsilon, true))
		assert.NoError(t, Validate(square, partial, DefaultEpsilon, false))
	})

	t.Run("super-triangle", func(t *testing.T) {
		super := SuperTriangleVertices(square)
		tri := NewTriangle(square[0], square[1], super[2])
		leaked := &Result{Triangles: TriangleList{tri}, Edges: TriangleList{tri}.Edges()}
		assert.Error(t, Validate(square, leaked, DefaultEpsilon, false))
	})
}
