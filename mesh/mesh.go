// Turning many small polygons (navigation mesh polygons, typically) into one
// indexed triangle mesh.
//
// Each polygon is triangulated on its own. Vertices are pooled into a single
// table shared by all polygons, and every triangle becomes a face of 1-based
// indices into that table.
package mesh

import (
	"strings"

	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
)

// Vertex order of the emitted faces. The triangulator itself guarantees no
// particular orientation, so this only fixes how the triangle's slots map to
// the face's.
type Winding int

const (
	// Face = (p0, p2, p1). This is what the original navmesh exporter wrote.
	WindingSwapped Winding = iota
	// Face = (p0, p1, p2).
	WindingAsIs
)

func (w Winding) String() string {
	switch w {
	case WindingSwapped:
		return "swapped"
	case WindingAsIs:
		return "as-is"
	}
	return "unknown"
}

func ParseWinding(s string) (Winding, error) {
	switch strings.ToLower(s) {
	case "swapped", "":
		return WindingSwapped, nil
	case "as-is", "asis":
		return WindingAsIs, nil
	}
	return 0, errors.Errorf("unknown winding %q", s)
}

// Three 1-based indices into Mesh.Vertices.
type Face [3]int

type Mesh struct {
	Vertices []advanced.Point
	Faces    []Face
}

// Builds a Mesh one polygon at a time. The zero value uses the default
// triangulator and swapped winding.
type Builder struct {
	Triangulator *advanced.Triangulator
	Winding      Winding

	mesh  Mesh
	index map[advanced.Point]int
}

func (b *Builder) triangulator() *advanced.Triangulator {
	if b.Triangulator == nil {
		return advanced.DefaultTriangulator
	}
	return b.Triangulator
}

// Add the polygon's vertices to the table and its triangles to the faces.
// Polygons with fewer than three vertices still contribute their vertices.
func (b *Builder) AddPolygon(points []advanced.Point) (err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return b.addTriangulated(points, b.triangulator().Triangulate(points))
}

// Merge an already triangulated polygon. The triangles must come from points.
func (b *Builder) addTriangulated(points []advanced.Point, result *advanced.Result) error {
	for _, p := range points {
		b.addVertex(p)
	}

	for _, tri := range result.Triangles {
		var face Face
		for i, p := range tri.Points() {
			index, ok := b.index[p]
			if !ok {
				return errors.Errorf("vertex %v of %v is not in the vertex table", p, tri)
			}
			face[i] = index
		}
		if b.Winding == WindingSwapped {
			face[1], face[2] = face[2], face[1]
		}
		b.mesh.Faces = append(b.mesh.Faces, face)
	}
	return nil
}

// Vertices are shared when all three coordinates match exactly.
func (b *Builder) addVertex(p advanced.Point) {
	if b.index == nil {
		b.index = make(map[advanced.Point]int)
	}
	if _, ok := b.index[p]; ok {
		return
	}
	b.mesh.Vertices = append(b.mesh.Vertices, p)
	b.index[p] = len(b.mesh.Vertices)
}

// The mesh built so far. The builder keeps appending to the same slices, so
// don't add polygons while holding on to the result.
func (b *Builder) Mesh() *Mesh {
	return &b.mesh
}
