package mesh

import (
	"bufio"
	"io"
	"strconv"

	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
)

type OBJOptions struct {
	// Write (y, z, x) instead of (x, y, z). This turns the Z-up, X-forward
	// layout of the engine the navmesh came from into Y-up.
	SwizzleAxes bool
	// Reported in the trailer only. Faces are always written 1-based from the
	// start of this file.
	IndexOffset int
}

// Write the mesh as a Wavefront OBJ file: one "v x y z" line per vertex, one
// "f a b c" line per face, then a comment trailer with the counts.
func WriteOBJ(w io.Writer, m *Mesh, opts OBJOptions) error {
	out := bufio.NewWriter(w)

	for _, v := range m.Vertices {
		if opts.SwizzleAxes {
			v = advanced.Point{X: v.Y, Y: v.Z, Z: v.X}
		}
		out.WriteString("v ")
		out.WriteString(formatFloat(v.X))
		out.WriteByte(' ')
		out.WriteString(formatFloat(v.Y))
		out.WriteByte(' ')
		out.WriteString(formatFloat(v.Z))
		out.WriteByte('\n')
	}

	for _, f := range m.Faces {
		out.WriteString("f ")
		out.WriteString(strconv.Itoa(f[0]))
		out.WriteByte(' ')
		out.WriteString(strconv.Itoa(f[1]))
		out.WriteByte(' ')
		out.WriteString(strconv.Itoa(f[2]))
		out.WriteByte('\n')
	}

	out.WriteString("#VerticesCount: " + strconv.Itoa(len(m.Vertices)) + "\n")
	out.WriteString("#FaceCount: " + strconv.Itoa(len(m.Faces)) + "\n")
	out.WriteString("#IndexOffset: " + strconv.Itoa(opts.IndexOffset) + "\n")

	// bufio.Writer keeps the first write error, so checking on Flush is enough
	return errors.Wrap(out.Flush(), "writing obj")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
