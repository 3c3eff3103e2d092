// Readers that turn files into the ordered point lists the triangulator takes,
// one list per polygon.
package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
)

// Read polygons from plain text. Each line holds one point as "x y" or
// "x y z" (z defaults to 0), separated by whitespace. Polygons are separated
// by blank lines, and anything after a '#' is a comment.
func ReadPolygons(in io.Reader) ([][]advanced.Point, error) {
	polygons := [][]advanced.Point{}
	var points []advanced.Point

	// Scan lines
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if strings.TrimSpace(line) == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = nil
			}
			continue
		}

		// Parse the point out of the line
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 && len(parts) != 3 {
		return advanced.Point{}, errors.Errorf("expected 2 or 3 coordinates, got %d", len(parts))
	}

	var coords [3]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return advanced.Point{}, errors.Wrapf(err, "coordinate %d", i+1)
		}
		coords[i] = value
	}
	return advanced.Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
