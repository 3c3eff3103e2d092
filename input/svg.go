package input

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
)

// Read every <polygon> element of an SVG document, in document order. SVG has
// no height, so every point gets z = 0. This is not a full SVG reader:
// transforms, paths and other shapes are ignored.
func ReadSVG(in io.Reader) ([][]advanced.Point, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := [][]advanced.Point{}
	for i, el := range root.FindAll("polygon") {
		points, err := parseSVGPoints(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i+1)
		}
		if len(points) > 0 {
			polygons = append(polygons, points)
		}
	}
	return polygons, nil
}

// The points attribute is a list of numbers separated by whitespace and/or
// commas, taken in x, y pairs.
func parseSVGPoints(attr string) ([]advanced.Point, error) {
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}

	points := make([]advanced.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, advanced.Point{X: x, Y: y})
	}
	return points, nil
}
