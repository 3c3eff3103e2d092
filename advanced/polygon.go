package advanced

import "sort"

type Polygon struct {
	Points []Point
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Shoelace formula. Positive when the polygon winds counterclockwise.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Counterclockwise convex hull of the points (Andrew's monotone chain).
// Duplicate points and points in the interior of hull edges are left out, so
// the hull of collinear input is just its two extremes.
func ConvexHull(points []Point) Polygon {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X == sorted[j].X {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	// Drop planar duplicates
	unique := sorted[:0]
	for i, p := range sorted {
		if i > 0 && p.Equal(unique[len(unique)-1]) {
			continue
		}
		unique = append(unique, p)
	}
	if len(unique) < 3 {
		return Polygon{Points: unique}
	}

	hull := make([]Point, 0, 2*len(unique))
	// Lower chain, then upper chain. Each pops points that would make a
	// clockwise (or straight) turn.
	for _, p := range unique {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lowerLen := len(hull) + 1
	for i := len(unique) - 2; i >= 0; i-- {
		p := unique[i]
		for len(hull) >= lowerLen && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// The last point is the first point again
	return Polygon{Points: hull[:len(hull)-1]}
}

// z component of (b - a) x (c - a)
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
