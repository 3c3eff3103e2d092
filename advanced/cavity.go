package advanced

// Cavity boundary extraction. When a point is inserted, the edges of every
// invalidated triangle are pooled. An edge that two invalidated triangles share
// is interior to the cavity and shows up at least twice; an edge on the
// cavity's boundary shows up once. Both functions here drop every edge that
// occurs more than once and keep the rest in their original order, so they
// are interchangeable.

// Pairwise scan. Quadratic in the number of pooled edges, which is fine for
// the small per-polygon point sets this is usually fed.
func cancelSharedEdgesByScan(edges EdgeList) EdgeList {
	remove := make([]bool, len(edges))
	for i := range edges {
		for j := range edges {
			if i == j {
				continue
			}
			if edges[i].Equal(edges[j]) {
				remove[i] = true
				remove[j] = true
			}
		}
	}

	boundary := make(EdgeList, 0, len(edges))
	for i, edge := range edges {
		if !remove[i] {
			boundary = append(boundary, edge)
		}
	}
	return boundary
}

// Key identifying an undirected edge by the planar coordinates of its
// normalized endpoints. Map lookups on floats use ==, which agrees with
// Point.Equal (including NaN never matching).
type edgeKey struct {
	x0, y0, x1, y1 float64
}

func keyForEdge(e Edge) edgeKey {
	n := e.Normalized()
	return edgeKey{n.P0.X, n.P0.Y, n.P1.X, n.P1.Y}
}

// Counting version of the scan above. Linear in the number of pooled edges.
func cancelSharedEdgesByCount(edges EdgeList) EdgeList {
	counts := make(map[edgeKey]int, len(edges))
	for _, edge := range edges {
		counts[keyForEdge(edge)]++
	}

	boundary := make(EdgeList, 0, len(edges))
	for _, edge := range edges {
		if counts[keyForEdge(edge)] == 1 {
			boundary = append(boundary, edge)
		}
	}
	return boundary
}
