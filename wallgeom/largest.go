package wallgeom

// PickLargest returns the largest-area component of mp, collapsing a
// multi-component result to a single Polygon per spec.md §3/§4.G
// ("when the result is disconnected, only the largest-area piece is
// retained"). ok is false if mp has no component with area ≥ AreaEps.
// Complexity: O(k) in component count, each an O(n) area computation.
func PickLargest(mp MultiPolygon) (poly Polygon, ok bool) {
	var (
		best      Polygon
		bestArea  = -1.0
		foundOne  bool
	)
	for _, p := range mp {
		a := p.Area()
		if a < AreaEps {
			continue
		}
		foundOne = true
		if a > bestArea {
			bestArea = a
			best = p
		}
	}

	return best, foundOne
}
