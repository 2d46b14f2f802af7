package wallgeom

// PointInRing reports whether pt lies strictly inside r using the
// crossing-number algorithm. Points exactly on the boundary are reported
// via PointOnRing, not here.
// Complexity: O(n).
func PointInRing(pt Point, r Ring) bool {
	if PointOnRing(pt, r) {
		return false
	}
	inside := false
	n := len(r)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := r[i], r[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			// x-coordinate of the edge a-b at height pt.Y, compared without
			// introducing floating point: cross-multiply the ratio test.
			// pt.X < xIntersect  <=>  (pt.X-a.X)*(b.Y-a.Y) < (b.X-a.X)*(pt.Y-a.Y)   [when b.Y>a.Y]
			dy := b.Y - a.Y
			lhs := (pt.X - a.X) * dy
			rhs := (b.X - a.X) * (pt.Y - a.Y)
			if dy < 0 {
				lhs, rhs = -lhs, -rhs
			}
			if lhs < rhs {
				inside = !inside
			}
		}
	}

	return inside
}

// PointOnSegment reports whether pt lies on closed segment a-b.
func PointOnSegment(pt, a, b Point) bool {
	cross := (b.X-a.X)*(pt.Y-a.Y) - (b.Y-a.Y)*(pt.X-a.X)
	if cross != 0 {
		return false
	}
	if pt.X < minI(a.X, b.X) || pt.X > maxI(a.X, b.X) {
		return false
	}
	if pt.Y < minI(a.Y, b.Y) || pt.Y > maxI(a.Y, b.Y) {
		return false
	}

	return true
}

// PointOnRing reports whether pt lies on any edge of r.
func PointOnRing(pt Point, r Ring) bool {
	n := len(r)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if PointOnSegment(pt, r[i], r[j]) {
			return true
		}
	}

	return false
}

// Contains reports whether pt lies inside or on the boundary of Polygon p,
// accounting for holes (a point inside a hole is not contained).
func (p Polygon) Contains(pt Point) bool {
	if !PointInRing(pt, p.Exterior) && !PointOnRing(pt, p.Exterior) {
		return false
	}
	for _, h := range p.Holes {
		if PointInRing(pt, h) {
			return false
		}
	}

	return true
}

func minI(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

func maxI(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}
