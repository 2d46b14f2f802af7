package wallgeom

import "math"

// SignedArea returns the shoelace signed area of ring r: positive for a
// CCW winding, negative for CW. Returns 0 for rings of fewer than 3
// vertices.
// Complexity: O(n).
func SignedArea(r Ring) float64 {
	n := len(r)
	if n < 3 {
		return 0
	}
	var sum int64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += r[i].X*r[j].Y - r[j].X*r[i].Y
	}

	return float64(sum) / 2
}

// Area returns the unsigned area of ring r.
func Area(r Ring) float64 {
	a := SignedArea(r)
	if a < 0 {
		return -a
	}

	return a
}

// IsCCW reports whether ring r is wound counter-clockwise.
func IsCCW(r Ring) bool {
	return SignedArea(r) > 0
}

// Reversed returns a copy of r with reversed winding order.
func Reversed(r Ring) Ring {
	n := len(r)
	out := make(Ring, n)
	for i, p := range r {
		out[n-1-i] = p
	}

	return out
}

// EnsureCCW returns r wound counter-clockwise, reversing it if necessary.
func EnsureCCW(r Ring) Ring {
	if IsCCW(r) {
		return r.Clone()
	}

	return Reversed(r)
}

// EnsureCW returns r wound clockwise, reversing it if necessary.
func EnsureCW(r Ring) Ring {
	if !IsCCW(r) {
		return r.Clone()
	}

	return Reversed(r)
}

// BBox returns the axis-aligned bounding Rect of ring r. Callers must not
// invoke BBox on an empty ring.
// Complexity: O(n).
func BBox(r Ring) Rect {
	minX, minY := r[0].X, r[0].Y
	maxX, maxY := r[0].X, r[0].Y
	for _, p := range r[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Area returns the Polygon's area: exterior area minus the sum of hole
// areas. Complexity: O(n) in total vertex count.
func (p Polygon) Area() float64 {
	total := Area(p.Exterior)
	for _, h := range p.Holes {
		total -= Area(h)
	}
	if total < 0 {
		return 0
	}

	return total
}

// BBox returns the Polygon's exterior bounding Rect. Callers must not
// invoke BBox on a Polygon with an empty Exterior.
func (p Polygon) BBox() Rect {
	return BBox(p.Exterior)
}

// IsEmpty reports whether p's area is below AreaEps.
func (p Polygon) IsEmpty() bool {
	return p.Area() < AreaEps
}

// Area returns the total area across all components of mp.
func (mp MultiPolygon) Area() float64 {
	var total float64
	for _, p := range mp {
		total += p.Area()
	}

	return total
}

// roundToMM rounds a float64 coordinate to the nearest integer millimetre,
// matching the emitted-record precision required by spec.md §6.
func roundToMM(v float64) int64 {
	return int64(math.Round(v))
}
