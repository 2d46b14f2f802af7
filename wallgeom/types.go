package wallgeom

// AreaEps is the area epsilon (mm^2) below which a region is considered
// empty, per spec.md §4.G.
const AreaEps = 0.01

// Point is an integer-millimetre coordinate in the wall frame: origin at
// (0,0), X grows right, Y grows up.
type Point struct {
	X, Y int64
}

// Ring is a closed sequence of Points describing one polygon boundary. The
// first point is not repeated at the end. A valid Ring has at least 3
// distinct vertices and does not self-intersect.
type Ring []Point

// Clone returns an independent copy of the Ring.
func (r Ring) Clone() Ring {
	if r == nil {
		return nil
	}
	out := make(Ring, len(r))
	copy(out, r)

	return out
}

// Polygon is a simple closed region with optional interior holes.
// Invariant: Exterior is wound CCW, each entry of Holes is wound CW, and
// no ring self-intersects (Sanitize re-establishes the winding; neither
// Sanitize nor the zero value checks for or repairs self-intersection).
type Polygon struct {
	Exterior Ring
	Holes    []Ring
}

// Clone returns an independent deep copy of the Polygon.
func (p Polygon) Clone() Polygon {
	out := Polygon{Exterior: p.Exterior.Clone()}
	if len(p.Holes) > 0 {
		out.Holes = make([]Ring, len(p.Holes))
		for i, h := range p.Holes {
			out.Holes[i] = h.Clone()
		}
	}

	return out
}

// MultiPolygon is an ordered list of disjoint Polygons. Result order from
// wallgeom operations is deterministic (component discovery order), never
// sorted by area unless the caller calls PickLargest.
type MultiPolygon []Polygon

// Rect is an axis-aligned rectangle, inclusive of both corners, used as a
// convex clip window (row stripes, block bounding boxes).
type Rect struct {
	MinX, MinY, MaxX, MaxY int64
}

// Width returns MaxX-MinX.
func (r Rect) Width() int64 { return r.MaxX - r.MinX }

// Height returns MaxY-MinY.
func (r Rect) Height() int64 { return r.MaxY - r.MinY }

// Empty reports whether the Rect has non-positive width or height.
func (r Rect) Empty() bool { return r.MaxX <= r.MinX || r.MaxY <= r.MinY }

// Ring returns the Rect as a CCW Ring, suitable for use as a Polygon
// exterior or a ClipToRect clip window.
func (r Rect) Ring() Ring {
	return Ring{
		{X: r.MinX, Y: r.MinY},
		{X: r.MaxX, Y: r.MinY},
		{X: r.MaxX, Y: r.MaxY},
		{X: r.MinX, Y: r.MaxY},
	}
}
