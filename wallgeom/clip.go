package wallgeom

// clipRingToHalfPlane clips ring subject against the half-plane
// inside(p) (a point predicate that is true on the "kept" side), using
// Sutherland-Hodgman. edgeAt returns the crossing point between a and b
// given that exactly one of them satisfies inside. Both subject and the
// half-plane are assumed convex-compatible (the half-plane always is).
// Complexity: O(n).
func clipRingToHalfPlane(subject Ring, inside func(Point) bool, crossing func(a, b Point) Point) Ring {
	n := len(subject)
	if n == 0 {
		return nil
	}
	out := make(Ring, 0, n+2)
	prev := subject[n-1]
	prevIn := inside(prev)
	for _, cur := range subject {
		curIn := inside(cur)
		switch {
		case curIn && prevIn:
			out = append(out, cur)
		case curIn && !prevIn:
			out = append(out, crossing(prev, cur), cur)
		case !curIn && prevIn:
			out = append(out, crossing(prev, cur))
		} // neither in: emit nothing
		prev, prevIn = cur, curIn
	}

	return out
}

// xAt returns the point where segment a-b crosses vertical line x=at,
// rounded to the nearest millimetre.
func xAt(a, b Point, at int64) Point {
	if a.X == b.X {
		return Point{X: at, Y: a.Y}
	}
	t := float64(at-a.X) / float64(b.X-a.X)
	y := float64(a.Y) + t*float64(b.Y-a.Y)

	return Point{X: at, Y: roundToMM(y)}
}

// yAt returns the point where segment a-b crosses horizontal line y=at,
// rounded to the nearest millimetre.
func yAt(a, b Point, at int64) Point {
	if a.Y == b.Y {
		return Point{X: a.X, Y: at}
	}
	t := float64(at-a.Y) / float64(b.Y-a.Y)
	x := float64(a.X) + t*float64(b.X-a.X)

	return Point{X: roundToMM(x), Y: at}
}

// ClipRingToRect clips a single ring against rect using four sequential
// Sutherland-Hodgman half-plane passes (left, right, bottom, top). The
// input ring may be any simple polygon (convex or not); the clip window
// itself is always convex, which is what makes the four-pass composition
// exact. Returns an empty Ring if nothing survives.
// Complexity: O(n).
func ClipRingToRect(r Ring, rect Rect) Ring {
	clipped := clipRingToHalfPlane(r,
		func(p Point) bool { return p.X >= rect.MinX },
		func(a, b Point) Point { return xAt(a, b, rect.MinX) })
	clipped = clipRingToHalfPlane(clipped,
		func(p Point) bool { return p.X <= rect.MaxX },
		func(a, b Point) Point { return xAt(a, b, rect.MaxX) })
	clipped = clipRingToHalfPlane(clipped,
		func(p Point) bool { return p.Y >= rect.MinY },
		func(a, b Point) Point { return yAt(a, b, rect.MinY) })
	clipped = clipRingToHalfPlane(clipped,
		func(p Point) bool { return p.Y <= rect.MaxY },
		func(a, b Point) Point { return yAt(a, b, rect.MaxY) })

	return clipped
}

// ClipToRect intersects Polygon p with the axis-aligned rectangle rect.
// The exterior is clipped directly; each hole is clipped the same way and
// kept as a hole of every exterior piece it still falls inside of. Because
// rect is convex, clipping the exterior can only ever produce a single
// simple ring (Sutherland-Hodgman never splits a polygon against a convex
// window), so the result has at most one component unless the exterior
// clip itself degenerates to empty.
// Complexity: O(n) in total vertex count across exterior and holes.
func ClipToRect(p Polygon, rect Rect) Polygon {
	extClipped := ClipRingToRect(p.Exterior, rect)
	if len(extClipped) < 3 || Area(extClipped) < AreaEps {
		return Polygon{}
	}
	out := Polygon{Exterior: EnsureCCW(extClipped)}
	for _, h := range p.Holes {
		hc := ClipRingToRect(h, rect)
		if len(hc) < 3 || Area(hc) < AreaEps {
			continue
		}
		out.Holes = append(out.Holes, EnsureCW(hc))
	}

	return out
}
