package wallgeom

// boolean.go implements the three polygon set operations named in
// spec.md §4.G: Union, Difference, Intersection. Fast, exact paths handle
// the overwhelmingly common cases for this domain (an aperture strictly
// inside the wall outline, or entirely clear of it; two disjoint
// apertures); the scoped Greiner-Hormann engine in ghclip.go handles the
// general boundary-straddling case.
//
// Precondition carried from the data model (spec.md §3): apertures are
// always simple, hole-free polygons. Union therefore operates on
// hole-free input and ignores a non-nil Holes field on its arguments
// (apertures never carry holes in this domain); Difference and
// Intersection track holes on the exterior-bearing side.

// bboxDisjoint reports whether the bounding boxes of a and b do not
// overlap at all (a cheap, conservative rejection test).
func bboxDisjoint(a, b Ring) bool {
	ba, bb := BBox(a), BBox(b)

	return ba.MaxX < bb.MinX || bb.MaxX < ba.MinX || ba.MaxY < bb.MinY || bb.MaxY < ba.MinY
}

// ringFullyInside reports whether every vertex of inner lies inside or on
// outer, and no edge of inner crosses an edge of outer. This is the
// "strictly nested, no boundary straddling" test used for the common
// aperture-inside-wall fast path.
func ringFullyInside(inner, outer Ring) bool {
	for _, p := range inner {
		if !PointInRing(p, outer) && !PointOnRing(p, outer) {
			return false
		}
	}
	n, m := len(inner), len(outer)
	for i := 0; i < n; i++ {
		a1, a2 := inner[i], inner[(i+1)%n]
		for j := 0; j < m; j++ {
			b1, b2 := outer[j], outer[(j+1)%m]
			if _, _, _, ok := segIntersect(a1, a2, b1, b2); ok {
				return false
			}
		}
	}

	return true
}

// ringTouchesBoundary reports whether any vertex of inner lies exactly on
// outer's boundary (a degenerate case the fast paths decline, falling
// through to the general engine for safety).
func ringTouchesBoundary(inner, outer Ring) bool {
	for _, p := range inner {
		if PointOnRing(p, outer) {
			return true
		}
	}

	return false
}

// Difference returns a minus b. b is treated as hole-free (apertures never
// carry holes in this domain); a's existing holes are preserved in the
// result wherever the corresponding output piece still contains them.
// Complexity: O(n) fast paths, O(n·m) when the general engine runs.
func Difference(a, b Polygon) MultiPolygon {
	aExt, bExt := a.Exterior, b.Exterior
	if len(aExt) < 3 {
		return nil
	}
	if len(bExt) < 3 || bboxDisjoint(aExt, bExt) {
		return MultiPolygon{a.Clone()}
	}
	if ringFullyInside(aExt, bExt) {
		return nil // a entirely consumed by b
	}
	if ringFullyInside(bExt, aExt) && !ringTouchesBoundary(bExt, aExt) {
		// common case: aperture strictly inside the wall outline, becomes a hole.
		for _, h := range a.Holes {
			if ringFullyInside(bExt, h) {
				return MultiPolygon{a.Clone()} // b already fully absorbed by an existing hole
			}
		}
		out := a.Clone()
		out.Holes = append(out.Holes, EnsureCW(bExt))

		return MultiPolygon{out}
	}
	// General case: b straddles a's boundary (partially clips the wall edge).
	pieces := ghDifference(aExt, bExt)
	if len(pieces) == 0 && !ringFullyInside(bExt, aExt) {
		return MultiPolygon{a.Clone()} // touching only: interiors are disjoint
	}
	var result MultiPolygon
	for _, piece := range pieces {
		if len(piece) < 3 || Area(piece) < AreaEps {
			continue
		}
		poly := Polygon{Exterior: EnsureCCW(piece)}
		for _, h := range a.Holes {
			if ringFullyInside(h, piece) {
				poly.Holes = append(poly.Holes, h.Clone())
			}
		}
		result = append(result, poly)
	}

	return result
}

// Intersection returns a ∩ b. ghIntersect clips exteriors only, so holes
// from both operands are carved out of each resulting piece afterward by
// subtracting them one at a time via Difference — a hole fully inside a
// piece becomes a hole of the result (Difference's own fast path), a hole
// straddling the piece's boundary is clipped instead of dropped, and a
// hole that fully consumes a piece removes it.
// Complexity: O(n) fast paths, O(n·m) when the general engine runs, plus
// O(h) Difference calls per piece for h combined holes.
func Intersection(a, b Polygon) MultiPolygon {
	aExt, bExt := a.Exterior, b.Exterior
	if len(aExt) < 3 || len(bExt) < 3 || bboxDisjoint(aExt, bExt) {
		return nil
	}
	var pieces []Ring
	switch {
	case ringFullyInside(aExt, bExt):
		pieces = []Ring{aExt.Clone()}
	case ringFullyInside(bExt, aExt):
		pieces = []Ring{bExt.Clone()}
	default:
		pieces = ghIntersect(aExt, bExt)
	}
	var result MultiPolygon
	for _, piece := range pieces {
		if len(piece) < 3 || Area(piece) < AreaEps {
			continue
		}
		result = append(result, carveHoles(piece, a.Holes, b.Holes)...)
	}

	return result
}

// carveHoles subtracts every ring in aHoles and bHoles from piece in turn,
// via Difference, so pieces that survive reflect holes straddling piece's
// boundary as well as holes fully inside it.
func carveHoles(piece Ring, aHoles, bHoles []Ring) MultiPolygon {
	cur := MultiPolygon{{Exterior: EnsureCCW(piece.Clone())}}
	for _, h := range aHoles {
		cur = subtractHole(cur, h)
	}
	for _, h := range bHoles {
		cur = subtractHole(cur, h)
	}

	return cur
}

// subtractHole removes hole from every polygon in cur via Difference.
func subtractHole(cur MultiPolygon, hole Ring) MultiPolygon {
	if len(hole) < 3 {
		return cur
	}
	holePoly := Polygon{Exterior: EnsureCCW(hole)}
	var next MultiPolygon
	for _, p := range cur {
		if p.IsEmpty() {
			continue
		}
		next = append(next, Difference(p, holePoly)...)
	}

	return next
}

// Union merges hole-free polygons polys into a MultiPolygon of disjoint
// pieces, combining any that overlap. Holes on individual inputs are
// ignored, matching this domain's only caller (apertures are always
// hole-free, per spec.md §3).
// Complexity: O(k²) polygon-pair merge attempts in the worst case, each
// O(n·m) when two candidates actually overlap.
func Union(polys []Polygon) MultiPolygon {
	var acc MultiPolygon
	for _, p := range polys {
		if len(p.Exterior) < 3 || Area(p.Exterior) < AreaEps {
			continue
		}
		merged := false
		for i := range acc {
			if bboxDisjoint(acc[i].Exterior, p.Exterior) {
				continue
			}
			pieces := unionPairRings(acc[i].Exterior, p.Exterior)
			if len(pieces) == 0 {
				continue
			}
			rest := append(MultiPolygon{}, acc[:i]...)
			rest = append(rest, acc[i+1:]...)
			for _, piece := range pieces {
				rest = append(rest, Polygon{Exterior: EnsureCCW(piece)})
			}
			acc = rest
			merged = true
			break
		}
		if !merged {
			acc = append(acc, Polygon{Exterior: EnsureCCW(p.Exterior)})
		}
	}

	return acc
}

// unionPairRings merges two overlapping hole-free rings into one or more
// pieces, using containment fast paths and falling back to the general
// engine for a genuine boundary-straddling overlap.
func unionPairRings(a, b Ring) []Ring {
	switch {
	case ringFullyInside(a, b):
		return []Ring{b.Clone()}
	case ringFullyInside(b, a):
		return []Ring{a.Clone()}
	default:
		out := ghUnion(a, b)
		if len(out) == 0 {
			// Touching-but-not-crossing (shared edge/vertex only): treat as
			// disjoint rather than guessing at a merge.
			return []Ring{a.Clone(), b.Clone()}
		}

		return out
	}
}
