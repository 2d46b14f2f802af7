package wallgeom

import "github.com/Nic0Byte/wall-build-1-sub002/diag"

// Sanitize performs the spec.md §4.G cleanup pass: it removes duplicate
// consecutive vertices and collinear slivers from every ring, then
// re-establishes winding (exterior CCW, holes CW). Self-intersecting
// rings are not detected or repaired.
// Holes that degenerate below AreaEps are dropped with a
// diag.KindHoleDropped warning appended to warn (preferring preservation
// per the Open Question decision in DESIGN.md — a dropped hole is only
// ever the result of the hole itself collapsing, never of speculative
// reconstruction).
// Complexity: O(n) per ring, bounded re-scans for chained collinear runs.
func Sanitize(p Polygon, warn *diag.Collector) Polygon {
	out := Polygon{Exterior: EnsureCCW(sanitizeRing(p.Exterior))}
	for i, h := range p.Holes {
		sh := sanitizeRing(h)
		if len(sh) < 3 || Area(sh) < AreaEps {
			if warn != nil {
				warn.Add(diag.KindHoleDropped, "hole %d degenerated to area below AreaEps during sanitize", i)
			}
			continue
		}
		out.Holes = append(out.Holes, EnsureCW(sh))
	}

	return out
}

// sanitizeRing removes duplicate consecutive vertices and collinear
// middle vertices, re-scanning until stable (bounded by ring length).
func sanitizeRing(r Ring) Ring {
	cur := removeDuplicates(r)
	for pass := 0; pass < len(r)+1; pass++ {
		next := removeCollinear(cur)
		if len(next) == len(cur) {
			cur = next

			break
		}
		cur = next
	}

	return cur
}

func removeDuplicates(r Ring) Ring {
	n := len(r)
	if n < 2 {
		return r.Clone()
	}
	out := make(Ring, 0, n)
	for i := 0; i < n; i++ {
		j := (i - 1 + n) % n
		if r[i] == r[j] {
			continue
		}
		out = append(out, r[i])
	}

	return out
}

func removeCollinear(r Ring) Ring {
	n := len(r)
	if n < 4 {
		return r
	}
	out := make(Ring, 0, n)
	for i := 0; i < n; i++ {
		prev := r[(i-1+n)%n]
		cur := r[i]
		next := r[(i+1)%n]
		cross := (cur.X-prev.X)*(next.Y-prev.Y) - (cur.Y-prev.Y)*(next.X-prev.X)
		if cross == 0 && PointOnSegment(cur, prev, next) {
			continue // cur is a collinear sliver between prev and next
		}
		out = append(out, cur)
	}
	if len(out) < 3 {
		return r
	}

	return out
}
