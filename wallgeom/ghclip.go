package wallgeom

import "sort"

// ghclip.go implements a scoped Greiner-Hormann polygon clipping engine
// for two simple (non-self-intersecting), hole-free Rings whose edges
// cross transversally (proper crossings only — collinear-overlapping
// edges are not split, a limitation of this from-scratch
// implementation). Higher-level callers in boolean.go
// special-case the fully-inside/fully-outside/disjoint situations before
// ever reaching this engine, which covers the large majority of wall
// apertures (doors/windows strictly inside the wall outline, or entirely
// clear of it).
//
// The engine computes A∩B directly. Difference and union are derived by
// reversing ring winding before tracing (markEntryExit inverts its
// inside/outside sense when the other ring is wound CW, so reversing a
// ring flips every entry/exit classification on the list marked against
// it, which is what turns an
// intersection trace into a difference or union trace — see ghIntersect,
// ghDifference, ghUnion below).

// ghNode is one vertex of a Greiner-Hormann working list: either an
// original ring vertex or a synthesized edge-edge intersection vertex.
type ghNode struct {
	p        Point
	isInter  bool
	entry    bool
	visited  bool
	neighbor *ghNode
	next     *ghNode
	prev     *ghNode
	alpha    float64 // parametric position on its own edge, intersection nodes only
}

// buildGHList builds a circular doubly linked list from ring r.
func buildGHList(r Ring) *ghNode {
	nodes := make([]*ghNode, len(r))
	for i, p := range r {
		nodes[i] = &ghNode{p: p}
	}
	n := len(nodes)
	for i := 0; i < n; i++ {
		nodes[i].next = nodes[(i+1)%n]
		nodes[i].prev = nodes[(i-1+n)%n]
	}

	return nodes[0]
}

// segIntersect computes the proper (non-endpoint, non-parallel) crossing
// of segment p1-p2 with segment p3-p4, returning the point and the
// parametric positions (ta, tb) in the strictly open interval (0,1) on
// success.
func segIntersect(p1, p2, p3, p4 Point) (pt Point, ta, tb float64, ok bool) {
	d1x, d1y := float64(p2.X-p1.X), float64(p2.Y-p1.Y)
	d2x, d2y := float64(p4.X-p3.X), float64(p4.Y-p3.Y)
	denom := d1x*d2y - d1y*d2x
	const eps = 1e-9
	if denom > -eps && denom < eps {
		return Point{}, 0, 0, false // parallel or collinear
	}
	ex, ey := float64(p3.X-p1.X), float64(p3.Y-p1.Y)
	t := (ex*d2y - ey*d2x) / denom
	u := (ex*d1y - ey*d1x) / denom
	if t <= eps || t >= 1-eps || u <= eps || u >= 1-eps {
		return Point{}, 0, 0, false
	}
	x := float64(p1.X) + t*d1x
	y := float64(p1.Y) + t*d1y

	return Point{X: roundToMM(x), Y: roundToMM(y)}, t, u, true
}

// insertIntersections finds every proper crossing between subject and
// clip edges, inserting a paired node into each working list at the
// correct position along its own edge.
func insertIntersections(subjHead, clipHead *ghNode, subj, clip Ring) {
	type hit struct {
		pt     Point
		alpha  float64
		after  *ghNode // node the insertion follows, on the owning list
		paired *ghNode
	}
	var subjHits, clipHits []hit

	sn := subjHead
	for sEdgeStart := 0; sEdgeStart < len(subj); sEdgeStart++ {
		s1, s2 := sn.p, sn.next.p
		cn := clipHead
		for cEdgeStart := 0; cEdgeStart < len(clip); cEdgeStart++ {
			c1, c2 := cn.p, cn.next.p
			if pt, ta, tb, ok := segIntersect(s1, s2, c1, c2); ok {
				sNode := &ghNode{p: pt, isInter: true, alpha: ta}
				cNode := &ghNode{p: pt, isInter: true, alpha: tb}
				sNode.neighbor = cNode
				cNode.neighbor = sNode
				subjHits = append(subjHits, hit{pt: pt, alpha: ta, after: sn, paired: sNode})
				clipHits = append(clipHits, hit{pt: pt, alpha: tb, after: cn, paired: cNode})
			}
			cn = cn.next
		}
		sn = sn.next
	}

	insertAll := func(hits []hit) {
		// Group by owning edge (the "after" node), then insert sorted by alpha.
		byEdge := make(map[*ghNode][]hit)
		for _, h := range hits {
			byEdge[h.after] = append(byEdge[h.after], h)
		}
		for after, group := range byEdge {
			sort.Slice(group, func(i, j int) bool { return group[i].alpha < group[j].alpha })
			cursor := after
			for _, h := range group {
				node := h.paired
				node.prev = cursor
				node.next = cursor.next
				cursor.next.prev = node
				cursor.next = node
				cursor = node
			}
		}
	}
	insertAll(subjHits)
	insertAll(clipHits)
}

// markEntryExit walks list starting at head, classifying each
// intersection node as entry (true, the list is going from outside to
// inside other) or exit (false), by alternating from the initial
// inside/outside status of head itself with respect to other. A CW other
// ring inverts every label, which is how reversed winding yields the
// difference and union traces.
func markEntryExit(head *ghNode, other Ring) {
	status := !PointInRing(head.p, other)
	if !IsCCW(other) {
		status = !status
	}
	n := head
	first := true
	for n != head || first {
		first = false
		if n.isInter {
			n.entry = status
			status = !status
		}
		n = n.next
	}
}

// traceIntersection walks the marked lists tracing A∩B: starting at each
// unvisited intersection node, follow the current list forward while
// entry==true or backward while entry==false, switching lists at every
// intersection node, until back at the start.
func traceIntersection(subjHead *ghNode) []Ring {
	var result []Ring
	// collect all intersection nodes reachable from subjHead
	var inters []*ghNode
	n := subjHead
	for {
		if n.isInter {
			inters = append(inters, n)
		}
		n = n.next
		if n == subjHead {
			break
		}
	}
	if len(inters) == 0 {
		return nil
	}

	for _, start := range inters {
		if start.visited {
			continue
		}
		var ring Ring
		cur := start
		for {
			cur.visited = true
			if cur.neighbor != nil {
				cur.neighbor.visited = true
			}
			forward := cur.entry
			for {
				if forward {
					cur = cur.next
				} else {
					cur = cur.prev
				}
				ring = append(ring, cur.p)
				if cur.isInter {
					cur.visited = true
					if cur.neighbor != nil {
						cur.neighbor.visited = true
					}
					break
				}
			}
			cur = cur.neighbor
			if cur == nil || cur == start {
				break
			}
		}
		if len(ring) >= 3 && Area(ring) >= AreaEps {
			result = append(result, ring)
		}
	}

	return result
}

// ghIntersect computes the intersection of two simple rings with proper
// (transversal) crossings. Returns nil if the rings do not properly cross
// (callers must handle the fully-inside/fully-outside cases themselves).
func ghIntersect(subj, clip Ring) []Ring {
	subjHead := buildGHList(subj)
	clipHead := buildGHList(clip)
	insertIntersections(subjHead, clipHead, subj, clip)
	markEntryExit(subjHead, clip)
	markEntryExit(clipHead, subj)

	return traceIntersection(subjHead)
}

// ghDifference computes subj minus clip via the reversed-clip trick:
// reversing clip's winding flips its inside/outside sense, turning an
// intersection trace into a difference trace.
func ghDifference(subj, clip Ring) []Ring {
	return ghIntersect(subj, Reversed(clip))
}

// ghUnion computes subj union clip via the reversed-both trick: reversing
// both rings flips every entry/exit classification, turning an
// intersection trace into a union trace; the resulting rings are then
// reversed back to restore CCW winding.
func ghUnion(subj, clip Ring) []Ring {
	raw := ghIntersect(Reversed(subj), Reversed(clip))
	out := make([]Ring, len(raw))
	for i, r := range raw {
		out[i] = Reversed(r)
	}

	return out
}
