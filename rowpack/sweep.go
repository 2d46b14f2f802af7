package rowpack

import "github.com/Nic0Byte/wall-build-1-sub002/wallgeom"

// halfAreaFraction is the threshold below which a clipped standard-width
// candidate is reclassified as custom (spec.md §4.B rule 5).
const halfAreaFraction = 0.5

// PackRow greedily sweeps one connected stripe component comp — already
// clipped to one row's [y, y+height) band — placing the largest
// catalogue width that fits the remaining span, in traversal order dir.
// widths need not be sorted; PackRow considers them in descending order
// internally. Complexity: O(len(widths) · blocks).
func PackRow(comp wallgeom.Polygon, y, height int64, widths [3]int64, dir Direction) Result {
	desc := descendingDistinct(widths)
	if len(desc) == 0 || comp.IsEmpty() {
		return Result{}
	}
	bbox := comp.BBox()

	var res Result
	cursor := bbox.MinX
	if dir == RTL {
		cursor = bbox.MaxX
	}

	for {
		remaining := bbox.MaxX - cursor
		if dir == RTL {
			remaining = cursor - bbox.MinX
		}
		if remaining <= 0 {
			break
		}

		width := fittingWidth(desc, remaining)
		if width == 0 {
			emitCustom(&res, comp, cursor, remaining, y, height, dir)
			break
		}

		rectLo, rectHi := cursor, cursor+width
		if dir == RTL {
			rectLo, rectHi = cursor-width, cursor
		}
		rect := wallgeom.Rect{MinX: rectLo, MinY: y, MaxX: rectHi, MaxY: y + height}
		clipped := wallgeom.ClipToRect(comp, rect)

		nominal := float64(width) * float64(height)
		if !clipped.IsEmpty() && clipped.Area()/nominal >= halfAreaFraction {
			res.Placed = append(res.Placed, PlacedBlock{X: rectLo, Y: y, Width: width, Height: height})
		} else if !clipped.IsEmpty() {
			res.Customs = append(res.Customs, CustomPiece{
				X: rectLo, Y: y, Width: width, Height: height, Polygon: clipped,
			})
		}
		// an empty clip (rect fell entirely outside comp) drops silently:
		// the stripe's true extent was narrower than its bbox here.

		if dir == RTL {
			cursor -= width
		} else {
			cursor += width
		}
	}

	return res
}

// emitCustom clips the residual span [cursor, cursor+remaining) (or its
// RTL mirror) against comp and, if anything survives, appends it as a
// custom piece.
func emitCustom(res *Result, comp wallgeom.Polygon, cursor, remaining, y, height int64, dir Direction) {
	lo, hi := cursor, cursor+remaining
	if dir == RTL {
		lo, hi = cursor-remaining, cursor
	}
	rect := wallgeom.Rect{MinX: lo, MinY: y, MaxX: hi, MaxY: y + height}
	clipped := wallgeom.ClipToRect(comp, rect)
	if clipped.IsEmpty() {
		return
	}
	res.Customs = append(res.Customs, CustomPiece{
		X: lo, Y: y, Width: remaining, Height: height, Polygon: clipped,
	})
}

// fittingWidth returns the largest width in desc (already sorted
// descending, distinct) that is ≤ span, or 0 if none fits.
func fittingWidth(desc []int64, span int64) int64 {
	for _, w := range desc {
		if w <= span {
			return w
		}
	}

	return 0
}

// descendingDistinct returns widths sorted descending with duplicates
// and non-positive entries removed.
func descendingDistinct(widths [3]int64) []int64 {
	seen := make(map[int64]bool, 3)
	out := make([]int64, 0, 3)
	for _, w := range widths {
		if w > 0 && !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] < out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}

	return out
}
