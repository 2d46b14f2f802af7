package postproc

import "github.com/Nic0Byte/wall-build-1-sub002/wallgeom"

// mergeAdjacencyTolerance is the maximum gap (mm) between two pieces for
// them to still be considered part of the same mergeable run.
const mergeAdjacencyTolerance = 5

// mergeRuns finds, within each row, maximal runs of consecutive pieces
// (by X order) that are each either custom or a standard block strictly
// narrower than wl, and whose combined span is ≤ wl; each such run is
// replaced by a single custom cut from a wl stock (spec.md §4.C pass 2).
// A row that arrives right-to-left (first piece right of its last) is
// handed back right-to-left.
// Complexity: O(pieces²) worst case per row for the insertion sort,
// O(pieces) for the sweep.
func mergeRuns(rows []Row, wl int64) []Row {
	out := make([]Row, len(rows))
	for i, row := range rows {
		sorted := append([]Piece(nil), row.Pieces...)
		sortPiecesByX(sorted)
		merged := mergeRow(sorted, wl)
		if n := len(row.Pieces); n > 1 && row.Pieces[0].X > row.Pieces[n-1].X {
			for l, r := 0, len(merged)-1; l < r; l, r = l+1, r-1 {
				merged[l], merged[r] = merged[r], merged[l]
			}
		}
		out[i] = Row{Y: row.Y, Height: row.Height, Pieces: merged}
	}

	return out
}

func mergeRow(sorted []Piece, wl int64) []Piece {
	result := make([]Piece, 0, len(sorted))
	n := len(sorted)
	for i := 0; i < n; {
		if !isMergeable(sorted[i], wl) {
			result = append(result, sorted[i])
			i++
			continue
		}
		j := i
		for j+1 < n &&
			isMergeable(sorted[j+1], wl) &&
			adjacent(sorted[j], sorted[j+1]) &&
			span(sorted[i], sorted[j+1]) <= wl {
			j++
		}
		if j == i {
			result = append(result, sorted[i])
			i++
			continue
		}
		result = append(result, mergePieces(sorted[i:j+1]))
		i = j + 1
	}

	return result
}

func isMergeable(p Piece, wl int64) bool {
	return !p.IsStandard || p.Width < wl
}

func adjacent(a, b Piece) bool {
	gap := b.X - (a.X + a.Width)
	if gap < 0 {
		gap = -gap
	}

	return gap <= mergeAdjacencyTolerance
}

func span(first, last Piece) int64 {
	return last.X + last.Width - first.X
}

func mergePieces(run []Piece) Piece {
	first, last := run[0], run[len(run)-1]
	w := span(first, last)

	return Piece{
		X: first.X, Y: first.Y, Width: w, Height: first.Height,
		IsStandard: false,
		Polygon:    rectPolygon(first.X, first.Y, w, first.Height),
	}
}

// rectPolygon builds a plain rectangular Polygon, used for any
// not-yet-clipped piece's nominal geometry.
func rectPolygon(x, y, width, height int64) wallgeom.Polygon {
	return wallgeom.Polygon{Exterior: wallgeom.Rect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}.Ring()}
}

// sortPiecesByX sorts pieces in place by ascending X (insertion sort:
// rows hold at most a few dozen pieces).
func sortPiecesByX(pieces []Piece) {
	for i := 1; i < len(pieces); i++ {
		for j := i; j > 0 && pieces[j-1].X > pieces[j].X; j-- {
			pieces[j-1], pieces[j] = pieces[j], pieces[j-1]
		}
	}
}
