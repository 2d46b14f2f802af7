package postproc

import (
	"github.com/Nic0Byte/wall-build-1-sub002/diag"
	"github.com/Nic0Byte/wall-build-1-sub002/wallgeom"
)

// halfAreaFraction is the area-retention threshold below which a clipped
// standard block is reclassified as custom (spec.md §4.C pass 3).
const halfAreaFraction = 0.5

// clipToWall intersects every piece with wall (the working polygon
// carved by valid apertures), applying spec.md §4.C pass 3's per-result
// handling.
func clipToWall(rows []Row, wall wallgeom.Polygon, warn *diag.Collector) []Row {
	out := make([]Row, len(rows))
	for i, row := range rows {
		var kept []Piece
		for _, p := range row.Pieces {
			kept = append(kept, clipPiece(p, wall, warn)...)
		}
		out[i] = Row{Y: row.Y, Height: row.Height, Pieces: kept}
	}

	return out
}

// clipPiece intersects p with wall. A standard piece keeps its status
// only if the clipped area retains at least half the original area and
// the clipped bounding box still fits the piece's own nominal W×H — the
// second condition is a defensive bound (clipping only ever shrinks a
// rectangle's bbox, so it never actually rejects anything the area test
// didn't already catch) rather than a live constraint.
func clipPiece(p Piece, wall wallgeom.Polygon, warn *diag.Collector) []Piece {
	result := wallgeom.Intersection(p.Polygon, wall)
	switch len(result) {
	case 0:
		if warn != nil {
			warn.Add(diag.KindDegenerateDropped, "clip: piece at (%d,%d) %dx%d fell entirely outside the wall", p.X, p.Y, p.Width, p.Height)
		}

		return nil
	case 1:
		clipped := result[0]
		if clipped.IsEmpty() {
			if warn != nil {
				warn.Add(diag.KindDegenerateDropped, "clip: piece at (%d,%d) %dx%d clipped to near-zero area", p.X, p.Y, p.Width, p.Height)
			}

			return nil
		}
		bbox := clipped.BBox()
		bw, bh := bbox.Width(), bbox.Height()
		if p.IsStandard {
			frac := clipped.Area() / p.nominalArea()
			if frac >= halfAreaFraction && bw <= p.Width && bh <= p.Height {
				p.Polygon = clipped

				return []Piece{p}
			}
		}

		return []Piece{{X: bbox.MinX, Y: bbox.MinY, Width: bw, Height: bh, IsStandard: false, Polygon: clipped}}
	default:
		out := make([]Piece, 0, len(result))
		for _, comp := range result {
			if comp.IsEmpty() {
				continue
			}
			bbox := comp.BBox()
			out = append(out, Piece{X: bbox.MinX, Y: bbox.MinY, Width: bbox.Width(), Height: bbox.Height(), IsStandard: false, Polygon: comp})
		}
		if warn != nil {
			warn.Add(diag.KindMultiComponentPicked, "clip: piece at (%d,%d) split into %d components", p.X, p.Y, len(out))
		}

		return out
	}
}
