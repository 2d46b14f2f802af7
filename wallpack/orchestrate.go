package wallpack

import (
	"context"
	"sort"

	"github.com/Nic0Byte/wall-build-1-sub002/combpack"
	"github.com/Nic0Byte/wall-build-1-sub002/diag"
	"github.com/Nic0Byte/wall-build-1-sub002/postproc"
	"github.com/Nic0Byte/wall-build-1-sub002/reinforce"
	"github.com/Nic0Byte/wall-build-1-sub002/rowpack"
	"github.com/Nic0Byte/wall-build-1-sub002/wallgeom"
)

// adaptiveRowThreshold is the minimum vertical residue that earns a
// final, reduced-height row (spec.md §4.P step 5).
const adaptiveRowThreshold = 150

// PackWall computes a bill of materials for in: an ordered placement of
// standard blocks, a list of custom pieces cut to cover the residue, and
// any recoverable geometric anomalies. Only configuration errors —
// validated before any row is packed — and ctx.Err() on cancellation are
// returned as error; every geometric anomaly downstream becomes a Warning
// instead.
// ctx is polled once between main rows, never mid-row, matching the
// single-threaded synchronous model this package assumes throughout.
func PackWall(ctx context.Context, in Input) (Result, error) {
	if err := validateStatic(in); err != nil {
		return Result{}, err
	}

	var warn diag.Collector
	exterior := wallgeom.Sanitize(wallgeom.Polygon{Exterior: in.Exterior}, &warn)
	if err := validateExterior(exterior); err != nil {
		return Result{}, err
	}

	wallArea := exterior.Area()
	validApertures := filterApertures(in.Apertures, wallArea, &warn)
	working := buildWorkingPolygon(exterior, validApertures, &warn)
	if working.IsEmpty() {
		warn.Add(diag.KindDegenerateDropped, "working polygon collapsed to empty area after carving apertures")

		return Result{Warnings: warn.Warnings(), Report: buildReport(nil, nil)}, nil
	}

	band := working.BBox()
	y0, y1 := band.MinY, band.MaxY
	if in.Vertical.GroundOffsetEnabled {
		y0 += in.Vertical.GroundOffset
	}
	if in.Vertical.CeilingOffsetEnabled {
		y1 -= in.Vertical.CeilingOffset
	}
	hAvail := y1 - y0
	if err := validateVerticalBand(hAvail); err != nil {
		return Result{}, err
	}

	n := hAvail / in.Height
	residue := hAvail - n*in.Height

	rows := make([]postproc.Row, 0, n+1)
	var prevRow reinforce.Row // global frame; nil for the ground row
	for k := int64(0); k < n; k++ {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}
		y := y0 + k*in.Height
		row, nextPrev := packMainRow(working, y, in.Height, in, prevRow, &warn)
		rows = append(rows, row)
		prevRow = nextPrev
	}

	if residue >= adaptiveRowThreshold {
		height := residue
		if in.Height < height {
			height = in.Height
		}
		rows = append(rows, packAdaptiveRow(working, y0+n*in.Height, height, in))
	}

	processed := postproc.Process(rows, working, in.Widths, &warn)

	return assembleResult(processed, &warn), nil
}

// packMainRow intersects the working polygon with the row's horizontal
// stripe, dispatches each connected component to B or S per in.Strategy,
// and concatenates the pieces in direction order (spec.md §4.P step 4).
// It returns the row's pieces and, in global X coordinates, the standard
// blocks it placed — the next row's reinforcement lower bound.
func packMainRow(working wallgeom.Polygon, y, height int64, in Input, prevRow reinforce.Row, warn *diag.Collector) (postproc.Row, reinforce.Row) {
	comps := stripeComponents(working, y, height, in.Direction)

	var pieces []postproc.Piece
	var rowBlocks reinforce.Row
	for _, comp := range comps {
		cbbox := comp.BBox()

		var compPieces []postproc.Piece
		var compBlocks reinforce.Row
		switch in.Strategy {
		case StrategySmall:
			localLower := lowerForPack(prevRow, cbbox, in.Direction)
			res := combpack.Pack(int(cbbox.Width()), toIntWidths(in.Widths), *in.Reinforcement, localLower)
			if res.FellBack {
				warn.Add(diag.KindCoverageFallback, "row y=%d: no reinforcement-covered decomposition for span [%d,%d); falling back to greedy fill", y, cbbox.MinX, cbbox.MaxX)
				rr := rowpack.PackRow(comp, y, height, in.Widths, in.Direction)
				compPieces, compBlocks = fromRowpackResult(rr)
			} else {
				compPieces, compBlocks = fromCandidate(res.Best, cbbox, y, height, in.Direction)
			}
		default: // StrategyBig
			rr := rowpack.PackRow(comp, y, height, in.Widths, in.Direction)
			compPieces, compBlocks = fromRowpackResult(rr)
		}
		pieces = append(pieces, compPieces...)
		rowBlocks = append(rowBlocks, compBlocks...)
	}

	return postproc.Row{Y: y, Height: height, Pieces: pieces}, rowBlocks
}

// packAdaptiveRow fills the optional reduced-height top row with a
// simplified greedy pass regardless of strategy: reinforcement coverage
// is never validated here because no row sits above it (spec.md §4.P
// step 5).
func packAdaptiveRow(working wallgeom.Polygon, y, height int64, in Input) postproc.Row {
	var pieces []postproc.Piece
	for _, comp := range stripeComponents(working, y, height, in.Direction) {
		rr := rowpack.PackRow(comp, y, height, in.Widths, in.Direction)
		p, _ := fromRowpackResult(rr)
		pieces = append(pieces, p...)
	}

	return postproc.Row{Y: y, Height: height, Pieces: pieces}
}

// stripeComponents intersects working with the horizontal band
// [y, y+height) across its full X extent and returns the connected,
// non-empty components ordered for traversal in dir — ascending MinX for
// LTR, descending for RTL. wallgeom.Intersection (not ClipToRect) is
// used deliberately: a stripe crossing two separate apertures can split
// the working polygon into genuinely disjoint pieces, which only the
// general boolean engine reports as a true MultiPolygon.
func stripeComponents(working wallgeom.Polygon, y, height int64, dir Direction) []wallgeom.Polygon {
	band := working.BBox()
	stripe := wallgeom.Polygon{Exterior: wallgeom.Rect{MinX: band.MinX, MinY: y, MaxX: band.MaxX, MaxY: y + height}.Ring()}
	comps := wallgeom.Intersection(working, stripe)

	out := make([]wallgeom.Polygon, 0, len(comps))
	for _, c := range comps {
		if !c.IsEmpty() {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		bi, bj := out[i].BBox(), out[j].BBox()
		if dir == RTL {
			return bi.MinX > bj.MinX
		}

		return bi.MinX < bj.MinX
	})

	return out
}

// shiftToLocal re-expresses row (global X) in a component-local frame
// whose origin is originX. Blocks belonging to a different component
// land far outside [0, compWidth) after the shift and so never
// spuriously satisfy reinforce.Covers for this component's centres.
func shiftToLocal(row reinforce.Row, originX int64) reinforce.Row {
	if row == nil {
		return nil
	}
	out := make(reinforce.Row, len(row))
	for i, b := range row {
		out[i] = reinforce.Block{X: b.X - int(originX), Width: b.Width}
	}

	return out
}

// mirrorToLocal re-expresses row (global X) in the same mirrored local
// frame combpack.Pack's own candidate generation uses for RTL: position 0
// is comp's right edge (maxX), ascending leftward. This is the exact
// inverse of fromCandidate's RTL mapping, so a block that fromCandidate
// will later place at global X via gx = maxX - localX - width round-trips
// back to the localX combpack generated it at.
func mirrorToLocal(row reinforce.Row, maxX int64) reinforce.Row {
	if row == nil {
		return nil
	}
	out := make(reinforce.Row, len(row))
	for i, b := range row {
		out[i] = reinforce.Block{X: int(maxX) - b.X - b.Width, Width: b.Width}
	}

	return out
}

// lowerForPack builds the previous row's reinforcement positions in
// whichever local frame combpack.Pack's candidate generation for this
// direction actually uses, so the coverage gate inside Pack compares
// like-for-like frames instead of one mirrored and one not (see
// fromCandidate's RTL mirroring of the emitted blocks themselves).
func lowerForPack(prevRow reinforce.Row, comp wallgeom.Rect, dir Direction) reinforce.Row {
	if dir == RTL {
		return mirrorToLocal(prevRow, comp.MaxX)
	}

	return shiftToLocal(prevRow, comp.MinX)
}

// fromRowpackResult converts one rowpack.Result into postproc pieces
// (with nominal rectangle geometry for placed blocks, actual clipped
// geometry for customs — the post-processor's clip pass reconciles both
// against the wall regardless) and the global-frame reinforce.Row of the
// standard blocks it placed.
func fromRowpackResult(rr rowpack.Result) ([]postproc.Piece, reinforce.Row) {
	pieces := make([]postproc.Piece, 0, len(rr.Placed)+len(rr.Customs))
	blocks := make(reinforce.Row, 0, len(rr.Placed))
	for _, p := range rr.Placed {
		pieces = append(pieces, postproc.Piece{
			X: p.X, Y: p.Y, Width: p.Width, Height: p.Height,
			IsStandard: true,
			Polygon:    rectPolygon(p.X, p.Y, p.Width, p.Height),
		})
		blocks = append(blocks, reinforce.Block{X: int(p.X), Width: int(p.Width)})
	}
	for _, c := range rr.Customs {
		pieces = append(pieces, postproc.Piece{
			X: c.X, Y: c.Y, Width: c.Width, Height: c.Height,
			IsStandard: false,
			Polygon:    c.Polygon,
		})
	}

	return pieces, blocks
}

// fromCandidate places a combpack.Candidate's abstract local-frame
// blocks (ascending from local X=0, per combpack's fixed generation
// order) onto comp's span in global coordinates, mirroring the mapping
// for RTL so the candidate's first-generated block always lands against
// the traversal's starting edge, matching rowpack's own cursor
// convention. Only the leading cand.StandardCount blocks are standard;
// a trailing entry beyond that (when CustomWidth > 0) is the row's
// custom residue and contributes no reinforcement centres downstream.
func fromCandidate(cand combpack.Candidate, comp wallgeom.Rect, y, height int64, dir Direction) ([]postproc.Piece, reinforce.Row) {
	pieces := make([]postproc.Piece, 0, len(cand.Blocks))
	blocks := make(reinforce.Row, 0, cand.StandardCount)
	for i, b := range cand.Blocks {
		w := int64(b.Width)
		var gx int64
		if dir == RTL {
			gx = comp.MaxX - int64(b.X) - w
		} else {
			gx = comp.MinX + int64(b.X)
		}
		isStandard := i < cand.StandardCount
		pieces = append(pieces, postproc.Piece{
			X: gx, Y: y, Width: w, Height: height,
			IsStandard: isStandard,
			Polygon:    rectPolygon(gx, y, w, height),
		})
		if isStandard {
			blocks = append(blocks, reinforce.Block{X: int(gx), Width: b.Width})
		}
	}

	return pieces, blocks
}

// toIntWidths narrows the catalogue widths to combpack's int domain.
func toIntWidths(w [3]int64) [3]int {
	return [3]int{int(w[0]), int(w[1]), int(w[2])}
}

// rectPolygon builds a plain rectangular Polygon for a not-yet-clipped
// piece's nominal geometry. A small, deliberate duplicate of postproc's
// unexported helper of the same name — each package builds this from
// its own Rect/coordinate domain and neither depends on the other's
// internals.
func rectPolygon(x, y, width, height int64) wallgeom.Polygon {
	return wallgeom.Polygon{Exterior: wallgeom.Rect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}.Ring()}
}

// assembleResult flattens the post-processed rows into PackWall's public
// Result, splitting each row's pieces back into Placed/Customs.
func assembleResult(rows []postproc.Row, warn *diag.Collector) Result {
	var result Result
	for _, row := range rows {
		wr := Row{Y: row.Y, Height: row.Height}
		for _, p := range row.Pieces {
			if p.IsStandard {
				pb := PlacedBlock{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
				wr.Placed = append(wr.Placed, pb)
				result.Placed = append(result.Placed, pb)

				continue
			}
			cp := CustomPiece{
				X: p.X, Y: p.Y, Width: p.Width, Height: p.Height,
				Polygon: p.Polygon, SourceBlockWidth: p.SourceBlockWidth, Waste: p.Waste,
			}
			wr.Customs = append(wr.Customs, cp)
			result.Customs = append(result.Customs, cp)
		}
		result.Rows = append(result.Rows, wr)
	}
	result.Warnings = warn.Warnings()
	result.Report = buildReport(result.Placed, result.Customs)

	return result
}
