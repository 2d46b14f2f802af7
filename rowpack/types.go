package rowpack

import "github.com/Nic0Byte/wall-build-1-sub002/wallgeom"

// Direction is the traversal direction of a row sweep. It affects only
// the cursor's starting edge and step sign; every other placement rule
// is symmetric (spec.md §4.B).
type Direction int

const (
	LTR Direction = iota
	RTL
)

// PlacedBlock is a standard-width rectangle accepted as-is (its nominal
// geometry is the unclipped W×H rectangle; invariant 1 requires every
// placed block's width to be one of the three catalogue widths even if
// a sliver of it falls outside the wall — the post-processor's clip
// pass is what ultimately reconciles geometry against the wall-with-
// holes boundary).
type PlacedBlock struct {
	X      int64
	Y      int64
	Width  int64
	Height int64
}

// CustomPiece is a non-standard piece: either a residual span narrower
// than the smallest catalogue width, or a standard-sized rectangle
// whose clipped intersection with the stripe fell below half its
// nominal area (spec.md §4.B rule 5). Its Polygon is always the actual
// clipped shape, not the nominal rectangle.
type CustomPiece struct {
	X       int64
	Y       int64
	Width   int64
	Height  int64
	Polygon wallgeom.Polygon
}

// Result is one stripe component's packed output, in traversal order.
type Result struct {
	Placed  []PlacedBlock
	Customs []CustomPiece
}
