package postproc

import "github.com/Nic0Byte/wall-build-1-sub002/wallgeom"

// Piece is one placed or custom piece, in the generic shape postproc
// needs: enough to filter, merge, clip, and tag it, independent of
// which caller-level struct (wallpack.PlacedBlock/CustomPiece) it will
// become again afterward.
type Piece struct {
	X, Y, Width, Height int64
	IsStandard          bool
	// Polygon is the piece's exact geometry. For a not-yet-clipped
	// standard block it is the nominal X/Y/Width/Height rectangle; for a
	// custom (e.g. one already clipped by rowpack's B strategy) it is
	// the real shape. Process treats both uniformly once clipping runs.
	Polygon wallgeom.Polygon
	// SourceBlockWidth/Waste are 0 until Process's final tagging pass
	// tags every surviving custom.
	SourceBlockWidth int64
	Waste            int64
}

// Row is one horizontal band's pieces, in traversal order as originally
// emitted (not necessarily sorted by X — RTL rows are emitted
// right-to-left). Process hands each row back in that same direction.
type Row struct {
	Y      int64
	Height int64
	Pieces []Piece
}

// Rect returns p's nominal axis-aligned bounding rectangle.
func (p Piece) Rect() wallgeom.Rect {
	return wallgeom.Rect{MinX: p.X, MinY: p.Y, MaxX: p.X + p.Width, MaxY: p.Y + p.Height}
}

// nominalArea returns Width*Height as a float64, for area-fraction checks.
func (p Piece) nominalArea() float64 {
	return float64(p.Width) * float64(p.Height)
}
