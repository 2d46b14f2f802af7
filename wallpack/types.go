package wallpack

import (
	"github.com/Nic0Byte/wall-build-1-sub002/diag"
	"github.com/Nic0Byte/wall-build-1-sub002/reinforce"
	"github.com/Nic0Byte/wall-build-1-sub002/rowpack"
	"github.com/Nic0Byte/wall-build-1-sub002/wallgeom"
)

// Strategy selects the row-packing algorithm (spec.md §4.P).
type Strategy int

const (
	StrategyBig Strategy = iota
	StrategySmall
)

// Direction is the row traversal direction; re-exported from rowpack so
// callers never need to import it directly.
type Direction = rowpack.Direction

const (
	LTR = rowpack.LTR
	RTL = rowpack.RTL
)

// VerticalConfig carries the optional ground/ceiling offsets applied to
// the vertical band before row iteration (spec.md §3).
type VerticalConfig struct {
	GroundOffsetEnabled  bool
	GroundOffset         int64
	CeilingOffsetEnabled bool
	CeilingOffset        int64
}

// Input is PackWall's complete argument set (spec.md §6).
type Input struct {
	Exterior      wallgeom.Ring
	Apertures     []wallgeom.Ring
	Widths        [3]int64
	Height        int64
	Strategy      Strategy
	Reinforcement *reinforce.Config // required iff Strategy == StrategySmall
	Direction     Direction
	Vertical      VerticalConfig
}

// PlacedBlock is one accepted standard-width block in the wall frame.
type PlacedBlock struct {
	X, Y, Width, Height int64
}

// CustomPiece is one non-standard piece, tagged with the stock it would
// be cut from and the resulting waste (spec.md §3/§4.C).
type CustomPiece struct {
	X, Y, Width, Height int64
	Polygon             wallgeom.Polygon
	SourceBlockWidth    int64
	Waste               int64
}

// Row is one packed horizontal band, in emission order.
type Row struct {
	Y       int64
	Height  int64
	Placed  []PlacedBlock
	Customs []CustomPiece
}

// CutListItem aggregates customs sharing a source stock width, for the
// production report's cut list.
type CutListItem struct {
	SourceBlockWidth int64
	Count            int
	TotalWaste       int64
}

// ProductionReport is additive, derived data computed from the final
// placed/custom lists; it can never influence or violate a packing
// invariant (SPEC_FULL.md Supplemented Features §1).
type ProductionReport struct {
	StandardCountByWidth map[int64]int
	CustomCount          int
	TotalWaste           int64
	CutList              []CutListItem
}

// Result is PackWall's complete return value.
type Result struct {
	Rows     []Row
	Placed   []PlacedBlock
	Customs  []CustomPiece
	Warnings []diag.Warning
	Report   ProductionReport
}
