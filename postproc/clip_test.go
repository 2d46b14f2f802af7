package postproc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nic0Byte/wall-build-1-sub002/diag"
	"github.com/Nic0Byte/wall-build-1-sub002/wallgeom"
)

func rect(minX, minY, maxX, maxY int64) wallgeom.Polygon {
	return wallgeom.Polygon{Exterior: wallgeom.Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}.Ring()}
}

func TestClipToWall_FullyInsideStandardKeepsStatus(t *testing.T) {
	wall := rect(0, 0, 4000, 3000)
	rows := []Row{{Y: 0, Height: 495, Pieces: []Piece{
		{X: 0, Y: 0, Width: 1239, Height: 495, IsStandard: true, Polygon: rectPolygon(0, 0, 1239, 495)},
	}}}

	var warn diag.Collector
	out := clipToWall(rows, wall, &warn)

	if assert.Len(t, out[0].Pieces, 1) {
		assert.True(t, out[0].Pieces[0].IsStandard)
	}
	assert.Equal(t, 0, warn.Len())
}

func TestClipToWall_EntirelyOutsideDrops(t *testing.T) {
	wall := rect(0, 0, 1000, 1000)
	rows := []Row{{Y: 0, Height: 495, Pieces: []Piece{
		{X: 5000, Y: 0, Width: 1239, Height: 495, IsStandard: true, Polygon: rectPolygon(5000, 0, 1239, 495)},
	}}}

	var warn diag.Collector
	out := clipToWall(rows, wall, &warn)

	assert.Empty(t, out[0].Pieces)
	assert.Equal(t, 1, warn.Len())
}

func TestClipToWall_PartialStandardBelowHalfAreaBecomesCustom(t *testing.T) {
	wall := rect(0, 0, 600, 3000) // under half of a 1239-wide block fits
	rows := []Row{{Y: 0, Height: 495, Pieces: []Piece{
		{X: 0, Y: 0, Width: 1239, Height: 495, IsStandard: true, Polygon: rectPolygon(0, 0, 1239, 495)},
	}}}

	var warn diag.Collector
	out := clipToWall(rows, wall, &warn)

	if assert.Len(t, out[0].Pieces, 1) {
		p := out[0].Pieces[0]
		assert.False(t, p.IsStandard)
		assert.Equal(t, int64(600), p.Width)
	}
}

func TestClipToWall_PartialStandardAboveHalfAreaKeepsStatus(t *testing.T) {
	wall := rect(0, 0, 700, 3000) // just over half of a 1239-wide block fits
	rows := []Row{{Y: 0, Height: 495, Pieces: []Piece{
		{X: 0, Y: 0, Width: 1239, Height: 495, IsStandard: true, Polygon: rectPolygon(0, 0, 1239, 495)},
	}}}

	var warn diag.Collector
	out := clipToWall(rows, wall, &warn)

	if assert.Len(t, out[0].Pieces, 1) {
		p := out[0].Pieces[0]
		assert.True(t, p.IsStandard)
		// a piece that keeps standard status keeps its nominal catalogue
		// width — it is still one full stock block for BOM purposes, even
		// though its rendered geometry is the narrower clipped shape.
		assert.Equal(t, int64(1239), p.Width)
	}
}
