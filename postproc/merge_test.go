package postproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeRuns_CombinesConsecutiveSmallPiecesUnderWL(t *testing.T) {
	rows := []Row{{
		Y: 0, Height: 495,
		Pieces: []Piece{
			{X: 0, Y: 0, Width: 300, Height: 495, IsStandard: false, Polygon: rectPolygon(0, 0, 300, 495)},
			{X: 300, Y: 0, Width: 413, Height: 495, IsStandard: true, Polygon: rectPolygon(300, 0, 413, 495)},
			{X: 713, Y: 0, Width: 400, Height: 495, IsStandard: false, Polygon: rectPolygon(713, 0, 400, 495)},
		},
	}}

	out := mergeRuns(rows, 1239)

	if assert.Len(t, out[0].Pieces, 1) {
		merged := out[0].Pieces[0]
		assert.False(t, merged.IsStandard)
		assert.Equal(t, int64(0), merged.X)
		assert.Equal(t, int64(1113), merged.Width)
	}
}

func TestMergeRuns_LeavesLargeStandardsAlone(t *testing.T) {
	rows := []Row{{
		Y: 0, Height: 495,
		Pieces: []Piece{
			{X: 0, Y: 0, Width: 1239, Height: 495, IsStandard: true, Polygon: rectPolygon(0, 0, 1239, 495)},
			{X: 1239, Y: 0, Width: 1239, Height: 495, IsStandard: true, Polygon: rectPolygon(1239, 0, 1239, 495)},
		},
	}}

	out := mergeRuns(rows, 1239)

	assert.Len(t, out[0].Pieces, 2)
	assert.True(t, out[0].Pieces[0].IsStandard)
	assert.True(t, out[0].Pieces[1].IsStandard)
}

func TestMergeRuns_StopsRunWhenCombinedWidthExceedsWL(t *testing.T) {
	rows := []Row{{
		Y: 0, Height: 495,
		Pieces: []Piece{
			{X: 0, Y: 0, Width: 826, Height: 495, IsStandard: true, Polygon: rectPolygon(0, 0, 826, 495)},
			{X: 826, Y: 0, Width: 826, Height: 495, IsStandard: true, Polygon: rectPolygon(826, 0, 826, 495)},
		},
	}}

	// Both are < WL (1239) individually, but their combined span (1652)
	// exceeds WL, so they must NOT merge.
	out := mergeRuns(rows, 1239)

	assert.Len(t, out[0].Pieces, 2)
}

func TestMergeRuns_GapBeyondToleranceBreaksTheRun(t *testing.T) {
	rows := []Row{{
		Y: 0, Height: 495,
		Pieces: []Piece{
			{X: 0, Y: 0, Width: 300, Height: 495, IsStandard: false, Polygon: rectPolygon(0, 0, 300, 495)},
			{X: 320, Y: 0, Width: 300, Height: 495, IsStandard: false, Polygon: rectPolygon(320, 0, 300, 495)},
		},
	}}

	out := mergeRuns(rows, 1239)

	assert.Len(t, out[0].Pieces, 2)
}
