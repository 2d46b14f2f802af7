package wallgeom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nic0Byte/wall-build-1-sub002/diag"
	"github.com/Nic0Byte/wall-build-1-sub002/wallgeom"
)

func TestSanitize_RemovesDuplicateAndCollinearVertices(t *testing.T) {
	ring := wallgeom.Ring{
		{X: 0, Y: 0},
		{X: 0, Y: 0}, // duplicate
		{X: 50, Y: 0}, // collinear with (0,0)-(100,0)
		{X: 100, Y: 0},
		{X: 100, Y: 100},
		{X: 0, Y: 100},
	}
	p := wallgeom.Polygon{Exterior: ring}
	var warn diag.Collector
	got := wallgeom.Sanitize(p, &warn)

	assert.Len(t, got.Exterior, 4)
	assert.InDelta(t, 100*100, got.Area(), 1e-9)
	assert.Equal(t, 0, warn.Len())
}

func TestSanitize_DropsDegenerateHoleWithWarning(t *testing.T) {
	p := wallgeom.Polygon{
		Exterior: rect(0, 0, 1000, 1000),
		Holes: []wallgeom.Ring{
			wallgeom.EnsureCW(wallgeom.Ring{{X: 100, Y: 100}, {X: 100, Y: 100}, {X: 100, Y: 101}}),
		},
	}
	var warn diag.Collector
	got := wallgeom.Sanitize(p, &warn)

	assert.Empty(t, got.Holes)
	require.Equal(t, 1, warn.Len())
	assert.Equal(t, diag.KindHoleDropped, warn.Warnings()[0].Kind)
}

func TestSanitize_PreservesValidHoles(t *testing.T) {
	p := wallgeom.Polygon{
		Exterior: rect(0, 0, 1000, 1000),
		Holes:    []wallgeom.Ring{wallgeom.EnsureCW(rect(100, 100, 300, 300))},
	}
	var warn diag.Collector
	got := wallgeom.Sanitize(p, &warn)

	require.Len(t, got.Holes, 1)
	assert.Equal(t, 0, warn.Len())
	assert.False(t, wallgeom.IsCCW(got.Holes[0]))
}

func TestSanitize_EnsuresOrientation(t *testing.T) {
	cw := wallgeom.Reversed(rect(0, 0, 10, 10))
	got := wallgeom.Sanitize(wallgeom.Polygon{Exterior: cw}, nil)
	assert.True(t, wallgeom.IsCCW(got.Exterior))
}
