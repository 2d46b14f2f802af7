package wallgeom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nic0Byte/wall-build-1-sub002/wallgeom"
)

func TestClipToRect_StripeOfPlainWall(t *testing.T) {
	// Wall 5000x2970 (seed scenario 1), clip row stripe y in [0,495).
	wall := wallgeom.Polygon{Exterior: rect(0, 0, 5000, 2970)}
	stripe := wallgeom.Rect{MinX: 0, MinY: 0, MaxX: 5000, MaxY: 495}

	got := wallgeom.ClipToRect(wall, stripe)
	require.False(t, got.IsEmpty())
	assert.InDelta(t, 5000*495, got.Area(), 1e-6)
	assert.Equal(t, stripe, got.BBox())
}

func TestClipToRect_StripeThroughWindow(t *testing.T) {
	// Wall 4000x2970 with a centered window (seed scenario 2); stripe at
	// y=[1500,1995) passes entirely through the window's y-range, so
	// clipping the wall-with-hole stripe should produce a region with the
	// window's width removed.
	wall := wallgeom.Polygon{
		Exterior: rect(0, 0, 4000, 2970),
		Holes:    []wallgeom.Ring{wallgeom.EnsureCW(rect(1500, 500, 2500, 2000))},
	}
	stripe := wallgeom.Rect{MinX: 0, MinY: 1500, MaxX: 4000, MaxY: 1995}
	got := wallgeom.ClipToRect(wall, stripe)
	// Expect the hole clipped to [1500,2500]x[1500,1995] to survive as a hole.
	require.Len(t, got.Holes, 1)
	assert.InDelta(t, 4000*495-1000*495, got.Area(), 1e-6)
}

func TestClipToRect_DisjointReturnsEmpty(t *testing.T) {
	wall := wallgeom.Polygon{Exterior: rect(0, 0, 100, 100)}
	got := wallgeom.ClipToRect(wall, wallgeom.Rect{MinX: 200, MinY: 200, MaxX: 300, MaxY: 300})
	assert.True(t, got.IsEmpty())
}

func TestClipRingToRect_ObliqueEdge(t *testing.T) {
	// Triangle with an oblique hypotenuse, clipped by a rectangle crossing it.
	tri := wallgeom.Ring{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}}
	got := wallgeom.ClipRingToRect(tri, wallgeom.Rect{MinX: 0, MinY: 0, MaxX: 50, MaxY: 100})
	require.NotEmpty(t, got)
	// Clipped area should be less than the full triangle's 5000 mm^2.
	assert.Less(t, wallgeom.Area(got), 5000.0)
	assert.Greater(t, wallgeom.Area(got), 0.0)
}
