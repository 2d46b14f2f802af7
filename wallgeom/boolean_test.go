package wallgeom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nic0Byte/wall-build-1-sub002/wallgeom"
)

func TestDifference_ApertureStrictlyInsideBecomesHole(t *testing.T) {
	wall := wallgeom.Polygon{Exterior: rect(0, 0, 4000, 2970)}
	window := wallgeom.Polygon{Exterior: rect(1500, 500, 2500, 2000)}

	mp := wallgeom.Difference(wall, window)
	require.Len(t, mp, 1)
	require.Len(t, mp[0].Holes, 1)
	assert.InDelta(t, 4000*2970-1000*1500, mp[0].Area(), 1e-6)
}

func TestDifference_ApertureFullyOutsideIsNoop(t *testing.T) {
	wall := wallgeom.Polygon{Exterior: rect(0, 0, 1000, 1000)}
	outside := wallgeom.Polygon{Exterior: rect(2000, 2000, 2100, 2100)}

	mp := wallgeom.Difference(wall, outside)
	require.Len(t, mp, 1)
	assert.Empty(t, mp[0].Holes)
	assert.InDelta(t, 1_000_000, mp[0].Area(), 1e-6)
}

func TestDifference_ApertureConsumesWall(t *testing.T) {
	wall := wallgeom.Polygon{Exterior: rect(100, 100, 200, 200)}
	big := wallgeom.Polygon{Exterior: rect(0, 0, 1000, 1000)}

	mp := wallgeom.Difference(wall, big)
	assert.Empty(t, mp)
}

func TestDifference_ApertureStraddlesBoundary(t *testing.T) {
	// Window straddling the right edge of the wall: carves a bite, not a hole.
	wall := wallgeom.Polygon{Exterior: rect(0, 0, 1000, 1000)}
	bite := wallgeom.Polygon{Exterior: rect(800, 200, 1200, 400)}

	mp := wallgeom.Difference(wall, bite)
	require.Len(t, mp, 1)
	assert.Empty(t, mp[0].Holes)
	assert.InDelta(t, 1_000_000-200*200, mp[0].Area(), 1e-6)
}

func TestIntersection_OverlappingRectangles(t *testing.T) {
	a := wallgeom.Polygon{Exterior: rect(0, 0, 100, 100)}
	b := wallgeom.Polygon{Exterior: rect(50, 50, 150, 150)}

	mp := wallgeom.Intersection(a, b)
	require.Len(t, mp, 1)
	assert.InDelta(t, 50*50, mp[0].Area(), 1e-6)
}

func TestIntersection_Disjoint(t *testing.T) {
	a := wallgeom.Polygon{Exterior: rect(0, 0, 10, 10)}
	b := wallgeom.Polygon{Exterior: rect(100, 100, 110, 110)}
	assert.Empty(t, wallgeom.Intersection(a, b))
}

func TestUnion_DisjointApertures(t *testing.T) {
	a := wallgeom.Polygon{Exterior: rect(0, 0, 10, 10)}
	b := wallgeom.Polygon{Exterior: rect(100, 100, 110, 110)}
	mp := wallgeom.Union([]wallgeom.Polygon{a, b})
	assert.Len(t, mp, 2)
}

func TestUnion_OverlappingApertures(t *testing.T) {
	a := wallgeom.Polygon{Exterior: rect(0, 0, 100, 100)}
	b := wallgeom.Polygon{Exterior: rect(50, 0, 150, 100)}
	mp := wallgeom.Union([]wallgeom.Polygon{a, b})
	require.Len(t, mp, 1)
	assert.InDelta(t, 150*100, mp[0].Area(), 1e-6)
}

func TestUnion_OneContainsOther(t *testing.T) {
	big := wallgeom.Polygon{Exterior: rect(0, 0, 100, 100)}
	small := wallgeom.Polygon{Exterior: rect(10, 10, 20, 20)}
	mp := wallgeom.Union([]wallgeom.Polygon{big, small})
	require.Len(t, mp, 1)
	assert.InDelta(t, 10000, mp[0].Area(), 1e-6)
}

func TestPickLargest(t *testing.T) {
	mp := wallgeom.MultiPolygon{
		{Exterior: rect(0, 0, 10, 10)},
		{Exterior: rect(100, 100, 300, 300)},
	}
	best, ok := wallgeom.PickLargest(mp)
	require.True(t, ok)
	assert.InDelta(t, 200*200, best.Area(), 1e-6)
}

func TestPickLargest_EmptyInput(t *testing.T) {
	_, ok := wallgeom.PickLargest(nil)
	assert.False(t, ok)
}
