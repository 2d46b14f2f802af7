package wallgeom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nic0Byte/wall-build-1-sub002/wallgeom"
)

func TestPointInRing(t *testing.T) {
	r := rect(0, 0, 100, 100)
	assert.True(t, wallgeom.PointInRing(wallgeom.Point{X: 50, Y: 50}, r))
	assert.False(t, wallgeom.PointInRing(wallgeom.Point{X: 150, Y: 50}, r))
	// on-boundary points are not "inside" under the crossing-number test
	assert.False(t, wallgeom.PointInRing(wallgeom.Point{X: 0, Y: 50}, r))
}

func TestPointOnSegmentAndRing(t *testing.T) {
	a, b := wallgeom.Point{X: 0, Y: 0}, wallgeom.Point{X: 10, Y: 0}
	assert.True(t, wallgeom.PointOnSegment(wallgeom.Point{X: 5, Y: 0}, a, b))
	assert.False(t, wallgeom.PointOnSegment(wallgeom.Point{X: 5, Y: 1}, a, b))

	r := rect(0, 0, 100, 100)
	assert.True(t, wallgeom.PointOnRing(wallgeom.Point{X: 0, Y: 50}, r))
	assert.False(t, wallgeom.PointOnRing(wallgeom.Point{X: 50, Y: 50}, r))
}

func TestPolygon_ContainsExcludesHoles(t *testing.T) {
	p := wallgeom.Polygon{
		Exterior: rect(0, 0, 1000, 1000),
		Holes:    []wallgeom.Ring{wallgeom.EnsureCW(rect(100, 100, 300, 300))},
	}
	assert.True(t, p.Contains(wallgeom.Point{X: 500, Y: 500}))
	assert.False(t, p.Contains(wallgeom.Point{X: 200, Y: 200}))
	assert.False(t, p.Contains(wallgeom.Point{X: 2000, Y: 2000}))
}
