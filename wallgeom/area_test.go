package wallgeom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nic0Byte/wall-build-1-sub002/wallgeom"
)

func rect(minX, minY, maxX, maxY int64) wallgeom.Ring {
	return wallgeom.Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}.Ring()
}

func TestSignedArea_CCWPositive(t *testing.T) {
	r := rect(0, 0, 100, 50)
	assert.True(t, wallgeom.IsCCW(r))
	assert.InDelta(t, 5000.0, wallgeom.Area(r), 1e-9)
}

func TestSignedArea_CWNegative(t *testing.T) {
	r := wallgeom.Reversed(rect(0, 0, 100, 50))
	assert.False(t, wallgeom.IsCCW(r))
	assert.InDelta(t, 5000.0, wallgeom.Area(r), 1e-9)
}

func TestPolygon_AreaWithHole(t *testing.T) {
	p := wallgeom.Polygon{
		Exterior: rect(0, 0, 1000, 1000),
		Holes:    []wallgeom.Ring{wallgeom.EnsureCW(rect(100, 100, 300, 300))},
	}
	assert.InDelta(t, 1_000_000-40_000, p.Area(), 1e-6)
}

func TestBBox(t *testing.T) {
	r := wallgeom.Ring{{X: 10, Y: 20}, {X: 50, Y: 5}, {X: 30, Y: 90}}
	b := wallgeom.BBox(r)
	assert.Equal(t, wallgeom.Rect{MinX: 10, MinY: 5, MaxX: 50, MaxY: 90}, b)
}

func TestMultiPolygon_Area(t *testing.T) {
	mp := wallgeom.MultiPolygon{
		{Exterior: rect(0, 0, 10, 10)},
		{Exterior: rect(100, 100, 110, 120)},
	}
	assert.InDelta(t, 100+200, mp.Area(), 1e-9)
}
