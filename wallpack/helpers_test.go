package wallpack_test

import "github.com/Nic0Byte/wall-build-1-sub002/wallgeom"

func rectRing(minX, minY, maxX, maxY int64) wallgeom.Ring {
	return wallgeom.Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}.Ring()
}
