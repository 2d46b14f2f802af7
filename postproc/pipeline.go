package postproc

import (
	"github.com/Nic0Byte/wall-build-1-sub002/diag"
	"github.com/Nic0Byte/wall-build-1-sub002/wallgeom"
)

// Process runs the full four-pass pipeline over rows (spec.md §4.C):
// prefilter degenerates, merge consecutive small/custom runs, clip
// every piece to wall, post-clip degenerate filter, then tag every
// surviving custom with its source stock width and waste.
func Process(rows []Row, wall wallgeom.Polygon, widths [3]int64, warn *diag.Collector) []Row {
	wl := maxOf(widths)

	rows = filterDegenerate(rows, warn, "prefilter")
	rows = mergeRuns(rows, wl)
	rows = clipToWall(rows, wall, warn)
	rows = filterDegenerate(rows, warn, "postfilter")
	rows = tagCustoms(rows, widths)

	return rows
}
