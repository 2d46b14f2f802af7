package wallpack

import (
	"github.com/Nic0Byte/wall-build-1-sub002/diag"
	"github.com/Nic0Byte/wall-build-1-sub002/wallgeom"
)

// apertureAreaMin and apertureAreaWallFraction define the aperture
// validity filter (spec.md §3): 1000 mm² ≤ area < 0.8 · wall_area.
const (
	apertureAreaMin          = 1000.0
	apertureAreaWallFraction = 0.8
)

// filterApertures keeps only apertures whose area falls within the
// validity window, warning for each one dropped.
func filterApertures(apertures []wallgeom.Ring, wallArea float64, warn *diag.Collector) []wallgeom.Polygon {
	var valid []wallgeom.Polygon
	maxArea := apertureAreaWallFraction * wallArea
	for i, ring := range apertures {
		a := wallgeom.Area(ring)
		switch {
		case a < apertureAreaMin:
			warn.Add(diag.KindApertureFiltered, "aperture %d: area %.2f below %v mm² minimum", i, a, apertureAreaMin)
		case a >= maxArea:
			warn.Add(diag.KindApertureOversized, "aperture %d: area %.2f exceeds %.0f%% of wall area", i, a, apertureAreaWallFraction*100)
		default:
			valid = append(valid, wallgeom.Polygon{Exterior: wallgeom.EnsureCCW(ring)})
		}
	}

	return valid
}

// buildWorkingPolygon carves the valid apertures out of exterior and, if
// the result is disconnected at any step, keeps only the largest-area
// piece (spec.md §3's "working polygon" definition). Union collapses
// overlapping apertures into disjoint clusters; Difference only
// consumes one polygon at a time, so each cluster is subtracted in turn,
// re-collapsing to the largest piece after every subtraction — this
// keeps the running working polygon always a single Polygon, which is
// what every subsequent Difference call requires.
func buildWorkingPolygon(exterior wallgeom.Polygon, validApertures []wallgeom.Polygon, warn *diag.Collector) wallgeom.Polygon {
	if len(validApertures) == 0 {
		return exterior
	}
	current := exterior
	for _, cluster := range wallgeom.Union(validApertures) {
		diff := wallgeom.Difference(current, cluster)
		if len(diff) > 1 {
			warn.Add(diag.KindMultiComponentPicked, "working polygon split into %d components; kept the largest", len(diff))
		}
		largest, ok := wallgeom.PickLargest(diff)
		if !ok {
			return wallgeom.Polygon{}
		}
		current = largest
	}

	return current
}
