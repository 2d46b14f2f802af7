// Package wallgeom provides the integer-millimetre polygon kernel used by
// the wall-build packing engine: a polygon-with-holes representation plus
// the boolean operations (Union, Difference, Intersection), a sanitize
// pass, and a largest-component picker.
//
// What:
//
//   - Polygon: a simple or multi-component closed region, exterior ring
//     CCW and hole rings CW, built from integer-millimetre Points.
//   - Union, Difference, Intersection: polygon set operations that may
//     return a MultiPolygon (disconnected result) or drop a
//     lower-dimensional residue (segment/point).
//   - Sanitize: cleanup that removes duplicate vertices and collinear
//     slivers and re-establishes winding, preserving holes unless a hole
//     itself collapses. It does not detect or resolve self-intersections.
//   - PickLargest: collapses a MultiPolygon to its largest-area member.
//
// Why:
//
//   - Carrying the working wall region as "exterior with interior holes"
//     (rather than exterior plus a separate obstacle list) unifies
//     packing-time and clip-time behaviour: once a stripe is intersected
//     against the working polygon, placed blocks cannot wander into an
//     aperture, because the hole is already carved out of the region being
//     packed.
//
// Complexity:
//
//   - Convex-window clip (ClipToRect): O(n) in ring vertex count.
//   - General polygon-polygon clip (Union/Difference/Intersection on
//     non-convex input): O(n·m) in the two rings' vertex counts.
//   - Sanitize: O(n) per collinearity pass, repeated until stable (at
//     most n+1 passes), plus an O(n) orientation fix.
//   - PickLargest: O(k) in component count, each an O(n) area pass.
//
// Errors: errors.go declares ErrEmptyRing and ErrDegenerateResult, but no
// function in this package returns an error; degenerate input or output
// shows up as an empty MultiPolygon or a dropped residue instead.
//
// Precision: all exported types use integer millimetre coordinates per the
// spec's coordinate frame; intermediate clip computations keep Points as
// the smallest integer grid the inputs describe (no subdivision is
// introduced beyond true edge-edge intersection points, which are rounded
// to the nearest millimetre — see clip.go).
package wallgeom
