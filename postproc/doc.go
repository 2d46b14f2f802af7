// Package postproc implements the four-pass post-processing pipeline
// (component C): prefilter degenerate pieces, merge consecutive small
// runs into single customs, clip every piece to the wall-with-holes,
// then filter degenerates again. It is the last stage every placed
// block and custom piece passes through before being handed back to a
// caller.
//
// What: Process takes the rows produced by rowpack/combpack (each piece
// still carrying its nominal, pre-clip geometry) and the carved
// wall-with-holes polygon, and returns the final rows with every
// surviving custom tagged with its source stock width and waste.
//
// Why: merging must run before clipping — clipping first would make
// small standard blocks and customs look different enough (oblique
// clipped edges) to defeat the adjacency-based merge heuristic, and
// would multiply the number of tiny pieces the merge pass has to
// reason about. Running merge first on nominal rectangles keeps the
// heuristic simple and its result identical regardless of wall shape.
//
// Complexity: prefilter and post-filter are O(pieces); merge is an
// insertion sort (O(pieces²) worst case) plus a single sorted sweep per
// row; clip is O(pieces) polygon
// intersections against the wall-with-holes.
//
// Errors: postproc never returns an error; every drop or reclassification
// is recorded as a diag.Warning on the caller-owned collector.
package postproc
