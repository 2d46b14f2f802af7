// Package wallpack is the top-level orchestrator (component P): it owns
// the public input/output data model and PackWall, the single entry
// point that filters apertures, builds the working polygon, computes
// the vertical row band, iterates rows dispatching to rowpack or
// combpack per connected stripe component, and hands the concatenated
// result to postproc.
//
// What: PackWall(ctx, Input) -> (Result, error). Input names the wall
// outline, apertures, block catalogue, strategy, and vertical/
// reinforcement configuration; Result carries the placed blocks,
// customs, production report, and accumulated warnings.
//
// Why: every other package solves one sub-problem (geometry, coverage,
// one packing strategy, post-processing); wallpack is the only package
// that knows the row-by-row, component-by-component control flow tying
// them together, and is therefore the only place a caller needs to
// import.
//
// Errors: PackWall returns a non-nil error only for the configuration-
// error class (spec.md §7) — malformed widths/height, a degenerate
// exterior, vertical offsets that exceed the available band, or
// strategy=small with no reinforcement config — and for ctx.Err() when
// ctx is done at a row boundary. Every geometric anomaly is instead
// reported as a diag.Warning on a successful Result.
//
// Concurrency: PackWall is synchronous and holds no state beyond one
// call; nothing it touches is shared across concurrent calls (spec.md
// §5). ctx is checked once per row boundary, never mid-row, to keep
// output deterministic under cancellation races.
package wallpack
