// Package diag carries recoverable-anomaly diagnostics for the wall-build
// packing engine.
//
// What:
//
//   - Warning is a small, typed {Kind, Details} record.
//   - Collector accumulates Warnings in emission order for a single call.
//
// Why:
//
//   - The packing core never logs and never raises for geometric
//     anomalies (aperture filtered, hole-count drop, degenerate piece
//     dropped, reinforcement-coverage fallback): every such event is
//     returned to the caller as data, alongside the result. Collector is
//     the single append point so every package reports anomalies the
//     same way.
//
// Complexity: O(1) per Add, O(n) to drain n Warnings.
package diag
