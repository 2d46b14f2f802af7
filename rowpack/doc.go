// Package rowpack implements the bidirectional greedy row-sweep packer
// (component B): a linear cursor walk across one connected stripe that
// greedily places the largest standard width that still fits, emitting a
// custom piece for whatever residual span or clipped remainder is left
// over.
//
// What: given one connected stripe component (a row-height slice of the
// working wall polygon) and the three catalogue widths, produces an
// ordered list of placed standard blocks and custom pieces covering the
// stripe left-to-right or right-to-left.
//
// Why: this is the fallback strategy for unreinforced walls, and the
// per-row fallback for the combinatorial packer when no reinforced
// candidate passes its coverage gate. It carries no search state and no
// backtracking, trading optimality for a single deterministic linear
// pass.
//
// Complexity: O(blocks) per stripe; each candidate block costs one
// rectangle-polygon clip against the stripe.
//
// Errors: rowpack never returns an error. A clip that collapses to an
// empty region is silently skipped (the piece does not exist); the
// orchestrator's degenerate filters are the final backstop.
package rowpack
