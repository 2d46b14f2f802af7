// Package combpack implements the bounded backtracking combinatorial
// packer (component S): used for one row of one stripe component when a
// reinforcement profile is supplied, it enumerates every width
// decomposition of the stripe (plus an optional trailing custom for the
// remainder), rejects any decomposition whose reinforcement centres are
// not covered by the row beneath it, and selects the highest-scoring
// survivor.
//
// What: Pack takes a stripe width, the three catalogue widths, the
// previous row (nil for the first row — vacuously covered), and a
// reinforcement configuration, and returns the best-scoring covered
// decomposition, or reports that none survived the gate so the caller
// should fall back to rowpack for this row.
//
// Why: unlike rowpack's single greedy pass, S must search because the
// greedy-largest choice at each step is not always the one that keeps
// every reinforcement covered by the row below — a narrower first block
// can be the only way to land a reinforcement centre over solid material.
// The search carries its state in a dedicated engine struct (not
// closures) so recursion depth, the partial row, and the incumbent are all
// explicit and independently testable.
//
// Complexity: O(3^(stripeWidth/W_S)) worst case, bounded in practice by
// the partial-sum pruning rule (abandon any branch whose sum already
// exceeds the stripe width) and a hard depth cap of
// ⌈stripeWidth/W_S⌉.
//
// Errors: combpack never returns an error; a stripe with no gate-passing
// candidate is reported via Result.FellBack, leaving the coverage
// warning to the caller (the orchestrator knows the row/component
// context a warning needs).
package combpack
