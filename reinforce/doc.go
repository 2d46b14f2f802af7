// Package reinforce computes per-block vertical reinforcement positions
// and validates cross-row coverage and stagger, per spec.md §4.R.
//
// What:
//
//   - Positions: the deterministic "from-the-right" reinforcement
//     X-offsets for a block of a given width.
//   - Covers: whether every reinforcement centre in an upper row is
//     covered by some block in the row beneath it.
//   - StaggerScore: the fraction of an upper row's vertical joints that do
//     not coincide with a lower row's vertical joints.
//
// Why:
//
//   - Reinforcement is structural: a vertical element placed inside a
//     block must rest on continuous material below it, never straddle a
//     joint gap. The "from-the-right" convention (spec.md §4.R, §9) is the
//     structural contract every downstream consumer (combpack's scoring,
//     the coverage gate) assumes; it must never be silently symmetrized.
//
// Complexity: Positions is O(n) in reinforcement count; Covers and
// StaggerScore are O(u·l) in upper/lower block counts (both small: a row
// holds at most a handful of blocks).
//
// Errors:
//
//   - ErrInvalidConfig: thickness/spacing/count combination is
//     structurally meaningless (non-positive thickness or spacing,
//     negative count).
package reinforce
