package combpack

import "github.com/Nic0Byte/wall-build-1-sub002/reinforce"

// combEngine holds all search data for one Pack call. A dedicated engine
// struct (rather than closures over Pack's locals) keeps recursion state
// explicit and the DFS step independently testable.
type combEngine struct {
	// Configuration
	stripeWidth int
	widthsDesc  []int    // distinct catalogue widths, descending
	widths3     [3]int   // original 3-tuple, for reinforce.Config.countFor
	cfg         reinforce.Config
	lower       reinforce.Row
	maxDepth    int

	// Incumbent
	hasBest  bool
	best     Candidate
	anyGated bool // true once at least one candidate has passed the gate
}

// dfs explores every decomposition reachable from the partial row built
// so far. blocks holds the placed standard blocks at row-local X
// positions; sum is their combined width. At every node (not only
// leaves) the remaining span, if non-negative, defines one additional
// candidate — stop here and let the remainder be a trailing custom (or
// no custom, if remaining is exactly 0).
func (e *combEngine) dfs(blocks reinforce.Row, sum int, depth int) {
	remaining := e.stripeWidth - sum
	if remaining >= 0 {
		e.considerStoppingHere(blocks, remaining)
	}
	if remaining <= 0 || depth >= e.maxDepth {
		return
	}
	for _, w := range e.widthsDesc {
		if w > remaining {
			continue
		}
		next := append(append(reinforce.Row(nil), blocks...), reinforce.Block{X: sum, Width: w})
		e.dfs(next, sum+w, depth+1)
	}
}

// considerStoppingHere materializes the candidate for "place no more
// standard blocks, cover the remainder (if any) with a trailing custom",
// runs the reinforcement gate, scores it, and updates the incumbent.
func (e *combEngine) considerStoppingHere(blocks reinforce.Row, remaining int) {
	full := append(reinforce.Row(nil), blocks...)
	customWidth := 0
	if remaining > 0 {
		customWidth = remaining
		full = append(full, reinforce.Block{X: e.stripeWidth - remaining, Width: remaining})
	}
	if len(full) == 0 {
		return // stripeWidth == 0: nothing to place, nothing to score
	}

	if !reinforce.Covers(e.lower, full, e.cfg, e.widths3) {
		return
	}
	e.anyGated = true

	customCount := 0
	if customWidth > 0 {
		customCount = 1
	}
	pieces := len(full)
	stagger := reinforce.StaggerScore(e.lower, full)
	cand := Candidate{
		Blocks:        full,
		StandardCount: len(blocks),
		CustomWidth:   customWidth,
		Pieces:        pieces,
		CustomCount:   customCount,
		Stagger:       stagger,
		Score:         scoreCandidate(stagger, customCount, pieces),
	}
	if !e.hasBest || betterCandidate(cand, e.best) {
		e.hasBest = true
		e.best = cand
	}
}
