package combpack

import "github.com/Nic0Byte/wall-build-1-sub002/reinforce"

// Pack enumerates every width decomposition of a stripe of the given
// width, gates each against lower's reinforcement coverage, and returns
// the highest-scoring survivor. lower is nil for a stripe's first row —
// every candidate then passes the gate vacuously (spec.md §4.R).
//
// Determinism: widths are considered in a fixed descending order and
// recursion always branches in that same order, so identical inputs
// produce an identical winning Candidate (spec.md §4.S).
// Complexity: see package doc.
func Pack(stripeWidth int, widths [3]int, cfg reinforce.Config, lower reinforce.Row) Result {
	e := &combEngine{
		stripeWidth: stripeWidth,
		widthsDesc:  descendingDistinct(widths),
		widths3:     widths,
		cfg:         cfg,
		lower:       lower,
		maxDepth:    maxDepthFor(stripeWidth, widths),
	}
	if stripeWidth <= 0 || len(e.widthsDesc) == 0 {
		return Result{FellBack: true}
	}
	e.dfs(nil, 0, 0)
	if !e.anyGated {
		return Result{FellBack: true}
	}

	return Result{Best: e.best}
}

// maxDepthFor bounds recursion depth at ⌈stripeWidth/W_S⌉, W_S being the
// smallest catalogue width — the most pieces a decomposition could ever
// need (spec.md §4.S resource bound).
func maxDepthFor(stripeWidth int, widths [3]int) int {
	minW := 0
	for _, w := range widths {
		if w > 0 && (minW == 0 || w < minW) {
			minW = w
		}
	}
	if minW == 0 {
		return 0
	}

	return (stripeWidth + minW - 1) / minW
}

// descendingDistinct returns widths sorted descending with duplicates
// and non-positive entries removed.
func descendingDistinct(widths [3]int) []int {
	seen := make(map[int]bool, 3)
	out := make([]int, 0, 3)
	for _, w := range widths {
		if w > 0 && !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] < out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}

	return out
}
