package reinforce

// Positions returns the "from-the-right" reinforcement X-offsets (in the
// block's own local frame, left edge = 0) for a block of the given width,
// per spec.md §3/§4.R/§9: the first position sits flush against the
// block's right edge (W - t/2), subsequent positions step left by s, and
// any position that would fall left of the block's left edge (pos - t/2 <
// 0) is discarded.
//
// This asymmetric, right-anchored rule is the structural contract every
// downstream consumer assumes (coverage, stagger); it is never
// symmetrized to "from the left" or "centered".
// Complexity: O(n).
func Positions(width, t, s, n int) []int {
	if n <= 0 || width <= 0 {
		return nil
	}
	out := make([]int, 0, n)
	for k := 0; k < n; k++ {
		pos := width - t/2 - k*s
		if pos-t/2 < 0 {
			break // positions only get smaller as k grows; stop here
		}
		out = append(out, pos)
	}

	return out
}

// GlobalPositions returns the global reinforcement centre X-coordinates
// for every block in row, using cfg's per-width count and the catalogue
// widths to look up each block's reinforcement count.
// Complexity: O(b·n) in block count b and per-block reinforcement count n.
func GlobalPositions(row Row, cfg Config, widths [3]int) []int {
	var out []int
	for _, b := range row {
		n := cfg.countFor(b.Width, widths)
		for _, local := range Positions(b.Width, cfg.Thickness, cfg.Spacing, n) {
			out = append(out, b.X+local)
		}
	}

	return out
}
