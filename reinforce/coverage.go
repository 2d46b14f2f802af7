package reinforce

// Covers reports whether every reinforcement centre of upper (computed via
// GlobalPositions against widths/cfg) is covered by some block in lower:
// its horizontal extent [x, x+width] must contain the centre within
// tolerance ±t/2, per spec.md §4.R. A nil lower (the ground row) is
// vacuously covered. Complexity: O(u·l) in the reinforcement-centre count
// u and lower-row block count l.
func Covers(lower, upper Row, cfg Config, widths [3]int) bool {
	if lower == nil {
		return true
	}
	centres := GlobalPositions(upper, cfg, widths)
	half := cfg.Thickness / 2
	for _, c := range centres {
		if !coveredByAny(c, half, lower) {
			return false
		}
	}

	return true
}

func coveredByAny(centre, half int, lower Row) bool {
	for _, b := range lower {
		if centre >= b.X-half && centre <= b.X+b.Width+half {
			return true
		}
	}

	return false
}
