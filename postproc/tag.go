package postproc

// tagCustoms sets SourceBlockWidth/Waste on every surviving custom: the
// smallest catalogue width ≥ the piece's width (falling back to the
// largest width if none is wide enough, though merge/clip should
// prevent that from occurring in practice), per spec.md §4.C.
func tagCustoms(rows []Row, widths [3]int64) []Row {
	wl := maxOf(widths)
	out := make([]Row, len(rows))
	for i, row := range rows {
		pieces := make([]Piece, len(row.Pieces))
		for j, p := range row.Pieces {
			if !p.IsStandard {
				src := sourceWidthFor(p.Width, widths, wl)
				p.SourceBlockWidth = src
				p.Waste = src - p.Width
			}
			pieces[j] = p
		}
		out[i] = Row{Y: row.Y, Height: row.Height, Pieces: pieces}
	}

	return out
}

func sourceWidthFor(width int64, widths [3]int64, wl int64) int64 {
	best := int64(0)
	for _, w := range widths {
		if w >= width && (best == 0 || w < best) {
			best = w
		}
	}
	if best == 0 {
		return wl
	}

	return best
}

func maxOf(widths [3]int64) int64 {
	m := widths[0]
	for _, w := range widths[1:] {
		if w > m {
			m = w
		}
	}

	return m
}

