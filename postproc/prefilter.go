package postproc

import "github.com/Nic0Byte/wall-build-1-sub002/diag"

// degenerateThreshold is the minimum width/height (mm) a piece must have
// to survive either degenerate filter (spec.md §4.C passes 1 and 4).
const degenerateThreshold = 1

// filterDegenerate drops any piece with width ≤ 1mm or height ≤ 1mm,
// recording a warning per drop. Used identically before merge (pass 1,
// defence against upstream degenerates) and after clip (pass 4).
func filterDegenerate(rows []Row, warn *diag.Collector, stage string) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		kept := row.Pieces[:0:0]
		for _, p := range row.Pieces {
			if p.Width <= degenerateThreshold || p.Height <= degenerateThreshold {
				if warn != nil {
					warn.Add(diag.KindDegenerateDropped, "%s: dropped piece at (%d,%d) %dx%d", stage, p.X, p.Y, p.Width, p.Height)
				}
				continue
			}
			kept = append(kept, p)
		}
		out = append(out, Row{Y: row.Y, Height: row.Height, Pieces: kept})
	}

	return out
}
