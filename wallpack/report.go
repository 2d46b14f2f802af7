package wallpack

// buildReport derives the additive ProductionReport from the final
// placed/custom lists (SPEC_FULL.md Supplemented Features §1). Purely a
// summary: nothing here feeds back into packing decisions.
func buildReport(placed []PlacedBlock, customs []CustomPiece) ProductionReport {
	byWidth := make(map[int64]int, len(placed))
	for _, p := range placed {
		byWidth[p.Width]++
	}

	cutByWidth := make(map[int64]*CutListItem, len(customs))
	order := make([]int64, 0, len(customs))
	for _, c := range customs {
		item, ok := cutByWidth[c.SourceBlockWidth]
		if !ok {
			item = &CutListItem{SourceBlockWidth: c.SourceBlockWidth}
			cutByWidth[c.SourceBlockWidth] = item
			order = append(order, c.SourceBlockWidth)
		}
		item.Count++
		item.TotalWaste += c.Waste
	}

	report := ProductionReport{
		StandardCountByWidth: byWidth,
		CustomCount:          len(customs),
	}
	for _, w := range order {
		item := *cutByWidth[w]
		report.TotalWaste += item.TotalWaste
		report.CutList = append(report.CutList, item)
	}

	return report
}
