package reinforce

// StaggerTolerance is the distance (mm) within which an upper-row joint is
// considered coincident with a lower-row joint, per spec.md §4.R.
const StaggerTolerance = 5

// StaggerScore returns the fraction, in [0,1], of upper's internal
// vertical joints that do NOT coincide (within StaggerTolerance) with any
// of lower's internal vertical joints. 1 means perfect brick-pattern
// stagger; 0 means every joint aligns. A row with fewer than 2 blocks has
// no internal joints and scores 1 (vacuously perfect, nothing to align).
// No Result field reports it; combpack reads it for its candidate score
// and first tie-break.
// Complexity: O(j_u · j_l) in joint counts.
func StaggerScore(lower, upper Row) float64 {
	upperJoints := internalJoints(upper)
	if len(upperJoints) == 0 {
		return 1
	}
	lowerJoints := internalJoints(lower)
	var unaligned int
	for _, uj := range upperJoints {
		if !coincidesWithAny(uj, lowerJoints) {
			unaligned++
		}
	}

	return float64(unaligned) / float64(len(upperJoints))
}

// internalJoints returns the X-coordinate of every boundary between two
// blocks that are adjacent in left-to-right order within row.
func internalJoints(row Row) []int {
	if len(row) < 2 {
		return nil
	}
	sorted := append(Row(nil), row...)
	sortByX(sorted)
	joints := make([]int, 0, len(sorted)-1)
	for i := 0; i < len(sorted)-1; i++ {
		joints = append(joints, sorted[i].X+sorted[i].Width)
	}

	return joints
}

func coincidesWithAny(x int, joints []int) bool {
	for _, j := range joints {
		d := x - j
		if d < 0 {
			d = -d
		}
		if d <= StaggerTolerance {
			return true
		}
	}

	return false
}

// sortByX sorts row in place by ascending X (simple insertion sort: rows
// hold at most a handful of blocks, so O(n^2) is irrelevant here and
// avoids pulling in sort.Slice's reflection for such small n).
func sortByX(row Row) {
	for i := 1; i < len(row); i++ {
		for j := i; j > 0 && row[j-1].X > row[j].X; j-- {
			row[j-1], row[j] = row[j], row[j-1]
		}
	}
}
