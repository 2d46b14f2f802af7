package combpack

// score weights, per spec.md §4.S step 4.
const (
	weightStagger     = 40.0
	weightCustomRatio = 30.0
	weightPieceCount  = 30.0
	pieceCountCap     = 10
)

// scoreCandidate computes the weighted score for a candidate with the
// given stagger fraction, custom-piece ratio inputs, and piece count.
// Complexity: O(1).
func scoreCandidate(stagger float64, customCount, pieces int) float64 {
	customRatio := 0.0
	if pieces > 0 {
		customRatio = float64(customCount) / float64(pieces)
	}
	capped := pieces
	if capped > pieceCountCap {
		capped = pieceCountCap
	}
	pieceRatio := float64(capped) / float64(pieceCountCap)

	return weightStagger*stagger + weightCustomRatio*(1-customRatio) + weightPieceCount*(1-pieceRatio)
}

// betterCandidate reports whether cand beats current under the spec's
// tie-break chain: higher score; on a score tie, higher stagger; then
// fewer customs; then fewer pieces; an exact tie on every field keeps
// whichever was generated first (current), so this must return false
// for ties.
func betterCandidate(cand, current Candidate) bool {
	const eps = 1e-9
	if d := cand.Score - current.Score; d > eps {
		return true
	} else if d < -eps {
		return false
	}
	if d := cand.Stagger - current.Stagger; d > eps {
		return true
	} else if d < -eps {
		return false
	}
	if cand.CustomCount != current.CustomCount {
		return cand.CustomCount < current.CustomCount
	}
	if cand.Pieces != current.Pieces {
		return cand.Pieces < current.Pieces
	}

	return false
}
