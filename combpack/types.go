package combpack

import "github.com/Nic0Byte/wall-build-1-sub002/reinforce"

// Candidate is one fully materialized row decomposition: Blocks holds
// every piece (standard widths in generation order, plus a trailing
// custom block if CustomWidth > 0) at row-local X positions starting at
// 0. It doubles as the reinforce.Row passed to the coverage/stagger
// functions — Config.countFor matches on width alone, so a custom block
// whose width equals a catalogue width carries that width's
// reinforcement centres, and any other custom width contributes none.
type Candidate struct {
	Blocks        reinforce.Row
	StandardCount int
	CustomWidth   int // 0 if the decomposition is an exact fit
	Pieces        int
	CustomCount   int
	Stagger       float64
	Score         float64
}

// Result is the outcome of one Pack call.
type Result struct {
	// Best is the winning candidate. Zero value if FellBack is true.
	Best Candidate
	// FellBack reports that no candidate passed the reinforcement gate;
	// the caller must pack this row with rowpack instead and record a
	// coverage warning.
	FellBack bool
}
