package reinforce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nic0Byte/wall-build-1-sub002/reinforce"
)

func TestCovers_NilLowerIsVacuouslyCovered(t *testing.T) {
	cfg := reinforce.Config{Thickness: 58, Spacing: 420, CountL: 2}
	widths := [3]int{1239, 826, 413}
	upper := reinforce.Row{{X: 0, Width: 1239}}
	assert.True(t, reinforce.Covers(nil, upper, cfg, widths))
}

func TestCovers_LowerSpansEveryCentre(t *testing.T) {
	cfg := reinforce.Config{Thickness: 58, Spacing: 420, CountL: 1}
	widths := [3]int{1239, 826, 413}
	lower := reinforce.Row{{X: 0, Width: 1239}}
	upper := reinforce.Row{{X: 0, Width: 1239}}
	assert.True(t, reinforce.Covers(lower, upper, cfg, widths))
}

func TestCovers_GapInLowerFailsCoverage(t *testing.T) {
	cfg := reinforce.Config{Thickness: 58, Spacing: 420, CountL: 1}
	widths := [3]int{1239, 826, 413}
	// upper's single reinforcement centre sits at global 1210; lower is
	// split into two blocks with a gap (plus tolerance) straddling that X.
	lower := reinforce.Row{{X: 0, Width: 1000}, {X: 1300, Width: 500}}
	upper := reinforce.Row{{X: 0, Width: 1239}}
	assert.False(t, reinforce.Covers(lower, upper, cfg, widths))
}

func TestCovers_BoundaryWithinHalfThickness(t *testing.T) {
	cfg := reinforce.Config{Thickness: 58, Spacing: 420, CountL: 1}
	widths := [3]int{1239, 826, 413}
	// centre at global 1210; lower block ends exactly at 1210 + t/2 = 1239.
	lower := reinforce.Row{{X: 0, Width: 1239}}
	upper := reinforce.Row{{X: 0, Width: 1239}}
	assert.True(t, reinforce.Covers(lower, upper, cfg, widths))
}
