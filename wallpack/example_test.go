package wallpack_test

import (
	"context"
	"fmt"

	"github.com/Nic0Byte/wall-build-1-sub002/wallgeom"
	"github.com/Nic0Byte/wall-build-1-sub002/wallpack"
)

// Example_plainWall demonstrates packing a plain rectangular wall (no
// apertures, strategy big): four W_L blocks per row with a trailing
// custom cut from W_S stock, and a height that divides the wall exactly
// so no adaptive top row is produced.
func Example_plainWall() {
	in := wallpack.Input{
		Exterior:  wallgeom.Rect{MinX: 0, MinY: 0, MaxX: 5000, MaxY: 2970}.Ring(),
		Widths:    [3]int64{1239, 826, 413},
		Height:    495,
		Strategy:  wallpack.StrategyBig,
		Direction: wallpack.LTR,
	}

	result, err := wallpack.PackWall(context.Background(), in)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(len(result.Rows), len(result.Placed), len(result.Customs))
	// Output: 6 24 6
}

// Example_windowedWall demonstrates a wall with a centered window: the
// row stripes crossing the window split into two components, each
// filled independently from its own edge.
func Example_windowedWall() {
	in := wallpack.Input{
		Exterior:  wallgeom.Rect{MinX: 0, MinY: 0, MaxX: 4000, MaxY: 2970}.Ring(),
		Apertures: []wallgeom.Ring{wallgeom.Rect{MinX: 1500, MinY: 500, MaxX: 2500, MaxY: 2000}.Ring()},
		Widths:    [3]int64{1239, 826, 413},
		Height:    495,
		Strategy:  wallpack.StrategyBig,
		Direction: wallpack.LTR,
	}

	result, err := wallpack.PackWall(context.Background(), in)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(len(result.Warnings) == 0, len(result.Placed) > 0)
	// Output: true true
}

// Example_oversizedApertureIsIgnored demonstrates that an aperture
// covering 80% or more of the wall's area is filtered out with a
// warning and packing proceeds as if it were never there.
func Example_oversizedApertureIsIgnored() {
	in := wallpack.Input{
		Exterior:  wallgeom.Rect{MinX: 0, MinY: 0, MaxX: 2000, MaxY: 2000}.Ring(),
		Apertures: []wallgeom.Ring{wallgeom.Rect{MinX: 100, MinY: 0, MaxX: 1900, MaxY: 2000}.Ring()}, // 90% of wall area
		Widths:    [3]int64{1000, 500, 250},
		Height:    500,
		Strategy:  wallpack.StrategyBig,
		Direction: wallpack.LTR,
	}

	result, err := wallpack.PackWall(context.Background(), in)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(len(result.Rows), len(result.Placed), len(result.Warnings))
	// Output: 4 8 1
}
