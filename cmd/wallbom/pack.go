package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Nic0Byte/wall-build-1-sub002/reinforce"
	"github.com/Nic0Byte/wall-build-1-sub002/wallgeom"
	"github.com/Nic0Byte/wall-build-1-sub002/wallpack"
)

var packCmd = &cobra.Command{
	Use:   "pack [input.json]",
	Short: "Pack a wall described by a JSON file and print its bill of materials",
	Args:  cobra.ExactArgs(1),
	RunE:  runPack,
}

// point is the JSON wire form of a wallgeom.Point.
type point struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

func (p point) toPoint() wallgeom.Point { return wallgeom.Point{X: p.X, Y: p.Y} }

func ringFrom(pts []point) wallgeom.Ring {
	ring := make(wallgeom.Ring, len(pts))
	for i, p := range pts {
		ring[i] = p.toPoint()
	}

	return ring
}

// reinforcementSpec is the optional JSON wire form of a reinforce.Config;
// required only when strategy is "small".
type reinforcementSpec struct {
	Thickness        int  `json:"thickness"`
	Spacing          int  `json:"spacing"`
	CountL           int  `json:"count_l"`
	CountM           int  `json:"count_m"`
	CountS           int  `json:"count_s"`
	Height           int  `json:"height"`
	HeightFromGround bool `json:"height_from_ground"`
}

func (r reinforcementSpec) toConfig() reinforce.Config {
	return reinforce.Config{
		Thickness:        r.Thickness,
		Spacing:          r.Spacing,
		CountL:           r.CountL,
		CountM:           r.CountM,
		CountS:           r.CountS,
		Height:           r.Height,
		HeightFromGround: r.HeightFromGround,
	}
}

// verticalSpec is the optional JSON wire form of a wallpack.VerticalConfig.
type verticalSpec struct {
	GroundOffsetEnabled  bool  `json:"ground_offset_enabled"`
	GroundOffset         int64 `json:"ground_offset"`
	CeilingOffsetEnabled bool  `json:"ceiling_offset_enabled"`
	CeilingOffset        int64 `json:"ceiling_offset"`
}

// wallSpec is the on-disk JSON description of one wall, mapping directly
// onto wallpack.Input.
type wallSpec struct {
	Exterior      []point            `json:"exterior"`
	Apertures     [][]point          `json:"apertures"`
	Widths        [3]int64           `json:"widths"`
	Height        int64              `json:"height"`
	Strategy      string             `json:"strategy"` // "big" or "small"
	Reinforcement *reinforcementSpec `json:"reinforcement,omitempty"`
	Direction     string             `json:"direction"` // "ltr" or "rtl"
	Vertical      verticalSpec       `json:"vertical"`
}

func (w wallSpec) toInput() (wallpack.Input, error) {
	in := wallpack.Input{
		Exterior: ringFrom(w.Exterior),
		Widths:   w.Widths,
		Height:   w.Height,
		Vertical: wallpack.VerticalConfig{
			GroundOffsetEnabled:  w.Vertical.GroundOffsetEnabled,
			GroundOffset:         w.Vertical.GroundOffset,
			CeilingOffsetEnabled: w.Vertical.CeilingOffsetEnabled,
			CeilingOffset:        w.Vertical.CeilingOffset,
		},
	}
	for _, ap := range w.Apertures {
		in.Apertures = append(in.Apertures, ringFrom(ap))
	}

	switch w.Strategy {
	case "", "big":
		in.Strategy = wallpack.StrategyBig
	case "small":
		in.Strategy = wallpack.StrategySmall
	default:
		return wallpack.Input{}, fmt.Errorf("wallbom: unknown strategy %q (want \"big\" or \"small\")", w.Strategy)
	}
	if w.Reinforcement != nil {
		cfg := w.Reinforcement.toConfig()
		in.Reinforcement = &cfg
	}

	switch w.Direction {
	case "", "ltr":
		in.Direction = wallpack.LTR
	case "rtl":
		in.Direction = wallpack.RTL
	default:
		return wallpack.Input{}, fmt.Errorf("wallbom: unknown direction %q (want \"ltr\" or \"rtl\")", w.Direction)
	}

	return in, nil
}

func runPack(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("wallbom: reading input: %w", err)
	}

	var spec wallSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return fmt.Errorf("wallbom: parsing input: %w", err)
	}

	in, err := spec.toInput()
	if err != nil {
		return err
	}

	result, err := wallpack.PackWall(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("wallbom: %w", err)
	}

	printReport(cmd.OutOrStdout(), result)
	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}

	return nil
}

// printReport renders the ProductionReport in the tabular style of
// dfbb-im2code's check command: one line per distinct standard width,
// then the cut list, then a one-line summary.
func printReport(w io.Writer, result wallpack.Result) {
	report := result.Report

	widths := make([]int64, 0, len(report.StandardCountByWidth))
	for width := range report.StandardCountByWidth {
		widths = append(widths, width)
	}
	sort.Slice(widths, func(i, j int) bool { return widths[i] > widths[j] })

	fmt.Fprintf(w, "rows: %d\n", len(result.Rows))
	fmt.Fprintln(w, "standard blocks:")
	for _, width := range widths {
		fmt.Fprintf(w, "  %-6d x %d\n", width, report.StandardCountByWidth[width])
	}
	fmt.Fprintf(w, "custom pieces: %d\n", report.CustomCount)
	if len(report.CutList) > 0 {
		fmt.Fprintln(w, "cut list:")
		for _, item := range report.CutList {
			fmt.Fprintf(w, "  from %-6d: %d cut(s), %d mm total waste\n", item.SourceBlockWidth, item.Count, item.TotalWaste)
		}
	}
	fmt.Fprintf(w, "total waste: %d mm\n", report.TotalWaste)
}
