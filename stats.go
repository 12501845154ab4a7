package stitchgrid

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColorUsage counts how much of the grid one palette color covers.
type ColorUsage struct {
	Index int
	Color PaletteColor
	Cells int
	Runs  int
	// Share is the percentage of grid cells using this color.
	Share float64
}

// Summary describes the workload of a grid: how many stitches of each
// color and how many instructions the guide will walk through.
type Summary struct {
	Cells         int
	Runs          int
	ColorsUsed    int
	MeanRunLength float64
	Usage         []ColorUsage // indexed by palette index
}

// Summarize computes per-color usage and run statistics for q.
func Summarize(q *QuantizedResult) Summary {
	usage := make([]ColorUsage, len(q.Palette))
	for i, c := range q.Palette {
		usage[i] = ColorUsage{Index: i, Color: c}
	}

	runs := EncodeRuns(q.Grid)
	lengths := make([]float64, len(runs))
	for i, r := range runs {
		lengths[i] = float64(r.Length)
		if r.ColorIndex >= 0 && r.ColorIndex < len(usage) {
			usage[r.ColorIndex].Cells += r.Length
			usage[r.ColorIndex].Runs++
		}
	}

	cells := make([]float64, len(usage))
	for i, u := range usage {
		cells[i] = float64(u.Cells)
	}
	total := floats.Sum(cells)
	if total > 0 {
		floats.Scale(100/total, cells)
	}

	s := Summary{Cells: int(total), Runs: len(runs), Usage: usage}
	for i := range usage {
		usage[i].Share = cells[i]
		if usage[i].Cells > 0 {
			s.ColorsUsed++
		}
	}
	if len(lengths) > 0 {
		s.MeanRunLength = stat.Mean(lengths, nil)
	}
	return s
}
