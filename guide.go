package stitchgrid

import (
	"fmt"
	"math"
)

// Guide walks a user through runs one at a time.
//
// Back and Undo are independent: Back moves the pointer one run earlier and
// leaves history alone, while Undo pops the pointer saved by the most recent
// Advance, regardless of any Back calls in between.
//
// Navigation that is not currently possible is a no-op. A Guide is not safe
// for concurrent use.
type Guide struct {
	runs    []Run
	palette Palette
	grid    Grid
	pointer int
	history []int
}

// Step describes the guide position after a transition.
// Current and Next are nil when there is nothing to show.
type Step struct {
	Position int // 1-based; 0 when the guide is empty
	Total    int
	Percent  int

	Current      *Run
	CurrentColor PaletteColor
	Next         *Run
	NextColor    PaletteColor

	CanBack    bool
	CanAdvance bool
	CanUndo    bool
}

// String formats progress as "2 of 3, 67%".
func (s Step) String() string {
	if s.Total == 0 {
		return "no instructions"
	}
	return fmt.Sprintf("%d of %d, %d%%", s.Position, s.Total, s.Percent)
}

// NewGuide builds a guide over the runs of result's grid.
func NewGuide(result *QuantizedResult) *Guide {
	g := &Guide{}
	g.Load(EncodeRuns(result.Grid), result.Palette, result.Grid)
	return g
}

// Load replaces the run sequence, moves to the first run and clears history.
func (g *Guide) Load(runs []Run, palette Palette, grid Grid) Step {
	g.runs = runs
	g.palette = palette
	g.grid = grid
	g.pointer = 0
	g.history = nil
	return g.Step()
}

// Advance moves to the next run and records the previous position for Undo.
func (g *Guide) Advance() Step {
	if g.pointer < len(g.runs)-1 {
		g.history = append(g.history, g.pointer)
		g.pointer++
	}
	return g.Step()
}

// Back moves to the previous run without touching history.
func (g *Guide) Back() Step {
	if g.pointer > 0 {
		g.pointer--
	}
	return g.Step()
}

// Undo returns to the position saved by the most recent Advance.
func (g *Guide) Undo() Step {
	if n := len(g.history); n > 0 {
		g.pointer = g.history[n-1]
		g.history = g.history[:n-1]
	}
	return g.Step()
}

// Reset returns to the first run and clears history. The runs are kept.
func (g *Guide) Reset() Step {
	g.pointer = 0
	g.history = nil
	return g.Step()
}

// Step reports the current position without changing it.
func (g *Guide) Step() Step {
	n := len(g.runs)
	if n == 0 {
		return Step{}
	}
	s := Step{
		Position:   g.pointer + 1,
		Total:      n,
		Percent:    int(math.Round(100 * float64(g.pointer+1) / float64(n))),
		CanBack:    g.pointer > 0,
		CanAdvance: g.pointer < n-1,
		CanUndo:    len(g.history) > 0,
	}
	cur := g.runs[g.pointer]
	s.Current = &cur
	s.CurrentColor = g.colorOf(cur)
	if g.pointer < n-1 {
		next := g.runs[g.pointer+1]
		s.Next = &next
		s.NextColor = g.colorOf(next)
	}
	return s
}

func (g *Guide) colorOf(r Run) PaletteColor {
	if r.ColorIndex < 0 || r.ColorIndex >= len(g.palette) {
		return PaletteColor{}
	}
	return g.palette[r.ColorIndex]
}

// Instruction describes the current run for display, for example
// "Row 1, cols 1-2: 2 × #ff0000 (color 1)". Rows, columns and color numbers are 1-based.
func (g *Guide) Instruction() string {
	s := g.Step()
	if s.Current == nil {
		return "no instructions"
	}
	return describeRun(*s.Current, s.CurrentColor)
}

func describeRun(r Run, c PaletteColor) string {
	cols := fmt.Sprintf("col %d", r.StartCol+1)
	if r.Length > 1 {
		cols = fmt.Sprintf("cols %d-%d", r.StartCol+1, r.EndCol()+1)
	}
	return fmt.Sprintf("Row %d, %s: %d × %s (color %d)", r.Row+1, cols, r.Length, c.Hex, r.ColorIndex+1)
}

// Empty reports whether there are no runs to walk.
func (g *Guide) Empty() bool { return len(g.runs) == 0 }

func (g *Guide) Pointer() int     { return g.pointer }
func (g *Guide) Runs() []Run      { return g.runs }
func (g *Guide) Palette() Palette { return g.palette }
func (g *Guide) Grid() Grid       { return g.grid }

// Completed returns the runs before the current one.
func (g *Guide) Completed() []Run {
	if len(g.runs) == 0 {
		return nil
	}
	return g.runs[:g.pointer]
}
