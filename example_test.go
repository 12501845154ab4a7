package stitchgrid_test

import (
	"fmt"

	"github.com/setanarut/stitchgrid"
)

// ExampleEncodeRuns shows the row-major instruction order of a small grid.
func ExampleEncodeRuns() {
	grid := stitchgrid.Grid{
		{0, 0, 1},
		{1, 1, 1},
	}
	for _, r := range stitchgrid.EncodeRuns(grid) {
		fmt.Printf("row %d col %d: %d × color %d\n", r.Row, r.StartCol, r.Length, r.ColorIndex)
	}
	// Output:
	// row 0 col 0: 2 × color 0
	// row 0 col 2: 1 × color 1
	// row 1 col 0: 3 × color 1
}

// ExampleGuide walks forward twice, steps back, then undoes the last advance.
func ExampleGuide() {
	q := stitchgrid.NewResult(
		stitchgrid.Palette{stitchgrid.NewPaletteColor(255, 0, 0), stitchgrid.NewPaletteColor(0, 0, 255)},
		stitchgrid.Grid{{0, 0, 1}, {1, 1, 1}},
	)
	g := stitchgrid.NewGuide(q)
	fmt.Println(g.Step(), "|", g.Instruction())
	fmt.Println(g.Advance())
	fmt.Println(g.Advance())
	fmt.Println(g.Back())
	fmt.Println(g.Back())
	fmt.Println(g.Undo())
	// Output:
	// 1 of 3, 33% | Row 1, cols 1-2: 2 × #ff0000 (color 1)
	// 2 of 3, 67%
	// 3 of 3, 100%
	// 2 of 3, 67%
	// 1 of 3, 33%
	// 2 of 3, 67%
}
