package utils

import (
	"image"
	"image/color"

	"github.com/KononK/resize"
	"github.com/gogpu/gg"
	"github.com/setanarut/stitchgrid"
)

const (
	// dim is the opacity of runs not yet reached in a guide render.
	dim          = 0.25
	legendGap    = 8
	gridLineGray = 0.55
)

func setPaletteColor(dc *gg.Context, c stitchgrid.PaletteColor, alpha float64) {
	dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, alpha)
}

func fillCells(dc *gg.Context, q *stitchgrid.QuantizedResult, cell float64) {
	for y, row := range q.Grid {
		for x, v := range row {
			setPaletteColor(dc, q.Palette[v], 1)
			dc.DrawRectangle(float64(x)*cell, float64(y)*cell, cell, cell)
			_ = dc.Fill()
		}
	}
}

func drawGridLines(dc *gg.Context, cols, rows int, cell float64) {
	dc.SetRGB(gridLineGray, gridLineGray, gridLineGray)
	dc.SetLineWidth(1)
	w, h := float64(cols)*cell, float64(rows)*cell
	for x := 0; x <= cols; x++ {
		dc.DrawLine(float64(x)*cell, 0, float64(x)*cell, h)
	}
	for y := 0; y <= rows; y++ {
		dc.DrawLine(0, float64(y)*cell, w, float64(y)*cell)
	}
	_ = dc.Stroke()
}

func outlineRun(dc *gg.Context, r stitchgrid.Run, cell, width float64) {
	dc.SetLineWidth(width)
	dc.DrawRectangle(float64(r.StartCol)*cell, float64(r.Row)*cell, float64(r.Length)*cell, cell)
	_ = dc.Stroke()
}

func snapshot(dc *gg.Context) image.Image {
	_ = dc.FlushGPU()
	img := dc.Image()
	_ = dc.Close()
	return img
}

// RenderGrid draws every cell as a cellSize square, optionally with grid lines.
func RenderGrid(q *stitchgrid.QuantizedResult, cellSize int, gridLines bool) image.Image {
	cell := float64(max(cellSize, 1))
	dc := gg.NewContext(q.Cols*int(cell), q.Rows*int(cell))
	dc.ClearWithColor(gg.RGB(1, 1, 1))
	fillCells(dc, q, cell)
	if gridLines {
		drawGridLines(dc, q.Cols, q.Rows, cell)
	}
	return snapshot(dc)
}

// RenderGuide draws the grid for a guide step: runs already done at full
// color, the rest dimmed, the current run outlined in black and the next run
// outlined in gray.
func RenderGuide(q *stitchgrid.QuantizedResult, runs []stitchgrid.Run, step stitchgrid.Step, cellSize int) image.Image {
	cell := float64(max(cellSize, 1))
	dc := gg.NewContext(q.Cols*int(cell), q.Rows*int(cell))
	dc.ClearWithColor(gg.RGB(1, 1, 1))

	done := 0
	if step.Current != nil {
		done = step.Position // completed runs plus the current one
	}
	for i, r := range runs {
		alpha := dim
		if i < done {
			alpha = 1
		}
		setPaletteColor(dc, q.Palette[r.ColorIndex], alpha)
		dc.DrawRectangle(float64(r.StartCol)*cell, float64(r.Row)*cell, float64(r.Length)*cell, cell)
		_ = dc.Fill()
	}

	if step.Next != nil {
		dc.SetRGB(0.6, 0.6, 0.6)
		outlineRun(dc, *step.Next, cell, 1)
	}
	if step.Current != nil {
		dc.SetRGB(0, 0, 0)
		outlineRun(dc, *step.Current, cell, 2)
	}
	return snapshot(dc)
}

// RenderExport draws the grid with grid lines and a legend strip of palette
// swatches underneath, one swatch per color in palette order.
func RenderExport(q *stitchgrid.QuantizedResult, cellSize int) image.Image {
	cell := float64(max(cellSize, 1))
	gridW := float64(q.Cols) * cell
	gridH := float64(q.Rows) * cell

	perRow := max(int(gridW/cell), 1)
	legendRows := (len(q.Palette) + perRow - 1) / perRow
	h := gridH + legendGap + float64(legendRows)*cell

	dc := gg.NewContext(int(gridW), int(h))
	dc.ClearWithColor(gg.RGB(1, 1, 1))
	fillCells(dc, q, cell)
	drawGridLines(dc, q.Cols, q.Rows, cell)

	for i, c := range q.Palette {
		x := float64(i%perRow) * cell
		y := gridH + legendGap + float64(i/perRow)*cell
		setPaletteColor(dc, c, 1)
		dc.DrawRectangle(x, y, cell, cell)
		_ = dc.Fill()
	}
	return snapshot(dc)
}

// GridImage returns a cols×rows paletted image with one pixel per cell.
// q must pass Validate, which bounds the palette well below 256 entries.
func GridImage(q *stitchgrid.QuantizedResult) *image.Paletted {
	pal := make(color.Palette, len(q.Palette))
	for i, c := range q.Palette {
		pal[i] = color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}
	}
	img := image.NewPaletted(image.Rect(0, 0, q.Cols, q.Rows), pal)
	for y, row := range q.Grid {
		for x, v := range row {
			img.SetColorIndex(x, y, uint8(v))
		}
	}
	return img
}

// PreviewImage enlarges the one-pixel-per-cell grid image by scale using
// nearest-neighbour interpolation, keeping cell edges hard.
func PreviewImage(q *stitchgrid.QuantizedResult, scale int) image.Image {
	scale = max(scale, 1)
	return resize.Resize(uint(q.Cols*scale), uint(q.Rows*scale), GridImage(q), resize.NearestNeighbor)
}
