package utils_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/setanarut/stitchgrid"
	"github.com/setanarut/stitchgrid/utils"
)

func rgbAt(img image.Image, x, y int) [3]int {
	r, g, b, _ := img.At(x, y).RGBA()
	return [3]int{int(r >> 8), int(g >> 8), int(b >> 8)}
}

func requireNear(t *testing.T, want, got [3]int) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], 2, "channel %d: want %v got %v", i, want, got)
	}
}

func colorOf(c stitchgrid.PaletteColor) [3]int { return [3]int{c.R, c.G, c.B} }

func TestRenderGrid(t *testing.T) {
	q := sample()
	img := utils.RenderGrid(q, 10, false)
	require.Equal(t, image.Rect(0, 0, 30, 20), img.Bounds())

	for y, row := range q.Grid {
		for x, v := range row {
			requireNear(t, colorOf(q.Palette[v]), rgbAt(img, x*10+5, y*10+5))
		}
	}

	lined := utils.RenderGrid(q, 10, true)
	require.Equal(t, img.Bounds(), lined.Bounds())
}

func TestRenderGuide(t *testing.T) {
	q := sample()
	g := stitchgrid.NewGuide(q)
	g.Advance()
	st := g.Step()
	img := utils.RenderGuide(q, g.Runs(), st, 10)
	require.Equal(t, image.Rect(0, 0, 30, 20), img.Bounds())

	// first two runs are drawn at full color
	requireNear(t, colorOf(q.Palette[0]), rgbAt(img, 5, 5))
	requireNear(t, colorOf(q.Palette[1]), rgbAt(img, 15, 5))
	// the last run is dimmed over the white background
	last := rgbAt(img, 25, 15)
	require.Greater(t, last[1], 100, "dimmed red should be washed out, got %v", last)
}

func TestRenderExport(t *testing.T) {
	q := sample()
	img := utils.RenderExport(q, 10)
	// grid 30x20, 8px gap, one legend row of 10px
	require.Equal(t, image.Rect(0, 0, 30, 38), img.Bounds())
	for i, c := range q.Palette {
		requireNear(t, colorOf(c), rgbAt(img, i*10+5, 33))
	}
}

func TestPreviewImage(t *testing.T) {
	q := sample()
	img := utils.PreviewImage(q, 8)
	require.Equal(t, 24, img.Bounds().Dx())
	require.Equal(t, 16, img.Bounds().Dy())
	for y, row := range q.Grid {
		for x, v := range row {
			requireNear(t, colorOf(q.Palette[v]), rgbAt(img, x*8+4, y*8+4))
		}
	}
}
