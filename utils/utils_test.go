package utils_test

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/setanarut/stitchgrid"
	"github.com/setanarut/stitchgrid/utils"
)

func sample() *stitchgrid.QuantizedResult {
	return stitchgrid.NewResult(
		stitchgrid.Palette{
			stitchgrid.NewPaletteColor(255, 255, 255),
			stitchgrid.NewPaletteColor(200, 0, 0),
			stitchgrid.NewPaletteColor(0, 0, 0),
		},
		stitchgrid.Grid{{0, 1, 2}, {2, 2, 1}},
	)
}

func TestSortByBrightness(t *testing.T) {
	q := sample()
	s := utils.SortByBrightness(q)

	require.Equal(t, []string{"#000000", "#c80000", "#ffffff"}, s.Palette.Hexes())
	require.Equal(t, stitchgrid.Grid{{2, 1, 0}, {0, 0, 1}}, s.Grid)
	require.NoError(t, s.Validate())
	// the input is left untouched
	require.Equal(t, stitchgrid.Grid{{0, 1, 2}, {2, 2, 1}}, q.Grid)

	for y, row := range q.Grid {
		for x, v := range row {
			require.Equal(t, q.Palette[v], s.Palette[s.Grid[y][x]])
		}
	}
}

func TestResultFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.json")
	q := sample()
	require.NoError(t, utils.WriteResultFile(q, path))

	got, err := utils.ReadResultFile(path)
	require.NoError(t, err)
	require.Equal(t, q, got)

	_, err = utils.ReadResultFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestImage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.png")
	require.NoError(t, utils.SavePalette(sample().Palette, 4, path))

	img, err := utils.ReadImage(path)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 12, 4), img.Bounds())

	r, g, b, _ := img.At(5, 2).RGBA()
	require.Equal(t, []uint32{200, 0, 0}, []uint32{r >> 8, g >> 8, b >> 8})

	_, err = utils.PaletteImage(nil, 4)
	require.Error(t, err)
}

func TestGridImage(t *testing.T) {
	img := utils.GridImage(sample())
	require.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	require.Equal(t, uint8(2), img.ColorIndexAt(0, 1))
	require.Equal(t, color.RGBA{R: 200, A: 255}, img.At(1, 0))
}
