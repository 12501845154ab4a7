package stitchgrid_test

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/setanarut/stitchgrid"
)

func TestOptions_Clamp(t *testing.T) {
	o := stitchgrid.Options{Cols: -3, Rows: 500, Colors: 99, Scale: 9}.Clamp()
	require.Equal(t, stitchgrid.Options{
		Cols:     stitchgrid.MinCells,
		Rows:     stitchgrid.MaxCells,
		Colors:   stitchgrid.MaxColors,
		Scale:    stitchgrid.SampleScale,
		Method:   stitchgrid.MethodBinned,
		CellSize: stitchgrid.DefaultOptions().CellSize,
	}, o)

	require.Equal(t, stitchgrid.MinColors, stitchgrid.ClampColors(0))
	require.Equal(t, 12, stitchgrid.ClampColors(12))
	require.Equal(t, 50, stitchgrid.ClampCells(50))
}

func TestRowsForAspect(t *testing.T) {
	cases := []struct {
		name string
		cols int
		size image.Point
		want int
	}{
		{"Square", 40, image.Pt(100, 100), 40},
		{"Wide", 40, image.Pt(200, 100), 20},
		{"Tall", 40, image.Pt(100, 300), 120},
		{"ClampedHigh", 100, image.Pt(10, 100), stitchgrid.MaxCells},
		{"ClampedLow", 10, image.Pt(1000, 10), stitchgrid.MinCells},
		{"NoSize", 30, image.Point{}, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, stitchgrid.RowsForAspect(tc.cols, tc.size))
		})
	}
	require.Equal(t, 20, stitchgrid.OptionsFromSize(image.Pt(300, 150)).Rows)
}

func TestLoadOptionsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cols: 64\ncolors: 12\nmethod: mediancut\n"), 0o644))

	o, err := stitchgrid.LoadOptionsFile(path)
	require.NoError(t, err)
	require.Equal(t, 64, o.Cols)
	require.Equal(t, 0, o.Rows)
	require.Equal(t, 12, o.Colors)
	require.Equal(t, stitchgrid.MethodMedianCut, o.Method)
	require.Equal(t, stitchgrid.DefaultOptions().CellSize, o.CellSize)
}

func TestLoadOptionsFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := stitchgrid.LoadOptionsFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("method: octree\n"), 0o644))
	_, err = stitchgrid.LoadOptionsFile(bad)
	require.ErrorIs(t, err, stitchgrid.ErrUnknownMethod)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("cols: [1, 2\n"), 0o644))
	_, err = stitchgrid.LoadOptionsFile(broken)
	require.Error(t, err)
}
