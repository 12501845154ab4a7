package stitchgrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/setanarut/stitchgrid"
)

func TestNewPaletteColor(t *testing.T) {
	c := stitchgrid.NewPaletteColor(18, 171, 255)
	require.Equal(t, "#12abff", c.Hex)

	clamped := stitchgrid.NewPaletteColor(-4, 300, 128)
	require.Equal(t, stitchgrid.PaletteColor{R: 0, G: 255, B: 128, Hex: "#00ff80"}, clamped)
}

func TestPalette_Nearest(t *testing.T) {
	p := stitchgrid.Palette{
		stitchgrid.NewPaletteColor(0, 0, 0),
		stitchgrid.NewPaletteColor(255, 255, 255),
		stitchgrid.NewPaletteColor(255, 0, 0),
	}
	cases := []struct {
		name string
		px   stitchgrid.Pixel
		want int
	}{
		{"Black", stitchgrid.Pixel{R: 20, G: 10, B: 5}, 0},
		{"White", stitchgrid.Pixel{R: 240, G: 230, B: 250}, 1},
		{"Red", stitchgrid.Pixel{R: 200, G: 30, B: 20}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, p.Nearest(tc.px))
		})
	}
}

// TestPalette_NearestTie: equidistant colors resolve to the lowest index.
func TestPalette_NearestTie(t *testing.T) {
	p := stitchgrid.Palette{
		stitchgrid.NewPaletteColor(100, 0, 0),
		stitchgrid.NewPaletteColor(0, 0, 0),
		stitchgrid.NewPaletteColor(100, 0, 0),
	}
	require.Equal(t, 0, p.Nearest(stitchgrid.Pixel{R: 50}))
	require.Equal(t, -1, stitchgrid.Palette{}.Nearest(stitchgrid.Pixel{}))
}

func TestPalette_Assign(t *testing.T) {
	p := stitchgrid.Palette{stitchgrid.NewPaletteColor(0, 0, 0), stitchgrid.NewPaletteColor(255, 255, 255)}
	got := p.Assign([]stitchgrid.Pixel{{R: 250, G: 250, B: 250}, {R: 3, G: 3, B: 3}})
	require.Equal(t, []int{1, 0}, got)
	require.Equal(t, []string{"#000000", "#ffffff"}, p.Hexes())
	require.Len(t, p.Colors(), 2)
}

func TestLuminance(t *testing.T) {
	require.InDelta(t, 255.0, stitchgrid.Luminance(255, 255, 255), 1e-9)
	require.Greater(t, stitchgrid.NewPaletteColor(0, 255, 0).Luminance(), stitchgrid.NewPaletteColor(255, 0, 0).Luminance())
}
