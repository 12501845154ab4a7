package stitchgrid

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Pixel is a single 8-bit RGB sample. Alpha is not tracked.
type Pixel struct {
	R, G, B uint8
}

// PaletteColor is one entry of a quantized palette. Hex is derived from R, G, B.
type PaletteColor struct {
	R   int    `json:"r"`
	G   int    `json:"g"`
	B   int    `json:"b"`
	Hex string `json:"hex"`
}

// Palette is an ordered set of representative colors. Grid cells refer to it by index.
type Palette []PaletteColor

// NewPaletteColor clamps each channel to 0..255 and fills in the hex string.
func NewPaletteColor(r, g, b int) PaletteColor {
	r = clampInt(r, 0, 255)
	g = clampInt(g, 0, 255)
	b = clampInt(b, 0, 255)
	return PaletteColor{R: r, G: g, B: b, Hex: hexOf(r, g, b)}
}

func hexOf(r, g, b int) string {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}.Hex()
}

// Colorful returns the color as a go-colorful value.
func (c PaletteColor) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Luminance returns the Rec.709 luminance of the color on a 0..255 scale.
func (c PaletteColor) Luminance() float64 {
	return Luminance(float64(c.R), float64(c.G), float64(c.B))
}

// Luminance weights match Rec.709; inputs and output share the same scale.
func Luminance(r, g, b float64) float64 {
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func (c PaletteColor) distSq(p Pixel) int {
	dr := c.R - int(p.R)
	dg := c.G - int(p.G)
	db := c.B - int(p.B)
	return dr*dr + dg*dg + db*db
}

// Nearest returns the index of the palette color closest to p by squared
// Euclidean RGB distance. Ties keep the lowest index. An empty palette returns -1.
func (p Palette) Nearest(px Pixel) int {
	best := -1
	bestD := 0
	for i, c := range p {
		d := c.distSq(px)
		if best < 0 || d < bestD {
			best = i
			bestD = d
		}
	}
	return best
}

// Assign maps every pixel to its nearest palette index.
func (p Palette) Assign(pixels []Pixel) []int {
	out := make([]int, len(pixels))
	for i, px := range pixels {
		out[i] = p.Nearest(px)
	}
	return out
}

// Colors converts the palette for presentation code that works in colorful space.
func (p Palette) Colors() []colorful.Color {
	out := make([]colorful.Color, len(p))
	for i, c := range p {
		out[i] = c.Colorful()
	}
	return out
}

func (p Palette) Hexes() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
