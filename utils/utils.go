package utils

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"slices"

	"github.com/setanarut/stitchgrid"
)

// SortByBrightness returns a copy of q whose palette runs from darkest to
// brightest, with grid indices remapped to match.
func SortByBrightness(q *stitchgrid.QuantizedResult) *stitchgrid.QuantizedResult {
	order := make([]int, len(q.Palette))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		la := q.Palette[a].Luminance()
		lb := q.Palette[b].Luminance()
		if la < lb {
			return -1
		}
		if la > lb {
			return 1
		}
		return 0
	})

	remap := make([]int, len(order))
	palette := make(stitchgrid.Palette, len(order))
	for newIdx, oldIdx := range order {
		remap[oldIdx] = newIdx
		palette[newIdx] = q.Palette[oldIdx]
	}
	grid := q.Grid.Clone()
	for _, row := range grid {
		for x, v := range row {
			row[x] = remap[v]
		}
	}
	return &stitchgrid.QuantizedResult{Palette: palette, Grid: grid, Cols: q.Cols, Rows: q.Rows}
}

func ReadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// ReadResultFile loads and validates a grid document.
func ReadResultFile(path string) (*stitchgrid.QuantizedResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	q, err := stitchgrid.ReadResult(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return q, nil
}

func WriteResultFile(q *stitchgrid.QuantizedResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := stitchgrid.WriteResult(f, q); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// PaletteImage draws the palette as a horizontal strip of square tiles.
func PaletteImage(palette stitchgrid.Palette, tileSize int) (*image.RGBA, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}

	w := tileSize * len(palette)
	h := tileSize
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for i, c := range palette {
		col := color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}
		x0 := i * tileSize
		x1 := x0 + tileSize
		for y := range h {
			for x := x0; x < x1; x++ {
				img.SetRGBA(x, y, col)
			}
		}
	}
	return img, nil
}

func SavePalette(palette stitchgrid.Palette, tileSize int, filename string) error {
	img, err := PaletteImage(palette, tileSize)
	if err != nil {
		return err
	}
	return SaveImage(img, filename)
}
