package stitchgrid

import (
	"fmt"
	"image"
	"log/slog"

	"golang.org/x/image/draw"
)

// Raster is a decoded image flattened to RGB pixels in row-major order.
type Raster struct {
	W, H int
	Pix  []Pixel
}

// NewRaster copies img into a Raster. Alpha is dropped; colors are read
// through image.Image.RGBA so fully transparent pixels become black.
func NewRaster(img image.Image) *Raster {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	ras := &Raster{
		W:   w,
		H:   h,
		Pix: make([]Pixel, w*h),
	}
	for y := range h {
		for x := range w {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			ras.Pix[y*w+x] = Pixel{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
		}
	}
	return ras
}

// At returns the pixel at (x, y). Coordinates are not bounds-checked.
func (r *Raster) At(x, y int) Pixel {
	return r.Pix[y*r.W+x]
}

// Prescale resamples img to exactly cols*scale by rows*scale with
// nearest-neighbour sampling so that block boundaries line up with grid cells
// and hard edges survive.
func Prescale(img image.Image, cols, rows, scale int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, cols*scale, rows*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// SampleGrid assigns every cell the palette color that wins a majority vote
// among its scale×scale sub-pixels. Each sub-pixel votes for its nearest
// palette color; ties go to the lowest palette index.
func SampleGrid(ras *Raster, palette Palette, cols, rows, scale int) (Grid, error) {
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}
	if cols <= 0 || rows <= 0 {
		return nil, ErrEmptyGrid
	}
	if ras.W != cols*scale || ras.H != rows*scale {
		return nil, fmt.Errorf("%w: raster %dx%d, want %dx%d",
			ErrRasterSize, ras.W, ras.H, cols*scale, rows*scale)
	}
	Logger().Debug("sample grid", slog.Int("cols", cols), slog.Int("rows", rows), slog.Int("colors", len(palette)))

	votes := make([]int, len(palette))
	grid := make(Grid, rows)
	for r := range rows {
		grid[r] = make([]int, cols)
		for c := range cols {
			clear(votes)
			for dy := range scale {
				for dx := range scale {
					votes[palette.Nearest(ras.At(c*scale+dx, r*scale+dy))]++
				}
			}
			best := 0
			for i := 1; i < len(votes); i++ {
				if votes[i] > votes[best] {
					best = i
				}
			}
			grid[r][c] = best
		}
	}
	return grid, nil
}
