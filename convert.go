package stitchgrid

import (
	"image"
	"log/slog"
)

// Convert turns img into a quantized grid.
//
// Options are clamped first; a zero Rows is derived from the image aspect
// ratio. The image is resampled with nearest-neighbour to Cols*Scale by
// Rows*Scale, a palette is extracted from that raster and every cell is
// assigned by majority vote (see SampleGrid).
func Convert(img image.Image, opts Options) (*QuantizedResult, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrNoImage
	}
	if opts.Rows == 0 {
		opts.Rows = RowsForAspect(opts.Cols, img.Bounds().Size())
	}
	opts = opts.Clamp()

	scaled := Prescale(img, opts.Cols, opts.Rows, opts.Scale)
	ras := NewRaster(scaled)
	palette := ExtractPalette(scaled, ras, opts.Colors, opts.Method)

	grid, err := SampleGrid(ras, palette, opts.Cols, opts.Rows, opts.Scale)
	if err != nil {
		return nil, err
	}
	Logger().Info("converted image",
		slog.Int("cols", opts.Cols), slog.Int("rows", opts.Rows),
		slog.Int("colors", len(palette)), slog.String("method", opts.Method.String()))
	return NewResult(palette, grid), nil
}
