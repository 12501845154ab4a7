package stitchgrid

import "errors"

var (
	// ErrNoImage indicates a nil or zero-sized source image.
	ErrNoImage = errors.New("stitchgrid: no image or image has no pixels")
	// ErrEmptyPalette indicates sampling was attempted without palette colors.
	ErrEmptyPalette = errors.New("stitchgrid: palette has no colors")
	// ErrRasterSize indicates the raster is not exactly cols*scale by rows*scale.
	ErrRasterSize = errors.New("stitchgrid: raster does not match grid dimensions")
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("stitchgrid: grid must have at least one row and one column")
	// ErrNonRectangular indicates grid rows of differing lengths.
	ErrNonRectangular = errors.New("stitchgrid: all grid rows must have the same length")
	// ErrCellIndex indicates a grid cell refers to a color outside the palette.
	ErrCellIndex = errors.New("stitchgrid: grid cell references a color outside the palette")
	// ErrUnknownMethod indicates an unrecognized palette method name.
	ErrUnknownMethod = errors.New("stitchgrid: unknown palette method")

	// ErrMalformedResult indicates the interchange document is not valid JSON
	// or does not have the expected shape.
	ErrMalformedResult = errors.New("stitchgrid: malformed grid document")
	// ErrMissingPalette indicates the interchange document has no palette.
	ErrMissingPalette = errors.New("stitchgrid: grid document has no palette")
	// ErrPaletteSize indicates a palette with more than MaxColors colors.
	ErrPaletteSize = errors.New("stitchgrid: palette has too many colors")
	// ErrMissingGrid indicates the interchange document has no grid.
	ErrMissingGrid = errors.New("stitchgrid: grid document has no grid")
	// ErrDimensions indicates cols/rows disagree with the grid.
	ErrDimensions = errors.New("stitchgrid: cols/rows do not match grid")
	// ErrChannelRange indicates a palette channel outside 0..255.
	ErrChannelRange = errors.New("stitchgrid: palette channel out of range")
)
