package stitchgrid

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lucasb-eyer/go-colorful"
)

// QuantizedResult is the unit of export and import: a palette plus the grid
// of palette indices it colors.
type QuantizedResult struct {
	Palette Palette `json:"palette"`
	Grid    Grid    `json:"grid"`
	Cols    int     `json:"cols"`
	Rows    int     `json:"rows"`
}

// NewResult bundles palette and grid, taking dimensions from the grid.
func NewResult(palette Palette, grid Grid) *QuantizedResult {
	rows, cols := grid.Dims()
	return &QuantizedResult{Palette: palette, Grid: grid, Cols: cols, Rows: rows}
}

// Validate checks the structural invariants of the result.
func (q *QuantizedResult) Validate() error {
	if len(q.Palette) == 0 {
		return ErrMissingPalette
	}
	if len(q.Palette) > MaxColors {
		return fmt.Errorf("%w: %d colors, at most %d", ErrPaletteSize, len(q.Palette), MaxColors)
	}
	if len(q.Grid) == 0 {
		return ErrMissingGrid
	}
	if err := q.Grid.Validate(len(q.Palette)); err != nil {
		return err
	}
	rows, cols := q.Grid.Dims()
	if q.Rows != rows || q.Cols != cols {
		return fmt.Errorf("%w: header %dx%d, grid %dx%d", ErrDimensions, q.Cols, q.Rows, cols, rows)
	}
	return nil
}

// Runs returns the run encoding of the grid.
func (q *QuantizedResult) Runs() []Run {
	return EncodeRuns(q.Grid)
}

// MarshalResult encodes q in the interchange format.
func MarshalResult(q *QuantizedResult) ([]byte, error) {
	return json.MarshalIndent(q, "", "  ")
}

// WriteResult writes q to w in the interchange format.
func WriteResult(w io.Writer, q *QuantizedResult) error {
	data, err := MarshalResult(q)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

type wireColor struct {
	R   *int   `json:"r"`
	G   *int   `json:"g"`
	B   *int   `json:"b"`
	Hex string `json:"hex"`
}

type wireResult struct {
	Palette []wireColor `json:"palette"`
	Grid    [][]int     `json:"grid"`
	Cols    *int        `json:"cols"`
	Rows    *int        `json:"rows"`
}

// ParseResult decodes and validates an interchange document. Either a fully
// valid result or an error wrapping one of the ErrMalformedResult,
// ErrMissingPalette, ErrMissingGrid, ErrDimensions, ErrChannelRange,
// ErrNonRectangular, ErrEmptyGrid or ErrCellIndex sentinels is returned;
// never both.
//
// Palette hex strings are recomputed from r, g, b. A color given only by its
// hex string is accepted. Missing cols/rows are taken from the grid.
func ParseResult(data []byte) (*QuantizedResult, error) {
	var w wireResult
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResult, err)
	}
	if len(w.Palette) == 0 {
		return nil, ErrMissingPalette
	}
	if len(w.Grid) == 0 {
		return nil, ErrMissingGrid
	}

	palette := make(Palette, len(w.Palette))
	for i, wc := range w.Palette {
		c, err := wc.decode()
		if err != nil {
			return nil, fmt.Errorf("palette[%d]: %w", i, err)
		}
		palette[i] = c
	}

	q := NewResult(palette, Grid(w.Grid))
	if w.Cols != nil {
		q.Cols = *w.Cols
	}
	if w.Rows != nil {
		q.Rows = *w.Rows
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

func (wc wireColor) decode() (PaletteColor, error) {
	if wc.R == nil || wc.G == nil || wc.B == nil {
		if wc.Hex == "" {
			return PaletteColor{}, fmt.Errorf("%w: color has neither r/g/b nor hex", ErrMalformedResult)
		}
		c, err := colorful.Hex(wc.Hex)
		if err != nil {
			return PaletteColor{}, fmt.Errorf("%w: %v", ErrMalformedResult, err)
		}
		r, g, b := c.RGB255()
		return NewPaletteColor(int(r), int(g), int(b)), nil
	}
	for _, v := range []int{*wc.R, *wc.G, *wc.B} {
		if v < 0 || v > 255 {
			return PaletteColor{}, fmt.Errorf("%w: %d", ErrChannelRange, v)
		}
	}
	return NewPaletteColor(*wc.R, *wc.G, *wc.B), nil
}

// ReadResult decodes and validates an interchange document from r.
func ReadResult(r io.Reader) (*QuantizedResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseResult(data)
}
