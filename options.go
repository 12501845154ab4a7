package stitchgrid

import (
	"fmt"
	"image"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	MinCells  = 2
	MaxCells  = 200
	MinColors = 2
	MaxColors = 24
	// SampleScale is the number of sub-samples per axis per grid cell.
	SampleScale = 4
)

type Options struct {
	// Grid width in cells. Clamped to [2, 200].
	Cols int `yaml:"cols"`
	// Grid height in cells. Clamped to [2, 200].
	// Zero means derive from the source aspect ratio (see OptionsFromSize).
	Rows int `yaml:"rows"`
	// Target palette size. Clamped to [2, 24].
	// Small values (4-8) suit cross-stitch; pixel-art sources usually need
	// no more than their own color count, which the bin fast path preserves.
	Colors int `yaml:"colors"`
	// Sub-samples per axis per cell. Always SampleScale after Clamp.
	Scale int `yaml:"scale"`
	// Palette extraction method. Empty means MethodBinned.
	Method Method `yaml:"method"`
	// Pixel size of one cell in rendered previews and exports.
	CellSize int `yaml:"cell_size"`
}

func DefaultOptions() Options {
	return Options{
		Cols:     40,
		Rows:     40,
		Colors:   8,
		Scale:    SampleScale,
		Method:   MethodBinned,
		CellSize: 16,
	}
}

// OptionsFromSize returns defaults with Rows derived from the aspect ratio of size.
func OptionsFromSize(size image.Point) Options {
	opt := DefaultOptions()
	opt.Rows = RowsForAspect(opt.Cols, size)
	return opt
}

// RowsForAspect returns the row count that keeps cells square for cols
// columns over an image of the given size. The result is clamped.
func RowsForAspect(cols int, size image.Point) int {
	cols = ClampCells(cols)
	if size.X <= 0 || size.Y <= 0 {
		return cols
	}
	rows := int(math.Round(float64(cols) * float64(size.Y) / float64(size.X)))
	return ClampCells(rows)
}

// Clamp returns a copy of o with every parameter moved into its valid range.
// Out-of-range values are never rejected.
func (o Options) Clamp() Options {
	o.Cols = ClampCells(o.Cols)
	o.Rows = ClampCells(o.Rows)
	o.Colors = ClampColors(o.Colors)
	o.Scale = SampleScale
	if o.Method == "" {
		o.Method = MethodBinned
	}
	if o.CellSize <= 0 {
		o.CellSize = DefaultOptions().CellSize
	}
	return o
}

// ClampCells clamps a column or row count to [MinCells, MaxCells].
func ClampCells(n int) int {
	return clampInt(n, MinCells, MaxCells)
}

// ClampColors clamps a palette size to [MinColors, MaxColors].
func ClampColors(k int) int {
	return clampInt(k, MinColors, MaxColors)
}

// LoadOptionsFile reads YAML options. Missing fields keep their defaults;
// a missing rows field is left at zero so callers can derive it from the image.
func LoadOptionsFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	opt := DefaultOptions()
	opt.Rows = 0
	if err := yaml.Unmarshal(data, &opt); err != nil {
		return Options{}, fmt.Errorf("parse options %s: %w", path, err)
	}
	if opt.Method != "" {
		if _, err := ParseMethod(string(opt.Method)); err != nil {
			return Options{}, err
		}
	}
	return opt, nil
}
