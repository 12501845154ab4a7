package stitchgrid

import "fmt"

// Grid holds palette indices as Grid[row][col]. A grid is never mutated
// after sampling; a new conversion replaces it wholesale.
type Grid [][]int

// Dims returns the row and column counts. Cols is taken from the first row.
func (g Grid) Dims() (rows, cols int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g), len(g[0])
}

// Validate checks that g is non-empty, rectangular, and that every cell
// indexes into a palette of paletteLen colors.
func (g Grid) Validate(paletteLen int) error {
	if len(g) == 0 || len(g[0]) == 0 {
		return ErrEmptyGrid
	}
	w := len(g[0])
	for y, row := range g {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if v < 0 || v >= paletteLen {
				return fmt.Errorf("%w: cell (%d,%d) = %d, palette has %d colors", ErrCellIndex, y, x, v, paletteLen)
			}
		}
	}
	return nil
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether g and o have identical dimensions and cells.
func (g Grid) Equal(o Grid) bool {
	if len(g) != len(o) {
		return false
	}
	for y := range g {
		if len(g[y]) != len(o[y]) {
			return false
		}
		for x := range g[y] {
			if g[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}
