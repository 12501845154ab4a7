package stitchgrid

// Run is a maximal horizontal span of one row sharing one color index.
type Run struct {
	Row        int `json:"row"`
	StartCol   int `json:"startCol"`
	Length     int `json:"length"`
	ColorIndex int `json:"colorIndex"`
}

// EndCol returns the last column covered by the run.
func (r Run) EndCol() int {
	return r.StartCol + r.Length - 1
}

// EncodeRuns compresses grid into runs ordered by row, then start column.
// Replaying the runs in order reproduces grid exactly.
func EncodeRuns(grid Grid) []Run {
	var runs []Run
	for y, row := range grid {
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x] == row[start] {
				continue
			}
			runs = append(runs, Run{
				Row:        y,
				StartCol:   start,
				Length:     x - start,
				ColorIndex: row[start],
			})
			start = x
		}
	}
	return runs
}

// ReplayRuns paints runs into a fresh rows×cols grid. Cells not covered by
// any run stay 0; runs reaching outside the grid are clipped.
func ReplayRuns(runs []Run, rows, cols int) Grid {
	grid := make(Grid, rows)
	for y := range grid {
		grid[y] = make([]int, cols)
	}
	for _, r := range runs {
		if r.Row < 0 || r.Row >= rows {
			continue
		}
		for x := max(r.StartCol, 0); x < r.StartCol+r.Length && x < cols; x++ {
			grid[r.Row][x] = r.ColorIndex
		}
	}
	return grid
}
