package board

import (
	"fmt"
	"strings"
)

// Coord addresses a grid cell by row and column.
type Coord struct {
	Row int
	Col int
}

// NoCoord is returned when no empty cell exists.
var NoCoord = Coord{Row: -1, Col: -1}

// Grid is a row-major matrix of tile values. Zero means empty.
type Grid [][]int

// NewGrid allocates an empty rows x cols grid.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]int, cols)
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns (0 for an empty grid).
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the value at c, or 0 when c is out of range.
func (g Grid) At(c Coord) int {
	if c.Row < 0 || c.Row >= g.Rows() || c.Col < 0 || c.Col >= g.Cols() {
		return 0
	}
	return g[c.Row][c.Col]
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether both grids have the same shape and values.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Sum returns the total of all tile values.
func (g Grid) Sum() int {
	total := 0
	for _, row := range g {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// MaxTile returns the highest tile value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, row := range g {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// CountTiles returns the number of occupied cells.
func (g Grid) CountTiles() int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (g Grid) EmptyCells() []Coord {
	var cells []Coord
	for r, row := range g {
		for c, v := range row {
			if v == 0 {
				cells = append(cells, Coord{Row: r, Col: c})
			}
		}
	}
	return cells
}

// String dumps the grid one bracketed row per line, for logs and tests.
func (g Grid) String() string {
	var sb strings.Builder
	for r, row := range g {
		fmt.Fprintf(&sb, "%d) ", r+1)
		for _, v := range row {
			fmt.Fprintf(&sb, "[%d]", v)
		}
		if r < len(g)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
