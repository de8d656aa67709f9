package board

import (
	"fmt"
	"strings"
)

// MoveResult records what the most recent slide did. It is reset at the
// start of every slide and never accumulates across moves.
type MoveResult struct {
	Direction Direction

	// Merges is true at every destination cell where two tiles merged.
	Merges [][]bool
	Merged int

	// Distances holds, at each source cell, how far its tile travelled.
	// Tiles that stayed in place are recorded as 0 and not counted in Moved.
	Distances [][]int
	Moved     int

	// Gained is the sum of all values produced by merges.
	Gained int
}

func newMoveResult(rows, cols int) MoveResult {
	r := MoveResult{
		Merges:    make([][]bool, rows),
		Distances: make([][]int, rows),
	}
	for i := 0; i < rows; i++ {
		r.Merges[i] = make([]bool, cols)
		r.Distances[i] = make([]int, cols)
	}
	return r
}

// Reset clears every flag, distance and counter in place.
func (r *MoveResult) Reset() {
	for i := range r.Merges {
		clear(r.Merges[i])
		clear(r.Distances[i])
	}
	r.Direction = DirNone
	r.Merged = 0
	r.Moved = 0
	r.Gained = 0
}

// Clone returns a deep copy.
func (r MoveResult) Clone() MoveResult {
	out := r
	out.Merges = make([][]bool, len(r.Merges))
	for i, row := range r.Merges {
		out.Merges[i] = append([]bool(nil), row...)
	}
	out.Distances = make([][]int, len(r.Distances))
	for i, row := range r.Distances {
		out.Distances[i] = append([]int(nil), row...)
	}
	return out
}

// Destination returns where the tile that started at src ended up.
func (r MoveResult) Destination(src Coord) Coord {
	if src.Row < 0 || src.Row >= len(r.Distances) || src.Col < 0 || src.Col >= len(r.Distances[src.Row]) {
		return src
	}
	d := r.Distances[src.Row][src.Col]
	switch r.Direction {
	case DirUp:
		return Coord{Row: src.Row - d, Col: src.Col}
	case DirDown:
		return Coord{Row: src.Row + d, Col: src.Col}
	case DirLeft:
		return Coord{Row: src.Row, Col: src.Col - d}
	case DirRight:
		return Coord{Row: src.Row, Col: src.Col + d}
	}
	return src
}

// String dumps the move and merge grids.
func (r MoveResult) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "==Move=== (%s, moved=%d)\n", r.Direction, r.Moved)
	for i, row := range r.Distances {
		fmt.Fprintf(&sb, "%d) ", i+1)
		for _, d := range row {
			fmt.Fprintf(&sb, "[%d]", d)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "==Merge== (merged=%d)", r.Merged)
	for i, row := range r.Merges {
		fmt.Fprintf(&sb, "\n%d) ", i+1)
		for _, m := range row {
			fmt.Fprintf(&sb, "[%t]", m)
		}
	}
	return sb.String()
}
