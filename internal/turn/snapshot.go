package turn

import (
	"github.com/google/uuid"

	"github.com/Watersilver/2powN/internal/board"
)

// Snapshot is everything a UI adapter reads after a resumption.
// All slices are copies owned by the caller.
type Snapshot struct {
	Step      Step
	Turn      board.Turn
	Direction board.Direction

	Grid      board.Grid
	Merges    [][]bool
	Merged    int
	Distances [][]int
	Moved     int

	Initialized      bool
	Size             int
	WinningCondition int
	Score            int

	// Result is the boolean the current phase produced: move legality in
	// move, "spawn due" in moved, spawn success in next, and whether the
	// configuration was accepted in init.
	Result bool

	// Err is the configuration error when init rejected its input.
	Err error

	// SessionID identifies the board built by the last successful init.
	SessionID uuid.UUID

	// Spawned is the cell filled by the spawn phase, set only in next.
	Spawned *board.Coord
}

// MaxTile returns the highest tile on the snapshot's grid.
func (s Snapshot) MaxTile() int {
	return s.Grid.MaxTile()
}

// Destination returns where the tile that started at src ended up after
// the last slide.
func (s Snapshot) Destination(src board.Coord) board.Coord {
	r := board.MoveResult{Direction: s.Direction, Distances: s.Distances}
	return r.Destination(src)
}
