// Package board implements the grid algebra of the merge puzzle: board
// initialization, empty-cell sampling, tile spawning, the move legality
// check and the directional slide-and-merge sweep.
//
// A Board knows nothing about turn sequencing. It only guards each
// operation by the current Turn value, so out-of-phase calls are silent
// no-ops that return false.
package board

import (
	"math/rand"
	"time"
)

// Board is the mutable game state operated on by the grid algorithms.
type Board struct {
	rng *rand.Rand

	size             int
	winningCondition int
	spawn4Prob       float64

	grid   Grid
	result MoveResult

	direction   Direction
	turn        Turn
	initialized bool
	score       int

	lastSpawn Coord
	spawned   bool
}

// New creates an uninitialized board drawing randomness from rng.
// A nil rng is seeded from the current time.
func New(rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Board{
		rng:       rng,
		turn:      TurnNone,
		direction: DirNone,
		lastSpawn: NoCoord,
	}
}

// Initialize validates cfg and, on success, allocates fresh size x size
// grids, spawns the two starting tiles and hands the turn to the player.
// On failure the board is left exactly as it was.
func (b *Board) Initialize(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	b.size = cfg.Size
	b.winningCondition = cfg.WinningCondition
	b.spawn4Prob = cfg.Spawn4Prob
	b.grid = NewGrid(cfg.Size, cfg.Size)
	b.result = newMoveResult(cfg.Size, cfg.Size)
	b.direction = DirNone
	b.score = 0

	// Starting tiles go through the regular spawn path.
	b.turn = TurnAI
	b.SpawnTile()
	b.turn = TurnAI
	b.SpawnTile()

	b.turn = TurnPlayer
	b.initialized = true
	return nil
}

// FromGrid builds an initialized board from literal rows, with the turn
// set to the player. Rows must all have the same length; rectangular
// grids are allowed. The rows are copied.
func FromGrid(g Grid, winningCondition int, rng *rand.Rand) *Board {
	b := New(rng)
	b.grid = g.Clone()
	b.size = g.Rows()
	b.winningCondition = winningCondition
	b.spawn4Prob = DefaultSpawn4Prob
	b.result = newMoveResult(g.Rows(), g.Cols())
	b.turn = TurnPlayer
	b.initialized = true
	return b
}

// Size returns the board dimension.
func (b *Board) Size() int { return b.size }

// WinningCondition returns the tile value that ends the game in victory.
func (b *Board) WinningCondition() int { return b.winningCondition }

// Spawn4Prob returns the probability that a spawned tile is a 4.
func (b *Board) Spawn4Prob() float64 { return b.spawn4Prob }

// Grid returns a copy of the current tile grid.
func (b *Board) Grid() Grid { return b.grid.Clone() }

// Cell returns the tile value at c (0 when empty or out of range).
func (b *Board) Cell(c Coord) int { return b.grid.At(c) }

// Result returns a copy of the most recent move's merge and distance tracking.
func (b *Board) Result() MoveResult { return b.result.Clone() }

// Direction returns the last direction applied.
func (b *Board) Direction() Direction { return b.direction }

// Turn returns whose turn it is.
func (b *Board) Turn() Turn { return b.turn }

// Initialized reports whether a valid configuration has been applied.
func (b *Board) Initialized() bool { return b.initialized }

// Score returns the running total of merged values.
func (b *Board) Score() int { return b.score }

// LastSpawn returns the cell of the most recently spawned tile.
// The second value is false when nothing has spawned since the last slide.
func (b *Board) LastSpawn() (Coord, bool) {
	return b.lastSpawn, b.spawned
}
