package board

// axis selects whether a sweep walks rows or columns.
type axis int

const (
	axisRow axis = iota
	axisCol
)

// sweep is one of the four traversals. Lines run along the axis and
// cells inside a line are visited from the target wall outward; reversed
// puts the wall at the high-index end.
type sweep struct {
	axis     axis
	reversed bool
}

func sweepFor(dir Direction) (sweep, bool) {
	switch dir {
	case DirLeft:
		return sweep{axis: axisRow}, true
	case DirRight:
		return sweep{axis: axisRow, reversed: true}, true
	case DirUp:
		return sweep{axis: axisCol}, true
	case DirDown:
		return sweep{axis: axisCol, reversed: true}, true
	}
	return sweep{}, false
}

// dims returns the number of lines and the length of each line.
func (s sweep) dims(g Grid) (lines, length int) {
	if s.axis == axisRow {
		return g.Rows(), g.Cols()
	}
	return g.Cols(), g.Rows()
}

// cell maps position k of line i, counted from the wall, to a grid coordinate.
func (s sweep) cell(i, k, length int) Coord {
	if s.reversed {
		k = length - 1 - k
	}
	if s.axis == axisRow {
		return Coord{Row: i, Col: k}
	}
	return Coord{Row: k, Col: i}
}

// wall is the compaction cursor of a single line.
type wall struct {
	pos      int
	val      int
	canMerge bool
}

// SlideAndMerge pushes every tile toward dir, merging each equal pair at
// most once, and records merges and travel distances in the move result.
// It only acts on the player's turn. Afterwards the turn is victory if a
// merge reached the winning condition, the spawn phase if anything moved,
// or still the player's otherwise. Returns true when a spawn should follow.
func (b *Board) SlideAndMerge(dir Direction) bool {
	if b.turn != TurnPlayer {
		return false
	}

	b.result.Reset()
	b.result.Direction = dir
	b.direction = dir
	b.spawned = false
	b.lastSpawn = NoCoord

	won := false
	if sw, ok := sweepFor(dir); ok {
		lines, length := sw.dims(b.grid)
		for i := 0; i < lines; i++ {
			if b.collapse(sw, i, length) {
				won = true
			}
		}
	}
	b.score += b.result.Gained

	switch {
	case won:
		b.turn = TurnVictory
	case b.result.Moved > 0:
		b.turn = TurnAI
	default:
		b.turn = TurnPlayer
	}
	return b.turn == TurnAI
}

// collapse compacts one line toward its wall. Returns true if a merge
// reached the winning condition.
func (b *Board) collapse(sw sweep, line, length int) bool {
	won := false
	w := wall{pos: -1, val: -1}

	for k := 0; k < length; k++ {
		src := sw.cell(line, k, length)
		v := b.grid[src.Row][src.Col]
		if v == 0 {
			continue
		}
		b.grid[src.Row][src.Col] = 0

		merge := w.canMerge && v == w.val
		if !merge {
			w.canMerge = true
			w.pos++
		}
		dst := sw.cell(line, w.pos, length)
		if merge {
			v *= 2
			if v >= b.winningCondition {
				won = true
			}
			// A merged cell cannot take part in another merge this move.
			w.canMerge = false
			b.result.Merges[dst.Row][dst.Col] = true
			b.result.Merged++
			b.result.Gained += v
		}
		b.grid[dst.Row][dst.Col] = v
		w.val = v

		if dist := k - w.pos; dist != 0 {
			b.result.Distances[src.Row][src.Col] = dist
			b.result.Moved++
		}
	}
	return won
}
