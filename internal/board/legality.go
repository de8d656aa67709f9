package board

// legalityScans is the order CanMove walks the grid in: rows forward and
// backward, then columns backward and forward.
var legalityScans = []sweep{
	{axis: axisRow},
	{axis: axisRow, reversed: true},
	{axis: axisCol, reversed: true},
	{axis: axisCol},
}

// CanMove reports whether any direction has a movable tile. A tile counts
// as movable when the cell before it in scan order is empty or holds the
// same value. The first cell of a line has no predecessor and is never
// movable on its own.
//
// When nothing can move the turn becomes game over, unless the game has
// already ended.
func (b *Board) CanMove() bool {
	for _, sw := range legalityScans {
		lines, length := sw.dims(b.grid)
		for i := 0; i < lines; i++ {
			prev := -1
			for k := 0; k < length; k++ {
				c := sw.cell(i, k, length)
				tile := b.grid[c.Row][c.Col]
				if tile != 0 && (prev == 0 || prev == tile) {
					return true
				}
				prev = tile
			}
		}
	}

	if !b.turn.IsTerminal() {
		b.turn = TurnGameOver
	}
	return false
}
