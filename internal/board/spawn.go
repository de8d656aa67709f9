package board

// SampleEmptyCell picks an empty cell uniformly at random.
// Returns (NoCoord, false) when the grid is full.
func (b *Board) SampleEmptyCell() (Coord, bool) {
	choices := b.grid.EmptyCells()
	if len(choices) == 0 {
		return NoCoord, false
	}
	return choices[b.rng.Intn(len(choices))], true
}

// SpawnTile places a 2 (or, with probability Spawn4Prob, a 4) on a random
// empty cell and passes the turn back to the player. It only acts during
// the spawn phase (TurnAI). A full grid ends the game instead.
func (b *Board) SpawnTile() bool {
	if b.turn != TurnAI {
		return false
	}

	c, ok := b.SampleEmptyCell()
	if !ok {
		b.turn = TurnGameOver
		return false
	}

	value := 2
	if b.rng.Float64() < b.spawn4Prob {
		value = 4
	}
	b.grid[c.Row][c.Col] = value
	b.lastSpawn = c
	b.spawned = true

	b.turn = TurnPlayer
	return true
}
