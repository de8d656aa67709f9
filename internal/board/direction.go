package board

import (
	"fmt"
	"strings"
)

// Direction is the direction a slide pushes tiles toward.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four playable directions.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four playable directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection converts a name ("up", "down", "left", "right") to a Direction.
// Matching is case-insensitive. Returns false for anything else.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	}
	return DirNone, false
}

// Turn says whose logical turn it is. TurnAI is the engine's own
// spawn phase, not an opponent.
type Turn int

const (
	TurnNone Turn = iota
	TurnPlayer
	TurnAI
	TurnGameOver
	TurnVictory
)

// String returns a human-readable name for the turn.
func (t Turn) String() string {
	switch t {
	case TurnNone:
		return "none"
	case TurnPlayer:
		return "player"
	case TurnAI:
		return "ai"
	case TurnGameOver:
		return "game_over"
	case TurnVictory:
		return "victory"
	default:
		return fmt.Sprintf("Turn(%d)", int(t))
	}
}

// IsTerminal returns true for the end states (game over, victory).
func (t Turn) IsTerminal() bool {
	return t == TurnGameOver || t == TurnVictory
}
