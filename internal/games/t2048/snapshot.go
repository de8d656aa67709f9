package t2048

import (
	"github.com/google/uuid"

	"github.com/Watersilver/2powN/internal/board"
	"github.com/Watersilver/2powN/internal/turn"
)

// Status is the coarse state shown to the player.
type Status string

const (
	StatusConfiguring Status = "configuring"
	StatusPlaying     Status = "playing"
	StatusAnimating   Status = "animating"
	StatusPaused      Status = "paused"
	StatusGameOver    Status = "game_over"
	StatusWin         Status = "win"
	StatusPausedSmall Status = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Preset    string
	Target    int
	Size      int
	Score     int
	Board     board.Grid
	MaxTile   int
	Step      turn.Step
	Status    Status
	SessionID uuid.UUID
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Preset:    g.preset.ID,
		Target:    g.snap.WinningCondition,
		Size:      g.snap.Size,
		Score:     g.snap.Score,
		Board:     g.snap.Grid.Clone(),
		MaxTile:   g.snap.MaxTile(),
		Step:      g.snap.Step,
		Status:    g.status(),
		SessionID: g.snap.SessionID,
	}
}

func (g *Game) status() Status {
	switch {
	case g.tooSmall:
		return StatusPausedSmall
	case g.paused:
		return StatusPaused
	case g.snap.Step == turn.StepNone || g.snap.Step == turn.StepInit:
		return StatusConfiguring
	case g.snap.Turn == board.TurnVictory:
		return StatusWin
	case g.snap.Turn == board.TurnGameOver:
		return StatusGameOver
	case g.anim.active():
		return StatusAnimating
	default:
		return StatusPlaying
	}
}
