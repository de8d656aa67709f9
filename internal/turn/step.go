package turn

import (
	"fmt"

	"github.com/Watersilver/2powN/internal/board"
)

// Step is the phase the turn machine is suspended in.
type Step int

const (
	// StepNone is the pre-start sentinel. It is never re-entered.
	StepNone Step = iota
	// StepInit waits for a configuration.
	StepInit
	// StepMove waits for a direction.
	StepMove
	// StepMoved has just applied a slide and waits for the driver to continue.
	StepMoved
	// StepNext has just run the spawn phase and waits for the driver to continue.
	StepNext
)

// String returns the string representation of a Step.
func (s Step) String() string {
	switch s {
	case StepNone:
		return "none"
	case StepInit:
		return "init"
	case StepMove:
		return "move"
	case StepMoved:
		return "moved"
	case StepNext:
		return "next"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// Input is a value the driver resumes the machine with. It is one of
// Configure, Move, Restart or Tick.
type Input interface {
	inputKind() string
}

// Configure carries the session configuration for the init phase.
type Configure struct {
	Config board.Config
}

// Move carries the direction chosen for the move phase.
type Move struct {
	Direction board.Direction
}

// Restart aborts the current cycle and returns the machine to init.
type Restart struct{}

// Tick resumes a phase that expects no value.
type Tick struct{}

func (Configure) inputKind() string { return "configure" }
func (Move) inputKind() string      { return "move" }
func (Restart) inputKind() string   { return "restart" }
func (Tick) inputKind() string      { return "tick" }

// InputKind returns a short name for the input, used in logs and history.
func InputKind(in Input) string {
	if in == nil {
		return "tick"
	}
	return in.inputKind()
}
