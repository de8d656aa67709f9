// Package turn drives the merge puzzle through its phase cycle.
//
// The Machine is an explicit resumable state machine: init, then
// move -> moved -> next repeating until a Restart sends it back to init.
// Each call to Resume advances exactly one phase and returns a Snapshot
// for the UI to render. The machine is single-threaded by contract: one
// driver owns it and resumes it once per tick.
package turn

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Watersilver/2powN/internal/board"
)

var (
	// ErrAlreadyStarted is returned by Start once the machine has left StepNone.
	ErrAlreadyStarted = errors.New("turn: already started")

	// ErrNotConfiguration is reported when init is resumed with an input
	// that is not a configuration.
	ErrNotConfiguration = errors.New("turn: input is not a configuration")
)

const defaultHistoryLimit = 64

// Transition records one resumption in the machine's history.
type Transition struct {
	From  Step
	To    Step
	Input string
	Turn  board.Turn
}

// Machine is the resumable turn state machine.
type Machine struct {
	rng          *rand.Rand
	logger       *log.Logger
	defaults     board.Config
	historyLimit int

	board     *board.Board
	sessionID uuid.UUID

	step     Step
	result   bool
	spawnDue bool
	err      error

	history []Transition
}

// Option configures a Machine.
type Option func(*Machine)

// WithRand sets the random source used for every board the machine builds.
func WithRand(rng *rand.Rand) Option {
	return func(m *Machine) {
		m.rng = rng
	}
}

// WithSeed seeds the machine's random source. Zero means seed from the clock.
func WithSeed(seed int64) Option {
	return func(m *Machine) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used for transition tracing.
func WithLogger(logger *log.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithDefaultConfig sets the configuration used when init is resumed with a Tick.
func WithDefaultConfig(cfg board.Config) Option {
	return func(m *Machine) {
		m.defaults = cfg
	}
}

// WithHistoryLimit bounds the transition history. Values below 1 disable it.
func WithHistoryLimit(n int) Option {
	return func(m *Machine) {
		m.historyLimit = n
	}
}

// New creates a machine suspended in StepNone.
func New(opts ...Option) *Machine {
	m := &Machine{
		logger:       log.New(io.Discard),
		defaults:     board.DefaultConfig(),
		historyLimit: defaultHistoryLimit,
		step:         StepNone,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	m.board = board.New(m.rng)
	return m
}

// Start performs the first resumption, entering init.
func (m *Machine) Start() (Snapshot, error) {
	if m.step != StepNone {
		return m.Snapshot(), ErrAlreadyStarted
	}
	return m.Resume(Tick{}), nil
}

// Restart injects the restart signal at the current suspend point.
func (m *Machine) Restart() Snapshot {
	return m.Resume(Restart{})
}

// Step returns the phase the machine is suspended in.
func (m *Machine) Step() Step {
	return m.step
}

// Resume advances the machine by one phase with the given input and
// returns the resulting snapshot. A nil input is treated as Tick.
//
// In move, inputs other than Move and Restart advance to moved with a
// slide in no direction, which moves nothing and never makes a spawn due.
func (m *Machine) Resume(in Input) Snapshot {
	if in == nil {
		in = Tick{}
	}
	from := m.step

	switch m.step {
	case StepNone:
		m.enterInit()

	case StepInit:
		m.configure(in)

	case StepMove:
		if _, ok := in.(Restart); ok {
			m.enterInit()
			break
		}
		dir := board.DirNone
		if v, ok := in.(Move); ok {
			dir = v.Direction
		}
		m.spawnDue = m.board.SlideAndMerge(dir)
		m.result = m.spawnDue
		m.step = StepMoved

	case StepMoved:
		if _, ok := in.(Restart); ok {
			m.enterInit()
			break
		}
		spawned := false
		if m.spawnDue {
			spawned = m.board.SpawnTile()
		}
		m.spawnDue = false
		m.result = spawned
		m.step = StepNext

	case StepNext:
		if _, ok := in.(Restart); ok {
			m.enterInit()
			break
		}
		m.enterMove()
	}

	m.record(from, in)
	return m.Snapshot()
}

// enterInit suspends the machine in init. The current board stays visible
// until a new configuration replaces it.
func (m *Machine) enterInit() {
	m.step = StepInit
	m.result = true
	m.spawnDue = false
	m.err = nil
}

// enterMove suspends the machine in move, reporting move legality.
func (m *Machine) enterMove() {
	m.step = StepMove
	m.spawnDue = false
	m.result = m.board.CanMove()
}

// configure applies an init-phase input. A valid configuration builds a
// brand-new board and advances to move; anything else stays in init.
func (m *Machine) configure(in Input) {
	cfg := m.defaults
	switch v := in.(type) {
	case Configure:
		cfg = v.Config
	case Tick:
	default:
		m.err = fmt.Errorf("%w: got %s", ErrNotConfiguration, in.inputKind())
		m.result = false
		m.logger.Debug("init rejected input", "input", in.inputKind())
		return
	}

	next := board.New(m.rng)
	if err := next.Initialize(cfg); err != nil {
		m.err = err
		m.result = false
		m.logger.Debug("init rejected configuration", "size", cfg.Size, "winning_condition", cfg.WinningCondition, "error", err)
		return
	}

	m.board = next
	m.sessionID = uuid.New()
	m.err = nil
	m.logger.Debug("board initialized",
		"session", m.sessionID,
		"size", cfg.Size,
		"winning_condition", cfg.WinningCondition,
	)
	m.logger.Debug("initial grid\n" + next.Grid().String())
	m.enterMove()
}

func (m *Machine) record(from Step, in Input) {
	if m.historyLimit < 1 {
		return
	}
	t := Transition{
		From:  from,
		To:    m.step,
		Input: InputKind(in),
		Turn:  m.board.Turn(),
	}
	m.history = append(m.history, t)
	if len(m.history) > m.historyLimit {
		m.history = m.history[len(m.history)-m.historyLimit:]
	}

	m.logger.Debug("step",
		"from", t.From,
		"to", t.To,
		"input", t.Input,
		"turn", t.Turn,
		"result", m.result,
	)
}

// History returns a copy of the most recent transitions, oldest first.
func (m *Machine) History() []Transition {
	out := make([]Transition, len(m.history))
	copy(out, m.history)
	return out
}

// Snapshot returns the observable state without resuming.
func (m *Machine) Snapshot() Snapshot {
	b := m.board
	res := b.Result()

	snap := Snapshot{
		Step:             m.step,
		Turn:             b.Turn(),
		Direction:        b.Direction(),
		Grid:             b.Grid(),
		Merges:           res.Merges,
		Merged:           res.Merged,
		Distances:        res.Distances,
		Moved:            res.Moved,
		Initialized:      b.Initialized(),
		Size:             b.Size(),
		WinningCondition: b.WinningCondition(),
		Score:            b.Score(),
		Result:           m.result,
		Err:              m.err,
		SessionID:        m.sessionID,
	}

	if m.step == StepNext && m.result {
		if c, ok := b.LastSpawn(); ok {
			snap.Spawned = &c
		}
	}
	return snap
}
