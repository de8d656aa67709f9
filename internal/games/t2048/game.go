package t2048

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/Watersilver/2powN/internal/board"
	"github.com/Watersilver/2powN/internal/core"
	"github.com/Watersilver/2powN/internal/turn"
)

// Game drives a turn.Machine from platform ticks.
type Game struct {
	preset Preset
	opts   Options
	logger *log.Logger

	machine *turn.Machine
	snap    turn.Snapshot
	tick    uint64

	// configDirty is set when init should be resumed with the preset's
	// configuration on the next tick.
	configDirty bool

	// queued holds a direction pressed while an animation was running.
	queued board.Direction

	anim animation

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a game for a preset.
func New(p Preset, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		preset: p,
		opts:   opts,
		logger: logger,
	}
}

// ID returns the preset identifier.
func (g *Game) ID() string {
	return g.preset.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return title(g.preset)
}

// Config returns the board configuration the game starts with.
func (g *Game) Config() board.Config {
	return g.preset.Config
}

// Reset builds a fresh machine and starts it. The board itself is
// configured on the next Step.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.machine = turn.New(
		turn.WithSeed(cfg.Seed),
		turn.WithLogger(g.logger.With("game", g.preset.ID)),
		turn.WithDefaultConfig(g.preset.Config),
	)
	g.snap, _ = g.machine.Start()
	g.tick = 0
	g.configDirty = true
	g.queued = board.DirNone
	g.anim = animation{}
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()
}

// Resize updates the screen dimensions without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	l := g.layout()
	g.tooSmall = g.screenW < l.minWidth() || g.screenH < l.minHeight()
}

// Step advances the game by one tick: at most one resumption of the
// machine happens per call.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.machine == nil {
		g.Reset(core.DefaultConfig())
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.snap.Initialized {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.canRestart() {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if dir := directionFor(in.Direction()); dir != board.DirNone {
		g.queued = dir
	}

	switch g.machine.Step() {
	case turn.StepNone:
		g.snap, _ = g.machine.Start()

	case turn.StepInit:
		if g.configDirty {
			g.configDirty = false
			g.snap = g.machine.Resume(turn.Configure{Config: g.preset.Config})
			if g.snap.Err != nil {
				g.logger.Error("configuration rejected", "err", g.snap.Err)
			}
			g.checkScreenSize()
		}

	case turn.StepMove:
		if g.anim.update() {
			break
		}
		if g.queued == board.DirNone {
			break
		}
		before := g.snap.Grid
		// A finished board ignores the slide and keeps the last move's result.
		finished := g.snap.Turn.IsTerminal()
		g.snap = g.machine.Resume(turn.Move{Direction: g.queued})
		g.queued = board.DirNone
		if !finished && g.snap.Moved > 0 {
			g.anim.startSlide(before, g.snap, g.opts.Timing.SlideTicks)
		}

	case turn.StepMoved:
		if g.anim.update() {
			break
		}
		g.snap = g.machine.Resume(turn.Tick{})
		if g.snap.Spawned != nil {
			g.anim.startPop(*g.snap.Spawned, g.opts.Timing.PopTicks)
		}

	case turn.StepNext:
		if g.anim.update() {
			break
		}
		g.snap = g.machine.Resume(turn.Tick{})
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) canRestart() bool {
	switch g.machine.Step() {
	case turn.StepMove, turn.StepMoved, turn.StepNext:
		return true
	}
	return false
}

// restart discards the board and queues the preset's configuration so
// the next tick builds a new one.
func (g *Game) restart() {
	g.snap = g.machine.Restart()
	g.configDirty = true
	g.queued = board.DirNone
	g.anim = animation{}
}

// Configure replaces the board configuration and restarts the session
// with it on the next tick.
func (g *Game) Configure(cfg board.Config) {
	g.preset.Config = cfg
	if g.machine != nil && g.canRestart() {
		g.restart()
		return
	}
	g.configDirty = true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		MaxTile:  g.snap.MaxTile(),
		GameOver: g.snap.Turn == board.TurnGameOver,
		Won:      g.snap.Turn == board.TurnVictory,
		Paused:   g.paused || g.tooSmall,
	}
}

// Err returns the configuration error that keeps the game in init, if any.
func (g *Game) Err() error {
	if g.machine == nil || g.machine.Step() != turn.StepInit {
		return nil
	}
	return g.snap.Err
}

func directionFor(a core.Action) board.Direction {
	switch a {
	case core.ActionUp:
		return board.DirUp
	case core.ActionDown:
		return board.DirDown
	case core.ActionLeft:
		return board.DirLeft
	case core.ActionRight:
		return board.DirRight
	default:
		return board.DirNone
	}
}
