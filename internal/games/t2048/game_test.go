package t2048

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Watersilver/2powN/internal/board"
	"github.com/Watersilver/2powN/internal/config"
	"github.com/Watersilver/2powN/internal/core"
	"github.com/Watersilver/2powN/internal/registry"
	"github.com/Watersilver/2powN/internal/turn"
)

func newTestGame(t *testing.T, cfg board.Config, slide, pop int) *Game {
	t.Helper()
	g := New(Preset{ID: "test", Name: "Test", Config: cfg}, Options{
		Timing: config.TimingConfig{TickRate: 60, SlideTicks: slide, PopTicks: pop},
	})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// moveAny presses directions until one of them slides the board.
func moveAny(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 40; i++ {
		g.Step(frame(core.DirectionActions[i%4]))
		if g.machine.Step() == turn.StepMoved && g.snap.Moved > 0 {
			return
		}
	}
	t.Fatal("no direction moved the board")
}

func TestFirstStepConfiguresBoard(t *testing.T) {
	g := newTestGame(t, board.DefaultConfig(), 0, 0)
	assert.Equal(t, StatusConfiguring, g.Snapshot().Status)

	g.Step(frame())

	snap := g.Snapshot()
	assert.Equal(t, turn.StepMove, snap.Step)
	assert.Equal(t, StatusPlaying, snap.Status)
	assert.Equal(t, 4, snap.Size)
	assert.Equal(t, 2048, snap.Target)
	assert.Equal(t, 2, snap.Board.CountTiles())
	assert.Equal(t, "test", snap.Preset)
}

func TestOneResumptionPerStep(t *testing.T) {
	g := newTestGame(t, board.DefaultConfig(), 0, 0)
	g.Step(frame())

	for i := 0; i < 50; i++ {
		before := len(g.machine.History())
		g.Step(frame(core.DirectionActions[i%4]))
		after := len(g.machine.History())
		assert.LessOrEqual(t, after-before, 1, "step %d", i)
	}
}

func TestMoveCycleWithoutAnimation(t *testing.T) {
	g := newTestGame(t, board.DefaultConfig(), 0, 0)
	g.Step(frame())

	moveAny(t, g)
	assert.Equal(t, turn.StepMoved, g.Snapshot().Step)

	g.Step(frame())
	assert.Equal(t, turn.StepNext, g.Snapshot().Step)
	assert.NotNil(t, g.snap.Spawned)

	g.Step(frame())
	assert.Equal(t, turn.StepMove, g.Snapshot().Step)
}

func TestAnimationHoldsMachine(t *testing.T) {
	g := newTestGame(t, board.DefaultConfig(), 3, 2)
	g.Step(frame())

	moveAny(t, g)
	require.True(t, g.anim.active())
	assert.Equal(t, StatusAnimating, g.Snapshot().Status)
	assert.NotEmpty(t, g.anim.motions)

	g.Step(frame())
	g.Step(frame())
	assert.Equal(t, turn.StepMoved, g.machine.Step(), "slide still running")

	g.Step(frame())
	assert.Equal(t, turn.StepNext, g.machine.Step())
	assert.Equal(t, phasePop, g.anim.phase)

	g.Step(frame())
	assert.Equal(t, turn.StepNext, g.machine.Step(), "pop still running")

	g.Step(frame())
	assert.Equal(t, turn.StepMove, g.machine.Step())
}

func TestDirectionQueuedDuringAnimation(t *testing.T) {
	g := newTestGame(t, board.DefaultConfig(), 2, 0)
	g.Step(frame())
	moveAny(t, g)

	g.Step(frame(core.ActionDown))
	assert.Equal(t, board.DirDown, g.queued)

	// Finish the slide and spawn, then check legality.
	for i := 0; i < 2; i++ {
		g.Step(frame())
	}
	assert.Equal(t, turn.StepMove, g.machine.Step())
	g.Step(frame())
	assert.Equal(t, board.DirNone, g.queued)
	assert.Equal(t, turn.StepMoved, g.machine.Step())
	assert.Equal(t, board.DirDown, g.snap.Direction)
}

func TestSlideMotionsFollowDistances(t *testing.T) {
	var a animation
	before := board.Grid{
		{2, 2, 0, 4},
		{0, 0, 0, 0},
	}
	snap := turn.Snapshot{
		Direction: board.DirLeft,
		Grid:      board.Grid{{4, 4, 0, 0}, {0, 0, 0, 0}},
		Merges:    [][]bool{{true, false, false, false}, {false, false, false, false}},
		Distances: [][]int{{0, 1, 0, 2}, {0, 0, 0, 0}},
	}

	a.startSlide(before, snap, 4)
	require.Len(t, a.motions, 3)
	assert.Equal(t, tileMotion{Value: 2, From: board.Coord{Row: 0, Col: 0}, To: board.Coord{Row: 0, Col: 0}, Merged: true}, a.motions[0])
	assert.Equal(t, tileMotion{Value: 2, From: board.Coord{Row: 0, Col: 1}, To: board.Coord{Row: 0, Col: 0}, Merged: true}, a.motions[1])
	assert.Equal(t, tileMotion{Value: 4, From: board.Coord{Row: 0, Col: 3}, To: board.Coord{Row: 0, Col: 1}}, a.motions[2])
}

func TestPauseBlocksResumption(t *testing.T) {
	g := newTestGame(t, board.DefaultConfig(), 0, 0)
	g.Step(frame())

	g.Step(frame(core.ActionPause))
	assert.True(t, g.State().Paused)
	assert.Equal(t, StatusPaused, g.Snapshot().Status)

	history := len(g.machine.History())
	for _, a := range core.DirectionActions {
		g.Step(frame(a))
	}
	assert.Equal(t, history, len(g.machine.History()))

	g.Step(frame(core.ActionPause))
	assert.False(t, g.State().Paused)
}

func TestPauseIgnoredBeforeBoardExists(t *testing.T) {
	g := newTestGame(t, board.DefaultConfig(), 0, 0)
	g.Step(frame(core.ActionPause))
	assert.False(t, g.State().Paused)
}

func TestRestartBuildsNewSession(t *testing.T) {
	g := newTestGame(t, board.DefaultConfig(), 0, 0)
	g.Step(frame())
	moveAny(t, g)
	old := g.Snapshot().SessionID

	g.Step(frame(core.ActionRestart))
	assert.Equal(t, turn.StepInit, g.machine.Step())

	g.Step(frame())
	snap := g.Snapshot()
	assert.Equal(t, turn.StepMove, snap.Step)
	assert.NotEqual(t, old, snap.SessionID)
	assert.Equal(t, 2, snap.Board.CountTiles())
	assert.Zero(t, snap.Score)
}

func TestInvalidConfigurationReported(t *testing.T) {
	g := newTestGame(t, board.Config{Size: 1, WinningCondition: 2048}, 0, 0)
	g.Step(frame())

	assert.ErrorIs(t, g.Err(), board.ErrInvalidSize)
	assert.Equal(t, StatusConfiguring, g.Snapshot().Status)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "INVALID CONFIGURATION")

	// The rejected configuration is not retried every tick.
	history := len(g.machine.History())
	g.Step(frame())
	assert.Equal(t, history, len(g.machine.History()))

	g.Configure(board.Config{Size: 3, WinningCondition: 64})
	g.Step(frame())
	assert.NoError(t, g.Err())
	assert.Equal(t, 3, g.Snapshot().Size)
}

func TestConfigureRestartsRunningGame(t *testing.T) {
	g := newTestGame(t, board.DefaultConfig(), 0, 0)
	g.Step(frame())

	g.Configure(board.Config{Size: 5, WinningCondition: 1024})
	assert.Equal(t, turn.StepInit, g.machine.Step())

	g.Step(frame())
	assert.Equal(t, 5, g.Snapshot().Size)
	assert.Equal(t, 1024, g.Snapshot().Target)
}

func TestGameOverOnTinyBoard(t *testing.T) {
	g := newTestGame(t, board.Config{Size: 2, WinningCondition: 2048}, 0, 0)
	g.Step(frame())

	for i := 0; i < 5000 && !g.State().GameOver; i++ {
		g.Step(frame(core.DirectionActions[i%4]))
	}
	require.True(t, g.State().GameOver)
	assert.Equal(t, StatusGameOver, g.Snapshot().Status)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")

	g.Step(frame(core.ActionRestart))
	g.Step(frame())
	assert.False(t, g.State().GameOver)
}

func TestVictory(t *testing.T) {
	// Only 2s spawn, so the first merge reaches the target.
	g := newTestGame(t, board.Config{Size: 3, WinningCondition: 4, Spawn4Prob: 0}, 0, 0)
	g.Step(frame())

	for i := 0; i < 5000 && !g.State().Won; i++ {
		g.Step(frame(core.DirectionActions[i%4]))
	}
	require.True(t, g.State().Won)
	assert.True(t, g.State().Finished())
	assert.Equal(t, StatusWin, g.Snapshot().Status)

	tiles := g.Snapshot().Board.CountTiles()
	for i := 0; i < 40; i++ {
		g.Step(frame(core.DirectionActions[i%4]))
	}
	assert.Equal(t, tiles, g.Snapshot().Board.CountTiles(), "no spawns after victory")

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "YOU WIN")
}

func TestNoSlideAfterVictory(t *testing.T) {
	g := newTestGame(t, board.Config{Size: 3, WinningCondition: 4, Spawn4Prob: 0}, 5, 3)
	g.Step(frame())

	for i := 0; i < 5000 && !g.State().Won; i++ {
		g.Step(frame(core.DirectionActions[i%4]))
	}
	require.True(t, g.State().Won)

	for i := 0; i < 50 && (g.machine.Step() != turn.StepMove || g.anim.active()); i++ {
		g.Step(frame())
	}
	require.Equal(t, turn.StepMove, g.machine.Step())
	require.False(t, g.anim.active())
	before := g.Snapshot().Board

	g.Step(frame(core.ActionLeft))
	assert.Equal(t, turn.StepMoved, g.machine.Step())
	assert.False(t, g.anim.active(), "a finished board must not animate")
	assert.Equal(t, StatusWin, g.Snapshot().Status)
	assert.True(t, before.Equal(g.Snapshot().Board))
}

func TestDeterminism(t *testing.T) {
	play := func() Snapshot {
		g := newTestGame(t, board.DefaultConfig(), 2, 1)
		g.Step(frame())
		for i := 0; i < 300; i++ {
			g.Step(frame(core.DirectionActions[(i*7)%4]))
		}
		return g.Snapshot()
	}

	a, b := play(), play()
	assert.True(t, a.Board.Equal(b.Board))
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Step, b.Step)
}

func TestTooSmallWindow(t *testing.T) {
	g := New(Preset{ID: "test", Config: board.DefaultConfig()}, DefaultOptions())
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, Seed: 1})

	g.Step(frame())
	assert.Equal(t, StatusPausedSmall, g.Snapshot().Status)
	assert.Equal(t, turn.StepInit, g.machine.Step())

	screen := core.NewScreen(10, 5)
	g.Render(screen)
	assert.Contains(t, screen.String(), "too")

	g.Resize(80, 24)
	g.Step(frame())
	assert.Equal(t, turn.StepMove, g.machine.Step())
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, board.DefaultConfig(), 0, 0)
	g.Step(frame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Target: 2048")
	assert.Contains(t, out, "Your move")

	tiles := 0
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			c := screen.GetCell(x, y)
			if c.Bg >= core.ColorTile2 && c.Rune != ' ' {
				tiles++
			}
		}
	}
	assert.Equal(t, 2, tiles, "one label per tile")
}

func TestRenderCompactLayout(t *testing.T) {
	g := newTestGame(t, board.Config{Size: 6, WinningCondition: 8192}, 0, 0)
	g.Step(frame())

	l := g.layout()
	assert.Equal(t, compactTile, l.tileH)
	assert.LessOrEqual(t, hudHeight+1+l.boardH(), 24)
	assert.False(t, g.tooSmall)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "Target: 8192"))
}

func TestRegisterPresets(t *testing.T) {
	cfg, err := config.Parse(config.DefaultYAML())
	require.NoError(t, err)

	reg := registry.New()
	Register(reg, Presets(cfg.Presets), DefaultOptions())

	require.True(t, reg.Exists("2048"))
	g, err := reg.Create("2048_mini")
	require.NoError(t, err)
	assert.Equal(t, "2048_mini", g.ID())
	assert.Equal(t, "Mini", g.Title())

	game, ok := g.(*Game)
	require.True(t, ok)
	assert.Equal(t, 3, game.Config().Size)
}

func TestNewCustom(t *testing.T) {
	g := NewCustom(board.Config{Size: 5, WinningCondition: 512}, DefaultOptions())
	assert.Equal(t, CustomID, g.ID())
	assert.Equal(t, "5x5 to 512", g.Title())
}
