package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Watersilver/2powN/internal/board"
	"github.com/Watersilver/2powN/internal/config"
	"github.com/Watersilver/2powN/internal/turn"
)

func TestCustomConfig(t *testing.T) {
	defaults := board.Config{Size: 4, WinningCondition: 2048, Spawn4Prob: 0.2}

	tests := []struct {
		name    string
		size    int
		power   int
		target  int
		want    board.Config
		wantErr error
	}{
		{"defaults", 0, 0, 0, defaults, nil},
		{"size only", 6, 0, 0, board.Config{Size: 6, WinningCondition: 2048, Spawn4Prob: 0.2}, nil},
		{"power", 3, 8, 0, board.Config{Size: 3, WinningCondition: 256, Spawn4Prob: 0.2}, nil},
		{"target", 0, 0, 100, board.Config{Size: 4, WinningCondition: 100, Spawn4Prob: 0.2}, nil},
		{"size too small", 1, 0, 0, board.Config{}, board.ErrInvalidSize},
		{"negative power", 0, -2, 0, board.Config{}, board.ErrInvalidWinningCondition},
		{"odd target", 0, 0, 7, board.Config{}, board.ErrInvalidWinningCondition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := customConfig(defaults, tt.size, tt.power, tt.target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestSimulateEndsInTerminalTurn(t *testing.T) {
	cfg := board.Config{Size: 2, WinningCondition: 2048}
	res, err := simulate(cfg, 11, 10000, nil, nil)
	require.NoError(t, err)

	s := res.Snapshot
	assert.Equal(t, board.TurnGameOver, s.Turn)
	assert.Equal(t, turn.StepMove, s.Step)
	assert.LessOrEqual(t, res.Moves, res.Tries)
	assert.Equal(t, 4, s.Grid.CountTiles())
}

func TestSimulateIsReproducible(t *testing.T) {
	cfg := board.DefaultConfig()
	var moves []board.Direction
	first, err := simulate(cfg, 42, 200, nil, func(s turn.Snapshot) {
		moves = append(moves, s.Direction)
	})
	require.NoError(t, err)
	assert.Len(t, moves, first.Moves)

	second, err := simulate(cfg, 42, 200, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, first.Snapshot.Grid, second.Snapshot.Grid)
	assert.Equal(t, first.Snapshot.Score, second.Snapshot.Score)
	assert.Equal(t, first.Moves, second.Moves)
}

func TestSimulateRejectsInvalidConfig(t *testing.T) {
	_, err := simulate(board.Config{Size: 1, WinningCondition: 2048}, 1, 10, nil, nil)
	assert.ErrorIs(t, err, board.ErrInvalidSize)
}

func TestSimulateStopsAtMoveLimit(t *testing.T) {
	res, err := simulate(board.DefaultConfig(), 5, 3, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Tries)
	assert.False(t, res.Snapshot.Turn.IsTerminal())
}

// openFile reports whether this process holds a descriptor for path.
func openFile(t *testing.T, path string) bool {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skip("no /proc/self/fd on this platform")
	}
	want, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	for _, e := range entries {
		target, err := os.Readlink(filepath.Join("/proc/self/fd", e.Name()))
		if err == nil && target == want {
			return true
		}
	}
	return false
}

func TestCommandErrorClosesLogFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	logPath := filepath.Join(dir, "run.log")

	rootCmd.SetArgs([]string{"simulate", "--log-file=" + logPath, "--preset", "missing"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagLogFile = ""
		flagPreset = ""
	})

	err := rootCmd.Execute()
	require.ErrorIs(t, err, config.ErrUnknownPreset)
	assert.FileExists(t, logPath)
	assert.False(t, openFile(t, logPath), "log file left open after the command failed")
}
