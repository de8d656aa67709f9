package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Watersilver/2powN/internal/board"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)

	assert.Equal(t, board.DefaultConfig(), cfg.BoardConfig())
	assert.Equal(t, 60, cfg.Timing.TickRate)

	ids := make([]string, 0, len(cfg.Presets))
	for _, p := range cfg.Presets {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, "2048")
	assert.Contains(t, ids, "2048_mini")
	assert.Contains(t, ids, "2048_big")
}

func TestDefaultGameConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultGameConfig().Validate())
}

func TestParsePartialDocument(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  size: 5\n"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Board.Size)
	assert.Equal(t, board.DefaultWinningCondition, cfg.Board.WinningCondition)
	assert.Equal(t, DefaultGameConfig().Timing, cfg.Timing)
	assert.Equal(t, DefaultGameConfig().Presets, cfg.Presets)
}

func TestParseReplacesPresets(t *testing.T) {
	doc := `
presets:
  - id: tiny
    name: Tiny
    size: 2
    winning_condition: 16
`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, cfg.Presets, 1)

	p, err := cfg.Preset("tiny")
	require.NoError(t, err)
	assert.Equal(t, board.Config{Size: 2, WinningCondition: 16, Spawn4Prob: board.DefaultSpawn4Prob}, p.BoardConfig())
}

func TestParseExplicitZeroSpawnProbability(t *testing.T) {
	doc := `
board:
  spawn4_probability: 0
presets:
  - id: twos
    size: 4
    winning_condition: 2048
    spawn4_probability: 0
  - id: plain
    size: 4
    winning_condition: 2048
`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Zero(t, cfg.BoardConfig().Spawn4Prob)

	twos, err := cfg.Preset("twos")
	require.NoError(t, err)
	assert.Zero(t, twos.BoardConfig().Spawn4Prob)

	plain, err := cfg.Preset("plain")
	require.NoError(t, err)
	assert.Equal(t, board.DefaultSpawn4Prob, plain.BoardConfig().Spawn4Prob)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"bad size", "board:\n  size: 1\n", board.ErrInvalidSize},
		{"bad target", "board:\n  winning_condition: 101\n", board.ErrInvalidWinningCondition},
		{"bad spawn", "board:\n  spawn4_probability: 1.5\n", board.ErrInvalidSpawnProbability},
		{"zero tick rate", "timing:\n  tick_rate: 0\n", ErrInvalidTiming},
		{"negative slide", "timing:\n  slide_ticks: -1\n", ErrInvalidTiming},
		{"preset without id", "presets:\n  - size: 4\n    winning_condition: 2048\n", ErrInvalidPreset},
		{"bad preset board", "presets:\n  - id: x\n    size: 0\n    winning_condition: 2048\n", board.ErrInvalidSize},
		{"duplicate preset", "presets:\n  - {id: x, size: 4, winning_condition: 8}\n  - {id: x, size: 4, winning_condition: 8}\n", ErrDuplicatePreset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("board: [unterminated"))
	assert.Error(t, err)
}

func TestPresetUnknown(t *testing.T) {
	_, err := DefaultGameConfig().Preset("nope")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  size: 6\n  winning_condition: 4096\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Board.Size)
	assert.Equal(t, 4096, cfg.Board.WinningCondition)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  size: -3\n"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, board.ErrInvalidSize)
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Nothing on disk: embedded defaults.
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, board.DefaultSize, cfg.Board.Size)

	// Local configs directory.
	require.NoError(t, os.MkdirAll(filepath.Join(work, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, "configs", fileName), []byte("board:\n  size: 5\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Board.Size)

	// User config wins over the local one.
	userPath := UserConfigPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(userPath), 0o755))
	require.NoError(t, os.WriteFile(userPath, []byte("board:\n  size: 7\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Board.Size)

	// An invalid user config is skipped.
	require.NoError(t, os.WriteFile(userPath, []byte("board:\n  size: 1\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Board.Size)
}

func TestApplyDifficulty(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		expected   float64
	}{
		{DifficultyEasy, 0.05},
		{DifficultyNormal, 0.1},
		{DifficultyHard, 0.2},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			cfg, err := Parse(DefaultYAML())
			require.NoError(t, err)

			require.NoError(t, ApplyDifficulty(&cfg, tt.difficulty))
			assert.Equal(t, tt.expected, cfg.Board.Spawn4Prob)
			for _, p := range cfg.Presets {
				assert.Equal(t, tt.expected, p.Spawn4Prob, p.ID)
			}
		})
	}

	cfg := DefaultGameConfig()
	assert.Error(t, ApplyDifficulty(&cfg, "nightmare"))
}
