package config

import (
	_ "embed"

	"github.com/Watersilver/2powN/internal/board"
)

//go:embed defaults/2pown.yaml
var defaultYAML []byte

// DefaultGameConfig returns the hardcoded configuration used when the
// embedded YAML cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardSection{
			Size:             board.DefaultSize,
			WinningCondition: board.DefaultWinningCondition,
			Spawn4Prob:       board.DefaultSpawn4Prob,
		},
		Timing: TimingConfig{
			TickRate:   60,
			SlideTicks: 6,
			PopTicks:   4,
		},
		Presets: []PresetConfig{
			{
				ID:               "2048",
				Name:             "Classic",
				Description:      "4x4 board, reach 2048",
				Size:             4,
				WinningCondition: 2048,
				Spawn4Prob:       board.DefaultSpawn4Prob,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
