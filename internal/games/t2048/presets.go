// Package t2048 adapts the turn engine to the platform's Game contract:
// it drives one resumption per tick, animates slides and spawns, and
// draws the board with colored tiles.
package t2048

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Watersilver/2powN/internal/board"
	"github.com/Watersilver/2powN/internal/config"
	"github.com/Watersilver/2powN/internal/registry"
)

// CustomID is the game ID used for boards configured at runtime.
const CustomID = "custom"

// Preset is a named board configuration.
type Preset struct {
	ID          string
	Name        string
	Description string
	Config      board.Config
}

// Presets converts configuration presets to game presets.
func Presets(cfgs []config.PresetConfig) []Preset {
	presets := make([]Preset, 0, len(cfgs))
	for _, p := range cfgs {
		presets = append(presets, Preset{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Config:      p.BoardConfig(),
		})
	}
	return presets
}

// Options are shared by every game built from a preset.
type Options struct {
	Timing config.TimingConfig
	Logger *log.Logger
}

// DefaultOptions returns the timing of the default configuration and a
// discarding logger.
func DefaultOptions() Options {
	return Options{Timing: config.DefaultGameConfig().Timing}
}

// Register adds one game per preset to the registry.
func Register(reg *registry.Registry, presets []Preset, opts Options) {
	for _, p := range presets {
		p := p
		reg.Register(registry.GameInfo{
			ID:          p.ID,
			Title:       title(p),
			Description: p.Description,
		}, func() registry.Game {
			return New(p, opts)
		})
	}
}

// NewCustom creates a game for a configuration chosen at runtime.
func NewCustom(cfg board.Config, opts Options) *Game {
	return New(Preset{
		ID:     CustomID,
		Name:   fmt.Sprintf("%dx%d to %d", cfg.Size, cfg.Size, cfg.WinningCondition),
		Config: cfg,
	}, opts)
}

func title(p Preset) string {
	if p.Name == "" {
		return p.ID
	}
	return p.Name
}
