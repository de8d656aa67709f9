// Package config provides YAML-based configuration loading for 2powN:
// the default board, the named presets and the animation timing.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Watersilver/2powN/internal/board"
)

var (
	ErrInvalidTiming   = errors.New("config: invalid timing")
	ErrInvalidPreset   = errors.New("config: invalid preset")
	ErrDuplicatePreset = errors.New("config: duplicate preset id")
	ErrUnknownPreset   = errors.New("config: unknown preset")
)

// GameConfig is the top-level configuration document.
type GameConfig struct {
	Board   BoardSection   `yaml:"board"`
	Timing  TimingConfig   `yaml:"timing"`
	Presets []PresetConfig `yaml:"presets"`
}

// BoardSection is the board used when no preset is selected.
type BoardSection struct {
	Size             int     `yaml:"size"`
	WinningCondition int     `yaml:"winning_condition"`
	Spawn4Prob       float64 `yaml:"spawn4_probability"`
}

// TimingConfig controls how fast the turn engine is driven by the UI.
type TimingConfig struct {
	TickRate   int `yaml:"tick_rate"`   // frames per second
	SlideTicks int `yaml:"slide_ticks"` // frames per slide animation
	PopTicks   int `yaml:"pop_ticks"`   // frames per spawn highlight
}

// PresetConfig is a named board setup selectable from the CLI.
type PresetConfig struct {
	ID               string  `yaml:"id"`
	Name             string  `yaml:"name"`
	Description      string  `yaml:"description"`
	Size             int     `yaml:"size"`
	WinningCondition int     `yaml:"winning_condition"`
	Spawn4Prob       float64 `yaml:"spawn4_probability"`
}

// UnmarshalYAML decodes a preset. A preset without spawn4_probability
// gets board.DefaultSpawn4Prob; an explicit 0 spawns only 2s.
func (p *PresetConfig) UnmarshalYAML(value *yaml.Node) error {
	type plain PresetConfig
	raw := plain{Spawn4Prob: board.DefaultSpawn4Prob}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*p = PresetConfig(raw)
	return nil
}

// BoardConfig converts the board section to an engine configuration.
func (c GameConfig) BoardConfig() board.Config {
	return board.Config{
		Size:             c.Board.Size,
		WinningCondition: c.Board.WinningCondition,
		Spawn4Prob:       c.Board.Spawn4Prob,
	}
}

// BoardConfig converts the preset to an engine configuration.
func (p PresetConfig) BoardConfig() board.Config {
	return board.Config{
		Size:             p.Size,
		WinningCondition: p.WinningCondition,
		Spawn4Prob:       p.Spawn4Prob,
	}
}

// Preset looks up a preset by ID.
func (c GameConfig) Preset(id string) (PresetConfig, error) {
	for _, p := range c.Presets {
		if p.ID == id {
			return p, nil
		}
	}
	return PresetConfig{}, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
}

// Validate checks the board section, every preset and the timing.
func (c GameConfig) Validate() error {
	if err := c.BoardConfig().Validate(); err != nil {
		return fmt.Errorf("config: board: %w", err)
	}

	if c.Timing.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive (got %d)", ErrInvalidTiming, c.Timing.TickRate)
	}
	if c.Timing.SlideTicks < 0 || c.Timing.PopTicks < 0 {
		return fmt.Errorf("%w: animation ticks must not be negative", ErrInvalidTiming)
	}

	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if p.ID == "" {
			return fmt.Errorf("%w: missing id", ErrInvalidPreset)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicatePreset, p.ID)
		}
		seen[p.ID] = true

		if err := p.BoardConfig().Validate(); err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidPreset, p.ID, err)
		}
	}
	return nil
}
