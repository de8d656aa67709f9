package config

import "fmt"

// Difficulty represents a named spawn difficulty. Harder settings spawn
// more 4s, which fills the board faster.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the accepted difficulty names in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}

// Spawn4ProbFor returns the probability of spawning a 4 for a difficulty.
func Spawn4ProbFor(d Difficulty) (float64, error) {
	switch d {
	case DifficultyEasy:
		return 0.05, nil
	case DifficultyNormal, "":
		return 0.1, nil
	case DifficultyHard:
		return 0.2, nil
	default:
		return 0, fmt.Errorf("config: unknown difficulty %q", string(d))
	}
}

// ApplyDifficulty overrides the spawn probability of the board section
// and of every preset.
func ApplyDifficulty(cfg *GameConfig, d Difficulty) error {
	p, err := Spawn4ProbFor(d)
	if err != nil {
		return err
	}
	cfg.Board.Spawn4Prob = p
	for i := range cfg.Presets {
		cfg.Presets[i].Spawn4Prob = p
	}
	return nil
}
