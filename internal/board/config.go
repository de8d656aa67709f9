package board

import (
	"errors"
	"fmt"
	"math/bits"
)

// Default configuration values.
const (
	DefaultSize             = 4
	DefaultWinningCondition = 2048
	DefaultSpawn4Prob       = 0.10
)

var (
	// ErrInvalidSize is returned when the size is smaller than 2.
	ErrInvalidSize = errors.New("board: size must be an integer >= 2")

	// ErrInvalidWinningCondition is returned when the winning condition is not a positive even integer.
	ErrInvalidWinningCondition = errors.New("board: winning condition must be a positive even integer")

	// ErrInvalidSpawnProbability is returned when the 4-spawn probability is outside [0, 1].
	ErrInvalidSpawnProbability = errors.New("board: spawn probability must be within [0, 1]")
)

// Config holds the parameters fixed for one game session.
type Config struct {
	Size             int
	WinningCondition int
	// Spawn4Prob is the chance a spawned tile is a 4 instead of a 2.
	// Zero spawns only 2s.
	Spawn4Prob float64
}

// DefaultConfig returns the classic 4x4 game played to 2048.
func DefaultConfig() Config {
	return Config{
		Size:             DefaultSize,
		WinningCondition: DefaultWinningCondition,
		Spawn4Prob:       DefaultSpawn4Prob,
	}
}

// Validate checks the configuration and reports the first precondition that fails.
func (c Config) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("%w (got %d)", ErrInvalidSize, c.Size)
	}
	if c.WinningCondition <= 0 || c.WinningCondition%2 != 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidWinningCondition, c.WinningCondition)
	}
	if c.Spawn4Prob < 0 || c.Spawn4Prob > 1 {
		return fmt.Errorf("%w (got %g)", ErrInvalidSpawnProbability, c.Spawn4Prob)
	}
	return nil
}

// MaxPower is the largest exponent whose power of two fits in an int.
const MaxPower = bits.UintSize - 2

// WinningConditionForPower returns 2^power, the winning tile for an exponent.
// Powers below 1 or above MaxPower are rejected.
func WinningConditionForPower(power int) (int, error) {
	if power < 1 || power > MaxPower {
		return 0, fmt.Errorf("%w (power %d)", ErrInvalidWinningCondition, power)
	}
	return 1 << power, nil
}
