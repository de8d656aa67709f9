package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Watersilver/2powN/internal/board"
	"github.com/Watersilver/2powN/internal/turn"
)

var (
	flagMoves   int
	flagPreset  string
	flagVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play random moves without a terminal UI",
	Long: `Run one game headless, choosing a random direction at every turn,
and print the final board, turn and score.

The game stops on victory, when the board locks up, or after --moves
directions were tried. With --seed the run is reproducible.

Examples:
  2pown simulate
  2pown simulate --seed 42 --preset 2048_mini
  2pown simulate --moves 50 --verbose
  2pown simulate --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagMoves, "moves", 10000, "Maximum number of directions to try")
	simulateCmd.Flags().StringVar(&flagPreset, "preset", "", "Preset to simulate (default: board section of the config)")
	simulateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print the board after every move")
}

// simulation is the outcome of a headless run.
type simulation struct {
	Seed     int64
	Tries    int
	Moves    int
	Snapshot turn.Snapshot
}

func runSimulate(_ *cobra.Command, _ []string) error {
	a, err := setup(os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.config.BoardConfig()
	if flagPreset != "" {
		p, err := a.config.Preset(flagPreset)
		if err != nil {
			return err
		}
		cfg = p.BoardConfig()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var onMove func(turn.Snapshot)
	if flagVerbose {
		onMove = func(s turn.Snapshot) {
			fmt.Printf("%s  score %d\n%s\n", s.Direction, s.Score, s.Grid)
		}
	}

	res, err := simulate(cfg, seed, flagMoves, a.logger, onMove)
	if err != nil {
		return err
	}

	s := res.Snapshot
	fmt.Printf("seed %d, %d moves (%d tried)\n", res.Seed, res.Moves, res.Tries)
	fmt.Print(s.Grid.String())
	fmt.Printf("turn: %s  score: %d  max tile: %d  target: %d\n", s.Turn, s.Score, s.MaxTile(), s.WinningCondition)
	return nil
}

// simulate plays one game with random directions. Each loop iteration
// walks the machine once through move, moved and next.
func simulate(cfg board.Config, seed int64, maxTries int, logger *log.Logger, onMove func(turn.Snapshot)) (simulation, error) {
	m := turn.New(turn.WithSeed(seed), turn.WithLogger(logger))
	if _, err := m.Start(); err != nil {
		return simulation{}, err
	}

	snap := m.Resume(turn.Configure{Config: cfg})
	if snap.Err != nil {
		return simulation{}, snap.Err
	}

	// Directions draw from a separate source than the board's spawns.
	dirs := rand.New(rand.NewSource(seed + 1))
	res := simulation{Seed: seed}

	for res.Tries < maxTries && !snap.Turn.IsTerminal() {
		dir := board.Directions[dirs.Intn(len(board.Directions))]
		res.Tries++

		snap = m.Resume(turn.Move{Direction: dir})
		if snap.Moved > 0 {
			res.Moves++
			if onMove != nil {
				onMove(snap)
			}
		}
		m.Resume(turn.Tick{})
		snap = m.Resume(turn.Tick{})
	}

	res.Snapshot = snap
	return res, nil
}
