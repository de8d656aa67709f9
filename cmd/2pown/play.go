package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Watersilver/2powN/internal/board"
	"github.com/Watersilver/2powN/internal/games/t2048"
	"github.com/Watersilver/2powN/internal/platform/tui"
	"github.com/Watersilver/2powN/internal/registry"
)

var (
	flagSize   int
	flagPower  int
	flagTarget int
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a game",
	Long: `Start playing 2powN.

Without arguments the preset menu opens, with a Custom entry that asks
for the grid size and the winning tile as a power of two. A preset ID
starts that preset directly. --size, --power or --target start a custom
board built from the configured defaults.

Controls:
  Arrows/WASD/hjkl  - Slide
  P/Esc             - Pause
  R                 - Restart
  B                 - Back to menu (paused or finished)
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Examples:
  2pown play
  2pown play 2048_big
  2pown play --size 3 --power 8
  2pown play --size 5 --target 4096 --difficulty hard
  2pown play --config ./my-2pown.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Grid size for a custom board")
	playCmd.Flags().IntVar(&flagPower, "power", 0, "Winning tile as an exponent of two")
	playCmd.Flags().IntVar(&flagTarget, "target", 0, "Winning tile for a custom board")
	playCmd.MarkFlagsMutuallyExclusive("power", "target")
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := setup(io.Discard)
	if err != nil {
		return err
	}
	defer a.Close()

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rc := a.runtime(width, height)

	custom := cmd.Flags().Changed("size") || cmd.Flags().Changed("power") || cmd.Flags().Changed("target")
	if len(args) == 1 && custom {
		return errors.New("a preset cannot be combined with --size, --power or --target")
	}

	var game registry.Game
	switch {
	case len(args) == 1:
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown preset %q, run '2pown presets' to see available presets", args[0])
		}
		game, err = registry.Create(args[0])
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

	case custom:
		cfg, err := customConfig(a.config.BoardConfig(), flagSize, flagPower, flagTarget)
		if err != nil {
			return err
		}
		game = t2048.NewCustom(cfg, a.options)

	default:
		err := tui.RunSession(tui.SessionConfig{
			Registry: registry.Default,
			Options:  a.options,
			Defaults: a.config.BoardConfig(),
			Runtime:  rc,
			Logger:   a.logger,
		})
		if err != nil {
			return fmt.Errorf("running session: %w", err)
		}
		return nil
	}

	a.logger.Info("starting game", "game", game.ID(), "seed", rc.Seed)
	if err := tui.Run(game, rc, a.logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// customConfig overrides the defaults with the flags that were set.
// A zero value leaves the default in place.
func customConfig(defaults board.Config, size, power, target int) (board.Config, error) {
	cfg := defaults
	if size != 0 {
		cfg.Size = size
	}
	if power != 0 {
		wc, err := board.WinningConditionForPower(power)
		if err != nil {
			return board.Config{}, err
		}
		cfg.WinningCondition = wc
	}
	if target != 0 {
		cfg.WinningCondition = target
	}
	if err := cfg.Validate(); err != nil {
		return board.Config{}, err
	}
	return cfg, nil
}
