// 2pown is a sliding-tile merge puzzle for the terminal.
//
// Usage:
//
//	2pown play [preset]      - Play a preset, or pick one from the menu
//	2pown presets            - List available presets
//	2pown serve              - Start SSH server for remote play
//	2pown simulate           - Play random moves headless and print the result
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: config tick_rate)
//	--seed <value>         - Set RNG seed for reproducible games
//	--config <path>        - Use a custom config file
//	--difficulty <name>    - easy, normal or hard spawn odds
//	--log-level <level>    - debug, info, warn or error
//	--log-file[=path]      - Write logs to a file (default: ~/.2pown/2pown.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Watersilver/2powN/internal/config"
	"github.com/Watersilver/2powN/internal/core"
	"github.com/Watersilver/2powN/internal/games/t2048"
	"github.com/Watersilver/2powN/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "2pown",
	Short: "2powN - slide and merge tiles up to a power of two",
	Long: `2powN is a sliding-tile merge puzzle played in the terminal.

Slide the board in one of four directions. Equal tiles that collide
merge into their sum, and a new 2 or 4 appears after every move that
changed the board. Reach the winning tile before the board locks up.

Available commands:
  play      - Play a preset or open the preset menu
  presets   - Show all configured presets
  serve     - Start SSH server for remote play
  simulate  - Run a headless game with random moves

Examples:
  2pown play
  2pown play 2048_mini
  2pown play --size 5 --power 12
  2pown serve --addr :2222
  2pown simulate --seed 7`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Spawn difficulty: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().Lookup("log-file").NoOptDefVal = defaultLogPath()

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}

// app is what every command builds before doing its work.
type app struct {
	config  config.GameConfig
	logger  *log.Logger
	options t2048.Options
	closer  io.Closer
}

// setup loads the configuration, builds the logger and registers one game
// per preset. fallback receives the logs when no --log-file is given.
func setup(fallback io.Writer) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDifficulty != "" {
		if err := config.ApplyDifficulty(&cfg, config.Difficulty(flagDifficulty)); err != nil {
			return nil, err
		}
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	a := &app{config: cfg}
	out := fallback
	if flagLogFile != "" {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			return nil, err
		}
		out = f
		a.closer = f
	}

	a.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "2pown",
		Level:           level,
	})
	a.options = t2048.Options{Timing: cfg.Timing, Logger: a.logger}

	t2048.Register(registry.Default, t2048.Presets(cfg.Presets), a.options)
	return a, nil
}

// Close releases the log file, if any.
func (a *app) Close() {
	if a.closer != nil {
		a.closer.Close()
	}
}

// runtime builds the runtime config for a screen size.
func (a *app) runtime(width, height int) core.RuntimeConfig {
	rate := flagFPS
	if rate <= 0 {
		rate = a.config.Timing.TickRate
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: rate,
		Seed:     flagSeed,
	}
}

func defaultLogPath() string {
	dir := config.UserDataDir()
	if dir == "" {
		return "2pown.log"
	}
	return filepath.Join(dir, "2pown.log")
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
