package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:     "presets",
	Aliases: []string{"list"},
	Short:   "List all configured presets",
	Long:    `Shows every preset from the active configuration with its board size and winning tile.`,
	RunE:    runPresets,
}

func runPresets(_ *cobra.Command, _ []string) error {
	a, err := setup(os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	presets := a.config.Presets
	if len(presets) == 0 {
		fmt.Println("No presets available.")
		return nil
	}

	fmt.Println("Available presets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxNameLen := 4
	for _, p := range presets {
		maxIDLen = max(maxIDLen, len(p.ID))
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	fmt.Printf("  %-*s  %-*s  %4s  %6s\n", maxIDLen, "ID", maxNameLen, "Name", "Size", "Target")
	fmt.Printf("  %-*s  %-*s  %4s  %6s\n", maxIDLen, "--", maxNameLen, "----", "----", "------")

	for _, p := range presets {
		fmt.Printf("  %-*s  %-*s  %4s  %6d\n", maxIDLen, p.ID, maxNameLen, p.Name,
			fmt.Sprintf("%dx%d", p.Size, p.Size), p.WinningCondition)
	}

	fmt.Println()
	fmt.Println("Run '2pown play <id>' to play a preset.")
	return nil
}
