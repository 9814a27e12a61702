package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/assets"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List available sprites",
	Long: `Loads every sprite from the built-in set (or --assets DIR) and prints
its size and fingerprint. Fails if any sprite file is malformed.

Examples:
  shooter assets
  shooter assets --assets ./sprites`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

func runAssets(cmd *cobra.Command, _ []string) error {
	provider := assets.NewProvider(spriteFS())

	names, err := provider.Available()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("No sprites available.")
		return nil
	}
	if err := provider.Load(cmd.Context(), names...); err != nil {
		return err
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, n := range names {
		if len(n) > maxNameLen {
			maxNameLen = len(n)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-9s  %-5s  %s\n", maxNameLen, "Name", "Size", "Grid", "ID")
	fmt.Printf("  %-*s  %-9s  %-5s  %s\n", maxNameLen, "----", "----", "----", "--")

	// Print sprites
	for _, n := range names {
		tex, err := provider.Texture(n)
		if err != nil {
			return err
		}
		size := fmt.Sprintf("%gx%g", tex.Width(), tex.Height())
		grid := fmt.Sprintf("%dx%d", tex.Cols(), tex.Rows())
		fmt.Printf("  %-*s  %-9s  %-5s  %016x\n", maxNameLen, n, size, grid, tex.ID())
	}
	return nil
}
