package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Print key bindings",
	Long: `Shows the keys bound to each action in the effective configuration.
Each action takes up to two alternate keys.`,
	Args: cobra.NoArgs,
	RunE: runControls,
}

func runControls(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	km := tui.NewKeyMap(cfg.Controls)

	fmt.Printf("  %-10s  %s\n", "Action", "Keys")
	fmt.Printf("  %-10s  %s\n", "------", "----")
	for _, col := range km.FullHelp() {
		for _, b := range col {
			keys := strings.Join(b.Keys(), ", ")
			if keys == "" {
				keys = "(unbound)"
			}
			fmt.Printf("  %-10s  %s\n", b.Help().Desc, keys)
		}
	}
	fmt.Println()
	fmt.Println("Mouse: move to aim, hold the left button to fire.")
	return nil
}
