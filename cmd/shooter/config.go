package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

var (
	flagFormat  string
	flagDefault bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would use, after the search order
--config -> ~/.shooter/configs/shooter.{yaml,yml,toml} ->
./configs/shooter.{yaml,yml,toml} -> built-in default.

The source is reported on stderr so the output can be saved as a config file.

Examples:
  shooter config
  shooter config --format toml
  shooter config --default > ~/.shooter/configs/shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in default instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		return fmt.Errorf("unknown format %q (want yaml or toml)", flagFormat)
	}

	if flagDefault && format == config.FormatYAML {
		// The embedded file keeps its comments
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg := config.Default()
	src := config.Source{}
	if !flagDefault {
		var err error
		cfg, src, err = loadConfig(cmd)
		if err != nil {
			return err
		}
	}

	data, err := config.Encode(cfg, format)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "# source: %s\n", src)
	_, err = os.Stdout.Write(data)
	return err
}
