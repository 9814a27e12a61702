// shooter is a 2D arena shooter that runs in the terminal.
//
// Usage:
//
//	shooter                  - Play (same as 'shooter play')
//	shooter play             - Play the game
//	shooter assets           - List available sprites
//	shooter config           - Print the effective configuration
//	shooter controls         - Print key bindings
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--config <path>      - Use a YAML or TOML config file
//	--assets <dir>       - Load sprites from a directory instead of the built-in set
//	--log-file <path>    - Write logs to a file (the terminal is busy while playing)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--debug              - Force the debug overlay on or off
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/assets"
	"github.com/vovakirdan/tui-shooter/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagAssets   string
	flagLogFile  string
	flagLogLevel string
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Terminal arena shooter",
	Long: `A 2D arena shooter played in the terminal.

Fly the ship with the arrow keys or WASD, aim with the mouse and fire
with X/J or the left mouse button.

Available commands:
  play      - Play the game (default)
  assets    - List available sprites
  config    - Print the effective configuration
  controls  - Print key bindings

Examples:
  shooter
  shooter play --fps 30
  shooter play --config ./my-shooter.toml --log-file shooter.log
  shooter config --format toml > ~/.shooter/configs/shooter.toml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with sprite files (default: built-in sprites)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show the debug overlay (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(controlsCmd)
}

// newLogger builds the process logger. While the TUI owns the terminal,
// logs go to --log-file or nowhere; other commands log to stderr.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
		Level:           level,
	})
	return logger.With("run", uuid.NewString()), closeFn, nil
}

// loadConfig loads the configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.GameConfig, config.Source, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, src, err
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug.Enabled = flagDebug
	}
	return cfg, src, nil
}

// spriteFS returns the sprite source selected by --assets.
func spriteFS() fs.FS {
	if flagAssets != "" {
		return os.DirFS(flagAssets)
	}
	return assets.Embedded()
}
