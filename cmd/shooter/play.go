package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/assets"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the arena shooter.

Controls (defaults, see 'shooter controls'):
  Arrows/WASD  - Move
  X/J          - Fire toward the aim point
  Mouse        - Aim, left button fires while held
  Alt+F12      - Toggle the debug overlay
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  shooter play
  shooter play --debug=false
  shooter play --config ./my-shooter.yaml --log-file shooter.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, src, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", src)

	// Missing sprites are fatal before the terminal is taken over
	provider := assets.NewProvider(spriteFS())
	textures, err := shooter.LoadTextures(cmd.Context(), provider, cfg)
	if err != nil {
		return fmt.Errorf("cannot load sprites: %w", err)
	}
	logger.Debug("sprites loaded", "count", provider.Len())

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game := shooter.New(cfg, textures, logger)
	logger.Info("session started", "width", width, "height", height, "fps", flagFPS)

	runErr := tui.Run(game, tui.Options{
		Runtime: rt,
		Game:    cfg,
		Logger:  logger,
	})

	logger.Info("session ended",
		"frames", game.Frames(),
		"entities", game.State().Entities().Len(),
		"fps", fmt.Sprintf("%.1f", game.FPS()))
	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
