package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Game runs frames onto a drawing surface.
// The platform owns scheduling, input and the terminal; the game owns logic.
type Game interface {
	Start(now time.Time)
	Frame(now time.Time, in core.InputFrame, dst core.Surface) core.FrameResult
}

// Options configures a Model.
type Options struct {
	Runtime       core.RuntimeConfig
	Game          config.GameConfig
	Logger        *log.Logger
	ScreenshotDir string // empty means ~/.shooter/screenshots
}

// Model is the Bubble Tea model that hosts a running game.
type Model struct {
	game   Game
	canvas *core.Canvas
	keys   KeyMap
	input  *InputTracker
	help   help.Model
	logger *log.Logger

	config        core.RuntimeConfig
	screenshotDir string
	last          core.FrameResult
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:          game,
		canvas:        core.NewCanvas(opts.Game.Arena.Width, opts.Game.Arena.Height, cfg.ScreenW, playRows(cfg.ScreenH)),
		keys:          NewKeyMap(opts.Game.Controls),
		input:         NewInputTracker(opts.Game.Input.Hold(), opts.Game.Input.RepeatDelay()),
		help:          h,
		logger:        logger,
		config:        cfg,
		screenshotDir: opts.ScreenshotDir,
	}
}

// playRows is the number of rows left for the arena under the help line.
func playRows(screenH int) int {
	return max(screenH-1, 1)
}

// Init starts the game clock and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Start(time.Now())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.DebugToggle):
		m.input.ToggleDebug()
		return m, nil
	}

	if a, ok := m.keys.Action(msg); ok {
		m.input.Key(a, time.Now())
	}
	return m, nil
}

// handleMouse tracks the aim point and the primary button.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := m.canvas.ToArena(msg.X, msg.Y)

	switch {
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.input.PointerButton(p, true)
	case msg.Action == tea.MouseActionRelease:
		m.input.PointerButton(p, false)
	default:
		m.input.PointerMove(p)
	}
	return m, nil
}

// handleResize remaps the arena onto the new terminal size. Game state is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.canvas.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.last = m.game.Frame(now, m.input.Frame(now), m.canvas)
	return m, tickCmd(m.config.TickRate)
}

// LastFrame returns the result of the most recent frame.
func (m Model) LastFrame() core.FrameResult {
	return m.last
}

// saveScreenshot writes the last presented frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".shooter", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("shooter_%s_%s.txt", timestamp, uuid.NewString()[:8])
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.canvas.Frame().String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the last presented frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.canvas.Frame()) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Aim follows the pointer without a button held
	)

	_, err := p.Run()
	return err
}
