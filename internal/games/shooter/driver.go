package shooter

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// fpsRefreshFrames is how often the FPS debug line is refreshed.
const fpsRefreshFrames = 15

// Driver runs frames: sample time, compute dt, simulate, render, present.
// The caller schedules frames and supplies input for each one.
type Driver struct {
	state  *State
	timer  *core.FrameTimer
	frames uint64
	fps    rate.Sometimes
	logger *log.Logger
}

// NewDriver creates a driver for state. A nil logger discards output.
func NewDriver(state *State, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	timing := state.Config().Timing
	return &Driver{
		state:  state,
		timer:  core.NewFrameTimer(timing.UpdateRate, timing.MaxFrame()),
		fps:    rate.Sometimes{Every: fpsRefreshFrames},
		logger: logger,
	}
}

// New creates a game from cfg and textures, ready to run.
func New(cfg config.GameConfig, textures Textures, logger *log.Logger) *Driver {
	return NewDriver(NewState(cfg, textures), logger)
}

// State returns the game state.
func (d *Driver) State() *State {
	return d.state
}

// Frames returns the number of frames run.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// FPS returns the smoothed frame rate.
func (d *Driver) FPS() float64 {
	return d.timer.FPS()
}

// Start sets the clock reference so the first frame gets a real dt.
func (d *Driver) Start(now time.Time) {
	d.timer.Start(now)
}

// Frame runs one full frame and presents it on dst.
func (d *Driver) Frame(now time.Time, in core.InputFrame, dst core.Surface) core.FrameResult {
	dt := d.timer.Tick(now)
	d.frames++

	if in.ToggleDebug {
		d.state.SetDebugMode(!d.state.DebugMode())
		d.logger.Debug("debug overlay toggled", "enabled", d.state.DebugMode(), "frame", d.frames)
	}

	d.fps.Do(func() {
		d.state.debug.Set(DebugFps, "Fps: %.0f", d.timer.FPS())
	})
	d.state.debug.Set(DebugStep, "Frame: %d, dt: %.3f", d.frames, dt)

	Simulate(d.state, in, dt)
	Render(d.state, dst)
	dst.Present()

	return core.FrameResult{
		Frame:    d.frames,
		DT:       dt,
		Entities: d.state.entities.Len(),
	}
}
