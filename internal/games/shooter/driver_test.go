package shooter

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/assets"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDriverFrameSequence(t *testing.T) {
	d := NewDriver(newTestState(), nil)
	d.Start(t0)

	var r recorder
	res := d.Frame(t0.Add(time.Second/60), core.NewInputFrame(), &r)

	assert.Equal(t, uint64(1), res.Frame)
	assert.InDelta(t, 1.0, res.DT, 1e-6)
	assert.Equal(t, 1, res.Entities)
	assert.Equal(t, 1, r.presented)
	assert.Equal(t, "clear", r.calls[0].op)

	res = d.Frame(t0.Add(2*time.Second/60), core.NewInputFrame(), &r)
	assert.Equal(t, uint64(2), res.Frame)
	assert.Equal(t, 2, r.presented)
	assert.Equal(t, uint64(2), d.Frames())
}

func TestDriverFirstFrameWithoutStart(t *testing.T) {
	d := NewDriver(newTestState(), nil)

	var r recorder
	res := d.Frame(t0, core.NewInputFrame(), &r)
	assert.Zero(t, res.DT)
}

func TestDriverClampsStalls(t *testing.T) {
	d := NewDriver(newTestState(), nil)
	d.Start(t0)

	var r recorder
	res := d.Frame(t0.Add(10*time.Second), core.NewInputFrame(), &r)
	// 0.25s cap at 60 units per second
	assert.InDelta(t, 15.0, res.DT, 1e-9)

	res = d.Frame(t0.Add(5*time.Second), core.NewInputFrame(), &r)
	assert.Zero(t, res.DT, "clock going backwards yields zero, never negative")
}

func TestDriverToggleDebug(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})

	d := NewDriver(newTestState(), logger)
	require.True(t, d.State().DebugMode())

	var r recorder
	in := core.NewInputFrame()
	in.ToggleDebug = true
	d.Frame(t0, in, &r)
	assert.False(t, d.State().DebugMode())
	assert.Empty(t, r.ops("text"))
	assert.Contains(t, logs.String(), "debug overlay toggled")

	// No toggle keeps the mode
	d.Frame(t0, core.NewInputFrame(), &r)
	assert.False(t, d.State().DebugMode())

	d.Frame(t0, in, &r)
	assert.True(t, d.State().DebugMode())
}

func TestDriverRefreshesFpsEvery15Frames(t *testing.T) {
	d := NewDriver(newTestState(), nil)
	d.Start(t0)
	var r recorder

	now := t0.Add(100 * time.Millisecond)
	d.Frame(now, core.NewInputFrame(), &r)
	first := d.State().Debug().Get(DebugFps)
	assert.Equal(t, "Fps: 10", first)

	for i := 2; i <= 15; i++ {
		now = now.Add(50 * time.Millisecond)
		d.Frame(now, core.NewInputFrame(), &r)
		assert.Equal(t, first, d.State().Debug().Get(DebugFps), "frame %d", i)
	}

	now = now.Add(50 * time.Millisecond)
	d.Frame(now, core.NewInputFrame(), &r)
	assert.NotEqual(t, first, d.State().Debug().Get(DebugFps))
	assert.Greater(t, d.FPS(), 10.0)
}

func TestDriverOnCanvasWithEmbeddedSprites(t *testing.T) {
	cfg := config.Default()
	textures, err := LoadTextures(context.Background(), assets.NewProvider(assets.Embedded()), cfg)
	require.NoError(t, err)

	d := New(cfg, textures, nil)
	d.Start(t0)
	canvas := core.NewCanvas(cfg.Arena.Width, cfg.Arena.Height, 80, 24)

	center := d.State().Player().Center()
	in := core.NewInputFrame()
	in.Pointer = core.V(center.X, center.Y+100)
	in.Set(core.ActionAttack)

	res := d.Frame(t0.Add(time.Second/60), in, canvas)
	assert.Equal(t, 2, res.Entities)

	frame := canvas.Frame()
	// Bullet glyph sits over the middle of the ship
	rows := strings.Split(frame.String(), "\n")
	require.Len(t, rows, 24)
	assert.Contains(t, rows[23], "/*\\", "player and bullet sprites are drawn")
	assert.Contains(t, rows[0], "Press Alt+F12", "debug notice is drawn")

	var bullet bool
	for e := range d.State().Entities().Values() {
		if e.IsPlayerBullet() {
			bullet = true
			assert.InDelta(t, math.Pi, e.Rotation, 1e-9)
		}
	}
	assert.True(t, bullet)
}

func TestLoadTexturesUnknownSprite(t *testing.T) {
	cfg := config.Default()
	cfg.Bullet.Sprite = "missing"

	_, err := LoadTextures(context.Background(), assets.NewProvider(assets.Embedded()), cfg)
	require.ErrorIs(t, err, assets.ErrUnknownSprite)
}
