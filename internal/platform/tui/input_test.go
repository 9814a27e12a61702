package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestInputTrackerEdgeAndHold(t *testing.T) {
	tr := NewInputTracker(150*time.Millisecond, 0)

	tr.Key(core.ActionAttack, t0)
	in := tr.Frame(t0.Add(16 * time.Millisecond))
	assert.True(t, in.Down(core.ActionAttack))
	assert.True(t, in.Pressed(core.ActionAttack), "first frame is a press")

	// Auto-repeat keeps it held without a new press
	tr.Key(core.ActionAttack, t0.Add(30*time.Millisecond))
	in = tr.Frame(t0.Add(33 * time.Millisecond))
	assert.True(t, in.Down(core.ActionAttack))
	assert.False(t, in.Pressed(core.ActionAttack))

	// Still inside the hold window with no event
	in = tr.Frame(t0.Add(150 * time.Millisecond))
	assert.True(t, in.Down(core.ActionAttack))

	// Window expired: released
	in = tr.Frame(t0.Add(300 * time.Millisecond))
	assert.False(t, in.Down(core.ActionAttack))
	assert.False(t, in.Pressed(core.ActionAttack))

	// A new press after release is a new edge
	tr.Key(core.ActionAttack, t0.Add(400*time.Millisecond))
	in = tr.Frame(t0.Add(401 * time.Millisecond))
	assert.True(t, in.Pressed(core.ActionAttack))
}

func TestInputTrackerHeldThroughRepeatDelay(t *testing.T) {
	tr := NewInputTracker(150*time.Millisecond, 600*time.Millisecond)

	// One press at 0ms, OS auto-repeat starts at 300ms and repeats every 33ms.
	// Frames run every 16ms.
	pressed, frames := 0, 0
	for ms := 0; ms <= 600; ms++ {
		now := t0.Add(time.Duration(ms) * time.Millisecond)
		if ms == 0 || (ms >= 300 && (ms-300)%33 == 0) {
			tr.Key(core.ActionAttack, now)
		}
		if ms > 0 && ms%16 == 0 {
			in := tr.Frame(now)
			frames++
			assert.True(t, in.Down(core.ActionAttack), "frame at %dms", ms)
			if in.Pressed(core.ActionAttack) {
				pressed++
			}
		}
	}
	assert.Equal(t, 37, frames)
	assert.Equal(t, 1, pressed)

	// Once repeating, the short window applies after the last repeat (597ms)
	in := tr.Frame(t0.Add(800 * time.Millisecond))
	assert.False(t, in.Down(core.ActionAttack))
}

func TestInputTrackerRepressBetweenFrames(t *testing.T) {
	tr := NewInputTracker(100*time.Millisecond, 100*time.Millisecond)

	tr.Key(core.ActionAttack, t0)
	assert.True(t, tr.Frame(t0.Add(10*time.Millisecond)).Pressed(core.ActionAttack))
	in := tr.Frame(t0.Add(100 * time.Millisecond))
	assert.True(t, in.Down(core.ActionAttack))
	assert.False(t, in.Pressed(core.ActionAttack))

	// The window ran out before this press, but no frame saw the release
	tr.Key(core.ActionAttack, t0.Add(250*time.Millisecond))
	in = tr.Frame(t0.Add(260 * time.Millisecond))
	assert.True(t, in.Pressed(core.ActionAttack))
}

func TestInputTrackerShortRepeatDelayUsesHold(t *testing.T) {
	tr := NewInputTracker(200*time.Millisecond, 50*time.Millisecond)

	tr.Key(core.ActionMoveUp, t0)
	tr.Frame(t0)
	assert.True(t, tr.Frame(t0.Add(150*time.Millisecond)).Down(core.ActionMoveUp))
}

func TestInputTrackerZeroHold(t *testing.T) {
	tr := NewInputTracker(0, 0)

	tr.Key(core.ActionMoveLeft, t0)
	in := tr.Frame(t0.Add(time.Millisecond))
	assert.True(t, in.Down(core.ActionMoveLeft), "an event since the last frame always counts")

	in = tr.Frame(t0.Add(2 * time.Millisecond))
	assert.False(t, in.Down(core.ActionMoveLeft))
}

func TestInputTrackerActionsAreIndependent(t *testing.T) {
	tr := NewInputTracker(100*time.Millisecond, 0)
	tr.Key(core.ActionMoveUp, t0)
	tr.Key(core.ActionMoveRight, t0)
	tr.Key(core.ActionCount, t0)

	in := tr.Frame(t0)
	assert.True(t, in.Down(core.ActionMoveUp))
	assert.True(t, in.Down(core.ActionMoveRight))
	assert.False(t, in.Down(core.ActionMoveDown))
	assert.False(t, in.Down(core.ActionAttack))
}

func TestInputTrackerPointer(t *testing.T) {
	tr := NewInputTracker(100*time.Millisecond, 0)

	tr.PointerMove(core.V(10, 20))
	in := tr.Frame(t0)
	assert.Equal(t, core.V(10, 20), in.Pointer)
	assert.False(t, in.PointerDown)

	// Button level persists across frames until released
	tr.PointerButton(core.V(30, 40), true)
	for i := 0; i < 3; i++ {
		in = tr.Frame(t0.Add(time.Duration(i) * time.Second))
		assert.True(t, in.PointerDown)
		assert.Equal(t, core.V(30, 40), in.Pointer)
	}

	tr.PointerButton(core.V(50, 60), false)
	in = tr.Frame(t0)
	assert.False(t, in.PointerDown)
	assert.Equal(t, core.V(50, 60), in.Pointer)
}

func TestInputTrackerQuickClick(t *testing.T) {
	tr := NewInputTracker(100*time.Millisecond, 0)

	// Press and release both land between two frames
	tr.PointerButton(core.V(1, 2), true)
	tr.PointerButton(core.V(1, 2), false)

	in := tr.Frame(t0)
	assert.True(t, in.PointerDown, "the click still counts for one frame")
	assert.False(t, tr.Frame(t0).PointerDown)
}

func TestInputTrackerToggleIsOneShot(t *testing.T) {
	tr := NewInputTracker(100*time.Millisecond, 0)
	tr.ToggleDebug()

	assert.True(t, tr.Frame(t0).ToggleDebug)
	assert.False(t, tr.Frame(t0).ToggleDebug)
}
