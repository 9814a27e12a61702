package tui

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// InputTracker turns terminal key and mouse events into per-frame input.
//
// Terminals report key presses and auto-repeats but never releases, so an
// action counts as held while its last event is within the hold window.
// A fresh press gets the longer repeat delay window, since the OS waits
// before the first auto-repeat; once repeats arrive the short window applies.
type InputTracker struct {
	hold        time.Duration
	repeatDelay time.Duration

	lastSeen  [core.ActionCount]time.Time
	repeating [core.ActionCount]bool
	seen      [core.ActionCount]bool // event since the last frame
	wasDown   [core.ActionCount]bool

	pointer        core.Vec2
	pointerDown    bool
	pointerPressed bool // press since the last frame, survives a quick release
	toggle         bool
}

// NewInputTracker creates a tracker. hold is the window between auto-repeats,
// repeatDelay the window between a press and its first repeat. A repeatDelay
// shorter than hold is raised to hold.
func NewInputTracker(hold, repeatDelay time.Duration) *InputTracker {
	return &InputTracker{
		hold:        hold,
		repeatDelay: max(hold, repeatDelay),
	}
}

func (t *InputTracker) window(a core.Action) time.Duration {
	if t.repeating[a] {
		return t.hold
	}
	return t.repeatDelay
}

// heldAt reports whether the last event of a still holds the action at now.
func (t *InputTracker) heldAt(a core.Action, now time.Time) bool {
	return !t.lastSeen[a].IsZero() && now.Sub(t.lastSeen[a]) <= t.window(a)
}

// Key records a press or repeat of an action. An event while the action is
// still held is a repeat.
func (t *InputTracker) Key(a core.Action, now time.Time) {
	if !a.Valid() {
		return
	}
	t.repeating[a] = t.seen[a] || t.heldAt(a, now)
	if !t.repeating[a] {
		// Released and pressed again between frames: still a new edge.
		t.wasDown[a] = false
	}
	t.lastSeen[a] = now
	t.seen[a] = true
}

// ToggleDebug records a debug toggle for the next frame.
func (t *InputTracker) ToggleDebug() {
	t.toggle = true
}

// PointerMove records the pointer position in arena coordinates.
func (t *InputTracker) PointerMove(p core.Vec2) {
	t.pointer = p
}

// PointerButton records the primary button going down or up.
func (t *InputTracker) PointerButton(p core.Vec2, down bool) {
	t.pointer = p
	t.pointerDown = down
	if down {
		t.pointerPressed = true
	}
}

// Frame resolves the input for the frame starting at now and resets the
// per-frame events.
func (t *InputTracker) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()

	for _, a := range core.Actions() {
		down := t.seen[a] || t.heldAt(a, now)
		if down {
			in.Hold(a)
			if !t.wasDown[a] {
				in.Set(a)
			}
		}
		t.wasDown[a] = down
		t.seen[a] = false
	}

	in.Pointer = t.pointer
	in.PointerDown = t.pointerDown || t.pointerPressed
	in.ToggleDebug = t.toggle
	t.pointerPressed = false
	t.toggle = false
	return in
}
