package core

import "time"

// fpsSmoothing is the weight of the newest sample in the FPS moving average.
const fpsSmoothing = 0.1

// FrameTimer turns monotonic clock samples into a logical delta time.
// dt = elapsed wall seconds * unit, so with unit 60 one dt equals one frame
// at 60Hz.
type FrameTimer struct {
	unit     float64
	maxFrame time.Duration
	last     time.Time
	started  bool
	fps      float64
}

// NewFrameTimer creates a timer. maxFrame caps a single frame's elapsed time
// (after a stall or debugger pause); zero disables the cap.
func NewFrameTimer(unit float64, maxFrame time.Duration) *FrameTimer {
	return &FrameTimer{unit: unit, maxFrame: maxFrame}
}

// Start sets the reference sample without producing a delta.
func (t *FrameTimer) Start(now time.Time) {
	t.last = now
	t.started = true
}

// Tick samples the clock and returns the delta time since the previous sample.
// The first tick after construction returns zero. The result is never negative.
func (t *FrameTimer) Tick(now time.Time) float64 {
	if !t.started {
		t.Start(now)
		return 0
	}

	elapsed := now.Sub(t.last)
	t.last = now

	if elapsed < 0 {
		elapsed = 0
	}
	if t.maxFrame > 0 && elapsed > t.maxFrame {
		elapsed = t.maxFrame
	}

	if secs := elapsed.Seconds(); secs > 0 {
		sample := 1 / secs
		if t.fps == 0 {
			t.fps = sample
		} else {
			t.fps += (sample - t.fps) * fpsSmoothing
		}
	}

	return elapsed.Seconds() * t.unit
}

// FPS returns the smoothed frames per second.
func (t *FrameTimer) FPS() float64 {
	return t.fps
}
