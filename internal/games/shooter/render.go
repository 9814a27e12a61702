package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Render colors
const (
	BackgroundColor = core.ColorLightGray
	AimColor        = core.ColorBlack
	HitboxColor     = core.ColorHitbox
	NoticeColor     = core.ColorRed
	DebugTextColor  = core.ColorGray
)

// Render draws the current state onto dst. It does not present the frame.
func Render(s *State, dst core.Surface) {
	dst.Clear(BackgroundColor)

	dst.DrawCircleOutline(s.aim.X, s.aim.Y, s.cfg.Aim.Radius, AimColor)

	for e := range s.entities.Values() {
		if e.Texture != nil {
			// Centered on the box, snapped to whole units
			half := core.V(e.Texture.Width()/2, e.Texture.Height()/2)
			at := e.Center().Sub(half).Floor()
			dst.DrawTexture(e.Texture, at.X, at.Y, e.Rotation)
		}
		if s.debugMode {
			dst.DrawRect(e.BBox, HitboxColor)
		}
	}

	if !s.debugMode {
		return
	}

	line := 0
	for k, text := range s.debug.Lines() {
		color := DebugTextColor
		if k == DebugModeNotice {
			color = NoticeColor
		}
		dst.DrawText(text, 0, dst.LineHeight()*float64(line), color)
		line++
	}
}
