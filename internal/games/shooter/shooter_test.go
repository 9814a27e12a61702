package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// boxTexture is a solid texture for tests.
type boxTexture struct {
	w, h float64
}

func (b boxTexture) Width() float64  { return b.w }
func (b boxTexture) Height() float64 { return b.h }
func (b boxTexture) Sample(u, v float64) (rune, core.Color, bool) {
	return '#', core.ColorWhite, true
}

type drawCall struct {
	op    string
	x, y  float64
	rot   float64
	r     core.Rect
	text  string
	color core.Color
	tex   core.Texture
}

// recorder is a Surface that records draw calls.
type recorder struct {
	calls     []drawCall
	presented int
}

func (r *recorder) Clear(bg core.Color) {
	r.calls = append(r.calls, drawCall{op: "clear", color: bg})
}

func (r *recorder) DrawTexture(tex core.Texture, x, y, rotation float64) {
	r.calls = append(r.calls, drawCall{op: "texture", x: x, y: y, rot: rotation, tex: tex})
}

func (r *recorder) DrawRect(rect core.Rect, tint core.Color) {
	r.calls = append(r.calls, drawCall{op: "rect", r: rect, color: tint})
}

func (r *recorder) DrawText(text string, x, y float64, fg core.Color) {
	r.calls = append(r.calls, drawCall{op: "text", x: x, y: y, text: text, color: fg})
}

func (r *recorder) DrawCircleOutline(cx, cy, radius float64, fg core.Color) {
	r.calls = append(r.calls, drawCall{op: "circle", x: cx, y: cy, rot: radius, color: fg})
}

func (r *recorder) LineHeight() float64 { return 25 }

func (r *recorder) Present() { r.presented++ }

func (r *recorder) ops(op string) []drawCall {
	var out []drawCall
	for _, c := range r.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

var (
	testPlayerTex = boxTexture{w: 32, h: 32}
	testBulletTex = boxTexture{w: 12, h: 24}
)

func newTestState() *State {
	return NewState(config.Default(), Textures{Player: testPlayerTex, Bullet: testBulletTex})
}
