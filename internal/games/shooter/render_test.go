package shooter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/entity"
)

func TestRenderOrderAndPlacement(t *testing.T) {
	s := newTestState()
	s.Player().BBox = core.NewRect(100.7, 200.2, 32, 32)
	s.Entities().Insert(entity.Entity{
		BBox:     core.NewRect(10, 10, 30, 30),
		Texture:  testBulletTex,
		Rotation: 1.5,
		Flags:    entity.Player | entity.Bullet,
	})
	s.aim = core.V(50, 60)

	var r recorder
	Render(s, &r)

	require.NotEmpty(t, r.calls)
	assert.Equal(t, drawCall{op: "clear", color: BackgroundColor}, r.calls[0])
	assert.Equal(t, drawCall{op: "circle", x: 50, y: 60, rot: 20, color: AimColor}, r.calls[1])
	assert.Zero(t, r.presented, "Render must not present")

	textures := r.ops("texture")
	require.Len(t, textures, 2)

	byTex := map[core.Texture]drawCall{}
	for _, c := range textures {
		byTex[c.tex] = c
	}

	// Player: center (116.7, 216.2) minus half texture (16, 16), floored
	p := byTex[testPlayerTex]
	assert.Equal(t, 100.0, p.x)
	assert.Equal(t, 200.0, p.y)
	assert.Equal(t, 0.0, p.rot)

	// Bullet: center (25, 25) minus (6, 12)
	b := byTex[testBulletTex]
	assert.Equal(t, 19.0, b.x)
	assert.Equal(t, 13.0, b.y)
	assert.Equal(t, 1.5, b.rot)
}

func TestRenderDebugOverlay(t *testing.T) {
	s := newTestState()
	s.Debug().Set(DebugEntities, "Entities: %d", 1)
	s.Debug().Set(DebugTemp, "   ")

	var r recorder
	Render(s, &r)

	rects := r.ops("rect")
	require.Len(t, rects, 1)
	assert.Equal(t, s.Player().BBox, rects[0].r)
	assert.Equal(t, HitboxColor, rects[0].color)

	texts := r.ops("text")
	require.Len(t, texts, 3)
	assert.Equal(t, drawCall{op: "text", x: 0, y: 0, text: "Press Alt+F12 to exit debug mode", color: NoticeColor}, texts[0])
	assert.Equal(t, drawCall{op: "text", x: 0, y: 25, text: "Fps: 0", color: DebugTextColor}, texts[1])
	assert.Equal(t, drawCall{op: "text", x: 0, y: 50, text: "Entities: 1", color: DebugTextColor}, texts[2])

	// Overlay text goes on top of the scene
	last := r.calls[len(r.calls)-1]
	assert.Equal(t, "text", last.op)
}

func TestRenderWithoutDebug(t *testing.T) {
	s := newTestState()
	s.SetDebugMode(false)

	var r recorder
	Render(s, &r)

	assert.Empty(t, r.ops("rect"))
	assert.Empty(t, r.ops("text"))
	assert.Len(t, r.ops("circle"), 1, "aim marker is always drawn")
	assert.Len(t, r.ops("texture"), 1)
}

func TestRenderSkipsMissingTexture(t *testing.T) {
	s := NewState(newTestState().Config(), Textures{})

	var r recorder
	Render(s, &r)

	assert.Empty(t, r.ops("texture"))
	assert.Len(t, r.ops("rect"), 1)
}

func TestDebugTableLines(t *testing.T) {
	var d DebugTable
	d.Set(DebugMoving, "moving")
	d.Set(DebugModeNotice, "notice")
	d.Set(DebugFps, "")
	d.Set(DebugInfo(99), "ignored")

	var keys []DebugInfo
	var lines []string
	for k, line := range d.Lines() {
		keys = append(keys, k)
		lines = append(lines, line)
	}
	assert.Equal(t, []DebugInfo{DebugModeNotice, DebugMoving}, keys)
	assert.Equal(t, []string{"notice", "moving"}, lines)

	d.Clear(DebugModeNotice)
	assert.Empty(t, d.Get(DebugModeNotice))
	assert.Empty(t, d.Get(DebugInfo(-1)))

	assert.Equal(t, "PapaTicker", DebugPapaTicker.String())
	assert.Equal(t, "DebugInfo(42)", DebugInfo(42).String())
}
