package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/entity"
)

// Simulate advances the game by dt logical time units.
//
// Order: aim, player movement, arena clamp, firing, then one retain pass that
// ticks every entity and drops the ones that left the arena.
func Simulate(s *State, in core.InputFrame, dt float64) {
	w, h := s.cfg.Arena.Width, s.cfg.Arena.Height

	player := s.Player()
	s.mouse = in.Pointer
	s.aim = MouseToAim(player, s.mouse)

	// Later keys win on each axis: right over left, down over up.
	var dir core.Vec2
	if in.Down(core.ActionMoveLeft) {
		dir.X = -1
	}
	if in.Down(core.ActionMoveRight) {
		dir.X = 1
	}
	if in.Down(core.ActionMoveUp) {
		dir.Y = -1
	}
	if in.Down(core.ActionMoveDown) {
		dir.Y = 1
	}

	s.step = core.Vec2{}
	if unit, ok := dir.Normalize(); ok {
		s.step = unit.Scale(player.Speed * dt)
		player.BBox = player.BBox.Offset(s.step)
	}
	player.BBox = player.BBox.ClampInside(w, h)

	s.debug.Set(DebugPlayer,
		"Player { x: %.2f, y: %.2f, w: %g, h: %g, speed: %g, step: [%.2f, %.2f] }",
		player.BBox.X, player.BBox.Y, player.BBox.W, player.BBox.H, player.Speed, s.step.X, s.step.Y,
	)
	s.debug.Set(DebugMoving, "Moving: %t", !s.step.IsZero())

	// Keyboard fire is edge triggered, the pointer button fires while held.
	if in.Pressed(core.ActionAttack) || in.PointerDown {
		s.spawnBullet(player)
	}

	s.entities.Retain(func(_ entity.Handle, e *entity.Entity) bool {
		tick(e, dt)
		if e.ShouldDespawnOffScreen() {
			return !e.BBox.FullyOutside(w, h)
		}
		return true
	})

	s.debug.Set(DebugEntities, "Entities: %d", s.entities.Len())
	s.debug.Set(DebugMousePosition, "Mouse: [%.2f, %.2f]", s.mouse.X, s.mouse.Y)
	s.debug.Set(DebugAimPosition, "Aim: [%.2f, %.2f]", s.aim.X, s.aim.Y)
}

// spawnBullet inserts a player bullet centered on the player, heading toward
// the aim point. player must not be used after this call.
func (s *State) spawnBullet(player *entity.Entity) {
	bw, bh := s.cfg.Bullet.Width, s.cfg.Bullet.Height
	center := player.Center()

	s.entities.Insert(entity.Entity{
		BBox:     core.NewRect(center.X-bw/2, center.Y-bh/2, bw, bh),
		Texture:  s.textures.Bullet,
		Speed:    s.cfg.Bullet.Speed,
		Rotation: core.HeadingTo(center, s.aim),
		Flags:    entity.Player | entity.Bullet | entity.DespawnOffScreen,
	})
}

// tick applies the per-role update to one entity.
func tick(e *entity.Entity, dt float64) {
	switch {
	case e.IsBullet():
		e.BBox = e.BBox.Offset(core.Heading(e.Rotation).Scale(e.Speed * dt))
	case e.IsEnemy():
		// Enemy weapon cooldown goes here.
	case e.IsPlayer():
		// Player weapon cooldown goes here.
	}
}
