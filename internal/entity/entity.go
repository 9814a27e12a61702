package entity

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Weapon is a single weapon slot.
type Weapon struct {
	Ammo uint32
}

// Arsenal holds the weapons an entity may carry.
// Only one weapon may fire at a time.
type Arsenal struct {
	BulletShooter *Weapon
}

// Entity is anything simulated and drawn: the player, enemies, bullets.
type Entity struct {
	BBox           core.Rect    // position and hitbox, also the render anchor
	Texture        core.Texture // shared, owned by the asset provider
	Speed          float64      // distance per logical time unit
	Arsenal        Arsenal
	WeaponCooldown float64 // not ticked yet
	Rotation       float64 // radians, 0 = up
	Flags          Flags
}

// Pos returns the top-left corner of the bounding box.
func (e *Entity) Pos() core.Vec2 {
	return e.BBox.Pos()
}

// Center returns the center of the bounding box.
func (e *Entity) Center() core.Vec2 {
	return e.BBox.Center()
}

// IsBullet reports whether the entity is a projectile of any owner.
func (e *Entity) IsBullet() bool {
	return e.Flags.Has(Bullet)
}

// IsPlayerBullet reports whether the entity is a projectile fired by the player.
func (e *Entity) IsPlayerBullet() bool {
	return e.Flags.Has(Player | Bullet)
}

// IsEnemyBullet reports whether the entity is a projectile fired by an enemy.
func (e *Entity) IsEnemyBullet() bool {
	return e.Flags.Has(Enemy | Bullet)
}

// IsPlayer reports whether the entity is the player ship itself.
// A player-owned bullet is not the player.
func (e *Entity) IsPlayer() bool {
	return e.Flags.Has(Player) && !e.Flags.Has(Bullet)
}

// IsEnemy reports whether the entity is an enemy ship.
func (e *Entity) IsEnemy() bool {
	return e.Flags.Has(Enemy) && !e.Flags.Has(Bullet)
}

// ShouldDespawnOffScreen reports whether leaving the arena removes the entity.
func (e *Entity) ShouldDespawnOffScreen() bool {
	return e.Flags.Has(DespawnOffScreen)
}
