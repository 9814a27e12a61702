// Package shooter implements the arena shooter: a player ship that moves
// inside a fixed arena and fires bullets toward an aim point.
//
// The package holds game logic only. The platform supplies input frames,
// a clock and a drawing surface.
package shooter

import (
	"context"
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/assets"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/entity"
)

// Textures are the sprites the game draws.
type Textures struct {
	Player core.Texture
	Bullet core.Texture
}

// LoadTextures loads the sprites named in cfg. Any missing sprite is an error.
func LoadTextures(ctx context.Context, p *assets.Provider, cfg config.GameConfig) (Textures, error) {
	if err := p.Load(ctx, cfg.Player.Sprite, cfg.Bullet.Sprite); err != nil {
		return Textures{}, err
	}
	player, err := p.Texture(cfg.Player.Sprite)
	if err != nil {
		return Textures{}, err
	}
	bullet, err := p.Texture(cfg.Bullet.Sprite)
	if err != nil {
		return Textures{}, err
	}
	return Textures{Player: player, Bullet: bullet}, nil
}

// State is everything one running game owns.
type State struct {
	cfg      config.GameConfig
	textures Textures
	entities *entity.Store
	player   entity.Handle

	debug     DebugTable
	debugMode bool

	mouse core.Vec2
	aim   core.Vec2
	step  core.Vec2 // last player displacement
}

// NewState creates a game with the player at the bottom center of the arena.
func NewState(cfg config.GameConfig, textures Textures) *State {
	s := &State{
		cfg:       cfg,
		textures:  textures,
		entities:  entity.NewStore(),
		debugMode: cfg.Debug.Enabled,
	}

	s.player = s.entities.Insert(entity.Entity{
		BBox: core.NewRect(
			cfg.Arena.Width/2,
			cfg.Arena.Height-cfg.Player.Height,
			cfg.Player.Width,
			cfg.Player.Height,
		),
		Texture: textures.Player,
		Speed:   cfg.Player.Speed,
		Arsenal: entity.Arsenal{
			BulletShooter: &entity.Weapon{Ammo: cfg.Player.Ammo},
		},
		Flags: entity.Player,
	})

	s.aim = s.Player().Center()
	s.mouse = s.aim
	if cfg.Debug.Notice != "" {
		s.debug.Set(DebugModeNotice, "%s", cfg.Debug.Notice)
	}
	s.debug.Set(DebugFps, "Fps: 0")
	return s
}

// Player returns the player entity. The player exists for the whole life of
// the game, so a missing player is a bug and panics.
func (s *State) Player() *entity.Entity {
	p, ok := s.entities.Get(s.player)
	if !ok {
		panic(fmt.Sprintf("shooter: player %v missing from store", s.player))
	}
	return p
}

// PlayerHandle returns the store handle of the player.
func (s *State) PlayerHandle() entity.Handle {
	return s.player
}

// Entities returns the entity store.
func (s *State) Entities() *entity.Store {
	return s.entities
}

// Config returns the game configuration.
func (s *State) Config() config.GameConfig {
	return s.cfg
}

// Debug returns the debug overlay table.
func (s *State) Debug() *DebugTable {
	return &s.debug
}

// DebugMode reports whether the debug overlay is shown.
func (s *State) DebugMode() bool {
	return s.debugMode
}

// SetDebugMode shows or hides the debug overlay.
func (s *State) SetDebugMode(on bool) {
	s.debugMode = on
}

// Aim returns the current aim point in arena coordinates.
func (s *State) Aim() core.Vec2 {
	return s.aim
}

// LastStep returns the player displacement applied by the last Simulate.
func (s *State) LastStep() core.Vec2 {
	return s.step
}

// MouseToAim maps the pointer position to an aim point.
// It is the identity for now; aim assist or stick input would plug in here.
func MouseToAim(player *entity.Entity, mouse core.Vec2) core.Vec2 {
	return mouse
}
