// Package config provides YAML/TOML-based configuration loading for the shooter.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid")

// MaxBindingsPerAction is how many alternate keys an action may have.
const MaxBindingsPerAction = 2

// GameConfig contains all configuration for the shooter.
type GameConfig struct {
	Arena    ArenaConfig    `yaml:"arena" toml:"arena"`
	Timing   TimingConfig   `yaml:"timing" toml:"timing"`
	Player   PlayerConfig   `yaml:"player" toml:"player"`
	Bullet   BulletConfig   `yaml:"bullet" toml:"bullet"`
	Aim      AimConfig      `yaml:"aim" toml:"aim"`
	Debug    DebugConfig    `yaml:"debug" toml:"debug"`
	Input    InputConfig    `yaml:"input" toml:"input"`
	Controls ControlsConfig `yaml:"controls" toml:"controls"`
}

// ArenaConfig defines the logical playfield size. Origin is top-left.
type ArenaConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// TimingConfig defines how wall time maps to simulation time.
type TimingConfig struct {
	UpdateRate      float64 `yaml:"update_rate" toml:"update_rate"`             // logical units per second
	MaxFrameSeconds float64 `yaml:"max_frame_seconds" toml:"max_frame_seconds"` // 0 disables the cap
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Speed  float64 `yaml:"speed" toml:"speed"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Ammo   uint32  `yaml:"ammo" toml:"ammo"`
	Sprite string  `yaml:"sprite" toml:"sprite"`
}

// BulletConfig defines the player's bullets.
type BulletConfig struct {
	Speed  float64 `yaml:"speed" toml:"speed"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Sprite string  `yaml:"sprite" toml:"sprite"`
}

// AimConfig defines the aim marker.
type AimConfig struct {
	Radius float64 `yaml:"radius" toml:"radius"`
}

// DebugConfig defines the debug overlay.
type DebugConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Notice  string `yaml:"notice" toml:"notice"` // first overlay line, empty hides it
}

// InputConfig defines how terminal key events become held actions.
type InputConfig struct {
	// HoldMS is how long a key counts as held after its last press or repeat.
	// Terminals do not report key release.
	HoldMS int `yaml:"hold_ms" toml:"hold_ms"`
	// RepeatDelayMS is the hold window after a fresh press, until the first
	// auto-repeat arrives. It must outlast the OS repeat delay.
	RepeatDelayMS int `yaml:"repeat_delay_ms" toml:"repeat_delay_ms"`
}

// ControlsConfig lists up to two alternate keys per action.
// Key names follow Bubble Tea's KeyMsg.String() ("up", "w", "alt+f12").
type ControlsConfig struct {
	MoveUp      []string `yaml:"move_up" toml:"move_up"`
	MoveLeft    []string `yaml:"move_left" toml:"move_left"`
	MoveDown    []string `yaml:"move_down" toml:"move_down"`
	MoveRight   []string `yaml:"move_right" toml:"move_right"`
	Dash        []string `yaml:"dash" toml:"dash"`
	Attack      []string `yaml:"attack" toml:"attack"`
	DebugToggle []string `yaml:"debug_toggle" toml:"debug_toggle"`
}

// ForAction returns the keys bound to an action.
func (c ControlsConfig) ForAction(a core.Action) []string {
	switch a {
	case core.ActionMoveUp:
		return c.MoveUp
	case core.ActionMoveLeft:
		return c.MoveLeft
	case core.ActionMoveDown:
		return c.MoveDown
	case core.ActionMoveRight:
		return c.MoveRight
	case core.ActionDash:
		return c.Dash
	case core.ActionAttack:
		return c.Attack
	default:
		return nil
	}
}

// MaxFrame returns the per-frame elapsed time cap.
func (t TimingConfig) MaxFrame() time.Duration {
	return time.Duration(t.MaxFrameSeconds * float64(time.Second))
}

// Hold returns the key hold window.
func (i InputConfig) Hold() time.Duration {
	return time.Duration(i.HoldMS) * time.Millisecond
}

// RepeatDelay returns the hold window used before the first auto-repeat.
func (i InputConfig) RepeatDelay() time.Duration {
	return time.Duration(i.RepeatDelayMS) * time.Millisecond
}

// Validate checks that the configuration can drive a simulation.
func (c GameConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	positive("timing.update_rate", c.Timing.UpdateRate)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("bullet.width", c.Bullet.Width)
	positive("bullet.height", c.Bullet.Height)

	if c.Timing.MaxFrameSeconds < 0 {
		errs = append(errs, fmt.Errorf("timing.max_frame_seconds must not be negative"))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player.speed must not be negative"))
	}
	if c.Bullet.Speed < 0 {
		errs = append(errs, fmt.Errorf("bullet.speed must not be negative"))
	}
	if c.Aim.Radius < 0 {
		errs = append(errs, fmt.Errorf("aim.radius must not be negative"))
	}
	if c.Input.HoldMS < 0 {
		errs = append(errs, fmt.Errorf("input.hold_ms must not be negative"))
	}
	if c.Input.RepeatDelayMS < 0 {
		errs = append(errs, fmt.Errorf("input.repeat_delay_ms must not be negative"))
	}
	if c.Player.Sprite == "" {
		errs = append(errs, fmt.Errorf("player.sprite is required"))
	}
	if c.Bullet.Sprite == "" {
		errs = append(errs, fmt.Errorf("bullet.sprite is required"))
	}
	if c.Player.Width > c.Arena.Width || c.Player.Height > c.Arena.Height {
		errs = append(errs, fmt.Errorf("player does not fit in the arena"))
	}

	for _, a := range core.Actions() {
		if keys := c.Controls.ForAction(a); len(keys) > MaxBindingsPerAction {
			errs = append(errs, fmt.Errorf("controls for %v: at most %d keys, got %d", a, MaxBindingsPerAction, len(keys)))
		}
	}
	if len(c.Controls.DebugToggle) > MaxBindingsPerAction {
		errs = append(errs, fmt.Errorf("controls.debug_toggle: at most %d keys", MaxBindingsPerAction))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
