package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultShooterYAML))
	copy(out, defaultShooterYAML)
	return out
}

// Default returns the hardcoded default configuration.
// It mirrors defaults/shooter.yaml and is used when the embedded file cannot be parsed.
func Default() GameConfig {
	return GameConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Timing: TimingConfig{
			UpdateRate:      60,
			MaxFrameSeconds: 0.25,
		},
		Player: PlayerConfig{
			Speed:  6,
			Width:  32,
			Height: 32,
			Ammo:   9000,
			Sprite: "ship_L",
		},
		Bullet: BulletConfig{
			Speed:  8,
			Width:  30,
			Height: 30,
			Sprite: "ship_B",
		},
		Aim: AimConfig{
			Radius: 20,
		},
		Debug: DebugConfig{
			Enabled: true,
			Notice:  "Press Alt+F12 to exit debug mode",
		},
		Input: InputConfig{
			HoldMS:        150,
			RepeatDelayMS: 600,
		},
		Controls: ControlsConfig{
			MoveUp:      []string{"up", "w"},
			MoveLeft:    []string{"left", "a"},
			MoveDown:    []string{"down", "s"},
			MoveRight:   []string{"right", "d"},
			Dash:        []string{"z", "h"},
			Attack:      []string{"x", "j"},
			DebugToggle: []string{"alt+f12"},
		},
	}
}
