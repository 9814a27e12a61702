package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := Decode(defaultShooterYAML, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadCustomYAMLOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "mine.yaml", `
player:
  speed: 10
controls:
  attack: [space]
`)

	cfg, src, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, p, src.Path)
	assert.Equal(t, FormatYAML, src.Format)

	assert.Equal(t, 10.0, cfg.Player.Speed)
	assert.Equal(t, []string{"space"}, cfg.Controls.Attack)
	// Untouched fields keep defaults
	assert.Equal(t, Default().Arena, cfg.Arena)
	assert.Equal(t, Default().Player.Sprite, cfg.Player.Sprite)
}

func TestLoadCustomTOML(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "mine.toml", `
[arena]
width = 400
height = 300

[bullet]
speed = 12.5
`)

	cfg, src, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, src.Format)
	assert.Equal(t, 400.0, cfg.Arena.Width)
	assert.Equal(t, 300.0, cfg.Arena.Height)
	assert.Equal(t, 12.5, cfg.Bullet.Speed)
	assert.Equal(t, Default().Player, cfg.Player)
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, dir, "bad.yaml", "arena: [\n")
	_, _, err = Load(bad)
	require.Error(t, err)

	invalid := writeFile(t, dir, "invalid.yaml", "arena:\n  width: -1\n")
	_, _, err = Load(invalid)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoadFirstSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "shooter.yaml", "timing:\n  update_rate: 0\n")
	good := writeFile(t, dir, "shooter.toml", "[aim]\nradius = 5\n")

	cfg, src, err := loadFirst([]string{filepath.Join(dir, "nope.yaml"), broken, good})
	require.NoError(t, err)
	assert.Equal(t, good, src.Path)
	assert.Equal(t, 5.0, cfg.Aim.Radius)
}

func TestLoadFirstFallsBackToEmbedded(t *testing.T) {
	cfg, src, err := loadFirst(nil)
	require.NoError(t, err)
	assert.Empty(t, src.Path)
	assert.Equal(t, "embedded default", src.String())
	assert.Equal(t, Default(), cfg)
}

func TestSearchPathsOrder(t *testing.T) {
	paths := SearchPaths()
	require.NotEmpty(t, paths)

	last := paths[len(paths)-1]
	assert.Equal(t, filepath.Join("configs", "shooter.toml"), last)
	assert.Equal(t, "shooter.yaml", filepath.Base(paths[0]))
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.toml", FormatTOML},
		{"A.TOML", FormatTOML},
		{"a.yaml", FormatYAML},
		{"a.yml", FormatYAML},
		{"noext", FormatYAML},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFor(tt.path), tt.path)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(f), func(t *testing.T) {
			want := Default()
			want.Player.Speed = 3.5

			data, err := Encode(want, f)
			require.NoError(t, err)

			got, err := Decode(data, f)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero arena", func(c *GameConfig) { c.Arena.Width = 0 }},
		{"zero update rate", func(c *GameConfig) { c.Timing.UpdateRate = 0 }},
		{"negative frame cap", func(c *GameConfig) { c.Timing.MaxFrameSeconds = -1 }},
		{"negative speed", func(c *GameConfig) { c.Player.Speed = -1 }},
		{"no sprite", func(c *GameConfig) { c.Bullet.Sprite = "" }},
		{"player too big", func(c *GameConfig) { c.Player.Width = c.Arena.Width + 1 }},
		{"too many keys", func(c *GameConfig) { c.Controls.Dash = []string{"a", "b", "c"} }},
		{"negative hold", func(c *GameConfig) { c.Input.HoldMS = -5 }},
		{"negative repeat delay", func(c *GameConfig) { c.Input.RepeatDelayMS = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestControlsForAction(t *testing.T) {
	c := Default().Controls
	for _, a := range core.Actions() {
		assert.NotEmpty(t, c.ForAction(a), a.String())
	}
	assert.Nil(t, c.ForAction(core.ActionCount))
}

func TestDurations(t *testing.T) {
	cfg := Default()
	assert.Equal(t, int64(250), cfg.Timing.MaxFrame().Milliseconds())
	assert.Equal(t, int64(150), cfg.Input.Hold().Milliseconds())
	assert.Equal(t, int64(600), cfg.Input.RepeatDelay().Milliseconds())
}
