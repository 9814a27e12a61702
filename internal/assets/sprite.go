// Package assets loads the sprites the arena draws.
// Sprites are small glyph grids described in YAML; each one becomes a
// read-only Texture shared by every entity that uses it.
package assets

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

var (
	// ErrUnknownSprite is returned when a sprite name has no file or was not loaded.
	ErrUnknownSprite = errors.New("assets: unknown sprite")
	// ErrInvalidSprite is returned when a sprite file is malformed.
	ErrInvalidSprite = errors.New("assets: invalid sprite")
)

// spriteFile is the on-disk sprite description.
type spriteFile struct {
	Name    string            `yaml:"name"`
	Width   float64           `yaml:"width"`  // arena units
	Height  float64           `yaml:"height"` // arena units
	Color   string            `yaml:"color"`
	Rows    []string          `yaml:"rows"`
	Palette map[string]string `yaml:"palette"`
}

// Texture is a parsed sprite. It implements core.Texture.
type Texture struct {
	id     uint64
	name   string
	width  float64
	height float64
	glyphs [][]rune
	colors [][]core.Color
}

// ID returns a fingerprint of the sprite name and source bytes.
func (t *Texture) ID() uint64 { return t.id }

// Name returns the logical asset name.
func (t *Texture) Name() string { return t.name }

// Width returns the texture width in arena units.
func (t *Texture) Width() float64 { return t.width }

// Height returns the texture height in arena units.
func (t *Texture) Height() float64 { return t.height }

// Cols returns the glyph grid width.
func (t *Texture) Cols() int { return len(t.glyphs[0]) }

// Rows returns the glyph grid height.
func (t *Texture) Rows() int { return len(t.glyphs) }

// Sample returns the glyph at normalized coordinates. Spaces are transparent.
func (t *Texture) Sample(u, v float64) (rune, core.Color, bool) {
	row := core.Clamp(int(v*float64(t.Rows())), 0, t.Rows()-1)
	col := core.Clamp(int(u*float64(t.Cols())), 0, t.Cols()-1)
	r := t.glyphs[row][col]
	if r == ' ' {
		return 0, core.ColorDefault, false
	}
	return r, t.colors[row][col], true
}

// parseSprite decodes and validates a sprite file. name is the expected
// logical name (the file stem).
func parseSprite(name string, data []byte) (*Texture, error) {
	var sf spriteFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSprite, name, err)
	}

	if sf.Name != "" && sf.Name != name {
		return nil, fmt.Errorf("%w %q: declares name %q", ErrInvalidSprite, name, sf.Name)
	}
	if sf.Width <= 0 || sf.Height <= 0 {
		return nil, fmt.Errorf("%w %q: size must be positive, got %vx%v", ErrInvalidSprite, name, sf.Width, sf.Height)
	}
	if len(sf.Rows) == 0 {
		return nil, fmt.Errorf("%w %q: no rows", ErrInvalidSprite, name)
	}

	base := core.ColorDefault
	if sf.Color != "" {
		c, ok := core.ParseColor(sf.Color)
		if !ok {
			return nil, fmt.Errorf("%w %q: unknown color %q", ErrInvalidSprite, name, sf.Color)
		}
		base = c
	}

	palette := make(map[rune]core.Color, len(sf.Palette))
	for k, v := range sf.Palette {
		if utf8.RuneCountInString(k) != 1 {
			return nil, fmt.Errorf("%w %q: palette key %q must be one character", ErrInvalidSprite, name, k)
		}
		c, ok := core.ParseColor(v)
		if !ok {
			return nil, fmt.Errorf("%w %q: unknown color %q", ErrInvalidSprite, name, v)
		}
		r, _ := utf8.DecodeRuneInString(k)
		palette[r] = c
	}

	cols := utf8.RuneCountInString(sf.Rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w %q: empty row", ErrInvalidSprite, name)
	}

	tex := &Texture{
		id:     fingerprint(name, data),
		name:   name,
		width:  sf.Width,
		height: sf.Height,
		glyphs: make([][]rune, len(sf.Rows)),
		colors: make([][]core.Color, len(sf.Rows)),
	}
	for i, row := range sf.Rows {
		runes := []rune(row)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w %q: row %d has %d glyphs, expected %d", ErrInvalidSprite, name, i, len(runes), cols)
		}
		tex.glyphs[i] = runes
		tex.colors[i] = make([]core.Color, cols)
		for j, r := range runes {
			if c, ok := palette[r]; ok {
				tex.colors[i][j] = c
			} else {
				tex.colors[i][j] = base
			}
		}
	}

	return tex, nil
}

func fingerprint(name string, data []byte) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(name)
	_, _ = d.Write([]byte{0})
	_, _ = d.Write(data)
	return d.Sum64()
}
