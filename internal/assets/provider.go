package assets

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

//go:embed data/sprites/*.yaml
var embedded embed.FS

const spriteExt = ".yaml"

// Embedded returns the sprites compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data/sprites")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return sub
}

// Provider loads sprites by logical name from a file system and hands out
// shared Texture handles. Loading happens once at startup.
type Provider struct {
	fsys fs.FS

	mu       sync.RWMutex
	textures map[string]*Texture
}

// NewProvider creates a provider reading "<name>.yaml" files from the root of fsys.
func NewProvider(fsys fs.FS) *Provider {
	return &Provider{
		fsys:     fsys,
		textures: make(map[string]*Texture),
	}
}

// Available lists the sprite names present in the file system, sorted.
func (p *Provider) Available() ([]string, error) {
	matches, err := fs.Glob(p.fsys, "*"+spriteExt)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot list sprites: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), spriteExt))
	}
	sort.Strings(names)
	return names, nil
}

// Load parses the named sprites concurrently. Names already loaded are
// skipped. Any failure aborts the load and is returned.
func (p *Provider) Load(ctx context.Context, names ...string) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, name := range names {
		p.mu.RLock()
		_, done := p.textures[name]
		p.mu.RUnlock()
		if done {
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tex, err := p.read(name)
			if err != nil {
				return err
			}
			p.mu.Lock()
			if _, exists := p.textures[name]; !exists {
				p.textures[name] = tex
			}
			p.mu.Unlock()
			return nil
		})
	}

	return g.Wait()
}

func (p *Provider) read(name string) (*Texture, error) {
	if name == "" || strings.ContainsAny(name, "/\\") {
		return nil, fmt.Errorf("%w %q", ErrUnknownSprite, name)
	}
	data, err := fs.ReadFile(p.fsys, name+spriteExt)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w %q", ErrUnknownSprite, name)
		}
		return nil, fmt.Errorf("assets: cannot read sprite %q: %w", name, err)
	}
	return parseSprite(name, data)
}

// Texture returns the loaded texture for name.
func (p *Provider) Texture(name string) (*Texture, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	tex, ok := p.textures[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (not loaded)", ErrUnknownSprite, name)
	}
	return tex, nil
}

// Len returns the number of loaded textures.
func (p *Provider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.textures)
}
