package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// fileNames are tried in order inside each search directory.
var fileNames = []string{"shooter.yaml", "shooter.yml", "shooter.toml"}

// Source describes where a loaded configuration came from.
type Source struct {
	Path   string // empty for the embedded default
	Format Format
}

func (s Source) String() string {
	if s.Path == "" {
		return "embedded default"
	}
	return s.Path
}

// FormatFor picks a format from a file extension. Unknown extensions are YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load loads the shooter configuration.
// Search order: customPath -> ~/.shooter/configs/shooter.{yaml,yml,toml} ->
// ./configs/shooter.{yaml,yml,toml} -> embedded default.
//
// A custom path that cannot be read, parsed or validated is an error.
// Broken files in the search directories are skipped.
func Load(customPath string) (GameConfig, Source, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, Source{}, err
		}
		return cfg, Source{Path: customPath, Format: FormatFor(customPath)}, nil
	}
	return loadFirst(SearchPaths())
}

// SearchPaths returns the candidate config files in priority order.
func SearchPaths() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".shooter", "configs"))
	}
	dirs = append(dirs, "configs")

	paths := make([]string, 0, len(dirs)*len(fileNames))
	for _, dir := range dirs {
		for _, name := range fileNames {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths
}

func loadFirst(paths []string) (GameConfig, Source, error) {
	for _, p := range paths {
		if cfg, err := LoadFile(p); err == nil {
			return cfg, Source{Path: p, Format: FormatFor(p)}, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Decode(defaultShooterYAML, FormatYAML)
	if err != nil {
		cfg = Default() // Fallback to hardcoded if embed fails
	}
	return cfg, Source{Format: FormatYAML}, nil
}

// LoadFile reads, decodes and validates one config file.
func LoadFile(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Decode(data, FormatFor(path))
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data over the defaults and validates the result.
// Fields missing from data keep their default values.
func Decode(data []byte, format Format) (GameConfig, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unknown config format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Encode writes cfg in the given format.
func Encode(cfg GameConfig, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("unknown config format " + string(format))
	}
	return buf.Bytes(), nil
}
