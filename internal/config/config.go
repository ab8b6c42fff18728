// Package config reads ferrite.toml, the optional per-project settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = "ferrite.toml"

type Config struct {
	Diagnostics Diagnostics `toml:"diagnostics"`
	Parse       Parse       `toml:"parse"`
	Cache       Cache       `toml:"cache"`
}

type Diagnostics struct {
	Max     int    `toml:"max"`
	Color   string `toml:"color"`   // auto | on | off
	Context int    `toml:"context"` // source lines shown around a diagnostic
}

type Parse struct {
	Jobs       int      `toml:"jobs"` // 0 = GOMAXPROCS
	Format     string   `toml:"format"`
	Extensions []string `toml:"extensions"`
}

type Cache struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // empty = user cache dir
}

var (
	colorModes   = []string{"auto", "on", "off"}
	outputFormat = []string{"tree", "graph", "json", "yaml"}
)

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Diagnostics: Diagnostics{Max: 100, Color: "auto", Context: 1},
		Parse:       Parse{Format: "tree", Extensions: []string{".fe"}},
	}
}

// Find walks up from startDir to locate ferrite.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads the nearest ferrite.toml; without one it returns
// the defaults and an empty path.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// Validate checks value ranges; errors name the offending key.
func (c *Config) Validate() error {
	if c.Diagnostics.Max < 1 {
		return fmt.Errorf("[diagnostics].max must be positive, got %d", c.Diagnostics.Max)
	}
	if !slices.Contains(colorModes, c.Diagnostics.Color) {
		return fmt.Errorf("[diagnostics].color must be one of %s, got %q", strings.Join(colorModes, ", "), c.Diagnostics.Color)
	}
	if c.Diagnostics.Context < 0 {
		return fmt.Errorf("[diagnostics].context must not be negative, got %d", c.Diagnostics.Context)
	}
	if c.Parse.Jobs < 0 {
		return fmt.Errorf("[parse].jobs must not be negative, got %d", c.Parse.Jobs)
	}
	if !slices.Contains(outputFormat, c.Parse.Format) {
		return fmt.Errorf("[parse].format must be one of %s, got %q", strings.Join(outputFormat, ", "), c.Parse.Format)
	}
	if len(c.Parse.Extensions) == 0 {
		return errors.New("[parse].extensions must not be empty")
	}
	for _, ext := range c.Parse.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("[parse].extensions: %q must start with '.'", ext)
		}
	}
	return nil
}
