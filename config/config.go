// Package config loads the Mirefall application configuration from a YAML
// file. A missing file yields the defaults; an unreadable or invalid file is
// an error.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the game shell needs to start.
type Config struct {
	Window  WindowConfig `yaml:"window"`
	Assets  AssetsConfig `yaml:"assets"`
	Sprites SpriteConfig `yaml:"sprites"`
}

// WindowConfig defines the game window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// AssetsConfig defines where assets come from.
type AssetsConfig struct {
	Dir      string `yaml:"dir"`      // Root directory for sprite images
	Manifest string `yaml:"manifest"` // Optional manifest path; empty uses the built-in roster
	Workers  int    `yaml:"workers"`  // Concurrent preload decodes
}

// SpriteConfig defines how sprites are drawn.
type SpriteConfig struct {
	Size  int     `yaml:"size"`  // Edge length sprites are normalized to
	Scale float64 `yaml:"scale"` // On-screen scale factor
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Mirefall",
		},
		Assets: AssetsConfig{
			Dir:     "assets",
			Workers: 4,
		},
		Sprites: SpriteConfig{
			Size:  32,
			Scale: 2.0,
		},
	}
}

// Load reads the config at path. A missing file is not an error: the
// defaults are returned so the game runs out of the box.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values the game cannot run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Sprites.Size <= 0 {
		return fmt.Errorf("invalid sprite size: %d", c.Sprites.Size)
	}
	if c.Sprites.Scale <= 0 {
		return fmt.Errorf("invalid sprite scale: %g", c.Sprites.Scale)
	}
	if c.Assets.Dir == "" {
		return fmt.Errorf("assets dir is required")
	}
	if c.Assets.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d", c.Assets.Workers)
	}
	return nil
}
