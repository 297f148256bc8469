// Package config loads settings shared by the shipyard commands.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/shipyard/blueprint"
)

// Sentinel errors
var (
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds command settings. Flags override file values
type Config struct {
	Seed         uint32  `toml:"seed"`
	Template     string  `toml:"template"`      // registry name
	TemplateFile string  `toml:"template_file"` // overrides Template when set
	CatalogFile  string  `toml:"catalog_file"`  // empty selects the built-in catalog
	TileSize     int     `toml:"tile_size"`     // on-screen pixels per tile
	SourceSize   int     `toml:"source_size"`   // sheet pixels per tile
	Sheet        string  `toml:"sheet"`         // sprite sheet PNG, empty draws placeholders
	Debug        bool    `toml:"debug"`
	Mute         bool    `toml:"mute"`
	Volume       float64 `toml:"volume"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Seed:       1,
		Template:   blueprint.SmallShuttle,
		TileSize:   32,
		SourceSize: 16,
		Volume:     0.5,
	}
}

// Load overlays the TOML file at path onto Default. Keys absent from the
// file keep their defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s: unknown key %q", ErrInvalidConfig, path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault returns Default when path is empty and loads path otherwise.
// A named file that does not exist is an error
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Load(path)
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.TileSize <= 0 || c.SourceSize <= 0 {
		return fmt.Errorf("%w: tile sizes must be positive (tile_size=%d, source_size=%d)", ErrInvalidConfig, c.TileSize, c.SourceSize)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume %.2f outside [0, 1]", ErrInvalidConfig, c.Volume)
	}
	if c.Template == "" && c.TemplateFile == "" {
		return fmt.Errorf("%w: no template selected", ErrInvalidConfig)
	}
	return nil
}
