package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/shipyard/blueprint"
)

// catalogFile is the TOML authoring format:
//
//	fallback = "BLANK_SPACE"
//	entrance_overlay = "ENTRANCE_OVERLAY"
//	chosen_entrance_overlay = "CHOSEN_ENTRANCE_OVERLAY"
//
//	[[config]]
//	name = "HALLWAY_VERTICAL"
//	kind = "full"
//	open = [true, false, true, false]
//	textures = [{ id = 9, weight = 3.0 }, { id = 19, weight = 1.0 }]
//
// textures may also be written as [[config.textures]] tables
type catalogFile struct {
	Fallback              string        `toml:"fallback"`
	EntranceOverlay       string        `toml:"entrance_overlay"`
	ChosenEntranceOverlay string        `toml:"chosen_entrance_overlay"`
	Config                []configEntry `toml:"config"`
}

type configEntry struct {
	Name     string             `toml:"name"`
	Kind     blueprint.CellKind `toml:"kind"`
	Open     []bool             `toml:"open"`
	Textures []TextureCandidate `toml:"textures"`
}

// Load decodes and validates a TOML catalog. Entry order in the file is the
// enumeration order
func Load(r io.Reader) (*Catalog, error) {
	var f catalogFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	entries := make([]CellConfiguration, 0, len(f.Config))
	for i, ce := range f.Config {
		var open OpenDirections
		if ce.Open != nil {
			if len(ce.Open) != len(open) {
				return nil, fmt.Errorf("%w: entry %d (%s) open has %d values, want 4", ErrInvalidConfiguration, i, ce.Name, len(ce.Open))
			}
			copy(open[:], ce.Open)
		}
		entries = append(entries, CellConfiguration{
			Name:     ce.Name,
			Kind:     ce.Kind,
			Textures: ce.Textures,
			Open:     open,
		})
	}

	return New(entries, f.Fallback, f.EntranceOverlay, f.ChosenEntranceOverlay)
}

// LoadFile reads a TOML catalog from path
func LoadFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer file.Close()
	return Load(file)
}

// Write encodes the catalog in the format Load reads
func (c *Catalog) Write(w io.Writer) error {
	f := catalogFile{
		Fallback:              c.entries[c.fallback].Name,
		EntranceOverlay:       c.entries[c.entrance].Name,
		ChosenEntranceOverlay: c.entries[c.chosen].Name,
		Config:                make([]configEntry, 0, len(c.entries)),
	}
	for _, e := range c.entries {
		f.Config = append(f.Config, configEntry{
			Name:     e.Name,
			Kind:     e.Kind,
			Open:     e.Open[:],
			Textures: e.Textures,
		})
	}
	return toml.NewEncoder(w).Encode(f)
}
