// Package catalog maps open-direction patterns to cell configurations and picks
// textures for them by weight.
package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/shipyard/blueprint"
	"github.com/lixenwraith/shipyard/rng"
)

// Sentinel errors
var (
	ErrNoMatchingConfiguration = errors.New("no matching configuration")
	ErrDuplicateDirections     = errors.New("duplicate open directions")
	ErrInvalidConfiguration    = errors.New("invalid configuration")
	ErrMissingEntry            = errors.New("missing catalog entry")
)

// TextureCandidate is one texture choice. Weight is relative: 4 against 1
// means 4/5 and 1/5
type TextureCandidate struct {
	ID     int     `toml:"id"`
	Weight float64 `toml:"weight"`
}

// CellConfiguration is a building block of a ship: a side pattern and the
// textures that can draw it
type CellConfiguration struct {
	Name     string
	Kind     blueprint.CellKind
	Textures []TextureCandidate
	Open     OpenDirections
}

// Catalog is an ordered, validated set of configurations.
// Entries with Kind Entrance are overlays and never match a pattern
type Catalog struct {
	entries  []CellConfiguration
	byName   map[string]int
	fallback int
	entrance int
	chosen   int
}

// New builds a catalog from entries in enumeration order. fallback names the
// all-closed configuration returned when nothing matches; entrance and chosen
// name the two overlay entries
func New(entries []CellConfiguration, fallback, entrance, chosen string) (*Catalog, error) {
	c := &Catalog{
		entries: make([]CellConfiguration, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)

	for i, e := range c.entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidConfiguration, i)
		}
		if _, dup := c.byName[e.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %s", ErrInvalidConfiguration, e.Name)
		}
		c.byName[e.Name] = i
	}

	var err error
	if c.fallback, err = c.index(fallback); err != nil {
		return nil, err
	}
	if c.entrance, err = c.index(entrance); err != nil {
		return nil, err
	}
	if c.chosen, err = c.index(chosen); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) index(name string) (int, error) {
	i, ok := c.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingEntry, name)
	}
	return i, nil
}

// Validate checks catalog integrity: matchable entries have unique patterns,
// the fallback is a matchable all-closed entry, and every entry has at least one
// texture with positive total weight
func (c *Catalog) Validate() error {
	if len(c.entries) == 0 {
		return fmt.Errorf("%w: catalog is empty", ErrMissingEntry)
	}
	seen := mapset.New[OpenDirections]()

	for _, e := range c.entries {
		if len(e.Textures) == 0 {
			return fmt.Errorf("%w: %s has no textures", ErrInvalidConfiguration, e.Name)
		}
		total := 0.0
		for _, tc := range e.Textures {
			if tc.ID < 0 || tc.Weight < 0 || math.IsNaN(tc.Weight) || math.IsInf(tc.Weight, 0) {
				return fmt.Errorf("%w: %s has texture %d with weight %v", ErrInvalidConfiguration, e.Name, tc.ID, tc.Weight)
			}
			total += tc.Weight
		}
		if total <= 0 {
			return fmt.Errorf("%w: %s has zero total weight", ErrInvalidConfiguration, e.Name)
		}

		if !matchable(e) {
			continue
		}
		if seen.Has(e.Open) {
			return fmt.Errorf("%w: %s repeats pattern %s", ErrDuplicateDirections, e.Name, e.Open)
		}
		seen.Put(e.Open)
	}

	fb := c.entries[c.fallback]
	if !matchable(fb) || fb.Open != Closed {
		return fmt.Errorf("%w: fallback %s must be a closed room", ErrInvalidConfiguration, fb.Name)
	}
	for _, i := range []int{c.entrance, c.chosen} {
		if matchable(c.entries[i]) {
			return fmt.Errorf("%w: overlay %s must have kind entrance", ErrInvalidConfiguration, c.entries[i].Name)
		}
	}
	return nil
}

func matchable(e CellConfiguration) bool {
	return e.Kind != blueprint.Entrance
}

// Match returns the first matchable configuration whose pattern equals open.
// With no match it returns the fallback together with an error wrapping
// ErrNoMatchingConfiguration; callers may treat that as a warning
func (c *Catalog) Match(open OpenDirections) (CellConfiguration, error) {
	for _, e := range c.entries {
		if matchable(e) && e.Open == open {
			return e, nil
		}
	}
	return c.entries[c.fallback], fmt.Errorf("%w: %s", ErrNoMatchingConfiguration, open)
}

// Fallback returns the no-connection configuration
func (c *Catalog) Fallback() CellConfiguration {
	return c.entries[c.fallback]
}

// EntranceOverlay returns the marker drawn on every entrance
func (c *Catalog) EntranceOverlay() CellConfiguration {
	return c.entries[c.entrance]
}

// ChosenEntranceOverlay returns the marker drawn on the start entrance
func (c *Catalog) ChosenEntranceOverlay() CellConfiguration {
	return c.entries[c.chosen]
}

// Get looks up a configuration by name
func (c *Catalog) Get(name string) (CellConfiguration, bool) {
	i, ok := c.byName[name]
	if !ok {
		return CellConfiguration{}, false
	}
	return c.entries[i], true
}

// Entries returns a copy of all configurations in enumeration order
func (c *Catalog) Entries() []CellConfiguration {
	out := make([]CellConfiguration, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of configurations
func (c *Catalog) Len() int {
	return len(c.entries)
}

// MaxTextureID returns the highest texture id referenced by any entry
func (c *Catalog) MaxTextureID() int {
	highest := -1
	for _, e := range c.entries {
		for _, tc := range e.Textures {
			if tc.ID > highest {
				highest = tc.ID
			}
		}
	}
	return highest
}

// PickTexture selects a texture id with probability proportional to weight.
// Exactly one draw is taken from r, even for a single candidate
func PickTexture(r *rng.Rand, candidates []TextureCandidate) int {
	total := 0.0
	for _, tc := range candidates {
		total += tc.Weight
	}

	draw := math.Floor(r.RandFloat(0, total))
	sum := 0.0
	for _, tc := range candidates {
		sum += tc.Weight
		if sum > draw {
			return tc.ID
		}
	}

	// Rounding left nothing selected
	if len(candidates) == 0 {
		return -1
	}
	return candidates[0].ID
}
