package render

import (
	"github.com/lixenwraith/shipyard/blueprint"
	"github.com/lixenwraith/shipyard/catalog"
	"github.com/lixenwraith/shipyard/generator"
)

// Glyphs used for overlay textures and unknown ids
const (
	GlyphEntrance = 'E'
	GlyphChosen   = '@'
	GlyphUnknown  = '?'
)

// GlyphTable maps texture ids to terminal runes
type GlyphTable []rune

// GlyphsFor derives a glyph per texture id from the side pattern of the
// configuration that owns it. Overlay textures draw as entrance markers
func GlyphsFor(cat *catalog.Catalog) GlyphTable {
	table := make(GlyphTable, cat.MaxTextureID()+1)
	for i := range table {
		table[i] = GlyphUnknown
	}

	for _, cfg := range cat.Entries() {
		g := generator.Glyph(cfg.Open)
		if cfg.Kind == blueprint.Entrance {
			g = GlyphEntrance
			if cfg.Name == cat.ChosenEntranceOverlay().Name {
				g = GlyphChosen
			}
		}
		for _, t := range cfg.Textures {
			if t.ID >= 0 {
				table[t.ID] = g
			}
		}
	}
	return table
}

// Rune returns the glyph for texture, GlyphUnknown when out of range
func (t GlyphTable) Rune(texture int) rune {
	if texture < 0 || texture >= len(t) {
		return GlyphUnknown
	}
	return t[texture]
}

// Lines draws the layer as text: overlays over bases, spaces for empty cells
func (l *Layer) Lines(glyphs GlyphTable) []string {
	lines := make([]string, l.rows)
	row := make([]rune, l.cols)
	for y := 0; y < l.rows; y++ {
		for x := 0; x < l.cols; x++ {
			i := y*l.cols + x
			switch {
			case l.overlay[i] != Empty:
				row[x] = glyphs.Rune(l.overlay[i])
			case l.base[i] != Empty:
				row[x] = glyphs.Rune(l.base[i])
			default:
				row[x] = ' '
			}
		}
		lines[y] = string(row)
	}
	return lines
}
