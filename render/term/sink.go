// Package term draws generated layouts onto a tcell screen.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/shipyard/blueprint"
	"github.com/lixenwraith/shipyard/catalog"
	"github.com/lixenwraith/shipyard/render"
)

// Styles per tile class
var (
	StylePassage  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StyleBlank    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleEntrance = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	StyleChosen   = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	StyleRoute    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
)

// Sink is a render.Layer bound to a screen. The generator fills the layer;
// Draw paints it
type Sink struct {
	*render.Layer
	screen tcell.Screen
	glyphs render.GlyphTable
	blank  map[int]bool
	route  mapset.Set[blueprint.Coord]
}

// NewSink creates a sink for cat's tileset
func NewSink(screen tcell.Screen, cat *catalog.Catalog) *Sink {
	s := &Sink{
		Layer:  render.NewLayer(cat.MaxTextureID() + 1),
		screen: screen,
		glyphs: render.GlyphsFor(cat),
		blank:  make(map[int]bool),
		route:  mapset.New[blueprint.Coord](),
	}
	for _, tc := range cat.Fallback().Textures {
		s.blank[tc.ID] = true
	}
	return s
}

// Highlight marks a path to draw in StyleRoute; nil clears it
func (s *Sink) Highlight(path []blueprint.Coord) {
	s.route = mapset.New[blueprint.Coord]()
	for _, c := range path {
		s.route.Put(c)
	}
}

// Draw paints the layer with its top-left corner at x0,y0. Cells outside the
// screen are clipped. The caller calls Show
func (s *Sink) Draw(x0, y0 int) {
	width, height := s.screen.Size()
	s.Each(func(tile render.Tile) {
		x, y := x0+tile.Coord.X, y0+tile.Coord.Y
		if x < 0 || y < 0 || x >= width || y >= height {
			return
		}
		r, style := s.glyphs.Rune(tile.Base), StylePassage
		switch {
		case tile.Chosen:
			r, style = s.glyphs.Rune(tile.Overlay), StyleChosen
		case tile.Entrance:
			r, style = s.glyphs.Rune(tile.Overlay), StyleEntrance
		case s.route.Has(tile.Coord):
			style = StyleRoute
		case s.blank[tile.Base]:
			style = StyleBlank
		}
		s.screen.SetContent(x, y, r, nil, style)
	})
}

// DrawText writes a status line starting at x,y, clipped to the screen width
func DrawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	width, _ := screen.Size()
	for _, r := range text {
		if x >= width {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
