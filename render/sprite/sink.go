package sprite

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/shipyard/render"
)

// Sink is a render.Layer drawn through a sprite sheet
type Sink struct {
	*render.Layer
	sheet *Sheet
}

// NewSink creates a sink whose tile count is the sheet's
func NewSink(sheet *Sheet) *Sink {
	return &Sink{
		Layer: render.NewLayer(sheet.TileCount()),
		sheet: sheet,
	}
}

// Sheet returns the sprite sheet
func (s *Sink) Sheet() *Sheet {
	return s.sheet
}

// Bounds returns the layout size in screen pixels
func (s *Sink) Bounds() (width, height int) {
	rows, cols := s.Size()
	return cols * s.sheet.TileSize, rows * s.sheet.TileSize
}

// Draw paints bases then overlays with the layout's top-left at ox,oy
func (s *Sink) Draw(target *ebiten.Image, ox, oy float64) {
	s.Each(func(tile render.Tile) {
		s.sheet.DrawTile(target, tile.Base, tile.Coord, ox, oy)
		if tile.Overlay != render.Empty {
			s.sheet.DrawTile(target, tile.Overlay, tile.Coord, ox, oy)
		}
	})
}
