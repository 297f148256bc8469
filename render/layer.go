// Package render holds the in-memory tile layer that generated layouts are
// drawn into, and the glyph tables the terminal views use.
package render

import (
	"github.com/lixenwraith/shipyard/blueprint"
)

// Empty marks an unset texture slot
const Empty = -1

// Entrance markers stored per cell
const (
	markNone uint8 = iota
	markEntrance
	markChosen
)

// Layer is a two-slot tile grid: a base texture and an optional overlay per
// cell. It satisfies generator.Renderer and generator.EntranceMarker
type Layer struct {
	tiles   int
	rows    int
	cols    int
	base    []int
	overlay []int
	marks   []uint8
}

// NewLayer creates an empty layer backed by a tileset of the given size
func NewLayer(tiles int) *Layer {
	return &Layer{tiles: tiles}
}

// TileCount returns the tileset size
func (l *Layer) TileCount() int {
	return l.tiles
}

// Reset sizes the grid and clears every slot, reallocating only when capacity
// is insufficient
func (l *Layer) Reset(rows, cols int) {
	size := rows * cols
	if cap(l.base) < size {
		l.base = make([]int, size)
		l.overlay = make([]int, size)
		l.marks = make([]uint8, size)
	} else {
		l.base = l.base[:size]
		l.overlay = l.overlay[:size]
		l.marks = l.marks[:size]
	}
	l.rows, l.cols = rows, cols
	l.clear()
}

// clear fills slots using exponential copy
func (l *Layer) clear() {
	if len(l.base) == 0 {
		return
	}
	l.base[0], l.overlay[0], l.marks[0] = Empty, Empty, markNone
	for filled := 1; filled < len(l.base); filled *= 2 {
		copy(l.base[filled:], l.base[:filled])
		copy(l.overlay[filled:], l.overlay[:filled])
		copy(l.marks[filled:], l.marks[:filled])
	}
}

func (l *Layer) index(c blueprint.Coord) (int, bool) {
	if c.X < 0 || c.Y < 0 || c.X >= l.cols || c.Y >= l.rows {
		return 0, false
	}
	return c.Y*l.cols + c.X, true
}

// Place fills the base slot of c, or the overlay slot when the base is taken.
// Out-of-bounds coordinates are ignored
func (l *Layer) Place(c blueprint.Coord, texture int) {
	i, ok := l.index(c)
	if !ok {
		return
	}
	if l.base[i] == Empty {
		l.base[i] = texture
		return
	}
	l.overlay[i] = texture
}

// MarkEntrance flags c as an entrance, chosen for the start one
func (l *Layer) MarkEntrance(c blueprint.Coord, chosen bool) {
	i, ok := l.index(c)
	if !ok {
		return
	}
	l.marks[i] = markEntrance
	if chosen {
		l.marks[i] = markChosen
	}
}

// Size returns the grid dimensions
func (l *Layer) Size() (rows, cols int) {
	return l.rows, l.cols
}

// Base returns the base texture at c
func (l *Layer) Base(c blueprint.Coord) (int, bool) {
	i, ok := l.index(c)
	if !ok || l.base[i] == Empty {
		return Empty, false
	}
	return l.base[i], true
}

// Overlay returns the overlay texture at c
func (l *Layer) Overlay(c blueprint.Coord) (int, bool) {
	i, ok := l.index(c)
	if !ok || l.overlay[i] == Empty {
		return Empty, false
	}
	return l.overlay[i], true
}

// Entrance reports whether c was marked as an entrance and whether it is the
// chosen start
func (l *Layer) Entrance(c blueprint.Coord) (entrance, chosen bool) {
	i, ok := l.index(c)
	if !ok {
		return false, false
	}
	return l.marks[i] != markNone, l.marks[i] == markChosen
}

// Tile is one occupied cell of a layer
type Tile struct {
	Coord    blueprint.Coord
	Base     int
	Overlay  int // Empty when absent
	Entrance bool
	Chosen   bool
}

// Each calls fn for every cell with a base texture, row-major
func (l *Layer) Each(fn func(Tile)) {
	for i, b := range l.base {
		if b == Empty {
			continue
		}
		fn(Tile{
			Coord:    blueprint.Coord{X: i % l.cols, Y: i / l.cols},
			Base:     b,
			Overlay:  l.overlay[i],
			Entrance: l.marks[i] != markNone,
			Chosen:   l.marks[i] == markChosen,
		})
	}
}

// Occupied returns the number of cells with a base texture
func (l *Layer) Occupied() int {
	n := 0
	for _, b := range l.base {
		if b != Empty {
			n++
		}
	}
	return n
}
