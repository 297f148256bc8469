package catalog

import (
	"github.com/lixenwraith/shipyard/blueprint"
)

// Built-in configuration names
const (
	DeadEndLeft           = "DEAD_END_LEFT"
	DeadEndRight          = "DEAD_END_RIGHT"
	DeadEndBottom         = "DEAD_END_BOTTOM"
	DeadEndTop            = "DEAD_END_TOP"
	CornerBottomRight     = "CORNER_BOTTOM_RIGHT"
	CornerBottomLeft      = "CORNER_BOTTOM_LEFT"
	CornerTopLeft         = "CORNER_TOP_LEFT"
	CornerTopRight        = "CORNER_TOP_RIGHT"
	HallwayHorizontal     = "HALLWAY_HORIZONTAL"
	HallwayVertical       = "HALLWAY_VERTICAL"
	XIntersection         = "X_INTERSECTION"
	BlankSpace            = "BLANK_SPACE"
	TIntersectionTop      = "T_INTERSECTION_TOP"
	TIntersectionBottom   = "T_INTERSECTION_BOTTOM"
	TIntersectionRight    = "T_INTERSECTION_RIGHT"
	TIntersectionLeft     = "T_INTERSECTION_LEFT"
	EntranceOverlay       = "ENTRANCE_OVERLAY"
	ChosenEntranceOverlay = "CHOSEN_ENTRANCE_OVERLAY"
)

// Texture ids of the built-in sheet, row-major from the top left
const (
	TextureEntranceOverlay       = 16
	TextureChosenEntranceOverlay = 17
	TextureCount                 = 18
)

func room(name string, texture int, n, e, s, w bool) CellConfiguration {
	return CellConfiguration{
		Name:     name,
		Kind:     blueprint.Full,
		Textures: []TextureCandidate{{ID: texture, Weight: 1}},
		Open:     OpenDirections{n, e, s, w},
	}
}

func overlay(name string, texture int) CellConfiguration {
	return CellConfiguration{
		Name:     name,
		Kind:     blueprint.Entrance,
		Textures: []TextureCandidate{{ID: texture, Weight: 1}},
	}
}

// Library returns the built-in spaceship configurations in enumeration order.
// Dead ends are named after the side the room sits on, so DEAD_END_LEFT opens east
func Library() []CellConfiguration {
	return []CellConfiguration{
		room(DeadEndLeft, 0, false, true, false, false),
		room(DeadEndRight, 1, false, false, false, true),
		room(DeadEndBottom, 2, true, false, false, false),
		room(DeadEndTop, 3, false, false, true, false),

		room(CornerBottomRight, 4, false, true, true, false),
		room(CornerBottomLeft, 5, false, false, true, true),
		room(CornerTopLeft, 6, true, false, false, true),
		room(CornerTopRight, 7, true, true, false, false),

		room(HallwayHorizontal, 8, false, true, false, true),
		room(HallwayVertical, 9, true, false, true, false),

		room(XIntersection, 10, true, true, true, true),
		room(BlankSpace, 11, false, false, false, false),

		room(TIntersectionTop, 12, false, true, true, true),
		room(TIntersectionBottom, 13, true, true, false, true),
		room(TIntersectionRight, 14, true, false, true, true),
		room(TIntersectionLeft, 15, true, true, true, false),

		overlay(EntranceOverlay, TextureEntranceOverlay),
		overlay(ChosenEntranceOverlay, TextureChosenEntranceOverlay),
	}
}

var defaultCatalog = mustNew(Library(), BlankSpace, EntranceOverlay, ChosenEntranceOverlay)

// Default returns the built-in catalog; it is immutable and shared
func Default() *Catalog {
	return defaultCatalog
}

func mustNew(entries []CellConfiguration, fallback, entrance, chosen string) *Catalog {
	c, err := New(entries, fallback, entrance, chosen)
	if err != nil {
		panic(err)
	}
	return c
}
