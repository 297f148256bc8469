package sprite

import (
	"image"
	"image/color"
	"testing"

	"github.com/lixenwraith/shipyard/catalog"
)

func TestGrid(t *testing.T) {
	tests := []struct {
		bounds     image.Rectangle
		src        int
		cols, rows int
	}{
		{image.Rect(0, 0, 192, 192), 12, 16, 16},
		{image.Rect(0, 0, 100, 30), 12, 8, 2},
		{image.Rect(0, 0, 11, 11), 12, 0, 0},
	}
	for _, tt := range tests {
		cols, rows := Grid(tt.bounds, tt.src)
		if cols != tt.cols || rows != tt.rows {
			t.Errorf("Grid(%v, %d) = %d,%d, want %d,%d", tt.bounds, tt.src, cols, rows, tt.cols, tt.rows)
		}
	}
}

func TestSourceRectRowMajor(t *testing.T) {
	tests := []struct {
		texture int
		want    image.Rectangle
	}{
		{0, image.Rect(0, 0, 12, 12)},
		{3, image.Rect(36, 0, 48, 12)},
		{4, image.Rect(0, 12, 12, 24)},
		{17, image.Rect(12, 48, 24, 60)},
	}
	for _, tt := range tests {
		if got := SourceRect(tt.texture, 4, 12); got != tt.want {
			t.Errorf("SourceRect(%d) = %v, want %v", tt.texture, got, tt.want)
		}
	}
}

func TestPlaceholderSheet(t *testing.T) {
	const src = 12
	img := Placeholder(catalog.Default(), src)

	cols, rows := Grid(img.Bounds(), src)
	if cols*rows < catalog.TextureCount {
		t.Fatalf("placeholder holds %d tiles, want at least %d", cols*rows, catalog.TextureCount)
	}

	// Texture 8 is the horizontal hallway: open east and west only
	hall := SourceRect(8, PlaceholderColumns, src).Min
	pixels := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"center", 6, 6, ColorPassage},
		{"west stub", 1, 6, ColorPassage},
		{"east stub", 11, 6, ColorPassage},
		{"north wall", 6, 1, ColorHull},
		{"south wall", 6, 11, ColorHull},
		{"corner", 0, 0, ColorHull},
	}
	for _, p := range pixels {
		if got := img.RGBAAt(hall.X+p.x, hall.Y+p.y); got != p.want {
			t.Errorf("hallway %s: %v, want %v", p.name, got, p.want)
		}
	}

	entrance := SourceRect(catalog.TextureEntranceOverlay, PlaceholderColumns, src).Min
	if got := img.RGBAAt(entrance.X, entrance.Y); got != ColorEntrance {
		t.Errorf("entrance ring: %v", got)
	}
	if got := img.RGBAAt(entrance.X+6, entrance.Y+6); got.A != 0 {
		t.Errorf("entrance overlay center must stay transparent, got %v", got)
	}

	chosen := SourceRect(catalog.TextureChosenEntranceOverlay, PlaceholderColumns, src).Min
	if got := img.RGBAAt(chosen.X, chosen.Y); got != ColorChosen {
		t.Errorf("chosen ring: %v", got)
	}
}
