// Package sprite draws generated layouts from a sprite sheet with ebiten.
package sprite

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/shipyard/blueprint"
	"github.com/lixenwraith/shipyard/catalog"
)

// Sheet is a grid of equally sized tiles, indexed row-major from the top left
type Sheet struct {
	Image    *ebiten.Image
	SrcSize  int // tile edge in the sheet, pixels
	TileSize int // tile edge on screen, pixels
	Columns  int
	Rows     int
}

// NewSheet wraps img. Partial tiles at the right and bottom edges are ignored
func NewSheet(img image.Image, srcSize, tileSize int) (*Sheet, error) {
	if srcSize <= 0 || tileSize <= 0 {
		return nil, fmt.Errorf("invalid tile size %d/%d", srcSize, tileSize)
	}
	columns, rows := Grid(img.Bounds(), srcSize)
	if columns*rows == 0 {
		return nil, fmt.Errorf("sheet %dx%d holds no %dpx tiles", img.Bounds().Dx(), img.Bounds().Dy(), srcSize)
	}
	return &Sheet{
		Image:    ebiten.NewImageFromImage(img),
		SrcSize:  srcSize,
		TileSize: tileSize,
		Columns:  columns,
		Rows:     rows,
	}, nil
}

// LoadSheet decodes a PNG sprite sheet
func LoadSheet(path string, srcSize, tileSize int) (*Sheet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return NewSheet(img, srcSize, tileSize)
}

// Grid returns how many whole tiles fit in bounds
func Grid(bounds image.Rectangle, srcSize int) (columns, rows int) {
	return bounds.Dx() / srcSize, bounds.Dy() / srcSize
}

// SourceRect locates texture in a sheet with the given column count
func SourceRect(texture, columns, srcSize int) image.Rectangle {
	sx := (texture % columns) * srcSize
	sy := (texture / columns) * srcSize
	return image.Rect(sx, sy, sx+srcSize, sy+srcSize)
}

// TileCount returns the number of tiles in the sheet
func (s *Sheet) TileCount() int {
	return s.Columns * s.Rows
}

// DrawTile draws texture at grid position c. Unknown textures are skipped
func (s *Sheet) DrawTile(target *ebiten.Image, texture int, c blueprint.Coord, offsetX, offsetY float64) {
	if texture < 0 || texture >= s.TileCount() {
		return
	}

	op := &ebiten.DrawImageOptions{}
	scale := float64(s.TileSize) / float64(s.SrcSize)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX+float64(c.X*s.TileSize), offsetY+float64(c.Y*s.TileSize))

	rect := SourceRect(texture, s.Columns, s.SrcSize)
	target.DrawImage(s.Image.SubImage(rect).(*ebiten.Image), op)
}

// Placeholder colors
var (
	ColorHull     = color.RGBA{40, 44, 52, 255}
	ColorPassage  = color.RGBA{152, 195, 121, 255}
	ColorEntrance = color.RGBA{229, 192, 123, 255}
	ColorChosen   = color.RGBA{224, 108, 117, 255}
)

// PlaceholderColumns is the column count of Placeholder sheets
const PlaceholderColumns = 8

// Placeholder paints a sheet for cat when no artwork is available: each room
// is a hull square with a passage stub towards every open side, overlays are
// a ring in the entrance colors
func Placeholder(cat *catalog.Catalog, srcSize int) *image.RGBA {
	tiles := cat.MaxTextureID() + 1
	rows := (tiles + PlaceholderColumns - 1) / PlaceholderColumns
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderColumns*srcSize, rows*srcSize))

	chosen := cat.ChosenEntranceOverlay().Name
	for _, cfg := range cat.Entries() {
		for _, tc := range cfg.Textures {
			if tc.ID < 0 {
				continue
			}
			rect := SourceRect(tc.ID, PlaceholderColumns, srcSize)
			if cfg.Kind == blueprint.Entrance {
				ring := ColorEntrance
				if cfg.Name == chosen {
					ring = ColorChosen
				}
				paintRing(img, rect, ring)
				continue
			}
			paintRoom(img, rect, cfg.Open)
		}
	}
	return img
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func paintRoom(img *image.RGBA, r image.Rectangle, open catalog.OpenDirections) {
	fill(img, r, ColorHull)

	size := r.Dx()
	lo, hi := size/3, size-size/3
	fill(img, image.Rect(r.Min.X+lo, r.Min.Y+lo, r.Min.X+hi, r.Min.Y+hi), ColorPassage)

	if open.Has(catalog.North) {
		fill(img, image.Rect(r.Min.X+lo, r.Min.Y, r.Min.X+hi, r.Min.Y+lo), ColorPassage)
	}
	if open.Has(catalog.East) {
		fill(img, image.Rect(r.Min.X+hi, r.Min.Y+lo, r.Max.X, r.Min.Y+hi), ColorPassage)
	}
	if open.Has(catalog.South) {
		fill(img, image.Rect(r.Min.X+lo, r.Min.Y+hi, r.Min.X+hi, r.Max.Y), ColorPassage)
	}
	if open.Has(catalog.West) {
		fill(img, image.Rect(r.Min.X, r.Min.Y+lo, r.Min.X+lo, r.Min.Y+hi), ColorPassage)
	}
}

func paintRing(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	w := max(1, r.Dx()/8)
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w), c)
	fill(img, image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y), c)
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+w, r.Max.Y), c)
	fill(img, image.Rect(r.Max.X-w, r.Min.Y, r.Max.X, r.Max.Y), c)
}
