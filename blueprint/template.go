// Package blueprint holds the static ship templates the generator carves.
package blueprint

import (
	"errors"
	"fmt"
	"strings"
)

// CellKind is the role of a template cell. Values match the legacy numeric
// encoding: 0 blank, 1 full, 2 entrance
type CellKind int

const (
	// Blank is empty space, never part of the ship
	Blank CellKind = iota
	// Full gets a room
	Full
	// Entrance is a room that serves as an access point. Must border a Blank
	// cell; this is an authoring rule and is not checked
	Entrance
)

func (k CellKind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Full:
		return "full"
	case Entrance:
		return "entrance"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (k CellKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for config files
func (k *CellKind) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "blank":
		*k = Blank
	case "full":
		*k = Full
	case "entrance":
		*k = Entrance
	default:
		return fmt.Errorf("unknown cell kind %q", b)
	}
	return nil
}

// Sentinel errors
var (
	ErrInvalidTemplate = errors.New("invalid template")
)

// Coord is a grid position: X column, Y row
type Coord struct {
	X, Y int
}

// Add returns c offset by d
func (c Coord) Add(d Coord) Coord {
	return Coord{c.X + d.X, c.Y + d.Y}
}

// Template is a named rectangular grid of cell kinds, row-major.
//
// Callers must supply a non-empty layout whose rows all have the same length.
// Ragged layouts are a contract violation; behavior is undefined
type Template struct {
	Name   string
	Layout [][]CellKind
}

// Rows returns the grid height
func (t *Template) Rows() int {
	return len(t.Layout)
}

// Cols returns the grid width, taken from the first row
func (t *Template) Cols() int {
	if len(t.Layout) == 0 {
		return 0
	}
	return len(t.Layout[0])
}

// InBounds reports whether c lies on the grid
func (t *Template) InBounds(c Coord) bool {
	return c.Y >= 0 && c.Y < t.Rows() && c.X >= 0 && c.X < t.Cols()
}

// At returns the kind at c; out-of-bounds reads as Blank
func (t *Template) At(c Coord) CellKind {
	if !t.InBounds(c) {
		return Blank
	}
	return t.Layout[c.Y][c.X]
}

// Entrances lists all Entrance cells in row-major order
func (t *Template) Entrances() []Coord {
	var out []Coord
	for y, row := range t.Layout {
		for x, k := range row {
			if k == Entrance {
				out = append(out, Coord{x, y})
			}
		}
	}
	return out
}

// CountFilled returns the number of non-blank cells
func (t *Template) CountFilled() int {
	n := 0
	for _, row := range t.Layout {
		for _, k := range row {
			if k != Blank {
				n++
			}
		}
	}
	return n
}
