package catalog

import (
	"github.com/lixenwraith/shipyard/blueprint"
)

// Direction indexes OpenDirections: North, East, South, West
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions in enumeration order. The generator scans neighbors in this order
var Directions = [4]Direction{North, East, South, West}

var deltas = [4]blueprint.Coord{
	North: {X: 0, Y: -1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: 1},
	West:  {X: -1, Y: 0},
}

// Opposite returns the direction facing back
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the one-step grid offset; north is y-1
func (d Direction) Delta() blueprint.Coord {
	return deltas[d]
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// OpenDirections records which sides of a cell are passable
type OpenDirections [4]bool

// Closed is the all-closed pattern
var Closed OpenDirections

// Open marks d passable
func (o *OpenDirections) Open(d Direction) {
	o[d] = true
}

// Has reports whether d is passable
func (o OpenDirections) Has(d Direction) bool {
	return o[d]
}

// Count returns the number of open sides
func (o OpenDirections) Count() int {
	n := 0
	for _, v := range o {
		if v {
			n++
		}
	}
	return n
}

// String renders e.g. "N.S." for a vertical hallway
func (o OpenDirections) String() string {
	b := []byte("....")
	for _, d := range Directions {
		if o[d] {
			b[d] = d.String()[0]
		}
	}
	return string(b)
}
