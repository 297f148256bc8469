package generator

import (
	"strings"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/shipyard/blueprint"
	"github.com/lixenwraith/shipyard/catalog"
)

// NoOverlay marks a cell without an entrance overlay
const NoOverlay = -1

// Cell is the resolved state of one non-blank template cell
type Cell struct {
	Coord    blueprint.Coord
	Kind     blueprint.CellKind
	Open     catalog.OpenDirections
	Config   string // configuration name
	Texture  int
	Overlay  int // entrance overlay texture, NoOverlay otherwise
	Entrance bool
	Chosen   bool // start entrance of this run
	Visited  bool // reached by the carve
	Fallback bool // pattern had no catalog match
}

// Stats summarizes one run
type Stats struct {
	Visited    int
	Backtracks int
	Unreached  int
	Fallbacks  int
	Duration   time.Duration
}

// Result is a generated layout. Blank template cells have no entry
type Result struct {
	Template    string
	Rows, Cols  int
	Start       blueprint.Coord
	Seed        uint32 // PRNG state the run started from
	Stats       Stats
	Diagnostics []error

	cells   []Cell
	present []bool
	count   int
}

func newResult(name string, rows, cols int, start blueprint.Coord) *Result {
	return &Result{
		Template: name,
		Rows:     rows,
		Cols:     cols,
		Start:    start,
		cells:    make([]Cell, rows*cols),
		present:  make([]bool, rows*cols),
	}
}

func (r *Result) set(c Cell) {
	i := c.Coord.Y*r.Cols + c.Coord.X
	if !r.present[i] {
		r.count++
	}
	r.cells[i] = c
	r.present[i] = true
}

// At returns the cell at c; ok is false for blank or out-of-bounds positions
func (r *Result) At(c blueprint.Coord) (Cell, bool) {
	if c.X < 0 || c.Y < 0 || c.X >= r.Cols || c.Y >= r.Rows {
		return Cell{}, false
	}
	i := c.Y*r.Cols + c.X
	return r.cells[i], r.present[i]
}

// Cells returns all resolved cells in row-major order
func (r *Result) Cells() []Cell {
	out := make([]Cell, 0, r.count)
	for i, ok := range r.present {
		if ok {
			out = append(out, r.cells[i])
		}
	}
	return out
}

// Len returns the number of resolved cells
func (r *Result) Len() int {
	return r.count
}

// Equal reports whether two results describe the same layout: same cells,
// side patterns, textures, overlays and start
func (r *Result) Equal(o *Result) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.Rows != o.Rows || r.Cols != o.Cols || r.Start != o.Start || r.count != o.count {
		return false
	}
	for i := range r.cells {
		if r.present[i] != o.present[i] {
			return false
		}
		a, b := r.cells[i], o.cells[i]
		if a.Open != b.Open || a.Texture != b.Texture || a.Overlay != b.Overlay || a.Chosen != b.Chosen {
			return false
		}
	}
	return true
}

// Route returns the passage path from one cell to another, both ends included.
// The carve yields a tree so the path is unique. Nil when either end is absent
// or the cells are not connected
func (r *Result) Route(from, to blueprint.Coord) []blueprint.Coord {
	if _, ok := r.At(from); !ok {
		return nil
	}
	if _, ok := r.At(to); !ok {
		return nil
	}

	queue := []blueprint.Coord{from}
	cameFrom := map[blueprint.Coord]blueprint.Coord{}
	seen := mapset.New[blueprint.Coord]()
	seen.Put(from)

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == to {
			var path []blueprint.Coord
			for curr != from {
				path = append(path, curr)
				curr = cameFrom[curr]
			}
			path = append(path, from)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		cell, _ := r.At(curr)
		for _, d := range catalog.Directions {
			if !cell.Open.Has(d) {
				continue
			}
			next := curr.Add(d.Delta())
			if _, ok := r.At(next); !ok || seen.Has(next) {
				continue
			}
			seen.Put(next)
			cameFrom[next] = curr
			queue = append(queue, next)
		}
	}
	return nil
}

// passageGlyphs draws a side pattern with box lines, indexed by N|E<<1|S<<2|W<<3
var passageGlyphs = [16]rune{
	0:  '□',
	1:  '╵',
	2:  '╶',
	3:  '└',
	4:  '╷',
	5:  '│',
	6:  '┌',
	7:  '├',
	8:  '╴',
	9:  '┘',
	10: '─',
	11: '┴',
	12: '┐',
	13: '┤',
	14: '┬',
	15: '┼',
}

// Glyph returns the box-drawing rune for a side pattern
func Glyph(o catalog.OpenDirections) rune {
	mask := 0
	for _, d := range catalog.Directions {
		if o.Has(d) {
			mask |= 1 << d
		}
	}
	return passageGlyphs[mask]
}

// String draws the layout: passages as box lines, the start entrance as '@',
// other entrances as 'E', blank cells as spaces
func (r *Result) String() string {
	var sb strings.Builder
	for y := 0; y < r.Rows; y++ {
		for x := 0; x < r.Cols; x++ {
			cell, ok := r.At(blueprint.Coord{X: x, Y: y})
			switch {
			case !ok:
				sb.WriteByte(' ')
			case cell.Chosen:
				sb.WriteByte('@')
			case cell.Entrance:
				sb.WriteByte('E')
			default:
				sb.WriteRune(Glyph(cell.Open))
			}
		}
		if y < r.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
