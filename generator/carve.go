package generator

import (
	"github.com/lixenwraith/shipyard/blueprint"
	"github.com/lixenwraith/shipyard/catalog"
	"github.com/lixenwraith/shipyard/rng"
)

// generationState is the scratch space of one Generate call, indexed row-major
type generationState struct {
	cols    int
	visited []bool
	open    []catalog.OpenDirections
	stack   []blueprint.Coord
	count   int
}

func newGenerationState(rows, cols int) *generationState {
	return &generationState{
		cols:    cols,
		visited: make([]bool, rows*cols),
		open:    make([]catalog.OpenDirections, rows*cols),
		stack:   make([]blueprint.Coord, 0, rows*cols),
	}
}

func (s *generationState) index(c blueprint.Coord) int {
	return c.Y*s.cols + c.X
}

func (s *generationState) visit(c blueprint.Coord) {
	s.visited[s.index(c)] = true
	s.count++
	s.stack = append(s.stack, c)
}

// carve runs the recursive backtracker from start: a random depth-first
// spanning tree over non-blank cells. Every step opens the shared side on both
// cells, so the result has no cycles and no one-sided doors
func (g *Generator) carve(st *generationState, start blueprint.Coord) Stats {
	total := g.template.CountFilled()
	current := start
	st.visit(start)

	var stats Stats
	candidates := make([]catalog.Direction, 0, len(catalog.Directions))

	for st.count < total {
		candidates = candidates[:0]
		for _, d := range catalog.Directions {
			n := current.Add(d.Delta())
			if g.template.At(n) != blueprint.Blank && !st.visited[st.index(n)] {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) > 0 {
			d := rng.Pick(g.rand, candidates)
			st.open[st.index(current)].Open(d)
			current = current.Add(d.Delta())
			st.visit(current)
			st.open[st.index(current)].Open(d.Opposite())
			continue
		}

		// Dead end: step back along the path
		st.stack = st.stack[:len(st.stack)-1]
		stats.Backtracks++
		if len(st.stack) == 0 {
			g.logger.Printf("carve of %q stopped early: %d of %d cells reachable from %d,%d",
				g.template.Name, st.count, total, start.X, start.Y)
			break
		}
		current = st.stack[len(st.stack)-1]
	}

	stats.Visited = st.count
	stats.Unreached = total - st.count
	return stats
}
