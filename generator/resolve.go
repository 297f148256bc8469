package generator

import (
	"fmt"

	"github.com/lixenwraith/shipyard/blueprint"
	"github.com/lixenwraith/shipyard/catalog"
)

// resolve turns carved side patterns into configurations and textures.
// Cells are visited row-major; each takes one texture draw, entrances a second
// one for their overlay
func (g *Generator) resolve(st *generationState, start blueprint.Coord) *Result {
	rows, cols := g.template.Rows(), g.template.Cols()
	res := newResult(g.template.Name, rows, cols, start)

	entrance := g.catalog.EntranceOverlay()
	chosen := g.catalog.ChosenEntranceOverlay()

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := blueprint.Coord{X: x, Y: y}
			kind := g.template.At(c)
			if kind == blueprint.Blank {
				continue
			}

			i := st.index(c)
			open := st.open[i]
			cfg, err := g.catalog.Match(open)
			fallback := err != nil
			if fallback {
				err = fmt.Errorf("cell %d,%d: %w", x, y, err)
				g.logger.Printf("%q: %v, using %s", g.template.Name, err, cfg.Name)
				res.Diagnostics = append(res.Diagnostics, err)
			}

			cell := Cell{
				Coord:    c,
				Kind:     kind,
				Open:     open,
				Config:   cfg.Name,
				Texture:  catalog.PickTexture(g.rand, cfg.Textures),
				Overlay:  NoOverlay,
				Visited:  st.visited[i],
				Fallback: fallback,
			}

			if kind == blueprint.Entrance {
				cell.Entrance = true
				marker := entrance
				if c == start {
					cell.Chosen = true
					marker = chosen
				}
				cell.Overlay = catalog.PickTexture(g.rand, marker.Textures)
			}

			res.set(cell)
		}
	}
	return res
}
