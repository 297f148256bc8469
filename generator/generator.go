// Package generator carves a ship template into a connected layout and resolves
// every room to a catalog configuration and texture.
//
// A Generator owns one PRNG. Each Generate call draws from it, so successive
// calls on one Generator produce different layouts, while a new Generator with
// the same template, catalog and seed reproduces the first layout exactly.
// Generation is synchronous; a Generator must not be used from several
// goroutines at once.
package generator

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/shipyard/blueprint"
	"github.com/lixenwraith/shipyard/catalog"
	"github.com/lixenwraith/shipyard/rng"
	"github.com/lixenwraith/shipyard/status"
)

// Sentinel errors
var (
	ErrEmptyTileset    = errors.New("tileset has no placeable tiles")
	ErrInvalidTemplate = blueprint.ErrInvalidTemplate
)

// Renderer receives the generated layout. The generator sizes it on
// construction and repaints it after every successful Generate
type Renderer interface {
	// TileCount returns the number of placeable tiles in the tileset
	TileCount() int
	// Reset clears all placements and sizes the grid
	Reset(rows, cols int)
	// Place draws texture at c. Entrances get a second Place for the overlay
	Place(c blueprint.Coord, texture int)
}

// EntranceMarker is optionally implemented by renderers that track entrances
type EntranceMarker interface {
	MarkEntrance(c blueprint.Coord, chosen bool)
}

// Option configures a Generator
type Option func(*Generator)

// WithLogger routes diagnostics to l instead of the standard logger
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithMetrics publishes per-run counters to reg
func WithMetrics(reg *status.Registry) Option {
	return func(g *Generator) {
		g.metrics = reg
	}
}

// Generator produces layouts for one template
type Generator struct {
	template *blueprint.Template
	catalog  *catalog.Catalog
	renderer Renderer
	rand     *rng.Rand
	logger   *log.Logger
	metrics  *status.Registry
	result   *Result
}

// New creates a Generator. A nil catalog selects catalog.Default().
// Fails with ErrEmptyTileset when r is nil or has no tiles
func New(tpl *blueprint.Template, cat *catalog.Catalog, r Renderer, seed uint32, opts ...Option) (*Generator, error) {
	if tpl == nil || tpl.Rows() == 0 || tpl.Cols() == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidTemplate)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: no renderer", ErrEmptyTileset)
	}
	if n := r.TileCount(); n <= 0 {
		return nil, fmt.Errorf("%w: renderer reports %d tiles", ErrEmptyTileset, n)
	}
	if cat == nil {
		cat = catalog.Default()
	}

	g := &Generator{
		template: tpl,
		catalog:  cat,
		renderer: r,
		rand:     rng.New(seed),
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	r.Reset(tpl.Rows(), tpl.Cols())
	return g, nil
}

// Template returns the template being generated
func (g *Generator) Template() *blueprint.Template {
	return g.template
}

// Catalog returns the configuration catalog in use
func (g *Generator) Catalog() *catalog.Catalog {
	return g.catalog
}

// Seed returns the PRNG state the next Generate call will start from
func (g *Generator) Seed() uint32 {
	return g.rand.Seed()
}

// Result returns the last successful layout, nil before the first
func (g *Generator) Result() *Result {
	return g.result
}

// Generate carves and resolves a new layout, replacing the previous one and
// repainting the renderer. On error nothing is replaced
func (g *Generator) Generate() (*Result, error) {
	began := time.Now()
	seed := g.rand.Seed()

	start, err := g.pickRandomEntrance()
	if err != nil {
		return nil, err
	}

	st := newGenerationState(g.template.Rows(), g.template.Cols())
	stats := g.carve(st, start)
	res := g.resolve(st, start)

	res.Seed = seed
	stats.Fallbacks = len(res.Diagnostics)
	stats.Duration = time.Since(began)
	res.Stats = stats

	g.result = res
	g.present(res)
	g.publish(res)
	return res, nil
}

// pickRandomEntrance chooses the start among all entrances, scanned row-major
func (g *Generator) pickRandomEntrance() (blueprint.Coord, error) {
	entrances := g.template.Entrances()
	if len(entrances) == 0 {
		return blueprint.Coord{}, fmt.Errorf("%w: %q has no entrance cells", ErrInvalidTemplate, g.template.Name)
	}
	return rng.Pick(g.rand, entrances), nil
}

// present repaints the renderer from res
func (g *Generator) present(res *Result) {
	g.renderer.Reset(res.Rows, res.Cols)
	marker, _ := g.renderer.(EntranceMarker)

	for _, c := range res.Cells() {
		g.renderer.Place(c.Coord, c.Texture)
		if !c.Entrance {
			continue
		}
		g.renderer.Place(c.Coord, c.Overlay)
		if marker != nil {
			marker.MarkEntrance(c.Coord, c.Chosen)
		}
	}
}

func (g *Generator) publish(res *Result) {
	if g.metrics == nil {
		return
	}
	m := g.metrics
	m.Counters.Get("gen.runs").Add(1)
	m.Counters.Get("gen.cells").Store(int64(res.Len()))
	m.Counters.Get("gen.visited").Store(int64(res.Stats.Visited))
	m.Counters.Get("gen.backtracks").Store(int64(res.Stats.Backtracks))
	m.Counters.Get("gen.unreached").Store(int64(res.Stats.Unreached))
	m.Counters.Get("gen.fallbacks").Store(int64(res.Stats.Fallbacks))
	m.Gauges.Get("gen.duration_ms").Set(float64(res.Stats.Duration.Microseconds()) / 1000)
	m.Labels.Get("gen.template").Store(g.template.Name)
	m.Labels.Get("gen.seed").Store(fmt.Sprintf("%d", res.Seed))
	m.Labels.Get("gen.start").Store(fmt.Sprintf("%d,%d", res.Start.X, res.Start.Y))
}
