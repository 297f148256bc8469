package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/lixenwraith/shipyard/blueprint"
	"github.com/lixenwraith/shipyard/config"
	"github.com/lixenwraith/shipyard/generator"
	"github.com/lixenwraith/shipyard/registry"
	"github.com/lixenwraith/shipyard/render"
	"github.com/lixenwraith/shipyard/status"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run generates -count successive layouts with one generator and prints them
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("shipgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "TOML config file")
	var seed config.SeedValue
	fs.Var(&seed, "seed", "PRNG seed (0..4294967295)")
	templateName := fs.String("template", "", "built-in template name")
	templateFile := fs.String("template-file", "", "TOML template file")
	catalogFile := fs.String("catalog", "", "TOML catalog file")
	count := fs.Int("count", 1, "layouts to generate from one seed")
	route := fs.Bool("route", false, "mark the longest route from the start")
	stats := fs.Bool("stats", false, "print generation metrics")
	list := fs.Bool("list", false, "list built-in templates and exit")
	verbose := fs.Bool("v", false, "log diagnostics to stderr")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		for _, name := range registry.TemplateNames() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "shipgen: %v\n", err)
		return 1
	}

	// Explicit flags override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = uint32(seed)
		case "template":
			cfg.Template = *templateName
		case "template-file":
			cfg.TemplateFile = *templateFile
		case "catalog":
			cfg.CatalogFile = *catalogFile
		}
	})

	logger := log.New(io.Discard, "", 0)
	if *verbose || cfg.Debug {
		logger = log.New(stderr, "shipgen: ", 0)
	}

	tpl, err := registry.ResolveTemplate(cfg.Template, cfg.TemplateFile)
	if err != nil {
		fmt.Fprintf(stderr, "shipgen: %v\n", err)
		return 1
	}
	cat, err := registry.ResolveCatalog(cfg.CatalogFile)
	if err != nil {
		fmt.Fprintf(stderr, "shipgen: %v\n", err)
		return 1
	}

	layer := render.NewLayer(cat.MaxTextureID() + 1)
	metrics := status.NewRegistry()
	gen, err := generator.New(tpl, cat, layer, cfg.Seed,
		generator.WithLogger(logger), generator.WithMetrics(metrics))
	if err != nil {
		fmt.Fprintf(stderr, "shipgen: %v\n", err)
		return 1
	}

	glyphs := render.GlyphsFor(cat)
	for i := 0; i < *count; i++ {
		res, err := gen.Generate()
		if err != nil {
			fmt.Fprintf(stderr, "shipgen: %v\n", err)
			return 1
		}

		fmt.Fprintf(stdout, "# %s seed=%d start=%d,%d\n", tpl.Name, res.Seed, res.Start.X, res.Start.Y)
		lines := layer.Lines(glyphs)
		if *route {
			path := longestRoute(res)
			markRoute(lines, path)
			fmt.Fprintf(stdout, "# route: %d cells\n", len(path))
		}
		fmt.Fprintln(stdout, strings.Join(lines, "\n"))

		for _, d := range res.Diagnostics {
			fmt.Fprintf(stderr, "warning: %v\n", d)
		}
		if *stats {
			for _, m := range metrics.Snapshot() {
				fmt.Fprintf(stdout, "%-18s %s\n", m.Key, m.Value)
			}
		}
	}
	return 0
}

// longestRoute returns the path from the start to the farthest reachable cell
func longestRoute(res *generator.Result) []blueprint.Coord {
	var best []blueprint.Coord
	for _, cell := range res.Cells() {
		if p := res.Route(res.Start, cell.Coord); len(p) > len(best) {
			best = p
		}
	}
	return best
}

// markRoute draws the interior of path as dots, keeping its endpoints
func markRoute(lines []string, path []blueprint.Coord) {
	if len(path) < 3 {
		return
	}
	rows := make([][]rune, len(lines))
	for y, l := range lines {
		rows[y] = []rune(l)
	}
	for _, c := range path[1 : len(path)-1] {
		rows[c.Y][c.X] = '•'
	}
	for y, r := range rows {
		lines[y] = string(r)
	}
}
