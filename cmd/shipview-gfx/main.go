package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/shipyard/audio"
	"github.com/lixenwraith/shipyard/config"
	"github.com/lixenwraith/shipyard/registry"
	"github.com/lixenwraith/shipyard/render/sprite"
)

func main() {
	configPath := flag.String("config", "", "TOML config file")
	var seed config.SeedValue
	flag.Var(&seed, "seed", "PRNG seed (0..4294967295)")
	templateName := flag.String("template", "", "built-in template name")
	templateFile := flag.String("template-file", "", "TOML template file")
	catalogFile := flag.String("catalog", "", "TOML catalog file")
	sheetPath := flag.String("sheet", "", "sprite sheet PNG, texture ids row-major")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = uint32(seed)
		case "template":
			cfg.Template = *templateName
		case "template-file":
			cfg.TemplateFile = *templateFile
		case "catalog":
			cfg.CatalogFile = *catalogFile
		case "sheet":
			cfg.Sheet = *sheetPath
		case "mute":
			cfg.Mute = *mute
		}
	})

	tpl, err := registry.ResolveTemplate(cfg.Template, cfg.TemplateFile)
	if err != nil {
		log.Fatal(err)
	}
	cat, err := registry.ResolveCatalog(cfg.CatalogFile)
	if err != nil {
		log.Fatal(err)
	}

	var sheet *sprite.Sheet
	if cfg.Sheet != "" {
		sheet, err = sprite.LoadSheet(cfg.Sheet, cfg.SourceSize, cfg.TileSize)
	} else {
		sheet, err = sprite.NewSheet(sprite.Placeholder(cat, cfg.SourceSize), cfg.SourceSize, cfg.TileSize)
	}
	if err != nil {
		log.Fatal(err)
	}

	acfg := audio.DefaultConfig()
	acfg.MasterVolume = cfg.Volume
	player := audio.NewPlayer(acfg)
	player.SetMuted(cfg.Mute)
	if err := player.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v", err)
	}
	defer player.Cleanup()

	game, err := NewGame(tpl, cat, sheet, cfg.Seed, player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shipview-gfx: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(game.Layout(0, 0))
	ebiten.SetWindowTitle("Shipyard - " + tpl.Name)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
