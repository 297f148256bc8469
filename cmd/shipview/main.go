package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shipyard/audio"
	"github.com/lixenwraith/shipyard/config"
	"github.com/lixenwraith/shipyard/registry"
)

func main() {
	configPath := flag.String("config", "", "TOML config file")
	var seed config.SeedValue
	flag.Var(&seed, "seed", "PRNG seed (0..4294967295)")
	templateName := flag.String("template", "", "built-in template name")
	templateFile := flag.String("template-file", "", "TOML template file")
	catalogFile := flag.String("catalog", "", "TOML catalog file")
	debugLog := flag.Bool("debug", false, "write logs/shipview.log")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shipview: %v\n", err)
		os.Exit(1)
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
		case "debug":
			cfg.Debug = *debugLog
		case "mute":
			cfg.Mute = *mute
		}
	})

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	tpl, err := registry.ResolveTemplate(cfg.Template, cfg.TemplateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shipview: %v\n", err)
		os.Exit(1)
	}
	cat, err := registry.ResolveCatalog(cfg.CatalogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shipview: %v\n", err)
		os.Exit(1)
	}

	acfg := audio.DefaultConfig()
	acfg.MasterVolume = cfg.Volume
	player := audio.NewPlayer(acfg)
	player.SetMuted(cfg.Mute)
	if err := player.Initialize(); err != nil {
		// Non-fatal, the viewer runs silent
		log.Printf("audio initialization failed: %v", err)
	}
	defer player.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "shipview: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "shipview: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "shipview crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	viewer, err := NewViewer(screen, tpl, cat, cfg.Seed, player)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "shipview: %v\n", err)
		os.Exit(1)
	}

	viewer.run()
	screen.Fini()
}
