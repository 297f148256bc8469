package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shipyard/audio"
	"github.com/lixenwraith/shipyard/blueprint"
	"github.com/lixenwraith/shipyard/catalog"
	"github.com/lixenwraith/shipyard/generator"
	"github.com/lixenwraith/shipyard/render/term"
	"github.com/lixenwraith/shipyard/status"
)

const helpLine = "r regenerate  n new seed  s restart seed  p route  m mute  q quit"

// Viewer shows one generator's layouts on a terminal screen
type Viewer struct {
	screen   tcell.Screen
	template *blueprint.Template
	catalog  *catalog.Catalog
	sink     *term.Sink
	gen      *generator.Generator
	player   *audio.Player
	metrics  *status.Registry

	seed      uint32        // seed the current generator started from
	newSeed   func() uint32 // source for 'n'
	showRoute bool
	message   string
}

// NewViewer builds a generator for tpl and renders its first layout
func NewViewer(screen tcell.Screen, tpl *blueprint.Template, cat *catalog.Catalog, seed uint32, player *audio.Player) (*Viewer, error) {
	v := &Viewer{
		screen:   screen,
		template: tpl,
		catalog:  cat,
		sink:     term.NewSink(screen, cat),
		player:   player,
		metrics:  status.NewRegistry(),
		newSeed: func() uint32 {
			return uint32(time.Now().UnixNano())
		},
	}
	if err := v.restart(seed); err != nil {
		return nil, err
	}
	return v, nil
}

// restart replaces the generator with a fresh one seeded with seed
func (v *Viewer) restart(seed uint32) error {
	gen, err := generator.New(v.template, v.catalog, v.sink, seed, generator.WithMetrics(v.metrics))
	if err != nil {
		log.Printf("restart %q with seed %d: %v", v.template.Name, seed, err)
		v.message = err.Error()
		v.player.Play(audio.CueError)
		return err
	}
	v.gen, v.seed = gen, seed
	return v.regenerate()
}

// regenerate draws the next layout from the current generator
func (v *Viewer) regenerate() error {
	res, err := v.gen.Generate()
	if err != nil {
		log.Printf("generate %q: %v", v.template.Name, err)
		v.message = err.Error()
		v.player.Play(audio.CueError)
		return err
	}
	v.message = fmt.Sprintf("seed %d  start %d,%d  cells %d", res.Seed, res.Start.X, res.Start.Y, res.Len())
	if n := len(res.Diagnostics); n > 0 {
		v.message += fmt.Sprintf("  %d unmatched", n)
	}
	v.updateRoute()
	v.player.Play(audio.CueGenerated)
	return nil
}

// updateRoute highlights the path from the start to the farthest cell
func (v *Viewer) updateRoute() {
	res := v.gen.Result()
	if !v.showRoute || res == nil {
		v.sink.Highlight(nil)
		return
	}
	var best []blueprint.Coord
	for _, cell := range res.Cells() {
		if p := res.Route(res.Start, cell.Coord); len(p) > len(best) {
			best = p
		}
	}
	v.sink.Highlight(best)
}

// handleInput applies one event; it returns false to quit
func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			_ = v.regenerate()
		case 'n':
			_ = v.restart(v.newSeed())
		case 's':
			_ = v.restart(v.seed)
		case 'p':
			v.showRoute = !v.showRoute
			v.updateRoute()
			if v.showRoute {
				v.player.Play(audio.CueRoute)
			}
		case 'm':
			v.player.SetMuted(!v.player.Muted())
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// draw centers the layout with status lines below it
func (v *Viewer) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	rows, cols := v.sink.Size()

	x0 := max(0, (width-cols)/2)
	y0 := max(0, (height-rows-3)/2)
	v.sink.Draw(x0, y0)

	title := v.template.Name
	if v.player.Muted() {
		title += "  [muted]"
	}
	term.DrawText(v.screen, 0, 0, tcell.StyleDefault.Bold(true), title)
	term.DrawText(v.screen, 0, height-2, tcell.StyleDefault, v.message)
	term.DrawText(v.screen, 0, height-1, tcell.StyleDefault.Foreground(tcell.ColorGray), helpLine)
	v.screen.Show()
}

func (v *Viewer) run() {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	v.draw()
	for ev := range events {
		if !v.handleInput(ev) {
			return
		}
		v.draw()
	}
}
