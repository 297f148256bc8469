package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/shipyard/audio"
	"github.com/lixenwraith/shipyard/blueprint"
	"github.com/lixenwraith/shipyard/catalog"
	"github.com/lixenwraith/shipyard/generator"
	"github.com/lixenwraith/shipyard/render/sprite"
)

// margin around the layout and room for the status line, pixels
const (
	margin       = 16
	statusHeight = 32
)

var background = color.RGBA{20, 22, 28, 255}

// Game implements ebiten.Game for one template
type Game struct {
	template *blueprint.Template
	catalog  *catalog.Catalog
	sink     *sprite.Sink
	gen      *generator.Generator
	player   *audio.Player
	seed     uint32
	newSeed  func() uint32 // source for N
	status   string
}

// NewGame generates the first layout for tpl
func NewGame(tpl *blueprint.Template, cat *catalog.Catalog, sheet *sprite.Sheet, seed uint32, player *audio.Player) (*Game, error) {
	g := &Game{
		template: tpl,
		catalog:  cat,
		sink:     sprite.NewSink(sheet),
		player:   player,
		newSeed: func() uint32 {
			return uint32(time.Now().UnixNano())
		},
	}
	if err := g.restart(seed); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) restart(seed uint32) error {
	gen, err := generator.New(g.template, g.catalog, g.sink, seed)
	if err != nil {
		log.Printf("restart %q with seed %d: %v", g.template.Name, seed, err)
		g.status = err.Error()
		g.player.Play(audio.CueError)
		return err
	}
	g.gen, g.seed = gen, seed
	return g.regenerate()
}

func (g *Game) regenerate() error {
	res, err := g.gen.Generate()
	if err != nil {
		log.Printf("generate %q: %v", g.template.Name, err)
		g.status = err.Error()
		g.player.Play(audio.CueError)
		return err
	}
	g.status = fmt.Sprintf("%s  seed %d  start %d,%d  [R]egenerate [N]ew seed [S]tart over",
		g.template.Name, res.Seed, res.Start.X, res.Start.Y)
	g.player.Play(audio.CueGenerated)
	return nil
}

// keys are the bindings handleKey understands
var keys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyR, ebiten.KeyN, ebiten.KeyS, ebiten.KeyM}

// Update handles input
func (g *Game) Update() error {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return g.handleKey(k)
		}
	}
	return nil
}

// handleKey applies one key press. Failed generations stay in the status line
func (g *Game) handleKey(k ebiten.Key) error {
	switch k {
	case ebiten.KeyEscape:
		return ebiten.Termination
	case ebiten.KeyR:
		_ = g.regenerate()
	case ebiten.KeyN:
		_ = g.restart(g.newSeed())
	case ebiten.KeyS:
		_ = g.restart(g.seed)
	case ebiten.KeyM:
		g.player.SetMuted(!g.player.Muted())
	}
	return nil
}

// Draw paints the layout below the status line
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.sink.Draw(screen, margin, margin+statusHeight)
	ebitenutil.DebugPrintAt(screen, g.status, margin, margin/2)
}

// Layout keeps the logical screen at the layout size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.sink.Bounds()
	return windowSize(w, h)
}

// windowSize pads layout pixel bounds with the margin and status line
func windowSize(layoutW, layoutH int) (int, int) {
	return layoutW + 2*margin, layoutH + 2*margin + statusHeight
}
