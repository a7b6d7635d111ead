package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/prefabs"
	"github.com/milk9111/kickabout/simulation"
	"golang.org/x/image/font/basicfont"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

var errQuit = errors.New("quit")

type Game struct {
	sim       *simulation.Simulation
	matchFile string
	script    string

	watcher *prefabs.Watcher
	ui      *ebitenui.UI
	face    ebtext.Face

	paused  bool
	quit    bool
	labels  bool
	active  int
	lastPtr [2]int
	view    viewport
}

func NewGame(matchFile, script string, debug, watch bool) (*Game, error) {
	g := &Game{
		matchFile: matchFile,
		script:    script,
		labels:    debug,
		face:      ebtext.NewGoXFace(basicfont.Face7x13),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}

	if watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.ui = NewPauseUI(g)
	return g, nil
}

// restart rebuilds the match from its prefab.
func (g *Game) restart() error {
	var opts []simulation.Option
	if g.script != "" {
		opts = append(opts, simulation.WithScript(g.script))
	}
	sim, err := simulation.Load(g.matchFile, opts...)
	if err != nil {
		return fmt.Errorf("game: load match: %w", err)
	}
	g.sim = sim
	g.sim.SetLabelsVisible(g.labels)
	g.active = 0
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return errQuit
	}

	g.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.handleInput()

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	for _, evt := range g.sim.Tick(int64(1000 / tps)) {
		if evt.Type == ecs.EventMatchOver {
			log.Printf("game: full time %s", g.scoreText())
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view = newViewport(g.sim.Bounds())
	g.drawField(screen)
	g.drawEntities(screen)
	g.drawLabels(screen)
	g.drawHUD(screen)

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) activeActor() (ecs.Entity, bool) {
	actors := g.sim.Actors()
	if len(actors) == 0 {
		return 0, false
	}
	if g.active >= len(actors) {
		g.active = 0
	}
	return actors[g.active], true
}

func (g *Game) scoreText() string {
	left, right := g.sim.Score()
	return fmt.Sprintf("%d - %d", left, right)
}
