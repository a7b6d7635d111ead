package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/kickabout/ecs/component"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"
)

// handleInput turns device state into action signals for the active actor.
// Each signal is sent once per press.
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.active++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.labels = !g.labels
		g.sim.SetLabelsVisible(g.labels)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyTuning()
	}

	actor, ok := g.activeActor()
	if !ok {
		return
	}

	cx, cy := ebiten.CursorPosition()
	pointer := g.view.toWorld(float64(cx), float64(cy))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.sim.Signal(actor, component.MoveTo(pointer))
	}
	if ptr := [2]int{cx, cy}; ptr != g.lastPtr {
		g.lastPtr = ptr
		g.sim.Signal(actor, component.FacePointer(pointer))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.Signal(actor, component.ShootInstant())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.sim.Signal(actor, component.ToggleAim())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.sim.Signal(actor, component.FireAimed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Signal(actor, component.Recenter())
	}
}

type tuningSnapshot struct {
	MoveSpeed            float64 `yaml:"move_speed"`
	BallOffset           float64 `yaml:"ball_offset"`
	ShotPower            float64 `yaml:"shot_power"`
	ArrivalRadius        float64 `yaml:"arrival_radius"`
	HorizontalDeflection float64 `yaml:"horizontal_deflection"`
	ImmunityMs           int64   `yaml:"immunity_ms"`
}

// copyTuning puts the live tuning on the clipboard as a yaml block that can
// be pasted back into the match prefab.
func (g *Game) copyTuning() {
	if err := clipboard.Init(); err != nil {
		log.Printf("game: clipboard unavailable: %v", err)
		return
	}

	t := g.sim.Tuning()
	data, err := yaml.Marshal(map[string]tuningSnapshot{"tuning": {
		MoveSpeed:            t.MoveSpeed,
		BallOffset:           t.BallOffset,
		ShotPower:            t.ShotPower,
		ArrivalRadius:        t.ArrivalRadius,
		HorizontalDeflection: t.HorizontalDeflection,
		ImmunityMs:           t.ImmunityWindowMs,
	}})
	if err != nil {
		log.Printf("game: marshal tuning: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("game: tuning copied to clipboard")
}
