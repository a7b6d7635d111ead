package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
)

var (
	fieldColor = color.NRGBA{R: 0x2f, G: 0x7d, B: 0x32, A: 0xff}
	lineColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x90}
	actorColor = color.NRGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff}
	ballColor  = color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	goalColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x55}
	aimColor   = color.NRGBA{R: 0xff, G: 0xd5, B: 0x4f, A: 0xff}
	textColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// viewport fits the whole field into the layout, letterboxed.
type viewport struct {
	scale   float64
	offsetX float64
	offsetY float64
}

func newViewport(fieldW, fieldH float64) viewport {
	if fieldW <= 0 || fieldH <= 0 {
		return viewport{scale: 1}
	}
	scale := math.Min(baseWidth/fieldW, baseHeight/fieldH)
	return viewport{
		scale:   scale,
		offsetX: (baseWidth - fieldW*scale) / 2,
		offsetY: (baseHeight - fieldH*scale) / 2,
	}
}

func (v viewport) toScreen(p common.Vec2) (float32, float32) {
	return float32(p.X*v.scale + v.offsetX), float32(p.Y*v.scale + v.offsetY)
}

func (v viewport) toWorld(x, y float64) common.Vec2 {
	if v.scale == 0 {
		return common.V(x, y)
	}
	return common.V((x-v.offsetX)/v.scale, (y-v.offsetY)/v.scale)
}

func appearance(w *ecs.World, e ecs.Entity, fallback color.Color) color.Color {
	if a, ok := ecs.Get(w, e, component.AppearanceComponent.Kind()); ok && a.Color != nil {
		return a.Color
	}
	return fallback
}

func (g *Game) drawField(screen *ebiten.Image) {
	w := g.sim.World()
	width, height := g.sim.Bounds()
	x, y := g.view.toScreen(common.Vec2{})
	fw, fh := float32(width*g.view.scale), float32(height*g.view.scale)

	fill := color.Color(fieldColor)
	if e, ok := w.First(component.LevelBoundsComponent.Kind()); ok {
		fill = appearance(w, e, fieldColor)
	}
	vector.FillRect(screen, x, y, fw, fh, fill, false)
	vector.StrokeRect(screen, x, y, fw, fh, 2, lineColor, false)
	vector.StrokeLine(screen, x+fw/2, y, x+fw/2, y+fh, 2, lineColor, false)
	vector.StrokeCircle(screen, x+fw/2, y+fh/2, float32(120*g.view.scale), 2, lineColor, true)

	ecs.ForEach3(w, component.GoalZoneComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, _ *component.GoalZone, t *component.Transform, body *component.PhysicsBody) {
		gx, gy := g.view.toScreen(common.V(t.X-body.Width/2, t.Y-body.Height/2))
		vector.FillRect(screen, gx, gy, float32(body.Width*g.view.scale), float32(body.Height*g.view.scale), appearance(w, e, goalColor), false)
	})
}

func (g *Game) drawEntities(screen *ebiten.Image) {
	w := g.sim.World()
	active, _ := g.activeActor()

	ecs.ForEach3(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, actor *component.Actor, t *component.Transform, body *component.PhysicsBody) {
		x, y := g.view.toScreen(common.V(t.X-body.Width/2, t.Y-body.Height/2))
		bw, bh := float32(body.Width*g.view.scale), float32(body.Height*g.view.scale)
		vector.FillRect(screen, x, y, bw, bh, appearance(w, e, actorColor), false)
		if e == active {
			vector.StrokeRect(screen, x, y, bw, bh, 2, textColor, false)
		}
		if actor.IsAiming {
			g.drawAim(screen, t.Position(), *actor)
		}
	})

	ecs.ForEach3(w, component.BallComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, _ *component.Ball, t *component.Transform, body *component.PhysicsBody) {
		x, y := g.view.toScreen(t.Position())
		vector.FillCircle(screen, x, y, float32(body.Radius*g.view.scale), appearance(w, e, ballColor), true)
	})
}

func (g *Game) drawAim(screen *ebiten.Image, from common.Vec2, actor component.Actor) {
	dir := actor.FacingDir()
	if side := actor.PointerSide(from); !actor.Navigating() && side != 0 {
		dir = common.V(float64(side), 0)
	}
	to := from.Add(dir.Scale(80))
	x0, y0 := g.view.toScreen(from)
	x1, y1 := g.view.toScreen(to)
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, aimColor, true)
}

func (g *Game) drawLabels(screen *ebiten.Image) {
	w := g.sim.World()
	ecs.ForEach2(w, component.LabelComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, label *component.Label, t *component.Transform) {
		if !label.Visible || label.Text == "" {
			return
		}
		tw, th := ebtext.Measure(label.Text, g.face, 0)
		x, y := g.view.toScreen(t.Position())
		g.drawText(screen, label.Text, float64(x)-tw/2, float64(y)-th-20)
	})
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("%s   %s", g.sim.Clock(), g.scoreText())
	if g.sim.Over() {
		hud += "   FULL TIME"
	}
	tw, _ := ebtext.Measure(hud, g.face, 0)
	g.drawText(screen, hud, (baseWidth-tw)/2, 8)

	if g.labels {
		g.drawText(screen, fmt.Sprintf("TPS: %.2f  FPS: %.2f", ebiten.ActualTPS(), ebiten.ActualFPS()), 8, 8)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	ebtext.Draw(screen, s, g.face, op)
}
