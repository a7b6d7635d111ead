// Package systemtest provides a scriptable stand-in for the physics layer so
// gameplay systems can be exercised without a Chipmunk space.
package systemtest

import (
	"sort"

	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
)

// Body is the fake rigid-body state of one entity.
type Body struct {
	Position     common.Vec2
	Velocity     common.Vec2
	Acceleration common.Vec2
	HalfHeight   float64
}

// Physics integrates positions with plain Euler steps and reports whatever
// contacts the test declares. It satisfies system.Physics.
type Physics struct {
	Bodies     map[ecs.Entity]*Body
	overlaps   map[[2]ecs.Entity]bool
	goals      map[[2]ecs.Entity]bool
	overlapOff map[ecs.Entity]bool

	// MoveCalls counts MoveToward commands per entity.
	MoveCalls map[ecs.Entity]int
	Steps     int
}

func NewPhysics() *Physics {
	return &Physics{
		Bodies:     make(map[ecs.Entity]*Body),
		overlaps:   make(map[[2]ecs.Entity]bool),
		goals:      make(map[[2]ecs.Entity]bool),
		overlapOff: make(map[ecs.Entity]bool),
		MoveCalls:  make(map[ecs.Entity]int),
	}
}

// SetOverlap declares whether actor and ball currently overlap.
func (p *Physics) SetOverlap(actor, ball ecs.Entity, touching bool) {
	key := [2]ecs.Entity{actor, ball}
	if touching {
		p.overlaps[key] = true
		return
	}
	delete(p.overlaps, key)
}

// SetGoalContact declares whether the ball currently touches a goal zone.
func (p *Physics) SetGoalContact(zone, ball ecs.Entity, touching bool) {
	key := [2]ecs.Entity{zone, ball}
	if touching {
		p.goals[key] = true
		return
	}
	delete(p.goals, key)
}

// OverlapEnabled reports the sensor state last requested for e.
func (p *Physics) OverlapEnabled(e ecs.Entity) bool {
	return !p.overlapOff[e]
}

func (p *Physics) Sync(w *ecs.World) {
	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		if _, ok := p.Bodies[e]; ok {
			continue
		}
		bc, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		p.Bodies[e] = &Body{Position: t.Position(), HalfHeight: bc.HalfHeight()}
	}
	for e := range p.Bodies {
		if !w.IsAlive(e) {
			delete(p.Bodies, e)
		}
	}
}

func (p *Physics) Update(w *ecs.World) {
	p.Sync(w)
	p.Steps++
	dt := float64(w.Delta()) / 1000.0
	for e, b := range p.Bodies {
		b.Velocity = b.Velocity.Add(b.Acceleration.Scale(dt))
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.SetPosition(b.Position)
		}
	}

	for _, key := range sortedKeys(p.overlaps) {
		if p.overlapOff[key[0]] {
			continue
		}
		w.Events().Push(ecs.Event{Type: ecs.EventContact, Data: ecs.ContactEvent{Kind: ecs.ContactOverlap, Subject: key[0], Ball: key[1]}})
	}
	for _, key := range sortedKeys(p.goals) {
		w.Events().Push(ecs.Event{Type: ecs.EventContact, Data: ecs.ContactEvent{Kind: ecs.ContactGoal, Subject: key[0], Ball: key[1]}})
	}
}

func (p *Physics) Velocity(e ecs.Entity) common.Vec2 {
	if b := p.Bodies[e]; b != nil {
		return b.Velocity
	}
	return common.Vec2{}
}

func (p *Physics) SetVelocity(e ecs.Entity, v common.Vec2) {
	if b := p.Bodies[e]; b != nil {
		b.Velocity = v
	}
}

func (p *Physics) SetAcceleration(e ecs.Entity, a common.Vec2) {
	if b := p.Bodies[e]; b != nil {
		b.Acceleration = a
	}
}

func (p *Physics) MoveToward(e ecs.Entity, dest common.Vec2, speed float64) {
	b := p.Bodies[e]
	if b == nil {
		return
	}
	p.MoveCalls[e]++
	b.Velocity = dest.Sub(b.Position).Normalize().Scale(speed)
}

func (p *Physics) Position(e ecs.Entity) (common.Vec2, bool) {
	if b := p.Bodies[e]; b != nil {
		return b.Position, true
	}
	return common.Vec2{}, false
}

func (p *Physics) SetPosition(e ecs.Entity, pos common.Vec2) {
	if b := p.Bodies[e]; b != nil {
		b.Position = pos
	}
}

func (p *Physics) BodyHalfHeight(e ecs.Entity) float64 {
	if b := p.Bodies[e]; b != nil {
		return b.HalfHeight
	}
	return 0
}

func (p *Physics) SetOverlapEnabled(e ecs.Entity, enabled bool) {
	if enabled {
		delete(p.overlapOff, e)
		return
	}
	p.overlapOff[e] = true
}

func sortedKeys(set map[[2]ecs.Entity]bool) [][2]ecs.Entity {
	out := make([][2]ecs.Entity, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}
