package system

import (
	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
)

// PossessionSystem hands a free ball to the first actor whose possession
// sensor reports an overlap this tick.
type PossessionSystem struct {
	physics Physics
}

func NewPossessionSystem(physics Physics) *PossessionSystem {
	return &PossessionSystem{physics: physics}
}

func (s *PossessionSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.physics == nil {
		return
	}

	for _, c := range w.Events().Contacts(ecs.ContactOverlap) {
		s.acquire(w, c.Subject, c.Ball)
	}
}

func (s *PossessionSystem) acquire(w *ecs.World, actorEnt, ballEnt ecs.Entity) {
	ball, ok := ecs.Get(w, ballEnt, component.BallComponent.Kind())
	if !ok {
		return
	}
	actor, ok := ecs.Get(w, actorEnt, component.ActorComponent.Kind())
	if !ok || actor.ShotCooldown {
		return
	}
	if _, owned := Owner(w, ballEnt); owned {
		return
	}

	ball.Owner = uint64(actorEnt)
	s.physics.SetVelocity(ballEnt, common.Vec2{})
	s.physics.SetAcceleration(ballEnt, common.Vec2{})
	w.Events().Push(ecs.Event{Type: ecs.EventPossession, Data: PossessionEvent{Ball: ballEnt, Actor: actorEnt}})
}

// Owner returns the live actor holding ball. A stale handle reads as free.
func Owner(w *ecs.World, ballEnt ecs.Entity) (ecs.Entity, bool) {
	ball, ok := ecs.Get(w, ballEnt, component.BallComponent.Kind())
	if !ok || ball.Free() {
		return 0, false
	}
	owner := ecs.Entity(ball.Owner)
	if !w.IsAlive(owner) || !ecs.Has(w, owner, component.ActorComponent.Kind()) {
		return 0, false
	}
	return owner, true
}

// IsOwnedBy reports whether actor currently owns ball.
func IsOwnedBy(w *ecs.World, ballEnt, actorEnt ecs.Entity) bool {
	owner, ok := Owner(w, ballEnt)
	return ok && owner == actorEnt
}

// releaseBall frees the ball and starts the shooter's immunity window. Every
// release arms its own timer; re-enabling twice is harmless.
func releaseBall(w *ecs.World, physics Physics, ballEnt, shooter ecs.Entity, immunityMs int64) {
	ball, ok := ecs.Get(w, ballEnt, component.BallComponent.Kind())
	if !ok {
		return
	}
	ball.Owner = 0

	if actor, ok := ecs.Get(w, shooter, component.ActorComponent.Kind()); ok {
		actor.IsAiming = false
		actor.ShotCooldown = true
	}
	physics.SetOverlapEnabled(shooter, false)

	w.After(immunityMs, shooter, func(w *ecs.World, e ecs.Entity) {
		if actor, ok := ecs.Get(w, e, component.ActorComponent.Kind()); ok {
			actor.ShotCooldown = false
		}
		physics.SetOverlapEnabled(e, true)
	})
}
