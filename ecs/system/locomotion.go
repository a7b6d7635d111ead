package system

import (
	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
)

// LocomotionSystem turns move signals into physics commands and derives each
// actor's facing and walk animation from the velocity the physics layer
// reports.
type LocomotionSystem struct {
	physics Physics
	tuning  *common.Tuning
}

func NewLocomotionSystem(physics Physics, tuning *common.Tuning) *LocomotionSystem {
	if tuning == nil {
		t := common.DefaultTuning()
		tuning = &t
	}
	return &LocomotionSystem{physics: physics, tuning: tuning}
}

func (s *LocomotionSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.physics == nil {
		return
	}

	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, actor *component.Actor) {
		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			s.handleInput(w, e, actor, input)
		}
		s.step(w, e, actor)
	})
}

// SetDestination records target as the actor's goal and issues one
// constant-speed move command. A newer destination replaces the old one.
func (s *LocomotionSystem) SetDestination(w *ecs.World, e ecs.Entity, target common.Vec2) {
	actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
	if !ok {
		return
	}
	dest := target
	actor.Destination = &dest
	actor.DestinationDist = 0
	s.physics.MoveToward(e, target, actor.Speed)
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		anim.ForceRestart = true
	}
}

func (s *LocomotionSystem) handleInput(w *ecs.World, e ecs.Entity, actor *component.Actor, input *component.Input) {
	if input.RecenterPressed {
		input.RecenterPressed = false
		actor.Destination = nil
		actor.DestinationDist = 0
		s.physics.SetPosition(e, actor.Spawn)
		s.physics.SetVelocity(e, common.Vec2{})
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.SetPosition(actor.Spawn)
		}
	}

	if input.MovePressed {
		input.MovePressed = false
		s.SetDestination(w, e, input.MoveTarget)
	}

	if input.PointerMoved {
		input.PointerMoved = false
		pointer := input.Pointer
		actor.Pointer = &pointer
	}
}

func (s *LocomotionSystem) step(w *ecs.World, e ecs.Entity, actor *component.Actor) {
	vel := s.physics.Velocity(e)
	// a stopped actor keeps its last facing so it can still shoot and juggle
	if !vel.IsZero() {
		actor.Facing = vel.Normalize()
	}

	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		s.animate(anim, vel)
	}

	if actor.Destination == nil {
		s.physics.SetVelocity(e, common.Vec2{})
		s.physics.SetAcceleration(e, common.Vec2{})
		return
	}

	pos, ok := s.physics.Position(e)
	if !ok {
		return
	}
	dist := actor.Destination.Dist(pos)
	// crossed: last tick was within one step and the actor is now further
	// away, so it walked through the target between two samples
	reach := actor.Speed * float64(w.Delta()) / 1000.0
	prev := actor.DestinationDist
	crossed := prev > 0 && prev <= reach && dist > prev
	if dist <= s.tuning.ArrivalRadius || crossed {
		// velocity is zeroed by the idle branch on the next tick
		actor.Destination = nil
		actor.DestinationDist = 0
		return
	}
	actor.DestinationDist = dist
}

func (s *LocomotionSystem) animate(anim *component.Animation, vel common.Vec2) {
	defer func() { anim.ForceRestart = false }()

	if vel.IsZero() {
		anim.Stop()
		return
	}

	id := AnimationForThreshold(vel, s.tuning.HorizontalDeflection)
	if id != anim.Current || anim.ForceRestart || !anim.Playing {
		anim.Play(id)
	}
}
