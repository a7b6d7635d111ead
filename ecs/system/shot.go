package system

import (
	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
)

// ShotSystem consumes shoot, aim and fire signals. Only the ball's owner can
// shoot; everyone else is ignored.
type ShotSystem struct {
	physics Physics
	tuning  *common.Tuning
}

func NewShotSystem(physics Physics, tuning *common.Tuning) *ShotSystem {
	if tuning == nil {
		t := common.DefaultTuning()
		tuning = &t
	}
	return &ShotSystem{physics: physics, tuning: tuning}
}

func (s *ShotSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.physics == nil {
		return
	}

	ballEnt, hasBall := w.First(component.BallComponent.Kind())

	ecs.ForEach2(w, component.ActorComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, actor *component.Actor, input *component.Input) {
		toggle, shoot, fire := input.AimTogglePressed, input.ShootPressed, input.FirePressed
		input.AimTogglePressed = false
		input.ShootPressed = false
		input.FirePressed = false

		if !hasBall {
			return
		}
		if toggle && s.tuning.ChargeShots {
			s.ToggleAim(w, e, ballEnt)
		}
		if shoot && s.tuning.InstantShots {
			s.ShootInstant(w, e, ballEnt)
		}
		if fire && s.tuning.ChargeShots {
			s.FireAimed(w, e, ballEnt)
		}
	})
}

// ShootInstant fires the ball along the shooter's facing.
func (s *ShotSystem) ShootInstant(w *ecs.World, shooter, ballEnt ecs.Entity) {
	if !IsOwnedBy(w, ballEnt, shooter) {
		return
	}
	s.fire(w, shooter, ballEnt, false)
}

// ToggleAim flips the owner's aiming flag.
func (s *ShotSystem) ToggleAim(w *ecs.World, shooter, ballEnt ecs.Entity) {
	if !IsOwnedBy(w, ballEnt, shooter) {
		return
	}
	if actor, ok := ecs.Get(w, shooter, component.ActorComponent.Kind()); ok {
		actor.IsAiming = !actor.IsAiming
	}
}

// FireAimed fires only while the owner is aiming.
func (s *ShotSystem) FireAimed(w *ecs.World, shooter, ballEnt ecs.Entity) {
	if !IsOwnedBy(w, ballEnt, shooter) {
		return
	}
	actor, ok := ecs.Get(w, shooter, component.ActorComponent.Kind())
	if !ok || !actor.IsAiming {
		return
	}
	s.fire(w, shooter, ballEnt, true)
}

func (s *ShotSystem) fire(w *ecs.World, shooter, ballEnt ecs.Entity, aimed bool) {
	actor, ok := ecs.Get(w, shooter, component.ActorComponent.Kind())
	if !ok {
		return
	}

	pos, ok := s.physics.Position(shooter)
	if !ok {
		if t, hasT := ecs.Get(w, shooter, component.TransformComponent.Kind()); hasT {
			pos = t.Position()
		}
	}
	impulse := ShotImpulse(*actor, pos, s.tuning.ShotPower)
	s.physics.SetVelocity(ballEnt, impulse)
	releaseBall(w, s.physics, ballEnt, shooter, s.tuning.ImmunityWindowMs)

	w.Events().Push(ecs.Event{Type: ecs.EventShot, Data: ShotEvent{Ball: ballEnt, Actor: shooter, Impulse: impulse, Aimed: aimed}})
}

// ShotImpulse is the ball velocity a shot from actor standing at pos
// produces. A standing actor with a known pointer shoots flat toward the
// pointer's side of pos.
func ShotImpulse(actor component.Actor, pos common.Vec2, power float64) common.Vec2 {
	if side := actor.PointerSide(pos); !actor.Navigating() && side != 0 {
		return common.Vec2{X: float64(side) * power}
	}
	return actor.FacingDir().Scale(power)
}
