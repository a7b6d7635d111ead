package system

import (
	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
)

// BallSystem slaves an owned ball to its owner's feet. A free ball is left
// to the physics layer.
type BallSystem struct {
	physics Physics
}

func NewBallSystem(physics Physics) *BallSystem {
	return &BallSystem{physics: physics}
}

func (s *BallSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.physics == nil {
		return
	}

	ecs.ForEach2(w, component.BallComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ball *component.Ball, t *component.Transform) {
		owner, ok := Owner(w, e)
		if !ok {
			ball.Owner = 0
			return
		}
		actor, ok := ecs.Get(w, owner, component.ActorComponent.Kind())
		if !ok {
			return
		}

		pos := JugglePosition(s.ownerPosition(w, owner), s.physics.BodyHalfHeight(owner), *actor)
		s.physics.SetPosition(e, pos)
		s.physics.SetVelocity(e, common.Vec2{})
		t.SetPosition(pos)
	})
}

func (s *BallSystem) ownerPosition(w *ecs.World, owner ecs.Entity) common.Vec2 {
	if pos, ok := s.physics.Position(owner); ok {
		return pos
	}
	if t, ok := ecs.Get(w, owner, component.TransformComponent.Kind()); ok {
		return t.Position()
	}
	return common.Vec2{}
}

// JugglePosition is where an owned ball sits: in front of the owner's feet
// along its facing.
func JugglePosition(ownerPos common.Vec2, halfHeight float64, actor component.Actor) common.Vec2 {
	feet := ownerPos.Add(common.Vec2{Y: halfHeight})
	return feet.Add(actor.FacingDir().Scale(actor.BallOffset))
}
