package simulation

import (
	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
	"github.com/milk9111/kickabout/ecs/system"
)

func (s *Simulation) World() *ecs.World {
	return s.world
}

// Actors returns the live actors in creation order.
func (s *Simulation) Actors() []ecs.Entity {
	out := make([]ecs.Entity, 0, len(s.match.Actors))
	for _, e := range s.match.Actors {
		if s.world.IsAlive(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Simulation) Actor(name string) (ecs.Entity, bool) {
	return system.ActorByName(s.world, name)
}

func (s *Simulation) Ball() ecs.Entity {
	return s.match.Ball
}

func (s *Simulation) Goals() []ecs.Entity {
	return append([]ecs.Entity(nil), s.match.Goals...)
}

// Owner returns the actor holding the ball, if any.
func (s *Simulation) Owner() (ecs.Entity, bool) {
	return system.Owner(s.world, s.match.Ball)
}

func (s *Simulation) IsOwnedBy(actor ecs.Entity) bool {
	return system.IsOwnedBy(s.world, s.match.Ball, actor)
}

// Position returns the physics position of e, falling back to its transform.
func (s *Simulation) Position(e ecs.Entity) common.Vec2 {
	if pos, ok := s.physics.Position(e); ok {
		return pos
	}
	if t, ok := ecs.Get(s.world, e, component.TransformComponent.Kind()); ok {
		return t.Position()
	}
	return common.Vec2{}
}

func (s *Simulation) Velocity(e ecs.Entity) common.Vec2 {
	return s.physics.Velocity(e)
}

func (s *Simulation) state() component.MatchState {
	if state, ok := ecs.Get(s.world, s.match.State, component.MatchStateComponent.Kind()); ok {
		return *state
	}
	return component.MatchState{}
}

func (s *Simulation) Score() (left, right int) {
	state := s.state()
	return state.ScoreLeft, state.ScoreRight
}

func (s *Simulation) RemainingMs() int64 {
	return s.state().RemainingMs
}

// Clock renders the remaining time as mm:ss.
func (s *Simulation) Clock() string {
	return system.FormatClock(s.RemainingMs())
}

func (s *Simulation) Over() bool {
	return s.state().Over
}

// Bounds returns the field size.
func (s *Simulation) Bounds() (width, height float64) {
	if b, ok := ecs.Get(s.world, s.match.Field, component.LevelBoundsComponent.Kind()); ok {
		return b.Width, b.Height
	}
	return common.FieldWidth, common.FieldHeight
}
