package system

import (
	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
)

// PossessionEvent is published when an actor takes a free ball.
type PossessionEvent struct {
	Ball  ecs.Entity
	Actor ecs.Entity
}

// ShotEvent is published when an owner releases the ball with an impulse.
type ShotEvent struct {
	Ball    ecs.Entity
	Actor   ecs.Entity
	Impulse common.Vec2
	Aimed   bool
}

// GoalEvent is published once per ball entry into a goal zone.
type GoalEvent struct {
	Zone       ecs.Entity
	Scorer     component.Side
	ScoreLeft  int
	ScoreRight int
}

// MatchOverEvent is published once, on the tick the clock reaches zero.
type MatchOverEvent struct {
	ScoreLeft  int
	ScoreRight int
}
