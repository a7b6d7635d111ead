package entity

import (
	"fmt"

	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
	"github.com/milk9111/kickabout/prefabs"
)

func NewGoalZone(w *ecs.World, spec prefabs.GoalSpec) (ecs.Entity, error) {
	side, err := ParseSide(spec.Side)
	if err != nil {
		return 0, err
	}

	e := ecs.CreateEntity(w)

	if err := addTransform(w, e, spec.Transform); err != nil {
		return 0, fmt.Errorf("goal %s: add transform: %w", side, err)
	}

	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Role:   component.BodyGoalZone,
		Width:  spec.Collider.Width,
		Height: spec.Collider.Height,
		Static: true,
	}); err != nil {
		return 0, fmt.Errorf("goal %s: add physics body: %w", side, err)
	}

	if err := ecs.Add(w, e, component.GoalZoneComponent.Kind(), &component.GoalZone{Side: side}); err != nil {
		return 0, fmt.Errorf("goal %s: add goal zone: %w", side, err)
	}

	if err := addAppearance(w, e, spec.Color); err != nil {
		return 0, fmt.Errorf("goal %s: add appearance: %w", side, err)
	}

	return e, nil
}

func ParseSide(s string) (component.Side, error) {
	switch s {
	case "left":
		return component.SideLeft, nil
	case "right":
		return component.SideRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", prefabs.ErrBadSide, s)
	}
}
