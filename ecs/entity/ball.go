package entity

import (
	"fmt"

	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
	"github.com/milk9111/kickabout/prefabs"
)

func NewBall(w *ecs.World, spec prefabs.BallSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := addTransform(w, e, spec.Transform); err != nil {
		return 0, fmt.Errorf("ball: add transform: %w", err)
	}

	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Role:       component.BodyBall,
		Radius:     spec.Radius,
		Mass:       spec.Mass,
		Friction:   spec.Friction,
		Elasticity: spec.Elasticity,
		Damping:    spec.Damping,
	}); err != nil {
		return 0, fmt.Errorf("ball: add physics body: %w", err)
	}

	if err := ecs.Add(w, e, component.BallComponent.Kind(), &component.Ball{}); err != nil {
		return 0, fmt.Errorf("ball: add ball: %w", err)
	}

	if err := ecs.Add(w, e, component.LabelComponent.Kind(), &component.Label{Name: "BALL", Visible: spec.Label}); err != nil {
		return 0, fmt.Errorf("ball: add label: %w", err)
	}

	if err := addAppearance(w, e, spec.Color); err != nil {
		return 0, fmt.Errorf("ball: add appearance: %w", err)
	}

	return e, nil
}
