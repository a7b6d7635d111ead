package entity

import (
	"fmt"

	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
	"github.com/milk9111/kickabout/prefabs"
)

func addTransform(w *ecs.World, e ecs.Entity, spec prefabs.TransformSpec) error {
	scaleX, scaleY := spec.ScaleX, spec.ScaleY
	if scaleX == 0 {
		scaleX = 1
	}
	if scaleY == 0 {
		scaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   scaleX,
		ScaleY:   scaleY,
		Rotation: spec.Rotation,
	})
}

func addAppearance(w *ecs.World, e ecs.Entity, c *prefabs.YAMLColor) error {
	if c == nil || c.Color == nil {
		return nil
	}
	return ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{Color: c.Color})
}

// SetEntityTransform moves an entity that has not been handed to the physics
// layer yet.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("entity: %s has no transform", e)
	}
	t.X = x
	t.Y = y
	return nil
}
