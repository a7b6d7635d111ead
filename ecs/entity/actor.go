package entity

import (
	"fmt"

	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
	"github.com/milk9111/kickabout/prefabs"
)

const (
	defaultActorWidth  = 28.0
	defaultActorHeight = 40.0
)

func NewActor(w *ecs.World, spec prefabs.ActorSpec, anim prefabs.AnimationSpec, tuning common.Tuning) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := addTransform(w, e, spec.Transform); err != nil {
		return 0, fmt.Errorf("actor %s: add transform: %w", spec.Name, err)
	}

	width, height := spec.Collider.Width, spec.Collider.Height
	if width <= 0 {
		width = defaultActorWidth
	}
	if height <= 0 {
		height = defaultActorHeight
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Role:         component.BodyActor,
		Width:        width,
		Height:       height,
		Mass:         1,
		SensorRadius: spec.SensorRadius,
	}); err != nil {
		return 0, fmt.Errorf("actor %s: add physics body: %w", spec.Name, err)
	}

	var facing common.Vec2
	if spec.Facing != nil {
		facing = common.V(spec.Facing.X, spec.Facing.Y)
	}
	if err := ecs.Add(w, e, component.ActorComponent.Kind(), &component.Actor{
		Name:       spec.Name,
		Spawn:      common.V(spec.Transform.X, spec.Transform.Y),
		Facing:     facing,
		Speed:      tuning.MoveSpeed,
		BallOffset: tuning.BallOffset,
	}); err != nil {
		return 0, fmt.Errorf("actor %s: add actor: %w", spec.Name, err)
	}

	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("actor %s: add input: %w", spec.Name, err)
	}

	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), newAnimation(anim)); err != nil {
		return 0, fmt.Errorf("actor %s: add animation: %w", spec.Name, err)
	}

	if err := ecs.Add(w, e, component.LabelComponent.Kind(), &component.Label{Name: spec.Name, Visible: spec.Label}); err != nil {
		return 0, fmt.Errorf("actor %s: add label: %w", spec.Name, err)
	}

	if err := addAppearance(w, e, spec.Color); err != nil {
		return 0, fmt.Errorf("actor %s: add appearance: %w", spec.Name, err)
	}

	return e, nil
}

func newAnimation(spec prefabs.AnimationSpec) *component.Animation {
	defs := make(map[component.AnimationID]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		id := component.AnimationID(name)
		defs[id] = component.AnimationDef{
			Name:       id,
			FrameCount: def.FrameCount,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
	}

	current := component.AnimationID(spec.Current)
	if current == "" {
		current = component.AnimWalkDown
	}
	return &component.Animation{Defs: defs, Current: current}
}
