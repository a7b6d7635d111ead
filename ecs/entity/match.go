package entity

import (
	"fmt"

	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
	"github.com/milk9111/kickabout/prefabs"
)

// Match holds the handles of everything BuildMatch created.
type Match struct {
	State  ecs.Entity
	Field  ecs.Entity
	Ball   ecs.Entity
	Actors []ecs.Entity
	Goals  []ecs.Entity
}

// BuildMatch populates w from spec.
func BuildMatch(w *ecs.World, spec *prefabs.MatchSpec, tuning common.Tuning) (*Match, error) {
	if spec == nil {
		return nil, fmt.Errorf("match: nil spec")
	}

	m := &Match{}
	var err error

	if m.Field, err = NewField(w, spec.Field); err != nil {
		return nil, err
	}
	if m.State, err = NewMatchState(w, spec.RoundLength()); err != nil {
		return nil, err
	}

	for _, actorSpec := range spec.Actors {
		e, err := NewActor(w, actorSpec, spec.Animation, tuning)
		if err != nil {
			return nil, err
		}
		m.Actors = append(m.Actors, e)
	}

	if spec.Ball != nil {
		if m.Ball, err = NewBall(w, *spec.Ball); err != nil {
			return nil, err
		}
	}

	for _, goalSpec := range spec.Goals {
		e, err := NewGoalZone(w, goalSpec)
		if err != nil {
			return nil, err
		}
		m.Goals = append(m.Goals, e)
	}

	return m, nil
}

func NewField(w *ecs.World, spec prefabs.FieldSpec) (ecs.Entity, error) {
	width, height := spec.Width, spec.Height
	if width <= 0 {
		width = common.FieldWidth
	}
	if height <= 0 {
		height = common.FieldHeight
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("field: add bounds: %w", err)
	}
	if err := addAppearance(w, e, spec.Color); err != nil {
		return 0, fmt.Errorf("field: add appearance: %w", err)
	}
	return e, nil
}

func NewMatchState(w *ecs.World, roundMs int64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.MatchStateComponent.Kind(), &component.MatchState{
		RoundMs:     roundMs,
		RemainingMs: roundMs,
	}); err != nil {
		return 0, fmt.Errorf("match: add state: %w", err)
	}
	return e, nil
}
