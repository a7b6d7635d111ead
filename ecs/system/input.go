package system

import (
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
)

// ApplySignal queues an action on a live actor's Input. It reports false for
// dead entities and entities that are not actors.
func ApplySignal(w *ecs.World, e ecs.Entity, a component.Action) bool {
	if w == nil || !w.IsAlive(e) || !ecs.Has(w, e, component.ActorComponent.Kind()) {
		return false
	}

	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		input = &component.Input{}
		if err := ecs.Add(w, e, component.InputComponent.Kind(), input); err != nil {
			return false
		}
	}
	input.Apply(a)
	return true
}

// ActorByName finds a live actor by its prefab name.
func ActorByName(w *ecs.World, name string) (ecs.Entity, bool) {
	var found ecs.Entity
	ok := false
	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, actor *component.Actor) {
		if !ok && actor.Name == name {
			found, ok = e, true
		}
	})
	return found, ok
}
