package ecs

import (
	"github.com/milk9111/kickabout/ecs/component"
)

// World owns entities, component stores, the per-tick event queue, pending
// timers and the simulated clock. It is the simulation context handed to
// every system; nothing in it is safe for concurrent use.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	timers   timerQueue

	nowMs   int64
	deltaMs int64
	ticks   uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components. Handles to it
// stay dead forever.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s := w.stores[id]
	if s == nil && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent inserts or replaces the component of the given kind.
func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if kind == nil || !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

// RemoveComponent deletes the component of the given kind.
func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	if w == nil || !w.IsAlive(e) || kind == nil {
		return false
	}
	return w.store(kind.ID(), false).Remove(e.id())
}

// HasComponent reports whether e carries a component of the given kind.
func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	if w == nil || !w.IsAlive(e) || kind == nil {
		return false
	}
	return w.store(kind.ID(), false).Has(e.id())
}

// GetComponent returns the raw component value.
func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	if w == nil || !w.IsAlive(e) || kind == nil {
		return nil, false
	}
	v := w.store(kind.ID(), false).Get(e.id())
	return v, v != nil
}

// Query returns the live entities carrying every given kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		if k == nil {
			return nil
		}
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate smallest set
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}

	var out []Entity
	for _, id := range sets[smallest].ids() {
		match := true
		for i, s := range sets {
			if i != smallest && !s.Has(id) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Advance moves the simulated clock forward. Negative deltas count as zero.
func (w *World) Advance(deltaMs int64) {
	if w == nil {
		return
	}
	if deltaMs < 0 {
		deltaMs = 0
	}
	w.deltaMs = deltaMs
	w.nowMs += deltaMs
	w.ticks++
}

// Now returns the simulated time in milliseconds.
func (w *World) Now() int64 {
	if w == nil {
		return 0
	}
	return w.nowMs
}

// Delta returns the length of the current tick in milliseconds.
func (w *World) Delta() int64 {
	if w == nil {
		return 0
	}
	return w.deltaMs
}

// Ticks returns how many times the clock has advanced.
func (w *World) Ticks() uint64 {
	if w == nil {
		return 0
	}
	return w.ticks
}

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

func Entities(w *World) []Entity {
	return w.Entities()
}
