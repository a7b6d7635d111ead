package simulation

import (
	"fmt"
	"log"

	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
	"github.com/milk9111/kickabout/ecs/entity"
	"github.com/milk9111/kickabout/ecs/system"
	"github.com/milk9111/kickabout/prefabs"
)

// Simulation is one match: a world, the system pipeline that steps it and
// the shared tuning the systems read. It is not safe for concurrent use;
// hosts call Tick, Signal and the queries from a single goroutine.
type Simulation struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   system.Physics
	tuning    *common.Tuning
	match     *entity.Match
	script    *scriptSlot
}

// Load builds a simulation from a match prefab file.
func Load(filename string, opts ...Option) (*Simulation, error) {
	spec, err := prefabs.LoadMatchSpec(filename)
	if err != nil {
		return nil, err
	}
	return New(spec, opts...)
}

func New(spec *prefabs.MatchSpec, opts ...Option) (*Simulation, error) {
	if spec == nil {
		return nil, fmt.Errorf("simulation: nil match spec")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.physics == nil {
		o.physics = system.NewPhysicsSystem()
	}

	tuning := spec.TuningValues()
	s := &Simulation{
		world:   ecs.NewWorld(),
		physics: o.physics,
		tuning:  &tuning,
		script:  &scriptSlot{},
	}

	match, err := entity.BuildMatch(s.world, spec, tuning)
	if err != nil {
		return nil, fmt.Errorf("simulation: build match: %w", err)
	}
	s.match = match

	script, err := o.script(s.physics)
	if err != nil {
		return nil, err
	}
	s.script.current = script

	s.scheduler = ecs.NewScheduler(
		s.script,
		system.NewTimerSystem(),
		s.physics,
		system.NewLocomotionSystem(s.physics, s.tuning),
		system.NewPossessionSystem(s.physics),
		system.NewShotSystem(s.physics, s.tuning),
		system.NewBallSystem(s.physics),
		system.NewMatchSystem(),
		system.NewLabelSystem(),
		system.NewAnimationSystem(),
	)

	// bodies must exist before the first signal asks for a position
	s.physics.Sync(s.world)

	log.Printf("simulation: %q ready with %d actors", spec.Name, len(match.Actors))
	return s, nil
}

// Tick advances the simulated clock by deltaMs and runs every system once.
// It returns the events the tick produced; they stay readable through
// Events until the next Tick.
func (s *Simulation) Tick(deltaMs int64) []ecs.Event {
	s.world.Advance(deltaMs)
	s.scheduler.Update(s.world)
	return s.Events()
}

// Events returns the events of the last tick.
func (s *Simulation) Events() []ecs.Event {
	items := s.world.Events().Items()
	out := make([]ecs.Event, len(items))
	copy(out, items)
	return out
}

// Signal queues an action for actor. It reports false for dead or unknown
// actors; the action is consumed on the next Tick.
func (s *Simulation) Signal(actor ecs.Entity, a component.Action) bool {
	return system.ApplySignal(s.world, actor, a)
}

// SignalByName is Signal addressed by actor name.
func (s *Simulation) SignalByName(name string, a component.Action) bool {
	e, ok := system.ActorByName(s.world, name)
	if !ok {
		return false
	}
	return s.Signal(e, a)
}

// ReplaceScript swaps the running drill script, or removes it when src is nil.
func (s *Simulation) ReplaceScript(name string, src []byte) error {
	if src == nil {
		s.script.current = nil
		return nil
	}
	script, err := system.NewScriptInputSystem(name, src, s.physics)
	if err != nil {
		return err
	}
	s.script.current = script
	log.Printf("simulation: script %s loaded", name)
	return nil
}

// ApplyTuning replaces the live tuning. Actor speed and ball offset follow
// it immediately; other values are read by the systems every tick.
func (s *Simulation) ApplyTuning(t common.Tuning) {
	*s.tuning = t
	ecs.ForEach(s.world, component.ActorComponent.Kind(), func(e ecs.Entity, actor *component.Actor) {
		actor.Speed = t.MoveSpeed
		actor.BallOffset = t.BallOffset
	})
	log.Printf("simulation: tuning applied (speed=%.0f shot=%.0f immunity=%dms)", t.MoveSpeed, t.ShotPower, t.ImmunityWindowMs)
}

// Tuning returns a copy of the live tuning.
func (s *Simulation) Tuning() common.Tuning {
	return *s.tuning
}

// SetLabelsVisible toggles every debug caption.
func (s *Simulation) SetLabelsVisible(visible bool) {
	ecs.ForEach(s.world, component.LabelComponent.Kind(), func(e ecs.Entity, label *component.Label) {
		label.Visible = visible
		if !visible {
			label.Text = ""
		}
	})
}

type scriptSlot struct {
	current *system.ScriptInputSystem
}

func (s *scriptSlot) Update(w *ecs.World) {
	if s.current != nil {
		s.current.Update(w)
	}
}
