package system

import (
	"testing"

	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
	"github.com/milk9111/kickabout/ecs/system/systemtest"
)

const (
	testHalfHeight = 20.0
	tickMs         = 16
)

var walkDefs = map[component.AnimationID]component.AnimationDef{
	component.AnimWalkRight: {Name: component.AnimWalkRight, FrameCount: 4, FPS: 8, Loop: true},
	component.AnimWalkLeft:  {Name: component.AnimWalkLeft, FrameCount: 4, FPS: 8, Loop: true},
	component.AnimWalkUp:    {Name: component.AnimWalkUp, FrameCount: 4, FPS: 8, Loop: true},
	component.AnimWalkDown:  {Name: component.AnimWalkDown, FrameCount: 4, FPS: 8, Loop: true},
}

// fixture wires the gameplay pipeline around the fake physics layer.
type fixture struct {
	w      *ecs.World
	phys   *systemtest.Physics
	tuning *common.Tuning
	sched  *ecs.Scheduler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tuning := common.DefaultTuning()
	f := &fixture{
		w:      ecs.NewWorld(),
		phys:   systemtest.NewPhysics(),
		tuning: &tuning,
	}
	f.sched = ecs.NewScheduler(
		NewTimerSystem(),
		f.phys,
		NewLocomotionSystem(f.phys, f.tuning),
		NewPossessionSystem(f.phys),
		NewShotSystem(f.phys, f.tuning),
		NewBallSystem(f.phys),
		NewMatchSystem(),
		NewLabelSystem(),
		NewAnimationSystem(),
	)
	return f
}

func (f *fixture) add(t *testing.T, e ecs.Entity, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("add component to %v: %v", e, err)
	}
}

func (f *fixture) addActor(t *testing.T, name string, pos, facing common.Vec2) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(f.w)
	f.add(t, e, ecs.Add(f.w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}))
	f.add(t, e, ecs.Add(f.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Role: component.BodyActor, Width: 20, Height: 2 * testHalfHeight}))
	f.add(t, e, ecs.Add(f.w, e, component.ActorComponent.Kind(), &component.Actor{
		Name:       name,
		Spawn:      pos,
		Facing:     facing,
		Speed:      f.tuning.MoveSpeed,
		BallOffset: f.tuning.BallOffset,
	}))
	f.add(t, e, ecs.Add(f.w, e, component.InputComponent.Kind(), &component.Input{}))
	f.add(t, e, ecs.Add(f.w, e, component.AnimationComponent.Kind(), &component.Animation{Defs: walkDefs, Current: component.AnimWalkDown}))
	f.add(t, e, ecs.Add(f.w, e, component.LabelComponent.Kind(), &component.Label{Name: name, Visible: true}))
	f.phys.Sync(f.w)
	return e
}

func (f *fixture) addBall(t *testing.T, pos common.Vec2) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(f.w)
	f.add(t, e, ecs.Add(f.w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}))
	f.add(t, e, ecs.Add(f.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Role: component.BodyBall, Radius: 10}))
	f.add(t, e, ecs.Add(f.w, e, component.BallComponent.Kind(), &component.Ball{}))
	f.phys.Sync(f.w)
	return e
}

func (f *fixture) addMatch(t *testing.T, roundMs int64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(f.w)
	f.add(t, e, ecs.Add(f.w, e, component.MatchStateComponent.Kind(), &component.MatchState{RoundMs: roundMs, RemainingMs: roundMs}))
	return e
}

func (f *fixture) addGoal(t *testing.T, side component.Side) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(f.w)
	f.add(t, e, ecs.Add(f.w, e, component.GoalZoneComponent.Kind(), &component.GoalZone{Side: side}))
	return e
}

func (f *fixture) tick(ms int64) {
	f.w.Advance(ms)
	f.sched.Update(f.w)
}

func (f *fixture) ticks(n int) {
	for i := 0; i < n; i++ {
		f.tick(tickMs)
	}
}

func (f *fixture) signal(t *testing.T, e ecs.Entity, a component.Action) {
	t.Helper()
	if !ApplySignal(f.w, e, a) {
		t.Fatalf("signal %s to %v was rejected", a.Kind, e)
	}
}

func (f *fixture) actor(t *testing.T, e ecs.Entity) *component.Actor {
	t.Helper()
	a, ok := ecs.Get(f.w, e, component.ActorComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no actor", e)
	}
	return a
}

func (f *fixture) animation(t *testing.T, e ecs.Entity) *component.Animation {
	t.Helper()
	a, ok := ecs.Get(f.w, e, component.AnimationComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no animation", e)
	}
	return a
}

// giveBall declares an overlap and runs one tick so actor owns ball.
func (f *fixture) giveBall(t *testing.T, actor, ball ecs.Entity) {
	t.Helper()
	f.phys.SetOverlap(actor, ball, true)
	f.tick(tickMs)
	if !IsOwnedBy(f.w, ball, actor) {
		t.Fatalf("expected %v to own the ball", actor)
	}
}

func (f *fixture) countEvents(typ string) int {
	n := 0
	for _, evt := range f.w.Events().Items() {
		if evt.Type == typ {
			n++
		}
	}
	return n
}

func near(a, b common.Vec2) bool {
	return a.Dist(b) < 1e-6
}
