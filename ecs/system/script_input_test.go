package system

import (
	"testing"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/kickabout/common"
)

func TestScriptInputCompileError(t *testing.T) {
	if _, err := NewScriptInputSystem("broken", []byte(`update := func(engine, state) {`), nil); err == nil {
		t.Fatalf("expected a compile error")
	}
}

func TestScriptInputDrivesActors(t *testing.T) {
	src := `
update := func(engine, state) {
	if state.started == undefined {
		state.started = true
		engine.move_to("A", 100, 0)
		engine.face_pointer("B", -50, 0)
		state.unknown = engine.shoot("nobody")
	}
	state.ticks = engine.tick()
	state.owner = engine.owner()
	state.pos = engine.position("A")
}
`
	f := newFixture(t)
	a := f.addActor(t, "A", common.Vec2{}, common.Vec2{})
	b := f.addActor(t, "B", common.V(10, 0), common.Vec2{})
	f.addBall(t, common.V(500, 500))

	sys, err := NewScriptInputSystem("drill", []byte(src), f.phys)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	f.w.Advance(tickMs)
	sys.Update(f.w)
	f.sched.Update(f.w)

	if sys.Failed() {
		t.Fatalf("script should not fail")
	}
	if dest := f.actor(t, a).Destination; dest == nil || !near(*dest, common.V(100, 0)) {
		t.Fatalf("expected A heading to (100,0), got %v", dest)
	}
	if got := f.actor(t, b).PointerSide(common.V(10, 0)); got != -1 {
		t.Fatalf("expected B pointer side -1, got %d", got)
	}

	unknown := sys.state.Value["unknown"]
	if unknown == nil || !unknown.IsFalsy() {
		t.Fatalf("signal to an unknown actor should return false, got %v", unknown)
	}
	if owner, ok := sys.state.Value["owner"].(*tengo.String); !ok || owner.Value != "" {
		t.Fatalf("expected no owner, got %v", owner)
	}
}

func TestScriptInputDisablesAfterRuntimeError(t *testing.T) {
	src := `
update := func(engine, state) {
	engine.explode()
}
`
	f := newFixture(t)
	sys, err := NewScriptInputSystem("faulty", []byte(src), f.phys)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	f.w.Advance(tickMs)
	sys.Update(f.w)
	if !sys.Failed() {
		t.Fatalf("runtime error should disable the script")
	}
	sys.Update(f.w)
}
