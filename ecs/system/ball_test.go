package system

import (
	"testing"

	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
)

func TestOwnedBallFollowsOwner(t *testing.T) {
	f := newFixture(t)
	a := f.addActor(t, "A", common.V(100, 100), common.V(0, 1))
	ball := f.addBall(t, common.V(100, 144))
	f.giveBall(t, a, ball)

	f.signal(t, a, component.MoveTo(common.V(400, 250)))
	for i := 0; i < 12; i++ {
		f.tick(tickMs)

		pos, _ := f.phys.Position(a)
		actor := f.actor(t, a)
		want := pos.Add(common.V(0, testHalfHeight)).Add(actor.FacingDir().Scale(actor.BallOffset))

		got, _ := f.phys.Position(ball)
		if !near(got, want) {
			t.Fatalf("tick %d: ball at %v, want %v", i, got, want)
		}
		tr, _ := ecs.Get(f.w, ball, component.TransformComponent.Kind())
		if !near(tr.Position(), want) {
			t.Fatalf("tick %d: ball transform at %v, want %v", i, tr.Position(), want)
		}
		if !f.phys.Velocity(ball).IsZero() {
			t.Fatalf("tick %d: owned ball velocity must stay zero", i)
		}
	}
}

func TestFreeBallIsLeftToPhysics(t *testing.T) {
	f := newFixture(t)
	f.addActor(t, "A", common.Vec2{}, common.V(1, 0))
	ball := f.addBall(t, common.V(300, 300))
	f.phys.SetVelocity(ball, common.V(100, 0))

	f.tick(100)

	if got, _ := f.phys.Position(ball); !near(got, common.V(310, 300)) {
		t.Fatalf("expected free ball integrated by physics, got %v", got)
	}
}

func TestJugglePosition(t *testing.T) {
	actor := component.Actor{Facing: common.V(-3, 4), BallOffset: 10}
	got := JugglePosition(common.V(50, 50), 20, actor)
	if want := common.V(44, 78); !near(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
