package system

import (
	"testing"

	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
)

func TestShootInstant(t *testing.T) {
	f := newFixture(t)
	a := f.addActor(t, "A", common.Vec2{}, common.V(1, 0))
	ball := f.addBall(t, common.V(24, 20))
	f.giveBall(t, a, ball)

	f.signal(t, a, component.ShootInstant())
	f.tick(tickMs)

	if got := f.phys.Velocity(ball); !near(got, common.V(f.tuning.ShotPower, 0)) {
		t.Fatalf("expected ball velocity (%v,0), got %v", f.tuning.ShotPower, got)
	}
	if _, owned := Owner(f.w, ball); owned {
		t.Fatalf("ball must be free after the shot")
	}
	actor := f.actor(t, a)
	if !actor.ShotCooldown {
		t.Fatalf("shooter must be in cooldown")
	}
	if f.phys.OverlapEnabled(a) {
		t.Fatalf("shooter overlap must be disabled")
	}
	if n := f.countEvents(ecs.EventShot); n != 1 {
		t.Fatalf("expected one shot event, got %d", n)
	}
}

func TestImmunityWindow(t *testing.T) {
	f := newFixture(t)
	a := f.addActor(t, "A", common.Vec2{}, common.V(1, 0))
	ball := f.addBall(t, common.V(24, 20))
	f.giveBall(t, a, ball)

	// the pair keeps overlapping for the whole window
	f.signal(t, a, component.ShootInstant())
	f.tick(10)
	shotAt := f.w.Now()

	for f.w.Now()+10 < shotAt+f.tuning.ImmunityWindowMs {
		f.tick(10)
		if IsOwnedBy(f.w, ball, a) {
			t.Fatalf("re-acquired at %dms, inside the immunity window", f.w.Now()-shotAt)
		}
	}

	f.tick(10)
	if f.w.Now()-shotAt != f.tuning.ImmunityWindowMs {
		t.Fatalf("test drifted: now is %dms after the shot", f.w.Now()-shotAt)
	}
	if !IsOwnedBy(f.w, ball, a) {
		t.Fatalf("expected re-acquisition once the window elapsed")
	}
	if f.actor(t, a).ShotCooldown || !f.phys.OverlapEnabled(a) {
		t.Fatalf("cooldown must be cleared and overlap re-enabled")
	}
}

func TestShotGuards(t *testing.T) {
	tests := []struct {
		name    string
		actions []component.Action
		byOwner bool
	}{
		{"shoot_without_possession", []component.Action{component.ShootInstant()}, false},
		{"toggle_without_possession", []component.Action{component.ToggleAim()}, false},
		{"fire_without_possession", []component.Action{component.FireAimed()}, false},
		{"fire_without_aiming", []component.Action{component.FireAimed()}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			owner := f.addActor(t, "A", common.Vec2{}, common.V(1, 0))
			other := f.addActor(t, "B", common.V(200, 0), common.V(-1, 0))
			ball := f.addBall(t, common.V(24, 20))
			f.giveBall(t, owner, ball)

			shooter := other
			if tc.byOwner {
				shooter = owner
			}
			for _, a := range tc.actions {
				f.signal(t, shooter, a)
			}
			f.tick(tickMs)

			if !IsOwnedBy(f.w, ball, owner) {
				t.Fatalf("ball must stay with its owner")
			}
			if !f.phys.Velocity(ball).IsZero() {
				t.Fatalf("ball must not move, got %v", f.phys.Velocity(ball))
			}
			s := f.actor(t, shooter)
			if s.ShotCooldown || s.IsAiming {
				t.Fatalf("no-op must leave cooldown=%v aiming=%v untouched", s.ShotCooldown, s.IsAiming)
			}
			if n := f.countEvents(ecs.EventShot); n != 0 {
				t.Fatalf("expected no shot event, got %d", n)
			}
		})
	}
}

func TestChargeShot(t *testing.T) {
	f := newFixture(t)
	a := f.addActor(t, "A", common.Vec2{}, common.V(0, 1))
	ball := f.addBall(t, common.V(0, 44))
	f.giveBall(t, a, ball)

	f.signal(t, a, component.ToggleAim())
	f.signal(t, a, component.ToggleAim())
	f.tick(tickMs)
	if f.actor(t, a).IsAiming {
		t.Fatalf("two toggles in one tick should cancel out")
	}

	f.signal(t, a, component.ToggleAim())
	f.tick(tickMs)
	if !f.actor(t, a).IsAiming {
		t.Fatalf("toggle should start aiming")
	}

	f.signal(t, a, component.ToggleAim())
	f.tick(tickMs)
	if f.actor(t, a).IsAiming {
		t.Fatalf("second toggle should stop aiming")
	}

	f.signal(t, a, component.ToggleAim())
	f.tick(tickMs)
	f.signal(t, a, component.FireAimed())
	f.tick(tickMs)

	if got := f.phys.Velocity(ball); !near(got, common.V(0, f.tuning.ShotPower)) {
		t.Fatalf("expected ball velocity (0,%v), got %v", f.tuning.ShotPower, got)
	}
	actor := f.actor(t, a)
	if actor.IsAiming {
		t.Fatalf("firing must clear aiming")
	}
	if !actor.ShotCooldown {
		t.Fatalf("aimed shot must arm the immunity window")
	}
}

func TestShotTowardPointerSide(t *testing.T) {
	f := newFixture(t)
	a := f.addActor(t, "A", common.V(100, 100), common.V(1, 0))
	ball := f.addBall(t, common.V(124, 120))
	f.giveBall(t, a, ball)

	f.signal(t, a, component.FacePointer(common.V(0, 300)))
	f.tick(tickMs)
	f.signal(t, a, component.ShootInstant())
	f.tick(tickMs)

	if got := f.phys.Velocity(ball); !near(got, common.V(-f.tuning.ShotPower, 0)) {
		t.Fatalf("expected flat shot to the left, got %v", got)
	}
}

func TestShotPointerSideFollowsShooter(t *testing.T) {
	f := newFixture(t)
	a := f.addActor(t, "A", common.Vec2{}, common.V(1, 0))

	f.signal(t, a, component.FacePointer(common.V(100, 0)))
	f.tick(tickMs)

	// walk past the pointer without moving it
	f.signal(t, a, component.MoveTo(common.V(300, 0)))
	for i := 0; i < 200 && f.actor(t, a).Navigating(); i++ {
		f.tick(tickMs)
	}
	if f.actor(t, a).Navigating() {
		t.Fatalf("actor never arrived")
	}
	f.tick(tickMs)

	pos, _ := f.phys.Position(a)
	if pos.X <= 100 {
		t.Fatalf("actor should be right of the pointer, at %v", pos)
	}
	ball := f.addBall(t, pos.Add(common.V(24, 20)))
	f.giveBall(t, a, ball)

	f.signal(t, a, component.ShootInstant())
	f.tick(tickMs)

	if got := f.phys.Velocity(ball); !near(got, common.V(-f.tuning.ShotPower, 0)) {
		t.Fatalf("expected flat shot back toward the pointer, got %v", got)
	}
}

func TestShotModes(t *testing.T) {
	tests := []struct {
		name    string
		instant bool
		charge  bool
		action  component.Action
		fired   bool
	}{
		{"instant_disabled", false, true, component.ShootInstant(), false},
		{"instant_enabled", true, false, component.ShootInstant(), true},
		{"charge_disabled", true, false, component.ToggleAim(), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.tuning.InstantShots = tc.instant
			f.tuning.ChargeShots = tc.charge
			a := f.addActor(t, "A", common.Vec2{}, common.V(1, 0))
			ball := f.addBall(t, common.V(24, 20))
			f.giveBall(t, a, ball)

			f.signal(t, a, tc.action)
			f.signal(t, a, component.FireAimed())
			f.tick(tickMs)

			if fired := !IsOwnedBy(f.w, ball, a); fired != tc.fired {
				t.Fatalf("expected fired=%v, got %v", tc.fired, fired)
			}
		})
	}
}

func TestImmunityTimerOutlivesShooter(t *testing.T) {
	f := newFixture(t)
	a := f.addActor(t, "A", common.Vec2{}, common.V(1, 0))
	ball := f.addBall(t, common.V(24, 20))
	f.giveBall(t, a, ball)

	f.signal(t, a, component.ShootInstant())
	f.tick(tickMs)
	if f.w.PendingTimers() != 1 {
		t.Fatalf("expected an armed immunity timer")
	}

	f.w.DestroyEntity(a)
	f.tick(300)

	if f.w.PendingTimers() != 0 {
		t.Fatalf("timer must be consumed")
	}
	if _, owned := Owner(f.w, ball); owned {
		t.Fatalf("ball must stay free")
	}
}

func TestShotImpulse(t *testing.T) {
	dest := common.V(10, 10)
	right := common.V(50, 0)
	left := common.V(-50, 0)
	tests := []struct {
		name  string
		actor component.Actor
		want  common.Vec2
	}{
		{"facing", component.Actor{Facing: common.V(0, -2)}, common.V(0, -600)},
		{"pointer_right_when_standing", component.Actor{Facing: common.V(0, 1), Pointer: &right}, common.V(600, 0)},
		{"pointer_left_when_standing", component.Actor{Facing: common.V(0, 1), Pointer: &left}, common.V(-600, 0)},
		{"facing_when_navigating", component.Actor{Facing: common.V(-1, 0), Pointer: &right, Destination: &dest}, common.V(-600, 0)},
		{"no_facing", component.Actor{}, common.Vec2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShotImpulse(tc.actor, common.Vec2{}, 600); !near(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
