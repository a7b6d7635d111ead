package system

import (
	"testing"

	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{180000, "03:00"},
		{61000, "01:01"},
		{59999, "00:59"},
		{999, "00:00"},
		{0, "00:00"},
		{-500, "00:00"},
		{600000, "10:00"},
	}

	for _, tc := range tests {
		if got := FormatClock(tc.ms); got != tc.want {
			t.Fatalf("FormatClock(%d) = %q, want %q", tc.ms, got, tc.want)
		}
	}
}

func TestMatchClockFloorsAtZero(t *testing.T) {
	f := newFixture(t)
	m := f.addMatch(t, 1000)

	f.tick(600)
	state, _ := ecs.Get(f.w, m, component.MatchStateComponent.Kind())
	if state.RemainingMs != 400 {
		t.Fatalf("expected 400ms left, got %d", state.RemainingMs)
	}
	if state.Over {
		t.Fatalf("match should not be over yet")
	}

	f.tick(600)
	if state.RemainingMs != 0 {
		t.Fatalf("clock must floor at zero, got %d", state.RemainingMs)
	}
	if !state.Over {
		t.Fatalf("match should be over")
	}
	if n := f.countEvents(ecs.EventMatchOver); n != 1 {
		t.Fatalf("expected one match_over event, got %d", n)
	}

	f.tick(600)
	if state.RemainingMs != 0 {
		t.Fatalf("clock must stay at zero, got %d", state.RemainingMs)
	}
	if n := f.countEvents(ecs.EventMatchOver); n != 0 {
		t.Fatalf("match_over must be published once, got %d", n)
	}
}

func TestGoalDebounce(t *testing.T) {
	f := newFixture(t)
	m := f.addMatch(t, 60000)
	left := f.addGoal(t, component.SideLeft)
	right := f.addGoal(t, component.SideRight)
	ball := f.addBall(t, common.V(10, 10))
	state, _ := ecs.Get(f.w, m, component.MatchStateComponent.Kind())

	f.phys.SetGoalContact(left, ball, true)
	f.tick(tickMs)
	if n := f.countEvents(ecs.EventGoal); n != 1 {
		t.Fatalf("expected a goal event on entry, got %d", n)
	}
	f.ticks(5)
	if state.ScoreRight != 1 || state.ScoreLeft != 0 {
		t.Fatalf("lingering in the zone must score once for the opponent, got %d-%d", state.ScoreLeft, state.ScoreRight)
	}

	f.phys.SetGoalContact(left, ball, false)
	f.tick(tickMs)
	f.phys.SetGoalContact(left, ball, true)
	f.tick(tickMs)
	if state.ScoreRight != 2 {
		t.Fatalf("re-entry must score again, got %d", state.ScoreRight)
	}

	f.phys.SetGoalContact(left, ball, false)
	f.phys.SetGoalContact(right, ball, true)
	f.tick(tickMs)
	if state.ScoreLeft != 1 || state.ScoreRight != 2 {
		t.Fatalf("expected 1-2, got %d-%d", state.ScoreLeft, state.ScoreRight)
	}
}

func TestNoGoalsAfterFullTime(t *testing.T) {
	f := newFixture(t)
	m := f.addMatch(t, 100)
	zone := f.addGoal(t, component.SideRight)
	ball := f.addBall(t, common.V(10, 10))

	f.tick(200)
	f.phys.SetGoalContact(zone, ball, true)
	f.tick(tickMs)

	state, _ := ecs.Get(f.w, m, component.MatchStateComponent.Kind())
	if state.ScoreLeft != 0 || state.ScoreRight != 0 {
		t.Fatalf("goals after full time must not count, got %d-%d", state.ScoreLeft, state.ScoreRight)
	}
}

func TestGoalOnFinalTickCounts(t *testing.T) {
	f := newFixture(t)
	m := f.addMatch(t, 100)
	zone := f.addGoal(t, component.SideRight)
	ball := f.addBall(t, common.V(10, 10))

	f.phys.SetGoalContact(zone, ball, true)
	f.tick(100)

	state, _ := ecs.Get(f.w, m, component.MatchStateComponent.Kind())
	if state.ScoreLeft != 1 || !state.Over {
		t.Fatalf("expected the final-tick goal to count, got %d-%d over=%v", state.ScoreLeft, state.ScoreRight, state.Over)
	}
}
