package ecs

import "testing"

func TestTimersFireInOrder(t *testing.T) {
	w := NewWorld()
	var fired []string
	record := func(name string) TimerFunc {
		return func(*World, Entity) { fired = append(fired, name) }
	}

	w.After(50, 0, record("b"))
	w.After(10, 0, record("a"))
	w.After(50, 0, record("c"))
	w.After(100, 0, record("d"))

	w.Advance(49)
	if n := w.RunDueTimers(); n != 1 {
		t.Fatalf("expected 1 timer at 49ms, got %d", n)
	}
	w.Advance(1)
	if n := w.RunDueTimers(); n != 2 {
		t.Fatalf("expected 2 timers at 50ms, got %d", n)
	}

	want := []string{"a", "b", "c"}
	if len(fired) != len(want) {
		t.Fatalf("expected %v, got %v", want, fired)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, fired)
		}
	}
	if w.PendingTimers() != 1 {
		t.Fatalf("expected one pending timer, got %d", w.PendingTimers())
	}
}

func TestTimersSkipDeadTargets(t *testing.T) {
	tests := []struct {
		name    string
		destroy bool
		want    int
	}{
		{"alive_target_fires", false, 1},
		{"dead_target_is_dropped", true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			e := CreateEntity(w)
			calls := 0
			w.After(250, e, func(_ *World, target Entity) {
				if target != e {
					t.Fatalf("callback got target %v, want %v", target, e)
				}
				calls++
			})
			if tc.destroy {
				DestroyEntity(w, e)
				// a new entity in the same slot must not inherit the timer
				CreateEntity(w)
			}

			w.Advance(250)
			w.RunDueTimers()
			if calls != tc.want {
				t.Fatalf("expected %d calls, got %d", tc.want, calls)
			}
			if w.PendingTimers() != 0 {
				t.Fatalf("timer should be consumed either way")
			}
		})
	}
}

func TestTimerScheduledFromCallbackWaitsForNextDrain(t *testing.T) {
	w := NewWorld()
	calls := 0
	w.After(0, 0, func(w *World, _ Entity) {
		calls++
		w.After(10, 0, func(*World, Entity) { calls++ })
	})

	w.Advance(16)
	w.RunDueTimers()
	if calls != 1 {
		t.Fatalf("expected only the first timer, got %d calls", calls)
	}
	w.Advance(16)
	w.RunDueTimers()
	if calls != 2 {
		t.Fatalf("expected chained timer on the next drain, got %d calls", calls)
	}
}
