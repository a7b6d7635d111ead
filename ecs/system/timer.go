package system

import "github.com/milk9111/kickabout/ecs"

// TimerSystem fires deferred callbacks that came due. It runs first in the
// tick so callbacks never interleave with gameplay logic.
type TimerSystem struct{}

func NewTimerSystem() *TimerSystem {
	return &TimerSystem{}
}

func (s *TimerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.RunDueTimers()
}
