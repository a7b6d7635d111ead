package system

import (
	"fmt"
	"log"

	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
)

// MatchSystem runs the round clock and scores goals. A goal counts once per
// entry: GoalZone.BallInside latches until the ball leaves the zone.
type MatchSystem struct{}

func NewMatchSystem() *MatchSystem {
	return &MatchSystem{}
}

func (s *MatchSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	matchEnt, ok := w.First(component.MatchStateComponent.Kind())
	if !ok {
		return
	}
	state, ok := ecs.Get(w, matchEnt, component.MatchStateComponent.Kind())
	if !ok {
		return
	}

	if !state.Over {
		state.RemainingMs -= w.Delta()
		if state.RemainingMs < 0 {
			state.RemainingMs = 0
		}
	}

	contacts := w.Events().Contacts(ecs.ContactGoal)
	ecs.ForEach(w, component.GoalZoneComponent.Kind(), func(e ecs.Entity, zone *component.GoalZone) {
		inside := false
		for _, c := range contacts {
			if c.Subject == e && ecs.Has(w, c.Ball, component.BallComponent.Kind()) {
				inside = true
				break
			}
		}

		if inside && !zone.BallInside && !state.Over {
			scorer := zone.Side.Opponent()
			switch scorer {
			case component.SideLeft:
				state.ScoreLeft++
			case component.SideRight:
				state.ScoreRight++
			}
			log.Printf("match: goal for %s (%d-%d)", scorer, state.ScoreLeft, state.ScoreRight)
			w.Events().Push(ecs.Event{Type: ecs.EventGoal, Data: GoalEvent{
				Zone:       e,
				Scorer:     scorer,
				ScoreLeft:  state.ScoreLeft,
				ScoreRight: state.ScoreRight,
			}})
		}
		zone.BallInside = inside
	})

	if state.RemainingMs == 0 && !state.Over {
		state.Over = true
		log.Printf("match: full time (%d-%d)", state.ScoreLeft, state.ScoreRight)
		w.Events().Push(ecs.Event{Type: ecs.EventMatchOver, Data: MatchOverEvent{ScoreLeft: state.ScoreLeft, ScoreRight: state.ScoreRight}})
	}
}

// FormatClock renders milliseconds as mm:ss.
func FormatClock(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	secs := ms / 1000
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
