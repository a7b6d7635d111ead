package main

import (
	"flag"
	"log"

	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
	"github.com/milk9111/kickabout/ecs/system"
	"github.com/milk9111/kickabout/prefabs"
	"github.com/milk9111/kickabout/simulation"
)

func main() {
	matchFile := flag.String("match", prefabs.MatchFile, "match prefab (yaml) to load")
	script := flag.String("script", "dribble", "drill script in prefabs/scripts (basename, .tengo optional)")
	ticks := flag.Int("ticks", 600, "number of ticks to run; 0 runs until full time")
	dt := flag.Int64("dt", 16, "tick length in milliseconds")
	verbose := flag.Bool("v", false, "log every gameplay event")
	flag.Parse()

	if *dt <= 0 {
		log.Fatalf("headless: -dt must be positive, got %d", *dt)
	}

	sim, err := simulation.Load(*matchFile, simulation.WithScript(*script))
	if err != nil {
		log.Fatal(err)
	}

	n := 0
	for ; *ticks == 0 || n < *ticks; n++ {
		for _, evt := range sim.Tick(*dt) {
			logEvent(sim, evt, *verbose)
		}
		if sim.Over() {
			break
		}
	}

	left, right := sim.Score()
	log.Printf("headless: %d ticks, clock %s, score %d - %d", n, sim.Clock(), left, right)
}

func logEvent(sim *simulation.Simulation, evt ecs.Event, verbose bool) {
	switch data := evt.Data.(type) {
	case system.PossessionEvent:
		if verbose {
			log.Printf("headless: [%s] %s takes the ball", sim.Clock(), actorName(sim, data.Actor))
		}
	case system.ShotEvent:
		if verbose {
			log.Printf("headless: [%s] %s shoots (%.0f, %.0f)", sim.Clock(), actorName(sim, data.Actor), data.Impulse.X, data.Impulse.Y)
		}
	case system.GoalEvent:
		log.Printf("headless: [%s] goal for %s, %d - %d", sim.Clock(), data.Scorer, data.ScoreLeft, data.ScoreRight)
	}
}

func actorName(sim *simulation.Simulation, e ecs.Entity) string {
	if a, ok := ecs.Get(sim.World(), e, component.ActorComponent.Kind()); ok {
		return a.Name
	}
	return e.String()
}
