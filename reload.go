package main

import (
	"log"
	"path/filepath"

	"github.com/milk9111/kickabout/prefabs"
)

// applyReloads drains pending prefab changes between ticks. Tuning edits
// apply to the running match; script edits swap the drill in place.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}

	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.applyChange(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: watch error: %v", err)
		default:
			return
		}
	}
}

func (g *Game) applyChange(change prefabs.Change) {
	switch change.Kind {
	case prefabs.ChangeSpec:
		if filepath.Base(change.Path) != filepath.Base(g.matchFile) {
			return
		}
		spec, err := prefabs.LoadMatchSpec(g.matchFile)
		if err != nil {
			log.Printf("game: reload %s: %v", change.Path, err)
			return
		}
		g.sim.ApplyTuning(spec.TuningValues())
	case prefabs.ChangeScript:
		if g.script == "" || filepath.Base(change.Path) != filepath.Base(scriptFile(g.script)) {
			return
		}
		src, err := prefabs.LoadScript(g.script)
		if err != nil {
			log.Printf("game: reload %s: %v", change.Path, err)
			return
		}
		if err := g.sim.ReplaceScript(g.script, src); err != nil {
			log.Printf("game: reload %s: %v", change.Path, err)
		}
	}
}

func scriptFile(name string) string {
	if filepath.Ext(name) == "" {
		return name + ".tengo"
	}
	return name
}
