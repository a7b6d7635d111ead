package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/kickabout/prefabs"
)

func main() {
	matchFile := flag.String("match", prefabs.MatchFile, "match prefab (yaml) to load")
	script := flag.String("script", "", "drill script in prefabs/scripts to drive actors (basename, .tengo optional)")
	debug := flag.Bool("debug", false, "show debug labels")
	watch := flag.Bool("watch", true, "hot reload prefabs from disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("kickabout")

	game, err := NewGame(*matchFile, *script, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
