package main

import (
	"flag"
	"log"

	"github.com/Xwilarg/WigglingHunt/common"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (aim rays, fps, prefab hot reload)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "scene name in levels/ (basename, .json optional)")
	players := flag.Int("players", 2, "number of players required before a round can start")
	flag.Parse()

	if *players < 1 || *players > 4 {
		log.Fatalf("-players must be between 1 and 4, got %d", *players)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Wiggling Hunt")

	game := NewGame(*levelName, *players, *debug)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
