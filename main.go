package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/arplace/assets"
	"github.com/milk9111/arplace/common"
	"github.com/milk9111/arplace/system"
)

func main() {
	debug := flag.Bool("debug", false, "show the frame, gesture and event overlay")
	mode := flag.String("mode", "furniture", "controller: furniture, decor or plants")
	room := flag.String("room", "living_room", "room name in ar/sim/rooms/ (basename, .yaml optional)")
	prefab := flag.String("prefab", "", "initial prefab name")
	seed := flag.Int64("seed", 1, "random seed for plant selection")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	m, err := system.ParseMode(*mode)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("arplace")
	ebiten.SetWindowIcon([]image.Image{assets.Icon})

	game, err := NewGame(system.Config{Room: *room, Mode: m, Prefab: *prefab, Seed: *seed}, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
