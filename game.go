package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/arplace/assets"
	"github.com/milk9111/arplace/common"
	"github.com/milk9111/arplace/ecs"
	"github.com/milk9111/arplace/input"
	"github.com/milk9111/arplace/prefabs"
	"github.com/milk9111/arplace/system"
	"github.com/milk9111/arplace/ui"
)

const eventLogSize = 6

type Game struct {
	frames int
	debug  bool

	world   *system.World
	panels  *PanelsUI
	view    *view
	watcher *prefabs.Watcher
	sounds  map[ecs.EventKind]*audio.Player

	eventLog []string
}

func NewGame(cfg system.Config, debug bool) (*Game, error) {
	blocker := &ui.Blocker{}
	world, err := system.NewWorld(cfg, nil, input.NewEbitenSource(), blocker)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:  debug,
		world:  world,
		panels: NewPanelsUI(world, blocker),
		view:   newView(),
		sounds: make(map[ecs.EventKind]*audio.Player),
	}

	if w, err := prefabs.NewWatcher("prefabs"); err != nil {
		log.Printf("prefabs: hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}

	for kind, name := range map[ecs.EventKind]string{
		ecs.EventPlaced:    "place.wav",
		ecs.EventDestroyed: "delete.wav",
	} {
		p, err := assets.LoadAudioPlayer(name)
		if err != nil {
			log.Printf("audio: %v", err)
			continue
		}
		g.sounds[kind] = p
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	g.panels.UI.Update()
	if g.watcher.Poll(g.world.Catalog) {
		g.world.ReloadCatalog()
	}

	g.world.Step()
	for _, e := range g.world.ECS.Events().Drain() {
		if p := g.sounds[e.Kind]; p != nil {
			_ = p.Rewind()
			p.Play()
		}
		g.eventLog = append(g.eventLog, fmt.Sprintf("%s %s %s", e.Kind, e.Entity, e.Data))
		if len(g.eventLog) > eventLogSize {
			g.eventLog = g.eventLog[len(g.eventLog)-eventLogSize:]
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen, g.world)
	g.panels.UI.Draw(screen)

	if !g.debug {
		return
	}
	drawPickShapes(screen, g.world.Host.Space())
	var b strings.Builder
	fmt.Fprintf(&b, "Frames: %d    FPS: %.2f    Mode: %s\n", g.frames, ebiten.ActualFPS(), g.world.Mode())
	fmt.Fprintf(&b, "Planes: %d    Detection: %t\n", len(g.world.Host.Trackables()), g.world.Host.DetectionEnabled())
	if pl := g.world.Placement; pl != nil {
		prefab := "-"
		if p := pl.SelectedPrefab(); p != nil {
			prefab = p.Name
		}
		fmt.Fprintf(&b, "Prefab: %s    Gesture: %s\n", prefab, pl.Session().Mode(g.world.ECS))
	}
	for _, line := range g.eventLog {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	ebitenutil.DebugPrint(screen, b.String())
}

func (g *Game) Close() error {
	return g.watcher.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
