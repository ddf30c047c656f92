package system

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/milk9111/arplace/ar"
	"github.com/milk9111/arplace/ar/sim"
	"github.com/milk9111/arplace/ecs"
	ecssys "github.com/milk9111/arplace/ecs/system"
	"github.com/milk9111/arplace/gesture"
	"github.com/milk9111/arplace/input"
	"github.com/milk9111/arplace/prefabs"
	"github.com/milk9111/arplace/scenario"
)

// Mode selects which controller handles touches.
type Mode string

const (
	ModeFurniture Mode = "furniture"
	ModeDecor     Mode = "decor"
	ModePlants    Mode = "plants"
)

// ParseMode accepts a mode name, ignoring case.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeFurniture, ModeDecor, ModePlants:
		return m, nil
	case "":
		return ModeFurniture, nil
	default:
		return "", fmt.Errorf("unknown mode %q: want furniture, decor or plants", s)
	}
}

// Config describes one simulated session.
type Config struct {
	Room   string
	Mode   Mode
	Prefab string
	Seed   int64
}

// World owns the simulated room, the ECS world and the system schedule.
type World struct {
	ECS       *ecs.World
	Host      *sim.Host
	Catalog   *prefabs.Catalog
	Scheduler *ecs.Scheduler

	Input     *ecssys.InputSystem
	Placement *ecssys.PlacementSystem
	Plants    *ecssys.PlantSystem

	mode   Mode
	frames int
}

// NewWorld loads the room and catalog and wires the systems for cfg.Mode.
// blocker may be nil.
func NewWorld(cfg Config, catalog *prefabs.Catalog, source input.Source, blocker ar.UIBlocker) (*World, error) {
	mode, err := ParseMode(string(cfg.Mode))
	if err != nil {
		return nil, err
	}
	room := cfg.Room
	if room == "" {
		room = "living_room"
	}
	host, err := sim.NewHostFromFile(room)
	if err != nil {
		return nil, err
	}
	if catalog == nil {
		if catalog, err = prefabs.LoadCatalog(); err != nil {
			return nil, err
		}
	}

	w := &World{
		ECS:     ecs.NewWorld(),
		Host:    host,
		Catalog: catalog,
		Input:   ecssys.NewInputSystem(source),
		mode:    mode,
	}
	ecssys.EnsureTouchInput(w.ECS)

	w.Scheduler = ecs.NewScheduler(
		w.Input,
		ecssys.NewPlaneDetectionSystem(host),
		ecssys.NewColliderSyncSystem(host),
	)

	switch mode {
	case ModePlants:
		w.Plants = ecssys.NewPlantSystem(host, catalog.Plants(), rand.New(rand.NewSource(cfg.Seed)))
		w.Scheduler.Add(w.Plants)
	default:
		profile, _ := gesture.ProfileByName(string(mode))
		w.Placement = ecssys.NewPlacementSystem(profile, host, blocker)
		prefab, err := w.defaultPrefab(cfg.Prefab)
		if err != nil {
			return nil, err
		}
		w.Placement.SetSelectedPrefab(prefab)
		w.Scheduler.Add(w.Placement)
	}
	return w, nil
}

// Mode returns the active controller mode.
func (w *World) Mode() Mode {
	if w == nil {
		return ""
	}
	return w.mode
}

// Frames returns the number of frames stepped.
func (w *World) Frames() int {
	if w == nil {
		return 0
	}
	return w.frames
}

// Step runs one frame of every system.
func (w *World) Step() {
	if w == nil {
		return
	}
	w.Scheduler.Update(w.ECS)
	w.frames++
}

// Run replays s to completion and returns the events it produced.
func (w *World) Run(ctx context.Context, s *scenario.Scenario) ([]ecs.Event, error) {
	if w == nil {
		return nil, fmt.Errorf("world is nil")
	}
	player := scenario.NewPlayer(s)
	w.Input.SetSource(player)
	w.Input.SetDeltaTime(scenario.FrameDT)

	var events []ecs.Event
	for !player.Done() {
		if err := ctx.Err(); err != nil {
			return events, err
		}
		w.Step()
		events = append(events, w.ECS.Events().Drain()...)
	}
	// one idle frame so the last release is processed
	w.Step()
	events = append(events, w.ECS.Events().Drain()...)
	return events, nil
}

// ReloadCatalog refreshes systems that cache catalog entries. The selected
// prefab is re-resolved by name.
func (w *World) ReloadCatalog() {
	if w == nil {
		return
	}
	if w.Plants != nil {
		w.Plants.SetPlants(w.Catalog.Plants())
	}
	if w.Placement != nil {
		if cur := w.Placement.SelectedPrefab(); cur != nil {
			if p, err := w.Catalog.Lookup(cur.Name); err == nil {
				w.Placement.SetSelectedPrefab(p)
			}
		}
	}
}
