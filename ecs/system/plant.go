package system

import (
	"log"
	"math/rand"

	"github.com/milk9111/arplace/ar"
	"github.com/milk9111/arplace/ecs"
	"github.com/milk9111/arplace/ecs/component"
	"github.com/milk9111/arplace/prefabs"
)

// PlantSystem scatters a random plant wherever a new first touch lands on a
// plane. Plants are not selectable.
type PlantSystem struct {
	host   ar.Host
	plants []*prefabs.Placeable
	rng    *rand.Rand
}

func NewPlantSystem(host ar.Host, plants []*prefabs.Placeable, rng *rand.Rand) *PlantSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &PlantSystem{host: host, plants: plants, rng: rng}
}

// SetPlants replaces the plant list, e.g. after a catalog reload.
func (s *PlantSystem) SetPlants(plants []*prefabs.Placeable) {
	if s == nil {
		return
	}
	s.plants = plants
}

func (s *PlantSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.host == nil {
		return
	}
	in := TouchFrame(w)
	if in == nil || in.TouchCount() == 0 || in.Touches[0].Phase != component.TouchBegan {
		return
	}

	if hits := s.host.RaycastPlanes(in.Touches[0].Position); len(hits) > 0 && len(s.plants) > 0 {
		p := s.plants[s.rng.Intn(len(s.plants))]
		e, err := SpawnPlaceable(w, p, ar.NewPose(hits[0].Pose.Position), SpawnPlant)
		if err != nil {
			log.Printf("plant: %v", err)
		} else {
			w.Events().Push(ecs.Event{Kind: ecs.EventPlaced, Entity: e, Data: p.Name})
		}
	}

	wasEnabled := s.host.DetectionEnabled()
	ar.DisablePlanes(s.host)
	if wasEnabled {
		w.Events().Push(ecs.Event{Kind: ecs.EventPlanesOff})
	}
}
