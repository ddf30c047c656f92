package system

import (
	"fmt"

	"github.com/milk9111/arplace/ar"
	"github.com/milk9111/arplace/ecs"
	"github.com/milk9111/arplace/ecs/component"
	"github.com/milk9111/arplace/prefabs"
)

// SpawnKind selects the tag a spawned entity carries.
type SpawnKind int

const (
	SpawnPlaced SpawnKind = iota
	SpawnPlant
)

// SpawnPlaceable creates an entity for p at pose with unit scale.
func SpawnPlaceable(w *ecs.World, p *prefabs.Placeable, pose ar.Pose, kind SpawnKind) (ecs.Entity, error) {
	if w == nil || p == nil {
		return 0, fmt.Errorf("spawn: nil world or prefab")
	}

	e := ecs.CreateEntity(w)
	add := func(err error) error {
		if err != nil {
			ecs.DestroyEntity(w, e)
			return fmt.Errorf("spawn %s: %w", p.Name, err)
		}
		return nil
	}

	if err := add(ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform(pose.Position, pose.Rotation))); err != nil {
		return 0, err
	}
	if err := add(ecs.Add(w, e, component.PlaceableComponent.Kind(), &component.Placeable{
		Name:     p.Name,
		Category: p.Category,
		Class:    p.Class,
	})); err != nil {
		return 0, err
	}
	if err := add(ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Radius: p.PickRadius})); err != nil {
		return 0, err
	}
	if err := add(ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{Color: p.Color, Size: p.Size})); err != nil {
		return 0, err
	}

	switch kind {
	case SpawnPlant:
		err := ecs.Add(w, e, component.PlantTagComponent.Kind(), &component.PlantTag{})
		if err := add(err); err != nil {
			return 0, err
		}
	default:
		err := ecs.Add(w, e, component.PlacedTagComponent.Kind(), &component.PlacedTag{})
		if err := add(err); err != nil {
			return 0, err
		}
	}
	return e, nil
}
