package system

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/arplace/ecs"
	"github.com/milk9111/arplace/ecs/component"
	"github.com/milk9111/arplace/prefabs"
	"github.com/milk9111/arplace/ui"
)

// PlacedObject is a read-only summary of a spawned entity.
type PlacedObject struct {
	Entity   ecs.Entity
	Name     string
	Category string
	Class    component.PlacementClass
	Plant    bool
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// defaultPrefab resolves the spawn prefab for the world's mode: the named
// entry if given, otherwise the first entry of the mode's first panel.
func (w *World) defaultPrefab(name string) (*prefabs.Placeable, error) {
	if name != "" {
		return w.Catalog.Lookup(name)
	}
	categories := ui.FurnitureCategories
	if w.mode == ModeDecor {
		categories = ui.DecorCategories
	}
	for _, c := range categories {
		if items := w.Catalog.ByCategory(c); len(items) > 0 {
			return items[0], nil
		}
	}
	return nil, nil
}

// Objects lists every spawned entity ordered by entity.
func (w *World) Objects() []PlacedObject {
	if w == nil {
		return nil
	}
	var out []PlacedObject
	ecs.ForEach2(w.ECS, component.TransformComponent.Kind(), component.PlaceableComponent.Kind(),
		func(e ecs.Entity, tr *component.Transform, p *component.Placeable) {
			out = append(out, PlacedObject{
				Entity:   e,
				Name:     p.Name,
				Category: p.Category,
				Class:    p.Class,
				Plant:    ecs.Has(w.ECS, e, component.PlantTagComponent.Kind()),
				Position: tr.Position,
				Rotation: tr.Rotation,
				Scale:    tr.Scale,
			})
		})
	sort.Slice(out, func(i, j int) bool { return out[i].Entity < out[j].Entity })
	return out
}
