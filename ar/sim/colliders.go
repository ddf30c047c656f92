package sim

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arplace/ar"
	"github.com/milk9111/arplace/ecs"
	"github.com/milk9111/arplace/ecs/component"
)

const pickEpsilon = 0.5 // pixels

// ColliderIndex answers collider raycasts by projecting every collider sphere
// to a screen-space circle held in a Chipmunk space. A touch hits the circles
// that contain it; the one nearest the camera wins.
type ColliderIndex struct {
	camera *Camera
	space  *cp.Space
	shapes map[ecs.Entity]*pickShape
}

type pickShape struct {
	shape  *cp.Shape
	center cp.Vector
	radius float64
	depth  float64
	world  ar.Pose
}

// NewColliderIndex creates an empty index for camera.
func NewColliderIndex(camera *Camera) *ColliderIndex {
	return &ColliderIndex{
		camera: camera,
		space:  cp.NewSpace(),
		shapes: make(map[ecs.Entity]*pickShape),
	}
}

// Space returns the underlying Chipmunk space.
func (ci *ColliderIndex) Space() *cp.Space {
	if ci == nil {
		return nil
	}
	return ci.space
}

// Len returns the number of indexed colliders.
func (ci *ColliderIndex) Len() int {
	if ci == nil {
		return 0
	}
	return len(ci.shapes)
}

// Sync rebuilds the pick shapes of entities whose projection changed and
// drops those that died, lost their collider or left the view.
func (ci *ColliderIndex) Sync(w *ecs.World) {
	if ci == nil || w == nil || ci.camera == nil {
		return
	}
	seen := make(map[ecs.Entity]bool, len(ci.shapes))
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, t *component.Transform, c *component.Collider) {
		center, depth, ok := ci.camera.Project(t.Position)
		if !ok || c.Radius <= 0 {
			return
		}
		scale := math.Max(t.Scale.X(), math.Max(t.Scale.Y(), t.Scale.Z()))
		radius := c.Radius * scale * ci.camera.PixelsPerMetre(depth)
		if radius < 1 {
			radius = 1
		}
		seen[e] = true
		v := cp.Vector{X: center.X(), Y: center.Y()}
		if ps, ok := ci.shapes[e]; ok {
			if ps.center.Near(v, 0.01) && math.Abs(ps.radius-radius) < 0.01 {
				ps.depth = depth
				ps.world = ar.Pose{Position: t.Position, Rotation: t.Rotation}
				return
			}
			ci.space.RemoveShape(ps.shape)
			delete(ci.shapes, e)
		}
		shape := cp.NewCircle(ci.space.StaticBody, radius, v)
		shape.UserData = e
		ci.space.AddShape(shape)
		ci.shapes[e] = &pickShape{
			shape:  shape,
			center: v,
			radius: radius,
			depth:  depth,
			world:  ar.Pose{Position: t.Position, Rotation: t.Rotation},
		}
	})
	for e, ps := range ci.shapes {
		if seen[e] {
			continue
		}
		ci.space.RemoveShape(ps.shape)
		delete(ci.shapes, e)
	}
}

// Remove drops e from the index immediately.
func (ci *ColliderIndex) Remove(e ecs.Entity) {
	if ci == nil {
		return
	}
	if ps, ok := ci.shapes[e]; ok {
		ci.space.RemoveShape(ps.shape)
		delete(ci.shapes, e)
	}
}

// RaycastColliders returns the nearest indexed collider under pt.
func (ci *ColliderIndex) RaycastColliders(pt ar.ScreenPoint) (ar.ColliderHit, bool) {
	if ci == nil || len(ci.shapes) == 0 {
		return ar.ColliderHit{}, false
	}
	p := cp.Vector{X: pt.X(), Y: pt.Y()}
	var (
		best  ar.ColliderHit
		found bool
	)
	ci.space.BBQuery(cp.NewBBForCircle(p, pickEpsilon), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		e, ok := shape.UserData.(ecs.Entity)
		if !ok {
			return
		}
		if shape.PointQuery(p).Distance > 0 {
			return
		}
		ps := ci.shapes[e]
		if ps == nil {
			return
		}
		if !found || ps.depth < best.Distance {
			best = ar.ColliderHit{Entity: e, Point: ps.world.Position, Distance: ps.depth}
			found = true
		}
	}, nil)
	return best, found
}
