package system

import (
	"image/color"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arplace/ar"
	"github.com/milk9111/arplace/ecs"
	"github.com/milk9111/arplace/ecs/component"
	"github.com/milk9111/arplace/prefabs"
)

// fakeHost answers plane raycasts with a fixed hit list and collider
// raycasts from screen positions registered per entity.
type fakeHost struct {
	planes     map[ar.TrackableID]*ar.Plane
	planeHits  []ar.PlaneHit
	colliders  map[ecs.Entity]ar.ScreenPoint
	visible    bool
	detection  bool
	disableOff int
}

func newFakeHost(planes ...*ar.Plane) *fakeHost {
	h := &fakeHost{
		planes:    map[ar.TrackableID]*ar.Plane{},
		colliders: map[ecs.Entity]ar.ScreenPoint{},
		visible:   true,
		detection: true,
	}
	for _, p := range planes {
		h.planes[p.ID] = p
	}
	return h
}

func (h *fakeHost) hitOn(id ar.TrackableID, pos mgl64.Vec3) {
	pose := ar.NewPose(pos)
	if p, ok := h.planes[id]; ok {
		pose.Rotation = p.Pose.Rotation
	}
	h.planeHits = []ar.PlaneHit{{Pose: pose, TrackableID: id, Distance: 1}}
}

func (h *fakeHost) RaycastPlanes(ar.ScreenPoint) []ar.PlaneHit {
	return append([]ar.PlaneHit(nil), h.planeHits...)
}

func (h *fakeHost) RaycastColliders(pt ar.ScreenPoint) (ar.ColliderHit, bool) {
	for e, at := range h.colliders {
		if at.Sub(pt).Len() <= 5 {
			return ar.ColliderHit{Entity: e, Distance: 1}, true
		}
	}
	return ar.ColliderHit{}, false
}

func (h *fakeHost) Plane(id ar.TrackableID) (*ar.Plane, bool) {
	p, ok := h.planes[id]
	return p, ok
}

func (h *fakeHost) Trackables() []*ar.Plane {
	out := make([]*ar.Plane, 0, len(h.planes))
	for _, p := range h.planes {
		out = append(out, p)
	}
	return out
}

func (h *fakeHost) SetPlanesVisible(v bool) { h.visible = v }

func (h *fakeHost) SetDetectionEnabled(v bool) {
	if h.detection && !v {
		h.disableOff++
	}
	h.detection = v
}

func (h *fakeHost) DetectionEnabled() bool { return h.detection }

type fakeBlocker struct{ blocked bool }

func (b fakeBlocker) IsPointerOverUI(ar.ScreenPoint) bool { return b.blocked }

func floorPlane() *ar.Plane {
	return &ar.Plane{ID: 1, Alignment: ar.HorizontalUp, Pose: ar.NewPose(mgl64.Vec3{}), Extents: mgl64.Vec2{5, 5}, Visible: true}
}

// wallPlane faces -Z.
func wallPlane() *ar.Plane {
	pose := ar.Pose{Position: mgl64.Vec3{0, 1, 3}, Rotation: mgl64.QuatRotate(mgl64.DegToRad(-90), ar.WorldRight)}
	return &ar.Plane{ID: 2, Alignment: ar.Vertical, Pose: pose, Extents: mgl64.Vec2{5, 5}, Visible: true}
}

func chair() *prefabs.Placeable {
	return &prefabs.Placeable{Name: "chair_wood_01", Category: "chairs", Class: prefabs.ClassFloor,
		Color: color.RGBA{R: 139, G: 69, B: 19, A: 255}, PickRadius: 0.35, Size: mgl64.Vec3{0.5, 0.9, 0.5}}
}

func painting() *prefabs.Placeable {
	return &prefabs.Placeable{Name: "Canvas_Nat_01", Category: "paintings", Class: prefabs.ClassWall,
		Color: color.RGBA{G: 128, A: 255}, PickRadius: 0.35, Size: mgl64.Vec3{0.6, 0.8, 0.03}}
}

// driver feeds hand-built touch frames to a system.
type driver struct {
	t   *testing.T
	w   *ecs.World
	sys ecs.System
	now time.Duration
}

func newDriver(t *testing.T, sys ecs.System) *driver {
	return &driver{t: t, w: ecs.NewWorld(), sys: sys}
}

func (d *driver) step(dt float64, touches ...component.Touch) {
	d.t.Helper()
	in := EnsureTouchInput(d.w)
	if in == nil {
		d.t.Fatalf("no touch input singleton")
	}
	*in = component.TouchInput{Touches: touches, DeltaTime: dt, Now: d.now}
	d.sys.Update(d.w)
	d.now += time.Duration(dt * float64(time.Second))
}

// tap is a Began frame followed by an Ended frame.
func (d *driver) tap(pt ar.ScreenPoint) {
	d.step(0.05, touchAt(pt, component.TouchBegan))
	d.step(0.05, touchAt(pt, component.TouchEnded))
}

func touchAt(pt ar.ScreenPoint, phase component.TouchPhase) component.Touch {
	return component.Touch{Position: pt, Phase: phase}
}

func moveBy(pt, delta ar.ScreenPoint) component.Touch {
	return component.Touch{Position: pt, Delta: delta, Phase: component.TouchMoved}
}

func placed(w *ecs.World) []ecs.Entity {
	return w.Query(component.PlacedTagComponent.Kind())
}

func drainKinds(w *ecs.World) []ecs.EventKind {
	var out []ecs.EventKind
	for _, evt := range w.Events().Drain() {
		out = append(out, evt.Kind)
	}
	return out
}
