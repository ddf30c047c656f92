package sim

import (
	"log"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arplace/ar"
)

// PlaneTracker simulates plane detection over a room. Planes become
// trackables once the session clock passes their detection time, but only
// while detection is enabled. Trackables stay raycastable after detection
// stops, hidden or not.
type PlaneTracker struct {
	camera  *Camera
	pending []PlaneSpec
	tracked []*ar.Plane
	byID    map[ar.TrackableID]*ar.Plane

	elapsed float64
	enabled bool
	visible bool
}

// NewPlaneTracker starts tracking with detection enabled.
func NewPlaneTracker(room *Room, camera *Camera) *PlaneTracker {
	pending := append([]PlaneSpec(nil), room.Planes...)
	sort.SliceStable(pending, func(i, j int) bool { return pending[i].DetectAfter < pending[j].DetectAfter })
	pt := &PlaneTracker{
		camera:  camera,
		pending: pending,
		byID:    make(map[ar.TrackableID]*ar.Plane),
		enabled: true,
		visible: true,
	}
	pt.Advance(0)
	return pt
}

// Advance moves the detection clock forward by dt seconds.
func (pt *PlaneTracker) Advance(dt float64) {
	if pt == nil || !pt.enabled {
		return
	}
	pt.elapsed += dt
	for len(pt.pending) > 0 && pt.pending[0].DetectAfter <= pt.elapsed {
		spec := pt.pending[0]
		pt.pending = pt.pending[1:]
		plane := &ar.Plane{
			ID:        ar.TrackableID(spec.ID),
			Alignment: spec.Alignment,
			Pose:      PlanePose(vec3(spec.Center), vec3(spec.Normal)),
			Extents:   mgl64.Vec2{spec.Extents[0], spec.Extents[1]},
			Visible:   pt.visible,
		}
		pt.tracked = append(pt.tracked, plane)
		pt.byID[plane.ID] = plane
	}
}

func (pt *PlaneTracker) Plane(id ar.TrackableID) (*ar.Plane, bool) {
	if pt == nil {
		return nil, false
	}
	p, ok := pt.byID[id]
	return p, ok
}

func (pt *PlaneTracker) Trackables() []*ar.Plane {
	if pt == nil {
		return nil
	}
	return append([]*ar.Plane(nil), pt.tracked...)
}

func (pt *PlaneTracker) SetPlanesVisible(visible bool) {
	if pt == nil {
		return
	}
	pt.visible = visible
	for _, p := range pt.tracked {
		p.Visible = visible
	}
}

func (pt *PlaneTracker) SetDetectionEnabled(enabled bool) {
	if pt == nil || pt.enabled == enabled {
		return
	}
	pt.enabled = enabled
	if !enabled {
		log.Printf("sim: plane detection disabled with %d trackables", len(pt.tracked))
	}
}

func (pt *PlaneTracker) DetectionEnabled() bool {
	return pt != nil && pt.enabled
}

// RaycastPlanes intersects the screen ray with every trackable's rectangle.
func (pt *PlaneTracker) RaycastPlanes(sp ar.ScreenPoint) []ar.PlaneHit {
	if pt == nil || pt.camera == nil {
		return nil
	}
	ray := pt.camera.ScreenRay(sp)
	var hits []ar.PlaneHit
	for _, p := range pt.tracked {
		t, ok := intersectPlane(ray, p)
		if !ok {
			continue
		}
		point := ray.At(t)
		if !p.Contains(point) {
			continue
		}
		hits = append(hits, ar.PlaneHit{
			Pose:        ar.Pose{Position: point, Rotation: p.Pose.Rotation},
			TrackableID: p.ID,
			Distance:    t,
		})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

func intersectPlane(ray Ray, p *ar.Plane) (float64, bool) {
	n := p.Normal()
	denom := ray.Direction.Dot(n)
	if math.Abs(denom) < 1e-9 {
		return 0, false
	}
	t := p.Pose.Position.Sub(ray.Origin).Dot(n) / denom
	if t <= 0 {
		return 0, false
	}
	return t, true
}
