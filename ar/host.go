package ar

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arplace/ecs"
)

// ScreenPoint is a position in screen pixels, origin top-left.
type ScreenPoint = mgl64.Vec2

// PlaneHit is one intersection of a screen ray with a tracked plane. The pose
// sits at the hit point with its up axis along the plane normal.
type PlaneHit struct {
	Pose        Pose
	TrackableID TrackableID
	Distance    float64
}

// ColliderHit is the nearest entity whose collider a screen ray struck.
type ColliderHit struct {
	Entity   ecs.Entity
	Point    mgl64.Vec3
	Distance float64
}

// PlaneRaycaster hit-tests tracked planes. Hits are restricted to each
// plane's polygon and ordered nearest first.
type PlaneRaycaster interface {
	RaycastPlanes(pt ScreenPoint) []PlaneHit
}

// ColliderRaycaster hit-tests entity colliders.
type ColliderRaycaster interface {
	RaycastColliders(pt ScreenPoint) (ColliderHit, bool)
}

// PlaneManager exposes the tracked planes and the detection switch.
type PlaneManager interface {
	Plane(id TrackableID) (*Plane, bool)
	Trackables() []*Plane
	SetPlanesVisible(visible bool)
	SetDetectionEnabled(enabled bool)
	DetectionEnabled() bool
}

// UIBlocker reports whether a screen point is over an interactive UI element.
type UIBlocker interface {
	IsPointerOverUI(pt ScreenPoint) bool
}

// Host bundles the services a placement controller needs.
type Host interface {
	PlaneRaycaster
	ColliderRaycaster
	PlaneManager
}

// DisablePlanes hides every tracked plane and stops detection.
func DisablePlanes(pm PlaneManager) {
	if pm == nil {
		return
	}
	pm.SetPlanesVisible(false)
	pm.SetDetectionEnabled(false)
}
