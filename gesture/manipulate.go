package gesture

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arplace/ar"
	"github.com/milk9111/arplace/ecs/component"
)

// PinchDelta returns how much the distance between two touches changed this
// frame, in pixels. Positive means the fingers moved apart.
func PinchDelta(a, b component.Touch) float64 {
	prevA := a.Position.Sub(a.Delta)
	prevB := b.Position.Sub(b.Delta)
	return a.Position.Sub(b.Position).Len() - prevA.Sub(prevB).Len()
}

// ApplyScale grows every axis of scale by diff*speed and clamps each axis to
// [lo, hi]. A non-finite step leaves scale unchanged.
func ApplyScale(scale mgl64.Vec3, diff, speed, lo, hi float64) mgl64.Vec3 {
	step := diff * speed
	if math.IsNaN(step) || math.IsInf(step, 0) {
		return scale
	}
	var out mgl64.Vec3
	for i := range scale {
		out[i] = mgl64.Clamp(scale[i]+step, lo, hi)
	}
	return out
}

// Yaw is the local rotation for horizontal finger travel dx.
func Yaw(dx, speed float64) mgl64.Quat {
	return ar.EulerDegrees(0, -dx*speed, 0)
}

// Pitch is the local rotation for vertical finger travel dy in screen
// pixels (y down). Moving the finger up tilts the object's forward axis up.
func Pitch(dy, speed float64) mgl64.Quat {
	return ar.EulerDegrees(dy*speed, 0, 0)
}

// DragFactor is the per-frame lerp factor for smoothing k, clamped to [0, 1].
func DragFactor(k, dt float64) float64 {
	t := k * dt
	if math.IsNaN(t) {
		return 0
	}
	return mgl64.Clamp(t, 0, 1)
}

// Rotation picks the manipulation for a single moved touch under p. The
// second result is false when the touch should not rotate anything.
func (p Profile) Rotation(delta mgl64.Vec2, class component.PlacementClass, doubleTap bool) (mgl64.Quat, bool) {
	if !p.DoubleTapGate {
		return Yaw(delta.X(), p.RotationSpeed), true
	}
	wall := class == component.PlacementWall
	switch {
	case !doubleTap && !wall:
		return Yaw(delta.X(), p.RotationSpeed), true
	case doubleTap && wall:
		return Pitch(delta.Y(), p.VerticalRotationSpeed), true
	default:
		return mgl64.QuatIdent(), false
	}
}
