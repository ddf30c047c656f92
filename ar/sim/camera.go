package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arplace/ar"
)

// Camera is a fixed pinhole camera. Screen coordinates have their origin at
// the top-left corner, y growing downwards.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	FovY   float64 // degrees
	Width  int
	Height int
	Near   float64
	Far    float64

	view mgl64.Mat4
	proj mgl64.Mat4
}

// NewCamera builds a camera from a room's camera spec.
func NewCamera(spec CameraSpec) *Camera {
	c := &Camera{
		Eye:    vec3(spec.Eye),
		Target: vec3(spec.Target),
		FovY:   spec.Fov,
		Width:  spec.Width,
		Height: spec.Height,
		Near:   spec.Near,
		Far:    spec.Far,
	}
	c.rebuild()
	return c
}

func (c *Camera) rebuild() {
	aspect := float64(c.Width) / float64(c.Height)
	c.view = mgl64.LookAtV(c.Eye, c.Target, ar.WorldUp)
	c.proj = mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// Ray is a half line in world space.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ScreenRay returns the world ray through a screen point.
func (c *Camera) ScreenRay(pt ar.ScreenPoint) Ray {
	winY := float64(c.Height) - pt.Y()
	near, errNear := mgl64.UnProject(mgl64.Vec3{pt.X(), winY, 0}, c.view, c.proj, 0, 0, c.Width, c.Height)
	far, errFar := mgl64.UnProject(mgl64.Vec3{pt.X(), winY, 1}, c.view, c.proj, 0, 0, c.Width, c.Height)
	if errNear != nil || errFar != nil {
		return Ray{Origin: c.Eye, Direction: c.Target.Sub(c.Eye).Normalize()}
	}
	return Ray{Origin: c.Eye, Direction: far.Sub(near).Normalize()}
}

// Project maps a world point to the screen. ok is false for points behind the
// camera or outside the clip range.
func (c *Camera) Project(p mgl64.Vec3) (pt ar.ScreenPoint, depth float64, ok bool) {
	forward := c.Target.Sub(c.Eye).Normalize()
	depth = p.Sub(c.Eye).Dot(forward)
	if depth <= c.Near || depth >= c.Far {
		return ar.ScreenPoint{}, depth, false
	}
	win := mgl64.Project(p, c.view, c.proj, 0, 0, c.Width, c.Height)
	return ar.ScreenPoint{win.X(), float64(c.Height) - win.Y()}, depth, true
}

// PixelsPerMetre returns the on-screen size of one metre at the given depth.
func (c *Camera) PixelsPerMetre(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	focal := (float64(c.Height) / 2) / math.Tan(mgl64.DegToRad(c.FovY)/2)
	return focal / depth
}
