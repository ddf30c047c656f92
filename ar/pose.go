package ar

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis conventions: +Y is up, +Z is an object's forward, +X its right.
var (
	WorldUp      = mgl64.Vec3{0, 1, 0}
	WorldForward = mgl64.Vec3{0, 0, 1}
	WorldRight   = mgl64.Vec3{1, 0, 0}
)

// Pose is a position and rotation in world space.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewPose returns a pose with identity rotation at p.
func NewPose(p mgl64.Vec3) Pose {
	return Pose{Position: p, Rotation: mgl64.QuatIdent()}
}

func (p Pose) Up() mgl64.Vec3      { return p.Rotation.Rotate(WorldUp) }
func (p Pose) Forward() mgl64.Vec3 { return p.Rotation.Rotate(WorldForward) }
func (p Pose) Back() mgl64.Vec3    { return p.Rotation.Rotate(WorldForward.Mul(-1)) }
func (p Pose) Right() mgl64.Vec3   { return p.Rotation.Rotate(WorldRight) }

// LookRotation returns the rotation whose forward axis points along forward
// and whose up axis is as close to up as possible. A forward parallel to up
// falls back to WorldForward as the up hint.
func LookRotation(forward, up mgl64.Vec3) mgl64.Quat {
	if forward.LenSqr() == 0 {
		return mgl64.QuatIdent()
	}
	z := forward.Normalize()
	if up.LenSqr() == 0 {
		up = WorldUp
	}
	x := up.Cross(z)
	if x.LenSqr() < 1e-12 {
		x = WorldForward.Cross(z)
		if x.LenSqr() < 1e-12 {
			x = WorldRight
		}
	}
	x = x.Normalize()
	y := z.Cross(x)
	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(x, y, z).Mat4()).Normalize()
}

// EulerDegrees builds a rotation from angles about X, Y and Z, applied Z
// first, then X, then Y.
func EulerDegrees(x, y, z float64) mgl64.Quat {
	qx := mgl64.QuatRotate(mgl64.DegToRad(x), WorldRight)
	qy := mgl64.QuatRotate(mgl64.DegToRad(y), WorldUp)
	qz := mgl64.QuatRotate(mgl64.DegToRad(z), WorldForward)
	return qy.Mul(qx).Mul(qz).Normalize()
}

// Lerp moves from a toward b by t, with t clamped to [0, 1].
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = math.Max(0, math.Min(1, t))
	return a.Add(b.Sub(a).Mul(t))
}
