package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is an entity's world pose plus per-axis scale.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// NewTransform returns a unit-scale transform at the given pose.
func NewTransform(position mgl64.Vec3, rotation mgl64.Quat) *Transform {
	return &Transform{Position: position, Rotation: rotation, Scale: mgl64.Vec3{1, 1, 1}}
}

// RotateLocal applies q in the transform's own frame.
func (t *Transform) RotateLocal(q mgl64.Quat) {
	if t == nil {
		return
	}
	t.Rotation = t.Rotation.Mul(q).Normalize()
}

var TransformComponent = NewComponent[Transform]()
