package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Appearance is what views and snapshots draw for an entity.
type Appearance struct {
	Color color.RGBA
	// Size is the unscaled bounding box in metres (width, height, depth).
	Size mgl64.Vec3
}

var AppearanceComponent = NewComponent[Appearance]()
