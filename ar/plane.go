package ar

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// TrackableID identifies a tracked plane for the lifetime of a session.
type TrackableID uint64

func (id TrackableID) String() string {
	return fmt.Sprintf("plane-%d", uint64(id))
}

// PlaneAlignment is the orientation class reported by plane detection.
type PlaneAlignment int

const (
	NoAlignment PlaneAlignment = iota
	HorizontalUp
	HorizontalDown
	Vertical
)

func (a PlaneAlignment) String() string {
	switch a {
	case HorizontalUp:
		return "horizontal_up"
	case HorizontalDown:
		return "horizontal_down"
	case Vertical:
		return "vertical"
	default:
		return "none"
	}
}

func (a PlaneAlignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *PlaneAlignment) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "none":
		*a = NoAlignment
	case "horizontal_up", "floor":
		*a = HorizontalUp
	case "horizontal_down", "ceiling":
		*a = HorizontalDown
	case "vertical", "wall":
		*a = Vertical
	default:
		return fmt.Errorf("plane alignment %q", text)
	}
	return nil
}

// Plane is a detected surface. Its pose's up axis is the surface normal and
// Extents are the half sizes along the pose's right and forward axes.
type Plane struct {
	ID        TrackableID
	Alignment PlaneAlignment
	Pose      Pose
	Extents   mgl64.Vec2
	Visible   bool
}

// Normal returns the plane's surface normal.
func (p *Plane) Normal() mgl64.Vec3 {
	if p == nil {
		return WorldUp
	}
	return p.Pose.Up()
}

// IsWallOrCeiling reports whether the plane faces sideways or downwards
// relative to world up.
func (p *Plane) IsWallOrCeiling() bool {
	if p == nil {
		return false
	}
	up := p.Normal()
	return up.Dot(WorldUp) < 0.5 || up.Y() < 0
}

// Contains reports whether a world point on the plane lies inside its
// rectangle.
func (p *Plane) Contains(point mgl64.Vec3) bool {
	if p == nil {
		return false
	}
	local := point.Sub(p.Pose.Position)
	u := local.Dot(p.Pose.Right())
	v := local.Dot(p.Pose.Forward())
	return u >= -p.Extents.X() && u <= p.Extents.X() && v >= -p.Extents.Y() && v <= p.Extents.Y()
}

// Corners returns the plane rectangle in winding order.
func (p *Plane) Corners() []mgl64.Vec3 {
	if p == nil {
		return nil
	}
	c := p.Pose.Position
	r := p.Pose.Right().Mul(p.Extents.X())
	f := p.Pose.Forward().Mul(p.Extents.Y())
	return []mgl64.Vec3{
		c.Sub(r).Sub(f),
		c.Add(r).Sub(f),
		c.Add(r).Add(f),
		c.Sub(r).Add(f),
	}
}
