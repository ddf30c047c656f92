package gesture

import (
	"github.com/milk9111/arplace/ar"
	"github.com/milk9111/arplace/ecs/component"
)

// Placement is where a new object goes.
type Placement struct {
	Pose ar.Pose
	// Mounted is set when the pose was turned to sit flush on a surface.
	Mounted bool
}

// PlacementFor turns a plane hit into a spawn pose under p's rule. plane is
// the trackable the hit landed on and may be nil when the host lost it.
func (p Profile) PlacementFor(hit ar.PlaneHit, plane *ar.Plane, class component.PlacementClass) (Placement, bool) {
	switch p.Placement {
	case RuleWallOrCeiling:
		if plane == nil || !plane.IsWallOrCeiling() {
			return Placement{}, false
		}
		normal := plane.Normal()
		return Placement{
			Pose: ar.Pose{
				Position: hit.Pose.Position.Add(normal.Mul(p.WallOffset)),
				Rotation: ar.LookRotation(normal.Mul(-1), ar.WorldUp),
			},
			Mounted: true,
		}, true
	default:
		if plane != nil && plane.Alignment == ar.Vertical && class == component.PlacementWall {
			normal := hit.Pose.Up()
			rot := ar.LookRotation(normal, ar.WorldUp).Mul(ar.EulerDegrees(0, -90, 0)).Normalize()
			return Placement{
				Pose:    ar.Pose{Position: hit.Pose.Position.Add(normal.Mul(p.WallOffset)), Rotation: rot},
				Mounted: true,
			}, true
		}
		return Placement{Pose: hit.Pose}, true
	}
}
