package gesture

import "time"

// PlacementRule selects how a plane hit becomes a spawn pose.
type PlacementRule int

const (
	// RuleAlignmentAndClass places anywhere; wall-class items hitting a
	// vertical plane are mounted flush against it.
	RuleAlignmentAndClass PlacementRule = iota
	// RuleWallOrCeiling places only on planes whose normal is not pointing
	// up, mounted against the surface.
	RuleWallOrCeiling
)

// Profile is the fixed tuning of one placement controller.
type Profile struct {
	Name string

	// HoldThreshold is how long (seconds) a stationary touch on a placed
	// object must last before it becomes a drag.
	HoldThreshold float64
	// RotationSpeed is degrees of yaw per pixel of horizontal finger travel.
	RotationSpeed float64
	// VerticalRotationSpeed is degrees of pitch per pixel of vertical travel,
	// used only behind the double-tap gate.
	VerticalRotationSpeed float64
	// ScaleSpeed is scale units per pixel of pinch distance change.
	ScaleSpeed float64
	// TapResetDelay is the window after the first tap in which taps count
	// towards a double or triple tap.
	TapResetDelay time.Duration
	// DoubleTapGate enables the second-tap pitch mode for wall items.
	DoubleTapGate bool

	Placement PlacementRule
	// DragSmoothing multiplies dt to give the per-frame lerp factor.
	DragSmoothing float64
	// WallOffset pushes wall-mounted spawns off the surface, in metres.
	WallOffset float64

	MinScale float64
	MaxScale float64
}

// FurnitureProfile tunes the general furniture controller.
func FurnitureProfile() Profile {
	return Profile{
		Name:                  "furniture",
		HoldThreshold:         0.5,
		RotationSpeed:         0.3,
		VerticalRotationSpeed: 0.2,
		ScaleSpeed:            0.0015,
		TapResetDelay:         400 * time.Millisecond,
		DoubleTapGate:         true,
		Placement:             RuleAlignmentAndClass,
		DragSmoothing:         10,
		WallOffset:            0.01,
		MinScale:              0.1,
		MaxScale:              5,
	}
}

// DecorProfile tunes the wall decoration controller.
func DecorProfile() Profile {
	return Profile{
		Name:          "decor",
		HoldThreshold: 1.0,
		RotationSpeed: 0.2,
		ScaleSpeed:    0.0015,
		TapResetDelay: 500 * time.Millisecond,
		Placement:     RuleWallOrCeiling,
		DragSmoothing: 10,
		WallOffset:    0.01,
		MinScale:      0.1,
		MaxScale:      5,
	}
}

// ProfileByName returns the named profile.
func ProfileByName(name string) (Profile, bool) {
	switch name {
	case "furniture":
		return FurnitureProfile(), true
	case "decor":
		return DecorProfile(), true
	default:
		return Profile{}, false
	}
}
