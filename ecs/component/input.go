package component

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// TouchPhase is the lifecycle stage of a touch in the current frame.
type TouchPhase int

const (
	TouchBegan TouchPhase = iota
	TouchMoved
	TouchStationary
	TouchEnded
	TouchCanceled
)

func (p TouchPhase) String() string {
	switch p {
	case TouchBegan:
		return "began"
	case TouchMoved:
		return "moved"
	case TouchStationary:
		return "stationary"
	case TouchEnded:
		return "ended"
	case TouchCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Touch is one finger in screen pixels. Delta is the movement since the
// previous frame.
type Touch struct {
	ID       int
	Position mgl64.Vec2
	Delta    mgl64.Vec2
	Phase    TouchPhase
}

// TouchInput is the per-frame input singleton written by the input system.
type TouchInput struct {
	Touches []Touch
	// DeltaTime is the frame duration in seconds.
	DeltaTime float64
	// Now is the session clock at the start of this frame.
	Now time.Duration
}

// TouchCount returns the number of touches reported this frame.
func (in *TouchInput) TouchCount() int {
	if in == nil {
		return 0
	}
	return len(in.Touches)
}

var TouchInputComponent = NewComponent[TouchInput]()
