package system

import "github.com/milk9111/arplace/ecs"

// PlaneDetector advances a host's plane detection by dt seconds.
type PlaneDetector interface {
	Advance(dt float64)
}

// PlaneDetectionSystem drives plane detection from the frame clock.
type PlaneDetectionSystem struct {
	detector PlaneDetector
}

func NewPlaneDetectionSystem(detector PlaneDetector) *PlaneDetectionSystem {
	return &PlaneDetectionSystem{detector: detector}
}

func (s *PlaneDetectionSystem) Update(w *ecs.World) {
	if s == nil || s.detector == nil {
		return
	}
	in := TouchFrame(w)
	if in == nil {
		return
	}
	s.detector.Advance(in.DeltaTime)
}
