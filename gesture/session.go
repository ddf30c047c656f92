package gesture

import "github.com/milk9111/arplace/ecs"

// Mode is a coarse view of the session state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeSelected
	ModeDragging
	ModeScaling
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeSelected:
		return "selected"
	case ModeDragging:
		return "dragging"
	case ModeScaling:
		return "scaling"
	default:
		return "unknown"
	}
}

// Session is the gesture state owned by one controller. Selected is a weak
// handle: once its entity is destroyed the generation no longer matches and
// the selection reads as empty.
type Session struct {
	Selected ecs.Entity

	Dragging  bool
	Scaling   bool
	Holding   bool
	DoubleTap bool
	// HoldTimer is seconds the current hold has been stationary.
	HoldTimer float64

	Taps TapCounter
}

// Live reports whether the selection refers to an entity that still exists.
func (s *Session) Live(w *ecs.World) bool {
	if s == nil || !s.Selected.Valid() {
		return false
	}
	return w.IsAlive(s.Selected)
}

// Select makes e the selection and arms the hold timer.
func (s *Session) Select(e ecs.Entity) {
	if s == nil {
		return
	}
	s.Selected = e
	s.Holding = true
	s.HoldTimer = 0
}

// ClearSelection drops the selection and disarms the hold.
func (s *Session) ClearSelection() {
	if s == nil {
		return
	}
	s.Selected = 0
	s.Holding = false
	s.HoldTimer = 0
}

// Release ends the touch: no drag, no hold, no double-tap gate.
func (s *Session) Release() {
	if s == nil {
		return
	}
	s.Dragging = false
	s.Holding = false
	s.DoubleTap = false
	s.HoldTimer = 0
}

// AccumulateHold advances a held touch by dt and promotes it to a drag once
// it reaches threshold. It reports whether the session is now dragging.
func (s *Session) AccumulateHold(dt, threshold float64) bool {
	if s == nil {
		return false
	}
	if !s.Holding || s.Dragging {
		return s.Dragging
	}
	s.HoldTimer += dt
	if s.HoldTimer >= threshold {
		s.Dragging = true
	}
	return s.Dragging
}

// Mode summarises the session against w.
func (s *Session) Mode(w *ecs.World) Mode {
	switch {
	case s == nil || !s.Live(w):
		return ModeIdle
	case s.Scaling:
		return ModeScaling
	case s.Dragging:
		return ModeDragging
	default:
		return ModeSelected
	}
}
