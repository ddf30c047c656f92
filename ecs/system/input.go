package system

import (
	"github.com/milk9111/arplace/ecs"
	"github.com/milk9111/arplace/ecs/component"
	"github.com/milk9111/arplace/input"
)

// DefaultDeltaTime is the fixed frame duration in seconds.
const DefaultDeltaTime = 1.0 / 60

// InputSystem samples a pointer source and writes the frame's touches into
// the TouchInput singleton.
type InputSystem struct {
	source  input.Source
	tracker *input.TouchTracker
	dt      float64

	pendingCancel bool
}

func NewInputSystem(source input.Source) *InputSystem {
	return &InputSystem{source: source, tracker: input.NewTouchTracker(), dt: DefaultDeltaTime}
}

// SetDeltaTime changes the frame duration used for subsequent frames.
func (s *InputSystem) SetDeltaTime(dt float64) {
	if s == nil || dt <= 0 {
		return
	}
	s.dt = dt
}

func (s *InputSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	var frame component.TouchInput
	if s.pendingCancel && s.tracker.Held() > 0 {
		s.pendingCancel = false
		frame = s.tracker.Cancel(s.dt)
	} else {
		s.pendingCancel = false
		var raw []input.RawTouch
		if s.source != nil {
			raw = s.source.Poll()
		}
		frame = s.tracker.Step(raw, s.dt)
	}

	in := EnsureTouchInput(w)
	if in == nil {
		return
	}
	*in = frame
}

// EnsureTouchInput returns the TouchInput singleton, creating it if needed.
func EnsureTouchInput(w *ecs.World) *component.TouchInput {
	if in := TouchFrame(w); in != nil {
		return in
	}
	e := ecs.CreateEntity(w)
	in := &component.TouchInput{}
	if err := ecs.Add(w, e, component.TouchInputComponent.Kind(), in); err != nil {
		return nil
	}
	return in
}

// TouchFrame returns the current frame's input, or nil before the first
// input update.
func TouchFrame(w *ecs.World) *component.TouchInput {
	if w == nil {
		return nil
	}
	e, ok := w.First(component.TouchInputComponent.Kind())
	if !ok {
		return nil
	}
	in, _ := ecs.Get(w, e, component.TouchInputComponent.Kind())
	return in
}

// SetSource swaps the pointer source. Pointers held by the old source are
// reported as canceled on the next frame.
func (s *InputSystem) SetSource(source input.Source) {
	if s == nil {
		return
	}
	s.source = source
	s.pendingCancel = true
}
