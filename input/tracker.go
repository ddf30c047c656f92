// Package input turns raw pointer samples into per-frame touches with
// phases and deltas.
package input

import (
	"sort"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arplace/ecs/component"
)

// RawTouch is a pointer that is down this frame.
type RawTouch struct {
	ID   int
	X, Y float64
}

// Source reports the pointers that are down right now.
type Source interface {
	Poll() []RawTouch
}

// TouchTracker remembers the previous frame's pointers so it can classify
// each touch as began, moved, stationary or ended.
type TouchTracker struct {
	prev map[int]mgl64.Vec2
	now  time.Duration
}

func NewTouchTracker() *TouchTracker {
	return &TouchTracker{prev: map[int]mgl64.Vec2{}}
}

// Now returns the accumulated frame clock.
func (t *TouchTracker) Now() time.Duration {
	if t == nil {
		return 0
	}
	return t.now
}

// Held returns the number of pointers down as of the last frame.
func (t *TouchTracker) Held() int {
	if t == nil {
		return 0
	}
	return len(t.prev)
}

// Step classifies raw against the previous frame and advances the clock by
// dt seconds. Touches that lifted since the previous frame are reported once
// as ended at their last position. Output is ordered by touch ID.
func (t *TouchTracker) Step(raw []RawTouch, dt float64) component.TouchInput {
	if t == nil {
		return component.TouchInput{DeltaTime: dt}
	}
	if t.prev == nil {
		t.prev = map[int]mgl64.Vec2{}
	}

	frame := component.TouchInput{DeltaTime: dt, Now: t.now}
	t.now += time.Duration(dt * float64(time.Second))

	seen := make(map[int]mgl64.Vec2, len(raw))
	for _, r := range raw {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		pos := mgl64.Vec2{r.X, r.Y}
		seen[r.ID] = pos

		touch := component.Touch{ID: r.ID, Position: pos, Phase: component.TouchBegan}
		if last, ok := t.prev[r.ID]; ok {
			touch.Delta = pos.Sub(last)
			if touch.Delta == (mgl64.Vec2{}) {
				touch.Phase = component.TouchStationary
			} else {
				touch.Phase = component.TouchMoved
			}
		}
		frame.Touches = append(frame.Touches, touch)
	}

	for id, last := range t.prev {
		if _, still := seen[id]; still {
			continue
		}
		frame.Touches = append(frame.Touches, component.Touch{ID: id, Position: last, Phase: component.TouchEnded})
	}

	sort.Slice(frame.Touches, func(i, j int) bool { return frame.Touches[i].ID < frame.Touches[j].ID })
	t.prev = seen
	return frame
}

// Cancel reports every held pointer as canceled, forgets them and advances
// the clock by dt seconds.
func (t *TouchTracker) Cancel(dt float64) component.TouchInput {
	frame := component.TouchInput{DeltaTime: dt}
	if t == nil {
		return frame
	}
	frame.Now = t.now
	t.now += time.Duration(dt * float64(time.Second))
	for id, last := range t.prev {
		frame.Touches = append(frame.Touches, component.Touch{ID: id, Position: last, Phase: component.TouchCanceled})
	}
	sort.Slice(frame.Touches, func(i, j int) bool { return frame.Touches[i].ID < frame.Touches[j].ID })
	t.prev = map[int]mgl64.Vec2{}
	return frame
}
