package gesture

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arplace/ar"
	"github.com/milk9111/arplace/ecs"
	"github.com/milk9111/arplace/ecs/component"
)

func vecNear(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-6)
}

func TestTapCounterWindow(t *testing.T) {
	const window = 400 * time.Millisecond

	t.Run("three taps inside window", func(t *testing.T) {
		var timers Timers
		var c TapCounter
		times := []time.Duration{0, 100 * time.Millisecond, 250 * time.Millisecond}
		for i, now := range times {
			timers.Advance(now)
			if got := c.Tap(&timers, now, window); got != i+1 {
				t.Fatalf("tap %d: count=%d", i, got)
			}
		}
	})

	t.Run("window expires", func(t *testing.T) {
		var timers Timers
		var c TapCounter
		c.Tap(&timers, 0, window)
		c.Tap(&timers, 100*time.Millisecond, window)
		timers.Advance(window)
		if c.Count() != 0 {
			t.Fatalf("expected reset after window, got %d", c.Count())
		}
		if got := c.Tap(&timers, window, window); got != 1 {
			t.Fatalf("expected fresh window, got %d", got)
		}
	})

	t.Run("stale reset ignored", func(t *testing.T) {
		var timers Timers
		var c TapCounter
		c.Tap(&timers, 0, window)
		c.Reset()
		c.Tap(&timers, 300*time.Millisecond, window)
		c.Tap(&timers, 350*time.Millisecond, window)
		// the first window's reset is due at 400ms but belongs to an old generation
		timers.Advance(450 * time.Millisecond)
		if c.Count() != 2 {
			t.Fatalf("stale reset cleared newer window: count=%d", c.Count())
		}
		timers.Advance(700 * time.Millisecond)
		if c.Count() != 0 {
			t.Fatalf("expected own reset to apply, count=%d", c.Count())
		}
	})
}

func TestTimersOrder(t *testing.T) {
	var timers Timers
	var got []int
	timers.After(0, 30*time.Millisecond, func() { got = append(got, 3) })
	timers.After(0, 10*time.Millisecond, func() { got = append(got, 1) })
	timers.After(0, 20*time.Millisecond, func() { got = append(got, 2) })
	timers.Advance(15 * time.Millisecond)
	if len(got) != 1 || timers.Pending() != 2 {
		t.Fatalf("after 15ms: ran=%v pending=%d", got, timers.Pending())
	}
	timers.Advance(time.Second)
	for i, v := range got {
		if v != i+1 {
			t.Fatalf("run order %v", got)
		}
	}

	var nilTimers *Timers
	nilTimers.After(0, 0, func() {})
	nilTimers.Advance(time.Second)
	if nilTimers.Pending() != 0 {
		t.Fatalf("nil timers should be inert")
	}
}

func TestSessionHold(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()

	var s Session
	s.Select(e)
	if s.Mode(w) != ModeSelected {
		t.Fatalf("mode=%s", s.Mode(w))
	}
	for i := 0; i < 3; i++ {
		if s.AccumulateHold(0.125, 0.5) {
			t.Fatalf("promoted early at frame %d", i)
		}
	}
	if !s.AccumulateHold(0.125, 0.5) {
		t.Fatalf("expected drag after 0.5s, timer=%v", s.HoldTimer)
	}
	if s.Mode(w) != ModeDragging {
		t.Fatalf("mode=%s", s.Mode(w))
	}

	s.Release()
	if s.Dragging || s.Holding || s.DoubleTap {
		t.Fatalf("release left state: %+v", s)
	}
	if s.AccumulateHold(1, 0.5) {
		t.Fatalf("hold accumulated without being armed")
	}

	w.DestroyEntity(e)
	if s.Live(w) || s.Mode(w) != ModeIdle {
		t.Fatalf("destroyed selection still live")
	}
}

func TestPinchAndScale(t *testing.T) {
	a := component.Touch{Position: mgl64.Vec2{100, 100}, Delta: mgl64.Vec2{-10, 0}}
	b := component.Touch{Position: mgl64.Vec2{300, 100}, Delta: mgl64.Vec2{10, 0}}
	if d := PinchDelta(a, b); math.Abs(d-20) > 1e-9 {
		t.Fatalf("pinch delta=%v want 20", d)
	}

	tests := []struct {
		name  string
		scale mgl64.Vec3
		diff  float64
		want  mgl64.Vec3
	}{
		{"grow", mgl64.Vec3{1, 1, 1}, 200, mgl64.Vec3{1.3, 1.3, 1.3}},
		{"clamp high", mgl64.Vec3{4.9, 4.9, 4.9}, 1000, mgl64.Vec3{5, 5, 5}},
		{"clamp low", mgl64.Vec3{0.2, 0.2, 0.2}, -1000, mgl64.Vec3{0.1, 0.1, 0.1}},
		{"per axis", mgl64.Vec3{0.1, 1, 5}, 0, mgl64.Vec3{0.1, 1, 5}},
		{"nan step", mgl64.Vec3{2, 2, 2}, math.NaN(), mgl64.Vec3{2, 2, 2}},
		{"infinite step", mgl64.Vec3{2, 2, 2}, math.Inf(1), mgl64.Vec3{2, 2, 2}},
		{"negative infinite step", mgl64.Vec3{2, 2, 2}, math.Inf(-1), mgl64.Vec3{2, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyScale(tt.scale, tt.diff, 0.0015, 0.1, 5)
			if !vecNear(got, tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestPinchDeltaInfinite(t *testing.T) {
	a := component.Touch{Position: mgl64.Vec2{100, 100}, Delta: mgl64.Vec2{math.Inf(1), 0}}
	b := component.Touch{Position: mgl64.Vec2{300, 100}, Delta: mgl64.Vec2{math.Inf(1), 0}}
	got := ApplyScale(mgl64.Vec3{1, 1, 1}, PinchDelta(a, b), 0.0015, 0.1, 5)
	if got != (mgl64.Vec3{1, 1, 1}) {
		t.Fatalf("scale=%v want unchanged", got)
	}
}

func TestPitchDirection(t *testing.T) {
	// screen y grows downwards, so a finger moving up has a negative dy
	up := Pitch(-10, 1).Rotate(ar.WorldForward)
	if up.Y() <= 0 {
		t.Fatalf("finger up should tilt forward up, got %v", up)
	}
	down := Pitch(10, 1).Rotate(ar.WorldForward)
	if down.Y() >= 0 {
		t.Fatalf("finger down should tilt forward down, got %v", down)
	}
}

func TestDragFactor(t *testing.T) {
	if f := DragFactor(10, 1.0/60); math.Abs(f-10.0/60) > 1e-12 {
		t.Fatalf("factor=%v", f)
	}
	if f := DragFactor(10, 0.5); f != 1 {
		t.Fatalf("large dt not clamped: %v", f)
	}
	if f := DragFactor(10, -1); f != 0 {
		t.Fatalf("negative dt not clamped: %v", f)
	}
}

func TestProfileRotation(t *testing.T) {
	delta := mgl64.Vec2{10, 5}
	tests := []struct {
		name      string
		profile   Profile
		class     component.PlacementClass
		doubleTap bool
		rotate    bool
		want      mgl64.Quat
	}{
		{"furniture floor yaw", FurnitureProfile(), component.PlacementFloor, false, true, Yaw(10, 0.3)},
		{"furniture wall without gate", FurnitureProfile(), component.PlacementWall, false, false, mgl64.QuatIdent()},
		{"furniture wall pitch", FurnitureProfile(), component.PlacementWall, true, true, Pitch(5, 0.2)},
		{"furniture floor gated", FurnitureProfile(), component.PlacementFloor, true, false, mgl64.QuatIdent()},
		{"decor yaw", DecorProfile(), component.PlacementWall, true, true, Yaw(10, 0.2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := tt.profile.Rotation(delta, tt.class, tt.doubleTap)
			if ok != tt.rotate {
				t.Fatalf("rotate=%v want %v", ok, tt.rotate)
			}
			if !q.ApproxEqualThreshold(tt.want, 1e-6) {
				t.Fatalf("got %v want %v", q, tt.want)
			}
		})
	}

	fwd := Yaw(10, 0.3).Rotate(ar.WorldForward)
	want := mgl64.Vec3{math.Sin(mgl64.DegToRad(-3)), 0, math.Cos(mgl64.DegToRad(-3))}
	if !vecNear(fwd, want) {
		t.Fatalf("yaw forward=%v want %v", fwd, want)
	}
}

func TestPlacementFor(t *testing.T) {
	floor := &ar.Plane{ID: 1, Alignment: ar.HorizontalUp, Pose: ar.NewPose(mgl64.Vec3{})}
	// normal (0, 0, -1): up rotated -90 degrees about X
	wallPose := ar.Pose{Position: mgl64.Vec3{0, 1, 3}, Rotation: mgl64.QuatRotate(mgl64.DegToRad(-90), ar.WorldRight)}
	wall := &ar.Plane{ID: 2, Alignment: ar.Vertical, Pose: wallPose}

	floorHit := ar.PlaneHit{Pose: ar.NewPose(mgl64.Vec3{0.5, 0, 2}), TrackableID: 1}
	wallHit := ar.PlaneHit{Pose: ar.Pose{Position: mgl64.Vec3{0.2, 1.1, 3}, Rotation: wallPose.Rotation}, TrackableID: 2}

	t.Run("furniture on floor uses hit pose", func(t *testing.T) {
		got, ok := FurnitureProfile().PlacementFor(floorHit, floor, component.PlacementFloor)
		if !ok || got.Mounted || got.Pose != floorHit.Pose {
			t.Fatalf("got %+v ok=%v", got, ok)
		}
	})

	t.Run("furniture floor item on wall uses hit pose", func(t *testing.T) {
		got, ok := FurnitureProfile().PlacementFor(wallHit, wall, component.PlacementFloor)
		if !ok || got.Mounted || got.Pose != wallHit.Pose {
			t.Fatalf("got %+v ok=%v", got, ok)
		}
	})

	t.Run("furniture wall item mounts", func(t *testing.T) {
		got, ok := FurnitureProfile().PlacementFor(wallHit, wall, component.PlacementWall)
		if !ok || !got.Mounted {
			t.Fatalf("expected mounted placement, got %+v ok=%v", got, ok)
		}
		if !vecNear(got.Pose.Position, mgl64.Vec3{0.2, 1.1, 2.99}) {
			t.Fatalf("position=%v", got.Pose.Position)
		}
		if !vecNear(got.Pose.Up(), ar.WorldUp) {
			t.Fatalf("up=%v", got.Pose.Up())
		}
		if !vecNear(got.Pose.Forward(), mgl64.Vec3{1, 0, 0}) {
			t.Fatalf("forward=%v", got.Pose.Forward())
		}
	})

	t.Run("decor ignores floor", func(t *testing.T) {
		if _, ok := DecorProfile().PlacementFor(floorHit, floor, component.PlacementWall); ok {
			t.Fatalf("decor placed on floor")
		}
	})

	t.Run("decor without plane", func(t *testing.T) {
		if _, ok := DecorProfile().PlacementFor(wallHit, nil, component.PlacementWall); ok {
			t.Fatalf("decor placed without a plane")
		}
	})

	t.Run("decor on wall faces into wall", func(t *testing.T) {
		got, ok := DecorProfile().PlacementFor(wallHit, wall, component.PlacementWall)
		if !ok || !got.Mounted {
			t.Fatalf("got %+v ok=%v", got, ok)
		}
		if !vecNear(got.Pose.Position, mgl64.Vec3{0.2, 1.1, 2.99}) {
			t.Fatalf("position=%v", got.Pose.Position)
		}
		if !vecNear(got.Pose.Forward(), mgl64.Vec3{0, 0, 1}) {
			t.Fatalf("forward=%v", got.Pose.Forward())
		}
	})

	t.Run("decor on ceiling", func(t *testing.T) {
		ceilPose := ar.Pose{Position: mgl64.Vec3{0, 2.6, 2}, Rotation: mgl64.QuatRotate(math.Pi, ar.WorldRight)}
		ceiling := &ar.Plane{ID: 3, Alignment: ar.HorizontalDown, Pose: ceilPose}
		hit := ar.PlaneHit{Pose: ceilPose, TrackableID: 3}
		got, ok := DecorProfile().PlacementFor(hit, ceiling, component.PlacementWall)
		if !ok {
			t.Fatalf("decor refused ceiling")
		}
		if !vecNear(got.Pose.Position, mgl64.Vec3{0, 2.59, 2}) {
			t.Fatalf("position=%v", got.Pose.Position)
		}
	})
}

func TestProfileByName(t *testing.T) {
	for _, name := range []string{"furniture", "decor"} {
		p, ok := ProfileByName(name)
		if !ok || p.Name != name {
			t.Fatalf("%s: got %+v ok=%v", name, p, ok)
		}
	}
	if _, ok := ProfileByName("plants"); ok {
		t.Fatalf("plants is not a gesture profile")
	}
}
